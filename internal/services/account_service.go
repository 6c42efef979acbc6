package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/observability"
)

// AccountService authenticates stateless clients. Sessions are carried by
// signed tokens instead of the persisted authUser record.
type AccountService struct {
	Directory *auth.Directory
	Tokens    *auth.Tokens
}

// Session is a signed-in user plus the token that proves it.
type Session struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Login checks the credentials and issues a token.
func (s *AccountService) Login(ctx context.Context, email, password string) (Session, error) {
	ctx, span := otel.Tracer("services/AccountService").Start(ctx, "Login")
	defer span.End()

	u, err := s.Directory.Authenticate(ctx, email, password)
	observability.RecordAuth("login", err)
	if err != nil {
		return Session{}, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID), attribute.Bool("user.admin", u.IsAdmin))
	return s.issue(u)
}

// Signup registers a new user and issues a token.
func (s *AccountService) Signup(ctx context.Context, email, password string) (Session, error) {
	ctx, span := otel.Tracer("services/AccountService").Start(ctx, "Signup")
	defer span.End()

	u, err := s.Directory.Register(ctx, email, password)
	observability.RecordAuth("signup", err)
	if err != nil {
		return Session{}, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return s.issue(u)
}

// Verify resolves a bearer token to its user. The signature alone is not
// enough: the account must still exist under the id the token was issued for.
func (s *AccountService) Verify(ctx context.Context, token string) (domain.User, error) {
	ctx, span := otel.Tracer("services/AccountService").Start(ctx, "Verify", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	claims, err := s.Tokens.Parse(token)
	if err != nil {
		return domain.User{}, err
	}
	return s.Directory.Current(ctx, claims.User())
}

func (s *AccountService) issue(u domain.User) (Session, error) {
	tok, err := s.Tokens.Issue(u)
	if err != nil {
		return Session{}, err
	}
	return Session{User: u, Token: tok}, nil
}
