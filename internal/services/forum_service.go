package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tbourn/go-wellness-backend/internal/domain"
	"github.com/tbourn/go-wellness-backend/internal/forum"
	"github.com/tbourn/go-wellness-backend/internal/observability"
	"github.com/tbourn/go-wellness-backend/internal/repo"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// ForumRepo is the persistence contract of ForumService.
type ForumRepo interface {
	List(ctx context.Context, s *store.Store) []domain.ForumPost
	Get(ctx context.Context, s *store.Store, id string) (domain.ForumPost, error)
	Prepend(ctx context.Context, s *store.Store, p domain.ForumPost) error
	Replace(ctx context.Context, s *store.Store, p domain.ForumPost) error
	Delete(ctx context.Context, s *store.Store, id string) error
}

// ForumService manages posts and their comments. Anyone may read; writing
// needs a signed-in user; deleting follows forum.CanDelete.
type ForumService struct {
	Store *store.Store
	Repo  ForumRepo
	Now   Clock

	TitleMaxRunes   int
	ContentMaxRunes int
}

// NewForumService returns a service over the global post list.
func NewForumService(s *store.Store) *ForumService {
	return &ForumService{Store: s, Repo: repo.ForumPosts(), TitleMaxRunes: 200, ContentMaxRunes: 10000}
}

// List returns every post, newest first.
func (s *ForumService) List(ctx context.Context) []domain.ForumPost {
	ctx, span := otel.Tracer("services/ForumService").Start(ctx, "List")
	defer span.End()
	return s.Repo.List(ctx, s.Store)
}

// Get returns one post with its comments.
func (s *ForumService) Get(ctx context.Context, id string) (domain.ForumPost, error) {
	p, err := s.Repo.Get(ctx, s.Store, id)
	if errors.Is(err, repo.ErrNotFound) {
		return domain.ForumPost{}, ErrPostNotFound
	}
	return p, err
}

// CreatePost adds a post in front of the list.
func (s *ForumService) CreatePost(ctx context.Context, actor *domain.User, title, content string) (domain.ForumPost, error) {
	ctx, span := otel.Tracer("services/ForumService").Start(ctx, "CreatePost")
	defer span.End()

	if err := requireUser(actor); err != nil {
		return domain.ForumPost{}, err
	}
	title, err := text(title, s.TitleMaxRunes)
	if err != nil {
		return domain.ForumPost{}, err
	}
	content, err = text(content, s.ContentMaxRunes)
	if err != nil {
		return domain.ForumPost{}, err
	}
	now := stamp(s.Now.now())
	p := domain.ForumPost{
		ID:          now,
		Title:       title,
		Content:     content,
		AuthorEmail: actor.Email,
		AuthorID:    actor.ID,
		CreatedAt:   now,
		Comments:    []domain.ForumComment{},
	}
	if err := s.Repo.Prepend(ctx, s.Store, p); err != nil {
		return domain.ForumPost{}, err
	}
	observability.RecordContent("post", "create")
	return p, nil
}

// AddComment appends a comment to a post.
func (s *ForumService) AddComment(ctx context.Context, actor *domain.User, postID, content string) (domain.ForumComment, error) {
	ctx, span := otel.Tracer("services/ForumService").Start(ctx, "AddComment",
		trace.WithAttributes(attribute.String("post.id", postID)))
	defer span.End()

	if err := requireUser(actor); err != nil {
		return domain.ForumComment{}, err
	}
	content, err := text(content, s.ContentMaxRunes)
	if err != nil {
		return domain.ForumComment{}, err
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return domain.ForumComment{}, err
	}
	now := stamp(s.Now.now())
	c := domain.ForumComment{
		ID:          now,
		Content:     content,
		AuthorEmail: actor.Email,
		AuthorID:    actor.ID,
		CreatedAt:   now,
	}
	p.Comments = append(p.Comments, c)
	if err := s.replace(ctx, p); err != nil {
		return domain.ForumComment{}, err
	}
	observability.RecordContent("comment", "create")
	return c, nil
}

// DeletePost removes a post together with all of its comments in a single
// write of the post list.
func (s *ForumService) DeletePost(ctx context.Context, actor *domain.User, postID string) error {
	ctx, span := otel.Tracer("services/ForumService").Start(ctx, "DeletePost",
		trace.WithAttributes(attribute.String("post.id", postID)))
	defer span.End()

	if err := requireUser(actor); err != nil {
		return err
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if !forum.CanDelete(actor, p.AuthorID) {
		return ErrForbidden
	}
	if err := s.Repo.Delete(ctx, s.Store, postID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	observability.RecordContent("post", "delete")
	return nil
}

// DeleteComment removes one comment and leaves its siblings untouched.
func (s *ForumService) DeleteComment(ctx context.Context, actor *domain.User, postID, commentID string) error {
	ctx, span := otel.Tracer("services/ForumService").Start(ctx, "DeleteComment",
		trace.WithAttributes(attribute.String("post.id", postID), attribute.String("comment.id", commentID)))
	defer span.End()

	if err := requireUser(actor); err != nil {
		return err
	}
	p, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	idx := -1
	for i, c := range p.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCommentNotFound
	}
	if !forum.CanDelete(actor, p.Comments[idx].AuthorID) {
		return ErrForbidden
	}
	kept := make([]domain.ForumComment, 0, len(p.Comments)-1)
	kept = append(kept, p.Comments[:idx]...)
	kept = append(kept, p.Comments[idx+1:]...)
	p.Comments = kept
	if err := s.replace(ctx, p); err != nil {
		return err
	}
	observability.RecordContent("comment", "delete")
	return nil
}

func (s *ForumService) replace(ctx context.Context, p domain.ForumPost) error {
	err := s.Repo.Replace(ctx, s.Store, p)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrPostNotFound
	}
	return err
}
