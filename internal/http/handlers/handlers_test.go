package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/assistant"
	"github.com/tbourn/go-wellness-backend/internal/auth"
	"github.com/tbourn/go-wellness-backend/internal/http/middleware"
	"github.com/tbourn/go-wellness-backend/internal/i18n"
	"github.com/tbourn/go-wellness-backend/internal/services"
	"github.com/tbourn/go-wellness-backend/internal/store"
)

// ---------- test environment ----------

const (
	testAdminEmail    = "admin@resi.app"
	testAdminPassword = "admin-pw"
)

type fakeProvider struct {
	chunks []string
	err    error
	got    []assistant.Request
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Stream(ctx context.Context, req assistant.Request, onChunk func(string) error) error {
	f.got = append(f.got, req)
	for _, c := range f.chunks {
		if err := onChunk(c); err != nil {
			return err
		}
	}
	return f.err
}

type testEnv struct {
	t        *testing.T
	engine   *gin.Engine
	h        *Handlers
	store    *store.Store
	provider *fakeProvider
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(store.NewMemoryEngine(0))
	res := i18n.New(nil, "en")
	if err := res.LoadEmbedded(context.Background()); err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	dir := auth.NewDirectory(s, auth.Admin{Email: testAdminEmail, Password: testAdminPassword})
	tokens := auth.NewTokens("0123456789abcdef-test", "resi-test", time.Hour)
	assessments := &services.AssessmentService{Store: s}
	p := &fakeProvider{chunks: []string{"Hello", " there"}}

	h := &Handlers{
		Accounts:    &services.AccountService{Directory: dir, Tokens: tokens},
		Journal:     &services.JournalService{Store: s, MaxRunes: 50},
		Challenges:  &services.ChallengeService{Store: s, I18n: res},
		Assessments: assessments,
		Forum:       services.NewForumService(s),
		Catalog:     &services.CatalogService{Store: s},
		Admin:       &services.AdminService{Store: s, Directory: dir},
		Dashboard:   &services.DashboardService{Store: s, Assessments: assessments},
		Chat:        services.NewChatService(s, p),
		I18n:        res,
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Locale(res), middleware.Authenticate(h.Accounts))
	h.Register(r.Group(""))
	return &testEnv{t: t, engine: r, h: h, store: s, provider: p}
}

// do sends a JSON request. token may be empty; extra holds header pairs.
func (e *testEnv) do(method, path string, body any, token string, extra ...string) *httptest.ResponseRecorder {
	e.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			e.t.Fatalf("marshal: %v", err)
		}
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(extra); i += 2 {
		req.Header.Set(extra[i], extra[i+1])
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// signup registers email and returns its token.
func (e *testEnv) signup(email string) string {
	e.t.Helper()
	w := e.do(http.MethodPost, "/auth/signup", CredentialsRequest{Email: email, Password: "pw"}, "")
	if w.Code != http.StatusCreated {
		e.t.Fatalf("signup %s: %d %s", email, w.Code, w.Body.String())
	}
	var sess services.Session
	decode(e.t, w, &sess)
	return sess.Token
}

func (e *testEnv) adminToken() string {
	e.t.Helper()
	w := e.do(http.MethodPost, "/auth/login", CredentialsRequest{Email: testAdminEmail, Password: testAdminPassword}, "")
	if w.Code != http.StatusOK {
		e.t.Fatalf("admin login: %d %s", w.Code, w.Body.String())
	}
	var sess services.Session
	decode(e.t, w, &sess)
	return sess.Token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status=%d want %d body=%s", w.Code, status, w.Body.String())
	}
	var er ErrorResponse
	decode(t, w, &er)
	if er.Code != code {
		t.Fatalf("code=%q want %q", er.Code, code)
	}
	return er
}
