package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

type fakeVerifier map[string]domain.User

func (f fakeVerifier) Verify(_ context.Context, token string) (domain.User, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	return domain.User{}, errors.New("bad token")
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Authenticate(fakeVerifier{
		"user-tok":  {ID: "u1", Email: "a@e.com"},
		"admin-tok": {ID: "admin-user", Email: "admin@e.com", IsAdmin: true},
	}))
	r.GET("/who", func(c *gin.Context) {
		if u := UserFrom(c); u != nil {
			c.String(http.StatusOK, u.ID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	r.GET("/mine", RequireUser(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func call(r http.Handler, path, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	r := authRouter()

	if w := call(r, "/who", ""); w.Body.String() != "anonymous" {
		t.Fatalf("no header: %q", w.Body.String())
	}
	if w := call(r, "/who", "Bearer user-tok"); w.Body.String() != "u1" {
		t.Fatalf("valid token: %q", w.Body.String())
	}
	if w := call(r, "/who", "bearer user-tok"); w.Body.String() != "u1" {
		t.Fatalf("scheme is case-insensitive: %q", w.Body.String())
	}
	for _, bad := range []string{"Bearer nope", "Basic abc", "Bearer", "user-tok"} {
		w := call(r, "/who", bad)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%q: want 401, got %d", bad, w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "unauthorized" {
			t.Fatalf("%q: body %v", bad, body)
		}
	}
}

func TestRequireUserAndAdmin(t *testing.T) {
	r := authRouter()

	cases := []struct {
		path, auth string
		want       int
	}{
		{"/mine", "", http.StatusUnauthorized},
		{"/mine", "Bearer user-tok", http.StatusOK},
		{"/admin", "", http.StatusUnauthorized},
		{"/admin", "Bearer user-tok", http.StatusForbidden},
		{"/admin", "Bearer admin-tok", http.StatusOK},
	}
	for _, tc := range cases {
		if w := call(r, tc.path, tc.auth); w.Code != tc.want {
			t.Errorf("%s with %q = %d, want %d", tc.path, tc.auth, w.Code, tc.want)
		}
	}
}
