package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tbourn/go-wellness-backend/internal/domain"
)

func TestCatalog_VideosAndSounds(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken()
	user := e.signup("alice@e.com")

	req := VideoRequest{Title: "Box breathing", URL: "https://youtu.be/tEmt1Znux58"}
	expectError(t, e.do(http.MethodPost, "/resources/videos", req, ""), http.StatusUnauthorized, "unauthorized")
	expectError(t, e.do(http.MethodPost, "/resources/videos", req, user), http.StatusForbidden, "forbidden")
	expectError(t, e.do(http.MethodPost, "/resources/videos", VideoRequest{Title: "x", URL: "https://example.com"}, admin),
		http.StatusBadRequest, ErrCodeInvalidVideo)

	var v domain.ResourceVideo
	w := e.do(http.MethodPost, "/resources/videos", req, admin)
	decode(t, w, &v)
	if w.Code != http.StatusCreated || v.VideoID != "tEmt1Znux58" {
		t.Fatalf("add video: %d %+v", w.Code, v)
	}

	var videos []domain.ResourceVideo
	decode(t, e.do(http.MethodGet, "/resources/videos", nil, ""), &videos)
	if len(videos) != 1 {
		t.Fatalf("videos: %+v", videos)
	}
	if w := e.do(http.MethodDelete, "/resources/videos/"+v.ID, nil, admin); w.Code != http.StatusNoContent {
		t.Fatalf("delete video: %d", w.Code)
	}
	expectError(t, e.do(http.MethodDelete, "/resources/videos/"+v.ID, nil, admin), http.StatusNotFound, ErrCodeNotFound)

	var s domain.NatureSound
	w = e.do(http.MethodPost, "/resources/sounds", SoundRequest{Name: "Rain", URL: "q76bMs-NwRk"}, admin)
	decode(t, w, &s)
	if w.Code != http.StatusCreated || s.VideoID != "q76bMs-NwRk" {
		t.Fatalf("add sound: %d %+v", w.Code, s)
	}
	var sounds []domain.NatureSound
	decode(t, e.do(http.MethodGet, "/resources/sounds", nil, ""), &sounds)
	if len(sounds) != 1 {
		t.Fatalf("sounds: %+v", sounds)
	}
	if w := e.do(http.MethodDelete, "/resources/sounds/"+s.ID, nil, admin); w.Code != http.StatusNoContent {
		t.Fatalf("delete sound: %d", w.Code)
	}
}

func TestCatalog_Knowledge(t *testing.T) {
	e := newEnv(t)
	admin := e.adminToken()

	expectError(t, e.do(http.MethodGet, "/admin/knowledge", nil, e.signup("alice@e.com")), http.StatusForbidden, "forbidden")

	var d domain.KnowledgeDocument
	w := e.do(http.MethodPost, "/admin/knowledge", KnowledgeRequest{Title: "Hotlines", Content: "Call 111"}, admin)
	decode(t, w, &d)
	if w.Code != http.StatusCreated || d.ID == "" {
		t.Fatalf("add: %d %+v", w.Code, d)
	}

	// multipart Markdown import; title defaults to the file name
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "sleep-tips.md")
	if err != nil {
		t.Fatal(err)
	}
	_, _ = fw.Write([]byte("# Sleep\n\n| Tip | Why |\n|---|---|\n| Dark room | Melatonin |\n"))
	_ = mw.Close()
	req := httptest.NewRequest(http.MethodPost, "/admin/knowledge/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+admin)
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("import: %d %s", rec.Code, rec.Body.String())
	}
	var imported domain.KnowledgeDocument
	decode(t, rec, &imported)
	if imported.Title != "sleep-tips" || !strings.Contains(imported.Content, "Dark room") || strings.Contains(imported.Content, "|---|") {
		t.Fatalf("imported: %+v", imported)
	}

	// import without a file
	expectError(t, e.do(http.MethodPost, "/admin/knowledge/import", nil, admin), http.StatusBadRequest, ErrCodeBadRequest)

	var docs []domain.KnowledgeDocument
	decode(t, e.do(http.MethodGet, "/admin/knowledge", nil, admin), &docs)
	if len(docs) != 2 {
		t.Fatalf("docs: %+v", docs)
	}
	if w := e.do(http.MethodDelete, "/admin/knowledge/"+d.ID, nil, admin); w.Code != http.StatusNoContent {
		t.Fatalf("delete: %d", w.Code)
	}
}
