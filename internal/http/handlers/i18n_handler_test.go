package handlers

import (
	"net/http"
	"testing"
)

func TestI18n_Locales(t *testing.T) {
	e := newEnv(t)
	var resp LocalesResponse
	decode(t, e.do(http.MethodGet, "/i18n/locales", nil, "", "Accept-Language", "vi-VN,vi;q=0.9"), &resp)
	if len(resp.Locales) != 2 || resp.Locales[0] != "en" || resp.Default != "en" || resp.Current != "vi" {
		t.Fatalf("locales: %+v", resp)
	}
}

func TestI18n_Translate(t *testing.T) {
	e := newEnv(t)

	var tr TranslationResponse
	w := e.do(http.MethodGet, "/i18n/translations/vi/errors.not_found", nil, "")
	decode(t, w, &tr)
	if w.Code != http.StatusOK || tr.Value != "Không tìm thấy mục được yêu cầu." {
		t.Fatalf("vi: %d %+v", w.Code, tr)
	}

	// lists come back as stored
	w = e.do(http.MethodGet, "/i18n/translations/en/tests.dass21.options", nil, "")
	decode(t, w, &tr)
	if opts, ok := tr.Value.([]any); !ok || len(opts) != 4 {
		t.Fatalf("options: %+v", tr.Value)
	}

	expectError(t, e.do(http.MethodGet, "/i18n/translations/fr/errors.not_found", nil, ""), http.StatusNotFound, ErrCodeNotFound)
	expectError(t, e.do(http.MethodGet, "/i18n/translations/en/no.such.key", nil, ""), http.StatusNotFound, ErrCodeNotFound)
}
