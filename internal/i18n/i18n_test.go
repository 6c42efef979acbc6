package i18n

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"testing/fstest"
	"time"

	"github.com/tbourn/go-wellness-backend/internal/store"
)

func testResolver() *Resolver {
	return NewFromMaps("en", map[string]map[string]any{
		"en": {
			"a":     map[string]any{"b": "Hi {{name}}"},
			"greet": "Hello {{name}}, you have {{count}} messages",
			"only":  "english only",
			"list":  []any{"one", "two"},
		},
		"vi": {
			"a":     map[string]any{"b": "Chào {{name}}"},
			"greet": "Xin chào {{name}}",
			"list":  []any{"một", "hai"},
		},
	})
}

func TestResolve_MissingKeyReturnsKey(t *testing.T) {
	r := testResolver()
	if got := r.Resolve("nonexistent.key"); got != "nonexistent.key" {
		t.Fatalf("got %v", got)
	}
	if got := r.T("a.b.c"); got != "a.b.c" {
		t.Fatalf("walking past a leaf must fail, got %q", got)
	}
}

func TestResolve_Interpolation(t *testing.T) {
	r := testResolver()
	if got := r.Resolve("a.b", Options{Params: Params{"name": "X"}}); got != "Hi X" {
		t.Fatalf("got %v", got)
	}
	got := r.T("greet", Params{"count": 3})
	if got != "Hello {{name}}, you have 3 messages" {
		t.Fatalf("unmatched placeholders must stay verbatim, got %q", got)
	}
}

func TestResolve_InterpolationDoesNotRescanValues(t *testing.T) {
	r := testResolver()
	// values that look like placeholders are inserted literally, every time
	for i := 0; i < 200; i++ {
		got := r.T("greet", Params{"name": "{{count}}", "count": 7})
		if got != "Hello {{count}}, you have 7 messages" {
			t.Fatalf("run %d: got %q", i, got)
		}
		if got := r.T("a.b", Params{"name": "{{x}}", "x": "Y"}); got != "Hi {{x}}" {
			t.Fatalf("run %d: got %q", i, got)
		}
	}
}

func TestResolve_FallbackLocale(t *testing.T) {
	r := testResolver()
	if err := r.SetLocale(context.Background(), "vi"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if got := r.T("a.b", Params{"name": "An"}); got != "Chào An" {
		t.Fatalf("got %q", got)
	}
	if got := r.T("only"); got != "english only" {
		t.Fatalf("fallback: got %q", got)
	}
	if got := r.In("fr").T("a.b", Params{"name": "Z"}); got != "Hi Z" {
		t.Fatalf("unknown locale should fall back, got %q", got)
	}
}

func TestResolve_ReturnObjects(t *testing.T) {
	r := testResolver()
	got := r.Resolve("list", Options{ReturnObjects: true})
	if !reflect.DeepEqual(got, []any{"one", "two"}) {
		t.Fatalf("got %#v", got)
	}
	if got := r.T("list"); got != "list" {
		t.Fatalf("T on a list should return the key, got %q", got)
	}
	if got := r.T("list.1"); got != "two" {
		t.Fatalf("array element path: got %q", got)
	}
	raw := r.Resolve("a.b", Options{ReturnObjects: true, Params: Params{"name": "X"}})
	if raw != "Hi {{name}}" {
		t.Fatalf("ReturnObjects must skip interpolation, got %v", raw)
	}
}

func TestDecode(t *testing.T) {
	r := testResolver()
	var list []string
	if err := r.Decode("list", &list); err != nil || len(list) != 2 || list[0] != "one" {
		t.Fatalf("Decode: %v %v", list, err)
	}
	if err := r.Decode("missing", &list); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("want ErrKeyNotFound, got %v", err)
	}
}

func TestSetLocale_PersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	s := store.New(store.NewMemoryEngine(0))

	r := New(s, "en")
	if err := r.LoadEmbedded(ctx); err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if err := r.SetLocale(ctx, "xx"); !errors.Is(err, ErrUnsupportedLocale) {
		t.Fatalf("want ErrUnsupportedLocale, got %v", err)
	}
	if err := r.SetLocale(ctx, "vi"); err != nil {
		t.Fatalf("SetLocale: %v", err)
	}
	if got := store.Read(ctx, s, store.KeyLanguage, ""); got != "vi" {
		t.Fatalf("stored language = %q", got)
	}

	again := New(s, "en")
	if err := again.LoadEmbedded(ctx); err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if again.Active() != "vi" {
		t.Fatalf("restored locale = %q", again.Active())
	}
	if again.T("nav.home") != "Trang chủ" {
		t.Fatalf("nav.home = %q", again.T("nav.home"))
	}
}

func TestLoad_BlocksUntilReady(t *testing.T) {
	r := New(nil, "en")
	done := make(chan string, 1)
	go func() { done <- r.T("k") }()

	select {
	case <-done:
		t.Fatal("lookup returned before load")
	case <-time.After(30 * time.Millisecond):
	}
	if r.Loaded() {
		t.Fatal("Loaded before Load")
	}

	fsys := fstest.MapFS{"en.json": {Data: []byte(`{"k":"v"}`)}}
	if err := r.Load(context.Background(), fsys); err != nil {
		t.Fatalf("Load: %v", err)
	}
	select {
	case got := <-done:
		if got != "v" {
			t.Fatalf("got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatal("lookup still blocked after load")
	}
	if err := r.Load(context.Background(), fsys); err == nil {
		t.Fatal("second Load should fail")
	}
}

func TestWait_ContextCancelled(t *testing.T) {
	r := New(nil, "en")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestLoad_BadFileStillReleases(t *testing.T) {
	r := New(nil, "en")
	fsys := fstest.MapFS{
		"en.json": {Data: []byte(`{"k":"v"}`)},
		"vi.json": {Data: []byte(`{broken`)},
	}
	if err := r.Load(context.Background(), fsys); err == nil {
		t.Fatal("want parse error")
	}
	if r.T("k") != "v" || r.Supports("vi") {
		t.Fatal("valid locales should still serve")
	}
}

func TestNegotiate(t *testing.T) {
	r := testResolver()
	cases := map[string]string{
		"vi-VN,vi;q=0.9,en;q=0.8": "vi",
		"en-US":                   "en",
		"":                        "en",
		"fr-FR":                   "en",
	}
	for header, want := range cases {
		if got := r.Negotiate(header); got != want {
			t.Errorf("Negotiate(%q) = %q, want %q", header, got, want)
		}
	}
}

func TestMissing(t *testing.T) {
	r := testResolver()
	if got := r.Missing("vi"); !reflect.DeepEqual(got, []string{"only"}) {
		t.Fatalf("Missing(vi) = %v", got)
	}
	if got := r.Missing("en"); got != nil {
		t.Fatalf("fallback has nothing missing, got %v", got)
	}
}

func TestEmbeddedLocalesShareShape(t *testing.T) {
	r := New(nil, "en")
	if err := r.LoadEmbedded(context.Background()); err != nil {
		t.Fatalf("LoadEmbedded: %v", err)
	}
	if m := r.Missing("vi"); len(m) != 0 {
		t.Fatalf("vi missing keys: %v", m)
	}
	var list []string
	if err := r.In("vi").Decode("challenges.list", &list); err != nil || len(list) != 15 {
		t.Fatalf("challenges.list: %d %v", len(list), err)
	}
	var qs []struct {
		Text  string `json:"text"`
		Scale string `json:"scale"`
	}
	if err := r.Decode("tests.dass21.questions", &qs); err != nil || len(qs) != 21 {
		t.Fatalf("questions: %d %v", len(qs), err)
	}
	if got := r.T("errors.assistant_unconfigured"); got == "errors.assistant_unconfigured" {
		t.Fatal("error messages must be present")
	}
}
