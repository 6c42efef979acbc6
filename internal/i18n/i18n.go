// Package i18n resolves dotted translation keys against per-locale JSON
// dictionaries.
//
// Dictionaries are flattened once at load time into a map keyed by the full
// dotted path. Every node is addressable: leaves, objects and arrays (array
// elements by index, e.g. "challenges.list.0"). Lookups issued before the
// load finishes block until it does, so callers never observe a partially
// loaded dictionary.
//
// Resolution order is active locale, then FallbackLocale, then the literal
// key. Resolution never fails.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/tbourn/go-wellness-backend/internal/store"
)

// FallbackLocale is consulted when the active locale lacks a key.
const FallbackLocale = "en"

//go:embed locales/*.json
var embedded embed.FS

var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrKeyNotFound       = errors.New("translation key not found")
)

// Params are the named values substituted into {{name}} placeholders.
type Params map[string]any

// Options tune a single lookup. ReturnObjects returns the stored value as is
// (strings, lists, objects) and skips interpolation.
type Options struct {
	Params        Params
	ReturnObjects bool
}

// Resolver holds the loaded dictionaries and the active locale.
type Resolver struct {
	store *store.Store
	def   string

	ready    chan struct{}
	loadOnce sync.Once

	mu      sync.RWMutex
	active  string
	locales []string
	dicts   map[string]map[string]any
	matcher language.Matcher
}

// New returns a resolver that persists the active locale in s (nil disables
// persistence). defaultLocale is used when nothing valid is stored. Lookups
// block until Load or LoadEmbedded completes.
func New(s *store.Store, defaultLocale string) *Resolver {
	if defaultLocale == "" {
		defaultLocale = FallbackLocale
	}
	return &Resolver{store: s, def: defaultLocale, ready: make(chan struct{})}
}

// NewFromMaps builds a ready resolver from in-memory trees. Useful in tests
// and for callers that assemble dictionaries themselves.
func NewFromMaps(defaultLocale string, trees map[string]map[string]any) *Resolver {
	r := New(nil, defaultLocale)
	dicts := make(map[string]map[string]any, len(trees))
	for loc, tree := range trees {
		flat := map[string]any{}
		flatten("", tree, flat)
		dicts[loc] = flat
	}
	r.install(context.Background(), dicts)
	return r
}

// LoadEmbedded loads the dictionaries compiled into the binary.
func (r *Resolver) LoadEmbedded(ctx context.Context) error {
	sub, err := fs.Sub(embedded, "locales")
	if err != nil {
		return err
	}
	return r.Load(ctx, sub)
}

// Load reads every <locale>.json at the root of fsys. It may be called once;
// later calls return an error. On failure the resolver is still released
// with whatever parsed, so blocked lookups fall through to the literal key.
func (r *Resolver) Load(ctx context.Context, fsys fs.FS) error {
	loaded := false
	var err error
	r.loadOnce.Do(func() {
		loaded = true
		var dicts map[string]map[string]any
		dicts, err = readDicts(fsys)
		r.install(ctx, dicts)
	})
	if !loaded {
		return errors.New("i18n: dictionaries already loaded")
	}
	return err
}

func readDicts(fsys fs.FS) (map[string]map[string]any, error) {
	dicts := map[string]map[string]any{}
	matches, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return dicts, err
	}
	var errs []error
	for _, name := range matches {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		var tree map[string]any
		if err := json.Unmarshal(raw, &tree); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		flat := map[string]any{}
		flatten("", tree, flat)
		dicts[strings.TrimSuffix(name, ".json")] = flat
	}
	if _, ok := dicts[FallbackLocale]; !ok {
		errs = append(errs, fmt.Errorf("fallback locale %q missing", FallbackLocale))
	}
	return dicts, errors.Join(errs...)
}

func (r *Resolver) install(ctx context.Context, dicts map[string]map[string]any) {
	locales := make([]string, 0, len(dicts))
	for loc := range dicts {
		locales = append(locales, loc)
	}
	sort.Slice(locales, func(i, j int) bool {
		// fallback first so the matcher prefers it on ties
		if (locales[i] == FallbackLocale) != (locales[j] == FallbackLocale) {
			return locales[i] == FallbackLocale
		}
		return locales[i] < locales[j]
	})
	tags := make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		tags = append(tags, language.Make(loc))
	}

	active := r.def
	if r.store != nil {
		if stored := store.Read(ctx, r.store, store.KeyLanguage, ""); stored != "" {
			active = stored
		}
	}
	if _, ok := dicts[active]; !ok {
		active = FallbackLocale
	}

	r.mu.Lock()
	r.dicts = dicts
	r.locales = locales
	r.active = active
	r.matcher = language.NewMatcher(tags)
	r.mu.Unlock()
	close(r.ready)

	for _, loc := range locales {
		if missing := r.Missing(loc); len(missing) > 0 {
			log.Warn().Str("locale", loc).Int("count", len(missing)).
				Strs("keys", head(missing, 10)).Msg("translation keys missing")
		}
	}
	log.Info().Strs("locales", locales).Str("active", active).Msg("translations loaded")
}

// Wait blocks until the dictionaries are loaded or ctx is done.
func (r *Resolver) Wait(ctx context.Context) error {
	select {
	case <-r.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loaded reports whether loading has completed.
func (r *Resolver) Loaded() bool {
	select {
	case <-r.ready:
		return true
	default:
		return false
	}
}

// Locales lists the loaded locales, fallback first.
func (r *Resolver) Locales() []string {
	<-r.ready
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.locales...)
}

// Supports reports whether locale was loaded.
func (r *Resolver) Supports(locale string) bool {
	<-r.ready
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.dicts[locale]
	return ok
}

// Active returns the active locale.
func (r *Resolver) Active() string {
	<-r.ready
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// SetLocale switches the active locale and persists the choice under the
// "language" key.
func (r *Resolver) SetLocale(ctx context.Context, locale string) error {
	if !r.Supports(locale) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, locale)
	}
	r.mu.Lock()
	r.active = locale
	r.mu.Unlock()
	if r.store == nil {
		return nil
	}
	return store.Write(ctx, r.store, store.KeyLanguage, locale)
}

// Negotiate picks the best loaded locale for an Accept-Language header.
// An empty or unparsable header yields the active locale.
func (r *Resolver) Negotiate(acceptLanguage string) string {
	<-r.ready
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 || len(r.locales) == 0 {
		return r.active
	}
	_, idx, conf := r.matcher.Match(tags...)
	if conf == language.No {
		return r.active
	}
	return r.locales[idx]
}

// Missing returns the leaf paths present in the fallback dictionary but not
// in locale, sorted.
func (r *Resolver) Missing(locale string) []string {
	<-r.ready
	r.mu.RLock()
	defer r.mu.RUnlock()
	base, ok := r.dicts[FallbackLocale]
	target := r.dicts[locale]
	if !ok || locale == FallbackLocale {
		return nil
	}
	var out []string
	for k, v := range base {
		if isContainer(v) {
			continue
		}
		if _, ok := target[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// In returns a view bound to locale. Unknown locales resolve through the
// fallback.
func (r *Resolver) In(locale string) Localizer {
	return Localizer{r: r, locale: locale}
}

// Resolve looks key up in the active locale.
func (r *Resolver) Resolve(key string, opts ...Options) any {
	return r.In(r.Active()).Resolve(key, opts...)
}

// T returns the interpolated string for key in the active locale.
func (r *Resolver) T(key string, params ...Params) string {
	return r.In(r.Active()).T(key, params...)
}

// Decode unmarshals the structured value at key in the active locale.
func (r *Resolver) Decode(key string, out any) error {
	return r.In(r.Active()).Decode(key, out)
}

func (r *Resolver) lookup(locale, key string) (any, bool) {
	<-r.ready
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.dicts[locale][key]; ok {
		return v, true
	}
	if v, ok := r.dicts[FallbackLocale][key]; ok {
		return v, true
	}
	return nil, false
}

// Localizer resolves keys for one locale.
type Localizer struct {
	r      *Resolver
	locale string
}

// Locale returns the bound locale.
func (l Localizer) Locale() string { return l.locale }

// Resolve returns the value for key: an interpolated string, the raw value
// when ReturnObjects is set, or the key itself when nothing matches.
func (l Localizer) Resolve(key string, opts ...Options) any {
	v, ok := l.r.lookup(l.locale, key)
	if !ok {
		return key
	}
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.ReturnObjects {
		return v
	}
	if s, ok := v.(string); ok {
		return interpolate(s, o.Params)
	}
	return v
}

// T is Resolve restricted to strings. Keys naming a list or object return
// the key.
func (l Localizer) T(key string, params ...Params) string {
	var o Options
	if len(params) > 0 {
		o.Params = params[0]
	}
	if s, ok := l.Resolve(key, o).(string); ok {
		return s
	}
	return key
}

// Decode unmarshals the raw value at key into out.
func (l Localizer) Decode(key string, out any) error {
	v, ok := l.r.lookup(l.locale, key)
	if !ok {
		return fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

var placeholder = regexp.MustCompile(`\{\{(\w+)\}\}`)

// interpolate substitutes {{name}} placeholders in one pass: substituted
// values are never rescanned and unknown names are left as written.
func interpolate(s string, params Params) string {
	if len(params) == 0 {
		return s
	}
	return placeholder.ReplaceAllStringFunc(s, func(m string) string {
		if v, ok := params[m[2:len(m)-2]]; ok {
			return fmt.Sprint(v)
		}
		return m
	})
}

func flatten(prefix string, node any, out map[string]any) {
	if prefix != "" {
		out[prefix] = node
	}
	join := func(k string) string {
		if prefix == "" {
			return k
		}
		return prefix + "." + k
	}
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			flatten(join(k), v, out)
		}
	case []any:
		for i, v := range n {
			flatten(join(strconv.Itoa(i)), v, out)
		}
	}
}

func isContainer(v any) bool {
	switch v.(type) {
	case map[string]any, []any:
		return true
	}
	return false
}

func head(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
