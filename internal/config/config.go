// Package config provides application configuration loaded from environment
// variables with defaults and validation. It centralizes server timeouts,
// logging, the storage engine, credentials, the assistant provider, rate
// limiting and observability.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted by STORE_DRIVER.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Assistant providers accepted by ASSISTANT_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderLocal  = "local"
)

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins []string
}

// SecurityConfig defines security-related settings such as HSTS.
type SecurityConfig struct {
	EnableHSTS bool
	HSTSMaxAge time.Duration
}

// OTELConfig defines OpenTelemetry observability settings.
type OTELConfig struct {
	Enabled     bool    // OTEL_ENABLED
	Endpoint    string  // OTEL_EXPORTER_OTLP_ENDPOINT (e.g. "otel:4317")
	Insecure    bool    // OTEL_EXPORTER_OTLP_INSECURE (true if no TLS)
	ServiceName string  // OTEL_SERVICE_NAME
	SampleRatio float64 // OTEL_TRACES_SAMPLER_ARG in [0..1]
}

// StoreConfig selects and sizes the key-value engine.
type StoreConfig struct {
	Driver     string // memory|sqlite|redis
	DBPath     string // SQLite path
	RedisAddr  string // host:port
	RedisDB    int
	RedisKey   string // key prefix inside Redis
	QuotaBytes int    // memory engine quota; 0 = unlimited
}

// AuthConfig holds the administrator credential and token settings.
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string // empty disables admin login
	JWTSecret     string
	JWTIssuer     string
	JWTTTL        time.Duration
}

// AssistantConfig selects the chat provider.
type AssistantConfig struct {
	Provider       string // gemini|local
	GeminiAPIKey   string
	GeminiModel    string
	GeminiBaseURL  string
	Timeout        time.Duration
	MaxPromptRunes int
	IdleTimeout    time.Duration // open conversations idle longer are closed
	SweepInterval  time.Duration
}

// I18nConfig points at the translation dictionaries.
type I18nConfig struct {
	LocalesDir    string // empty = embedded dictionaries
	DefaultLocale string
}

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port              string        // just the number
	ReadTimeout       time.Duration // e.g. 15s
	ReadHeaderTimeout time.Duration // e.g. 10s
	WriteTimeout      time.Duration // streaming replies need room
	IdleTimeout       time.Duration // e.g. 60s
	MaxHeaderBytes    int           // bytes
	GinMode           string        // debug|release|test

	// Logging / Docs
	LogLevel       string // debug|info|warn|error|fatal|panic
	LogPretty      bool   // pretty console logs in dev
	SwaggerEnabled bool   // enable Swagger UI route
	APIBasePath    string // base path for API routes

	// App
	Store     StoreConfig
	Auth      AuthConfig
	Assistant AssistantConfig
	I18n      I18nConfig

	// Rate limiting
	RateRPS   float64 // tokens per second (>= 0)
	RateBurst int     // bucket size (>= 1)

	// Web protection
	CORS     CORSConfig
	Security SecurityConfig

	// Observability
	OTEL OTELConfig
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads configuration from environment variables,
// applies defaults, normalizes values, and validates the result.
func Load() (Config, error) {
	cfg := Config{
		// Server
		Port:              getenv("PORT", "8080"),
		ReadTimeout:       getdur("READ_TIMEOUT", 15*time.Second),
		ReadHeaderTimeout: getdur("READ_HEADER_TIMEOUT", 10*time.Second),
		WriteTimeout:      getdur("WRITE_TIMEOUT", 120*time.Second),
		IdleTimeout:       getdur("IDLE_TIMEOUT", 60*time.Second),
		MaxHeaderBytes:    getint("MAX_HEADER_BYTES", 1<<20),
		GinMode:           strings.ToLower(getenv("GIN_MODE", "release")),

		// Logging / Docs
		LogLevel:       strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogPretty:      getbool("LOG_PRETTY", false),
		SwaggerEnabled: getbool("SWAGGER_ENABLED", false),
		APIBasePath:    normalizeBasePath(getenv("API_BASE_PATH", "/api/v1")),

		// App
		Store: StoreConfig{
			Driver:     strings.ToLower(getenv("STORE_DRIVER", DriverSQLite)),
			DBPath:     getenv("DB_PATH", "resi.db"),
			RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
			RedisDB:    getint("REDIS_DB", 0),
			RedisKey:   getenv("REDIS_KEY_PREFIX", "resi:"),
			QuotaBytes: getint("STORE_QUOTA_BYTES", 5<<20),
		},
		Auth: AuthConfig{
			AdminEmail:    strings.TrimSpace(getenv("ADMIN_EMAIL", "admin@resi.app")),
			AdminPassword: getenv("ADMIN_PASSWORD", ""),
			JWTSecret:     getenv("JWT_SECRET", ""),
			JWTIssuer:     getenv("JWT_ISSUER", "resi"),
			JWTTTL:        getdur("JWT_TTL", 24*time.Hour),
		},
		Assistant: AssistantConfig{
			Provider:       strings.ToLower(getenv("ASSISTANT_PROVIDER", ProviderGemini)),
			GeminiAPIKey:   getenv("GEMINI_API_KEY", ""),
			GeminiModel:    getenv("GEMINI_MODEL", "gemini-2.5-flash"),
			GeminiBaseURL:  getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			Timeout:        getdur("ASSISTANT_TIMEOUT", 90*time.Second),
			MaxPromptRunes: getint("ASSISTANT_MAX_PROMPT_RUNES", 4000),
			IdleTimeout:    getdur("CHAT_IDLE_TIMEOUT", 30*time.Minute),
			SweepInterval:  getdur("CHAT_SWEEP_INTERVAL", time.Minute),
		},
		I18n: I18nConfig{
			LocalesDir:    getenv("LOCALES_DIR", ""),
			DefaultLocale: strings.ToLower(getenv("DEFAULT_LOCALE", "en")),
		},

		// Rate limiting
		RateRPS:   getfloat("RATE_RPS", 5.0),
		RateBurst: getint("RATE_BURST", 10),

		// Web protection
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "")),
		},
		Security: SecurityConfig{
			EnableHSTS: getbool("ENABLE_HSTS", false),
			HSTSMaxAge: getdur("HSTS_MAX_AGE", 180*24*time.Hour),
		},

		// Observability (OpenTelemetry)
		OTEL: OTELConfig{
			Enabled:     getbool("OTEL_ENABLED", false),
			Endpoint:    getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			Insecure:    getbool("OTEL_EXPORTER_OTLP_INSECURE", true),
			ServiceName: getenv("OTEL_SERVICE_NAME", "go-wellness-backend"),
			SampleRatio: getfloat("OTEL_TRACES_SAMPLER_ARG", 1.0),
		},
	}

	// --- normalization ---
	if cfg.LogLevel == "warning" {
		cfg.LogLevel = "warn"
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		cfg.GinMode = "release"
	}

	// --- validation ---
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "fatal", "panic":
	default:
		return cfg, errors.New("LOG_LEVEL must be one of: debug, info, warn, error, fatal, panic")
	}
	if strings.TrimSpace(cfg.Port) == "" {
		return cfg, errors.New("PORT must not be empty")
	}
	if cfg.ReadTimeout <= 0 || cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 {
		return cfg, errors.New("timeouts must be positive durations")
	}
	if cfg.MaxHeaderBytes <= 0 {
		return cfg, errors.New("MAX_HEADER_BYTES must be > 0")
	}
	switch cfg.Store.Driver {
	case DriverMemory:
		if cfg.Store.QuotaBytes < 0 {
			return cfg, errors.New("STORE_QUOTA_BYTES must be >= 0")
		}
	case DriverSQLite:
		if strings.TrimSpace(cfg.Store.DBPath) == "" {
			return cfg, errors.New("DB_PATH must not be empty")
		}
	case DriverRedis:
		if strings.TrimSpace(cfg.Store.RedisAddr) == "" {
			return cfg, errors.New("REDIS_ADDR must not be empty")
		}
	default:
		return cfg, errors.New("STORE_DRIVER must be one of: memory, sqlite, redis")
	}
	if len(cfg.Auth.JWTSecret) < 16 {
		return cfg, errors.New("JWT_SECRET must be at least 16 bytes")
	}
	if cfg.Auth.JWTTTL <= 0 {
		return cfg, errors.New("JWT_TTL must be > 0")
	}
	switch cfg.Assistant.Provider {
	case ProviderGemini, ProviderLocal:
	default:
		return cfg, errors.New("ASSISTANT_PROVIDER must be one of: gemini, local")
	}
	if cfg.Assistant.Timeout <= 0 || cfg.Assistant.IdleTimeout <= 0 || cfg.Assistant.SweepInterval <= 0 {
		return cfg, errors.New("assistant timeouts must be positive durations")
	}
	if cfg.Assistant.MaxPromptRunes < 1 {
		return cfg, errors.New("ASSISTANT_MAX_PROMPT_RUNES must be >= 1")
	}
	if cfg.I18n.DefaultLocale == "" {
		return cfg, errors.New("DEFAULT_LOCALE must not be empty")
	}
	if cfg.RateRPS < 0 {
		return cfg, errors.New("RATE_RPS must be >= 0")
	}
	if cfg.RateBurst < 1 {
		return cfg, errors.New("RATE_BURST must be >= 1")
	}
	if cfg.Security.HSTSMaxAge < 0 {
		return cfg, errors.New("HSTS_MAX_AGE must be >= 0")
	}
	if cfg.OTEL.SampleRatio < 0 || cfg.OTEL.SampleRatio > 1 {
		return cfg, errors.New("OTEL_TRACES_SAMPLER_ARG must be in [0,1]")
	}

	return cfg, nil
}

// ---- helpers (no external deps) ----

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getint(k string, def int) int {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return def
}

func getdur(k string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// normalizeBasePath ensures leading '/' and strips trailing '/' (except root).
func normalizeBasePath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	return p
}
