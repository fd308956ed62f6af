package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Backend   BackendConfig   `yaml:"backend"`
	Auth      AuthConfig      `yaml:"auth"`
	Evidence  EvidenceConfig  `yaml:"evidence"`
	Cache     CacheConfig     `yaml:"cache"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustedProxies lists comma-separated CIDRs or addresses whose
	// X-Forwarded-For and X-Real-IP headers are believed. Empty trusts none.
	TrustedProxies string `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout is applied per connection; 0 leaves the server default.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"precinct-records"`
}

// BackendConfig points at the hosted auth/storage service.
type BackendConfig struct {
	URL            string        `yaml:"url"             env:"BACKEND_URL"             env-required:"true"`
	AnonKey        string        `yaml:"anon_key"        env:"BACKEND_ANON_KEY"        env-required:"true"`
	ServiceKey     string        `yaml:"service_key"     env:"BACKEND_SERVICE_KEY"`
	JWTSecret      string        `yaml:"jwt_secret"      env:"BACKEND_JWT_SECRET"      env-required:"true"`
	JWTAudience    string        `yaml:"jwt_audience"    env:"BACKEND_JWT_AUDIENCE"    env-default:"authenticated"`
	EvidenceBucket string        `yaml:"evidence_bucket" env:"BACKEND_EVIDENCE_BUCKET" env-default:"evidence"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"BACKEND_REQUEST_TIMEOUT" env-default:"30s"`
	// UploadTimeout bounds a whole evidence upload, body included.
	UploadTimeout time.Duration `yaml:"upload_timeout" env:"BACKEND_UPLOAD_TIMEOUT" env-default:"10m"`
}

// AuthConfig holds session bootstrap settings.
type AuthConfig struct {
	LoginPath           string        `yaml:"login_path"            env:"AUTH_LOGIN_PATH"            env-default:"/auth"`
	ProfileFetchTimeout time.Duration `yaml:"profile_fetch_timeout" env:"AUTH_PROFILE_FETCH_TIMEOUT" env-default:"10s"`
	ProfileCacheTTL     time.Duration `yaml:"profile_cache_ttl"     env:"AUTH_PROFILE_CACHE_TTL"     env-default:"1m"`
	ProfileCacheSize    int           `yaml:"profile_cache_size"    env:"AUTH_PROFILE_CACHE_SIZE"    env-default:"1024"`
}

// EvidenceConfig holds evidence upload limits. UploadTimeout replaces the
// server read and write deadlines for the upload route.
type EvidenceConfig struct {
	MaxUploadBytes int64         `yaml:"max_upload_bytes" env:"EVIDENCE_MAX_UPLOAD_BYTES" env-default:"104857600"`
	UploadTimeout  time.Duration `yaml:"upload_timeout"   env:"EVIDENCE_UPLOAD_TIMEOUT"   env-default:"10m"`
}

// CacheConfig holds list cache settings. A zero TTL disables caching.
type CacheConfig struct {
	ListTTL  time.Duration `yaml:"list_ttl"  env:"CACHE_LIST_TTL"  env-default:"30s"`
	ListSize int           `yaml:"list_size" env:"CACHE_LIST_SIZE" env-default:"256"`
}

// RateLimitConfig limits sign-in/sign-up attempts per client IP.
type RateLimitConfig struct {
	AuthRequests int           `yaml:"auth_requests" env:"RATELIMIT_AUTH_REQUESTS" env-default:"10"`
	AuthWindow   time.Duration `yaml:"auth_window"   env:"RATELIMIT_AUTH_WINDOW"   env-default:"1m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
