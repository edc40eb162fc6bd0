package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Redis    RedisConfig    `yaml:"redis"`
	Cycle    CycleConfig    `yaml:"cycle"`
	Reminder ReminderConfig `yaml:"reminder"`
	Sharing  SharingConfig  `yaml:"sharing"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Timezone"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ApplicationName string        `yaml:"application_name"   env:"DATABASE_APPLICATION_NAME"   env-default:"cyclecare"`
}

// AuthConfig holds password and access token settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"cyclecare"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"24h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
	MinPassword    int           `yaml:"min_password"     env:"AUTH_MIN_PASSWORD"     env-default:"6"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RedisConfig holds the Redis connection used for shared-link rate limiting.
// An empty URL falls back to the in-process limiter.
type RedisConfig struct {
	URL                  string `yaml:"url"                     env:"REDIS_URL"`
	SharedLinksPerMinute int    `yaml:"shared_links_per_minute" env:"REDIS_SHARED_LINKS_PER_MINUTE" env-default:"30"`
	AuthPerMinute        int    `yaml:"auth_per_minute"         env:"REDIS_AUTH_PER_MINUTE"         env-default:"10"`
}

// CycleConfig holds prediction parameters.
type CycleConfig struct {
	DefaultLength  int `yaml:"default_length"   env:"CYCLE_DEFAULT_LENGTH"   env-default:"28"`
	HistoryLimit   int `yaml:"history_limit"    env:"CYCLE_HISTORY_LIMIT"    env-default:"6"`
	MinOverride    int `yaml:"min_override"     env:"CYCLE_MIN_OVERRIDE"     env-default:"21"`
	MaxOverride    int `yaml:"max_override"     env:"CYCLE_MAX_OVERRIDE"     env-default:"35"`
	PeriodPageSize int `yaml:"period_page_size" env:"CYCLE_PERIOD_PAGE_SIZE" env-default:"100"`
}

// ReminderConfig holds the daily reminder job settings.
type ReminderConfig struct {
	Enabled       bool   `yaml:"enabled"        env:"REMINDER_ENABLED"        env-default:"true"`
	Time          string `yaml:"time"           env:"REMINDER_TIME"           env-default:"08:00"`
	Timezone      string `yaml:"timezone"       env:"REMINDER_TIMEZONE"       env-default:"UTC"`
	LeadDays      int    `yaml:"lead_days"      env:"REMINDER_LEAD_DAYS"      env-default:"2"`
	RetentionDays int    `yaml:"retention_days" env:"REMINDER_RETENTION_DAYS" env-default:"90"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// SharingConfig holds partner sharing settings.
type SharingConfig struct {
	TokenBytes int `yaml:"token_bytes" env:"SHARING_TOKEN_BYTES" env-default:"32"`
}

// Retention returns how long read notifications are kept.
func (c ReminderConfig) Retention() time.Duration {
	return time.Duration(c.RetentionDays) * 24 * time.Hour
}
