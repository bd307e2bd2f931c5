package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "ORDERING_"
	ConfigFileEnv = "CONFIG_FILE"

	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	App struct {
		Name string `koanf:"name"`
		Env  string `koanf:"env"`
		// SeedUsers creates the admin and sales accounts at start-up when missing.
		SeedUsers bool `koanf:"seed_users"`
	} `koanf:"app"`

	HTTP struct {
		Addr            string        `koanf:"addr"`
		ReadTimeout     time.Duration `koanf:"read_timeout"`
		WriteTimeout    time.Duration `koanf:"write_timeout"`
		IdleTimeout     time.Duration `koanf:"idle_timeout"`
		ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
		BodyLimit       string        `koanf:"body_limit"`
		AllowedOrigins  []string      `koanf:"allowed_origins"`
	} `koanf:"http"`

	Database struct {
		// Driver is "postgres" or "memory".
		Driver          string        `koanf:"driver"`
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
		AutoMigrate     bool          `koanf:"auto_migrate"`
	} `koanf:"database"`

	// Redis backs the idempotency store; without an address an in-process store is used.
	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	Idempotency struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"idempotency"`

	Security struct {
		JWTSecret          string `koanf:"jwt_secret"`
		Issuer             string `koanf:"issuer"`
		Audience           string `koanf:"audience"`
		AccessTokenMinutes int    `koanf:"access_token_minutes"`
		RefreshTokenDays   int    `koanf:"refresh_token_days"`
		BcryptCost         int    `koanf:"bcrypt_cost"`
	} `koanf:"security"`

	Jobs struct {
		Enabled            bool   `koanf:"enabled"`
		TokenAuditSchedule string `koanf:"token_audit_schedule"`
	} `koanf:"jobs"`

	Logging struct {
		Level      string `koanf:"level"`
		Format     string `koanf:"format"`
		File       string `koanf:"file"`
		MaxSizeMB  int    `koanf:"max_size_mb"`
		MaxBackups int    `koanf:"max_backups"`
		MaxAgeDays int    `koanf:"max_age_days"`
	} `koanf:"logging"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":       "ordering",
		"app.env":        "development",
		"app.seed_users": true,

		"http.addr":             ":8080",
		"http.read_timeout":     "15s",
		"http.write_timeout":    "15s",
		"http.idle_timeout":     "60s",
		"http.shutdown_timeout": "10s",
		"http.body_limit":       "1M",

		"database.driver":            StoragePostgres,
		"database.max_open_conns":    20,
		"database.max_idle_conns":    5,
		"database.conn_max_lifetime": "30m",
		"database.auto_migrate":      true,

		"idempotency.ttl": "24h",

		"security.issuer":               "ordering",
		"security.audience":             "ordering-clients",
		"security.access_token_minutes": 60,
		"security.refresh_token_days":   7,
		"security.bcrypt_cost":          12,

		"jobs.enabled":              true,
		"jobs.token_audit_schedule": "0 * * * * *",

		"logging.level":        "info",
		"logging.format":       "json",
		"logging.max_size_mb":  100,
		"logging.max_backups":  5,
		"logging.max_age_days": 28,
	}
}

// LoadConfig reads .env when present, then the YAML file named by CONFIG_FILE, then
// ORDERING_* environment variables. Nested keys use "__", e.g. ORDERING_SECURITY__JWT_SECRET.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return loadConfig(os.Getenv(ConfigFileEnv))
}

func loadConfig(path string) (Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Database.Driver = strings.ToLower(strings.TrimSpace(c.Database.Driver))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	origins := c.HTTP.AllowedOrigins[:0]
	for _, o := range c.HTTP.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.HTTP.AllowedOrigins = origins
}

func (c Config) Validate() error {
	var errList []error

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errList = append(errList, errors.New("http.addr required"))
	}
	if strings.TrimSpace(c.Security.JWTSecret) == "" {
		errList = append(errList, errors.New("security.jwt_secret required"))
	}
	switch c.Database.Driver {
	case StoragePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			errList = append(errList, errors.New("database.dsn required for the postgres driver"))
		}
	case StorageMemory:
	default:
		errList = append(errList, fmt.Errorf("database.driver %q is not one of postgres, memory", c.Database.Driver))
	}
	if c.Security.AccessTokenMinutes <= 0 {
		errList = append(errList, errors.New("security.access_token_minutes must be positive"))
	}
	if c.Security.RefreshTokenDays <= 0 {
		errList = append(errList, errors.New("security.refresh_token_days must be positive"))
	}

	return errors.Join(errList...)
}

func (c Config) AccessTokenLifetime() time.Duration {
	return time.Duration(c.Security.AccessTokenMinutes) * time.Minute
}

func (c Config) RefreshTokenLifetime() time.Duration {
	return time.Duration(c.Security.RefreshTokenDays) * 24 * time.Hour
}
