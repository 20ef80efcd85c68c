package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	AnchorLatest = "latest"
	AnchorNow    = "now"
)

// Config se carga una sola vez al arrancar y luego es de solo lectura.
// Si CONFIG_FILE apunta a un YAML, se lee y las env vars lo sobreescriben.
type Config struct {
	Port    string `yaml:"port" env:"PORT" env-default:"8080"`
	Env     string `yaml:"env" env:"ENVIRONMENT" env-default:"dev"`
	AppName string `yaml:"app_name" env:"APP_NAME" env-default:"mew-mate-api"`

	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Logbook  LogbookConfig  `yaml:"logbook"`
	HTTP     HTTPConfig     `yaml:"http"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

type DatabaseConfig struct {
	// DSN vacío => store in-memory (modo dev).
	DSN           string `yaml:"-" env:"DB_DSN"`
	MaxOpenConns  int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns  int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	RunMigrations bool   `yaml:"run_migrations" env:"DB_RUN_MIGRATIONS" env-default:"true"`
}

type AuthConfig struct {
	// Sin verificación se acepta X-Debug-User-ID (solo dev).
	EnableVerification bool          `yaml:"enable_verification" env:"AUTH_ENABLE_VERIFICATION" env-default:"false"`
	JWKSURL            string        `yaml:"jwks_url" env:"JWKS_URL"`
	JWKSAPIKey         string        `yaml:"-" env:"JWKS_API_KEY"`
	Issuer             string        `yaml:"issuer" env:"JWT_ISSUER"`
	Audience           string        `yaml:"audience" env:"JWT_AUDIENCE"`
	FetchTimeout       time.Duration `yaml:"jwks_fetch_timeout" env:"JWKS_FETCH_TIMEOUT" env-default:"5s"`
}

// Mismo tope que logbook.MaxWindowDays.
const maxWindowDays = 36500

type LogbookConfig struct {
	// Ancla de la ventana para feeding/hunt/training: latest | now.
	WindowAnchor     string `yaml:"window_anchor" env:"WINDOW_ANCHOR" env-default:"latest"`
	WeightWindowDays int    `yaml:"weight_window_days" env:"WEIGHT_WINDOW_DAYS" env-default:"30"`
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"8s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Load lee la configuración desde env (y opcionalmente CONFIG_FILE) y la valida.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.Logbook.WindowAnchor = strings.ToLower(strings.TrimSpace(c.Logbook.WindowAnchor))
	switch c.Logbook.WindowAnchor {
	case AnchorLatest, AnchorNow:
	default:
		return fmt.Errorf("window_anchor must be %q or %q, got %q", AnchorLatest, AnchorNow, c.Logbook.WindowAnchor)
	}
	if c.Logbook.WeightWindowDays <= 0 {
		return errors.New("weight_window_days must be positive")
	}
	if c.Logbook.WeightWindowDays > maxWindowDays {
		return fmt.Errorf("weight_window_days must be at most %d", maxWindowDays)
	}
	if c.Auth.EnableVerification && strings.TrimSpace(c.Auth.JWKSURL) == "" {
		return errors.New("jwks_url is required when auth verification is enabled")
	}
	return nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c *Config) Addr() string {
	return ":" + c.Port
}
