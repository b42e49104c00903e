package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Issuer         string `env:"ACCOUNTS_ISSUER"           envDefault:"accounts"`
	Algorithm      string `env:"ACCOUNTS_ALGORITHM"        envDefault:"EdDSA"`          // RS256, ES256 or EdDSA
	SigningKeyFile string `env:"ACCOUNTS_SIGNING_KEY_FILE" envDefault:"signing.pem"`    // generated on first start if absent
	KeyID          string `env:"ACCOUNTS_KEY_ID"           envDefault:"accounts-key-1"` // JWS kid
	RSABits        int    `env:"ACCOUNTS_RSA_BITS"         envDefault:"4096"`           // only used when generating an RS256 key

	DatabaseDriver string `env:"ACCOUNTS_DATABASE_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string `env:"ACCOUNTS_DATABASE_URL"    envDefault:"file:accounts.db?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"`

	PepperFile    string `env:"ACCOUNTS_PEPPER_FILE"    envDefault:"pepper"`
	DefaultLocale string `env:"ACCOUNTS_DEFAULT_LOCALE" envDefault:"en"`

	Env                 string        `env:"ENV"                   envDefault:"dev"`  // dev, staging, prod
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"` // debug, info, warn, error
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"` // json, text
	Port                int           `env:"PORT"                  envDefault:"8080"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.Algorithm {
	case jwtx.AlgorithmEdDSA, jwtx.AlgorithmES256, jwtx.AlgorithmRS256:
	default:
		errs = append(errs, fmt.Errorf("unsupported algorithm %q", c.Algorithm))
	}

	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.DatabaseDriver))
	}

	if c.Issuer == "" {
		errs = append(errs, errors.New("issuer must not be empty"))
	}
	if c.KeyID == "" {
		errs = append(errs, errors.New("key id must not be empty"))
	}
	if c.DatabaseURL == "" {
		errs = append(errs, errors.New("database url must not be empty"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	if c.ShutdownGracePeriod < 0 {
		errs = append(errs, errors.New("shutdown grace period must not be negative"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
