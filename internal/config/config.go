package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/splitcalc/internal/domain"
	splitlog "github.com/bnema/splitcalc/internal/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "SPLITCALC"
	configName = "config"
	configType = "toml"
	configDir  = ".splitcalc"

	KeyStoreBackend  = "store.backend"
	KeyStorePath     = "store.path"
	KeyCountry       = "country"
	KeyLogLevel      = "log.level"
	KeyAMQPURL       = "amqp.url"
	KeyAMQPExchange  = "amqp.exchange"
	KeyImportTimeout = "import.timeout"

	BackendTOML   = "toml"
	BackendSQLite = "sqlite"

	defaultExchange      = "splitcalc"
	defaultImportTimeout = 15 * time.Second
)

type Config struct {
	StoreBackend  string
	StorePath     string
	Country       string
	LogLevel      string
	AMQPURL       string
	AMQPExchange  string
	ImportTimeout time.Duration
}

// LoadDotEnv loads a .env file from the working directory when present.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// NewViper returns a viper instance with defaults, the SPLITCALC_ env prefix
// and ~/.splitcalc as config search path. It does not read the file yet.
func NewViper(homeDir string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	if homeDir != "" {
		v.AddConfigPath(filepath.Join(homeDir, configDir))
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyStoreBackend, BackendTOML)
	v.SetDefault(KeyStorePath, "")
	v.SetDefault(KeyCountry, domain.DefaultCountryCode)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyAMQPURL, "")
	v.SetDefault(KeyAMQPExchange, defaultExchange)
	v.SetDefault(KeyImportTimeout, defaultImportTimeout)

	return v
}

// Load reads the optional config file into v and returns the resolved values.
// A missing file is not an error.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		StoreBackend:  strings.ToLower(strings.TrimSpace(v.GetString(KeyStoreBackend))),
		StorePath:     v.GetString(KeyStorePath),
		Country:       strings.ToLower(strings.TrimSpace(v.GetString(KeyCountry))),
		LogLevel:      v.GetString(KeyLogLevel),
		AMQPURL:       v.GetString(KeyAMQPURL),
		AMQPExchange:  v.GetString(KeyAMQPExchange),
		ImportTimeout: v.GetDuration(KeyImportTimeout),
	}

	return cfg, nil
}

// DefaultStorePath returns the per-backend session location under homeDir.
func DefaultStorePath(homeDir, backend string) string {
	name := "session.toml"
	if backend == BackendSQLite {
		name = "session.db"
	}

	return filepath.Join(homeDir, configDir, name)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	switch c.StoreBackend {
	case BackendTOML, BackendSQLite:
	default:
		errs = append(errs, fmt.Errorf("invalid store backend %q: must be %q or %q", c.StoreBackend, BackendTOML, BackendSQLite))
	}

	if _, err := splitlog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Country != "" {
		if _, ok := domain.FindCountry(c.Country); !ok {
			errs = append(errs, fmt.Errorf("unknown country %q", c.Country))
		}
	}

	if c.AMQPURL != "" {
		parsed, err := url.Parse(c.AMQPURL)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("invalid AMQP URL: %w", err))
		case parsed.Scheme != "amqp" && parsed.Scheme != "amqps":
			errs = append(errs, fmt.Errorf("invalid AMQP URL scheme %q: must be amqp or amqps", parsed.Scheme))
		}
		if c.AMQPExchange == "" {
			errs = append(errs, errors.New("AMQP exchange cannot be empty when an AMQP URL is set"))
		}
	}

	if c.ImportTimeout <= 0 {
		errs = append(errs, fmt.Errorf("invalid import timeout %v: must be positive", c.ImportTimeout))
	}

	return errors.Join(errs...)
}
