package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/pflag"
)

const configPathEnv = "EXCHANGE_CONFIG_PATH"

type ExchangeConfig struct {
	Env          string `yaml:"env" env:"EXCHANGE_ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	ExchangeDB   `yaml:"exchange_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	Notifier     `yaml:"notifier"`
	Protocol     `yaml:"protocol"`
}

type HTTPServer struct {
	Host            string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port            string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env-default:"15s"`
	// SignatureWindow bounds the clock skew accepted on signed requests.
	SignatureWindow time.Duration `yaml:"signature_window" env-default:"5m"`
}

type ExchangeDB struct {
	// Driver is "postgres" or "memory".
	Driver         string `yaml:"driver" env:"EXCHANGE_DB_DRIVER" env-default:"postgres"`
	Dsn            string `yaml:"dsn" env:"EXCHANGE_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env:"EXCHANGE_MIGRATIONS_PATH" env-default:"migrations"`
	MaxOpenConns   int    `yaml:"max_open_conns" env-default:"20"`
	MaxIdleConns   int    `yaml:"max_idle_conns" env-default:"5"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	Enabled    bool     `yaml:"enabled" env:"KAFKA_ENABLED"`
	Brokers    []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic      string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"exchange-events"`
	Username   string   `yaml:"username" env:"KAFKA_USERNAME"`
	Password   string   `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism  string   `yaml:"mechanism" env:"KAFKA_MECHANISM"`
	TLSEnabled bool     `yaml:"tls_enabled" env:"KAFKA_TLS_ENABLED"`
}

// Notifier sends committed events to an external callback URL.
type Notifier struct {
	Enabled     bool          `yaml:"enabled" env:"NOTIFIER_ENABLED"`
	CallbackURL string        `yaml:"callback_url" env:"NOTIFIER_CALLBACK_URL"`
	Secret      string        `yaml:"secret" env:"NOTIFIER_SECRET"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	EventTypes  []string      `yaml:"event_types"`
}

// Protocol holds the tunable rules of the exchange.
type Protocol struct {
	TieBreak string `yaml:"tie_break" env:"PROTOCOL_TIE_BREAK" env-default:"refund"`
	// DisableBuyerCancel stops buyers from cancelling accepted offers.
	DisableBuyerCancel  bool       `yaml:"disable_buyer_cancel"`
	ForfeitBondOnCancel bool       `yaml:"forfeit_bond_on_cancel"`
	RateLimits          RateLimits `yaml:"rate_limits"`
	// SweepInterval is how often stale disputes are force-resolved.
	SweepInterval time.Duration `yaml:"sweep_interval" env:"PROTOCOL_SWEEP_INTERVAL" env-default:"1m"`
}

// RateLimits overrides the built-in limits; a zero rule keeps the default.
type RateLimits struct {
	OfferCreate RateRule `yaml:"offer_create"`
	OfferAccept RateRule `yaml:"offer_accept"`
	DisputeOpen RateRule `yaml:"dispute_open"`
}

type RateRule struct {
	Max    int           `yaml:"max"`
	Window time.Duration `yaml:"window"`
}

func (r RateRule) IsZero() bool {
	return r.Max == 0 && r.Window == 0
}

// Validate rejects settings the service cannot start with.
func (c *ExchangeConfig) Validate() error {
	var errs []error
	switch c.ExchangeDB.Driver {
	case "memory":
	case "postgres":
		if c.ExchangeDB.Dsn == "" {
			errs = append(errs, errors.New("exchange_db.dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown exchange_db.driver %q", c.ExchangeDB.Driver))
	}
	if c.KafkaService.Enabled && len(c.KafkaService.Brokers) == 0 {
		errs = append(errs, errors.New("kafka-service.brokers is required when kafka is enabled"))
	}
	if c.Notifier.Enabled && c.Notifier.CallbackURL == "" {
		errs = append(errs, errors.New("notifier.callback_url is required when the notifier is enabled"))
	}
	if c.Protocol.TieBreak != "refund" && c.Protocol.TieBreak != "reject" {
		errs = append(errs, fmt.Errorf("protocol.tie_break must be refund or reject, got %q", c.Protocol.TieBreak))
	}
	if c.SweepInterval < 0 {
		errs = append(errs, errors.New("protocol.sweep_interval must not be negative"))
	}
	for name, rule := range map[string]RateRule{
		"offer_create": c.RateLimits.OfferCreate,
		"offer_accept": c.RateLimits.OfferAccept,
		"dispute_open": c.RateLimits.DisputeOpen,
	} {
		if rule.IsZero() {
			continue
		}
		if rule.Max < 1 || rule.Window <= 0 {
			errs = append(errs, fmt.Errorf("protocol.rate_limits.%s needs max >= 1 and a positive window", name))
		}
	}
	return errors.Join(errs...)
}

// Path picks the config file from the --config flag, falling back to
// EXCHANGE_CONFIG_PATH.
func Path(args []string) (string, error) {
	flags := pflag.NewFlagSet("exchange-service", pflag.ContinueOnError)
	path := flags.StringP("config", "c", "", "path to the YAML config file")
	if err := flags.Parse(args); err != nil {
		return "", err
	}
	if *path != "" {
		return *path, nil
	}
	if env := os.Getenv(configPathEnv); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("config path not set: use --config or %s", configPathEnv)
}

func Load(path string) (*ExchangeConfig, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	var cfg ExchangeConfig
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func MustLoad() *ExchangeConfig {
	path, err := Path(os.Args[1:])
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	return cfg
}
