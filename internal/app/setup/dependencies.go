package setup

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/LavaJover/shvark-p2p-exchange/internal/config"
	"github.com/LavaJover/shvark-p2p-exchange/internal/domain"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/notifier"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-p2p-exchange/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-p2p-exchange/internal/usecase/guard"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config    *config.ExchangeConfig
	Logger    *slog.Logger
	DB        *gorm.DB
	Store     domain.Store
	Clock     domain.Clock
	Publisher guard.MultiPublisher
	Registry  *prometheus.Registry
	Metrics   *metrics.ExchangeMetrics

	closers []io.Closer
}

// InitializeDependencies opens the store selected by exchange_db.driver and
// the event publishers. Close releases them.
func InitializeDependencies(cfg *config.ExchangeConfig, log *slog.Logger) (*Dependencies, error) {
	if log == nil {
		log = slog.Default()
	}
	deps := &Dependencies{
		Config:   cfg,
		Logger:   log,
		Clock:    domain.SystemClock{},
		Registry: prometheus.NewRegistry(),
	}
	deps.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	deps.Metrics = metrics.NewExchangeMetrics(deps.Registry)
	deps.Publisher = guard.MultiPublisher{logger.NewSlogEventLogger(log)}

	switch cfg.ExchangeDB.Driver {
	case "postgres":
		db, err := postgres.Open(cfg.ExchangeDB)
		if err != nil {
			return nil, err
		}
		if err := deps.usePostgres(db, cfg.ExchangeDB.MigrationsPath); err != nil {
			return nil, err
		}
	default:
		log.Warn("using the in-memory store; state is lost on restart")
		deps.Store = memory.NewStore()
	}

	if cfg.KafkaService.Enabled {
		pub, err := initEventPublisher(cfg)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("event publisher: %w", err)
		}
		deps.Publisher = append(deps.Publisher, pub)
		deps.closers = append(deps.closers, pub)
	}

	if cfg.Notifier.Enabled {
		hook, err := notifier.NewWebhookPublisher(cfg.Notifier.CallbackURL, cfg.Notifier.Secret, cfg.Notifier.Timeout, cfg.Notifier.EventTypes)
		if err != nil {
			deps.Close()
			return nil, fmt.Errorf("notifier: %w", err)
		}
		deps.Publisher = append(deps.Publisher, hook)
	}
	return deps, nil
}

// usePostgres migrates db and switches the store to it. On failure db is
// closed along with everything opened so far.
func (d *Dependencies) usePostgres(db *gorm.DB, migrationsPath string) error {
	d.DB = db
	if err := migrate.RunMigrations(db, migrationsPath, d.Logger); err != nil {
		d.Close()
		return fmt.Errorf("migrations: %w", err)
	}
	d.Store = repository.NewStore(db)
	d.Publisher = append(d.Publisher, logger.NewPGEventLogger(db))
	return nil
}

func initEventPublisher(cfg *config.ExchangeConfig) (*kafka.KafkaPublisher, error) {
	return kafka.NewKafkaPublisher(kafka.KafkaConfig{
		Brokers:    cfg.KafkaService.Brokers,
		Topic:      cfg.KafkaService.Topic,
		Username:   cfg.KafkaService.Username,
		Password:   cfg.KafkaService.Password,
		Mechanism:  cfg.KafkaService.Mechanism,
		TLSEnabled: cfg.KafkaService.TLSEnabled,
	})
}

func (d *Dependencies) Close() {
	for _, c := range d.closers {
		if err := c.Close(); err != nil {
			d.Logger.Error("close dependency", "error", err.Error())
		}
	}
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
