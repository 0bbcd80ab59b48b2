package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bnema/splitcalc/internal/adapters/fetch"
	amqpnotify "github.com/bnema/splitcalc/internal/adapters/notify/amqp"
	summaryadapter "github.com/bnema/splitcalc/internal/adapters/render/summary"
	sqliterepo "github.com/bnema/splitcalc/internal/adapters/repo/sqlite"
	tomlrepo "github.com/bnema/splitcalc/internal/adapters/repo/toml"
	jsoncodec "github.com/bnema/splitcalc/internal/adapters/transfer/json"
	"github.com/bnema/splitcalc/internal/application"
	"github.com/bnema/splitcalc/internal/config"
	splitlog "github.com/bnema/splitcalc/internal/log"
	"github.com/bnema/splitcalc/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagStore   = "store"
	flagBackend = "backend"
)

type app struct {
	config          config.Config
	service         *application.Service
	fetcher         *fetch.Fetcher
	logger          *splitlog.Logger
	summaryRenderer func(application.Summary, summaryadapter.RenderOptions) (string, error)
	now             func() time.Time
	closers         []io.Closer
}

func (a *app) wire(cmd *cobra.Command) error {
	config.LoadDotEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	v := config.NewViper(homeDir)
	flags := cmd.Root().PersistentFlags()
	if err := v.BindPFlag(config.KeyStorePath, flags.Lookup(flagStore)); err != nil {
		return fmt.Errorf("bind --%s: %w", flagStore, err)
	}
	if err := v.BindPFlag(config.KeyStoreBackend, flags.Lookup(flagBackend)); err != nil {
		return fmt.Errorf("bind --%s: %w", flagBackend, err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.StorePath == "" {
		cfg.StorePath = config.DefaultStorePath(homeDir, cfg.StoreBackend)
		v.Set(config.KeyStorePath, cfg.StorePath)
	}

	level, err := splitlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logConfig := splitlog.DefaultConfig()
	logConfig.Level = level
	logConfig.Output = cmd.ErrOrStderr()
	logger := splitlog.New(logConfig).With(splitlog.FieldBackend, cfg.StoreBackend)
	splitlog.SetDefault(logger)

	repo, err := a.wireRepository(v, cfg.StoreBackend)
	if err != nil {
		return err
	}
	logger.DebugContext(cmd.Context(), "session store ready",
		splitlog.FieldPath, cfg.StorePath)

	opts := []application.Option{
		application.WithLogger(logger),
		application.WithDefaultCountry(cfg.Country),
	}
	if cfg.AMQPURL != "" {
		notifier, err := amqpnotify.Dial(cfg.AMQPURL, cfg.AMQPExchange, logger)
		if err != nil {
			// Notifications are optional; editing keeps working without a broker.
			logger.WarnContext(cmd.Context(), "session notifications disabled",
				splitlog.FieldError, err)
		} else {
			opts = append(opts, application.WithNotifier(notifier))
			a.closers = append(a.closers, notifier)
		}
	}

	a.config = cfg
	a.logger = logger
	a.service = application.NewService(repo, jsoncodec.NewCodec(), ports.SystemClock{}, opts...)
	a.fetcher = fetch.New(&http.Client{Timeout: cfg.ImportTimeout}, cmd.InOrStdin())
	a.summaryRenderer = summaryadapter.Render
	a.now = time.Now

	return nil
}

func (a *app) wireRepository(v *viper.Viper, backend string) (ports.SessionRepository, error) {
	switch backend {
	case config.BackendSQLite:
		repo, err := sqliterepo.NewRepository(v)
		if err != nil {
			return nil, fmt.Errorf("wire sqlite session repository: %w", err)
		}
		a.closers = append(a.closers, repo)
		return repo, nil
	default:
		repo, err := tomlrepo.NewRepository(v)
		if err != nil {
			return nil, fmt.Errorf("wire toml session repository: %w", err)
		}
		return repo, nil
	}
}

func (a *app) Close() error {
	var errs []error
	for _, closer := range a.closers {
		if err := closer.Close(); err != nil {
			if a.logger != nil {
				a.logger.ErrorContext(context.Background(), "release resource", splitlog.FieldError, err)
			}
			errs = append(errs, err)
		}
	}
	a.closers = nil

	return errors.Join(errs...)
}
