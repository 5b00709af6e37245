package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/emberwood/stay/internal/booking"
	"github.com/emberwood/stay/internal/catalog"
	"github.com/emberwood/stay/internal/config"
	"github.com/emberwood/stay/internal/idgen/random"
	"github.com/emberwood/stay/internal/logger"
	"github.com/emberwood/stay/internal/storage/file"
	"github.com/emberwood/stay/internal/storage/memory"
	"github.com/emberwood/stay/internal/storage/postgres"
	"github.com/emberwood/stay/internal/storage/redis"
	"github.com/emberwood/stay/internal/storage/sqlite"
	"github.com/emberwood/stay/internal/transport/web"
)

// newStore builds the snapshot store the config selects. The returned
// closer releases driver resources and may be nil-safe to call.
func newStore(ctx context.Context, l *logger.Logger, cfg config.Config) (booking.SnapshotStore, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return memory.New(memory.Config{L: l}), func() {}, nil
	case config.DriverFile:
		store, err := file.New(file.Config{L: l, Path: cfg.StorageFile})
		if err != nil {
			return nil, nil, fmt.Errorf("init file store: %w", err)
		}

		return store, func() {}, nil
	case config.DriverSQLite:
		store, err := sqlite.New(sqlite.Config{L: l, Path: cfg.SQLitePath})
		if err != nil {
			return nil, nil, fmt.Errorf("init sqlite store: %w", err)
		}

		return store, func() {
			if err := store.Close(); err != nil {
				l.LogErrorf("Could not close sqlite store: %v", err.Error())
			}
		}, nil
	case config.DriverPostgres:
		store, err := postgres.New(ctx, postgres.Config{L: l, URL: cfg.DatabaseURL})
		if err != nil {
			return nil, nil, fmt.Errorf("init postgres store: %w", err)
		}

		return store, store.Close, nil
	case config.DriverRedis:
		store, err := redis.New(ctx, redis.Config{L: l, URL: cfg.RedisURL})
		if err != nil {
			return nil, nil, fmt.Errorf("init redis store: %w", err)
		}

		return store, func() {
			if err := store.Close(); err != nil {
				l.LogErrorf("Could not close redis store: %v", err.Error())
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// BuildManager wires the catalog, snapshot store and id generator into
// a booking manager.
func BuildManager(ctx context.Context, l *logger.Logger, cfg config.Config) (*booking.Manager, func(), error) {
	store, closeStore, err := newStore(ctx, l, cfg)
	if err != nil {
		return nil, nil, err
	}

	manager := booking.New(ctx, l, catalog.NewFromSeed(), store, random.New())

	return manager, closeStore, nil
}

func Run(l *logger.Logger, cfg config.Config) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	bookManager, closeStore, err := BuildManager(ctx, l, cfg)
	if err != nil {
		return fmt.Errorf("build booking manager: %w", err)
	}
	defer closeStore()

	l.LogInfo("Booking ledger loaded with storage driver '%v'", cfg.StorageDriver)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              cfg.Host,
		Port:              cfg.Port,
		ReadHeaderTimeout: 20, //nolint:gomnd
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, bookManager)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", cfg.Host, cfg.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
