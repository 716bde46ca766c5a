package database

import (
	"context"
	"fmt"
	"sync"

	"formvalidator/internal/config"
	"formvalidator/internal/platform/database/postgres"
	"formvalidator/internal/platform/logger"
)

// ConnectHook runs after every successful Start, outside the lifecycle lock,
// so it may call Connection. The account schema is created this way.
type ConnectHook func(ctx context.Context) error

// Lifecycle owns the account database handle between fx start and stop.
type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger

	mu    sync.Mutex
	db    *postgres.DB
	hooks []ConnectHook
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log.With(logger.String("component", "postgres")),
	}
}

func (d *Lifecycle) OnConnect(hooks ...ConnectHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hooks = append(d.hooks, hooks...)
}

// Start opens and pings a fresh handle, replacing any previous one, then runs
// the connect hooks in registration order. The first failing hook aborts.
func (d *Lifecycle) Start(ctx context.Context) error {
	hooks, err := d.connect(ctx)
	if err != nil {
		return err
	}

	for i, hook := range hooks {
		if err := hook(ctx); err != nil {
			d.logger.Error("Connect hook failed", logger.Int("hook", i), logger.Error(err))
			return fmt.Errorf("database connect hook %d: %w", i, err)
		}
	}
	return nil
}

func (d *Lifecycle) connect(ctx context.Context) ([]ConnectHook, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.release("replacing open handle")

	pg := d.cfg.Postgres
	d.logger.Info("Connecting to account database",
		logger.String("host", pg.Host),
		logger.Int("port", pg.Port),
		logger.String("database", pg.Database),
	)

	db, err := postgres.New(&pg)
	if err != nil {
		d.logger.Error("Opening account database failed", logger.Error(err))
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		d.logger.Error("Account database unreachable", logger.Error(err))
		if closeErr := db.Close(); closeErr != nil {
			d.logger.Warn("Closing unreachable handle failed", logger.Error(closeErr))
		}
		return nil, fmt.Errorf("ping account database: %w", err)
	}

	d.db = db
	d.logger.Info("Account database connected")

	return append([]ConnectHook(nil), d.hooks...), nil
}

// release closes the current handle, if any. The caller holds d.mu.
func (d *Lifecycle) release(reason string) {
	if d.db == nil {
		return
	}
	d.logger.Warn("Closing account database handle", logger.String("reason", reason))
	if err := d.db.Close(); err != nil {
		d.logger.Error("Closing account database handle failed", logger.Error(err))
	}
	d.db = nil
}

// Stop closes the handle, giving up when ctx ends first. The handle is
// detached either way so a later Start opens a new one.
func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	db := d.db
	d.db = nil
	d.mu.Unlock()

	if db == nil {
		return nil
	}

	d.logger.Info("Closing account database")

	done := make(chan error, 1)
	go func() { done <- db.Close() }()

	select {
	case err := <-done:
		if err != nil {
			d.logger.Error("Account database close failed", logger.Error(err))
			return err
		}
		d.logger.Info("Account database closed")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Account database close timed out")
		return ctx.Err()
	}
}

func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}
