package health

import (
	"context"
	"fmt"

	"formvalidator/internal/platform/database/postgres"
	"formvalidator/internal/platform/health"
)

// Connector hands out the current pool. *database.Lifecycle implements it.
type Connector interface {
	Connection() *postgres.DB
}

// DatabaseChecker pings the account database and reports pool usage.
type DatabaseChecker struct {
	db   Connector
	name string
}

func NewDatabaseChecker(db Connector, name string) *DatabaseChecker {
	return &DatabaseChecker{
		db:   db,
		name: name,
	}
}

func (c *DatabaseChecker) Name() string {
	return c.name
}

func (c *DatabaseChecker) Check(ctx context.Context) health.CheckResult {
	db := c.db.Connection()
	if db == nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database connection is not initialized",
		}
	}

	// A saturated pool would block the ping until the readiness deadline.
	if stats := db.Stats(); stats.MaxOpenConnections > 0 && stats.InUse >= stats.MaxOpenConnections {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: fmt.Sprintf("database pool exhausted, %d of %d connections in use", stats.InUse, stats.MaxOpenConnections),
		}
	}

	if err := db.Ping(ctx); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "database ping failed",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("database reachable, %d open connections", db.Stats().OpenConnections),
	}
}
