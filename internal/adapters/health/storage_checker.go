package health

import (
	"context"
	"fmt"

	"formvalidator/internal/platform/health"
)

// Counter is satisfied by both account repositories.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

type StorageChecker struct {
	store Counter
	name  string
}

func NewStorageChecker(store Counter, name string) *StorageChecker {
	return &StorageChecker{
		store: store,
		name:  name,
	}
}

func (c *StorageChecker) Name() string {
	return c.name
}

func (c *StorageChecker) Check(ctx context.Context) health.CheckResult {
	count, err := c.store.Count(ctx)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "account storage unavailable",
			Error:   err.Error(),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: fmt.Sprintf("account storage operational, %d accounts", count),
	}
}
