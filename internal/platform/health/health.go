package health

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

type CheckResult struct {
	Status  Status        `json:"status"`
	Message string        `json:"message,omitempty"`
	Latency time.Duration `json:"latency"`
	Error   string        `json:"error,omitempty"`
}

type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type ManagerInterface interface {
	Register(checker Checker)
	CheckAll(ctx context.Context) map[string]CheckResult
	IsHealthy(ctx context.Context) bool
}

// Manager runs registered checkers concurrently. A checker registered under
// a name that is already taken replaces the earlier one.
type Manager struct {
	checkers []Checker
	mu       sync.RWMutex
}

var _ ManagerInterface = (*Manager)(nil)

func NewManager() *Manager {
	return &Manager{}
}

func (m *Manager) Register(checker Checker) {
	if checker == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i, existing := range m.checkers {
		if existing.Name() == checker.Name() {
			m.checkers[i] = checker
			return
		}
	}
	m.checkers = append(m.checkers, checker)
}

// Names returns the registered checker names in sorted order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.checkers))
	for _, checker := range m.checkers {
		names = append(names, checker.Name())
	}
	sort.Strings(names)
	return names
}

// CheckAll runs a snapshot of the registered checkers in parallel and
// reports each result with its latency. A panicking checker is reported as
// unhealthy instead of taking the probe down.
func (m *Manager) CheckAll(ctx context.Context) map[string]CheckResult {
	m.mu.RLock()
	checkers := append([]Checker(nil), m.checkers...)
	m.mu.RUnlock()

	results := make([]CheckResult, len(checkers))

	var g errgroup.Group
	for i, checker := range checkers {
		i, checker := i, checker
		g.Go(func() error {
			results[i] = timed(ctx, checker)
			return nil
		})
	}
	_ = g.Wait()

	byName := make(map[string]CheckResult, len(checkers))
	for i, checker := range checkers {
		byName[checker.Name()] = results[i]
	}
	return byName
}

func timed(ctx context.Context, checker Checker) (result CheckResult) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			result = CheckResult{
				Status:  StatusUnhealthy,
				Message: "health check panicked",
				Error:   fmt.Sprint(rec),
			}
		}
		result.Latency = time.Since(start)
	}()

	return checker.Check(ctx)
}

func (m *Manager) IsHealthy(ctx context.Context) bool {
	return Healthy(m.CheckAll(ctx))
}

// Healthy reports whether no result is unhealthy. An empty set is healthy.
func Healthy(results map[string]CheckResult) bool {
	for _, result := range results {
		if result.Status == StatusUnhealthy {
			return false
		}
	}
	return true
}
