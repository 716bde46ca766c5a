package health

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type HealthTestSuite struct {
	suite.Suite
	manager *Manager
	ctx     context.Context
}

func (suite *HealthTestSuite) SetupTest() {
	suite.manager = NewManager()
	suite.ctx = context.Background()
}

func (suite *HealthTestSuite) TestNewManager() {
	manager := NewManager()

	require.NotNil(suite.T(), manager)
	assert.Empty(suite.T(), manager.checkers)
	assert.Empty(suite.T(), manager.Names())
}

func (suite *HealthTestSuite) TestRegister_MultipleCheckers() {
	suite.manager.Register(&mockHealthChecker{name: "storage", result: CheckResult{Status: StatusHealthy}})
	suite.manager.Register(&mockHealthChecker{name: "signup_rules", result: CheckResult{Status: StatusHealthy}})
	suite.manager.Register(&mockHealthChecker{name: "postgres", result: CheckResult{Status: StatusUnhealthy}})

	assert.Equal(suite.T(), []string{"postgres", "signup_rules", "storage"}, suite.manager.Names())
}

func (suite *HealthTestSuite) TestRegister_ReplacesSameName() {
	first := &mockHealthChecker{name: "storage", result: CheckResult{Status: StatusUnhealthy}}
	second := &mockHealthChecker{name: "storage", result: CheckResult{Status: StatusHealthy}}

	suite.manager.Register(first)
	suite.manager.Register(second)

	results := suite.manager.CheckAll(suite.ctx)
	require.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), StatusHealthy, results["storage"].Status)
	assert.Equal(suite.T(), 0, first.CallCount())
}

func (suite *HealthTestSuite) TestRegister_IgnoresNil() {
	suite.manager.Register(nil)

	assert.Empty(suite.T(), suite.manager.Names())
	assert.Empty(suite.T(), suite.manager.CheckAll(suite.ctx))
}

func (suite *HealthTestSuite) TestCheckAll_NoCheckers() {
	results := suite.manager.CheckAll(suite.ctx)

	assert.NotNil(suite.T(), results)
	assert.Empty(suite.T(), results)
}

func (suite *HealthTestSuite) TestCheckAll_MixedCheckers() {
	suite.manager.Register(&mockHealthChecker{
		name:   "postgres",
		result: CheckResult{Status: StatusHealthy, Message: "database reachable, 1 open connections"},
		delay:  time.Millisecond,
	})
	suite.manager.Register(&mockHealthChecker{
		name:   "upstream",
		result: CheckResult{Status: StatusUnhealthy, Message: "upstream unreachable", Error: "timeout"},
		delay:  time.Millisecond,
	})

	results := suite.manager.CheckAll(suite.ctx)

	require.Len(suite.T(), results, 2)

	db := results["postgres"]
	assert.Equal(suite.T(), StatusHealthy, db.Status)
	assert.Equal(suite.T(), "database reachable, 1 open connections", db.Message)
	assert.Greater(suite.T(), db.Latency, time.Duration(0))

	api := results["upstream"]
	assert.Equal(suite.T(), StatusUnhealthy, api.Status)
	assert.Equal(suite.T(), "timeout", api.Error)
	assert.Greater(suite.T(), api.Latency, time.Duration(0))
}

func (suite *HealthTestSuite) TestCheckAll_RunsConcurrently() {
	for i := 0; i < 4; i++ {
		suite.manager.Register(&mockHealthChecker{
			name:   fmt.Sprintf("slow-%d", i),
			result: CheckResult{Status: StatusHealthy},
			delay:  100 * time.Millisecond,
		})
	}

	start := time.Now()
	results := suite.manager.CheckAll(suite.ctx)
	elapsed := time.Since(start)

	require.Len(suite.T(), results, 4)
	for _, result := range results {
		assert.GreaterOrEqual(suite.T(), result.Latency, 100*time.Millisecond)
	}
	assert.Less(suite.T(), elapsed, 350*time.Millisecond)
}

func (suite *HealthTestSuite) TestCheckAll_PassesContext() {
	ctx, cancel := context.WithCancel(suite.ctx)
	cancel()

	checker := &mockHealthChecker{name: "storage", result: CheckResult{Status: StatusHealthy}}
	suite.manager.Register(checker)

	results := suite.manager.CheckAll(ctx)

	require.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), context.Canceled, checker.LastContextErr())
}

func (suite *HealthTestSuite) TestIsHealthy() {
	tests := []struct {
		name     string
		statuses []Status
		expected bool
	}{
		{"no_checkers", nil, true},
		{"all_healthy", []Status{StatusHealthy, StatusHealthy}, true},
		{"one_unhealthy", []Status{StatusHealthy, StatusUnhealthy}, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			manager := NewManager()
			for i, status := range tt.statuses {
				manager.Register(&mockHealthChecker{name: fmt.Sprintf("check-%d", i), result: CheckResult{Status: status}})
			}

			assert.Equal(suite.T(), tt.expected, manager.IsHealthy(suite.ctx))
		})
	}
}

func (suite *HealthTestSuite) TestConcurrentAccess() {
	const numGoroutines = 10
	const numCheckers = 5

	var wg sync.WaitGroup

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < numCheckers; j++ {
				suite.manager.Register(&mockHealthChecker{
					name:   fmt.Sprintf("checker-%d-%d", id, j),
					result: CheckResult{Status: StatusHealthy},
				})
			}
		}(i)
	}

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = suite.manager.IsHealthy(suite.ctx)
				_ = suite.manager.CheckAll(suite.ctx)
			}
		}()
	}

	wg.Wait()

	assert.Len(suite.T(), suite.manager.Names(), numGoroutines*numCheckers)
}

type panickingChecker struct{}

func (panickingChecker) Name() string { return "upstream" }

func (panickingChecker) Check(context.Context) CheckResult {
	panic("upstream client exploded")
}

func (suite *HealthTestSuite) TestCheckAll_PanickingCheckerIsUnhealthy() {
	suite.manager.Register(panickingChecker{})
	suite.manager.Register(&mockHealthChecker{name: "storage", result: CheckResult{Status: StatusHealthy}})

	var results map[string]CheckResult
	require.NotPanics(suite.T(), func() { results = suite.manager.CheckAll(suite.ctx) })

	require.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), StatusUnhealthy, results["upstream"].Status)
	assert.Equal(suite.T(), "health check panicked", results["upstream"].Message)
	assert.Equal(suite.T(), "upstream client exploded", results["upstream"].Error)
	assert.Equal(suite.T(), StatusHealthy, results["storage"].Status)
	assert.False(suite.T(), Healthy(results))
}

func TestHealthTestSuite(t *testing.T) {
	suite.Run(t, new(HealthTestSuite))
}

func TestManager_ManyCheckers(t *testing.T) {
	manager := NewManager()

	for i := 0; i < 1000; i++ {
		manager.Register(&mockHealthChecker{
			name:   fmt.Sprintf("checker-%d", i),
			result: CheckResult{Status: StatusHealthy},
		})
	}

	results := manager.CheckAll(context.Background())
	assert.Len(t, results, 1000)
}

type mockHealthChecker struct {
	name   string
	result CheckResult
	delay  time.Duration
	mu     sync.Mutex
	calls  int
	ctxErr error
}

func (m *mockHealthChecker) Name() string {
	return m.name
}

func (m *mockHealthChecker) Check(ctx context.Context) CheckResult {
	m.mu.Lock()
	m.calls++
	m.ctxErr = ctx.Err()
	m.mu.Unlock()

	if m.delay > 0 {
		time.Sleep(m.delay)
	}

	return m.result
}

func (m *mockHealthChecker) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockHealthChecker) LastContextErr() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ctxErr
}
