package health

import (
	"context"
	"fmt"
	"strings"

	"formvalidator/internal/core/domain/validation"
	"formvalidator/internal/platform/health"
)

// Validator is the slice of *validation.Pipeline the rules check needs.
type Validator interface {
	Validate(record validation.Record) (validation.Result, error)
}

// RulesChecker runs a known-good record through the live rule set. A
// configuration error or a rejected probe means every signup would fail.
type RulesChecker struct {
	validator Validator
	probe     validation.Record
	name      string
}

func NewRulesChecker(validator Validator, probe validation.Record, name string) *RulesChecker {
	return &RulesChecker{
		validator: validator,
		probe:     probe,
		name:      name,
	}
}

func (c *RulesChecker) Name() string {
	return c.name
}

func (c *RulesChecker) Check(ctx context.Context) health.CheckResult {
	if err := ctx.Err(); err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "signup rules check cancelled",
			Error:   err.Error(),
		}
	}

	result, err := c.validator.Validate(c.probe)
	if err != nil {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "signup rules misconfigured",
			Error:   err.Error(),
		}
	}

	if !result.Valid() {
		return health.CheckResult{
			Status:  health.StatusUnhealthy,
			Message: "signup rules reject the probe record",
			Error:   fmt.Sprintf("failed fields: %s", strings.Join(result.Errors().Failed(), ", ")),
		}
	}

	return health.CheckResult{
		Status:  health.StatusHealthy,
		Message: "signup rules operational",
	}
}
