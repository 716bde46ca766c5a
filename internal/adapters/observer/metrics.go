package observer

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"formvalidator/internal/core/domain/validation"
	"formvalidator/internal/platform/metrics"
)

const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// MetricsObserver records signup activity on the shared metrics provider.
// Only outcomes and field names become attributes, never values.
type MetricsObserver struct {
	provider *metrics.Provider
}

func NewMetricsObserver(provider *metrics.Provider) *MetricsObserver {
	return &MetricsObserver{provider: provider}
}

func (o *MetricsObserver) ObserveValidation(ctx context.Context, result validation.Result) {
	outcome := OutcomeValid
	if !result.Valid() {
		outcome = OutcomeInvalid
	}
	o.provider.ValidationsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))

	errs := result.Errors()
	for _, field := range errs.Failed() {
		o.provider.RuleFailures.Add(ctx, int64(len(errs.Messages(field))),
			metric.WithAttributes(attribute.String("field", field)))
	}
}

func (o *MetricsObserver) ObserveRegistration(ctx context.Context) {
	o.provider.AccountsRegistered.Add(ctx, 1)
}
