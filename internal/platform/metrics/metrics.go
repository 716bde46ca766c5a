package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "formvalidator"

// Signup requests are validated in memory, so most finish well under 50ms.
// Registration pays for bcrypt and lands in the upper buckets.
var latencyBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

type Provider struct {
	RequestsTotal    metric.Int64Counter
	RequestDuration  metric.Float64Histogram
	RequestsInFlight metric.Int64UpDownCounter

	// ValidationsTotal counts validation passes by outcome (valid or invalid).
	ValidationsTotal metric.Int64Counter
	// RuleFailures counts failure messages by field.
	RuleFailures       metric.Int64Counter
	AccountsRegistered metric.Int64Counter

	registry *prometheus.Registry
}

// NewProvider builds a private Prometheus registry behind an OpenTelemetry
// meter and registers every instrument on it. Counters are exported with a
// _total suffix.
func NewProvider() (*Provider, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(promexporter.WithRegisterer(registry))
	if err != nil {
		return nil, err
	}

	meterProvider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	otel.SetMeterProvider(meterProvider)

	p := &Provider{registry: registry}
	if err := p.register(meterProvider.Meter(meterName)); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Provider) register(meter metric.Meter) error {
	counters := []struct {
		dst  *metric.Int64Counter
		name string
		desc string
	}{
		{&p.RequestsTotal, "http_requests", "Total number of HTTP requests"},
		{&p.ValidationsTotal, "signup_validations", "Signup form validations by outcome"},
		{&p.RuleFailures, "signup_rule_failures", "Signup rule failure messages by field"},
		{&p.AccountsRegistered, "signup_accounts_registered", "Accounts created through signup"},
	}

	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc))
		if err != nil {
			return err
		}
		*c.dst = counter
	}

	var err error
	p.RequestDuration, err = meter.Float64Histogram(
		"http_request_duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	)
	if err != nil {
		return err
	}

	p.RequestsInFlight, err = meter.Int64UpDownCounter(
		"http_requests_in_flight",
		metric.WithDescription("Number of HTTP requests currently in flight"),
	)
	return err
}

func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
