// Package metrics wires OpenTelemetry metrics to the Prometheus registry and
// defines the instruments shared across the service.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets are histogram buckets in seconds for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Setup installs a global meter provider whose readings are served by the
// given Prometheus registerer.
func Setup(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Verification holds the instruments of the verification command.
type Verification struct {
	outcomes    metric.Int64Counter
	dnsDuration metric.Float64Histogram
}

// NewVerification creates the verification instruments on mp.
func NewVerification(mp metric.MeterProvider) (*Verification, error) {
	meter := mp.Meter("orgdomain/verification")

	outcomes, err := meter.Int64Counter("domain_verification_outcomes",
		metric.WithDescription("Verification attempts by trigger and outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create outcomes counter: %w", err)
	}

	dnsDuration, err := meter.Float64Histogram("domain_verification_dns_duration",
		metric.WithDescription("Duration of TXT lookups."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create dns duration histogram: %w", err)
	}

	return &Verification{outcomes: outcomes, dnsDuration: dnsDuration}, nil
}

// RecordOutcome counts one verification attempt.
func (v *Verification) RecordOutcome(ctx context.Context, trigger, outcome string) {
	v.outcomes.Add(ctx, 1, metric.WithAttributes(
		attribute.String("trigger", trigger),
		attribute.String("outcome", outcome)))
}

// RecordDNSDuration observes the duration of one TXT lookup.
func (v *Verification) RecordDNSDuration(ctx context.Context, d time.Duration, result string) {
	v.dnsDuration.Record(ctx, d.Seconds(), metric.WithAttributes(attribute.String("result", result)))
}
