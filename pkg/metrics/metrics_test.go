package metrics_test

import (
	"context"
	"testing"
	"time"

	"orgdomain/pkg/metrics"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestVerification(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	v, err := metrics.NewVerification(mp)
	require.NoError(t, err)

	ctx := context.Background()
	v.RecordOutcome(ctx, "user", "verified")
	v.RecordOutcome(ctx, "user", "verified")
	v.RecordOutcome(ctx, "system", "not_verified")
	v.RecordDNSDuration(ctx, 20*time.Millisecond, "found")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Len(t, rm.ScopeMetrics, 1)

	byName := map[string]metricdata.Metrics{}
	for _, m := range rm.ScopeMetrics[0].Metrics {
		byName[m.Name] = m
	}

	outcomes, ok := byName["domain_verification_outcomes"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range outcomes.DataPoints {
		total += dp.Value
	}
	require.Equal(t, int64(3), total)
	require.Len(t, outcomes.DataPoints, 2)

	hist, ok := byName["domain_verification_dns_duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	require.Equal(t, uint64(1), hist.DataPoints[0].Count)
}
