package planner

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/airliftops/loadmaster/internal/planner"

// metrics holds the pipeline instruments. They come from the global
// OTel meter, which is a no-op until a provider is installed.
type metrics struct {
	planCount    metric.Int64Counter
	planInvalid  metric.Int64Counter
	planDuration metric.Float64Histogram
}

func newMetrics() (metrics, error) {
	m := otel.Meter(instrumentationName)

	var mm metrics
	var err error

	mm.planCount, err = m.Int64Counter(
		"loadmaster.plan.count",
		metric.WithDescription("Number of planning pipeline runs"),
	)
	if err != nil {
		return metrics{}, fmt.Errorf("creating plan counter: %w", err)
	}

	mm.planInvalid, err = m.Int64Counter(
		"loadmaster.plan.invalid",
		metric.WithDescription("Number of pipeline runs producing an invalid load"),
	)
	if err != nil {
		return metrics{}, fmt.Errorf("creating invalid plan counter: %w", err)
	}

	mm.planDuration, err = m.Float64Histogram(
		"loadmaster.plan.duration",
		metric.WithDescription("Planning pipeline duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return metrics{}, fmt.Errorf("creating plan duration histogram: %w", err)
	}

	return mm, nil
}

func (m metrics) recordPlan(ctx context.Context, d time.Duration, valid bool, attrs ...attribute.KeyValue) {
	opts := metric.WithAttributes(attrs...)
	m.planCount.Add(ctx, 1, opts)
	if !valid {
		m.planInvalid.Add(ctx, 1, opts)
	}
	m.planDuration.Record(ctx, float64(d.Microseconds())/1000.0, opts)
}
