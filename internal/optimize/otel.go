package optimize

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/airliftops/loadmaster/internal/optimize"

var (
	reoptimizeCount    metric.Int64Counter
	reoptimizeDuration metric.Float64Histogram
)

// A failed instrument goes to the global OTel error handler and
// recording becomes a no-op.
func init() {
	m := otel.Meter(instrumentationName)
	var err error

	reoptimizeCount, err = m.Int64Counter(
		"loadmaster.reoptimize.count",
		metric.WithDescription("Number of placement re-optimizations performed"),
	)
	if err != nil {
		otel.Handle(err)
		reoptimizeCount = nil
	}

	reoptimizeDuration, err = m.Float64Histogram(
		"loadmaster.reoptimize.duration",
		metric.WithDescription("Placement re-optimization duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		otel.Handle(err)
		reoptimizeDuration = nil
	}
}
