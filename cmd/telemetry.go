package cmd

import (
	"context"
	"fmt"
	"io"
	"sort"

	"textoffset/internal/version"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.opentelemetry.io/otel/sdk/resource"
)

// telemetry collects the metrics of a single CLI invocation in memory so they
// can be printed when the command finishes.
type telemetry struct {
	reader   *sdkmetric.ManualReader
	provider *sdkmetric.MeterProvider
}

func newTelemetry(ctx context.Context) (*telemetry, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", "textoffset"),
			attribute.String("service.version", version.GetVersion().Version),
		),
	)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(reader),
	)
	return &telemetry{reader: reader, provider: provider}, nil
}

// writeSummary prints one line per data point, sorted for stable output.
func (t *telemetry) writeSummary(ctx context.Context, w io.Writer) error {
	var rm metricdata.ResourceMetrics
	if err := t.reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("failed to collect metrics: %w", err)
	}

	var lines []string
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			lines = append(lines, summaryLines(m)...)
		}
	}
	sort.Strings(lines)

	if _, err := fmt.Fprintln(w, "metrics:"); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func summaryLines(m metricdata.Metrics) []string {
	var lines []string
	switch data := m.Data.(type) {
	case metricdata.Sum[int64]:
		for _, dp := range data.DataPoints {
			lines = append(lines, fmt.Sprintf("%s{%s} %d", m.Name, encodeAttributes(dp.Attributes), dp.Value))
		}
	case metricdata.Histogram[float64]:
		for _, dp := range data.DataPoints {
			lines = append(lines, fmt.Sprintf("%s{%s} count=%d sum=%g",
				m.Name, encodeAttributes(dp.Attributes), dp.Count, dp.Sum))
		}
	}
	return lines
}

func encodeAttributes(set attribute.Set) string {
	return set.Encoded(attribute.DefaultEncoder())
}

func (t *telemetry) shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}
