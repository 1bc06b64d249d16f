package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names for find operations.
const (
	FindMeterName             = "textoffset/find"
	FindRequestsCounterName   = "find_requests_total"
	FindMatchesCounterName    = "find_matches_total"
	FindDurationHistogramName = "find_duration_seconds"
)

// Attribute keys for find metrics.
const (
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
	AttrUnit      = "unit"
	AttrBoundary  = "boundary"
)

// Outcome classifies the result of a find operation.
type Outcome string

// Find outcomes.
const (
	OutcomeFound         Outcome = "found"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeInvalidOffset Outcome = "invalid_offset"
	OutcomeError         Outcome = "error"
)

// String returns the string representation of the outcome.
func (o Outcome) String() string {
	return string(o)
}

var findLatencyBuckets = []float64{ //nolint:gochecknoglobals // histogram configuration
	0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1, 1,
}

// FindMetrics records observability data for find operations.
type FindMetrics interface {
	RecordFind(ctx context.Context, operation string, outcome Outcome, unit, boundary string, duration time.Duration)
	RecordMatches(ctx context.Context, operation string, count int, unit string)
}

// OTelFindMetrics implements FindMetrics using OpenTelemetry.
type OTelFindMetrics struct {
	requestsCounter metric.Int64Counter
	matchesCounter  metric.Int64Counter
	durationHist    metric.Float64Histogram
}

// NewFindMetrics creates FindMetrics on provider. A nil provider selects the
// global meter provider.
func NewFindMetrics(provider metric.MeterProvider) (*OTelFindMetrics, error) {
	if provider == nil {
		provider = otel.GetMeterProvider()
	}
	meter := provider.Meter(FindMeterName, metric.WithInstrumentationVersion("1.0.0"))

	requestsCounter, err := meter.Int64Counter(FindRequestsCounterName,
		metric.WithDescription("Total number of find requests by outcome"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	matchesCounter, err := meter.Int64Counter(FindMatchesCounterName,
		metric.WithDescription("Total number of matches returned"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(FindDurationHistogramName,
		metric.WithDescription("Duration of find operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(findLatencyBuckets...),
	)
	if err != nil {
		return nil, err
	}

	return &OTelFindMetrics{
		requestsCounter: requestsCounter,
		matchesCounter:  matchesCounter,
		durationHist:    durationHist,
	}, nil
}

// RecordFind records one find request and its duration.
func (m *OTelFindMetrics) RecordFind(
	ctx context.Context,
	operation string,
	outcome Outcome,
	unit, boundary string,
	duration time.Duration,
) {
	attrs := metric.WithAttributes(
		attribute.String(AttrOperation, operation),
		attribute.String(AttrOutcome, outcome.String()),
		attribute.String(AttrUnit, unit),
		attribute.String(AttrBoundary, boundary),
	)
	m.requestsCounter.Add(ctx, 1, attrs)
	m.durationHist.Record(ctx, duration.Seconds(), attrs)
}

// RecordMatches records the number of matches an operation returned.
func (m *OTelFindMetrics) RecordMatches(ctx context.Context, operation string, count int, unit string) {
	if count <= 0 {
		return
	}
	m.matchesCounter.Add(ctx, int64(count), metric.WithAttributes(
		attribute.String(AttrOperation, operation),
		attribute.String(AttrUnit, unit),
	))
}
