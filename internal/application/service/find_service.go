package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"textoffset/internal/application/common"
	"textoffset/internal/application/common/slogger"
	"textoffset/internal/application/dto"
	"textoffset/internal/domain/errors/domain"
	domainservice "textoffset/internal/domain/service"
	"textoffset/internal/domain/valueobject"
	"textoffset/internal/port/inbound"

	"golang.org/x/sync/errgroup"
)

// Operation names used in logs and metrics.
const (
	OperationFind    = "find"
	OperationFindAll = "find_all"
	OperationBetween = "between"
)

var (
	_ inbound.FindService     = (*FindService)(nil)
	_ inbound.OffsetConverter = (*OffsetConversionService)(nil)
)

// FindServiceConfig holds the defaults a FindService applies to requests.
type FindServiceConfig struct {
	DefaultUnit     string
	DefaultBoundary string
	MaxConcurrency  int
}

// FindService runs offset searches for the CLI and any other inbound adapter.
// It translates request offsets to byte offsets, runs the domain finder and
// translates results back.
type FindService struct {
	config  FindServiceConfig
	metrics FindMetrics
}

// NewFindService creates a new FindService.
func NewFindService(config FindServiceConfig, metrics FindMetrics) (*FindService, error) {
	if metrics == nil {
		return nil, errors.New("metrics cannot be nil")
	}
	if config.MaxConcurrency < 1 {
		config.MaxConcurrency = 1
	}
	if config.DefaultUnit == "" {
		config.DefaultUnit = valueobject.UnitByte.String()
	}
	if config.DefaultBoundary == "" {
		config.DefaultBoundary = valueobject.BoundaryRune.String()
	}
	return &FindService{config: config, metrics: metrics}, nil
}

// Find locates request.Pattern at or after request.Start. With request.All it
// returns every non-overlapping match instead of the first.
func (s *FindService) Find(ctx context.Context, request dto.FindRequest) (dto.FindResponse, error) {
	request.ApplyDefaults(s.config.DefaultUnit, s.config.DefaultBoundary)
	request.Boundary = effectiveBoundary(request.Unit, request.Boundary)
	operation, description := OperationFind, common.OpFind
	if request.All {
		operation, description = OperationFindAll, common.OpFindAll
	}

	started := time.Now()
	resp, err := s.find(request)
	elapsed := time.Since(started)

	outcome := classify(resp.Found, err)
	s.metrics.RecordFind(ctx, operation, outcome, request.Unit, request.Boundary, elapsed)
	matchCount := len(resp.Matches)
	if resp.Found && matchCount == 0 {
		matchCount = 1
	}
	s.metrics.RecordMatches(ctx, operation, matchCount, request.Unit)

	fields := slogger.Fields{
		"operation":   operation,
		"pattern_len": len(request.Pattern),
		"text_len":    len(request.Text),
		"start":       request.Start,
		"unit":        request.Unit,
		"boundary":    request.Boundary,
		"outcome":     outcome.String(),
	}
	if err != nil {
		if outcome == OutcomeInvalidOffset {
			slogger.Warn(ctx, "Find rejected offset", withError(fields, err))
		} else {
			slogger.ErrorWithError(ctx, err, "Find failed", fields)
		}
		return dto.FindResponse{}, common.WrapServiceError(description, err)
	}

	slogger.WithComponent("find-service").LogPerformance(ctx, operation, elapsed, fields)
	return resp, nil
}

func (s *FindService) find(request dto.FindRequest) (dto.FindResponse, error) {
	if err := request.Validate(); err != nil {
		return dto.FindResponse{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	unit, finder, err := s.prepare(request.Unit, request.Boundary, request.Pattern)
	if err != nil {
		return dto.FindResponse{}, err
	}

	startByte, err := domainservice.ToByteOffset(request.Text, request.Start, unit)
	if err != nil {
		return dto.FindResponse{}, err
	}

	resp := dto.FindResponse{
		Pattern: request.Pattern,
		Start:   request.Start,
		Unit:    unit.String(),
	}

	var matches []valueobject.Match
	if request.All {
		matches, err = finder.FindAll(request.Text, request.Pattern, startByte)
	} else {
		var m valueobject.Match
		m, err = finder.FindFrom(request.Text, request.Pattern, startByte)
		if m.Found() {
			matches = []valueobject.Match{m}
		}
	}
	if err != nil {
		return dto.FindResponse{}, domainservice.InUnit(err, request.Text, request.Start, unit)
	}
	if len(matches) == 0 {
		return resp, nil
	}

	resp.Found = true
	resp.Matches = make([]dto.MatchDTO, 0, len(matches))
	for _, m := range matches {
		start, err := domainservice.FromByteOffset(request.Text, m.Start(), unit)
		if err != nil {
			return dto.FindResponse{}, err
		}
		end, err := domainservice.FromByteOffset(request.Text, m.End(), unit)
		if err != nil {
			return dto.FindResponse{}, err
		}
		resp.Matches = append(resp.Matches, dto.MatchDTO{Start: start, End: end})
	}
	first := resp.Matches[0].Start
	resp.Index = &first
	if !request.All {
		resp.Matches = nil
	}
	return resp, nil
}

// FindBatch runs requests concurrently, bounded by MaxConcurrency. Responses
// are returned in request order. The first failing request cancels the rest.
func (s *FindService) FindBatch(ctx context.Context, requests []dto.FindRequest) ([]dto.FindResponse, error) {
	responses := make([]dto.FindResponse, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrency)

	for i, request := range requests {
		i, request := i, request
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, err := s.Find(gctx, request)
			if err != nil {
				return fmt.Errorf("request %d (%q): %w", i, request.Pattern, err)
			}
			responses[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slogger.Debug(ctx, "Find batch completed", slogger.Fields{
		"requests":        len(requests),
		"max_concurrency": s.config.MaxConcurrency,
	})
	return responses, nil
}

// Between returns the text enclosed by request.Open and request.Close.
func (s *FindService) Between(ctx context.Context, request dto.BetweenRequest) (dto.BetweenResponse, error) {
	request.ApplyDefaults(s.config.DefaultUnit, s.config.DefaultBoundary)
	request.Boundary = effectiveBoundary(request.Unit, request.Boundary)

	started := time.Now()
	resp, err := s.between(request)
	elapsed := time.Since(started)

	outcome := classify(resp.Found, err)
	s.metrics.RecordFind(ctx, OperationBetween, outcome, request.Unit, request.Boundary, elapsed)

	if err != nil {
		slogger.Warn(ctx, "Between failed", withError(slogger.Fields{
			"operation": OperationBetween,
			"start":     request.Start,
			"unit":      request.Unit,
			"boundary":  request.Boundary,
			"outcome":   outcome.String(),
		}, err))
		return dto.BetweenResponse{}, common.WrapServiceError(common.OpBetween, err)
	}
	return resp, nil
}

func (s *FindService) between(request dto.BetweenRequest) (dto.BetweenResponse, error) {
	if err := request.Validate(); err != nil {
		return dto.BetweenResponse{}, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	unit, finder, err := s.prepare(request.Unit, request.Boundary, request.Open, request.Close)
	if err != nil {
		return dto.BetweenResponse{}, err
	}

	startByte, err := domainservice.ToByteOffset(request.Text, request.Start, unit)
	if err != nil {
		return dto.BetweenResponse{}, err
	}

	span, err := finder.Between(request.Text, request.Open, request.Close, startByte)
	if err != nil {
		return dto.BetweenResponse{}, domainservice.InUnit(err, request.Text, request.Start, unit)
	}

	resp := dto.BetweenResponse{Unit: unit.String()}
	if !span.Found() {
		return resp, nil
	}

	start, err := domainservice.FromByteOffset(request.Text, span.Start(), unit)
	if err != nil {
		return dto.BetweenResponse{}, err
	}
	end, err := domainservice.FromByteOffset(request.Text, span.End(), unit)
	if err != nil {
		return dto.BetweenResponse{}, err
	}
	resp.Found = true
	resp.Start = &start
	resp.End = &end
	resp.Text = span.Text()
	return resp, nil
}

// effectiveBoundary returns the boundary mode a request is searched with.
// Grapheme offsets are only meaningful when matches are grapheme-aligned, so
// the grapheme unit forces grapheme boundaries.
func effectiveBoundary(unit, boundary string) string {
	if unit == valueobject.UnitGrapheme.String() {
		return valueobject.BoundaryGrapheme.String()
	}
	return boundary
}

// prepare parses unit and boundary and builds the finder for a request.
// Non-byte units require a valid UTF-8 pattern so that match ends land on
// character boundaries.
func (s *FindService) prepare(
	unitName, boundaryName string,
	patterns ...string,
) (valueobject.OffsetUnit, *domainservice.OffsetFinder, error) {
	unit, err := valueobject.NewOffsetUnit(unitName)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	mode, err := valueobject.NewBoundaryMode(boundaryName)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if unit != valueobject.UnitByte {
		for _, pattern := range patterns {
			if !utf8.ValidString(pattern) {
				return "", nil, fmt.Errorf("%w: pattern is not valid UTF-8", domain.ErrInvalidInput)
			}
		}
	}
	return unit, domainservice.NewOffsetFinder(domainservice.WithBoundary(mode)), nil
}

func classify(found bool, err error) Outcome {
	switch {
	case err == nil && found:
		return OutcomeFound
	case err == nil:
		return OutcomeNotFound
	case domain.IsInvalidOffset(err):
		return OutcomeInvalidOffset
	default:
		return OutcomeError
	}
}

func withError(fields slogger.Fields, err error) slogger.Fields {
	fields["error"] = err.Error()
	return fields
}

// OffsetConversionService converts offsets between units.
type OffsetConversionService struct{}

// NewOffsetConversionService creates a new OffsetConversionService.
func NewOffsetConversionService() *OffsetConversionService {
	return &OffsetConversionService{}
}

// Convert converts offset in text from one unit to another.
func (c *OffsetConversionService) Convert(ctx context.Context, text string, offset int, from, to string) (int, error) {
	fromUnit, err := valueobject.NewOffsetUnit(from)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	toUnit, err := valueobject.NewOffsetUnit(to)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	converted, err := domainservice.ConvertOffset(text, offset, fromUnit, toUnit)
	if err != nil {
		slogger.Warn(ctx, "Offset conversion failed", slogger.Fields{
			"offset": offset,
			"from":   from,
			"to":     to,
			"error":  err.Error(),
		})
		return 0, common.WrapServiceError(common.OpConvertOffset, err)
	}
	return converted, nil
}
