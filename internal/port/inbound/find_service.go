// Package inbound defines the inbound ports (interfaces) for the application layer.
// These ports represent the entry points into the application's core business logic.
package inbound

import (
	"context"

	"textoffset/internal/application/dto"
)

// FindService defines the inbound port for offset searches.
type FindService interface {
	Find(ctx context.Context, request dto.FindRequest) (dto.FindResponse, error)
	FindBatch(ctx context.Context, requests []dto.FindRequest) ([]dto.FindResponse, error)
	Between(ctx context.Context, request dto.BetweenRequest) (dto.BetweenResponse, error)
}

// OffsetConverter defines the inbound port for converting offsets between units.
type OffsetConverter interface {
	Convert(ctx context.Context, text string, offset int, from, to string) (int, error)
}
