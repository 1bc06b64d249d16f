// Package domain provides domain-specific error definitions and utilities.
package domain

import (
	"errors"
	"fmt"
)

// Offset-related errors.
var (
	ErrInvalidOffset = errors.New("invalid offset")
	ErrEmptyPattern  = errors.New("pattern must not be empty")
)

// General domain errors.
var (
	ErrInvalidInput = errors.New("invalid input")
)

// OffsetReason classifies why an offset was rejected.
type OffsetReason string

// Offset rejection reasons.
const (
	ReasonNegative       OffsetReason = "negative"
	ReasonOutOfRange     OffsetReason = "out_of_range"
	ReasonSplitCharacter OffsetReason = "split_character"
	ReasonSplitCluster   OffsetReason = "split_cluster"
)

// OffsetError describes a rejected offset. It unwraps to ErrInvalidOffset.
type OffsetError struct {
	Offset int
	Length int
	Reason OffsetReason
}

// NewOffsetError creates an OffsetError for offset into a text of the given length.
func NewOffsetError(offset, length int, reason OffsetReason) *OffsetError {
	return &OffsetError{Offset: offset, Length: length, Reason: reason}
}

func (e *OffsetError) Error() string {
	switch e.Reason {
	case ReasonNegative:
		return fmt.Sprintf("invalid offset %d: must not be negative", e.Offset)
	case ReasonOutOfRange:
		return fmt.Sprintf("invalid offset %d: exceeds text length %d", e.Offset, e.Length)
	case ReasonSplitCharacter:
		return fmt.Sprintf("invalid offset %d: splits a character", e.Offset)
	case ReasonSplitCluster:
		return fmt.Sprintf("invalid offset %d: splits a grapheme cluster", e.Offset)
	default:
		return fmt.Sprintf("invalid offset %d", e.Offset)
	}
}

// WithPosition returns a copy of e reporting offset and length, used when a
// byte offset is translated back into the unit the caller counted in.
func (e *OffsetError) WithPosition(offset, length int) *OffsetError {
	return NewOffsetError(offset, length, e.Reason)
}

// Unwrap returns ErrInvalidOffset so callers can use errors.Is.
func (e *OffsetError) Unwrap() error {
	return ErrInvalidOffset
}

// IsInvalidOffset reports whether err is, or wraps, an invalid offset error.
func IsInvalidOffset(err error) bool {
	return errors.Is(err, ErrInvalidOffset)
}
