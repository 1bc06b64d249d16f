package service

import (
	"errors"
	"unicode/utf8"

	"textoffset/internal/domain/errors/domain"
	"textoffset/internal/domain/valueobject"

	"github.com/rivo/uniseg"
)

// ToByteOffset converts an offset counted in unit into a byte offset of text.
// The offset may equal the number of units in text, addressing its end.
func ToByteOffset(text string, n int, unit valueobject.OffsetUnit) (int, error) {
	switch unit {
	case valueobject.UnitRune:
		if n < 0 {
			return 0, domain.NewOffsetError(n, utf8.RuneCountInString(text), domain.ReasonNegative)
		}
		count := 0
		for i := range text {
			if count == n {
				return i, nil
			}
			count++
		}
		if count == n {
			return len(text), nil
		}
		return 0, domain.NewOffsetError(n, count, domain.ReasonOutOfRange)
	case valueobject.UnitGrapheme:
		bounds := graphemeBoundariesOf(text)
		clusters := len(bounds) - 1
		if n < 0 {
			return 0, domain.NewOffsetError(n, clusters, domain.ReasonNegative)
		}
		if n > clusters {
			return 0, domain.NewOffsetError(n, clusters, domain.ReasonOutOfRange)
		}
		return bounds[n], nil
	default:
		off, err := valueobject.NewOffset(n, len(text))
		if err != nil {
			return 0, err
		}
		return off.Int(), nil
	}
}

// FromByteOffset converts byte offset b of text into an offset counted in
// unit. A b that falls inside a unit is rejected.
func FromByteOffset(text string, b int, unit valueobject.OffsetUnit) (int, error) {
	if _, err := valueobject.NewOffset(b, len(text)); err != nil {
		return 0, err
	}
	switch unit {
	case valueobject.UnitRune:
		if !isRuneBoundary(text, b) {
			return 0, domain.NewOffsetError(b, len(text), domain.ReasonSplitCharacter)
		}
		return utf8.RuneCountInString(text[:b]), nil
	case valueobject.UnitGrapheme:
		n, ok := graphemeBoundariesOf(text).index(b)
		if !ok {
			return 0, domain.NewOffsetError(b, len(text), splitReason(text, b))
		}
		return n, nil
	default:
		return b, nil
	}
}

// UnitLength returns the length of text counted in unit.
func UnitLength(text string, unit valueobject.OffsetUnit) int {
	switch unit {
	case valueobject.UnitRune:
		return utf8.RuneCountInString(text)
	case valueobject.UnitGrapheme:
		return uniseg.GraphemeClusterCount(text)
	default:
		return len(text)
	}
}

// ConvertOffset converts n between two units of the same text.
func ConvertOffset(text string, n int, from, to valueobject.OffsetUnit) (int, error) {
	b, err := ToByteOffset(text, n, from)
	if err != nil {
		return 0, err
	}
	converted, err := FromByteOffset(text, b, to)
	if err != nil {
		return 0, InUnit(err, text, n, from)
	}
	return converted, nil
}

// InUnit restates an offset error raised for a byte offset in terms of the
// offset n the caller gave in unit. Other errors are returned unchanged.
func InUnit(err error, text string, n int, unit valueobject.OffsetUnit) error {
	var offErr *domain.OffsetError
	if !errors.As(err, &offErr) {
		return err
	}
	return offErr.WithPosition(n, UnitLength(text, unit))
}
