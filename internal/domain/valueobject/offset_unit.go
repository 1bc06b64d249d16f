package valueobject

import "fmt"

// OffsetUnit is the unit an offset is counted in.
type OffsetUnit string

// Offset units.
const (
	UnitByte     OffsetUnit = "byte"
	UnitRune     OffsetUnit = "rune"
	UnitGrapheme OffsetUnit = "grapheme"
)

var validOffsetUnits = map[OffsetUnit]bool{ //nolint:gochecknoglobals // lookup table
	UnitByte:     true,
	UnitRune:     true,
	UnitGrapheme: true,
}

// NewOffsetUnit creates a new OffsetUnit with validation.
// An empty string selects UnitByte.
func NewOffsetUnit(unit string) (OffsetUnit, error) {
	if unit == "" {
		return UnitByte, nil
	}
	u := OffsetUnit(unit)
	if !validOffsetUnits[u] {
		return "", fmt.Errorf("invalid offset unit: %s", unit)
	}
	return u, nil
}

// String returns the string representation of the unit.
func (u OffsetUnit) String() string {
	return string(u)
}

// BoundaryMode selects which positions count as character boundaries.
type BoundaryMode string

// Boundary modes.
const (
	// BoundaryRune accepts any position that does not split a UTF-8 sequence.
	BoundaryRune BoundaryMode = "rune"
	// BoundaryGrapheme accepts only extended grapheme cluster boundaries.
	BoundaryGrapheme BoundaryMode = "grapheme"
)

// NewBoundaryMode creates a new BoundaryMode with validation.
// An empty string selects BoundaryRune.
func NewBoundaryMode(mode string) (BoundaryMode, error) {
	switch BoundaryMode(mode) {
	case "":
		return BoundaryRune, nil
	case BoundaryRune, BoundaryGrapheme:
		return BoundaryMode(mode), nil
	default:
		return "", fmt.Errorf("invalid boundary mode: %s", mode)
	}
}

// String returns the string representation of the mode.
func (b BoundaryMode) String() string {
	return string(b)
}
