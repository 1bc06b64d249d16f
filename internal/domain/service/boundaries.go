package service

import (
	"slices"
	"unicode/utf8"

	"textoffset/internal/domain/valueobject"

	"github.com/rivo/uniseg"
)

// boundaryChecker reports whether a byte position is a character boundary.
type boundaryChecker interface {
	isBoundary(i int) bool
}

// runeBoundaries treats every position outside a UTF-8 sequence as a boundary.
// Malformed bytes count as one-byte characters.
type runeBoundaries string

func (text runeBoundaries) isBoundary(i int) bool {
	return isRuneBoundary(string(text), i)
}

// graphemeBoundaries holds the sorted cluster boundaries of a text,
// including 0 and len(text).
type graphemeBoundaries []int

func (b graphemeBoundaries) isBoundary(i int) bool {
	_, ok := slices.BinarySearch(b, i)
	return ok
}

// index returns the cluster count preceding position i.
func (b graphemeBoundaries) index(i int) (int, bool) {
	return slices.BinarySearch(b, i)
}

func newBoundaryChecker(text string, mode valueobject.BoundaryMode) boundaryChecker {
	if mode == valueobject.BoundaryGrapheme {
		return graphemeBoundariesOf(text)
	}
	return runeBoundaries(text)
}

func graphemeBoundariesOf(text string) graphemeBoundaries {
	bounds := make(graphemeBoundaries, 1, uniseg.GraphemeClusterCount(text)+1)
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		_, to := gr.Positions()
		bounds = append(bounds, to)
	}
	return bounds
}

func isRuneBoundary(text string, i int) bool {
	if i <= 0 || i >= len(text) {
		return true
	}
	if utf8.RuneStart(text[i]) {
		return true
	}
	// Find the lead byte that could own position i and see whether its
	// sequence reaches past it.
	for j := i - 1; j >= 0 && j > i-utf8.UTFMax; j-- {
		if utf8.RuneStart(text[j]) {
			_, size := utf8.DecodeRuneInString(text[j:])
			return j+size <= i
		}
	}
	return true
}
