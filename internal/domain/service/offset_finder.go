package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"textoffset/internal/domain/errors/domain"
	"textoffset/internal/domain/valueobject"
)

// OffsetFinder locates a pattern at or after a start offset and reports the
// position in the coordinate space of the whole text. It holds no mutable
// state and is safe for concurrent use.
type OffsetFinder struct {
	boundary valueobject.BoundaryMode
}

// FinderOption configures an OffsetFinder.
type FinderOption func(*OffsetFinder)

// WithBoundary sets the boundary mode used to validate offsets and matches.
func WithBoundary(mode valueobject.BoundaryMode) FinderOption {
	return func(f *OffsetFinder) {
		f.boundary = mode
	}
}

// NewOffsetFinder creates a finder. The default boundary mode is BoundaryRune.
func NewOffsetFinder(opts ...FinderOption) *OffsetFinder {
	f := &OffsetFinder{boundary: valueobject.BoundaryRune}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Boundary returns the finder's boundary mode.
func (f *OffsetFinder) Boundary() valueobject.BoundaryMode {
	return f.boundary
}

// FindFrom returns the leftmost occurrence of pattern in text[start:],
// re-anchored to text. An empty pattern matches at start. A start that is
// negative, past the end of text or not on a character boundary yields an
// error wrapping domain.ErrInvalidOffset.
func (f *OffsetFinder) FindFrom(text, pattern string, start int) (valueobject.Match, error) {
	bounds := newBoundaryChecker(text, f.boundary)
	off, err := validateStart(text, start, bounds)
	if err != nil {
		return valueobject.NoMatch, err
	}
	return f.find(text, pattern, off, bounds), nil
}

// FindAll returns every non-overlapping occurrence of pattern at or after
// start, leftmost first. Each search resumes at the end of the previous match.
func (f *OffsetFinder) FindAll(text, pattern string, start int) ([]valueobject.Match, error) {
	if pattern == "" {
		return nil, domain.ErrEmptyPattern
	}
	bounds := newBoundaryChecker(text, f.boundary)
	off, err := validateStart(text, start, bounds)
	if err != nil {
		return nil, err
	}

	var matches []valueobject.Match
	for {
		m := f.find(text, pattern, off, bounds)
		if !m.Found() {
			return matches, nil
		}
		matches = append(matches, m)
		off, _ = valueobject.NewOffset(m.End(), len(text))
	}
}

// Between finds open at or after start, then closing after it, and returns
// the text enclosed by the two delimiters. NoSpan is returned when either
// delimiter is missing.
func (f *OffsetFinder) Between(text, open, closing string, start int) (valueobject.Span, error) {
	if open == "" || closing == "" {
		return valueobject.NoSpan, fmt.Errorf("delimiter: %w", domain.ErrEmptyPattern)
	}
	bounds := newBoundaryChecker(text, f.boundary)
	off, err := validateStart(text, start, bounds)
	if err != nil {
		return valueobject.NoSpan, err
	}

	first := f.find(text, open, off, bounds)
	if !first.Found() {
		return valueobject.NoSpan, nil
	}
	inner, _ := valueobject.NewOffset(first.End(), len(text))
	second := f.find(text, closing, inner, bounds)
	if !second.Found() {
		return valueobject.NoSpan, nil
	}
	return valueobject.NewSpan(first.End(), second.Start(), text[first.End():second.Start()]), nil
}

// find searches text from a validated offset.
func (f *OffsetFinder) find(
	text, pattern string,
	start valueobject.Offset,
	bounds boundaryChecker,
) valueobject.Match {
	if f.boundary != valueobject.BoundaryGrapheme {
		r := strings.Index(text[start.Int():], pattern)
		if r < 0 {
			return valueobject.NoMatch
		}
		return valueobject.NewMatch(start.Add(r), len(pattern))
	}

	// Grapheme mode: skip candidates that cut through a cluster.
	from := start.Int()
	for from <= len(text) {
		r := strings.Index(text[from:], pattern)
		if r < 0 {
			return valueobject.NoMatch
		}
		idx := from + r
		if bounds.isBoundary(idx) && bounds.isBoundary(idx+len(pattern)) {
			return valueobject.NewMatch(idx, len(pattern))
		}
		_, size := utf8.DecodeRuneInString(text[idx:])
		if size == 0 {
			return valueobject.NoMatch
		}
		from = idx + size
	}
	return valueobject.NoMatch
}

func validateStart(text string, start int, bounds boundaryChecker) (valueobject.Offset, error) {
	off, err := valueobject.NewOffset(start, len(text))
	if err != nil {
		return valueobject.Offset{}, err
	}
	if !bounds.isBoundary(start) {
		return valueobject.Offset{}, domain.NewOffsetError(start, len(text), splitReason(text, start))
	}
	return off, nil
}

// splitReason tells a position inside a UTF-8 sequence from one that only
// falls inside a grapheme cluster.
func splitReason(text string, i int) domain.OffsetReason {
	if isRuneBoundary(text, i) {
		return domain.ReasonSplitCluster
	}
	return domain.ReasonSplitCharacter
}

var defaultFinder = NewOffsetFinder() //nolint:gochecknoglobals // stateless default

// FindFrom runs OffsetFinder.FindFrom with the default rune boundary mode.
func FindFrom(text, pattern string, start int) (valueobject.Match, error) {
	return defaultFinder.FindFrom(text, pattern, start)
}
