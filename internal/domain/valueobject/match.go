package valueobject

import "fmt"

// Match is the outcome of a single search. A found match carries the
// absolute byte index of the occurrence and the pattern length; NoMatch is
// the distinct not-found value.
type Match struct {
	index  int
	length int
	found  bool
}

// NoMatch is the result of a search with no occurrence.
var NoMatch = Match{} //nolint:gochecknoglobals // immutable sentinel value

// NewMatch creates a found match at index spanning length bytes.
func NewMatch(index, length int) Match {
	return Match{index: index, length: length, found: true}
}

// Found reports whether the search located the pattern.
func (m Match) Found() bool {
	return m.found
}

// Index returns the absolute start of the match and whether it was found.
func (m Match) Index() (int, bool) {
	return m.index, m.found
}

// Start returns the absolute start of the match. It panics on NoMatch.
func (m Match) Start() int {
	if !m.found {
		panic("valueobject: Start called on NoMatch")
	}
	return m.index
}

// End returns the exclusive end of the match. It panics on NoMatch.
func (m Match) End() int {
	return m.Start() + m.length
}

// Len returns the length of the matched pattern in bytes.
func (m Match) Len() int {
	return m.length
}

// String returns a human-readable representation of the match.
func (m Match) String() string {
	if !m.found {
		return "not found"
	}
	return fmt.Sprintf("[%d,%d)", m.index, m.index+m.length)
}

// Span is the text enclosed between two delimiters.
type Span struct {
	start int
	end   int
	text  string
	found bool
}

// NoSpan is the result of a delimiter search where either delimiter is missing.
var NoSpan = Span{} //nolint:gochecknoglobals // immutable sentinel value

// NewSpan creates a found span covering text[start:end].
func NewSpan(start, end int, text string) Span {
	return Span{start: start, end: end, text: text, found: true}
}

// Found reports whether both delimiters were located.
func (s Span) Found() bool {
	return s.found
}

// Start returns the absolute start of the enclosed text.
func (s Span) Start() int {
	return s.start
}

// End returns the absolute exclusive end of the enclosed text.
func (s Span) End() int {
	return s.end
}

// Text returns the enclosed text.
func (s Span) Text() string {
	return s.text
}
