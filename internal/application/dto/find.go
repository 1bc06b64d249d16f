// Package dto holds the request and response types of the application layer.
package dto

import (
	"fmt"

	"textoffset/internal/domain/valueobject"
)

// FindRequest asks for a pattern at or after Start in Text.
// Start is counted in Unit; Boundary selects character boundary rules.
type FindRequest struct {
	Text     string `json:"-"                  yaml:"-"`
	Pattern  string `json:"pattern"            yaml:"pattern"`
	Start    int    `json:"start"              yaml:"start"`
	Unit     string `json:"unit,omitempty"     yaml:"unit,omitempty"`
	Boundary string `json:"boundary,omitempty" yaml:"boundary,omitempty"`
	All      bool   `json:"all,omitempty"      yaml:"all,omitempty"`
}

// ApplyDefaults fills in unit and boundary when the request leaves them empty.
func (r *FindRequest) ApplyDefaults(unit, boundary string) {
	if r.Unit == "" {
		r.Unit = unit
	}
	if r.Boundary == "" {
		r.Boundary = boundary
	}
}

// Validate checks the request's enumerated fields. Offsets are checked by the finder.
func (r FindRequest) Validate() error {
	if _, err := valueobject.NewOffsetUnit(r.Unit); err != nil {
		return err
	}
	if _, err := valueobject.NewBoundaryMode(r.Boundary); err != nil {
		return err
	}
	return nil
}

// MatchDTO is one match expressed in the request's unit.
type MatchDTO struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// FindResponse reports the outcome of a FindRequest. Index is omitted when
// nothing was found so that a match at 0 and no match never look alike.
type FindResponse struct {
	Pattern string     `json:"pattern"           yaml:"pattern"`
	Start   int        `json:"start"             yaml:"start"`
	Unit    string     `json:"unit"              yaml:"unit"`
	Found   bool       `json:"found"             yaml:"found"`
	Index   *int       `json:"index,omitempty"   yaml:"index,omitempty"`
	Matches []MatchDTO `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// String renders the response for terminal output.
func (r FindResponse) String() string {
	if !r.Found {
		return fmt.Sprintf("%q: not found at or after %s offset %d", r.Pattern, r.Unit, r.Start)
	}
	if len(r.Matches) > 1 {
		return fmt.Sprintf("%q: %d matches, first at %s offset %d", r.Pattern, len(r.Matches), r.Unit, *r.Index)
	}
	return fmt.Sprintf("%q: found at %s offset %d", r.Pattern, r.Unit, *r.Index)
}

// BetweenRequest asks for the text enclosed by Open and Close at or after Start.
type BetweenRequest struct {
	Text     string `json:"-"                  yaml:"-"`
	Open     string `json:"open"               yaml:"open"`
	Close    string `json:"close"              yaml:"close"`
	Start    int    `json:"start"              yaml:"start"`
	Unit     string `json:"unit,omitempty"     yaml:"unit,omitempty"`
	Boundary string `json:"boundary,omitempty" yaml:"boundary,omitempty"`
}

// ApplyDefaults fills in unit and boundary when the request leaves them empty.
func (r *BetweenRequest) ApplyDefaults(unit, boundary string) {
	if r.Unit == "" {
		r.Unit = unit
	}
	if r.Boundary == "" {
		r.Boundary = boundary
	}
}

// Validate checks the request's enumerated fields.
func (r BetweenRequest) Validate() error {
	return FindRequest{Unit: r.Unit, Boundary: r.Boundary}.Validate()
}

// BetweenResponse reports the enclosed text. Start and End are in the
// request's unit and omitted when a delimiter is missing.
type BetweenResponse struct {
	Found bool   `json:"found"           yaml:"found"`
	Unit  string `json:"unit"            yaml:"unit"`
	Start *int   `json:"start,omitempty" yaml:"start,omitempty"`
	End   *int   `json:"end,omitempty"   yaml:"end,omitempty"`
	Text  string `json:"text,omitempty"  yaml:"text,omitempty"`
}

// String renders the response for terminal output.
func (r BetweenResponse) String() string {
	if !r.Found {
		return "delimiters not found"
	}
	return fmt.Sprintf("[%d,%d) %q", *r.Start, *r.End, r.Text)
}
