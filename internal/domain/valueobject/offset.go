package valueobject

import "textoffset/internal/domain/errors/domain"

// Offset is a validated byte position into a text: 0 <= offset <= len(text).
// An offset equal to the text length addresses the empty remainder.
type Offset struct {
	value int
}

// NewOffset validates n against a text of textLen bytes.
// It only checks the range; character boundaries are the finder's concern.
func NewOffset(n, textLen int) (Offset, error) {
	if n < 0 {
		return Offset{}, domain.NewOffsetError(n, textLen, domain.ReasonNegative)
	}
	if n > textLen {
		return Offset{}, domain.NewOffsetError(n, textLen, domain.ReasonOutOfRange)
	}
	return Offset{value: n}, nil
}

// Int returns the offset as an int.
func (o Offset) Int() int {
	return o.value
}

// Add re-anchors a position relative to o into the coordinate space o is
// measured in.
func (o Offset) Add(relative int) int {
	return o.value + relative
}
