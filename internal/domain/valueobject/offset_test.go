package valueobject

import (
	"testing"

	"textoffset/internal/domain/errors/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOffset(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		textLen    int
		wantErr    bool
		wantReason domain.OffsetReason
	}{
		{name: "zero into empty text", n: 0, textLen: 0},
		{name: "middle", n: 3, textLen: 10},
		{name: "end of text", n: 10, textLen: 10},
		{name: "negative", n: -1, textLen: 10, wantErr: true, wantReason: domain.ReasonNegative},
		{name: "past end", n: 11, textLen: 10, wantErr: true, wantReason: domain.ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			off, err := NewOffset(tt.n, tt.textLen)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidOffset)
				var offErr *domain.OffsetError
				require.ErrorAs(t, err, &offErr)
				assert.Equal(t, tt.wantReason, offErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, off.Int())
		})
	}
}

func TestOffset_Add(t *testing.T) {
	off, err := NewOffset(5, 17)
	require.NoError(t, err)
	assert.Equal(t, 7, off.Add(2))
	assert.Equal(t, 5, off.Add(0))
}

func TestMatch(t *testing.T) {
	m := NewMatch(7, 2)
	assert.True(t, m.Found())
	assert.Equal(t, 7, m.Start())
	assert.Equal(t, 9, m.End())
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "[7,9)", m.String())

	idx, ok := m.Index()
	assert.True(t, ok)
	assert.Equal(t, 7, idx)
}

func TestNoMatch(t *testing.T) {
	assert.False(t, NoMatch.Found())
	assert.Equal(t, "not found", NoMatch.String())

	_, ok := NoMatch.Index()
	assert.False(t, ok)
	assert.Panics(t, func() { NoMatch.Start() })

	// A match at index zero must stay distinguishable from NoMatch.
	assert.NotEqual(t, NoMatch, NewMatch(0, 0))
}

func TestSpan(t *testing.T) {
	s := NewSpan(13, 34, " and hello the second")
	assert.True(t, s.Found())
	assert.Equal(t, 13, s.Start())
	assert.Equal(t, 34, s.End())
	assert.Equal(t, " and hello the second", s.Text())
	assert.False(t, NoSpan.Found())
}
