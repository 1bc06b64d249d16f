package service

import (
	"testing"

	"textoffset/internal/domain/errors/domain"
	"textoffset/internal/domain/valueobject"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToByteOffset(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		n       int
		unit    valueobject.OffsetUnit
		want    int
		wantErr domain.OffsetReason
	}{
		{name: "byte passthrough", text: "héllo", n: 3, unit: valueobject.UnitByte, want: 3},
		{name: "byte past end", text: "héllo", n: 7, unit: valueobject.UnitByte, wantErr: domain.ReasonOutOfRange},
		{name: "rune after accent", text: "héllo", n: 2, unit: valueobject.UnitRune, want: 3},
		{name: "rune at end", text: "héllo", n: 5, unit: valueobject.UnitRune, want: 6},
		{name: "rune in empty text", text: "", n: 0, unit: valueobject.UnitRune, want: 0},
		{name: "rune past end", text: "héllo", n: 6, unit: valueobject.UnitRune, wantErr: domain.ReasonOutOfRange},
		{name: "rune negative", text: "héllo", n: -1, unit: valueobject.UnitRune, wantErr: domain.ReasonNegative},
		{name: "grapheme after cluster", text: "e\u0301x", n: 1, unit: valueobject.UnitGrapheme, want: 3},
		{name: "grapheme at end", text: "e\u0301x", n: 2, unit: valueobject.UnitGrapheme, want: 4},
		{name: "grapheme past end", text: "e\u0301x", n: 3, unit: valueobject.UnitGrapheme, wantErr: domain.ReasonOutOfRange},
		{name: "grapheme negative", text: "x", n: -3, unit: valueobject.UnitGrapheme, wantErr: domain.ReasonNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToByteOffset(tt.text, tt.n, tt.unit)
			if tt.wantErr != "" {
				var offErr *domain.OffsetError
				require.ErrorAs(t, err, &offErr)
				assert.Equal(t, tt.wantErr, offErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromByteOffset(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		b       int
		unit    valueobject.OffsetUnit
		want    int
		wantErr domain.OffsetReason
	}{
		{name: "byte passthrough", text: "héllo", b: 2, unit: valueobject.UnitByte, want: 2},
		{name: "rune count", text: "héllo", b: 3, unit: valueobject.UnitRune, want: 2},
		{name: "rune split", text: "héllo", b: 2, unit: valueobject.UnitRune, wantErr: domain.ReasonSplitCharacter},
		{name: "rune past end", text: "héllo", b: 7, unit: valueobject.UnitRune, wantErr: domain.ReasonOutOfRange},
		{name: "grapheme count", text: "e\u0301x", b: 3, unit: valueobject.UnitGrapheme, want: 1},
		{name: "grapheme split", text: "e\u0301x", b: 1, unit: valueobject.UnitGrapheme, wantErr: domain.ReasonSplitCluster},
		{name: "grapheme split inside rune", text: "e\u0301x", b: 2, unit: valueobject.UnitGrapheme, wantErr: domain.ReasonSplitCharacter},
		{name: "grapheme negative", text: "e\u0301x", b: -1, unit: valueobject.UnitGrapheme, wantErr: domain.ReasonNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromByteOffset(tt.text, tt.b, tt.unit)
			if tt.wantErr != "" {
				var offErr *domain.OffsetError
				require.ErrorAs(t, err, &offErr)
				assert.Equal(t, tt.wantErr, offErr.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertOffset(t *testing.T) {
	got, err := ConvertOffset("日本語", 2, valueobject.UnitRune, valueobject.UnitByte)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = ConvertOffset("e\u0301x", 2, valueobject.UnitRune, valueobject.UnitRune)
	require.NoError(t, err)
	assert.Equal(t, 2, got)

	_, err = ConvertOffset("e\u0301x", 1, valueobject.UnitRune, valueobject.UnitGrapheme)
	require.ErrorIs(t, err, domain.ErrInvalidOffset)
	var offErr *domain.OffsetError
	require.ErrorAs(t, err, &offErr)
	assert.Equal(t, 1, offErr.Offset, "reported in runes, the unit the caller used")
	assert.Equal(t, 3, offErr.Length)
	assert.Equal(t, domain.ReasonSplitCluster, offErr.Reason)
}

func TestUnitLength(t *testing.T) {
	text := "e\u0301日x"
	assert.Equal(t, 7, UnitLength(text, valueobject.UnitByte))
	assert.Equal(t, 4, UnitLength(text, valueobject.UnitRune))
	assert.Equal(t, 3, UnitLength(text, valueobject.UnitGrapheme))
}

func TestInUnit(t *testing.T) {
	text := "日本語"
	err := InUnit(domain.NewOffsetError(4, len(text), domain.ReasonSplitCharacter), text, 1, valueobject.UnitRune)

	var offErr *domain.OffsetError
	require.ErrorAs(t, err, &offErr)
	assert.Equal(t, 1, offErr.Offset)
	assert.Equal(t, 3, offErr.Length)
	assert.Equal(t, domain.ReasonSplitCharacter, offErr.Reason)

	assert.Equal(t, domain.ErrEmptyPattern, InUnit(domain.ErrEmptyPattern, text, 1, valueobject.UnitRune))
}
