package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetError_Message(t *testing.T) {
	tests := []struct {
		name        string
		err         *OffsetError
		expectedMsg string
	}{
		{
			name:        "negative_offset",
			err:         NewOffsetError(-1, 10, ReasonNegative),
			expectedMsg: "invalid offset -1: must not be negative",
		},
		{
			name:        "offset_past_end",
			err:         NewOffsetError(11, 10, ReasonOutOfRange),
			expectedMsg: "invalid offset 11: exceeds text length 10",
		},
		{
			name:        "offset_inside_character",
			err:         NewOffsetError(2, 4, ReasonSplitCharacter),
			expectedMsg: "invalid offset 2: splits a character",
		},
		{
			name:        "offset_inside_cluster",
			err:         NewOffsetError(1, 3, ReasonSplitCluster),
			expectedMsg: "invalid offset 1: splits a grapheme cluster",
		},
		{
			name:        "unknown_reason",
			err:         NewOffsetError(3, 4, ""),
			expectedMsg: "invalid offset 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
		})
	}
}

func TestOffsetError_UnwrapsToSentinel(t *testing.T) {
	wrapped := fmt.Errorf("find: %w", NewOffsetError(5, 2, ReasonOutOfRange))

	assert.ErrorIs(t, wrapped, ErrInvalidOffset)
	assert.True(t, IsInvalidOffset(wrapped))
	assert.False(t, IsInvalidOffset(ErrEmptyPattern))

	var offErr *OffsetError
	require.True(t, errors.As(wrapped, &offErr))
	assert.Equal(t, 5, offErr.Offset)
	assert.Equal(t, 2, offErr.Length)
	assert.Equal(t, ReasonOutOfRange, offErr.Reason)
}

func TestOffsetError_WithPosition(t *testing.T) {
	original := NewOffsetError(4, 9, ReasonSplitCharacter)
	moved := original.WithPosition(1, 3)

	assert.Equal(t, "invalid offset 1: splits a character", moved.Error())
	assert.Equal(t, 4, original.Offset)
	assert.ErrorIs(t, moved, ErrInvalidOffset)
}
