package cmd

import (
	"encoding/json"
	"testing"

	"textoffset/internal/application/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetweenCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "between",
		"--text", `hello first " and hello the second"`, "--open", `"`, "--close", `"`)
	require.NoError(t, err)
	assert.Equal(t, "[13,34) \" and hello the second\"\n", stdout)
}

func TestBetweenCommand_RuneUnit(t *testing.T) {
	stdout, _, err := executeCommand(t, "-o", "json", "between",
		"--text", "«日本» and «語»", "--open", "«", "--close", "»", "--from", "2", "--unit", "rune")
	require.NoError(t, err)

	var resp dto.BetweenResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	require.True(t, resp.Found)
	assert.Equal(t, "語", resp.Text)
	assert.Equal(t, 10, *resp.Start)
	assert.Equal(t, 11, *resp.End)
}

func TestBetweenCommand_NotFound(t *testing.T) {
	stdout, _, err := executeCommand(t, "between", "--text", "no quotes here", "--open", `"`, "--close", `"`)
	require.ErrorIs(t, err, errNoMatch)
	assert.Equal(t, "delimiters not found\n", stdout)
}

func TestBetweenCommand_EmptyDelimiter(t *testing.T) {
	_, _, err := executeCommand(t, "between", "--text", "abc", "--open", "", "--close", "c")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errNoMatch)
}
