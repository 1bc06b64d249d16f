package version

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionInfo(t *testing.T) {
	tests := []struct {
		name          string
		setup         [3]string
		wantVersion   string
		wantCommit    string
		wantBuildTime string
	}{
		{
			name:          "empty values use defaults",
			wantVersion:   DefaultVersion,
			wantCommit:    DefaultCommit,
			wantBuildTime: DefaultBuildTime,
		},
		{
			name:          "all values set",
			setup:         [3]string{"v1.0.0", "abc123", "2025-01-01T00:00:00Z"},
			wantVersion:   "v1.0.0",
			wantCommit:    "abc123",
			wantBuildTime: "2025-01-01T00:00:00Z",
		},
		{
			name:          "partial values",
			setup:         [3]string{"v2.1.0", "", ""},
			wantVersion:   "v2.1.0",
			wantCommit:    DefaultCommit,
			wantBuildTime: DefaultBuildTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(ResetBuildVars)
			SetBuildVars(tt.setup[0], tt.setup[1], tt.setup[2])

			info := NewVersionInfo()
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.Equal(t, tt.wantCommit, info.Commit)
			assert.Equal(t, tt.wantBuildTime, info.BuildTime)
		})
	}
}

func TestWrite(t *testing.T) {
	info := &VersionInfo{Version: "v1.2.3", Commit: "def456", BuildTime: "2025-06-15T10:30:00Z"}

	var short bytes.Buffer
	require.NoError(t, info.Write(&short, true))
	assert.Equal(t, "v1.2.3\n", short.String())

	var full bytes.Buffer
	require.NoError(t, info.Write(&full, false))
	assert.Equal(t, "TextOffset CLI\nVersion: v1.2.3\nCommit: def456\nBuilt: 2025-06-15T10:30:00Z\n", full.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestWriteErrors(t *testing.T) {
	info := GetVersion()
	assert.EqualError(t, info.Write(failingWriter{}, true), "write failed")
	assert.EqualError(t, info.Write(failingWriter{}, false), "write failed")
}

func TestIsDevelopment(t *testing.T) {
	t.Cleanup(ResetBuildVars)

	ResetBuildVars()
	assert.True(t, GetVersion().IsDevelopment())

	SetBuildVars("v1.0.0", "", "")
	assert.False(t, GetVersion().IsDevelopment())
}

func TestFormatFull_MarksDevelopmentBuild(t *testing.T) {
	t.Cleanup(ResetBuildVars)

	ResetBuildVars()
	assert.Contains(t, GetVersion().FormatFull(), "Version: dev (development build)\n")

	SetBuildVars("v1.0.0", "", "")
	full := GetVersion().FormatFull()
	assert.Contains(t, full, "Version: v1.0.0\n")
	assert.NotContains(t, full, "development build")
}
