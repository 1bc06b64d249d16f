package logging

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplicationLogger_CreateStructuredLogger tests creation of structured logger.
func TestApplicationLogger_CreateStructuredLogger(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr string
	}{
		{
			name:   "create logger with JSON format",
			config: Config{Level: "INFO", Format: "json", Output: "stdout"},
		},
		{
			name:   "create logger with text format",
			config: Config{Level: "debug", Format: "text", Output: "stderr"},
		},
		{
			name:    "create logger with invalid level",
			config:  Config{Level: "INVALID", Format: "json", Output: "stdout"},
			wantErr: "invalid log level: INVALID",
		},
		{
			name:    "create logger with invalid format",
			config:  Config{Level: "INFO", Format: "xml", Output: "stdout"},
			wantErr: "invalid log format: xml",
		},
		{
			name:    "create logger with invalid output",
			config:  Config{Level: "INFO", Format: "json", Output: "syslog"},
			wantErr: "invalid log output: syslog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewApplicationLogger(tt.config)

			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				assert.Nil(t, logger)
				return
			}

			require.NoError(t, err)
			assert.Implements(t, (*ApplicationLogger)(nil), logger)
		})
	}
}

// TestApplicationLogger_LogLevels tests level filtering.
func TestApplicationLogger_LogLevels(t *testing.T) {
	logger, err := NewApplicationLogger(Config{Level: "WARN", Format: "json", Output: "buffer"})
	require.NoError(t, err)

	ctx := context.Background()
	logger.Debug(ctx, "debug message", nil)
	logger.Info(ctx, "info message", nil)
	logger.Warn(ctx, "warn message", Fields{"pattern": "me"})
	logger.ErrorWithError(ctx, errors.New("boom"), "error message", nil)

	entries := BufferedEntries(logger)
	require.Len(t, entries, 2)

	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "warn message", entries[0].Message)
	assert.Equal(t, "me", entries[0].Metadata["pattern"])

	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "boom", entries[1].Error)
}

// TestApplicationLogger_CorrelationID tests correlation ID propagation.
func TestApplicationLogger_CorrelationID(t *testing.T) {
	logger, err := NewApplicationLogger(Config{Level: "INFO", Format: "json", Output: "buffer"})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "corr-123")
	logger.Info(ctx, "with id", nil)
	logger.Info(context.Background(), "without id", nil)

	entries := BufferedEntries(logger)
	require.Len(t, entries, 2)
	assert.Equal(t, "corr-123", entries[0].CorrelationID)

	_, err = uuid.Parse(entries[1].CorrelationID)
	assert.NoError(t, err, "generated correlation ID should be a UUID")

	fresh := NewCorrelationContext(context.Background())
	_, err = uuid.Parse(CorrelationIDFromContext(fresh))
	assert.NoError(t, err)
}

// TestApplicationLogger_WithComponent tests component scoping.
func TestApplicationLogger_WithComponent(t *testing.T) {
	logger, err := NewApplicationLogger(Config{Level: "DEBUG", Format: "json", Output: "buffer"})
	require.NoError(t, err)

	logger.Info(context.Background(), "root", nil)
	logger.WithComponent("finder").LogPerformance(context.Background(), "find_from", 3*time.Millisecond, Fields{"found": true})

	entries := BufferedEntries(logger)
	require.Len(t, entries, 2)
	assert.Equal(t, "default", entries[0].Component)
	assert.Equal(t, "finder", entries[1].Component)
	assert.Equal(t, "find_from", entries[1].Operation)
	assert.Equal(t, "3ms", entries[1].Duration)
	assert.Equal(t, true, entries[1].Metadata["found"])
}

// TestApplicationLogger_TextFormat tests the plain text format.
func TestApplicationLogger_TextFormat(t *testing.T) {
	logger, err := NewApplicationLogger(Config{Level: "INFO", Format: "text", Output: "buffer"})
	require.NoError(t, err)

	logger.WithComponent("cli").ErrorWithError(context.Background(), errors.New("bad offset"), "find failed", nil)

	out := strings.TrimSpace(BufferedOutput(logger))
	assert.Contains(t, out, "ERROR cli: find failed")
	assert.True(t, strings.HasSuffix(out, "error=bad offset"))
	assert.Empty(t, BufferedEntries(logger), "text lines are not JSON")
}
