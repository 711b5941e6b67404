package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"", zapcore.InfoLevel},
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			for _, format := range []string{"console", "json"} {
				logger, err := New(tt.level, format)
				require.NoError(t, err)
				assert.True(t, logger.Core().Enabled(tt.want))
				if tt.want > zapcore.DebugLevel {
					assert.False(t, logger.Core().Enabled(tt.want-1))
				}
			}
		})
	}
}

func TestNewUnknownLevel(t *testing.T) {
	_, err := New("verbose", "console")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}
