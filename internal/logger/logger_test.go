package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/randomizedcoder/branch-queue-benchmarks/internal/logger"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
		want zapcore.Level
	}{
		{"default", logger.Config{}, zapcore.InfoLevel},
		{"debug json", logger.Config{Level: "debug", Format: "json"}, zapcore.DebugLevel},
		{"warn console", logger.Config{Level: "warn", Format: "console"}, zapcore.WarnLevel},
		{"development", logger.Config{Level: "error", Development: true}, zapcore.ErrorLevel},
		{"bad level", logger.Config{Level: "chatty"}, zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.True(t, log.Core().Enabled(tt.want))
			if tt.want > zapcore.DebugLevel {
				assert.False(t, log.Core().Enabled(tt.want-1))
			}
		})
	}
}
