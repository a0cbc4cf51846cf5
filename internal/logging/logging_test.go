package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	for _, s := range []string{"debug", "info", "warn", "error"} {
		lvl, err := zapcore.ParseLevel(s)
		require.NoError(t, err)

		logger, err := New(s)
		require.NoError(t, err, s)
		assert.True(t, logger.Core().Enabled(lvl))
		assert.False(t, logger.Core().Enabled(lvl-1), "%s must drop lower levels", s)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud")
	assert.ErrorContains(t, err, "invalid log level")
}
