package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	log, err := New(Config{Level: "debug", Encoding: "console"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_JSONEncoding(t *testing.T) {
	log, err := New(Config{Level: "info", Encoding: "json"})
	require.NoError(t, err)
	assert.NotNil(t, log)
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "shouting", Encoding: "console"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}
