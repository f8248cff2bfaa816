package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	lggr, err := New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.True(t, lggr.Desugar().Core().Enabled(zapcore.DebugLevel))

	lggr, err = New(Config{Level: "WARN", Format: "console"})
	require.NoError(t, err)
	assert.False(t, lggr.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lggr.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestTestObserved(t *testing.T) {
	lggr, logs := TestObserved(t, zapcore.InfoLevel)
	lggr.Debugw("hidden")
	lggr.Infow("visible", "umkm_id", 7)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "visible", entry.Message)
	assert.Equal(t, int64(7), entry.ContextMap()["umkm_id"])
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Errorw("ignored", "err", "x") })
}
