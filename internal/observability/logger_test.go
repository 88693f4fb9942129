package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ducanhdangcode/visualize-pylint/internal/config"
)

// syncBuffer adapts bytes.Buffer to zapcore.WriteSyncer.
type syncBuffer struct {
	bytes.Buffer
}

func (s *syncBuffer) Sync() error { return nil }

func TestInitialize_WritesNamedEntries(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{
		Level:       "debug",
		Format:      "json",
		ServiceName: "visualize-pylint-test",
	}, zapcore.AddSync(buf))

	logger := GetLogger()
	require.NotNil(t, logger)
	logger.Info("hello from test")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "hello from test")
	assert.Contains(t, out, "visualize-pylint-test")
}

func TestInitialize_InvalidLevelFallsBackToInfo(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	buf := &syncBuffer{}
	Initialize(config.LoggerConfig{
		Level:  "not-a-level",
		Format: "json",
	}, zapcore.AddSync(buf))

	logger := GetLogger()
	logger.Debug("suppressed")
	logger.Info("visible")
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "visible")
}

func TestGetLogger_BeforeInitialize(t *testing.T) {
	ResetForTest()
	defer ResetForTest()

	assert.NotNil(t, GetLogger(), "fallback logger must always be available")
}
