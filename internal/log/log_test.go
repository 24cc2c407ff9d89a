package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	for _, debug := range []bool{true, false} {
		require.NoError(t, Init(debug))
		assert.NotNil(t, GetZapLogger())
		assert.NotNil(t, GetSugaredLogger())
		assert.Equal(t, debug, GetZapLogger().Core().Enabled(-1), "debug level enabled")
	}
}

func TestFallback(t *testing.T) {
	log, baseLogger = nil, nil
	assert.NotNil(t, GetSugaredLogger())
	assert.NotNil(t, baseLogger)
	Sync()
}

func TestWrappersReportCaller(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := zap.New(core, zap.AddCaller())
	baseLogger, log = l, wrapperSugar(l)
	t.Cleanup(func() { baseLogger, log = nil, nil })

	Debugf("debug %d", 1)
	Infow("info", "k", "v")
	Errorf("error %s", "x")

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, "log_test.go", filepath.Base(e.Caller.File), e.Message)
	}
	assert.Equal(t, "v", entries[1].ContextMap()["k"])
}

func TestGetSugaredLogger_AfterBase(t *testing.T) {
	baseLogger, log = zap.NewNop(), nil
	t.Cleanup(func() { baseLogger, log = nil, nil })
	assert.NotNil(t, GetSugaredLogger())
}
