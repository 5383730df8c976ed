package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat_Fields(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)
	line := format(ts, LevelInfo, CatInput, "tag committed", "index", 2, "text", "red")
	require.Equal(t, "2025-12-06T10:45:00 [INFO] [input] tag committed index=2 text=red\n", line)
}

func TestFormat_OrphanKey(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)
	line := format(ts, LevelWarn, CatConfirm, "stale", "id")
	require.Equal(t, "2025-12-06T10:45:00 [WARN] [confirm] stale id=<missing>\n", line)
}

func TestSetOutput_MinLevelAndToggle(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	SetMinLevel(LevelWarn)
	Debug(CatUI, "hidden")
	Warn(CatUI, "shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "[WARN] [ui] shown")

	buf.Reset()
	SetEnabled(false)
	Error(CatUI, "muted")
	require.Empty(t, buf.String())
}

func TestErrorErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	ErrorErr(CatConfig, "write failed", errors.New("disk full"), "path", "/tmp/x")
	ErrorErr(CatConfig, "no error", nil)

	require.Contains(t, buf.String(), "write failed path=/tmp/x error=disk full")
	require.Contains(t, buf.String(), "no error error=<nil>")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(func() { SetOutput(nil) })

	Info(CatConfig, "loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded")
}

func TestNoLogger_IsSilent(t *testing.T) {
	SetOutput(nil)
	require.NotPanics(t, func() { Info(CatUI, "nobody listening") })
}
