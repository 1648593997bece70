// pkg/logging/logging_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: Real filesystem (t.TempDir) for the log file
// PURPOSE: Test verbosity mapping, log file placement and component loggers

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv(EnvLogFile, "")
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLoggerWithOptions(Options{Verbosity: tt.verbosity, Console: &bytes.Buffer{}})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "jsonstore", "jsonstore.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLogger_FileDisabled(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	var console bytes.Buffer
	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &console, LogFile: "-", NoColor: true})

	log.Info().Msg("hello console")
	assert.Contains(t, console.String(), "hello console")

	_, err := os.Stat(filepath.Join(tempDir, "jsonstore"))
	assert.True(t, os.IsNotExist(err), "no log directory should be created when file logging is disabled")
}

func TestSetupLogger_ExplicitFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "custom.log")

	SetupLoggerWithOptions(Options{Verbosity: 1, Console: &bytes.Buffer{}, LogFile: logPath})
	log.Info().Msg("to the file")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to the file")
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("explicit override", func(t *testing.T) {
		t.Setenv(EnvLogFile, "/tmp/override.log")
		assert.Equal(t, "/tmp/override.log", getLogFilePath())
	})

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv(EnvLogFile, "")
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "jsonstore", "jsonstore.log"), getLogFilePath())
	})
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("storage")
	logger.Info().Msg("component message")

	assert.Contains(t, buf.String(), `"component":"storage"`)
	assert.Contains(t, buf.String(), "component message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "keys")
	done()

	assert.Contains(t, buf.String(), `"operation":"keys"`)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")
}
