package logging

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger_VerbosityLevels(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.verbosity)
		assert.Equal(t, tt.want, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestGetLogger_TagsComponent(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf strings.Builder
	logger := GetLogger("reconciler").Output(&buf).Level(zerolog.InfoLevel)

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"reconciler"`)
}

func TestLogFilePath(t *testing.T) {
	path := LogFilePath()

	assert.True(t, strings.HasSuffix(path, LogFileName), path)
	assert.Contains(t, path, "homelink")
}
