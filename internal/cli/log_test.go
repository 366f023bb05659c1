package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstucker/particles/pkg/force"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		level log.Level
		emit  func(*log.Logger)
		want  bool
	}{
		{"info at info", log.InfoLevel, func(l *log.Logger) { l.Info("x") }, true},
		{"debug at info", log.InfoLevel, func(l *log.Logger) { l.Debug("x") }, false},
		{"debug at debug", log.DebugLevel, func(l *log.Logger) { l.Debug("x") }, true},
		{"warn at info", log.InfoLevel, func(l *log.Logger) { l.Warn("x") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(newLogger(&buf, tt.level))
			assert.Equal(t, tt.want, buf.Len() > 0)
		})
	}
}

func TestNewLoggerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, log.InfoLevel).Info("hello")
	assert.Regexp(t, regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{2} `), buf.String())
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	require.Zero(t, buf.Len())

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	newProgress(newLogger(&buf, log.InfoLevel)).done("Sampled 255 colors")
	assert.Regexp(t, `Sampled 255 colors \(\d+(\.\d+)?[µnm]?s\)`, buf.String())
}

func TestLoggerContext(t *testing.T) {
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))

	l := newLogger(&bytes.Buffer{}, log.InfoLevel)
	assert.Same(t, l, loggerFromContext(withLogger(context.Background(), l)))
}

func TestPreRunAttachesLogger(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(&bytes.Buffer{}, LogInfo)
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	require.NoError(t, c.preRun(cmd, nil))
	assert.Same(t, c.Logger, loggerFromContext(cmd.Context()))
}

func TestLogParams(t *testing.T) {
	p := force.Params{RepulsionRange: 10, RepulsionStrength: 40, ForceRange: 200, ForceStrength: -0.1}

	var buf bytes.Buffer
	logParams(newLogger(&buf, log.InfoLevel), p)
	assert.Zero(t, buf.Len(), "logParams wrote at info level")

	logParams(newLogger(&buf, log.DebugLevel), p)
	for _, want := range []string{"force profile", "repulsion_range=10", "reach=210"} {
		assert.Contains(t, buf.String(), want)
	}
}
