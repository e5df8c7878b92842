// Package obslog is dtsforge's operational logging collaborator: a
// zap-backed, run-correlated logger for the CLI and worker pool, distinct
// from the core pipeline's pure per-file internal/logger.Log.
package obslog

import (
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap.SugaredLogger tagged with a run id shared across
// every file a single CLI invocation processes.
type Logger struct {
	zap   *zap.SugaredLogger
	runID string
}

// New builds a Logger. verbose selects zap's development encoder config
// (human-readable, colorized level names) over the production JSON
// encoder used for piped/non-interactive output.
func New(verbose bool) (*Logger, error) {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	runID := uuid.NewString()
	return &Logger{
		zap:   base.Sugar().With("run_id", runID),
		runID: runID,
	}, nil
}

// RunID returns the UUID tagging every log line this Logger emits.
func (l *Logger) RunID() string { return l.runID }

func (l *Logger) Infof(format string, args ...any)  { l.zap.Infof(format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.zap.Warnf(format, args...) }
func (l *Logger) Debugf(format string, args ...any) { l.zap.Debugf(format, args...) }

// Errorf logs at error level and echoes a colorized one-line summary to
// stderr for interactive CLI use. Callers never downgrade a diagnostic's
// severity here, only add presentation on top.
func (l *Logger) Errorf(format string, args ...any) {
	l.zap.Errorf(format, args...)
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, format+"\n", args...)
}

func (l *Logger) Sync() error { return l.zap.Sync() }
