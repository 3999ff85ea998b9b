package main

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// configureRuntimeLogger writes JSON logs to the state directory. When that
// is unavailable, commands that own the terminal log nowhere and the rest
// fall back to stderr.
func configureRuntimeLogger(level string, ownsTerminal bool) (*zap.Logger, func()) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	path, ok := runtimeLogPath()
	output, ok := logOutput(path, ok, ownsTerminal)
	if !ok {
		return zap.NewNop(), func() {}
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.OutputPaths = []string{output}
	config.ErrorOutputPaths = []string{output}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop(), func() {}
	}
	undo := zap.ReplaceGlobals(logger)
	return logger, func() {
		_ = logger.Sync()
		undo()
	}
}

// logOutput picks the zap output path. A full-screen UI would be corrupted by
// writes to stderr, so it gets none.
func logOutput(path string, ok, ownsTerminal bool) (string, bool) {
	switch {
	case ok:
		return path, true
	case ownsTerminal:
		return "", false
	default:
		return "stderr", true
	}
}

func runtimeLogPath() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	logDir := filepath.Join(home, ".local", "state", "termfolio")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return "", false
	}
	return filepath.Join(logDir, "termfolio.log"), true
}
