// Package logging builds the zap logger. The TUI owns the terminal, so logs only ever go to a rotated file
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/bounce/config"
)

const serviceName = "bounce"

// New returns a Nop logger when cfg.File is empty, else a JSON file logger with size rotation
// The returned close func flushes and releases the file, it is never nil
func New(cfg config.LoggerConfig) (*zap.Logger, func() error, error) {
	if cfg.File == "" {
		return zap.NewNop(), func() error { return nil }, nil
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("logger level %q: %w", cfg.Level, err)
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)

	logger := zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(serviceName)

	closeFn := func() error {
		_ = logger.Sync()
		return rotator.Close()
	}
	return logger, closeFn, nil
}
