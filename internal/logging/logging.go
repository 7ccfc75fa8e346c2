package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"quotegateway/internal/config"
)

// New builds a logger from cfg. When cfg.File is set, output is written to
// stderr and to a size-rotated file.
func New(cfg config.Log) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
	}

	lc := zap.NewProductionConfig()
	if cfg.Development {
		lc = zap.NewDevelopmentConfig()
	}
	lc.Level = zap.NewAtomicLevelAt(level)

	if cfg.File == "" {
		return lc.Build()
	}

	var encoder zapcore.Encoder
	if cfg.Development {
		encoder = zapcore.NewConsoleEncoder(lc.EncoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(lc.EncoderConfig)
	}
	file := zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   true,
	})
	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), lc.Level),
		zapcore.NewCore(encoder, file, lc.Level),
	)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Setup builds the logger and installs it as the global zap logger. The
// returned func restores the previous global and flushes.
func Setup(cfg config.Log) (func(), error) {
	logger, err := New(cfg)
	if err != nil {
		return nil, err
	}
	undo := zap.ReplaceGlobals(logger)
	return func() {
		_ = logger.Sync()
		undo()
	}, nil
}
