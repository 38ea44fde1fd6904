// Package logger sets up the process-wide zap logger used across the
// marketplace service: JSON lines, mirrored to stdout and a size-rotated
// file so request logs survive restarts.
package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *zap.Logger

type Config struct {
	Level      string
	Filename   string
	MaxSize    int // megabytes per log file before rotation
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Init builds the logger from cfg and installs it as the zap global, which
// is what the request-logging middleware picks up via zap.L().
func Init(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	core := zapcore.NewTee(
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
		zapcore.NewCore(encoder, fileSyncer(cfg), level),
	)

	Log = zap.New(core, zap.AddCaller())
	zap.ReplaceGlobals(Log)

	return nil
}

// fileSyncer wraps the rotated log file in a buffered syncer; Sync flushes
// the buffer, so shutdown must call it.
func fileSyncer(cfg *Config) zapcore.WriteSyncer {
	rotated := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	return &zapcore.BufferedWriteSyncer{
		WS:            zapcore.AddSync(rotated),
		Size:          256 * 1024,
		FlushInterval: 5 * time.Second,
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	if Log != nil {
		Log.Sync()
	}
}
