// Package cliutil holds the logging and bundle-I/O support code shared by
// cmd/ringsig-cli's subcommands. None of it is imported by the ringsig
// package itself, which stays silent and purely functional.
package cliutil

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the narrow slice of *zap.SugaredLogger the CLI actually calls.
type Logger interface {
	Infow(msg string, keyvals ...interface{})
	Debugw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
}

type logger struct {
	*zap.SugaredLogger
}

// New builds a Logger writing to stderr, console-encoded unless jsonFormat
// is set, at debug level when verbose is set and info level otherwise.
func New(verbose, jsonFormat bool) Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	if jsonFormat {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
	return &logger{zap.New(core).Sugar()}
}
