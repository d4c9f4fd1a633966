// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the go-pass-vault client.
//
// The client owns the user's terminal, so log entries go to a file rather
// than stdout. Operation-scoped loggers travel in the context and are picked
// up with FromContext; long-lived components derive a child logger tagged
// with their name via WithComponent.
//
// Nothing logged through this package may contain key material, master
// passwords or decrypted secrets.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// defaultLogFileName is created next to the executable when no log path is
// configured.
const defaultLogFileName = "go-pass-vault.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger writing JSON entries to out. Every entry carries
// the role, a timestamp and the calling function name under "func".
func New(out io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(out).With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// NewClientLogger constructs a *Logger that appends to logPath. An empty
// logPath selects go-pass-vault.log next to the executable. If the file cannot
// be opened entries go to os.Stderr instead.
func NewClientLogger(role, logPath string) *Logger {
	if logPath == "" {
		logPath = defaultLogPath()
	}

	var out io.Writer = os.Stderr
	if logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
		out = logFile
	}

	return New(out, role)
}

func defaultLogPath() string {
	execPath, err := os.Executable()
	if err != nil {
		return defaultLogFileName
	}
	return filepath.Join(filepath.Dir(execPath), defaultLogFileName)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithComponent returns a child logger that inherits every field of l and
// adds component=name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{l.With().Str("component", name).Logger()}
}

// FromContext returns the logger attached to ctx. If none is attached zerolog
// falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}
