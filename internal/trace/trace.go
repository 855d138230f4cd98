/*
 * Jacobin VM - A Java virtual machine
 * Copyright (c) 2023 by  the Jacobin authors. Consult jacobin.org.
 * Licensed under Mozilla Public License 2.0 (MPL 2.0) All rights reserved.
 */

// Package trace is the runtime's structured logging surface. It wraps zap
// behind Trace/Error diagnostics, mirroring the split used throughout the
// classloader, plus Instruction for the per-instruction trace on stdout.
package trace

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.Mutex
	logger *zap.Logger
	inst   *zap.Logger
)

func init() {
	logger = newLogger(zapcore.InfoLevel, os.Stderr)
	inst = newLogger(zapcore.InfoLevel, os.Stdout)
}

func newLogger(level zapcore.Level, w *os.File) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.LevelKey = ""
	encCfg.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core)
}

// Init sets the logger verbosity; verbose=true enables Trace-level output.
// Only the diagnostic logger's level changes; the instruction trace always
// runs at Info.
func Init(verbose bool) {
	mu.Lock()
	defer mu.Unlock()
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	logger = newLogger(level, os.Stderr)
}

// Trace logs a diagnostic line at debug level (hidden unless verbose).
func Trace(msg string) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Debug(msg)
}

// Error logs a fatal or near-fatal condition to stderr-backed output.
func Error(msg string) {
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Error(msg)
}

// Instruction logs one executed-opcode trace line to stdout (§7: "trace
// lines... to the standard output stream for each executed instruction").
func Instruction(msg string) {
	mu.Lock()
	l := inst
	mu.Unlock()
	l.Info(msg)
}
