// SPDX-FileCopyrightText: 2026-present The recsum Authors
//
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"os"
	"strings"

	"github.com/recsum/recsum/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is a logging level
type Level int8

const (
	DebugLevel Level = iota - 1
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	return l.zapLevel().String()
}

func (l Level) zapLevel() zapcore.Level {
	return zapcore.Level(l)
}

// ParseLevel parses a level name
func ParseLevel(name string) (Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return WarnLevel, errors.NewInvalid("unknown log level '%s'", name)
	}
	if level > zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	return Level(level), nil
}

var (
	level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	root  = newRootLogger()
)

func newRootLogger() *zap.Logger {
	config := zap.NewDevelopmentEncoderConfig()
	config.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(config),
		zapcore.Lock(os.Stderr),
		level)
	return zap.New(core)
}

// SetLevel sets the level of all loggers
func SetLevel(l Level) {
	level.SetLevel(l.zapLevel())
}

// GetLevel returns the current level
func GetLevel() Level {
	return Level(level.Level())
}

// Logger is a named logger
type Logger interface {
	Name() string
	Debug(args ...any)
	Debugf(template string, args ...any)
	Info(args ...any)
	Infof(template string, args ...any)
	Warn(args ...any)
	Warnf(template string, args ...any)
	Error(args ...any)
	Errorf(template string, args ...any)
}

// GetLogger returns a logger named by the given path elements
func GetLogger(names ...string) Logger {
	name := strings.Join(names, "/")
	logger := root
	if name != "" {
		logger = logger.Named(name)
	}
	return &zapLogger{
		name:          name,
		SugaredLogger: logger.Sugar(),
	}
}

type zapLogger struct {
	*zap.SugaredLogger
	name string
}

func (l *zapLogger) Name() string {
	return l.name
}

var _ Logger = (*zapLogger)(nil)
