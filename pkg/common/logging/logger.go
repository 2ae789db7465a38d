/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package logging enables setting custom logger implementation.
//
//  Basic Flow:
//  1) Initialize logger
//  2) Create new logger for specific module
//  3) Call log info
package logging

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/metadata"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/zaplog"
)

//Logger basic implementation of api.Logger interface
type Logger struct {
	instance api.Logger // access only via Logger.logger()
	module   string
	once     sync.Once
}

// logger factory singleton - access only via loggerProvider()
var loggerProviderInstance api.LoggerProvider
var loggerProviderOnce sync.Once

// Level defines all available log levels for log messages.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

const (
	//loggerNotInitializedMsg is used when a logger is not initialized before logging
	loggerNotInitializedMsg = "Default logger initialized (please call logging.Initialize if you wish to use a custom logger)"
	loggerModule            = "fabsdk/common"
)

// NewLogger creates and returns a Logger object based on the module name.
func NewLogger(module string) *Logger {
	// note: the underlying logger instance is lazy initialized on first use
	return &Logger{module: module}
}

func loggerProvider() api.LoggerProvider {
	loggerProviderOnce.Do(func() {
		// A custom logger must be initialized prior to the first log output
		// Otherwise the built-in logger is used
		loggerProviderInstance = zaplog.LoggerProvider()
		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debug(loggerNotInitializedMsg)
	})
	return loggerProviderInstance
}

//Initialize sets new logger which takes over logging operations.
//It is required to call this function before making any loggings.
func Initialize(l api.LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = l
		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debug("Logger provider initialized")
	})
}

//SetLevel - setting log level for given module
func SetLevel(module string, level Level) {
	zaplog.SetLevel(module, api.Level(level))
}

//GetLevel - getting log level for given module
func GetLevel(module string) Level {
	return Level(zaplog.GetLevel(module))
}

//IsEnabledFor - Check if given log level is enabled for given module
func IsEnabledFor(module string, level Level) bool {
	return zaplog.IsEnabledFor(module, api.Level(level))
}

// LogLevel returns the log level from a string representation.
func LogLevel(level string) (Level, error) {
	l, err := metadata.ParseLevel(level)
	return Level(l), err
}

//Debug calls Debug function of underlying logger
func (l *Logger) Debug(args ...interface{}) {
	l.logger().Debug(args...)
}

//Debugf calls Debugf function of underlying logger
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logger().Debugf(format, args...)
}

//Info calls Info function of underlying logger
func (l *Logger) Info(args ...interface{}) {
	l.logger().Info(args...)
}

//Infof calls Infof function of underlying logger
func (l *Logger) Infof(format string, args ...interface{}) {
	l.logger().Infof(format, args...)
}

//Warn calls Warn function of underlying logger
func (l *Logger) Warn(args ...interface{}) {
	l.logger().Warn(args...)
}

//Warnf calls Warnf function of underlying logger
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logger().Warnf(format, args...)
}

//Error calls Error function of underlying logger
func (l *Logger) Error(args ...interface{}) {
	l.logger().Error(args...)
}

//Errorf calls Errorf function of underlying logger
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logger().Errorf(format, args...)
}

func (l *Logger) logger() api.Logger {
	l.once.Do(func() {
		l.instance = loggerProvider().GetLogger(l.module)
	})
	return l.instance
}

// WithScope returns a logger that prefixes every record with the given scope,
// e.g. the name of the channel that owns the component doing the logging.
func WithScope(logger api.Logger, scope string) api.Logger {
	if s, ok := logger.(*scoped); ok {
		return &scoped{target: s.target, prefix: s.prefix + fmt.Sprintf("[%s] ", scope)}
	}
	return &scoped{target: logger, prefix: fmt.Sprintf("[%s] ", scope)}
}

type scoped struct {
	target api.Logger
	prefix string
}

func (s *scoped) Debug(args ...interface{}) {
	s.target.Debug(s.prefix + fmt.Sprint(args...))
}

func (s *scoped) Debugf(format string, args ...interface{}) {
	s.target.Debugf(s.format(format), args...)
}

func (s *scoped) Info(args ...interface{}) {
	s.target.Info(s.prefix + fmt.Sprint(args...))
}

func (s *scoped) Infof(format string, args ...interface{}) {
	s.target.Infof(s.format(format), args...)
}

func (s *scoped) Warn(args ...interface{}) {
	s.target.Warn(s.prefix + fmt.Sprint(args...))
}

func (s *scoped) Warnf(format string, args ...interface{}) {
	s.target.Warnf(s.format(format), args...)
}

func (s *scoped) Error(args ...interface{}) {
	s.target.Error(s.prefix + fmt.Sprint(args...))
}

func (s *scoped) Errorf(format string, args ...interface{}) {
	s.target.Errorf(s.format(format), args...)
}

// format prepends the prefix, escaping verbs the scope may contain
func (s *scoped) format(format string) string {
	return strings.ReplaceAll(s.prefix, "%", "%%") + format
}
