/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package zaplog is the default logging provider. Records are encoded by zap
// and gated by per-module levels.
package zaplog

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/metadata"
)

// Supported encodings
const (
	ConsoleFormat = "console"
	JSONFormat    = "json"
	LogfmtFormat  = "logfmt"
)

var rwmutex = &sync.RWMutex{}
var moduleLevels = &metadata.ModuleLevels{}

//SetLevel - setting log level for given module
func SetLevel(module string, level api.Level) {
	rwmutex.Lock()
	defer rwmutex.Unlock()
	moduleLevels.SetLevel(module, level)
}

//GetLevel - getting log level for given module
func GetLevel(module string) api.Level {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.GetLevel(module)
}

//IsEnabledFor - Check if given log level is enabled for given module
func IsEnabledFor(module string, level api.Level) bool {
	rwmutex.RLock()
	defer rwmutex.RUnlock()
	return moduleLevels.IsEnabledFor(module, level)
}

type options struct {
	writer io.Writer
	format string
}

// Option configures the provider.
type Option func(opts *options)

// WithWriter sets the sink for encoded log records. Defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(opts *options) {
		opts.writer = w
	}
}

// WithFormat selects the record encoding: console, json or logfmt.
func WithFormat(format string) Option {
	return func(opts *options) {
		opts.format = format
	}
}

// Provider creates module loggers sharing one zap core.
type Provider struct {
	base *zap.Logger
}

// LoggerProvider returns the default provider writing console records to stdout.
func LoggerProvider() api.LoggerProvider {
	p, err := New()
	if err != nil {
		// the default options are always valid
		panic(err)
	}
	return p
}

// New creates a provider from the given options.
func New(opts ...Option) (*Provider, error) {
	o := options{writer: os.Stdout, format: ConsoleFormat}
	for _, opt := range opts {
		opt(&o)
	}

	encoder, err := newEncoder(o.format)
	if err != nil {
		return nil, err
	}

	var sink zapcore.WriteSyncer
	switch w := o.writer.(type) {
	case *os.File:
		sink = zapcore.Lock(w)
	case zapcore.WriteSyncer:
		sink = w
	default:
		sink = zapcore.AddSync(w)
	}

	// module levels do the filtering, so the core accepts everything
	core := zapcore.NewCore(encoder, sink, zap.DebugLevel)
	return &Provider{base: zap.New(core)}, nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.NameKey = "module"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "", ConsoleFormat:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case JSONFormat:
		return zapcore.NewJSONEncoder(cfg), nil
	case LogfmtFormat:
		return zaplogfmt.NewEncoder(cfg), nil
	default:
		return nil, errors.Errorf("unsupported log format [%s]", format)
	}
}

//GetLogger returns a logger for the given module
func (p *Provider) GetLogger(module string) api.Logger {
	return &Log{module: module, sugar: p.base.Named(module).Sugar()}
}

//Log is the zap backed module logger
type Log struct {
	module string
	sugar  *zap.SugaredLogger
}

// Debug logs a message at DEBUG level
func (l *Log) Debug(args ...interface{}) {
	if IsEnabledFor(l.module, api.DEBUG) {
		l.sugar.Debug(args...)
	}
}

// Debugf logs a formatted message at DEBUG level
func (l *Log) Debugf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.DEBUG) {
		l.sugar.Debugf(format, args...)
	}
}

// Info logs a message at INFO level
func (l *Log) Info(args ...interface{}) {
	if IsEnabledFor(l.module, api.INFO) {
		l.sugar.Info(args...)
	}
}

// Infof logs a formatted message at INFO level
func (l *Log) Infof(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.INFO) {
		l.sugar.Infof(format, args...)
	}
}

// Warn logs a message at WARNING level
func (l *Log) Warn(args ...interface{}) {
	if IsEnabledFor(l.module, api.WARNING) {
		l.sugar.Warn(args...)
	}
}

// Warnf logs a formatted message at WARNING level
func (l *Log) Warnf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.WARNING) {
		l.sugar.Warnf(format, args...)
	}
}

// Error logs a message at ERROR level
func (l *Log) Error(args ...interface{}) {
	if IsEnabledFor(l.module, api.ERROR) {
		l.sugar.Error(args...)
	}
}

// Errorf logs a formatted message at ERROR level
func (l *Log) Errorf(format string, args ...interface{}) {
	if IsEnabledFor(l.module, api.ERROR) {
		l.sugar.Errorf(format, args...)
	}
}
