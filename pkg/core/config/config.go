/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package config loads client configuration backends from files, readers or
// raw bytes. Values may be overridden by environment variables carrying the
// FABRIC_SDK prefix (e.g. FABRIC_SDK_CLIENT_LOGGING_LEVEL).
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/hyperledger/fabric-common-go/pkg/common/logging"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
	"github.com/hyperledger/fabric-common-go/pkg/core/logging/zaplog"
	"github.com/hyperledger/fabric-common-go/pkg/util/pathvar"
)

var logModules = [...]string{"fabsdk", "fabsdk/common", "fabsdk/core", "fabsdk/fab", "fabsdk/context"}

type options struct {
	envPrefix    string
	templatePath string
}

const (
	cmdRoot = "FABRIC_SDK"

	// LoggingLevelKey is the log level applied to all SDK modules
	LoggingLevelKey = "client.logging.level"
	// LoggingFormatKey selects the record encoding of the default logging provider
	LoggingFormatKey = "client.logging.format"
)

// Option configures the package.
type Option func(opts *options) error

// FromReader loads configuration from in.
// configType can be "json" or "yaml".
func FromReader(in io.Reader, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		return initFromReader(in, configType, opts...)
	}
}

// FromFile reads from named config file
func FromFile(name string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		backend, err := newBackend(opts...)
		if err != nil {
			return nil, err
		}

		if name == "" {
			return nil, errors.New("filename is required")
		}

		backend.configViper.SetConfigFile(pathvar.Subst(name))

		// If a config file is found, read it in.
		err = backend.configViper.MergeInConfig()
		if err != nil {
			return nil, errors.Wrapf(err, "loading config file failed: %s", name)
		}

		if err := setLogLevel(backend); err != nil {
			return nil, err
		}

		return []core.ConfigBackend{backend}, nil
	}
}

// FromRaw will initialize the configs from a byte array
func FromRaw(configBytes []byte, configType string, opts ...Option) core.ConfigProvider {
	return func() ([]core.ConfigBackend, error) {
		buf := bytes.NewBuffer(configBytes)
		return initFromReader(buf, configType, opts...)
	}
}

func initFromReader(in io.Reader, configType string, opts ...Option) ([]core.ConfigBackend, error) {
	backend, err := newBackend(opts...)
	if err != nil {
		return nil, err
	}

	if configType == "" {
		return nil, errors.New("empty config type")
	}

	// read config from bytes array, but must set ConfigType
	// for viper to properly unmarshal the bytes array
	backend.configViper.SetConfigType(configType)
	err = backend.configViper.MergeConfig(in)
	if err != nil {
		return nil, errors.Wrap(err, "reading config failed")
	}

	if err := setLogLevel(backend); err != nil {
		return nil, err
	}

	return []core.ConfigBackend{backend}, nil
}

// WithEnvPrefix defines the prefix for environment variable overrides.
// See viper SetEnvPrefix for more information.
func WithEnvPrefix(prefix string) Option {
	return func(opts *options) error {
		opts.envPrefix = prefix
		return nil
	}
}

// WithTemplatePath loads a template configuration from the given directory
// before the actual configuration is merged on top of it.
func WithTemplatePath(path string) Option {
	return func(opts *options) error {
		if path == "" {
			return errors.New("template path is empty")
		}
		opts.templatePath = path
		return nil
	}
}

func newBackend(opts ...Option) (*defConfigBackend, error) {
	o := options{
		envPrefix: cmdRoot,
	}

	for _, option := range opts {
		err := option(&o)
		if err != nil {
			return nil, errors.WithMessage(err, "Error in options passed to create new config backend")
		}
	}

	v := newViper(o.envPrefix)

	//default backend for config
	backend := &defConfigBackend{
		configViper: v,
		opts:        o,
	}

	err := backend.loadTemplateConfig()
	if err != nil {
		return nil, err
	}

	return backend, nil
}

func newViper(cmdRootPrefix string) *viper.Viper {
	myViper := viper.New()
	myViper.SetEnvPrefix(cmdRootPrefix)
	myViper.AutomaticEnv()
	replacer := strings.NewReplacer(".", "_")
	myViper.SetEnvKeyReplacer(replacer)
	return myViper
}

// setLogLevel will set the log level of the client
func setLogLevel(backend core.ConfigBackend) error {
	loggingLevelString, _ := backend.Lookup(LoggingLevelKey)
	logLevel := logging.INFO
	if loggingLevelString != nil {
		var err error
		logLevel, err = logging.LogLevel(cast.ToString(loggingLevelString))
		if err != nil {
			return errors.WithMessage(err, "invalid client.logging.level")
		}
	}

	for _, logModule := range logModules {
		logging.SetLevel(logModule, logLevel)
	}
	return nil
}

// LoggerProvider creates the default logging provider using the format
// configured under client.logging.format. Pass the result to logging.Initialize.
func LoggerProvider(backend core.ConfigBackend, opts ...zaplog.Option) (api.LoggerProvider, error) {
	if format, ok := backend.Lookup(LoggingFormatKey); ok {
		opts = append([]zaplog.Option{zaplog.WithFormat(cast.ToString(format))}, opts...)
	}
	p, err := zaplog.New(opts...)
	if err != nil {
		return nil, errors.WithMessage(err, "invalid client.logging.format")
	}
	return p, nil
}
