/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-common-go/pkg/util/pathvar"
)

// defConfigBackend is the viper backed core.ConfigBackend
type defConfigBackend struct {
	configViper *viper.Viper
	opts        options
}

// Lookup gets the config item value by Key. When an unmarshal type is passed
// the value is decoded into it and the same pointer is returned.
func (c *defConfigBackend) Lookup(key string, opts ...core.LookupOption) (interface{}, bool) {
	lookupOpts := &core.LookupOpts{}
	for _, option := range opts {
		option(lookupOpts)
	}

	if lookupOpts.UnmarshalType != nil {
		if !c.configViper.IsSet(key) {
			return nil, false
		}
		if err := c.configViper.UnmarshalKey(key, lookupOpts.UnmarshalType); err != nil {
			return nil, false
		}
		return lookupOpts.UnmarshalType, true
	}

	value := c.configViper.Get(key)
	if value == nil {
		return nil, false
	}
	return value, true
}

// loadTemplateConfig reads the template configuration, if one was requested
func (c *defConfigBackend) loadTemplateConfig() error {
	if c.opts.templatePath == "" {
		return nil
	}

	c.configViper.AddConfigPath(pathvar.Subst(c.opts.templatePath))
	if err := c.configViper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "loading template config failed")
	}
	return nil
}
