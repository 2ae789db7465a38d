/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
)

//Log level names in string
var levelNames = []string{
	"CRITICAL",
	"ERROR",
	"WARNING",
	"INFO",
	"DEBUG",
}

//ModuleLevels maintains log levels based on module
type ModuleLevels struct {
	mutex  sync.RWMutex
	levels map[string]api.Level
}

// GetLevel returns the log level for the given module.
// The level registered for the empty module acts as the default; INFO otherwise.
func (l *ModuleLevels) GetLevel(module string) api.Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	level, exists := l.levels[module]
	if !exists {
		level, exists = l.levels[""]
		if !exists {
			level = api.INFO
		}
	}
	return level
}

// SetLevel sets the log level for the given module.
func (l *ModuleLevels) SetLevel(module string, level api.Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.levels == nil {
		l.levels = make(map[string]api.Level)
	}
	l.levels[module] = level
}

// IsEnabledFor will return true if logging is enabled for the given module.
func (l *ModuleLevels) IsEnabledFor(module string, level api.Level) bool {
	return level <= l.GetLevel(module)
}

// ParseLevel returns the log level from a string representation.
func ParseLevel(level string) (api.Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(name, level) {
			return api.Level(i), nil
		}
	}
	return api.ERROR, errors.Errorf("logger: invalid log level [%s]", level)
}

//ParseString returns String representation of given log level
func ParseString(level api.Level) string {
	if level < api.CRITICAL || int(level) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[level]
}
