/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package pathvar expands ${VARNAME} references in configuration paths.
package pathvar

import (
	"go/build"
	"os"
	"path/filepath"
	"strings"
)

const (
	sepPrefix = "${"
	sepSuffix = "}"
)

// goPath returns the current GOPATH. If the system
// has multiple GOPATHs then the first is used.
func goPath() string {
	return filepath.SplitList(build.Default.GOPATH)[0]
}

// Subst replaces instances of '${VARNAME}' (eg ${GOPATH}) with the variable.
// Unknown variables are left untouched.
func Subst(path string) string {
	var out strings.Builder
	rest := path
	for {
		start := strings.Index(rest, sepPrefix)
		if start == -1 {
			out.WriteString(rest)
			return out.String()
		}
		out.WriteString(rest[:start])
		rest = rest[start+len(sepPrefix):]

		end := strings.Index(rest, sepSuffix)
		if end == -1 {
			out.WriteString(sepPrefix)
			continue
		}

		v, ok := lookupVar(rest[:end])
		if !ok {
			out.WriteString(sepPrefix)
			continue
		}
		out.WriteString(v)
		rest = rest[end+len(sepSuffix):]
	}
}

// lookupVar consults the SDK variables first, then the environment.
func lookupVar(v string) (string, bool) {
	switch v {
	case "GOPATH":
		return goPath(), true
	}
	return os.LookupEnv(v)
}
