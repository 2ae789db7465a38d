/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package channel

import (
	"regexp"
	"strings"

	"github.com/hyperledger/fabric-common-go/pkg/common/errors/status"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/core"
	"github.com/hyperledger/fabric-common-go/pkg/common/providers/fab"
)

// NameCheckerKey is the client configuration key of the channel name checker
const NameCheckerKey = "client.channelNameChecker"

// NameChecker is a regular expression that channel names must match
type NameChecker struct {
	Pattern string
	Flags   string
}

// Compile translates the checker into a Go regular expression. The i, m and s
// flags are honoured; g, u and y do not affect matching a single name.
func (n *NameChecker) Compile() (*regexp.Regexp, error) {
	var prefix strings.Builder
	seen := make(map[rune]bool)
	for _, f := range n.Flags {
		if seen[f] {
			return nil, status.Errorf(status.ConfigurationError, "duplicate flag '%c' in channel name checker flags %q", f, n.Flags)
		}
		seen[f] = true

		switch f {
		case 'i', 'm', 's':
			prefix.WriteRune(f)
		case 'g', 'u', 'y':
		default:
			return nil, status.Errorf(status.ConfigurationError, "invalid flag '%c' in channel name checker flags %q", f, n.Flags)
		}
	}

	expr := n.Pattern
	if prefix.Len() > 0 {
		expr = "(?" + prefix.String() + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, status.Errorf(status.ConfigurationError, "invalid channel name checker pattern /%s/%s: %s", n.Pattern, n.Flags, err)
	}
	return re, nil
}

func (n *NameChecker) String() string {
	return "/" + n.Pattern + "/" + n.Flags
}

func checkName(name string, client fab.ClientContext) error {
	if _, ok := client.Lookup(NameCheckerKey); !ok {
		return nil
	}

	checker := &NameChecker{}
	if _, ok := client.Lookup(NameCheckerKey, core.WithUnmarshalType(checker)); !ok {
		return status.Errorf(status.ConfigurationError, "invalid channel name checker configuration under %s", NameCheckerKey)
	}
	if checker.Pattern == "" {
		return nil
	}

	re, err := checker.Compile()
	if err != nil {
		return err
	}
	if !re.MatchString(name) {
		return status.Errorf(status.ConfigurationError, "Failed to create Channel. channel name should match Regex %s, but got %s", checker, name)
	}
	return nil
}
