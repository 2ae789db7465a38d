/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pathvar

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstGoPath(t *testing.T) {
	assert.Equal(t, "/x"+goPath()+"/src", Subst("/x${GOPATH}/src"), "Unexpected path substitution")
}

func TestSubstEnvVar(t *testing.T) {
	const envKey = "FABCOMMON_TESTVAR"
	os.Setenv(envKey, "/tmp/channel")
	defer os.Unsetenv(envKey)

	assert.Equal(t, "/tmp/channel/config.yaml", Subst("${"+envKey+"}/config.yaml"), "Unexpected path substitution")
	assert.Equal(t, "$foo/tmp/channelfoo", Subst("$foo${"+envKey+"}foo"), "Unexpected path substitution")
}

func TestSubstNotAKey(t *testing.T) {
	o := "${FABCOMMON_UNSET_TESTVAR}"
	assert.Equal(t, o, Subst(o), "Unexpected path substitution")
}

func TestSubstAlmostVar(t *testing.T) {
	for _, o := range []string{"${FABCOMMON_UNSET_TESTVAR{}${}$", "${", "foo${bar", "", "foo"} {
		assert.Equal(t, o, Subst(o), "Unexpected path substitution")
	}
}
