/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package zaplog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/fabric-common-go/pkg/core/logging/api"
)

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := New(WithWriter(buf), WithFormat(JSONFormat))
	require.NoError(t, err)

	module := "zaplog-test/json"
	SetLevel(module, api.INFO)
	logger := p.GetLogger(module)

	logger.Debugf("hidden %d", 1)
	assert.Empty(t, buf.String(), "debug should be filtered at INFO")

	logger.Infof("visible %d", 2)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible 2", record["msg"])
	assert.Equal(t, module, record["module"])
	assert.Equal(t, "info", record["level"])
}

func TestLogfmtFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := New(WithWriter(buf), WithFormat(LogfmtFormat))
	require.NoError(t, err)

	module := "zaplog-test/logfmt"
	SetLevel(module, api.DEBUG)
	p.GetLogger(module).Warn("careful")

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=warn"), out)
	assert.True(t, strings.Contains(out, "msg=careful"), out)
}

func TestModuleLevels(t *testing.T) {
	buf := &bytes.Buffer{}
	p, err := New(WithWriter(buf))
	require.NoError(t, err)

	module := "zaplog-test/levels"
	SetLevel(module, api.ERROR)
	assert.Equal(t, api.ERROR, GetLevel(module))

	logger := p.GetLogger(module)
	logger.Info("dropped")
	logger.Warnf("dropped %s", "too")
	assert.Empty(t, buf.String())

	logger.Errorf("kept %s", "error")
	assert.Contains(t, buf.String(), "kept error")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := New(WithFormat("xml"))
	assert.EqualError(t, err, "unsupported log format [xml]")
}
