// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package applog

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/bufbuild/echoargs/private/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetZapLevel(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		levelString string
		expected    zapcore.Level
		expectError bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{" WARN ", zapcore.WarnLevel, false},
		{"", zapcore.InfoLevel, false},
		{"foobar", zapcore.InfoLevel, true},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(fmt.Sprintf("level %q", testCase.levelString), func(t *testing.T) {
			t.Parallel()
			actual, err := getZapLevel(testCase.levelString)
			if testCase.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestGetZapEncoder(t *testing.T) {
	t.Parallel()
	for _, format := range []string{"text", "color", "json", "TEXT", "COLOR", "JSON", ""} {
		format := format
		t.Run(fmt.Sprintf("format %q", format), func(t *testing.T) {
			t.Parallel()
			encoder, err := getZapEncoder(format)
			assert.NoError(t, err)
			assert.NotNil(t, encoder)
		})
	}
	_, err := getZapEncoder("invalid")
	assert.EqualError(t, err, `unknown log format [text,color,json]: "invalid"`)
}

func TestNewLogger(t *testing.T) {
	t.Parallel()
	buffer := bytes.NewBuffer(nil)
	logger, err := NewLogger(buffer, "warn", "json")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", zap.Int("count", 2))
	assert.NotContains(t, buffer.String(), "hidden")
	assert.Contains(t, buffer.String(), `"message":"shown"`)
	assert.Contains(t, buffer.String(), `"level":"warn"`)
	assert.Contains(t, buffer.String(), `"count":2`)

	_, err = NewLogger(buffer, "loud", "json")
	assert.Error(t, err)
	_, err = NewLogger(buffer, "info", "xml")
	assert.Error(t, err)
}

func TestDefer(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	func() {
		defer Defer(logger, "foo", zap.String("key", "value"))()
	}()
	entries := logs.FilterMessage("foo").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	contextMap := entries[0].ContextMap()
	assert.Equal(t, "value", contextMap["key"])
	assert.Contains(t, contextMap, "duration")
}

func TestDeferWithError(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)
	_ = func() (retErr error) {
		defer DeferWithError(logger, "foo", &retErr)()
		return errors.New("bar")
	}()
	_ = func() (retErr error) {
		defer DeferWithError(logger, "baz", &retErr)()
		return nil
	}()
	entries := logs.FilterMessage("foo").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "bar", entries[0].ContextMap()["error"])
	entries = logs.FilterMessage("baz").All()
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0].ContextMap(), "error")
}

func TestNewContainer(t *testing.T) {
	t.Parallel()
	appContainer := app.NewContainer(nil, nil, "test", "one")
	container := NewContainer(appContainer, nil)
	require.NotNil(t, container.Logger())
	assert.Equal(t, []string{"test", "one"}, app.Args(container))
	logger := zap.NewNop()
	assert.Same(t, logger, NewContainer(appContainer, logger).Logger())
}
