// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	require.NoError(t, err)

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown", "key", "a b")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "level=warn")
	require.Contains(t, out, `msg=shown key="a b"`)
	require.Contains(t, out, "ts=")

	_, err = newLogger(&buf, "verbose")
	require.Error(t, err)
}
