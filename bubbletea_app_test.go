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
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestShellModelRunsCommands(t *testing.T) {
	plainColors(t)
	m := InitialModel(newTestSession(t, "lexical", 0), NewRenderer(time.Minute))
	require.Equal(t, "", m.plainTree())

	m.input.SetValue("insert b a c")
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	require.Equal(t, "", m.input.Value())
	require.False(t, m.statusErr)
	require.Equal(t, "b (h=2)\n  a (h=1)\n  c (h=1)\n", m.plainTree())

	m.input.SetValue("delete b")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.Equal(t, "a (h=2)\n  c (h=1)\n", m.plainTree())

	m.input.SetValue("frobnicate")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.True(t, m.statusErr)
}
