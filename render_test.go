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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cybrota/tsearch/tsearch"
)

func plainColors(t *testing.T) {
	t.Helper()
	InitializeColors(false)
	t.Cleanup(func() { InitializeColors(true) })
}

func stringTree(t *testing.T, keys ...string) *tsearch.Tree[string] {
	t.Helper()
	tree := tsearch.NewOrdered[string]()
	for _, k := range keys {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	return tree
}

func TestRenderText(t *testing.T) {
	plainColors(t)
	r := NewRenderer(time.Minute)

	out, err := r.Render(stringTree(t, "b", "a", "c"), FormatText)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"preorder  0 b",
		"  leaf      1 a",
		"postorder 0 b",
		"  leaf      1 c",
		"endorder  0 b",
	}, "\n")+"\n", out)
}

func TestRenderOutline(t *testing.T) {
	plainColors(t)
	r := NewRenderer(time.Minute)

	out, err := r.Render(stringTree(t, "m", "f", "t", "a"), FormatTree)
	require.NoError(t, err)
	require.Equal(t, "m (h=3)\n  f (h=2)\n    a (h=1)\n  t (h=1)\n", out)
}

func TestRenderJSON(t *testing.T) {
	plainColors(t)
	r := NewRenderer(time.Minute)

	out, err := r.Render(stringTree(t, "x", "y"), FormatJSON)
	require.NoError(t, err)

	var doc walkDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Equal(t, 2, doc.Keys)
	require.Equal(t, 2, doc.Height)
	require.Equal(t, []WalkStep{
		{Key: "x", Visit: "preorder", Depth: 0},
		{Key: "x", Visit: "postorder", Depth: 0},
		{Key: "y", Visit: "leaf", Depth: 1},
		{Key: "x", Visit: "endorder", Depth: 0},
	}, doc.Walk)
}

func TestRenderUnknownFormat(t *testing.T) {
	r := NewRenderer(time.Minute)
	_, err := r.Render(stringTree(t, "a"), "yaml")
	require.Error(t, err)
}

func TestRenderFollowsTreeChanges(t *testing.T) {
	plainColors(t)
	r := NewRenderer(time.Minute)
	tree := stringTree(t, "a")

	first, err := r.Render(tree, FormatTree)
	require.NoError(t, err)
	again, err := r.Render(tree, FormatTree)
	require.NoError(t, err)
	require.Equal(t, first, again)

	_, err = tree.Insert("b")
	require.NoError(t, err)
	after, err := r.Render(tree, FormatTree)
	require.NoError(t, err)
	require.Equal(t, "a (h=2)\n  b (h=1)\n", after)

	_, ok := tree.Delete("a")
	require.True(t, ok)
	after, err = r.Render(tree, FormatTree)
	require.NoError(t, err)
	require.Equal(t, "b (h=1)\n", after)
}
