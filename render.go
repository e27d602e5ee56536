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
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/tsearch/tsearch"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output formats of a rendered tree.
const (
	FormatText = "text" // one line per walk visit
	FormatTree = "tree" // indented outline, one line per node
	FormatJSON = "json"
)

// WalkStep is one callback of a tree walk.
type WalkStep struct {
	Key   string `json:"key"`
	Visit string `json:"visit"`
	Depth int    `json:"depth"`
}

type walkDocument struct {
	Keys   int        `json:"keys"`
	Height int        `json:"height"`
	Walk   []WalkStep `json:"walk"`
}

func newWalkDocument(tree *tsearch.Tree[string]) walkDocument {
	return walkDocument{
		Keys:   tree.Len(),
		Height: tree.Height(),
		Walk:   traceWalk(tree),
	}
}

// traceWalk records every visit of a walk over tree.
func traceWalk(tree *tsearch.Tree[string]) []WalkStep {
	steps := make([]WalkStep, 0, 3*tree.Len())
	tree.Walk(func(n *tsearch.Node[string], v tsearch.Visit, depth int) {
		steps = append(steps, WalkStep{Key: n.Key, Visit: v.String(), Depth: depth})
	})
	return steps
}

// Renderer turns trees into text and remembers the result until the tree
// changes.
type Renderer struct {
	cache *cache.Cache
}

func NewRenderer(ttl time.Duration) *Renderer {
	return &Renderer{cache: NewRenderCache(ttl)}
}

// Render formats tree as text, tree or json.
func (r *Renderer) Render(tree *tsearch.Tree[string], format string) (string, error) {
	key := fmt.Sprintf("%p/%d/%s/%t", tree, tree.Version(), format, Reset != "")
	if out := GetRender(r.cache, key); out != "" {
		return out, nil
	}

	var out string
	switch format {
	case FormatText, "":
		out = renderText(tree)
	case FormatTree:
		out = renderOutline(tree, Reset != "")
	case FormatJSON:
		data, err := json.MarshalIndent(newWalkDocument(tree), "", "  ")
		if err != nil {
			return "", err
		}
		out = string(data) + "\n"
	default:
		return "", fmt.Errorf("unknown format %q (want %s, %s or %s)", format, FormatText, FormatTree, FormatJSON)
	}

	CacheRender(r.cache, key, out)
	return out, nil
}

// renderText prints one "visit depth key" line per walk callback.
func renderText(tree *tsearch.Tree[string]) string {
	var b strings.Builder
	tree.Walk(func(n *tsearch.Node[string], v tsearch.Visit, depth int) {
		fmt.Fprintf(&b, "%s%s%-9s%s %d %s\n", strings.Repeat("  ", depth), visitColor(v), v, Reset, depth, n.Key)
	})
	return b.String()
}

// renderOutline lists each node once, indented by depth, with its height.
func renderOutline(tree *tsearch.Tree[string], color bool) string {
	var b strings.Builder
	tree.Walk(func(n *tsearch.Node[string], v tsearch.Visit, depth int) {
		if v != tsearch.Preorder && v != tsearch.Leaf {
			return
		}
		if color {
			fmt.Fprintf(&b, "%s%s %s(h=%d)%s\n", strings.Repeat("  ", depth), n.Key, Info, n.Height(), Reset)
		} else {
			fmt.Fprintf(&b, "%s%s (h=%d)\n", strings.Repeat("  ", depth), n.Key, n.Height())
		}
	})
	return b.String()
}
