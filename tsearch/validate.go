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

package tsearch

import "fmt"

// Validate checks the structure of the tree: keys in order, stored heights
// correct, every node balanced and the node count equal to Len. It returns
// nil for a well-formed tree.
func (t *Tree[K]) Validate() error {
	count := 0
	if _, err := t.validate(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("tree holds %d nodes but Len is %d", count, t.size)
	}
	return nil
}

func (t *Tree[K]) validate(n *Node[K], lo, hi *Node[K], count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	if lo != nil && t.cmp(n.Key, lo.Key) <= 0 {
		return 0, fmt.Errorf("key %v is not greater than ancestor key %v", n.Key, lo.Key)
	}
	if hi != nil && t.cmp(n.Key, hi.Key) >= 0 {
		return 0, fmt.Errorf("key %v is not less than ancestor key %v", n.Key, hi.Key)
	}

	h0, err := t.validate(n.child[0], lo, n, count)
	if err != nil {
		return 0, err
	}
	h1, err := t.validate(n.child[1], n, hi, count)
	if err != nil {
		return 0, err
	}

	if d := h0 - h1; d < -1 || d > 1 {
		return 0, fmt.Errorf("node %v is unbalanced: left height %d, right height %d", n.Key, h0, h1)
	}
	if h := max(h0, h1) + 1; n.height != h {
		return 0, fmt.Errorf("node %v stores height %d, want %d", n.Key, n.height, h)
	}
	return n.height, nil
}

// MaxHeight returns the greatest height an AVL tree of n keys can have. It
// is the largest h whose sparsest AVL tree, with N(h) = N(h-1) + N(h-2) + 1
// nodes, still fits in n; roughly 1.44*log2(n+2).
func MaxHeight(n int) int {
	if n <= 0 {
		return 0
	}
	h, cur, prev := 1, 1, 0
	for {
		next := cur + prev + 1
		if next > n {
			return h
		}
		prev, cur = cur, next
		h++
	}
}
