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

// Node holds one key of a Tree. The tree stores the key value as given and
// never frees or copies whatever it refers to.
type Node[K any] struct {
	Key    K
	child  [2]*Node[K] // 0: left, 1: right
	height int
}

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] {
	return n.child[0]
}

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] {
	return n.child[1]
}

// Height returns the height of the subtree rooted at n. A nil node has
// height 0 and a leaf has height 1.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// IsLeaf reports whether n has no children.
func (n *Node[K]) IsLeaf() bool {
	return n.height == 1
}

// side maps a comparison result to the child index to descend into.
func side(c int) int {
	if c > 0 {
		return 1
	}
	return 0
}
