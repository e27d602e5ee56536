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

// rotate restructures the subtree in slot p whose root x is too deep on
// side dir. It returns the height change of the slot.
func rotate[K any](p **Node[K], x *Node[K], dir int) int {
	y := x.child[dir]
	z := y.child[1-dir]
	hx := x.height
	hz := z.Height()

	if hz > y.child[dir].Height() {
		//   x
		//  / \ dir          z
		// A   y            / \
		//    / \   -->    x   y
		//   z   D        /|   |\
		//  / \          A B   C D
		// B   C
		x.child[dir] = z.child[1-dir]
		y.child[1-dir] = z.child[dir]
		z.child[1-dir] = x
		z.child[dir] = y
		x.height = hz
		y.height = hz
		z.height = hz + 1
	} else {
		//   x               y
		//  / \             / \
		// A   y    -->    x   D
		//    / \         / \
		//   z   D       A   z
		x.child[dir] = z
		y.child[1-dir] = x
		x.height = hz + 1
		y.height = hz + 2
		z = y
	}

	*p = z
	return z.height - hx
}

// balance restores the AVL invariant at the node in slot p, assuming both of
// its subtrees already satisfy it. It returns 0 if the height of the slot is
// unchanged.
func balance[K any](p **Node[K]) int {
	n := *p
	h0 := n.child[0].Height()
	h1 := n.child[1].Height()

	if d := h0 - h1; d >= -1 && d <= 1 {
		old := n.height
		n.height = max(h0, h1) + 1
		return n.height - old
	}

	dir := 0
	if h0 < h1 {
		dir = 1
	}
	return rotate(p, n, dir)
}
