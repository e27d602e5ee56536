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

// Visit tells a walk callback where it stands relative to a node.
type Visit int

const (
	// Preorder is the visit before an internal node's left subtree.
	Preorder Visit = iota
	// Postorder is the visit between the left and right subtrees.
	Postorder
	// Endorder is the visit after the right subtree.
	Endorder
	// Leaf is the single visit of a node without children.
	Leaf
)

func (v Visit) String() string {
	switch v {
	case Preorder:
		return "preorder"
	case Postorder:
		return "postorder"
	case Endorder:
		return "endorder"
	case Leaf:
		return "leaf"
	}
	return "unknown"
}

// WalkFunc is called by Walk. depth is 0 at the root.
type WalkFunc[K any] func(n *Node[K], v Visit, depth int)

// Walk visits the tree depth first. A leaf is visited once with Leaf. Any
// other node is visited three times: Preorder before its left subtree,
// Postorder between its subtrees and Endorder after its right subtree.
//
// The callback must not modify the tree.
func (t *Tree[K]) Walk(fn WalkFunc[K]) {
	if t.root == nil {
		return
	}

	type frame struct {
		n     *Node[K]
		depth int
		next  Visit
	}
	stack := make([]frame, 0, t.root.height)
	stack = append(stack, frame{n: t.root, next: Preorder})

	for len(stack) > 0 {
		top := len(stack) - 1
		f := stack[top]

		if f.n.IsLeaf() {
			fn(f.n, Leaf, f.depth)
			stack = stack[:top]
			continue
		}

		fn(f.n, f.next, f.depth)
		switch f.next {
		case Preorder:
			stack[top].next = Postorder
			if l := f.n.child[0]; l != nil {
				stack = append(stack, frame{n: l, depth: f.depth + 1, next: Preorder})
			}
		case Postorder:
			stack[top].next = Endorder
			if r := f.n.child[1]; r != nil {
				stack = append(stack, frame{n: r, depth: f.depth + 1, next: Preorder})
			}
		default:
			stack = stack[:top]
		}
	}
}
