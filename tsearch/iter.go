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

import "iter"

// All yields every key in ascending order.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]*Node[K], 0, t.Height())
		inorder(t.root, stack, yield)
	}
}

// Ascend yields, in ascending order, every key that compares greater than or
// equal to from.
func (t *Tree[K]) Ascend(from K) iter.Seq[K] {
	return func(yield func(K) bool) {
		stack := make([]*Node[K], 0, t.Height())
		n := t.root
		for n != nil {
			if t.cmp(from, n.Key) <= 0 {
				stack = append(stack, n)
				n = n.child[0]
			} else {
				n = n.child[1]
			}
		}
		inorder(nil, stack, yield)
	}
}

// inorder continues an in-order traversal from n with the pending ancestors
// in stack.
func inorder[K any](n *Node[K], stack []*Node[K], yield func(K) bool) {
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.child[0]
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !yield(n.Key) {
			return
		}
		n = n.child[1]
	}
}
