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

// Package tsearch implements an AVL tree with the semantics of the SVR4
// tsearch family: find, insert, delete, destroy and a four-way walk.
package tsearch

import (
	"cmp"
	"errors"
	"strconv"
)

// ErrNoMemory is returned by Insert when the allocator cannot provide a node.
// The tree is left unchanged.
var ErrNoMemory = errors.New("tsearch: node allocation failed")

// maxPath bounds the slots recorded on a root-to-leaf descent. An AVL tree
// of n nodes is shorter than 1.44*log2(n+2), and n cannot exceed the address
// space.
const maxPath = strconv.IntSize*3/2 + 1

// CompareFunc orders keys. It returns a negative number when a < b, zero when
// a == b and a positive number when a > b. It must be a strict total order
// that stays the same for the lifetime of a tree.
type CompareFunc[K any] func(a, b K) int

// Tree is an AVL tree of keys ordered by a CompareFunc.
//
// Tree is not safe for concurrent use by multiple goroutines. If several
// goroutines access a tree and at least one of them modifies it, access must
// be synchronized externally.
type Tree[K any] struct {
	root    *Node[K]
	cmp     CompareFunc[K]
	alloc   Allocator[K]
	size    int
	version uint64
}

// Option configures a Tree.
type Option[K any] func(*Tree[K])

// WithAllocator makes the tree take its nodes from a.
func WithAllocator[K any](a Allocator[K]) Option[K] {
	return func(t *Tree[K]) {
		t.alloc = a
	}
}

// New returns an empty tree ordered by compare.
func New[K any](compare CompareFunc[K], opts ...Option[K]) *Tree[K] {
	t := &Tree[K]{cmp: compare, alloc: HeapAllocator[K]{}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewOrdered returns an empty tree of naturally ordered keys.
func NewOrdered[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	return New(cmp.Compare[K], opts...)
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// Height returns the height of the tree; 0 when empty.
func (t *Tree[K]) Height() int {
	return t.root.Height()
}

// Version changes every time a node is added to or removed from the tree.
func (t *Tree[K]) Version() uint64 {
	return t.version
}

// Find returns the node whose key compares equal to key, or nil.
func (t *Tree[K]) Find(key K) *Node[K] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.Key)
		if c == 0 {
			return n
		}
		n = n.child[side(c)]
	}
	return nil
}

// Insert adds key to the tree and returns its node. If an equal key is
// already present its node is returned and the tree is not modified.
// When the allocator runs out of nodes Insert returns ErrNoMemory and the
// tree is left as it was.
func (t *Tree[K]) Insert(key K) (*Node[K], error) {
	var path [maxPath]**Node[K]
	i := 0
	path[i] = &t.root
	i++

	n := t.root
	for n != nil {
		c := t.cmp(key, n.Key)
		if c == 0 {
			return n, nil
		}
		dir := side(c)
		path[i] = &n.child[dir]
		i++
		n = n.child[dir]
	}

	r := t.alloc.Alloc()
	if r == nil {
		return nil, ErrNoMemory
	}
	*r = Node[K]{Key: key, height: 1}

	i--
	*path[i] = r
	t.size++
	t.version++

	// Once a subtree keeps its height, nothing above it can change.
	for i > 0 {
		i--
		if balance(path[i]) == 0 {
			break
		}
	}
	return r, nil
}

// Delete removes the key that compares equal to key.
//
// When the key is absent Delete returns (nil, false) and does nothing.
// Otherwise ok is true and parent is the node that was the parent of the
// matched node before rebalancing; parent is nil when the matched node was
// the root.
//
// A matched node with a left subtree keeps its place in the tree: it takes
// the key of its in-order predecessor, and the predecessor's node is the one
// released.
func (t *Tree[K]) Delete(key K) (parent *Node[K], ok bool) {
	var path [maxPath + 1]**Node[K]
	i := 0
	path[i] = &t.root
	i++

	n := t.root
	for {
		if n == nil {
			return nil, false
		}
		c := t.cmp(key, n.Key)
		if c == 0 {
			break
		}
		parent = n
		dir := side(c)
		path[i] = &n.child[dir]
		i++
		n = n.child[dir]
	}

	var child *Node[K]
	if n.child[0] != nil {
		deleted := n
		path[i] = &n.child[0]
		i++
		n = n.child[0]
		for n.child[1] != nil {
			path[i] = &n.child[1]
			i++
			n = n.child[1]
		}
		deleted.Key = n.Key
		child = n.child[0]
	} else {
		child = n.child[1]
	}

	// n has at most one child; lift it into n's slot.
	i--
	*path[i] = child
	t.release(n)

	// Removal may unbalance several levels, so every ancestor is checked.
	for i > 0 {
		i--
		balance(path[i])
	}
	return parent, true
}

// Destroy removes every node, children before their parent. If free is not
// nil it is called with each key just before the key's node is released.
func (t *Tree[K]) Destroy(free func(key K)) {
	if t.root == nil {
		return
	}

	type frame struct {
		n        *Node[K]
		expanded bool
	}
	stack := make([]frame, 0, 2*t.root.height)
	stack = append(stack, frame{n: t.root})
	t.root = nil

	for len(stack) > 0 {
		top := len(stack) - 1
		n := stack[top].n
		if !stack[top].expanded {
			stack[top].expanded = true
			if n.child[1] != nil {
				stack = append(stack, frame{n: n.child[1]})
			}
			if n.child[0] != nil {
				stack = append(stack, frame{n: n.child[0]})
			}
			continue
		}
		stack = stack[:top]
		if free != nil {
			free(n.Key)
		}
		t.release(n)
	}
}

func (t *Tree[K]) release(n *Node[K]) {
	*n = Node[K]{}
	t.alloc.Free(n)
	t.size--
	t.version++
}

// Min returns the smallest key's node, or nil.
func (t *Tree[K]) Min() *Node[K] {
	return t.edge(0)
}

// Max returns the largest key's node, or nil.
func (t *Tree[K]) Max() *Node[K] {
	return t.edge(1)
}

func (t *Tree[K]) edge(dir int) *Node[K] {
	n := t.root
	if n == nil {
		return nil
	}
	for n.child[dir] != nil {
		n = n.child[dir]
	}
	return n
}
