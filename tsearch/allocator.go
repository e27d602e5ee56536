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

// Allocator hands out and takes back tree nodes. Alloc returns nil when no
// node is available. Free receives zeroed nodes that the tree no longer
// references.
type Allocator[K any] interface {
	Alloc() *Node[K]
	Free(n *Node[K])
}

// HeapAllocator allocates every node from the Go heap. It never fails.
type HeapAllocator[K any] struct{}

func (HeapAllocator[K]) Alloc() *Node[K] { return new(Node[K]) }
func (HeapAllocator[K]) Free(*Node[K])   {}

// Arena serves nodes from a fixed-size slab. Released nodes go on a free
// list and are handed out again before untouched slab slots.
type Arena[K any] struct {
	slab []Node[K]
	free []*Node[K]
	next int
}

// NewArena returns an arena holding at most capacity nodes.
func NewArena[K any](capacity int) *Arena[K] {
	return &Arena[K]{slab: make([]Node[K], capacity)}
}

func (a *Arena[K]) Alloc() *Node[K] {
	if k := len(a.free); k > 0 {
		n := a.free[k-1]
		a.free = a.free[:k-1]
		return n
	}
	if a.next == len(a.slab) {
		return nil
	}
	n := &a.slab[a.next]
	a.next++
	return n
}

func (a *Arena[K]) Free(n *Node[K]) {
	a.free = append(a.free, n)
}

// Cap returns the number of nodes the arena can hold.
func (a *Arena[K]) Cap() int {
	return len(a.slab)
}

// Used returns the number of nodes currently handed out.
func (a *Arena[K]) Used() int {
	return a.next - len(a.free)
}
