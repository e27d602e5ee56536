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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	arena := NewArena[string](2)
	require.Equal(t, 2, arena.Cap())

	a := arena.Alloc()
	b := arena.Alloc()
	require.NotNil(t, a)
	require.NotNil(t, b)
	require.NotSame(t, a, b)
	require.Nil(t, arena.Alloc())
	require.Equal(t, 2, arena.Used())

	arena.Free(a)
	require.Equal(t, 1, arena.Used())
	require.Same(t, a, arena.Alloc())
	require.Nil(t, arena.Alloc())
}

func TestArenaZeroCapacity(t *testing.T) {
	tree := NewOrdered(WithAllocator[int](NewArena[int](0)))

	n, err := tree.Insert(1)
	require.ErrorIs(t, err, ErrNoMemory)
	require.Nil(t, n)
	require.Nil(t, tree.Root())
	require.Zero(t, tree.Len())
}

func TestReleasedNodesAreCleared(t *testing.T) {
	arena := NewArena[*int](1)
	tree := New(func(a, b *int) int { return *a - *b }, WithAllocator[*int](arena))

	v := 7
	n, err := tree.Insert(&v)
	require.NoError(t, err)
	_, ok := tree.Delete(&v)
	require.True(t, ok)

	// The slot went back to the arena without holding on to the key.
	require.Nil(t, n.Key)
	require.Zero(t, n.Height())
	require.Same(t, n, arena.Alloc())
}
