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
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type visit struct {
	Key   int
	Order Visit
	Depth int
}

func trace(tree *Tree[int]) []visit {
	var visits []visit
	tree.Walk(func(n *Node[int], v Visit, depth int) {
		visits = append(visits, visit{Key: n.Key, Order: v, Depth: depth})
	})
	return visits
}

func TestWalkOrder(t *testing.T) {
	testCases := []struct {
		Name string
		Keys []int
		Want []visit
	}{
		{
			Name: "Empty tree",
			Keys: nil,
			Want: nil,
		},
		{
			Name: "Single leaf",
			Keys: []int{1},
			Want: []visit{{1, Leaf, 0}},
		},
		{
			Name: "Right child only",
			Keys: []int{1, 2},
			Want: []visit{
				{1, Preorder, 0},
				{1, Postorder, 0},
				{2, Leaf, 1},
				{1, Endorder, 0},
			},
		},
		{
			Name: "Left child only",
			Keys: []int{2, 1},
			Want: []visit{
				{2, Preorder, 0},
				{1, Leaf, 1},
				{2, Postorder, 0},
				{2, Endorder, 0},
			},
		},
		{
			Name: "Ascending five",
			Keys: []int{10, 20, 30, 40, 50},
			Want: []visit{
				{20, Preorder, 0},
				{10, Leaf, 1},
				{20, Postorder, 0},
				{40, Preorder, 1},
				{30, Leaf, 2},
				{40, Postorder, 1},
				{50, Leaf, 2},
				{40, Endorder, 1},
				{20, Endorder, 0},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := buildTree(t, tc.Keys...)
			require.Equal(t, tc.Want, trace(tree))
		})
	}
}

func TestWalkVisitsEveryNodeOnce(t *testing.T) {
	tree := buildTree(t, 5, 3, 8, 1, 4, 7, 9, 2, 6)

	entries := map[int]int{}
	counts := map[Visit]int{}
	tree.Walk(func(n *Node[int], v Visit, depth int) {
		counts[v]++
		if v == Leaf || v == Preorder {
			entries[n.Key]++
		}
		require.Less(t, depth, tree.Height())
	})

	require.Len(t, entries, 9)
	for k, c := range entries {
		require.Equal(t, 1, c, "key %d entered %d times", k, c)
	}
	require.Equal(t, tree.Len(), counts[Leaf]+counts[Preorder])
	require.Equal(t, counts[Preorder], counts[Postorder])
	require.Equal(t, counts[Preorder], counts[Endorder])
}

func TestWalkPostorderIsSorted(t *testing.T) {
	tree := buildTree(t, 50, 20, 80, 10, 30, 70, 90, 60, 65, 15)

	var keys []int
	tree.Walk(func(n *Node[int], v Visit, _ int) {
		if v == Postorder || v == Leaf {
			keys = append(keys, n.Key)
		}
	})
	require.Equal(t, keysOf(tree), keys)
}

func TestVisitString(t *testing.T) {
	for v, want := range map[Visit]string{
		Preorder:  "preorder",
		Postorder: "postorder",
		Endorder:  "endorder",
		Leaf:      "leaf",
		Visit(9):  "unknown",
	} {
		require.Equal(t, want, fmt.Sprint(v))
	}
}
