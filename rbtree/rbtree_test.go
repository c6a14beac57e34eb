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

package rbtree

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/cybrota/arbor/tree"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, keys ...int) *Tree {
	t.Helper()
	tr := New()
	for _, key := range keys {
		require.NoError(t, tr.Insert(key))
		require.NoError(t, tr.Validate())
	}
	return tr
}

func colors(tr *Tree) []tree.Color {
	var out []tree.Color
	stack := []*node{}
	if tr.root != nil {
		stack = append(stack, tr.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.color)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return out
}

const (
	B = tree.Black
	R = tree.Red
)

func TestInsertSequence(t *testing.T) {
	tr := build(t, 4, 1, 6, 0, -1, 3, 2, 5)

	require.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6}, tree.Collect(tr.InOrder()))
	require.Equal(t, []int{4, 0, -1, 2, 1, 3, 6, 5}, tree.Collect(tr.PreOrder()))
	require.Equal(t, []tree.Color{B, R, B, B, R, R, B, R}, colors(tr))
	require.Equal(t, 1, tr.BlackHeight())
	require.Equal(t, 3, tr.Height())
}

func TestInsertShapes(t *testing.T) {
	testCases := []struct {
		name string
		keys []int
	}{
		{"left-left", []int{3, 2, 1}},
		{"right-right", []int{1, 2, 3}},
		{"left-right", []int{3, 1, 2}},
		{"right-left", []int{1, 3, 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(t, tc.keys...)
			require.Equal(t, []int{2, 1, 3}, tree.Collect(tr.PreOrder()))
			require.Equal(t, []tree.Color{B, R, R}, colors(tr))
		})
	}
}

func TestInsertRecolorPropagates(t *testing.T) {
	tr := build(t, 2, 1, 3, 0)
	require.Equal(t, []int{2, 1, 0, 3}, tree.Collect(tr.PreOrder()))
	require.Equal(t, []tree.Color{B, B, R, B}, colors(tr))
}

func TestDuplicateInsert(t *testing.T) {
	tr := build(t, 10, 5, 15)
	before := tree.Collect(tr.PreOrder())

	require.ErrorIs(t, tr.Insert(15), tree.ErrDuplicateKey)
	require.Equal(t, 3, tr.Len())
	require.Equal(t, before, tree.Collect(tr.PreOrder()))
	require.NoError(t, tr.Validate())
}

func TestDeleteFixupCases(t *testing.T) {
	testCases := []struct {
		name     string
		keys     []int
		remove   []int
		preOrder []int
		colors   []tree.Color
	}{
		{
			name:     "black node with red child",
			keys:     []int{4, 1, 6, 0, -1, 3, 2, 5},
			remove:   []int{6},
			preOrder: []int{4, 0, -1, 2, 1, 3, 5},
			colors:   []tree.Color{B, R, B, B, R, R, B},
		},
		{
			name:     "far nephew red",
			keys:     []int{4, 1, 6, 0, -1, 3, 2, 5},
			remove:   []int{6, -1},
			preOrder: []int{4, 2, 0, 1, 3, 5},
			colors:   []tree.Color{B, R, B, R, B, B},
		},
		{
			name:     "red sibling then black nephews",
			keys:     []int{10, 5, 20, 15, 25, 30},
			remove:   []int{5},
			preOrder: []int{20, 10, 15, 25, 30},
			colors:   []tree.Color{B, B, R, B, R},
		},
		{
			name:     "near nephew red",
			keys:     []int{10, 5, 20, 15},
			remove:   []int{5},
			preOrder: []int{15, 10, 20},
			colors:   []tree.Color{B, B, B},
		},
		{
			name:     "near nephew red mirrored",
			keys:     []int{10, 5, 20, 7},
			remove:   []int{20},
			preOrder: []int{7, 5, 10},
			colors:   []tree.Color{B, B, B},
		},
		{
			name:     "two children uses successor",
			keys:     []int{2, 1, 3},
			remove:   []int{2},
			preOrder: []int{3, 1},
			colors:   []tree.Color{B, R},
		},
		{
			name:     "last node",
			keys:     []int{1},
			remove:   []int{1},
			preOrder: []int{},
			colors:   nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tr := build(t, tc.keys...)
			for _, key := range tc.remove {
				require.NoError(t, tr.Delete(key))
				require.NoError(t, tr.Validate())
			}
			require.Equal(t, tc.preOrder, tree.Collect(tr.PreOrder()))
			require.Equal(t, tc.colors, colors(tr))
		})
	}
}

func TestDeleteMissing(t *testing.T) {
	tr := New()
	require.ErrorIs(t, tr.Delete(1), tree.ErrKeyNotFound)

	tr = build(t, 1, 2)
	require.ErrorIs(t, tr.Delete(3), tree.ErrKeyNotFound)
	require.Equal(t, 2, tr.Len())
}

func TestSearch(t *testing.T) {
	tr := build(t, 4, 1, 6, 0, -1, 3, 2, 5)
	height := tr.Height()
	before := tree.Collect(tr.PreOrder())

	var visited []int
	n, ok := tr.SearchTrace(3, func(v tree.View) { visited = append(visited, v.Key()) })
	require.True(t, ok)
	require.Equal(t, 3, n.Key())
	require.Equal(t, tree.Red, n.Color())
	require.Equal(t, []int{4, 0, 2, 3}, visited)

	n, ok = tr.Search(42)
	require.False(t, ok)
	require.Nil(t, n)
	require.Equal(t, height, tr.Height())
	require.Equal(t, before, tree.Collect(tr.PreOrder()))
}

func TestRotationRoundTrip(t *testing.T) {
	a := &node{key: 1, color: B}
	b := &node{key: 3, color: R}
	c := &node{key: 5, color: B}
	u := &node{key: 4, color: R, left: b, right: c}
	p := &node{key: 2, color: B, left: a, right: u}

	top, err := rotateLeft(p)
	require.NoError(t, err)
	require.Same(t, u, top)
	require.Equal(t, []int{1, 2, 3, 4, 5}, tree.Collect(tree.InOrder(top)))
	// rotation never recolors
	require.Equal(t, R, u.color)
	require.Equal(t, B, p.color)

	back, err := rotateRight(top)
	require.NoError(t, err)
	require.Same(t, p, back)
	require.Same(t, a, p.left)
	require.Same(t, u, p.right)
	require.Same(t, b, u.left)
	require.Same(t, c, u.right)

	_, err = rotateRight(a)
	require.ErrorIs(t, err, tree.ErrInvariant)
	_, err = rotateRightLeft(a)
	require.ErrorIs(t, err, tree.ErrInvariant)
}

func TestHeightBound(t *testing.T) {
	tr := New()
	const n = 4096
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(i))
	}
	require.NoError(t, tr.Validate())
	require.LessOrEqual(t, float64(tr.Height()), 2*math.Log2(n+1))
}

func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		rng := rand.New(rand.NewSource(seed))
		tr := New()
		present := map[int]bool{}

		for i := 0; i < 3000; i++ {
			key := rng.Intn(400)
			if rng.Intn(5) < 2 {
				err := tr.Delete(key)
				if present[key] {
					require.NoError(t, err)
					delete(present, key)
				} else {
					require.ErrorIs(t, err, tree.ErrKeyNotFound)
				}
			} else {
				err := tr.Insert(key)
				if present[key] {
					require.ErrorIs(t, err, tree.ErrDuplicateKey)
				} else {
					require.NoError(t, err)
					present[key] = true
				}
			}
			require.NoError(t, tr.Validate(), "seed %d step %d", seed, i)
		}

		expected := make([]int, 0, len(present))
		for k := range present {
			expected = append(expected, k)
		}
		slices.Sort(expected)
		require.Equal(t, expected, tree.Collect(tr.InOrder()))

		// drain in random order
		rng.Shuffle(len(expected), func(i, j int) { expected[i], expected[j] = expected[j], expected[i] })
		for _, key := range expected {
			require.NoError(t, tr.Delete(key))
			require.NoError(t, tr.Validate())
		}
		require.Nil(t, tr.Root())
	}
}

func TestTeardown(t *testing.T) {
	tr := build(t, 2, 1, 3)
	root := tr.root

	require.NoError(t, tr.Teardown())
	require.Nil(t, root.left)
	require.Nil(t, root.right)
	require.ErrorIs(t, tr.Teardown(), tree.ErrTornDown)
	require.ErrorIs(t, tr.Insert(1), tree.ErrTornDown)
	require.ErrorIs(t, tr.Validate(), tree.ErrTornDown)
}
