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

package avl

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/cybrota/arbor/tree"
	"github.com/stretchr/testify/require"
)

type AVLTestCase struct {
	Name          string
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // in-order traversal after the operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{1, 2, 3},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Insertion with Balancing (Left-Heavy)",
			KeysToInsert:  []int{3, 2, 1},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Left-Right Shape",
			KeysToInsert:  []int{3, 1, 2},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Right-Left Shape",
			KeysToInsert:  []int{1, 3, 2},
			ExpectedOrder: []int{1, 2, 3},
		},
		{
			Name:          "Deletion with Balancing (Right-Heavy)",
			KeysToInsert:  []int{2, 1, 3, 4},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3, 4},
		},
		{
			Name:          "Mixed Operations",
			KeysToInsert:  []int{40, 20, 60, 10},
			KeysToDelete:  []int{20},
			ExpectedOrder: []int{10, 40, 60},
		},
		{
			Name:          "Delete Everything",
			KeysToInsert:  []int{5, 3, 8},
			KeysToDelete:  []int{5, 3, 8},
			ExpectedOrder: []int{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tr := New()
			for _, key := range tc.KeysToInsert {
				require.NoError(t, tr.Insert(key))
				require.NoError(t, tr.Validate())
			}
			for _, key := range tc.KeysToDelete {
				require.NoError(t, tr.Delete(key))
				require.NoError(t, tr.Validate())
			}
			require.Equal(t, tc.ExpectedOrder, tree.Collect(tr.InOrder()))
			require.Equal(t, len(tc.ExpectedOrder), tr.Len())
		})
	}
}

func TestInsertSequence(t *testing.T) {
	tr := New()
	for _, key := range []int{4, 1, 6, 0, -1, 3, 2, 5} {
		require.NoError(t, tr.Insert(key))
	}

	require.NoError(t, tr.Validate())
	require.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6}, tree.Collect(tr.InOrder()))
	require.Equal(t, []int{1, 0, -1, 4, 3, 2, 6, 5}, tree.Collect(tr.PreOrder()))
	require.Equal(t, 3, tr.Height())
	require.Equal(t, -1, tr.root.Balance())
}

func TestDuplicateInsert(t *testing.T) {
	tr := New()
	for _, key := range []int{10, 5, 15} {
		require.NoError(t, tr.Insert(key))
	}
	before := tree.Collect(tr.PreOrder())

	err := tr.Insert(5)
	require.ErrorIs(t, err, tree.ErrDuplicateKey)
	require.Equal(t, 3, tr.Len())
	require.Equal(t, before, tree.Collect(tr.PreOrder()))
}

func TestDeleteRootOfThree(t *testing.T) {
	tr := New()
	for _, key := range []int{2, 1, 3} {
		require.NoError(t, tr.Insert(key))
	}

	require.NoError(t, tr.Delete(2))
	require.NoError(t, tr.Validate())
	require.Equal(t, 2, tr.Len())
	require.Equal(t, []int{1, 3}, tree.Collect(tr.InOrder()))
	// the predecessor takes the root's place
	require.Equal(t, 1, tr.Root().Key())
}

func TestDeleteMissing(t *testing.T) {
	tr := New()
	require.ErrorIs(t, tr.Delete(7), tree.ErrKeyNotFound)

	require.NoError(t, tr.Insert(7))
	require.ErrorIs(t, tr.Delete(8), tree.ErrKeyNotFound)
	require.Equal(t, 1, tr.Len())
}

func TestDeleteCascadesToRoot(t *testing.T) {
	// minimal AVL tree of height 4 (Fibonacci shape); removing the single
	// node from the short side forces rotations at two levels
	tr := New()
	for _, key := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		require.NoError(t, tr.Insert(key))
	}
	require.NoError(t, tr.Validate())

	require.NoError(t, tr.Delete(12))
	require.NoError(t, tr.Validate())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, tree.Collect(tr.InOrder()))
}

func TestSearch(t *testing.T) {
	tr := New()
	for _, key := range []int{50, 30, 70, 20, 40} {
		require.NoError(t, tr.Insert(key))
	}
	height := tr.Height()
	before := tree.Collect(tr.PreOrder())

	n, ok := tr.Search(40)
	require.True(t, ok)
	require.Equal(t, 40, n.Key())

	var visited []int
	n, ok = tr.SearchTrace(45, func(v tree.View) { visited = append(visited, v.Key()) })
	require.False(t, ok)
	require.Nil(t, n)
	require.Equal(t, []int{50, 30, 40}, visited)

	// a missing key never changes the tree
	require.Equal(t, height, tr.Height())
	require.Equal(t, before, tree.Collect(tr.PreOrder()))

	again, ok := tr.Search(40)
	require.True(t, ok)
	require.Equal(t, 40, again.Key())
}

func TestRotationRoundTrip(t *testing.T) {
	a := &node{key: 1}
	b := &node{key: 3}
	c := &node{key: 5}
	u := &node{key: 4, left: b, right: c}
	p := &node{key: 2, left: a, right: u}
	u.update()
	p.update()

	top, err := rotateLeft(p)
	require.NoError(t, err)
	require.Same(t, u, top)
	require.Same(t, p, u.left)
	require.Same(t, b, p.right)
	require.Equal(t, []int{1, 2, 3, 4, 5}, tree.Collect(tree.InOrder(top)))
	require.Equal(t, 1, p.height)
	require.Equal(t, 2, u.height)

	back, err := rotateRight(top)
	require.NoError(t, err)
	require.Same(t, p, back)
	require.Same(t, a, p.left)
	require.Same(t, u, p.right)
	require.Same(t, b, u.left)
	require.Same(t, c, u.right)
	require.Equal(t, 2, p.height)
	require.Equal(t, 1, u.height)
}

func TestDoubleRotations(t *testing.T) {
	// 3 -> 1 -> 2 leans left then right
	lr := &node{key: 3, left: &node{key: 1, right: &node{key: 2}}}
	lr.left.update()
	lr.update()
	top, err := rotateLeftRight(lr)
	require.NoError(t, err)
	require.Equal(t, 2, top.key)
	require.Equal(t, []int{2, 1, 3}, tree.Collect(tree.PreOrder(top)))

	rl := &node{key: 1, right: &node{key: 3, left: &node{key: 2}}}
	rl.right.update()
	rl.update()
	top, err = rotateRightLeft(rl)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 3}, tree.Collect(tree.PreOrder(top)))
	require.Equal(t, 1, top.height)
}

func TestRotationPrecondition(t *testing.T) {
	leaf := &node{key: 1}

	got, err := rotateLeft(leaf)
	require.ErrorIs(t, err, tree.ErrInvariant)
	require.Same(t, leaf, got)

	_, err = rotateRight(leaf)
	require.ErrorIs(t, err, tree.ErrInvariant)

	_, err = rotateLeftRight(leaf)
	require.ErrorIs(t, err, tree.ErrInvariant)
}

func TestHeightBound(t *testing.T) {
	tr := New()
	const n = 4096
	for i := 0; i < n; i++ {
		require.NoError(t, tr.Insert(i))
	}
	require.NoError(t, tr.Validate())
	bound := 1.44 * math.Log2(n+2)
	require.LessOrEqual(t, float64(tr.Height()), bound)
}

func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	tr := New()
	present := map[int]bool{}

	for i := 0; i < 3000; i++ {
		key := rng.Intn(500) - 250
		if rng.Intn(3) == 0 {
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
		require.NoError(t, tr.Validate())
	}

	expected := make([]int, 0, len(present))
	for k := range present {
		expected = append(expected, k)
	}
	slices.Sort(expected)
	require.Equal(t, expected, tree.Collect(tr.InOrder()))
	require.Equal(t, len(expected), tr.Len())
}

func TestTeardown(t *testing.T) {
	tr := New()
	for _, key := range []int{2, 1, 3} {
		require.NoError(t, tr.Insert(key))
	}
	root := tr.root

	require.NoError(t, tr.Teardown())
	require.Nil(t, tr.Root())
	require.Equal(t, 0, tr.Len())
	require.Nil(t, root.left)
	require.Nil(t, root.right)

	require.ErrorIs(t, tr.Teardown(), tree.ErrTornDown)
	require.ErrorIs(t, tr.Insert(4), tree.ErrTornDown)
	require.ErrorIs(t, tr.Delete(1), tree.ErrTornDown)
}
