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

package tree_test

import (
	"sync"
	"testing"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/rbtree"
	"github.com/cybrota/arbor/tree"
	"github.com/stretchr/testify/require"
)

func TestLockedConcurrentWriters(t *testing.T) {
	for _, engine := range []tree.Engine{avl.New(), rbtree.New()} {
		t.Run(string(engine.Kind()), func(t *testing.T) {
			locked := tree.NewLocked(engine)

			var wg sync.WaitGroup
			for w := 0; w < 8; w++ {
				wg.Add(1)
				go func(base int) {
					defer wg.Done()
					for i := 0; i < 200; i++ {
						_ = locked.Insert(base*1000 + i)
						locked.Search(base*1000 + i/2)
						_ = locked.Height()
					}
				}(w)
			}
			wg.Wait()

			require.Equal(t, 1600, locked.Len())
			require.NoError(t, locked.Validate())

			keys := tree.Collect(locked.InOrder())
			require.Len(t, keys, 1600)
			require.IsIncreasing(t, keys)
		})
	}
}

func TestLockedPassesErrorsThrough(t *testing.T) {
	locked := tree.NewLocked(rbtree.New())
	require.NoError(t, locked.Insert(1))
	require.ErrorIs(t, locked.Insert(1), tree.ErrDuplicateKey)
	require.ErrorIs(t, locked.Delete(2), tree.ErrKeyNotFound)
	require.Equal(t, []int{1}, tree.Collect(locked.PreOrder()))

	require.NoError(t, locked.Teardown())
	require.ErrorIs(t, locked.Insert(3), tree.ErrTornDown)
}
