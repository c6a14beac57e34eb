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
	"github.com/cybrota/arbor/tree"
	"github.com/pkg/errors"
)

// Validate checks key order, cached heights and balance factors
func (t *Tree) Validate() error {
	if t.torn {
		return tree.ErrTornDown
	}
	count, _, err := check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.count {
		return errors.Wrapf(tree.ErrInvariant, "count %d but %d nodes reachable", t.count, count)
	}
	return nil
}

// internal: returns node count and height of the subtree
func check(n *node, lo, hi *int) (int, int, error) {
	if n == nil {
		return 0, -1, nil
	}
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "key %d out of order", n.key)
	}
	lc, lh, err := check(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rh, err := check(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "key %d caches height %d, actual %d", n.key, n.height, h)
	}
	if f := lh - rh; f < -1 || f > 1 {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "key %d has balance factor %d", n.key, f)
	}
	return 1 + lc + rc, h, nil
}
