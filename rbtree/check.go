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
	"github.com/cybrota/arbor/tree"
	"github.com/pkg/errors"
)

// Validate checks key order, the root color, red-red adjacency and that
// every path carries the same number of black nodes.
func (t *Tree) Validate() error {
	if t.torn {
		return tree.ErrTornDown
	}
	if isRed(t.root) {
		return errors.Wrapf(tree.ErrInvariant, "root %d is red", t.root.key)
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

// BlackHeight - black nodes below the root on any path, 0 when empty
func (t *Tree) BlackHeight() int {
	if t.root == nil {
		return 0
	}
	bh := 0
	for n := t.root.left; n != nil; n = n.left {
		if n.color == tree.Black {
			bh++
		}
	}
	return bh
}

// internal: returns node count and black-height including n itself
func check(n *node, lo, hi *int) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if (lo != nil && n.key <= *lo) || (hi != nil && n.key >= *hi) {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "key %d out of order", n.key)
	}
	if n.color != tree.Red && n.color != tree.Black {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "key %d has color %d", n.key, n.color)
	}
	if isRed(n) && (isRed(n.left) || isRed(n.right)) {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "red key %d has a red child", n.key)
	}
	lc, lbh, err := check(n.left, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := check(n.right, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, errors.Wrapf(tree.ErrInvariant, "key %d has black-heights %d and %d", n.key, lbh, rbh)
	}
	bh := lbh
	if n.color == tree.Black {
		bh++
	}
	return 1 + lc + rc, bh, nil
}
