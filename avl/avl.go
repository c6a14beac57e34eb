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
	"iter"

	"github.com/cybrota/arbor/tree"
	"github.com/pkg/errors"
)

// Tree - holds the root node of an AVL tree
type Tree struct {
	root  *node
	count int
	torn  bool
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{}
}

func (t *Tree) Kind() tree.Kind {
	return tree.KindAVL
}

// Len - number of keys currently stored
func (t *Tree) Len() int {
	return t.count
}

// Root - the root node, nil when empty
func (t *Tree) Root() tree.View {
	if t.root == nil {
		return nil
	}
	return t.root
}

// Height - -1 for an empty tree, 0 for a single node
func (t *Tree) Height() int {
	return heightOf(t.root)
}

// Insert adds key. A key that is already present returns ErrDuplicateKey
// and leaves the tree untouched.
func (t *Tree) Insert(key int) error {
	if t.torn {
		return tree.ErrTornDown
	}

	var path []*node
	for n := t.root; n != nil; {
		path = append(path, n)
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return errors.Wrapf(tree.ErrDuplicateKey, "insert %d", key)
		}
	}

	leaf := &node{key: key}
	t.count++
	if len(path) == 0 {
		t.root = leaf
		return nil
	}
	parent := path[len(path)-1]
	if key < parent.key {
		parent.left = leaf
	} else {
		parent.right = leaf
	}
	return t.fixup(path)
}

// Delete removes key. A node with two children takes the key of its
// in-order predecessor and the predecessor node is unlinked instead.
func (t *Tree) Delete(key int) error {
	if t.torn {
		return tree.ErrTornDown
	}

	var path []*node
	n := t.root
	for n != nil && n.key != key {
		path = append(path, n)
		if key < n.key {
			n = n.left
		} else {
			n = n.right
		}
	}
	if n == nil {
		return errors.Wrapf(tree.ErrKeyNotFound, "delete %d", key)
	}

	if n.left != nil && n.right != nil {
		path = append(path, n)
		pred := n.left
		for pred.right != nil {
			path = append(path, pred)
			pred = pred.right
		}
		n.key = pred.key
		n = pred
	}

	// n has at most one child now
	child := n.left
	if child == nil {
		child = n.right
	}
	t.replace(path, n, child)
	n.left, n.right = nil, nil
	t.count--

	return t.fixup(path)
}

// Search - find the node holding key
func (t *Tree) Search(key int) (tree.View, bool) {
	return t.SearchTrace(key, nil)
}

// SearchTrace - like Search, reporting each visited node to trace
func (t *Tree) SearchTrace(key int, trace tree.Tracer) (tree.View, bool) {
	for n := t.root; n != nil; {
		if trace != nil {
			trace(n)
		}
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

func (t *Tree) PreOrder() iter.Seq[int] {
	return tree.PreOrder(t.Root())
}

func (t *Tree) InOrder() iter.Seq[int] {
	return tree.InOrder(t.Root())
}

// Teardown releases every node children first. The tree cannot be used
// afterwards.
func (t *Tree) Teardown() error {
	if t.torn {
		return tree.ErrTornDown
	}
	release(t.root)
	t.root = nil
	t.count = 0
	t.torn = true
	return nil
}

func release(n *node) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	n.left, n.right = nil, nil
}

// fixup re-heights and rebalances path deepest first, linking every
// rotated subtree back into its parent (or the root).
func (t *Tree) fixup(path []*node) error {
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		n.update()
		sub, err := rebalance(n)
		if err != nil {
			return err
		}
		if sub != n {
			t.replace(path[:i], n, sub)
		}
	}
	return nil
}

// replace puts sub where old hangs; ancestors[len-1] is old's parent
func (t *Tree) replace(ancestors []*node, old, sub *node) {
	if len(ancestors) == 0 {
		t.root = sub
		return
	}
	parent := ancestors[len(ancestors)-1]
	if parent.left == old {
		parent.left = sub
	} else {
		parent.right = sub
	}
}
