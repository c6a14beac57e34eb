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
	"iter"

	"github.com/cybrota/arbor/tree"
)

// Tree - holds the root node of a red-black tree
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
	return tree.KindRedBlack
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
	return height(t.root)
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
