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

// Delete removes key. A node with two children takes the key of its
// in-order successor and the successor node is spliced out instead.
func (t *Tree) Delete(key int) error {
	if t.torn {
		return tree.ErrTornDown
	}

	var path []*node
	z := t.root
	for z != nil && z.key != key {
		path = append(path, z)
		if key < z.key {
			z = z.left
		} else {
			z = z.right
		}
	}
	if z == nil {
		return errors.Wrapf(tree.ErrKeyNotFound, "delete %d", key)
	}

	if z.left != nil && z.right != nil {
		path = append(path, z)
		y := z.right
		for y.left != nil {
			path = append(path, y)
			y = y.left
		}
		z.key = y.key
		z = y
	}

	// z has at most one child, x takes its slot (x may be absent)
	x := z.left
	if x == nil {
		x = z.right
	}
	xLeft := len(path) > 0 && path[len(path)-1].left == z
	t.replace(path, z, x)
	removed := z.color
	z.left, z.right = nil, nil
	t.count--

	if removed == tree.Black {
		return t.deleteFixup(x, xLeft, path)
	}
	return nil
}

// deleteFixup restores equal black-height after a black node left the
// slot now held by x. path holds the ancestors of that slot, parent last.
// xLeft tells which side of the parent x is on while x is absent.
func (t *Tree) deleteFixup(x *node, xLeft bool, path []*node) error {
	for len(path) > 0 && !isRed(x) {
		parent := path[len(path)-1]
		if x != nil {
			xLeft = parent.left == x
		}

		if xLeft {
			w := parent.right
			if isRed(w) {
				w.color = tree.Black
				parent.color = tree.Red
				sub, err := rotateLeft(parent)
				if err != nil {
					return err
				}
				t.replace(path[:len(path)-1], parent, sub)
				path = append(path[:len(path)-1], sub, parent)
				w = parent.right
			}
			if w == nil || (!isRed(w.left) && !isRed(w.right)) {
				// an absent sibling behaves like a black one with black children
				if w != nil {
					w.color = tree.Red
				}
				x = parent
				path = path[:len(path)-1]
				continue
			}
			if !isRed(w.right) {
				w.left.color = tree.Black
				w.color = tree.Red
				sub, err := rotateRight(w)
				if err != nil {
					return err
				}
				parent.right = sub
				w = sub
			}
			w.color = parent.color
			parent.color = tree.Black
			w.right.color = tree.Black
			sub, err := rotateLeft(parent)
			if err != nil {
				return err
			}
			t.replace(path[:len(path)-1], parent, sub)
			x = t.root
			break
		}

		w := parent.left
		if isRed(w) {
			w.color = tree.Black
			parent.color = tree.Red
			sub, err := rotateRight(parent)
			if err != nil {
				return err
			}
			t.replace(path[:len(path)-1], parent, sub)
			path = append(path[:len(path)-1], sub, parent)
			w = parent.left
		}
		if w == nil || (!isRed(w.left) && !isRed(w.right)) {
			if w != nil {
				w.color = tree.Red
			}
			x = parent
			path = path[:len(path)-1]
			continue
		}
		if !isRed(w.left) {
			w.right.color = tree.Black
			w.color = tree.Red
			sub, err := rotateLeft(w)
			if err != nil {
				return err
			}
			parent.left = sub
			w = sub
		}
		w.color = parent.color
		parent.color = tree.Black
		w.left.color = tree.Black
		sub, err := rotateRight(parent)
		if err != nil {
			return err
		}
		t.replace(path[:len(path)-1], parent, sub)
		x = t.root
		break
	}

	if x != nil {
		x.color = tree.Black
	}
	return nil
}
