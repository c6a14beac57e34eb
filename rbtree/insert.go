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

// Insert adds key as a red leaf and repairs the colors on the way up. A
// key that is already present returns ErrDuplicateKey and leaves the tree
// untouched.
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

	z := &node{key: key, color: tree.Red}
	t.count++
	if len(path) == 0 {
		t.root = z
	} else if parent := path[len(path)-1]; key < parent.key {
		parent.left = z
	} else {
		parent.right = z
	}
	return t.insertFixup(z, path)
}

// insertFixup - path holds the ancestors of z, parent last
func (t *Tree) insertFixup(z *node, path []*node) error {
	for {
		if len(path) == 0 {
			z.color = tree.Black
			return nil
		}
		parent := path[len(path)-1]
		if parent.color == tree.Black {
			return nil
		}
		if len(path) < 2 {
			return errors.Wrapf(tree.ErrInvariant, "red root %d", parent.key)
		}
		grand := path[len(path)-2]
		uncle := grand.left
		if uncle == parent {
			uncle = grand.right
		}

		if isRed(uncle) {
			// push the red up two levels and try again there
			parent.color = tree.Black
			uncle.color = tree.Black
			grand.color = tree.Red
			z = grand
			path = path[:len(path)-2]
			continue
		}

		var sub *node
		var err error
		switch {
		case grand.left == parent && parent.left == z:
			sub, err = rotateRight(grand)
		case grand.right == parent && parent.right == z:
			sub, err = rotateLeft(grand)
		case grand.left == parent:
			sub, err = rotateLeftRight(grand)
		default:
			sub, err = rotateRightLeft(grand)
		}
		if err != nil {
			return err
		}
		sub.color = tree.Black
		grand.color = tree.Red
		t.replace(path[:len(path)-2], grand, sub)
		return nil
	}
}
