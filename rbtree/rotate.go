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

// Rotations only rewire links. Colors are changed by the fixups, and the
// caller links the returned subtree root into the old parent slot.

// rotateLeft lifts p.right into p's position
func rotateLeft(p *node) (*node, error) {
	if p == nil || p.right == nil {
		return p, errors.Wrap(tree.ErrInvariant, "rotate left without a right child")
	}
	u := p.right
	p.right = u.left
	u.left = p
	return u, nil
}

// rotateRight lifts p.left into p's position
func rotateRight(p *node) (*node, error) {
	if p == nil || p.left == nil {
		return p, errors.Wrap(tree.ErrInvariant, "rotate right without a left child")
	}
	u := p.left
	p.left = u.right
	u.right = p
	return u, nil
}

// rotateLeftRight repairs a left child that leans right
func rotateLeftRight(p *node) (*node, error) {
	if p == nil {
		return p, errors.Wrap(tree.ErrInvariant, "double rotation on an absent node")
	}
	l, err := rotateLeft(p.left)
	if err != nil {
		return p, err
	}
	p.left = l
	return rotateRight(p)
}

// rotateRightLeft repairs a right child that leans left
func rotateRightLeft(p *node) (*node, error) {
	if p == nil {
		return p, errors.Wrap(tree.ErrInvariant, "double rotation on an absent node")
	}
	r, err := rotateRight(p.right)
	if err != nil {
		return p, err
	}
	p.right = r
	return rotateLeft(p)
}
