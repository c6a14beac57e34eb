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

// Package avl is an AVL balanced ordered set of int keys.
//
// Every node keeps |height(left) - height(right)| <= 1. Insert and Delete
// record the path from the root while descending and then re-height and
// rebalance that path bottom-up, so no call recurses with the tree depth.
//
// Note: a Tree is not thread safe, either access it from a single
// goroutine or wrap it with tree.Locked.
package avl

import "github.com/cybrota/arbor/tree"

type node struct {
	key         int
	height      int // leaf = 0, absent child = -1
	left, right *node
}

func (n *node) Key() int { return n.key }

func (n *node) Left() tree.View {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *node) Right() tree.View {
	if n.right == nil {
		return nil
	}
	return n.right
}

// Color - AVL nodes carry no color
func (n *node) Color() tree.Color { return tree.Black }

// Height - cached height of the subtree rooted here
func (n *node) Height() int { return n.height }

// Balance - height(left) - height(right)
func (n *node) Balance() int { return balanceOf(n) }

func heightOf(n *node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func balanceOf(n *node) int {
	if n == nil {
		return 0
	}
	return heightOf(n.left) - heightOf(n.right)
}

func (n *node) update() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}
