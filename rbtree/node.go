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

// Package rbtree is a red-black balanced ordered set of int keys.
//
// Red-black trees keep the following properties:
//  1. Every node is either red or black
//  2. The root is black
//  3. A red node has no red child
//  4. Every path from a node down to an absent child passes through the
//     same number of black nodes
//  5. New nodes start red; absent children count as black
//
// Nodes carry no parent pointer. Insert and Delete record the ancestor
// stack on the way down and the fixups walk that stack back up.
//
// Note: a Tree is not thread safe, either access it from a single
// goroutine or wrap it with tree.Locked.
package rbtree

import "github.com/cybrota/arbor/tree"

type node struct {
	key         int
	color       tree.Color
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

func (n *node) Color() tree.Color { return n.color }

// absent nodes are black
func isRed(n *node) bool {
	return n != nil && n.color == tree.Red
}

func height(n *node) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.left), height(n.right))
}
