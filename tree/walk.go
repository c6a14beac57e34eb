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

package tree

import "iter"

// PreOrder yields keys node, left, right. The sequence is lazy and can be
// ranged over any number of times.
func PreOrder(root View) iter.Seq[int] {
	return func(yield func(int) bool) {
		if root == nil {
			return
		}
		stack := []View{root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Key()) {
				return
			}
			// right first so left pops first
			if r := n.Right(); r != nil {
				stack = append(stack, r)
			}
			if l := n.Left(); l != nil {
				stack = append(stack, l)
			}
		}
	}
}

// InOrder yields keys in ascending order
func InOrder(root View) iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []View
		n := root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.Left()
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Key()) {
				return
			}
			n = n.Right()
		}
	}
}

// Height returns the number of edges on the longest root-to-leaf path,
// -1 for an empty tree.
func Height(root View) int {
	if root == nil {
		return -1
	}
	h := -1
	level := []View{root}
	for len(level) > 0 {
		h++
		var next []View
		for _, n := range level {
			if l := n.Left(); l != nil {
				next = append(next, l)
			}
			if r := n.Right(); r != nil {
				next = append(next, r)
			}
		}
		level = next
	}
	return h
}

// Layers returns the tree breadth first, one slice per level. Level d has
// 2^d entries; absent positions are nil so callers can lay out a complete
// grid. The last level always holds at least one node.
func Layers(root View) [][]View {
	if root == nil {
		return nil
	}
	var layers [][]View
	level := []View{root}
	for {
		layers = append(layers, level)
		next := make([]View, 0, 2*len(level))
		present := false
		for _, n := range level {
			if n == nil {
				next = append(next, nil, nil)
				continue
			}
			l, r := n.Left(), n.Right()
			if l != nil || r != nil {
				present = true
			}
			next = append(next, l, r)
		}
		if !present {
			return layers
		}
		level = next
	}
}

// Collect drains a key sequence into a slice
func Collect(seq iter.Seq[int]) []int {
	keys := []int{}
	for k := range seq {
		keys = append(keys, k)
	}
	return keys
}
