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

package main

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/arbor/tree"
)

const emptyTreeMessage = "The tree is empty."

// balancer is implemented by AVL nodes
type balancer interface {
	Balance() int
}

// Renderer draws a tree as text. It only reads tree.View handles, so it
// works for either engine.
type Renderer struct {
	opts RenderConfig
	red  lipgloss.Style
}

// NewRenderer - color=false leaves RED keys unstyled
func NewRenderer(opts RenderConfig, color bool) *Renderer {
	r := &Renderer{opts: opts, red: lipgloss.NewStyle()}
	if color {
		r.red = StyleRedNode()
	}
	return r
}

// Render picks the level layout for shallow trees and the sideways view
// once the tree has more than MaxLevels levels.
func (r *Renderer) Render(root tree.View) string {
	if root == nil {
		return emptyTreeMessage
	}
	if tree.Height(root)+1 > r.opts.MaxLevels {
		return r.Sideways(root)
	}
	return r.Levels(root)
}

func (r *Renderer) label(n tree.View) string {
	s := strconv.Itoa(n.Key())
	if !r.opts.ShowBalance {
		return s
	}
	if b, ok := n.(balancer); ok {
		return s + ":" + strconv.Itoa(b.Balance())
	}
	if n.Color() == tree.Red {
		return s + ":R"
	}
	return s + ":B"
}

func (r *Renderer) paint(n tree.View, text string) string {
	if n.Color() == tree.Red {
		return r.red.Render(text)
	}
	return text
}

// Levels prints one row per depth. A level with d levels below it gets
// slots 2^d cells apart, and a connector row joins every parent to its
// children:
//
//	     2
//	 ┌───┴───┐
//	 1       3
func (r *Renderer) Levels(root tree.View) string {
	layers := tree.Layers(root)
	if len(layers) == 0 {
		return emptyTreeMessage
	}

	unit := r.opts.CellWidth
	for _, layer := range layers {
		for _, n := range layer {
			if n != nil {
				unit = max(unit, len(r.label(n))+1)
			}
		}
	}
	depth := len(layers)

	// center column of slot i on level lv
	center := func(lv, i int, text string) int {
		return slotStart(depth, lv, i, unit) + (unit-len(text))/2 + (len(text)-1)/2
	}

	var b strings.Builder
	for lv, layer := range layers {
		col := 0
		for i, n := range layer {
			if n == nil {
				continue
			}
			text := r.label(n)
			start := slotStart(depth, lv, i, unit) + (unit-len(text))/2
			b.WriteString(strings.Repeat(" ", start-col))
			b.WriteString(r.paint(n, text))
			col = start + len(text)
		}

		if lv+1 == depth {
			break
		}
		b.WriteByte('\n')

		row := []rune(strings.Repeat(" ", ((1<<depth)-1)*unit))
		next := layers[lv+1]
		for i, n := range layer {
			if n == nil {
				continue
			}
			pc := center(lv, i, r.label(n))
			left, right := next[2*i], next[2*i+1]
			if left != nil {
				lc := center(lv+1, 2*i, r.label(left))
				row[lc] = '┌'
				for c := lc + 1; c < pc; c++ {
					row[c] = '─'
				}
			}
			if right != nil {
				rc := center(lv+1, 2*i+1, r.label(right))
				row[rc] = '┐'
				for c := pc + 1; c < rc; c++ {
					row[c] = '─'
				}
			}
			switch {
			case left != nil && right != nil:
				row[pc] = '┴'
			case left != nil:
				row[pc] = '┘'
			case right != nil:
				row[pc] = '└'
			}
		}
		b.WriteString(strings.TrimRight(string(row), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

func slotStart(depth, lv, i, unit int) int {
	lead := ((1 << (depth - lv - 1)) - 1) * unit
	stride := (1 << (depth - lv)) * unit
	return lead + i*stride
}

// Sideways prints the tree rotated a quarter turn: right subtree on top,
// one line per key, indented by depth.
func (r *Renderer) Sideways(root tree.View) string {
	var lines []string
	var walk func(n tree.View, depth int)
	walk = func(n tree.View, depth int) {
		if n == nil {
			return
		}
		walk(n.Right(), depth+1)
		lines = append(lines, strings.Repeat(" ", depth*r.opts.CellWidth)+r.paint(n, r.label(n)))
		walk(n.Left(), depth+1)
	}
	walk(root, 0)
	return strings.Join(lines, "\n")
}
