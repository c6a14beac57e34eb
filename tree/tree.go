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

// Package tree holds the contract shared by the balanced ordered-set
// engines: the Engine interface, the read-only View handle consumed by
// renderers, the error taxonomy and the traversal helpers.
//
// Note: an engine is not safe for concurrent use. Wrap it with Locked
// when more than one goroutine needs access.
package tree

import "iter"

// Kind identifies a balancing strategy
type Kind string

const (
	KindAVL      Kind = "avl"
	KindRedBlack Kind = "rb"
)

// ParseKind maps user input (config, flags) to a Kind
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "avl", "AVL":
		return KindAVL, true
	case "rb", "RB", "redblack", "red-black":
		return KindRedBlack, true
	}
	return "", false
}

// Color is the node color tag. AVL nodes always report Black.
type Color uint8

const (
	Black Color = iota
	Red
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// View is a read-only handle to a node. Left and Right return a nil
// interface (never a typed nil) for an absent child.
type View interface {
	Key() int
	Left() View
	Right() View
	Color() Color
}

// Tracer receives every node visited by a search, root first.
type Tracer func(n View)

// Engine is the surface the presentation layer talks to.
type Engine interface {
	Kind() Kind
	Insert(key int) error
	Delete(key int) error
	Search(key int) (View, bool)
	SearchTrace(key int, trace Tracer) (View, bool)
	Height() int
	Len() int
	Root() View
	PreOrder() iter.Seq[int]
	InOrder() iter.Seq[int]
	Validate() error
	Teardown() error
}
