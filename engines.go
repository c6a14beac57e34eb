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
	"fmt"

	"github.com/cybrota/arbor/avl"
	"github.com/cybrota/arbor/rbtree"
	"github.com/cybrota/arbor/tree"
)

var engineKinds = []tree.Kind{tree.KindAVL, tree.KindRedBlack}

// newEngine returns an empty engine of the given kind
func newEngine(kind tree.Kind) tree.Engine {
	if kind == tree.KindAVL {
		return avl.New()
	}
	return rbtree.New()
}

// resolveEngine picks the engine named by the --engine flag, falling back
// to the configured one.
func resolveEngine(flagValue string, config *Config) (tree.Kind, error) {
	name := flagValue
	if name == "" {
		name = config.Engine
	}
	kind, ok := tree.ParseKind(name)
	if !ok {
		return "", fmt.Errorf("unknown engine %q (expected avl or rb)", name)
	}
	return kind, nil
}

func engineTitle(kind tree.Kind) string {
	if kind == tree.KindAVL {
		return "AVL"
	}
	return "Red-Black"
}

func otherKind(kind tree.Kind) tree.Kind {
	if kind == tree.KindAVL {
		return tree.KindRedBlack
	}
	return tree.KindAVL
}
