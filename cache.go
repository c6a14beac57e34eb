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
	"strconv"
	"strings"
	"time"

	"github.com/cybrota/arbor/tree"
	"github.com/patrickmn/go-cache"
)

const (
	// Diagrams are cheap to rebuild, keep them only while the session is active
	diagramCacheExpiration = 10 * time.Minute
	// Clean up expired entries every 5 minutes
	diagramCacheCleanup = 5 * time.Minute
)

// NewDiagramCache creates a cache for rendered diagrams. The TUI redraws on
// every message, while the tree only changes on insert and delete.
func NewDiagramCache() *cache.Cache {
	return cache.New(diagramCacheExpiration, diagramCacheCleanup)
}

func CacheDiagram(c *cache.Cache, key string, diagram string) {
	c.Set(key, diagram, diagramCacheExpiration)
}

func GetDiagram(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// shapeSignature identifies what a diagram depends on: engine kind,
// render options, keys, colors and shape.
func shapeSignature(kind tree.Kind, opts RenderConfig, root tree.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s|%d|%d|%t|", kind, opts.CellWidth, opts.MaxLevels, opts.ShowBalance)

	var walk func(n tree.View)
	walk = func(n tree.View) {
		if n == nil {
			b.WriteByte('.')
			return
		}
		b.WriteString(strconv.Itoa(n.Key()))
		if n.Color() == tree.Red {
			b.WriteByte('r')
		}
		b.WriteByte('(')
		walk(n.Left())
		b.WriteByte(',')
		walk(n.Right())
		b.WriteByte(')')
	}
	walk(root)
	return b.String()
}

// GetOrRenderDiagram returns the cached diagram of engine, rendering and
// caching it on a miss.
func GetOrRenderDiagram(c *cache.Cache, r *Renderer, engine tree.Engine) string {
	key := shapeSignature(engine.Kind(), r.opts, engine.Root())
	if diagram := GetDiagram(c, key); diagram != "" {
		return diagram
	}
	diagram := r.Render(engine.Root())
	CacheDiagram(c, key, diagram)
	return diagram
}
