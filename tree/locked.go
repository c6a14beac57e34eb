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

import (
	"iter"
	"slices"
	"sync"
)

// Locked serializes access to an Engine. Each Insert or Delete, rebalance
// included, runs under the write lock so readers never observe a tree in
// the middle of a rotation.
type Locked struct {
	mtx    sync.RWMutex
	engine Engine
}

var _ Engine = (*Locked)(nil)

// NewLocked wraps engine. The caller must not use engine directly afterwards.
func NewLocked(engine Engine) *Locked {
	return &Locked{engine: engine}
}

func (l *Locked) Kind() Kind {
	return l.engine.Kind()
}

func (l *Locked) Insert(key int) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.engine.Insert(key)
}

func (l *Locked) Delete(key int) error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.engine.Delete(key)
}

func (l *Locked) Search(key int) (View, bool) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.engine.Search(key)
}

// SearchTrace calls trace while holding the read lock; trace must not
// call back into l.
func (l *Locked) SearchTrace(key int, trace Tracer) (View, bool) {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.engine.SearchTrace(key, trace)
}

func (l *Locked) Height() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.engine.Height()
}

func (l *Locked) Len() int {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.engine.Len()
}

// Root returns the current root. The handle is only stable until the next
// mutation.
func (l *Locked) Root() View {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.engine.Root()
}

// PreOrder snapshots the keys under the read lock
func (l *Locked) PreOrder() iter.Seq[int] {
	l.mtx.RLock()
	keys := Collect(l.engine.PreOrder())
	l.mtx.RUnlock()
	return slices.Values(keys)
}

// InOrder snapshots the keys under the read lock
func (l *Locked) InOrder() iter.Seq[int] {
	l.mtx.RLock()
	keys := Collect(l.engine.InOrder())
	l.mtx.RUnlock()
	return slices.Values(keys)
}

func (l *Locked) Validate() error {
	l.mtx.RLock()
	defer l.mtx.RUnlock()
	return l.engine.Validate()
}

func (l *Locked) Teardown() error {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.engine.Teardown()
}
