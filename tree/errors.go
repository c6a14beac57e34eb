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

import "github.com/pkg/errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	// The tree is left unchanged.
	ErrDuplicateKey = errors.New("key already present")

	// ErrKeyNotFound is returned by Delete when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvariant signals an internal bug: a rotation without the child
	// it pivots on, or a Validate failure.
	ErrInvariant = errors.New("tree invariant violated")

	// ErrTornDown is returned by Insert, Delete, Validate and Teardown once
	// the tree has been torn down.
	ErrTornDown = errors.New("tree already torn down")
)
