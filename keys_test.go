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
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cybrota/arbor/tree"
)

func TestReadKeys(t *testing.T) {
	input := `# demo sequence
4
1, 6
0 -1   # negative keys are fine

3	2
5
`
	keys, err := readKeys(strings.NewReader(input))
	if err != nil {
		t.Fatalf("readKeys returned error: %v", err)
	}
	expected := []int{4, 1, 6, 0, -1, 3, 2, 5}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("readKeys: expected %v, got %v", expected, keys)
	}

	if _, err := readKeys(strings.NewReader("1\n2\nthree\n")); err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("readKeys: expected error naming line 3, got %v", err)
	}
}

func TestPopulateEngine(t *testing.T) {
	engine := newEngine(tree.KindRedBlack)
	inserted, duplicates, err := populateEngine(engine, []int{3, 1, 3, 2, 1})
	if err != nil {
		t.Fatalf("populateEngine returned error: %v", err)
	}
	if inserted != 3 || duplicates != 2 {
		t.Errorf("populateEngine = (%d, %d); want (3, 2)", inserted, duplicates)
	}
	if err := engine.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadKeysFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.txt")
	if err := os.WriteFile(path, []byte("10\n20\n30\n"), 0644); err != nil {
		t.Fatal(err)
	}

	engine := newEngine(tree.KindAVL)
	if err := loadKeysFile(engine, path); err != nil {
		t.Fatalf("loadKeysFile returned error: %v", err)
	}
	if got := tree.Collect(engine.PreOrder()); !reflect.DeepEqual(got, []int{20, 10, 30}) {
		t.Errorf("pre-order = %v; want [20 10 30]", got)
	}

	if err := loadKeysFile(engine, ""); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
	if err := loadKeysFile(engine, filepath.Join(dir, "missing.txt")); err == nil {
		t.Error("expected error for missing keys file")
	}
}
