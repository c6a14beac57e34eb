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
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/tree"
	"github.com/pkg/errors"
)

// readKeys parses one integer per line. Blank lines and # comments are
// skipped, several keys may share a line when separated by spaces or commas.
func readKeys(r io.Reader) ([]int, error) {
	var keys []int

	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.FieldsFunc(line, func(c rune) bool { return c == ',' || c == ' ' || c == '\t' }) {
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid key %q", lineNo, field)
			}
			keys = append(keys, key)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func readKeysFile(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("keys file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()
	return readKeys(file)
}

// populateEngine inserts keys in order. Duplicates are counted and logged,
// any other error aborts.
func populateEngine(engine tree.Engine, keys []int) (inserted, duplicates int, err error) {
	for _, key := range keys {
		err := engine.Insert(key)
		if errors.Is(err, tree.ErrDuplicateKey) {
			duplicates++
			continue
		}
		if err != nil {
			return inserted, duplicates, err
		}
		inserted++
	}
	if duplicates > 0 {
		log.Printf("Skipped %d duplicate keys", duplicates)
	}
	return inserted, duplicates, nil
}

// loadKeysFile reads path into engine; an empty path is a no-op
func loadKeysFile(engine tree.Engine, path string) error {
	if path == "" {
		return nil
	}
	keys, err := readKeysFile(path)
	if err != nil {
		return err
	}
	_, _, err = populateEngine(engine, keys)
	return err
}
