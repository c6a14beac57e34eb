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
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/arbor/tree"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

type OpKind int

const (
	OpInsert OpKind = iota
	OpDelete
	OpSearch
	OpPrint
	OpPreOrder
	OpInOrder
	OpHeight
	OpCheck
)

// Operation is one parsed step of an apply script
type Operation struct {
	Kind OpKind
	Key  int
}

func (op Operation) String() string {
	switch op.Kind {
	case OpInsert:
		return fmt.Sprintf("insert %d", op.Key)
	case OpDelete:
		return fmt.Sprintf("delete %d", op.Key)
	case OpSearch:
		return fmt.Sprintf("search %d", op.Key)
	case OpPrint:
		return "print"
	case OpPreOrder:
		return "preorder"
	case OpInOrder:
		return "inorder"
	case OpHeight:
		return "height"
	default:
		return "check"
	}
}

var keyedWords = map[string]OpKind{
	"insert": OpInsert,
	"add":    OpInsert,
	"delete": OpDelete,
	"remove": OpDelete,
	"search": OpSearch,
	"find":   OpSearch,
}

var plainWords = map[string]OpKind{
	"print":    OpPrint,
	"preorder": OpPreOrder,
	"inorder":  OpInOrder,
	"height":   OpHeight,
	"check":    OpCheck,
}

// splitOperations splits a script line into words, honoring quotes
func splitOperations(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %v", line, err)
	}
	return args, nil
}

// ParseOperations turns words into operations. Accepted forms are +k, -k,
// ?k, a bare k (insert), "insert k", "delete k", "search k" and the plain
// words print, preorder, inorder, height and check. Deleting a negative
// key is written "--1" or "delete -1".
func ParseOperations(words []string) ([]Operation, error) {
	var ops []Operation
	for i := 0; i < len(words); i++ {
		word := strings.ToLower(words[i])

		if kind, ok := plainWords[word]; ok {
			ops = append(ops, Operation{Kind: kind})
			continue
		}

		if kind, ok := keyedWords[word]; ok {
			if i+1 == len(words) {
				return nil, fmt.Errorf("%s: missing key", word)
			}
			i++
			key, err := strconv.Atoi(words[i])
			if err != nil {
				return nil, fmt.Errorf("%s: invalid key %q", word, words[i])
			}
			ops = append(ops, Operation{Kind: kind, Key: key})
			continue
		}

		if word == "" {
			return nil, fmt.Errorf("empty operation")
		}
		kind, digits := OpInsert, word
		switch word[0] {
		case '+':
			digits = word[1:]
		case '-':
			// "-5" deletes 5, "+-5" inserts -5
			kind, digits = OpDelete, word[1:]
		case '?':
			kind, digits = OpSearch, word[1:]
		}
		key, err := strconv.Atoi(digits)
		if err != nil {
			return nil, fmt.Errorf("unknown operation %q", words[i])
		}
		ops = append(ops, Operation{Kind: kind, Key: key})
	}
	return ops, nil
}

// ParseLine splits and parses one script line
func ParseLine(line string) ([]Operation, error) {
	words, err := splitOperations(line)
	if err != nil {
		return nil, err
	}
	return ParseOperations(words)
}

// ReadScript parses an operation script, one or more operations per line.
// Blank lines and lines starting with # are skipped.
func ReadScript(r io.Reader) ([]Operation, error) {
	var ops []Operation
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parsed, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		ops = append(ops, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

func readScriptFile(path string) ([]Operation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadScript(file)
}

// Session applies operations to one engine and reports on out
type Session struct {
	engine   tree.Engine
	renderer *Renderer
	trace    bool
	out      io.Writer
}

func NewSession(engine tree.Engine, renderer *Renderer, trace bool, out io.Writer) *Session {
	return &Session{engine: engine, renderer: renderer, trace: trace, out: out}
}

// Apply runs op. A duplicate insert or a missing key is reported on out and
// is not an error; anything else (a failed check, a torn down tree) is.
func (s *Session) Apply(op Operation) error {
	switch op.Kind {
	case OpInsert:
		err := s.engine.Insert(op.Key)
		if errors.Is(err, tree.ErrDuplicateKey) {
			fmt.Fprintf(s.out, "Insertion skipped: %d already exists\n", op.Key)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Inserted: %d\n", op.Key)

	case OpDelete:
		err := s.engine.Delete(op.Key)
		if errors.Is(err, tree.ErrKeyNotFound) {
			fmt.Fprintf(s.out, "Key %d not found\n", op.Key)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Removed: %d\n", op.Key)

	case OpSearch:
		var path []string
		var trace tree.Tracer
		if s.trace {
			trace = func(n tree.View) {
				path = append(path, strconv.Itoa(n.Key()))
			}
		}
		n, found := s.engine.SearchTrace(op.Key, trace)
		if s.trace && len(path) > 0 {
			fmt.Fprintf(s.out, "Path: %s\n", strings.Join(path, " -> "))
		}
		switch {
		case !found:
			fmt.Fprintf(s.out, "Key %d not found\n", op.Key)
		case s.engine.Kind() == tree.KindRedBlack:
			fmt.Fprintf(s.out, "Found: %d (%s)\n", n.Key(), n.Color())
		default:
			fmt.Fprintf(s.out, "Found: %d\n", n.Key())
		}

	case OpPrint:
		fmt.Fprintln(s.out, s.renderer.Render(s.engine.Root()))

	case OpPreOrder:
		fmt.Fprintln(s.out, joinKeys(tree.Collect(s.engine.PreOrder())))

	case OpInOrder:
		fmt.Fprintln(s.out, joinKeys(tree.Collect(s.engine.InOrder())))

	case OpHeight:
		fmt.Fprintf(s.out, "Height: %d\n", s.engine.Height())

	case OpCheck:
		if err := s.engine.Validate(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "OK: %d keys, height %d\n", s.engine.Len(), s.engine.Height())
	}
	return nil
}

// ApplyAll runs ops in order and stops at the first error
func (s *Session) ApplyAll(ops []Operation) error {
	for _, op := range ops {
		if err := s.Apply(op); err != nil {
			return errors.Wrapf(err, "%s", op)
		}
	}
	return nil
}

func joinKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return strings.Join(parts, " ")
}
