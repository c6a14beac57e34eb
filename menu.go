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
	"strconv"
)

const menuText = `
0 - Exit
1 - Insert
2 - Remove
3 - Print
4 - Show pre-order
5 - Search
6 - Show in-order
7 - Height
`

var menuOps = map[int]OpKind{
	1: OpInsert,
	2: OpDelete,
	3: OpPrint,
	4: OpPreOrder,
	5: OpSearch,
	6: OpInOrder,
	7: OpHeight,
}

var menuPrompts = map[OpKind]string{
	OpInsert: "Key to insert: ",
	OpDelete: "Key to remove: ",
	OpSearch: "Key to search: ",
}

// runMenu drives session from a numbered menu read from in. It returns
// when the user picks 0 or in is exhausted.
func runMenu(in io.Reader, session *Session) error {
	out := session.out
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	for {
		fmt.Fprint(out, menuText)
		fmt.Fprint(out, "Choice: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		choice, err := strconv.Atoi(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "\nInvalid option: %q\n", scanner.Text())
			continue
		}
		if choice == 0 {
			fmt.Fprintln(out, "\nExiting...")
			return nil
		}

		kind, ok := menuOps[choice]
		if !ok {
			fmt.Fprintf(out, "\nInvalid option: %d\n", choice)
			continue
		}

		op := Operation{Kind: kind}
		if prompt, keyed := menuPrompts[kind]; keyed {
			fmt.Fprint(out, "\n"+prompt)
			if !scanner.Scan() {
				fmt.Fprintln(out)
				return scanner.Err()
			}
			key, err := strconv.Atoi(scanner.Text())
			if err != nil {
				fmt.Fprintf(out, "\nInvalid key: %q\n", scanner.Text())
				continue
			}
			op.Key = key
		}

		fmt.Fprintln(out)
		if err := session.Apply(op); err != nil {
			return err
		}
	}
}
