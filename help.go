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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Arbor %s**

Watch AVL and Red-Black trees balance themselves, one insert or delete at a time.

Built with Go %s

# 1. Commands
* **arbor** or **arbor run**: interactive UI, type operations and watch the diagram change
* **arbor menu**: numbered menu (0 exit, 1 insert, 2 remove, 3 print, 4 pre-order, 5 search, 6 in-order, 7 height)
* **arbor apply -- +4 +1 -4 ?1 print**: run operations headless, or read them with --script
* **arbor demo**: insert 4 1 6 0 -1 3 2 5 into both engines and print them side by side
* **arbor bench**: insert and delete random keys, compare the height with its worst case bound
* **arbor check --keys file**: load keys and validate every tree property
* **arbor settings**: show or create ~/.arbor.yaml

# 2. Operations
* **+k** or **insert k**: insert k (a bare number also inserts)
* **-k** or **delete k**: delete k, use **--1** or **delete -1** for negative keys
* **?k** or **search k**: search k and show the visited path
* **print**, **preorder**, **inorder**, **height**, **check**

# 3. Engines
* **avl**: every node keeps its subtree heights within one of each other
* **rb**: red-black, no red node has a red child and every path has the same number of black nodes

Pick one with --engine or the engine key of the config file.

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}

// keyHelpMarkdown is shown by the UI on f1
const keyHelpMarkdown = `# Keys

| Key | Action |
|-----|--------|
| enter | apply the operations typed in the input |
| tab | switch between AVL and Red-Black |
| f1 | toggle this help |
| ctrl+y | copy the in-order keys to the clipboard |
| ctrl+l | clear the operation log |
| pgup / pgdown | scroll the diagram |
| esc | quit |

# Operations

` + "`+k` insert, `-k` delete, `?k` search, `print`, `preorder`, `inorder`, `height`, `check`." + `
A bare number inserts it. Several operations may be typed at once: ` + "`+5 +3 -5`."
