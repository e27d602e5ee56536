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

 **tsearch %s**

An SVR4 style AVL search tree with a command line to load, walk, edit and check it.

Built with Go %s

# 1. Commands
* **walk**: load keys and print every visit of a depth-first walk (preorder, postorder, endorder, leaf)
* **find** KEY...: report whether each key is present
* **delete** KEY...: delete keys, showing the parent of each deleted node
* **check**: validate ordering, heights and balance against the AVL bound
* **bench**: random insert/delete workload with a progress bar
* **history**: rank your shell history by frequency and recency
* **shell**: interactive editor over one tree
* **config**: show or create ~/.tsearch.yaml

# 2. Key sources
* One key per line, from --source FILE (repeatable) or stdin
* Blank lines and lines starting with # are skipped

# 3. Comparators
* lexical: byte order
* fold: case-insensitive
* numeric: numbers by value, then text
* natural: digits compared as numbers inside text
* collate: language aware, pick with --language

# 4. Node limit
* --node-limit N preallocates N nodes; inserts beyond it fail and are counted, the tree is left unchanged

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
