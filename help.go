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

 **Shelf %s**

A personal book catalog kept in a self-balancing search tree. Look books up by ISBN,
title or author, and see the shape of the tree they live in.

Built with Go %s

# 1. Features
* Fast lookup by ISBN, with ISBN prefix search
* Search by exact title (case-insensitive) or by author name
* Author index that follows every add, update and delete
* Graphviz export of the tree shape with 'shelf tree'
* Interactive session with 'shelf shell'

# 2. Catalog file
Books are loaded from a YAML catalog at start-up:

    books:
      - isbn: "0743273567"
        title: The Great Gatsby
        author: F. Scott Fitzgerald
        year: 2004

Set 'catalog.path' in ~/.shelf.yaml or pass --catalog.

# 3. Examples
* shelf list
* shelf search --author "george orwell"
* shelf show 0451524934 --copy
* shelf tree | dot -Tpng > shelf.png

# Please be aware
* Changes made in the shell are not saved. Run 'export' in the shell to print the session as a catalog file.
* Copy to clipboard feature on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
