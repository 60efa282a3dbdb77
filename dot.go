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

	"github.com/cybrota/shelf/library"
)

// writeDOT renders the tree shape as a Graphviz digraph, one node per book
// and an edge from every parent to each child.
func writeDOT(w io.Writer, nodes []library.NodeView) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph shelf {")
	fmt.Fprintln(bw, "  node [shape=box];")
	for _, n := range nodes {
		fmt.Fprintf(bw, "  %s [label=%s];\n", strconv.Quote(n.Key), strconv.Quote(n.Label))
	}
	for _, n := range nodes {
		for _, child := range []string{n.Left, n.Right} {
			if child != "" {
				fmt.Fprintf(bw, "  %s -> %s;\n", strconv.Quote(n.Key), strconv.Quote(child))
			}
		}
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
