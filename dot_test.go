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
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/cybrota/shelf/library"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDOT(t *testing.T) {
	tree := library.NewBalancedIndex()
	for _, key := range []string{"b", "a", "c"} {
		_, err := tree.Insert(library.Record{Title: "Book " + strings.ToUpper(key), AuthorName: "Author", Key: key})
		require.NoError(t, err)
	}

	var out bytes.Buffer
	require.NoError(t, writeDOT(&out, slices.Collect(tree.Nodes())))
	dot := out.String()

	assert.True(t, strings.HasPrefix(dot, "digraph shelf {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `"a" [label="Book A\n(a)"];`)
	assert.Contains(t, dot, `"b" -> "a";`)
	assert.Contains(t, dot, `"b" -> "c";`)
	assert.Equal(t, 2, strings.Count(dot, "->"))
}

func TestWriteDOTEscapesLabels(t *testing.T) {
	nodes := []library.NodeView{{Key: `say "hi"`, Label: `say "hi"` + "\n(x)"}}

	var out bytes.Buffer
	require.NoError(t, writeDOT(&out, nodes))
	assert.Contains(t, out.String(), `"say \"hi\"" [label="say \"hi\"\n(x)"];`)
}

func TestWriteDOTEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, writeDOT(&out, nil))
	assert.Equal(t, "digraph shelf {\n  node [shape=box];\n}\n", out.String())
}
