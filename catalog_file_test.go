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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `books:
  - isbn: "0743273567"
    title: The Great Gatsby
    author: F. Scott Fitzgerald
    year: 2004
  - isbn: "0451524934"
    title: Nineteen Eighty-Four
    author: George Orwell
    year: 1949
  - isbn: "0451524934"
    title: "1984"
    author: George Orwell
    year: 1950
  - title: Missing Key
    author: Nobody
  - isbn: "0452284236"
    title: Animal Farm
    author: George Orwell
    author_id: orwell
    year: 1945
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportFile(t *testing.T) {
	catalog := newTestCatalog()
	stats, err := catalog.ImportFile(writeCatalog(t, sampleCatalog), nil)
	require.NoError(t, err)

	assert.Equal(t, ImportStats{Added: 3, Updated: 1, Rejected: 1}, stats)
	assert.Equal(t, 3, catalog.Len())

	rec, ok := catalog.Lookup("0451524934")
	require.True(t, ok)
	assert.Equal(t, "1984", rec.Title, "later entries update earlier ones")
	assert.Equal(t, 1950, rec.ReleaseYear)

	farm, ok := catalog.Lookup("0452284236")
	require.True(t, ok)
	assert.Equal(t, "orwell", farm.AuthorID)

	// Two ids share the name George Orwell.
	orwell, ok := catalog.FindAuthor("george orwell")
	require.True(t, ok)
	assert.Len(t, orwell, 2)
	assert.Equal(t, 3, catalog.AuthorCount())
}

func TestImportFileProgress(t *testing.T) {
	var progress bytes.Buffer
	catalog := newTestCatalog()

	_, err := catalog.ImportFile(writeCatalog(t, sampleCatalog), &progress)
	require.NoError(t, err)
	assert.Contains(t, progress.String(), "Catalog loaded!")
}

func TestImportFileErrors(t *testing.T) {
	catalog := newTestCatalog()

	_, err := catalog.ImportFile(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.ErrorIs(t, err, ErrCatalogNotFound)

	_, err = catalog.ImportFile(writeCatalog(t, "books: [unterminated"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCatalogNotFound)

	// An empty file is an empty shelf, with no progress bar to draw.
	var progress bytes.Buffer
	stats, err := catalog.ImportFile(writeCatalog(t, ""), &progress)
	require.NoError(t, err)
	assert.Equal(t, ImportStats{}, stats)
	assert.Empty(t, progress.String())
}

func TestExportRoundTrip(t *testing.T) {
	source := newTestCatalog()
	_, err := source.ImportFile(writeCatalog(t, sampleCatalog), nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, source.Export(&out))
	assert.Contains(t, out.String(), "books:")

	restored := newTestCatalog()
	stats, err := restored.ImportFile(writeCatalog(t, out.String()), nil)
	require.NoError(t, err)
	assert.Equal(t, ImportStats{Added: 3}, stats)
	assert.Equal(t, source.Records(), restored.Records())
}
