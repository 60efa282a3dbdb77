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

package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keysOf(records []Record) []string {
	keys := make([]string, 0, len(records))
	for _, r := range records {
		keys = append(keys, r.Key)
	}
	return keys
}

func TestSameNameDistinctIDsSurviveDelete(t *testing.T) {
	tree := NewBalancedIndex()
	first := Record{Title: "Potty Time!", AuthorName: "Caroline Church", AuthorID: "id-1", ReleaseYear: 2012, Key: "9780545350808"}
	second := Record{Title: "One More Hug For Madison", AuthorName: "Caroline Church", AuthorID: "id-2", ReleaseYear: 2012, Key: "9780545442541"}

	for _, rec := range []Record{first, second} {
		_, err := tree.Insert(rec)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"id-1", "id-2"}, tree.Authors().AuthorIDs("Caroline Church"))

	_, ok := tree.Delete(first.Key)
	require.True(t, ok)

	got, known := tree.QueryByAuthorName("Caroline Church")
	require.True(t, known)
	assert.Equal(t, []Record{second}, got)
	assert.Equal(t, []string{"id-2"}, tree.Authors().AuthorIDs("Caroline Church"))
	assert.Empty(t, tree.Authors().RecordsByAuthorID("id-1"))
	checkInvariants(t, tree)
}

func TestQueryByAuthorNameOrder(t *testing.T) {
	tree := NewBalancedIndex()
	inserts := []Record{
		{Title: "C", AuthorName: "Same Name", AuthorID: "late", Key: "c"},
		{Title: "A", AuthorName: "Same Name", AuthorID: "early", Key: "a"},
		{Title: "B", AuthorName: "Same Name", AuthorID: "late", Key: "b"},
		{Title: "D", AuthorName: "Other", Key: "d"},
	}
	for _, rec := range inserts {
		_, err := tree.Insert(rec)
		require.NoError(t, err)
	}

	got, known := tree.QueryByAuthorName("Same Name")
	require.True(t, known)
	// ids in first-association order, then bucket insertion order
	assert.Equal(t, []string{"c", "b", "a"}, keysOf(got))
}

func TestQueryUnknownAuthorIsDistinguishable(t *testing.T) {
	tree := NewBalancedIndex()
	_, err := tree.Insert(Record{Title: "Buster", AuthorName: "Denise Fleming", Key: "0805062793"})
	require.NoError(t, err)

	got, known := tree.QueryByAuthorName("Nobody")
	assert.False(t, known)
	assert.Nil(t, got)

	tree.Delete("0805062793")
	_, known = tree.QueryByAuthorName("Denise Fleming")
	assert.False(t, known, "name set must be pruned with its last record")
	assert.Equal(t, 0, tree.Authors().Authors())
}

func TestAuthorIDsDerivedFromName(t *testing.T) {
	tree := NewBalancedIndex()
	for _, rec := range []Record{
		{Title: "Calculus", AuthorName: "James Stewart", ReleaseYear: 2003, Key: "9780534393397"},
		{Title: "Calculus", AuthorName: "james  STEWART", ReleaseYear: 2008, Key: "9780495467694"},
	} {
		_, err := tree.Insert(rec)
		require.NoError(t, err)
	}

	ids := tree.Authors().AuthorIDs("James Stewart")
	require.Len(t, ids, 1)
	assert.Equal(t, AuthorIDFor("James Stewart"), ids[0])
	assert.Equal(t, ids, tree.Authors().AuthorIDs(" james stewart "))

	got, known := tree.QueryByAuthorName("JAMES STEWART")
	require.True(t, known)
	assert.Equal(t, []string{"9780534393397", "9780495467694"}, keysOf(got))
}

func TestUpdateRevokesOldAuthor(t *testing.T) {
	tree := NewBalancedIndex()
	_, err := tree.Insert(Record{Title: "Draft", AuthorName: "Wrong Author", Key: "0743273567"})
	require.NoError(t, err)

	replaced, err := tree.Insert(Record{Title: "The Great Gatsby", AuthorName: "F. Scott Fitzgerald", Key: "0743273567"})
	require.NoError(t, err)
	require.True(t, replaced)

	_, known := tree.QueryByAuthorName("Wrong Author")
	assert.False(t, known)
	assert.Empty(t, tree.Authors().RecordsByAuthorID(AuthorIDFor("Wrong Author")))

	got, known := tree.QueryByAuthorName("F. Scott Fitzgerald")
	require.True(t, known)
	require.Len(t, got, 1)
	assert.Equal(t, "The Great Gatsby", got[0].Title)
	checkInvariants(t, tree)
}

func TestUpdateSameAuthorKeepsBucketSlot(t *testing.T) {
	tree := NewBalancedIndex()
	for _, key := range []string{"x1", "x2", "x3"} {
		_, err := tree.Insert(Record{Title: key, AuthorName: "Mark Twain", Key: key})
		require.NoError(t, err)
	}

	_, err := tree.Insert(Record{Title: "x2 (revised)", AuthorName: "Mark Twain", Key: "x2"})
	require.NoError(t, err)

	got, _ := tree.QueryByAuthorName("Mark Twain")
	require.Len(t, got, 3)
	assert.Equal(t, []string{"x1", "x2", "x3"}, keysOf(got))
	assert.Equal(t, "x2 (revised)", got[1].Title)
	checkInvariants(t, tree)
}

func TestSharedIDAcrossNames(t *testing.T) {
	tree := NewBalancedIndex()
	for _, rec := range []Record{
		{Title: "Pen Name", AuthorName: "Richard Bachman", AuthorID: "sk", Key: "1"},
		{Title: "Real Name", AuthorName: "Stephen King", AuthorID: "sk", Key: "2"},
	} {
		_, err := tree.Insert(rec)
		require.NoError(t, err)
	}

	tree.Delete("1")

	_, known := tree.QueryByAuthorName("Richard Bachman")
	assert.False(t, known)
	got, known := tree.QueryByAuthorName("Stephen King")
	require.True(t, known)
	assert.Equal(t, []string{"2"}, keysOf(got))
	checkInvariants(t, tree)
}

func TestCanonicalAuthorName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"J. R. R. Tolkien", "j. r. r. tolkien"},
		{"  j. r. r.   tolkien ", "j. r. r. tolkien"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, CanonicalAuthorName(c.input), c.input)
	}
	assert.Equal(t, AuthorIDFor("J. R. R. Tolkien"), AuthorIDFor("j. r. r.  TOLKIEN"))
	assert.NotEqual(t, AuthorIDFor("J. R. R. Tolkien"), AuthorIDFor("Christopher Tolkien"))
}
