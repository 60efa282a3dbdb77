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

import "slices"

// AuthorIndex groups live records by author id and resolves author names
// to the ids they have been seen with. It is derived state owned by a
// BalancedIndex and only mutated through its insert and delete paths.
type AuthorIndex struct {
	byID   map[string][]Record // author id -> records, insertion order
	byName map[string][]string // canonical author name -> ids, first-association order
}

func NewAuthorIndex() *AuthorIndex {
	return &AuthorIndex{
		byID:   make(map[string][]Record),
		byName: make(map[string][]string),
	}
}

func (ai *AuthorIndex) onInsert(rec Record) {
	ai.byID[rec.AuthorID] = append(ai.byID[rec.AuthorID], rec)

	name := CanonicalAuthorName(rec.AuthorName)
	if !slices.Contains(ai.byName[name], rec.AuthorID) {
		ai.byName[name] = append(ai.byName[name], rec.AuthorID)
	}
}

func (ai *AuthorIndex) onDelete(rec Record) {
	bucket := ai.byID[rec.AuthorID]
	bucket = slices.DeleteFunc(bucket, func(r Record) bool { return r.Key == rec.Key })
	if len(bucket) == 0 {
		delete(ai.byID, rec.AuthorID)
	} else {
		ai.byID[rec.AuthorID] = bucket
	}

	name := CanonicalAuthorName(rec.AuthorName)
	stillNamed := slices.ContainsFunc(bucket, func(r Record) bool {
		return CanonicalAuthorName(r.AuthorName) == name
	})
	if stillNamed {
		return
	}

	ids := slices.DeleteFunc(ai.byName[name], func(id string) bool { return id == rec.AuthorID })
	if len(ids) == 0 {
		delete(ai.byName, name)
	} else {
		ai.byName[name] = ids
	}
}

// onReplace revokes the author binding of old and records rec in its place.
// When the binding is unchanged the record keeps its slot in the bucket.
func (ai *AuthorIndex) onReplace(old, rec Record) {
	sameAuthor := old.AuthorID == rec.AuthorID &&
		CanonicalAuthorName(old.AuthorName) == CanonicalAuthorName(rec.AuthorName)
	if sameAuthor {
		bucket := ai.byID[rec.AuthorID]
		if i := slices.IndexFunc(bucket, func(r Record) bool { return r.Key == old.Key }); i >= 0 {
			bucket[i] = rec
			return
		}
	}
	ai.onDelete(old)
	ai.onInsert(rec)
}

// QueryByAuthorName returns every record by every author id associated with
// name, ids in first-association order and records in insertion order. The
// boolean is false when the name is unknown.
func (ai *AuthorIndex) QueryByAuthorName(name string) ([]Record, bool) {
	ids, ok := ai.byName[CanonicalAuthorName(name)]
	if !ok {
		return nil, false
	}
	var results []Record
	for _, id := range ids {
		results = append(results, ai.byID[id]...)
	}
	return results, true
}

// AuthorIDs returns the ids associated with name.
func (ai *AuthorIndex) AuthorIDs(name string) []string {
	return slices.Clone(ai.byName[CanonicalAuthorName(name)])
}

// RecordsByAuthorID returns the bucket for a single author id.
func (ai *AuthorIndex) RecordsByAuthorID(id string) []Record {
	return slices.Clone(ai.byID[id])
}

// Authors returns the number of distinct author ids with live records.
func (ai *AuthorIndex) Authors() int {
	return len(ai.byID)
}
