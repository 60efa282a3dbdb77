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
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrInvalidRecord is returned by Insert when a record cannot be placed in
// the tree without corrupting its ordering (for example, an empty key).
var ErrInvalidRecord = errors.New("invalid record")

// authorNamespace seeds name-derived author ids.
var authorNamespace = uuid.MustParse("6f1c2d9e-2b7a-5c43-9e0b-4a8d7f3e1b52")

var recordValidate = validator.New()

// Record is a single catalogued book. Key (an ISBN) is the sole ordering
// key of the tree; all other fields are payload.
type Record struct {
	Title       string `yaml:"title"`
	AuthorName  string `yaml:"author"`
	AuthorID    string `yaml:"author_id,omitempty"`
	ReleaseYear int    `yaml:"year" validate:"gte=0"`
	Key         string `yaml:"isbn" validate:"required"`
}

// Validate reports whether the record is well-formed enough to be indexed.
func (r Record) Validate() error {
	if err := recordValidate.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if strings.TrimSpace(r.Key) != r.Key {
		return fmt.Errorf("%w: key %q has surrounding whitespace", ErrInvalidRecord, r.Key)
	}
	return nil
}

// Label is the display label used for tree diagrams.
func (r Record) Label() string {
	return fmt.Sprintf("%s\n(%s)", r.Title, r.Key)
}

func (r Record) String() string {
	return fmt.Sprintf("Title: %s, Author: %s (ID: %s), Year: %d, ISBN: %s",
		r.Title, r.AuthorName, r.AuthorID, r.ReleaseYear, r.Key)
}

// CanonicalAuthorName folds case and collapses whitespace so that
// "J. R. R. Tolkien" and "j. r. r.  tolkien" name the same author.
func CanonicalAuthorName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// AuthorIDFor derives a stable author id from an author name.
func AuthorIDFor(name string) string {
	return uuid.NewSHA1(authorNamespace, []byte(CanonicalAuthorName(name))).String()
}
