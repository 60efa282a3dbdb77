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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/shelf/library"
	"github.com/mattn/go-shellwords"
)

const shellPrompt = "shelf> "

var errQuit = errors.New("quit")

const shellHelp = `Commands:
  add <isbn> <title> <author> [year] [author-id]   add or update a book
  del <isbn>                                       delete a book
  get <isbn>                                       show one book
  title <title>                                    books with this exact title
  author <name>                                    books by this author
  prefix <isbn-prefix>                             books whose ISBN starts with prefix
  ls                                               list every book
  tree                                             print the tree as Graphviz DOT
  count                                            number of books and authors
  export                                           print the session as a YAML catalog
  help                                             this message
  quit | exit                                      leave the shell
Quote arguments with spaces: add 0451524934 "Nineteen Eighty-Four" "George Orwell" 1949`

// Shell is a line-oriented session over one catalog. Books added here live
// only as long as the session.
type Shell struct {
	catalog *Catalog
	in      io.Reader
	out     io.Writer
}

func NewShell(catalog *Catalog, in io.Reader, out io.Writer) *Shell {
	return &Shell{catalog: catalog, in: in, out: out}
}

// Run reads commands until quit or end of input.
func (s *Shell) Run() error {
	scanner := bufio.NewScanner(s.in)
	fmt.Fprint(s.out, shellPrompt)
	for scanner.Scan() {
		err := s.Execute(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "%s❌ %v%s\n", Error, err, Reset)
		}
		fmt.Fprint(s.out, shellPrompt)
	}
	fmt.Fprintln(s.out)
	return scanner.Err()
}

// Execute runs a single command line.
func (s *Shell) Execute(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "add":
		return s.add(args)
	case "del", "delete", "rm":
		return s.del(args)
	case "get":
		if len(args) != 1 {
			return errors.New("usage: get <isbn>")
		}
		rec, ok := s.catalog.Lookup(args[0])
		if !ok {
			fmt.Fprintf(s.out, "%sNo book with ISBN %s%s\n", Info, args[0], Reset)
			return nil
		}
		fmt.Fprintln(s.out, renderRecordCard(rec))
	case "title":
		if len(args) == 0 {
			return errors.New("usage: title <title>")
		}
		title := strings.Join(args, " ")
		printRecords(s.out, s.catalog.FindTitle(title), fmt.Sprintf("No book titled %q", title))
	case "author":
		if len(args) == 0 {
			return errors.New("usage: author <name>")
		}
		name := strings.Join(args, " ")
		records, _ := s.catalog.FindAuthor(name)
		printRecords(s.out, records, fmt.Sprintf("No books by %q", name))
	case "prefix":
		if len(args) != 1 {
			return errors.New("usage: prefix <isbn-prefix>")
		}
		printRecords(s.out, s.catalog.FindISBNPrefix(args[0]), fmt.Sprintf("No ISBN starts with %q", args[0]))
	case "ls", "list":
		printRecords(s.out, s.catalog.Records(), "The shelf is empty")
	case "tree":
		return writeDOT(s.out, s.catalog.Nodes())
	case "export":
		return s.catalog.Export(s.out)
	case "count":
		fmt.Fprintf(s.out, "%d book(s) by %d author(s), tree height %d\n",
			s.catalog.Len(), s.catalog.AuthorCount(), s.catalog.Height())
	case "help", "?":
		fmt.Fprintln(s.out, shellHelp)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try help)", cmd)
	}
	return nil
}

func (s *Shell) add(args []string) error {
	if len(args) < 3 || len(args) > 5 {
		return errors.New("usage: add <isbn> <title> <author> [year] [author-id]")
	}
	rec := library.Record{Key: args[0], Title: args[1], AuthorName: args[2]}
	if len(args) > 3 {
		year, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("year must be a number: %q", args[3])
		}
		rec.ReleaseYear = year
	}
	if len(args) > 4 {
		rec.AuthorID = args[4]
	}

	replaced, err := s.catalog.Add(rec)
	if err != nil {
		return err
	}
	if replaced {
		fmt.Fprintf(s.out, "%s⚠️  ISBN %s already existed; updated%s\n", Warning, rec.Key, Reset)
	} else {
		fmt.Fprintf(s.out, "%s✅ Added %q%s\n", Green, rec.Title, Reset)
	}
	return nil
}

func (s *Shell) del(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: del <isbn>")
	}
	rec, ok := s.catalog.Remove(args[0])
	if !ok {
		fmt.Fprintf(s.out, "%sNo book with ISBN %s%s\n", Info, args[0], Reset)
		return nil
	}
	fmt.Fprintf(s.out, "Deleting: %s\n", rec)
	fmt.Fprintf(s.out, "%s🗑️  Deleted ISBN %s%s\n", Green, rec.Key, Reset)
	return nil
}
