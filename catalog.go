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
	"log/slog"
	"slices"
	"sync"

	"github.com/cybrota/shelf/library"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// Catalog is one shelf session. It serializes access to the index: the
// tree and its author index are only ever seen together, fully updated.
type Catalog struct {
	mu     sync.RWMutex
	index  *library.BalancedIndex
	seen   *bloom.BloomFilter // every key ever added; no false negatives
	titles *cache.Cache
	logger *slog.Logger
}

func NewCatalog(config *Config, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Catalog{
		index:  library.NewBalancedIndex(),
		seen:   bloom.New(config.Index.BloomFilterSize, config.Index.BloomFilterHashes),
		titles: NewTitleCache(config.Cache),
		logger: logger,
	}
}

// Add inserts rec, replacing any record with the same ISBN. It reports
// whether a record was replaced.
func (c *Catalog) Add(rec library.Record) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	replaced, err := c.index.Insert(rec)
	if err != nil {
		c.logger.Warn("rejected record", "isbn", rec.Key, "title", rec.Title, "error", err)
		return false, err
	}
	c.seen.AddString(rec.Key)
	c.titles.Flush()

	if replaced {
		c.logger.Info("updated book", "isbn", rec.Key, "title", rec.Title)
	} else {
		c.logger.Debug("added book", "isbn", rec.Key, "title", rec.Title)
	}
	return replaced, nil
}

// Remove deletes the record stored under isbn and returns it.
func (c *Catalog) Remove(isbn string) (library.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.index.Delete(isbn)
	if !ok {
		c.logger.Debug("delete of unknown isbn", "isbn", isbn)
		return rec, false
	}
	// The bloom filter keeps the key; a stale positive only costs a tree walk.
	c.titles.Flush()
	c.logger.Info("deleted book", "isbn", isbn, "title", rec.Title)
	return rec, true
}

func (c *Catalog) Lookup(isbn string) (library.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.seen.TestString(isbn) {
		return library.Record{}, false
	}
	return c.index.SearchByKey(isbn)
}

func (c *Catalog) FindTitle(title string) []library.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if records, ok := GetTitleQuery(c.titles, title); ok {
		return records
	}
	records := c.index.SearchByTitle(title)
	CacheTitleQuery(c.titles, title, records)
	return records
}

// FindAuthor returns the books by every author id known under name. The
// boolean is false when no book by that name is on the shelf.
func (c *Catalog) FindAuthor(name string) ([]library.Record, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.index.QueryByAuthorName(name)
}

func (c *Catalog) FindISBNPrefix(prefix string) []library.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.index.SearchByKeyPrefix(prefix)
}

// Records returns every book in ISBN order.
func (c *Catalog) Records() []library.Record {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Collect(c.index.All())
}

// Nodes returns the current tree shape in ISBN order.
func (c *Catalog) Nodes() []library.NodeView {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Collect(c.index.Nodes())
}

func (c *Catalog) Root() (library.NodeView, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.index.Root()
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.index.Len()
}

// AuthorCount is the number of distinct author ids on the shelf.
func (c *Catalog) AuthorCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.index.Authors().Authors()
}

func (c *Catalog) Height() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.index.Height()
}
