// cache.go

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
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/cybrota/shelf/library"
	"github.com/patrickmn/go-cache"
)

const (
	// Title scans are O(n); keep answers for 30 minutes unless the shelf changes
	titleCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	titleCacheCleanup = 5 * time.Minute
)

// NewTitleCache creates the cache that memoizes title searches.
func NewTitleCache(cfg CacheConfig) *cache.Cache {
	expiration, cleanup := cfg.Expiration, cfg.Cleanup
	if expiration <= 0 {
		expiration = titleCacheExpiration
	}
	if cleanup <= 0 {
		cleanup = titleCacheCleanup
	}
	return cache.New(expiration, cleanup)
}

// titleCacheKey maps every rune to the smallest rune of its simple case
// folding orbit, so two titles share a key exactly when strings.EqualFold
// reports them equal.
func titleCacheKey(title string) string {
	return "title:" + strings.Map(foldRune, title)
}

func foldRune(r rune) rune {
	least := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		least = min(least, f)
	}
	return least
}

func CacheTitleQuery(c *cache.Cache, title string, records []library.Record) {
	c.SetDefault(titleCacheKey(title), slices.Clone(records))
}

func GetTitleQuery(c *cache.Cache, title string) ([]library.Record, bool) {
	val, ok := c.Get(titleCacheKey(title))
	if !ok {
		return nil, false
	}
	return slices.Clone(val.([]library.Record)), true
}
