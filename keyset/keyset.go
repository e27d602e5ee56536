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

// Package keyset keeps a set of string keys with usage metadata in an AVL
// tree, fronted by a bloom filter for misses and an LRU cache for hits.
package keyset

import (
	"iter"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/willf/bloom"

	"github.com/cybrota/tsearch/strategies"
	"github.com/cybrota/tsearch/tsearch"
)

const (
	DefaultBloomSize    = 1 << 20 // bits
	DefaultBloomHashes  = 5
	DefaultCacheSize    = 256
	DefaultRebuildAfter = 1024 // removals before the bloom filter is rebuilt
)

// Entry is one key and how it has been used.
type Entry struct {
	Key       string
	LastSeen  *time.Time // most recent use; nil when unknown
	Frequency int        // number of Add calls for Key
}

// Config tunes a Set. Zero fields take the package defaults.
type Config struct {
	Strategy     strategies.CompareStrategy
	BloomSize    uint
	BloomHashes  uint
	CacheSize    int
	RebuildAfter int
	NodeLimit    int              // 0 = unbounded
	Now          func() time.Time // clock for ranking
}

// Stats describes a Set.
type Stats struct {
	Entries        int
	Height         int
	FilterRejects  int
	FilterRebuilds int
	CacheHits      int
	CacheMisses    int
}

// Set is an ordered set of entries. It is not safe for concurrent use.
type Set struct {
	tree    *tsearch.Tree[*Entry]
	filter  *bloom.BloomFilter
	cache   *lru.Cache[string, *Entry]
	config  Config
	removed int
	stats   Stats
}

// New creates an empty set.
func New(config Config) (*Set, error) {
	if config.Strategy == nil {
		config.Strategy = &strategies.LexicalStrategy{}
	}
	if config.BloomSize == 0 {
		config.BloomSize = DefaultBloomSize
	}
	if config.BloomHashes == 0 {
		config.BloomHashes = DefaultBloomHashes
	}
	if config.CacheSize <= 0 {
		config.CacheSize = DefaultCacheSize
	}
	if config.RebuildAfter <= 0 {
		config.RebuildAfter = DefaultRebuildAfter
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	cache, err := lru.New[string, *Entry](config.CacheSize)
	if err != nil {
		return nil, err
	}

	compare := config.Strategy.Compare
	opts := []tsearch.Option[*Entry]{}
	if config.NodeLimit > 0 {
		opts = append(opts, tsearch.WithAllocator[*Entry](tsearch.NewArena[*Entry](config.NodeLimit)))
	}

	return &Set{
		tree: tsearch.New(func(a, b *Entry) int {
			return compare(a.Key, b.Key)
		}, opts...),
		filter: bloom.New(config.BloomSize, config.BloomHashes),
		cache:  cache,
		config: config,
	}, nil
}

// Add records one use of key seen at the given time (nil if unknown) and
// returns its entry. It fails with tsearch.ErrNoMemory when the set is at
// its node limit and key is new.
func (s *Set) Add(key string, seen *time.Time) (*Entry, error) {
	probe := &Entry{Key: key, LastSeen: seen}
	n, err := s.tree.Insert(probe)
	if err != nil {
		return nil, err
	}

	e := n.Key
	if e == probe {
		s.filter.AddString(key)
	} else if seen != nil && (e.LastSeen == nil || seen.After(*e.LastSeen)) {
		e.LastSeen = seen
	}
	e.Frequency++
	return e, nil
}

// Get returns the entry for key.
func (s *Set) Get(key string) (*Entry, bool) {
	if !s.filter.TestString(key) {
		s.stats.FilterRejects++
		return nil, false
	}
	if e, ok := s.cache.Get(key); ok {
		s.stats.CacheHits++
		return e, true
	}
	s.stats.CacheMisses++

	n := s.tree.Find(&Entry{Key: key})
	if n == nil {
		return nil, false
	}
	s.cache.Add(key, n.Key)
	return n.Key, true
}

// Remove deletes key and reports whether it was present.
func (s *Set) Remove(key string) bool {
	if _, ok := s.tree.Delete(&Entry{Key: key}); !ok {
		return false
	}
	s.cache.Remove(key)

	// Bloom filters cannot forget keys; rebuild once enough are stale.
	s.removed++
	if s.removed >= s.config.RebuildAfter {
		s.rebuildFilter()
	}
	return true
}

func (s *Set) rebuildFilter() {
	s.filter.ClearAll()
	for e := range s.tree.All() {
		s.filter.AddString(e.Key)
	}
	s.removed = 0
	s.stats.FilterRebuilds++
}

// Clear removes every entry.
func (s *Set) Clear() {
	s.tree.Destroy(nil)
	s.filter.ClearAll()
	s.cache.Purge()
	s.removed = 0
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return s.tree.Len()
}

// All yields the entries in key order.
func (s *Set) All() iter.Seq[*Entry] {
	return s.tree.All()
}

// Tree exposes the underlying tree for inspection. Callers must not modify it.
func (s *Set) Tree() *tsearch.Tree[*Entry] {
	return s.tree
}

// Stats returns counters describing the set.
func (s *Set) Stats() Stats {
	st := s.stats
	st.Entries = s.tree.Len()
	st.Height = s.tree.Height()
	return st
}

// Prefix returns, in key order, every entry whose key starts with prefix.
func (s *Set) Prefix(prefix string) []*Entry {
	var results []*Entry

	// Under byte order the matches are one contiguous run.
	if _, ok := s.config.Strategy.(*strategies.LexicalStrategy); ok {
		for e := range s.tree.Ascend(&Entry{Key: prefix}) {
			if !strings.HasPrefix(e.Key, prefix) {
				break
			}
			results = append(results, e)
		}
		return results
	}

	for e := range s.tree.All() {
		if strings.HasPrefix(e.Key, prefix) {
			results = append(results, e)
		}
	}
	return results
}

// Contains returns, in key order, every entry whose key contains sub.
func (s *Set) Contains(sub string) []*Entry {
	var results []*Entry
	for e := range s.tree.All() {
		if strings.Contains(e.Key, sub) {
			results = append(results, e)
		}
	}
	return results
}
