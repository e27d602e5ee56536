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

package keyset

import (
	"sort"
	"time"
)

type Ranked struct {
	Entry *Entry
	Score float64
}

// Score weighs an entry by frequency and recency. An entry with no
// timestamp scores on frequency alone.
func Score(e *Entry, now time.Time) float64 {
	// Score components:
	// - Frequency: Linear, to encourage repeated keys
	// - Recency: Inverse, to heavily favor recent keys
	frequencyScore := float64(e.Frequency)
	if e.LastSeen == nil {
		return 0.6 * frequencyScore
	}

	hours := now.Sub(*e.LastSeen).Hours()
	if hours < 0 {
		hours = 0
	}
	recencyScore := 1 / (hours + 1) // Add 1 to avoid division by zero

	return (0.6 * frequencyScore) + (0.4 * recencyScore)
}

// Ranked returns the entries matching query, highest score first. With
// fuzzy set any key containing query matches; otherwise only keys that
// start with it. Equal scores keep key order.
func (s *Set) Ranked(query string, fuzzy bool) []Ranked {
	var matches []*Entry
	if fuzzy {
		matches = s.Contains(query)
	} else {
		matches = s.Prefix(query)
	}

	now := s.config.Now()
	ranked := make([]Ranked, 0, len(matches))
	for _, e := range matches {
		ranked = append(ranked, Ranked{Entry: e, Score: Score(e, now)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// MostRecent returns the entries starting with prefix, newest first.
// Entries without a timestamp come last.
func (s *Set) MostRecent(prefix string) []*Entry {
	matches := s.Prefix(prefix)

	sort.SliceStable(matches, func(i, j int) bool {
		t1 := matches[i].LastSeen
		t2 := matches[j].LastSeen

		if t1 == nil {
			// nil is considered older
			return false
		}
		if t2 == nil {
			return true
		}
		return t1.After(*t2)
	})
	return matches
}
