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

package strategies

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLanguage is the collation language used when none is configured.
var DefaultLanguage = language.English

// CollateStrategy orders strings by the collation rules of a language.
type CollateStrategy struct {
	tag language.Tag

	mu       sync.Mutex
	collator *collate.Collator
}

// NewCollateStrategy creates a strategy collating by tag
func NewCollateStrategy(tag language.Tag) *CollateStrategy {
	return &CollateStrategy{
		tag:      tag,
		collator: collate.New(tag),
	}
}

// ParseLanguage resolves a BCP 47 tag such as "de" or "sv-SE".
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	return language.Parse(s)
}

func (c *CollateStrategy) Name() string {
	return "collate"
}

func (c *CollateStrategy) Priority() int {
	return 5
}

// Language returns the collation language.
func (c *CollateStrategy) Language() language.Tag {
	return c.tag
}

func (c *CollateStrategy) Compare(a, b string) int {
	c.mu.Lock()
	r := c.collator.CompareString(a, b)
	c.mu.Unlock()
	return tieBreak(r, a, b)
}
