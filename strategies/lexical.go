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
	"strings"

	"golang.org/x/text/cases"
)

// LexicalStrategy orders strings byte by byte
type LexicalStrategy struct{}

func (l *LexicalStrategy) Name() string {
	return "lexical"
}

func (l *LexicalStrategy) Priority() int {
	return 1
}

func (l *LexicalStrategy) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// FoldStrategy orders strings ignoring case. Strings that differ only in
// case fall back to byte order.
type FoldStrategy struct{}

func (f *FoldStrategy) Name() string {
	return "fold"
}

func (f *FoldStrategy) Priority() int {
	return 2
}

func (f *FoldStrategy) Compare(a, b string) int {
	// A Caser keeps state, so each comparison gets its own.
	fold := cases.Fold()
	fa := fold.String(a)
	fb := fold.String(b)
	return tieBreak(strings.Compare(fa, fb), a, b)
}
