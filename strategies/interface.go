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

// Package strategies provides named orderings for string keys.
package strategies

import "strings"

// CompareStrategy is a named three-way ordering of strings. Compare must be
// a strict total order: it returns 0 only for identical strings.
type CompareStrategy interface {
	Name() string
	Compare(a, b string) int
	Priority() int // Lower number = listed first
}

// tieBreak settles two strings an ordering considers equivalent, so that
// distinct keys never compare equal.
func tieBreak(c int, a, b string) int {
	if c != 0 {
		return c
	}
	return strings.Compare(a, b)
}
