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
	"cmp"
	"math"
	"strconv"
	"strings"
)

// NumericStrategy orders strings that parse as numbers by value. Numbers
// sort before everything else; non-numbers sort among themselves in byte
// order.
type NumericStrategy struct{}

func (n *NumericStrategy) Name() string {
	return "numeric"
}

func (n *NumericStrategy) Priority() int {
	return 3
}

func (n *NumericStrategy) Compare(a, b string) int {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)

	switch {
	case okA && okB:
		return tieBreak(cmp.Compare(fa, fb), a, b)
	case okA:
		return -1
	case okB:
		return 1
	}
	return strings.Compare(a, b)
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
