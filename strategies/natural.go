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
	"strconv"
	"strings"

	"github.com/facette/natsort"
)

// natsort parses digit runs with strconv.Atoi; every run up to this length
// fits in an int.
const maxAtoiDigits = 9 + 9*(strconv.IntSize/64)

// NaturalStrategy orders embedded digit runs by value, so "file2" sorts
// before "file10".
type NaturalStrategy struct{}

func (n *NaturalStrategy) Name() string {
	return "natural"
}

func (n *NaturalStrategy) Priority() int {
	return 4
}

func (n *NaturalStrategy) Compare(a, b string) int {
	if a == b {
		return 0
	}
	if longestDigitRun(a) > maxAtoiDigits || longestDigitRun(b) > maxAtoiDigits {
		return tieBreak(compareChunks(a, b), a, b)
	}

	// natsort reports "less" for both orders when two strings only differ
	// in leading zeros.
	less := natsort.Compare(a, b)
	greater := natsort.Compare(b, a)
	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	}
	return tieBreak(0, a, b)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func longestDigitRun(s string) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return longest
}

// nextChunk splits off the leading run of digits or of non-digits.
func nextChunk(s string) (chunk, rest string) {
	digits := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digits {
		i++
	}
	return s[:i], s[i:]
}

// compareChunks is natsort's chunk order with digit runs of any length:
// runs compare by value, everything else byte-wise, and a string that runs
// out of chunks first sorts first.
func compareChunks(a, b string) int {
	for a != "" && b != "" {
		var ca, cb string
		ca, a = nextChunk(a)
		cb, b = nextChunk(b)

		if isDigit(ca[0]) && isDigit(cb[0]) {
			ca, cb = strings.TrimLeft(ca, "0"), strings.TrimLeft(cb, "0")
			if c := cmp.Compare(len(ca), len(cb)); c != 0 {
				return c
			}
		}
		if c := strings.Compare(ca, cb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
