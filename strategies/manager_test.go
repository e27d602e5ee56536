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
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cybrota/tsearch/tsearch"
)

func TestManagerNames(t *testing.T) {
	manager := NewManager()

	require.Equal(t, []string{"lexical", "fold", "numeric", "natural", "collate"}, manager.Names())
}

func TestManagerGet(t *testing.T) {
	manager := NewManager()

	s, err := manager.Get("")
	require.NoError(t, err)
	require.Equal(t, DefaultStrategy, s.Name())

	s, err = manager.Get("natural")
	require.NoError(t, err)
	require.Equal(t, "natural", s.Name())

	_, err = manager.Get("reverse")
	require.ErrorIs(t, err, ErrUnknownStrategy)
	require.Contains(t, err.Error(), `"reverse"`)
}

func TestManagerRegisterReplaces(t *testing.T) {
	manager := NewManager()
	manager.Register(NewCollateStrategy(language.Swedish))

	s, err := manager.Get("collate")
	require.NoError(t, err)
	require.Equal(t, language.Swedish, s.(*CollateStrategy).Language())
	require.Len(t, manager.Names(), 5)
}

func TestStrategyCompare(t *testing.T) {
	testCases := []struct {
		Strategy string
		A, B     string
		Want     int
	}{
		{"lexical", "B", "a", -1},
		{"lexical", "apple", "apple", 0},
		{"fold", "a", "B", -1},
		{"fold", "A", "a", -1},
		{"fold", "Straße", "STRASSE", 1},
		{"numeric", "2", "10", -1},
		{"numeric", "-3", "2", -1},
		{"numeric", "10", "abc", -1},
		{"numeric", "abc", "7", 1},
		{"numeric", "1", "1.0", -1},
		{"numeric", "NaN", "1", 1},
		{"natural", "file2", "file10", -1},
		{"natural", "file10", "file2", 1},
		{"natural", "b", "a", 1},
		{"natural", "file1", "file01", 1},
		{"natural", "9", "10", -1},
		{"natural", "10", "100000000000000000000", -1},
		{"natural", "100000000000000000000", "9", 1},
		{"natural", "v99999999999999999999", "v0100000000000000000000", -1},
		{"natural", "x100000000000000000000y", "x100000000000000000000z", -1},
		{"collate", "a", "B", -1},
		{"collate", "é", "f", -1},
		{"collate", "same", "same", 0},
	}

	manager := NewManager()
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s %s vs %s", tc.Strategy, tc.A, tc.B), func(t *testing.T) {
			s, err := manager.Get(tc.Strategy)
			require.NoError(t, err)
			require.Equal(t, tc.Want, sign(s.Compare(tc.A, tc.B)))
			require.Equal(t, -tc.Want, sign(s.Compare(tc.B, tc.A)))
		})
	}
}

func TestStrategiesOrderTrees(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	words := []string{"a", "A", "b", "B", "file1", "file01", "file2", "file10", "2", "10", "1.0", "1", "-4",
		"é", "e", "f", "Zeta", "zeta", "ß", "ss"}
	for i := 0; i < 200; i++ {
		words = append(words, randomWord(rng))
	}

	manager := NewManager()
	for _, name := range manager.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := manager.Get(name)
			require.NoError(t, err)

			tree := tsearch.New(s.Compare)
			distinct := map[string]bool{}
			for _, w := range words {
				_, err := tree.Insert(w)
				require.NoError(t, err)
				distinct[w] = true
			}
			require.NoError(t, tree.Validate())
			require.Equal(t, len(distinct), tree.Len())
			for w := range distinct {
				require.NotNil(t, tree.Find(w), "%q not found", w)
			}
		})
	}
}

// edgeWords are keys where a careless ordering stops being total: digit
// runs too long for an int, infinities, padded numbers and equivalent
// spellings.
var edgeWords = []string{
	"", "9", "10", "01", "1", "1.0", "1e3", "1000", "-0", "0", "+0",
	"100000000000000000000", "99999999999999999999", "099999999999999999999",
	"9223372036854775807", "9223372036854775808",
	"v9", "v10", "v100000000000000000000", "v0100000000000000000000",
	"file1", "file01", "file001", "x9y", "x10y", "x9",
	"Inf", "+Inf", "-Inf", "inf", "infinity", "NaN", "nan",
	" 1", "1 ", " 1 ", "a", "A", "é", "e\u0301", "ß", "ss", "SS", "abc", "abc1", "abc!",
}

func TestStrategiesAreTotalOrders(t *testing.T) {
	manager := NewManager()
	for _, name := range manager.Names() {
		t.Run(name, func(t *testing.T) {
			s, err := manager.Get(name)
			require.NoError(t, err)

			n := len(edgeWords)
			c := make([][]int, n)
			for i := range edgeWords {
				c[i] = make([]int, n)
				for j := range edgeWords {
					c[i][j] = sign(s.Compare(edgeWords[i], edgeWords[j]))
				}
			}

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					a, b := edgeWords[i], edgeWords[j]
					require.Equal(t, -c[j][i], c[i][j], "antisymmetry: %q vs %q", a, b)
					require.Equal(t, i == j, c[i][j] == 0, "only identical keys are equal: %q vs %q", a, b)
					if c[i][j] >= 0 {
						continue
					}
					for k := 0; k < n; k++ {
						if c[j][k] < 0 {
							require.Equal(t, -1, c[i][k], "transitivity: %q < %q < %q", a, b, edgeWords[k])
						}
					}
				}
			}
		})
	}
}

func TestNaturalLongDigitRuns(t *testing.T) {
	s := &NaturalStrategy{}
	tree := tsearch.New(s.Compare)

	var keys []string
	for i := 0; i < 40; i++ {
		keys = append(keys, fmt.Sprintf("v%d", i), fmt.Sprintf("v%d00000000000000000000", i))
	}
	for _, k := range keys {
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, len(keys), tree.Len())

	for _, k := range keys {
		require.NotNil(t, tree.Find(k), "%q not found", k)
		_, err := tree.Insert(k)
		require.NoError(t, err)
	}
	require.Equal(t, len(keys), tree.Len())

	var inOrder []string
	for k := range tree.All() {
		inOrder = append(inOrder, k)
	}
	require.Equal(t, "v0", inOrder[0])
	require.Equal(t, "v3900000000000000000000", inOrder[len(inOrder)-1])
}

func randomWord(rng *rand.Rand) string {
	const alphabet = "aAbB019éz"
	runes := []rune(alphabet)
	n := 1 + rng.IntN(5)
	w := make([]rune, n)
	for i := range w {
		w[i] = runes[rng.IntN(len(runes))]
	}
	return string(w)
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	}
	return 0
}
