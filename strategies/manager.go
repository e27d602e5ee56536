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
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownStrategy is returned by Manager.Get for a name nobody registered.
var ErrUnknownStrategy = errors.New("unknown compare strategy")

// DefaultStrategy is the name of the strategy used when none is configured.
const DefaultStrategy = "lexical"

// Manager keeps the registered compare strategies by name
type Manager struct {
	strategies map[string]CompareStrategy
}

// NewManager creates a manager with all built-in strategies registered
func NewManager() *Manager {
	manager := &Manager{strategies: make(map[string]CompareStrategy)}

	manager.Register(&LexicalStrategy{})
	manager.Register(&FoldStrategy{})
	manager.Register(&NumericStrategy{})
	manager.Register(&NaturalStrategy{})
	manager.Register(NewCollateStrategy(DefaultLanguage))

	return manager
}

// Register adds a strategy, replacing any strategy with the same name
func (m *Manager) Register(strategy CompareStrategy) {
	m.strategies[strategy.Name()] = strategy
}

// Get looks up a strategy by name. An empty name selects DefaultStrategy.
func (m *Manager) Get(name string) (CompareStrategy, error) {
	if name == "" {
		name = DefaultStrategy
	}
	strategy, ok := m.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %v)", ErrUnknownStrategy, name, m.Names())
	}
	return strategy, nil
}

// Names returns the registered names in priority order
func (m *Manager) Names() []string {
	all := make([]CompareStrategy, 0, len(m.strategies))
	for _, s := range m.strategies {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Priority() != all[j].Priority() {
			return all[i].Priority() < all[j].Priority()
		}
		return all[i].Name() < all[j].Name()
	})

	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	return names
}
