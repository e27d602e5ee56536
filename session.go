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
	"fmt"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/cybrota/tsearch/strategies"
	"github.com/cybrota/tsearch/tsearch"
)

// errQuit is returned by Exec when the user asks to leave the shell.
var errQuit = errors.New("quit")

// Session is one string tree and the commands that act on it. It backs both
// the one-shot commands and the interactive shell.
type Session struct {
	tree     *tsearch.Tree[string]
	arena    *tsearch.Arena[string]
	strategy strategies.CompareStrategy
	logger   log.Logger
	failed   int
}

// NewSession creates an empty session ordered by strategy. A positive
// nodeLimit backs the tree with an arena of that many nodes.
func NewSession(strategy strategies.CompareStrategy, nodeLimit int, logger log.Logger) *Session {
	s := &Session{strategy: strategy, logger: logger}

	var opts []tsearch.Option[string]
	if nodeLimit > 0 {
		s.arena = tsearch.NewArena[string](nodeLimit)
		opts = append(opts, tsearch.WithAllocator[string](s.arena))
	}
	s.tree = tsearch.New(strategy.Compare, opts...)
	return s
}

func (s *Session) Tree() *tsearch.Tree[string] {
	return s.tree
}

// Failed returns how many inserts failed for lack of nodes.
func (s *Session) Failed() int {
	return s.failed
}

// Load inserts keys in order and returns how many were new.
func (s *Session) Load(keys []string) int {
	added := 0
	for _, k := range keys {
		if ok, err := s.Insert(k); err == nil && ok {
			added++
		}
	}
	if s.failed > 0 {
		level.Warn(s.logger).Log("msg", "node limit reached, some keys were not inserted", "failed", s.failed)
	}
	level.Debug(s.logger).Log("msg", "keys loaded", "read", len(keys), "added", added, "height", s.tree.Height())
	return added
}

// Insert adds key and reports whether it was new.
func (s *Session) Insert(key string) (bool, error) {
	before := s.tree.Len()
	if _, err := s.tree.Insert(key); err != nil {
		s.failed++
		level.Debug(s.logger).Log("msg", "insert failed", "key", key, "err", err)
		return false, err
	}
	return s.tree.Len() > before, nil
}

// DeleteResult describes one deletion.
type DeleteResult struct {
	Key    string `json:"key"`
	Found  bool   `json:"found"`
	Root   bool   `json:"root"`             // the deleted node was the root
	Parent string `json:"parent,omitempty"` // key of the deleted node's parent, when not the root
}

func (r DeleteResult) String() string {
	switch {
	case !r.Found:
		return fmt.Sprintf("%s: absent", r.Key)
	case r.Root:
		return fmt.Sprintf("%s: deleted (was root)", r.Key)
	}
	return fmt.Sprintf("%s: deleted (parent %s)", r.Key, r.Parent)
}

// Delete removes key.
func (s *Session) Delete(key string) DeleteResult {
	parent, ok := s.tree.Delete(key)
	r := DeleteResult{Key: key, Found: ok}
	if !ok {
		return r
	}
	if parent == nil {
		r.Root = true
	} else {
		r.Parent = parent.Key
	}
	return r
}

// Find reports whether key is present.
func (s *Session) Find(key string) bool {
	return s.tree.Find(key) != nil
}

// Clear removes every key and returns how many nodes were released.
func (s *Session) Clear() int {
	released := 0
	s.tree.Destroy(func(string) { released++ })
	return released
}

// Report summarizes the shape of a tree.
type Report struct {
	Comparator string `json:"comparator"`
	Keys       int    `json:"keys"`
	Height     int    `json:"height"`
	Bound      int    `json:"bound"`
	Failed     int    `json:"failed_inserts"`
	Capacity   int    `json:"capacity,omitempty"`
	Problem    string `json:"problem,omitempty"`
}

func (r Report) Valid() bool {
	return r.Problem == ""
}

func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "comparator: %s\n", r.Comparator)
	fmt.Fprintf(&b, "keys:       %d\n", r.Keys)
	fmt.Fprintf(&b, "height:     %d (AVL bound %d)\n", r.Height, r.Bound)
	if r.Capacity > 0 {
		fmt.Fprintf(&b, "capacity:   %d nodes\n", r.Capacity)
	}
	if r.Failed > 0 {
		fmt.Fprintf(&b, "failed:     %d inserts\n", r.Failed)
	}
	if r.Valid() {
		b.WriteString("status:     ok\n")
	} else {
		fmt.Fprintf(&b, "status:     invalid: %s\n", r.Problem)
	}
	return b.String()
}

// Check validates the tree.
func (s *Session) Check() Report {
	r := Report{
		Comparator: s.strategy.Name(),
		Keys:       s.tree.Len(),
		Height:     s.tree.Height(),
		Bound:      tsearch.MaxHeight(s.tree.Len()),
		Failed:     s.failed,
	}
	if s.arena != nil {
		r.Capacity = s.arena.Cap()
	}
	if err := s.tree.Validate(); err != nil {
		r.Problem = err.Error()
	} else if r.Height > r.Bound {
		r.Problem = fmt.Sprintf("height %d exceeds bound %d", r.Height, r.Bound)
	}
	return r
}

const shellHelp = `# Commands

| command | effect |
|---|---|
| insert KEY... | add keys |
| delete KEY... | remove keys, showing each parent |
| find KEY... | look keys up |
| clear | remove every key |
| check | validate the tree |
| help | show this help |
| quit | leave the shell |

Quote keys that contain spaces: insert "git status".
Press ctrl+y to copy the rendered tree.
`

// Exec runs one shell command line and returns its output.
func (s *Session) Exec(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", errors.Wrap(err, "parse command")
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, keys := strings.ToLower(args[0]), args[1:]
	needKeys := func() error {
		if len(keys) == 0 {
			return errors.Errorf("%s needs at least one key", cmd)
		}
		return nil
	}

	var out strings.Builder
	switch cmd {
	case "insert", "add", "i":
		if err := needKeys(); err != nil {
			return "", err
		}
		for _, k := range keys {
			ok, err := s.Insert(k)
			switch {
			case err != nil:
				fmt.Fprintf(&out, "%s: %v\n", k, err)
			case ok:
				fmt.Fprintf(&out, "%s: inserted\n", k)
			default:
				fmt.Fprintf(&out, "%s: already present\n", k)
			}
		}
	case "delete", "del", "rm", "d":
		if err := needKeys(); err != nil {
			return "", err
		}
		for _, k := range keys {
			fmt.Fprintln(&out, s.Delete(k))
		}
	case "find", "f":
		if err := needKeys(); err != nil {
			return "", err
		}
		for _, k := range keys {
			if s.Find(k) {
				fmt.Fprintf(&out, "%s: found\n", k)
			} else {
				fmt.Fprintf(&out, "%s: absent\n", k)
			}
		}
	case "clear":
		fmt.Fprintf(&out, "released %d nodes\n", s.Clear())
	case "check":
		out.WriteString(s.Check().String())
	case "help", "?":
		out.WriteString(shellHelp)
	case "quit", "exit", "q":
		return "", errQuit
	default:
		return "", errors.Errorf("unknown command %q, try help", cmd)
	}
	return out.String(), nil
}
