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
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/cybrota/tsearch/keyset"
	"github.com/cybrota/tsearch/tsearch"
)

// HistoryEntry holds the optional timestamp and the command
type HistoryEntry struct {
	Command   string
	Timestamp *time.Time
}

func newHistoryScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for better performance with large history files
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// readZshHistory parses zsh extended history (": <epoch>:<duration>;<command>").
// Lines without the metadata prefix are kept as plain commands.
func readZshHistory(r io.Reader) ([]HistoryEntry, error) {
	var history []HistoryEntry

	scanner := newHistoryScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, ": ") {
			history = append(history, HistoryEntry{Command: line})
			continue
		}

		// ": 1673291850:0;ls -la" splits into "", " 1673291850", "0;ls -la"
		parts := strings.SplitN(line, ":", 3)
		if len(parts) < 3 {
			continue
		}

		epoch, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			history = append(history, HistoryEntry{Command: line})
			continue
		}
		t := time.Unix(epoch, 0)

		// Drop the "0;" duration field
		subParts := strings.SplitN(parts[2], ";", 2)
		if len(subParts) < 2 {
			continue
		}
		history = append(history, HistoryEntry{Timestamp: &t, Command: subParts[1]})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// readBashHistory parses bash history. A "#<epoch>" line timestamps the
// command that follows it (HISTTIMEFORMAT set).
func readBashHistory(r io.Reader) ([]HistoryEntry, error) {
	var history []HistoryEntry
	var lastTimestamp *time.Time

	scanner := newHistoryScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			epoch, err := strconv.ParseInt(strings.TrimSpace(strings.TrimPrefix(line, "#")), 10, 64)
			if err == nil {
				t := time.Unix(epoch, 0)
				lastTimestamp = &t
			} else {
				lastTimestamp = nil
			}
			continue
		}

		history = append(history, HistoryEntry{Timestamp: lastTimestamp, Command: line})
		// Reset the timestamp so it won't affect subsequent commands
		lastTimestamp = nil
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// detectCurrentShell detects the type of Unix shell: Bash, Zshell etc.
func detectCurrentShell() string {
	currentShellPath, ok := os.LookupEnv("SHELL")
	if !ok {
		return "bash"
	}
	// "/bin/zsh" -> "zsh"
	return filepath.Base(currentShellPath)
}

// historyPath returns the default history file of shell.
func historyPath(shell string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	switch shell {
	case "zsh":
		return filepath.Join(homeDir, ".zsh_history"), nil
	case "bash":
		return filepath.Join(homeDir, ".bash_history"), nil
	}
	return "", errors.Errorf("unsupported shell %q (want bash or zsh)", shell)
}

// readHistory parses the history file at path in the format of shell.
func readHistory(shell, path string) ([]HistoryEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Errorf("%s history file not found at %s. Run some commands in %s first", shell, path, shell)
		}
		return nil, errors.Wrap(err, "open history")
	}
	defer file.Close()

	var history []HistoryEntry
	switch shell {
	case "zsh":
		history, err = readZshHistory(file)
	case "bash":
		history, err = readBashHistory(file)
	default:
		return nil, errors.Errorf("unsupported shell %q (want bash or zsh)", shell)
	}
	return history, errors.Wrapf(err, "read %s", path)
}

// populateSet adds every history command to set and returns how many
// commands could not be stored.
func populateSet(set *keyset.Set, history []HistoryEntry, logger log.Logger) int {
	dropped := 0
	for _, h := range history {
		command := strings.TrimSpace(h.Command)
		if command == "" {
			continue
		}
		if _, err := set.Add(command, h.Timestamp); err != nil {
			if errors.Is(err, tsearch.ErrNoMemory) {
				dropped++
				continue
			}
			level.Warn(logger).Log("msg", "failed to add history entry", "command", command, "err", err)
			dropped++
		}
	}
	if dropped > 0 {
		level.Warn(logger).Log("msg", "node limit reached, history truncated", "dropped", dropped)
	}
	return dropped
}
