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
	"strings"

	"github.com/pkg/errors"
)

// readKeys reads one key per line. Surrounding whitespace is trimmed; blank
// lines and lines starting with '#' are skipped.
func readKeys(r io.Reader) ([]string, error) {
	var keys []string

	scanner := bufio.NewScanner(r)
	// Allow long keys
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// loadSources reads keys from every path in order. With no paths it reads
// stdin, unless stdin is a terminal.
func loadSources(paths []string, stdin *os.File) ([]string, error) {
	if len(paths) == 0 {
		if stdin == nil {
			return nil, nil
		}
		if stat, err := stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice != 0 {
			return nil, nil
		}
		keys, err := readKeys(stdin)
		return keys, errors.Wrap(err, "read stdin")
	}

	var keys []string
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open source")
		}
		k, err := readKeys(file)
		file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		keys = append(keys, k...)
	}
	return keys, nil
}
