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
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// newLogger returns a logfmt logger writing to w that drops lines below lvl.
func newLogger(w io.Writer, lvl string) (log.Logger, error) {
	var filter level.Option
	switch lvl {
	case "debug":
		filter = level.AllowDebug()
	case "info", "":
		filter = level.AllowInfo()
	case "warn":
		filter = level.AllowWarn()
	case "error":
		filter = level.AllowError()
	default:
		return nil, fmt.Errorf("unknown log level %q (want debug, info, warn or error)", lvl)
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, filter)
	return log.With(logger, "ts", log.DefaultTimestampUTC), nil
}
