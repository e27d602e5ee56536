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
	"math/rand/v2"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/tsearch/tsearch"
)

type BenchOptions struct {
	N         int
	Seed      uint64
	NodeLimit int       // 0 = heap allocation
	Progress  io.Writer // nil disables the progress bar
}

type BenchResult struct {
	Inserted   int           `json:"inserted"`
	Duplicates int           `json:"duplicates"`
	Failed     int           `json:"failed_inserts"`
	Deleted    int           `json:"deleted"`
	Missing    int           `json:"missing"`
	PeakHeight int           `json:"peak_height"`
	PeakBound  int           `json:"peak_bound"`
	Destroyed  int           `json:"destroyed"`
	Elapsed    time.Duration `json:"elapsed"`
}

func (r BenchResult) String() string {
	return fmt.Sprintf(`inserted:   %d (%d duplicates, %d failed)
deleted:    %d (%d missing)
peak:       height %d, AVL bound %d
destroyed:  %d nodes
elapsed:    %s
`, r.Inserted, r.Duplicates, r.Failed, r.Deleted, r.Missing, r.PeakHeight, r.PeakBound, r.Destroyed, r.Elapsed)
}

func newBenchBar(total int, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("🌳 inserting"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}

// runBench inserts opts.N random keys, deletes opts.N random keys and then
// destroys the tree, validating the structure after each phase.
func runBench(opts BenchOptions, logger log.Logger) (BenchResult, error) {
	var result BenchResult
	if opts.N <= 0 {
		return result, errors.Errorf("bench needs a positive key count, got %d", opts.N)
	}

	var treeOpts []tsearch.Option[int]
	if opts.NodeLimit > 0 {
		treeOpts = append(treeOpts, tsearch.WithAllocator[int](tsearch.NewArena[int](opts.NodeLimit)))
	}
	tree := tsearch.NewOrdered(treeOpts...)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	keySpace := 4 * opts.N

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = newBenchBar(2*opts.N, opts.Progress)
	}
	start := time.Now()

	for i := 0; i < opts.N; i++ {
		before := tree.Len()
		if _, err := tree.Insert(rng.IntN(keySpace)); err != nil {
			result.Failed++
		} else if tree.Len() > before {
			result.Inserted++
		} else {
			result.Duplicates++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	result.PeakHeight = tree.Height()
	result.PeakBound = tsearch.MaxHeight(tree.Len())
	if err := tree.Validate(); err != nil {
		return result, errors.Wrap(err, "after inserts")
	}
	level.Debug(logger).Log("msg", "insert phase done", "keys", tree.Len(), "height", tree.Height())

	if bar != nil {
		bar.Describe("🪓 deleting")
	}
	for i := 0; i < opts.N; i++ {
		if _, ok := tree.Delete(rng.IntN(keySpace)); ok {
			result.Deleted++
		} else {
			result.Missing++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if err := tree.Validate(); err != nil {
		return result, errors.Wrap(err, "after deletes")
	}
	level.Debug(logger).Log("msg", "delete phase done", "keys", tree.Len(), "height", tree.Height())

	remaining := tree.Len()
	tree.Destroy(func(int) { result.Destroyed++ })
	result.Elapsed = time.Since(start)
	if bar != nil {
		bar.Finish()
	}

	if result.Destroyed != remaining || tree.Len() != 0 {
		return result, errors.Errorf("destroy released %d of %d nodes", result.Destroyed, remaining)
	}
	if result.Failed > 0 {
		level.Warn(logger).Log("msg", "node limit reached during bench", "failed", result.Failed)
	}
	return result, nil
}
