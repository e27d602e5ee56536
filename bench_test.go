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
	"bytes"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
)

func TestRunBench(t *testing.T) {
	var progress bytes.Buffer
	result, err := runBench(BenchOptions{N: 2000, Seed: 7, Progress: &progress}, log.NewNopLogger())
	require.NoError(t, err)

	require.Equal(t, 2000, result.Inserted+result.Duplicates)
	require.Zero(t, result.Failed)
	require.Equal(t, 2000, result.Deleted+result.Missing)
	require.Equal(t, result.Inserted-result.Deleted, result.Destroyed)
	require.LessOrEqual(t, result.PeakHeight, result.PeakBound)
	require.NotEmpty(t, progress.String())
}

func TestRunBenchIsDeterministic(t *testing.T) {
	a, err := runBench(BenchOptions{N: 500, Seed: 42}, log.NewNopLogger())
	require.NoError(t, err)
	b, err := runBench(BenchOptions{N: 500, Seed: 42}, log.NewNopLogger())
	require.NoError(t, err)

	a.Elapsed, b.Elapsed = 0, 0
	require.Equal(t, a, b)
}

func TestRunBenchNodeLimit(t *testing.T) {
	result, err := runBench(BenchOptions{N: 1000, Seed: 3, NodeLimit: 100}, log.NewNopLogger())
	require.NoError(t, err)
	require.Equal(t, 100, result.Inserted)
	require.Positive(t, result.Failed)
	require.Equal(t, 1000, result.Inserted+result.Duplicates+result.Failed)
}

func TestRunBenchRejectsEmptyWorkload(t *testing.T) {
	_, err := runBench(BenchOptions{}, log.NewNopLogger())
	require.Error(t, err)
}
