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
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/cybrota/arbor/tree"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// BenchResult summarizes one bench run
type BenchResult struct {
	Kind       tree.Kind
	Inserted   int
	Duplicates int // draws rejected because the key was already stored
	BloomHits  int // draws the filter flagged, each confirmed with Search
	Deleted    int

	PeakHeight int
	PeakBound  float64
	Height     int
	Bound      float64
	Elapsed    time.Duration
}

// heightBound is the worst case height (in edges) for n keys
func heightBound(kind tree.Kind, n int) float64 {
	if n == 0 {
		return 0
	}
	if kind == tree.KindAVL {
		return 1.44 * math.Log2(float64(n)+2)
	}
	return 2 * math.Log2(float64(n)+1)
}

func newBenchBar(out io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("🌳 Inserting keys..."),
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
			fmt.Fprintf(out, "\n✅ Bench completed!\n")
		}),
	)
}

// runBench inserts n distinct pseudo random keys drawn from seed, deletes
// every other one and checks the height against the worst case bound
// after each phase.
func runBench(kind tree.Kind, n int, seed int64, out io.Writer, showProgress bool) (*BenchResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("bench needs a positive key count, got %d", n)
	}

	engine := newEngine(kind)
	defer engine.Teardown()

	rng := rand.New(rand.NewSource(seed))
	filter := bloom.NewWithEstimates(uint(n), 0.01)
	keySpace := int64(n) * 4
	keys := make([]int, 0, n)
	res := &BenchResult{Kind: kind}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = newBenchBar(out, n+(n+1)/2)
	}

	start := time.Now()
	var buf [8]byte
	for len(keys) < n {
		key := int(rng.Int63n(keySpace) - keySpace/2)
		binary.BigEndian.PutUint64(buf[:], uint64(key))

		// the filter never misses a stored key, so only its hits need a lookup
		if filter.Test(buf[:]) {
			res.BloomHits++
			if _, found := engine.Search(key); found {
				res.Duplicates++
				continue
			}
		}

		if err := engine.Insert(key); err != nil {
			return nil, err
		}
		filter.Add(buf[:])
		keys = append(keys, key)
		res.Inserted++
		if bar != nil {
			bar.Add(1)
		}
	}

	res.PeakHeight = engine.Height()
	res.PeakBound = heightBound(kind, engine.Len())
	if float64(res.PeakHeight) > res.PeakBound {
		return res, errors.Wrapf(tree.ErrInvariant, "height %d exceeds bound %.2f after inserts", res.PeakHeight, res.PeakBound)
	}

	if bar != nil {
		bar.Describe("🌳 Deleting keys...")
	}
	for i := 0; i < len(keys); i += 2 {
		if err := engine.Delete(keys[i]); err != nil {
			return nil, err
		}
		res.Deleted++
		if bar != nil {
			bar.Add(1)
		}
	}
	res.Elapsed = time.Since(start)

	if bar != nil {
		bar.Finish()
	}

	if err := engine.Validate(); err != nil {
		return res, err
	}
	res.Height = engine.Height()
	res.Bound = heightBound(kind, engine.Len())
	if float64(res.Height) > res.Bound {
		return res, errors.Wrapf(tree.ErrInvariant, "height %d exceeds bound %.2f after deletes", res.Height, res.Bound)
	}
	return res, nil
}

func printBenchResult(w io.Writer, res *BenchResult) {
	fmt.Fprintf(w, "🌳 %s%s%s\n", Green, engineTitle(res.Kind), Reset)
	fmt.Fprintf(w, "  • inserted:   %d (%d duplicate draws, %d filter hits)\n", res.Inserted, res.Duplicates, res.BloomHits)
	fmt.Fprintf(w, "  • deleted:    %d\n", res.Deleted)
	fmt.Fprintf(w, "  • peak height: %d (bound %.2f)\n", res.PeakHeight, res.PeakBound)
	fmt.Fprintf(w, "  • height:     %d (bound %.2f)\n", res.Height, res.Bound)
	fmt.Fprintf(w, "  • elapsed:    %s\n", res.Elapsed.Round(time.Millisecond))
}
