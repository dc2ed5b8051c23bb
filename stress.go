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
	"math"
	"math/rand"

	"github.com/cybrota/avltrace/avl"
	"github.com/schollz/progressbar/v3"
)

type StressOptions struct {
	Ops          int
	Seed         int64
	MaxKey       int
	DeleteRatio  float64 // fraction of operations that are deletes
	ShowProgress bool
	Output       io.Writer // progress bar destination
}

type StressReport struct {
	Inserts     int
	Deletes     int
	Promotions  int
	FinalSize   int
	FinalHeight int
	MaxHeight   int
}

func (r *StressReport) String() string {
	return fmt.Sprintf("inserts=%d deletes=%d promotions=%d size=%d height=%d max-height=%d",
		r.Inserts, r.Deletes, r.Promotions, r.FinalSize, r.FinalHeight, r.MaxHeight)
}

// heightBound is the worst-case AVL height for n nodes
func heightBound(n int) int {
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 0.3277))
}

// RunStress applies random operations and verifies every invariant after
// each one against a map of the keys that should be present.
func RunStress(opts StressOptions) (*StressReport, error) {
	if opts.Ops <= 0 {
		return nil, fmt.Errorf("ops must be positive, got %d", opts.Ops)
	}
	if opts.MaxKey <= 0 {
		return nil, fmt.Errorf("max-key must be positive, got %d", opts.MaxKey)
	}
	if opts.DeleteRatio < 0 || opts.DeleteRatio > 1 {
		return nil, fmt.Errorf("delete ratio must be within [0, 1], got %g", opts.DeleteRatio)
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress {
		options := []progressbar.Option{
			progressbar.OptionSetDescription("🌳 Balancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		}
		if opts.Output != nil {
			options = append(options, progressbar.OptionSetWriter(opts.Output))
		}
		bar = progressbar.NewOptions(opts.Ops, options...)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	tree := avl.New[int]()
	model := make(map[int]struct{})
	report := &StressReport{}

	for i := 0; i < opts.Ops; i++ {
		key := rng.Intn(opts.MaxKey)

		if rng.Float64() < opts.DeleteRatio {
			trace := tree.Delete(key)
			if _, ok := trace.Promoted(); ok {
				report.Promotions++
			}
			delete(model, key)
			report.Deletes++
		} else {
			tree.Insert(key)
			model[key] = struct{}{}
			report.Inserts++
		}

		if err := tree.Check(); err != nil {
			return report, fmt.Errorf("step %d: %w", i, err)
		}
		if tree.Len() != len(model) {
			return report, fmt.Errorf("step %d: tree holds %d keys, expected %d", i, tree.Len(), len(model))
		}
		if h, bound := tree.Height(), heightBound(tree.Len()); h > bound {
			return report, fmt.Errorf("step %d: height %d exceeds bound %d for %d keys", i, h, bound, tree.Len())
		}
		report.MaxHeight = max(report.MaxHeight, tree.Height())

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	for key := range model {
		if !tree.Contains(key) {
			return report, fmt.Errorf("key %d missing after run", key)
		}
	}

	report.FinalSize = tree.Len()
	report.FinalHeight = tree.Height()
	return report, nil
}
