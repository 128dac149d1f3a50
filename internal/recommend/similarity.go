// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"
)

// DefaultMinOverlap is the co-rater threshold used when none is configured.
const DefaultMinOverlap = 100

// cancelCheckEvery is how many candidates a worker scores between context checks.
const cancelCheckEvery = 64

// SimilarityOptions tunes SimilarTo.
type SimilarityOptions struct {
	// MinOverlap excludes candidates with fewer co-raters.
	MinOverlap int

	// Workers bounds the scoring goroutines (<= 0 = runtime.NumCPU()).
	Workers int
}

// DefaultSimilarityOptions returns MinOverlap 100 and one worker per CPU.
func DefaultSimilarityOptions() SimilarityOptions {
	return SimilarityOptions{
		MinOverlap: DefaultMinOverlap,
		Workers:    runtime.NumCPU(),
	}
}

// SimilarTo returns up to n titles whose ratings correlate with title's,
// best first.
//
// For each other column the co-rater set is the users with a cell in both
// columns. Candidates with fewer than opts.MinOverlap co-raters, or with
// constant ratings on either side of the co-rater set, are excluded. The
// remaining candidates are ordered by correlation descending, then
// co-rater count descending, then title ascending. title itself never
// appears in the result.
//
// It returns *UnknownMovieError when title is not a column, and ctx.Err()
// if ctx is cancelled while scoring. n <= 0 yields an empty result.
func SimilarTo(ctx context.Context, m *Matrix, title string, n int, opts SimilarityOptions) ([]SimilarMovie, error) {
	qi, ok := m.index[title]
	if !ok {
		return nil, &UnknownMovieError{Title: title}
	}
	if n <= 0 {
		return []SimilarMovie{}, nil
	}

	query := &m.columns[qi]
	minOverlap := opts.MinOverlap
	if minOverlap < 0 {
		minOverlap = 0
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(m.columns) {
		workers = len(m.columns)
	}

	partial := make([][]SimilarMovie, workers)
	chunkSize := (len(m.columns) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, len(m.columns))
		if start >= end {
			break
		}

		w := w
		g.Go(func() error {
			var xs, ys []float64
			for ci := start; ci < end; ci++ {
				if (ci-start)%cancelCheckEvery == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				if ci == qi {
					continue
				}

				cand := &m.columns[ci]
				if cand.Raters() < minOverlap || query.Raters() < minOverlap {
					continue
				}

				xs, ys = coRated(query, cand, xs[:0], ys[:0])
				if len(xs) < minOverlap {
					continue
				}

				r, ok := Pearson(xs, ys)
				if !ok {
					continue
				}

				partial[w] = append(partial[w], SimilarMovie{
					Title:       cand.title,
					Correlation: r,
					CoRaters:    len(xs),
					RatingCount: cand.count,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []SimilarMovie
	for _, p := range partial {
		results = append(results, p...)
	}

	sortSimilar(results)

	if len(results) > n {
		results = results[:n]
	}
	if results == nil {
		results = []SimilarMovie{}
	}
	return results, nil
}

// coRated appends the paired ratings of users present in both columns.
func coRated(a, b *Column, xs, ys []float64) ([]float64, []float64) {
	i, j := 0, 0
	for i < len(a.users) && j < len(b.users) {
		switch {
		case a.users[i] < b.users[j]:
			i++
		case a.users[i] > b.users[j]:
			j++
		default:
			xs = append(xs, a.ratings[i])
			ys = append(ys, b.ratings[j])
			i++
			j++
		}
	}
	return xs, ys
}

// sortSimilar orders by correlation desc, co-raters desc, title asc.
func sortSimilar(items []SimilarMovie) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Correlation != b.Correlation {
			return a.Correlation > b.Correlation
		}
		if a.CoRaters != b.CoRaters {
			return a.CoRaters > b.CoRaters
		}
		return a.Title < b.Title
	})
}

// Pearson returns the Pearson correlation of paired samples x and y, with
// means taken over the pairs given. ok is false when fewer than two pairs
// are given, the lengths differ, or either side is constant; a zero
// variance never yields NaN. The result is clamped to [-1, 1].
func Pearson(x, y []float64) (r float64, ok bool) {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0, false
	}

	constX, constY := true, true
	var sumX, sumY float64
	for i := 0; i < n; i++ {
		if x[i] != x[0] {
			constX = false
		}
		if y[i] != y[0] {
			constY = false
		}
		sumX += x[i]
		sumY += y[i]
	}
	if constX || constY {
		return 0, false
	}

	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var num, denX, denY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}
	if denX == 0 || denY == 0 {
		return 0, false
	}

	r = num / math.Sqrt(denX*denY)
	if math.IsNaN(r) {
		return 0, false
	}
	return math.Max(-1, math.Min(1, r)), true
}
