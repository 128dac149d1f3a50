// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "sort"

// DefaultTopRatedMinRatings is the rating-count floor used by TopRated when none is configured.
const DefaultTopRatedMinRatings = 50

// MostPopular returns up to n titles ordered by rating count descending,
// then mean rating descending, then title ascending. The order is fixed
// when the matrix is built, so repeated calls return identical results.
func MostPopular(m *Matrix, n int) []PopularMovie {
	if n <= 0 {
		return []PopularMovie{}
	}
	n = min(n, len(m.popular))

	out := make([]PopularMovie, 0, n)
	for _, ci := range m.popular[:n] {
		out = append(out, m.columns[ci].popularEntry())
	}
	return out
}

// TopRated returns up to n titles with at least minRatings ratings, ordered
// by mean rating descending, then rating count descending, then title ascending.
func TopRated(m *Matrix, n, minRatings int) []PopularMovie {
	out := []PopularMovie{}
	if n <= 0 {
		return out
	}
	for _, ci := range m.rated {
		if len(out) == n {
			break
		}
		c := &m.columns[ci]
		if c.count < minRatings {
			continue
		}
		out = append(out, c.popularEntry())
	}
	return out
}

// Browse returns every title with its rating count and mean, ascending by title.
func Browse(m *Matrix) []PopularMovie {
	out := make([]PopularMovie, len(m.columns))
	for i := range m.columns {
		out[i] = m.columns[i].popularEntry()
	}
	return out
}

func (c *Column) popularEntry() PopularMovie {
	return PopularMovie{
		Title:       c.title,
		RatingCount: c.count,
		MeanRating:  c.mean,
	}
}

// popularityOrder sorts column indices by count desc, mean desc, title asc.
func popularityOrder(cols []Column) []int {
	order := columnIndices(len(cols))
	sort.Slice(order, func(i, j int) bool {
		a, b := &cols[order[i]], &cols[order[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		if a.mean != b.mean {
			return a.mean > b.mean
		}
		return a.title < b.title
	})
	return order
}

// ratedOrder sorts column indices by mean desc, count desc, title asc.
func ratedOrder(cols []Column) []int {
	order := columnIndices(len(cols))
	sort.Slice(order, func(i, j int) bool {
		a, b := &cols[order[i]], &cols[order[j]]
		if a.mean != b.mean {
			return a.mean > b.mean
		}
		if a.count != b.count {
			return a.count > b.count
		}
		return a.title < b.title
	})
	return order
}

func columnIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}
