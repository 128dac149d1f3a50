// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
)

// Column holds every rating recorded against one title.
//
// users is ascending, so two columns can be intersected with a merge join.
// A cell exists only if the user rated the title; there is no zero fill.
type Column struct {
	title   string
	itemIDs []int
	unknown bool

	users   []int32   // dense user indices, ascending
	ratings []float64 // aligned with users

	count int     // raw rating records
	mean  float64 // over raw rating records
}

// Title returns the column title.
func (c *Column) Title() string { return c.title }

// ItemIDs returns the item ids mapped to this title, ascending.
func (c *Column) ItemIDs() []int {
	out := make([]int, len(c.itemIDs))
	copy(out, c.itemIDs)
	return out
}

// Unknown reports whether this is the UnknownTitle placeholder column.
func (c *Column) Unknown() bool { return c.unknown }

// RatingCount returns the number of rating records for the title.
func (c *Column) RatingCount() int { return c.count }

// MeanRating returns the mean over all rating records for the title.
func (c *Column) MeanRating() float64 { return c.mean }

// Raters returns the number of distinct users with a cell in this column.
// It differs from RatingCount only when one user rated several item ids
// that share the title.
func (c *Column) Raters() int { return len(c.users) }

// Matrix is an immutable user-by-title rating matrix.
// Build is the only constructor.
type Matrix struct {
	columns []Column       // ascending by title
	index   map[string]int // title -> column

	userIDs   []int         // dense index -> user id, ascending
	userIndex map[int]int32 // user id -> dense index

	popular []int // column order for MostPopular
	rated   []int // column order for TopRated

	stats DatasetStats
}

type cellAcc struct {
	sum float64
	n   int
}

type columnBuilder struct {
	items   map[int]struct{}
	cells   map[int32]*cellAcc
	unknown bool
	count   int
	sum     float64
}

// Build pivots ratings into a Matrix, resolving item ids through titles.
//
// Ratings whose item id is absent from titles are grouped under
// UnknownTitle. Item ids sharing a title share a column; a user who rated
// several of them gets the mean of those ratings as the cell value.
// Ratings are not normalised.
//
// Build rejects out-of-range values, duplicate (user_id, item_id) pairs
// and titles equal to UnknownTitle with a *MalformedRecordError.
func Build(ratings []Rating, titles Titles) (*Matrix, error) {
	for id, title := range titles {
		if title == UnknownTitle {
			return nil, &MalformedRecordError{
				Source: "titles",
				Reason: fmt.Sprintf("item %d uses the reserved title %q", id, UnknownTitle),
				Err:    ErrReservedTitle,
			}
		}
	}

	userSet := make(map[int]struct{})
	seen := make(map[[2]int]struct{}, len(ratings))
	for i, r := range ratings {
		if err := r.Validate(); err != nil {
			return nil, &MalformedRecordError{Source: "ratings", Reason: fmt.Sprintf("record %d: %v", i+1, err)}
		}
		key := [2]int{r.UserID, r.ItemID}
		if _, dup := seen[key]; dup {
			return nil, &MalformedRecordError{
				Source: "ratings",
				Reason: fmt.Sprintf("record %d: user %d rated item %d more than once", i+1, r.UserID, r.ItemID),
				Err:    ErrDuplicateRating,
			}
		}
		seen[key] = struct{}{}
		userSet[r.UserID] = struct{}{}
	}

	m := &Matrix{
		userIDs:   make([]int, 0, len(userSet)),
		userIndex: make(map[int]int32, len(userSet)),
	}
	for id := range userSet {
		m.userIDs = append(m.userIDs, id)
	}
	sort.Ints(m.userIDs)
	for i, id := range m.userIDs {
		m.userIndex[id] = int32(i)
	}

	builders := make(map[string]*columnBuilder)
	unknownItems := make(map[int]struct{})
	ratedItems := make(map[int]struct{})

	for _, r := range ratings {
		title, ok := titles[r.ItemID]
		if !ok {
			title = UnknownTitle
			unknownItems[r.ItemID] = struct{}{}
		}
		ratedItems[r.ItemID] = struct{}{}

		b := builders[title]
		if b == nil {
			b = &columnBuilder{
				items: make(map[int]struct{}),
				cells: make(map[int32]*cellAcc),
			}
			builders[title] = b
		}
		if !ok {
			b.unknown = true
		}
		b.items[r.ItemID] = struct{}{}
		b.count++
		b.sum += float64(r.Value)

		u := m.userIndex[r.UserID]
		acc := b.cells[u]
		if acc == nil {
			acc = &cellAcc{}
			b.cells[u] = acc
		}
		acc.sum += float64(r.Value)
		acc.n++

		m.stats.Distribution[r.Value-MinRating]++
	}

	names := make([]string, 0, len(builders))
	for title := range builders {
		names = append(names, title)
	}
	sort.Strings(names)

	m.columns = make([]Column, len(names))
	m.index = make(map[string]int, len(names))
	for i, title := range names {
		m.columns[i] = builders[title].column(title)
		m.index[title] = i
		if !m.columns[i].unknown && len(m.columns[i].itemIDs) > 1 {
			m.stats.CollidingTitles++
		}
	}

	m.popular = popularityOrder(m.columns)
	m.rated = ratedOrder(m.columns)

	m.stats.TotalRatings = len(ratings)
	m.stats.UniqueUsers = len(m.userIDs)
	m.stats.UniqueItems = len(ratedItems)
	m.stats.UniqueTitles = len(m.columns)
	m.stats.UnknownItems = len(unknownItems)
	if len(ratings) > 0 {
		var total float64
		for v, n := range m.stats.Distribution {
			total += float64((v + MinRating) * n)
		}
		m.stats.MeanRating = total / float64(len(ratings))
	}

	return m, nil
}

// column flattens the builder into a Column with ascending users.
func (b *columnBuilder) column(title string) Column {
	c := Column{
		title:   title,
		unknown: b.unknown,
		count:   b.count,
		itemIDs: make([]int, 0, len(b.items)),
		users:   make([]int32, 0, len(b.cells)),
		ratings: make([]float64, len(b.cells)),
	}
	if b.count > 0 {
		c.mean = b.sum / float64(b.count)
	}

	for id := range b.items {
		c.itemIDs = append(c.itemIDs, id)
	}
	sort.Ints(c.itemIDs)

	for u := range b.cells {
		c.users = append(c.users, u)
	}
	sort.Slice(c.users, func(i, j int) bool { return c.users[i] < c.users[j] })
	for i, u := range c.users {
		acc := b.cells[u]
		c.ratings[i] = acc.sum / float64(acc.n)
	}

	return c
}

// NumUsers returns the number of distinct users.
func (m *Matrix) NumUsers() int { return len(m.userIDs) }

// NumTitles returns the number of title columns.
func (m *Matrix) NumTitles() int { return len(m.columns) }

// HasTitle reports whether title is a column (exact match).
func (m *Matrix) HasTitle(title string) bool {
	_, ok := m.index[title]
	return ok
}

// Column returns the column for title.
func (m *Matrix) Column(title string) (*Column, bool) {
	i, ok := m.index[title]
	if !ok {
		return nil, false
	}
	return &m.columns[i], true
}

// Titles returns all column titles in ascending order.
func (m *Matrix) Titles() []string {
	out := make([]string, len(m.columns))
	for i := range m.columns {
		out[i] = m.columns[i].title
	}
	return out
}

// Rating returns the cell for (userID, title). ok is false when the user
// did not rate the title, which is distinct from any valid rating.
func (m *Matrix) Rating(userID int, title string) (value float64, ok bool) {
	u, known := m.userIndex[userID]
	if !known {
		return 0, false
	}
	c, known := m.Column(title)
	if !known {
		return 0, false
	}
	i := sort.Search(len(c.users), func(i int) bool { return c.users[i] >= u })
	if i < len(c.users) && c.users[i] == u {
		return c.ratings[i], true
	}
	return 0, false
}

// Stats returns the dataset summary computed at build time.
func (m *Matrix) Stats() DatasetStats {
	return m.stats
}
