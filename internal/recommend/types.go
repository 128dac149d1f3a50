// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "fmt"

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// UnknownTitle is the column that collects ratings for item ids missing from the titles source.
const UnknownTitle = "Unknown Title"

// Rating is one user's rating of one item.
type Rating struct {
	// UserID identifies the rater (>= 1).
	UserID int `json:"user_id"`

	// ItemID is the join key into the titles source (>= 1).
	ItemID int `json:"item_id"`

	// Value is the star rating in [MinRating, MaxRating].
	Value int `json:"rating"`

	// Timestamp is carried from the source and not used for ranking.
	Timestamp int64 `json:"timestamp"`
}

// Validate checks the identifier and value ranges.
func (r Rating) Validate() error {
	if r.UserID < 1 {
		return fmt.Errorf("user_id must be >= 1, got %d", r.UserID)
	}
	if r.ItemID < 1 {
		return fmt.Errorf("item_id must be >= 1, got %d", r.ItemID)
	}
	if r.Value < MinRating || r.Value > MaxRating {
		return fmt.Errorf("rating must be between %d and %d, got %d", MinRating, MaxRating, r.Value)
	}
	return nil
}

// Movie maps an item id to its display title.
type Movie struct {
	ItemID int    `json:"item_id"`
	Title  string `json:"title"`
}

// Titles maps item ids to titles. Item ids are unique, titles need not be.
type Titles map[int]string

// SimilarMovie is one row of a similar-movie result.
type SimilarMovie struct {
	Title string `json:"title"`

	// Correlation is the Pearson coefficient in [-1, 1].
	Correlation float64 `json:"correlation"`

	// CoRaters is the number of users who rated both movies.
	CoRaters int `json:"co_raters"`

	// RatingCount is the candidate's total number of ratings.
	RatingCount int `json:"num_ratings"`
}

// PopularMovie is one row of a popularity, top-rated or browse listing.
type PopularMovie struct {
	Title       string  `json:"title"`
	RatingCount int     `json:"num_ratings"`
	MeanRating  float64 `json:"mean_rating"`
}

// DatasetStats summarises the loaded dataset.
type DatasetStats struct {
	TotalRatings int `json:"total_ratings"`
	UniqueUsers  int `json:"unique_users"`
	UniqueItems  int `json:"unique_items"`
	UniqueTitles int `json:"unique_titles"`

	// UnknownItems counts rated item ids missing from the titles source.
	UnknownItems int `json:"unknown_items"`

	// CollidingTitles counts titles shared by more than one item id.
	CollidingTitles int `json:"colliding_titles"`

	// Distribution[i] is the number of ratings with value i+1.
	Distribution [MaxRating]int `json:"distribution"`

	MeanRating float64 `json:"mean_rating"`
}
