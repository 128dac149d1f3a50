// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

// SimilarRequest is the query of GET /api/v1/recommendations/similar.
// N of 0 means "use the configured default"; the service applies its own
// configured cap on top of the max here.
type SimilarRequest struct {
	Movie string `query:"movie" validate:"required,max=512,movietitle"`
	N     int    `query:"n" validate:"min=0,max=1000"`
}

// PopularRequest is the query of GET /api/v1/movies/popular.
type PopularRequest struct {
	N int `query:"n" validate:"min=0,max=1000"`
}

// TopRatedRequest is the query of GET /api/v1/movies/top-rated.
// A nil MinRatings means "use the configured floor".
type TopRatedRequest struct {
	N          int  `query:"n" validate:"min=0,max=1000"`
	MinRatings *int `query:"min_ratings" validate:"omitempty,min=0,max=1000000"`
}
