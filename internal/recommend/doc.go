// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend implements item-based collaborative filtering over a
// user-by-title rating matrix.
//
// # Architecture
//
// Data flows one way, leaves first:
//
//	LoadRatings / LoadMovies  ->  Build  ->  SimilarTo | MostPopular | TopRated  ->  Service
//
//   - Rating Store (store.go): parses the ratings and titles sources,
//     rejecting malformed lines with a MalformedRecordError.
//   - Matrix (matrix.go): immutable sparse matrix keyed by user and title.
//     Distinct item ids sharing a title share a column. Item ids without a
//     title are grouped under UnknownTitle.
//   - Similarity (similarity.go): Pearson correlation between the query
//     column and every other column, computed over co-raters only.
//   - Popularity (popularity.go): rating count and mean rankings, ordered
//     once at build time.
//   - Service (service.go): the query facade used by the API and CLI.
//
// # Usage
//
//	m, err := recommend.Load(ctx, recommend.Sources{
//	    RatingsPath: "data/u.data",
//	    TitlesPath:  "data/Movie_Id_Titles",
//	}, logger)
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Cannot build rating matrix")
//	}
//	svc := recommend.NewService(m, recommend.DefaultOptions())
//	res := svc.Recommend(ctx, "Star Wars (1977)", 10)
//
// # Thread Safety
//
// A built Matrix is never mutated. Any number of goroutines may query it
// and the Service without coordination.
package recommend
