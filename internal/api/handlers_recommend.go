// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/validation"
)

// requireService answers 503 when no matrix is loaded. It reports whether
// the caller may proceed.
func (h *Handler) requireService(w http.ResponseWriter, r *http.Request) bool {
	if h.svc != nil {
		return true
	}
	respondError(w, r, http.StatusServiceUnavailable, &models.APIError{
		Code:    ErrCodeNotReady,
		Message: "Rating matrix not loaded",
	}, nil)
	return false
}

// SimilarMovies handles GET /api/v1/recommendations/similar
//
// @Summary Movies similar to a title
// @Description Ranks movies by Pearson correlation of their rating columns with the query movie, over users who rated both.
// @Tags Recommendations
// @Produce json
// @Param movie query string true "Exact movie title"
// @Param n query int false "Number of results (0 = default)"
// @Success 200 {object} models.APIResponse{data=recommend.RecommendResult}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 404 {object} models.APIResponse "MOVIE_NOT_FOUND"
// @Router /recommendations/similar [get]
func (h *Handler) SimilarMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireService(w, r) {
		return
	}

	n, apiErr := parseIntParam(r, "n", 0)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	req := validation.SimilarRequest{Movie: r.URL.Query().Get("movie"), N: n}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.queryTimeout)
	defer cancel()

	res := h.svc.Recommend(ctx, req.Movie, req.N)
	if res.Error != nil {
		status := http.StatusInternalServerError
		var logErr error
		switch {
		case res.NotFound():
			status = http.StatusNotFound
		case ctx.Err() != nil:
			status = http.StatusServiceUnavailable
		default:
			logErr = res.Err()
		}
		respondError(w, r, status, &models.APIError{
			Code:    res.Error.Code,
			Message: res.Error.Message,
			Details: map[string]interface{}{"movie": req.Movie},
		}, logErr)
		return
	}

	respondSuccess(w, r, res, start)
}

// PopularMovies handles GET /api/v1/movies/popular
//
// @Summary Most-rated movies
// @Description Orders movies by rating count, then mean rating, then title.
// @Tags Movies
// @Produce json
// @Param n query int false "Number of results (0 = default)"
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Router /movies/popular [get]
func (h *Handler) PopularMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireService(w, r) {
		return
	}

	n, apiErr := parseIntParam(r, "n", 0)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	req := validation.PopularRequest{N: n}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	res := h.svc.Popular(r.Context(), req.N)
	respondSuccess(w, r, models.MovieList{Count: len(res.Items), Movies: res.Items}, start)
}

// TopRatedMovies handles GET /api/v1/movies/top-rated
//
// @Summary Highest-rated movies
// @Description Orders movies with at least min_ratings ratings by mean rating, then count, then title.
// @Tags Movies
// @Produce json
// @Param n query int false "Number of results (0 = default)"
// @Param min_ratings query int false "Minimum rating count (default from config)"
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Router /movies/top-rated [get]
func (h *Handler) TopRatedMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireService(w, r) {
		return
	}

	n, apiErr := parseIntParam(r, "n", 0)
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	minRatings, apiErr := parseOptionalIntParam(r, "min_ratings")
	if apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}
	req := validation.TopRatedRequest{N: n, MinRatings: minRatings}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	floor := -1
	if req.MinRatings != nil {
		floor = *req.MinRatings
	}

	res := h.svc.TopRated(r.Context(), req.N, floor)
	respondSuccess(w, r, models.MovieList{Count: len(res.Items), Movies: res.Items}, start)
}

// BrowseMovies handles GET /api/v1/movies
//
// @Summary Every movie with its rating count and mean
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.MovieList}
// @Router /movies [get]
func (h *Handler) BrowseMovies(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireService(w, r) {
		return
	}

	movies := h.svc.Browse()
	respondSuccess(w, r, models.MovieList{Count: len(movies), Movies: movies}, start)
}

// MovieTitles handles GET /api/v1/movies/titles
//
// @Summary Every known title, ascending
// @Tags Movies
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.TitleList}
// @Router /movies/titles [get]
func (h *Handler) MovieTitles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireService(w, r) {
		return
	}

	titles := h.svc.Titles()
	respondSuccess(w, r, models.TitleList{Count: len(titles), Titles: titles}, start)
}

// DatasetStats handles GET /api/v1/stats
//
// @Summary Dataset summary
// @Tags Stats
// @Produce json
// @Success 200 {object} models.APIResponse{data=recommend.DatasetStats}
// @Router /stats [get]
func (h *Handler) DatasetStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if !h.requireService(w, r) {
		return
	}

	respondSuccess(w, r, h.svc.Stats(), start)
}
