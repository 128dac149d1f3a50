// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides request validation using go-playground/validator v10.
//
// A thread-safe singleton validator checks the typed query structs the HTTP
// handlers build from URL parameters. Error field names come from the
// `query` struct tag, so a failure reads "n must be at most 1000" rather
// than naming the Go field.
//
// # Quick Start
//
//	req := validation.SimilarRequest{Movie: r.URL.Query().Get("movie"), N: n}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - movietitle: non-blank, no control characters
package validation
