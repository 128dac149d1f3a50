// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord matches every MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrDuplicateRating is wrapped by a MalformedRecordError when a
	// (user_id, item_id) pair appears twice.
	ErrDuplicateRating = errors.New("duplicate rating")

	// ErrReservedTitle is wrapped by a MalformedRecordError when a titles
	// source names an item UnknownTitle.
	ErrReservedTitle = errors.New("reserved title")

	// ErrUnknownMovie matches every UnknownMovieError.
	ErrUnknownMovie = errors.New("movie not found")
)

// MalformedRecordError reports a source line that could not be parsed.
// A load that returns it has produced no partial data.
type MalformedRecordError struct {
	// Source names the input (usually a file path).
	Source string

	// Line is the 1-based line number, 0 when unknown.
	Line int

	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *MalformedRecordError) Error() string {
	loc := e.Source
	if loc == "" {
		loc = "input"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", ErrMalformedRecord, loc, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedRecord, loc, e.Reason)
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// UnknownMovieError is returned when a query title is not a matrix column.
type UnknownMovieError struct {
	Title string
}

func (e *UnknownMovieError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownMovie, e.Title)
}

// Is reports whether target is ErrUnknownMovie.
func (e *UnknownMovieError) Is(target error) bool {
	return target == ErrUnknownMovie
}
