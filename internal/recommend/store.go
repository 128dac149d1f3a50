// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single ratings line.
const maxLineBytes = 1 << 20

// LoadRatings parses whitespace-delimited "user_id item_id rating timestamp"
// lines from r. Blank lines are skipped. The first malformed line aborts the
// load with a *MalformedRecordError naming source and line; no partial
// result is returned.
func LoadRatings(r io.Reader, source string) ([]Rating, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		ratings []Rating
		seen    = make(map[[2]int]int)
		lineNo  int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		rating, err := parseRatingLine(line)
		if err != nil {
			return nil, &MalformedRecordError{Source: source, Line: lineNo, Reason: err.Error()}
		}

		key := [2]int{rating.UserID, rating.ItemID}
		if first, dup := seen[key]; dup {
			return nil, &MalformedRecordError{
				Source: source,
				Line:   lineNo,
				Reason: fmt.Sprintf("user %d already rated item %d on line %d", rating.UserID, rating.ItemID, first),
				Err:    ErrDuplicateRating,
			}
		}
		seen[key] = lineNo

		ratings = append(ratings, rating)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &MalformedRecordError{Source: source, Line: lineNo + 1, Reason: "line too long", Err: err}
		}
		return nil, fmt.Errorf("read %s: %w", source, err)
	}

	return ratings, nil
}

// parseRatingLine decodes one non-blank ratings line.
func parseRatingLine(line string) (Rating, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return Rating{}, fmt.Errorf("expected 4 fields (user_id item_id rating timestamp), got %d", len(fields))
	}

	userID, err := strconv.Atoi(fields[0])
	if err != nil {
		return Rating{}, fmt.Errorf("invalid user_id %q", fields[0])
	}
	itemID, err := strconv.Atoi(fields[1])
	if err != nil {
		return Rating{}, fmt.Errorf("invalid item_id %q", fields[1])
	}
	value, err := strconv.Atoi(fields[2])
	if err != nil {
		return Rating{}, fmt.Errorf("invalid rating %q", fields[2])
	}
	ts, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Rating{}, fmt.Errorf("invalid timestamp %q", fields[3])
	}

	rating := Rating{UserID: userID, ItemID: itemID, Value: value, Timestamp: ts}
	if err := rating.Validate(); err != nil {
		return Rating{}, err
	}
	return rating, nil
}

// LoadRatingsFile opens path and parses it with LoadRatings.
func LoadRatingsFile(path string) ([]Rating, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ratings: %w", err)
	}
	defer f.Close()

	return LoadRatings(f, path)
}

// LoadMovies parses "item_id<delim>title" records from r. Titles may be
// quoted to contain the delimiter. A leading "item_id,title" style header
// is skipped. Item ids must be unique; titles may repeat.
func LoadMovies(r io.Reader, source string, delim rune) (Titles, error) {
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	titles := make(Titles)
	firstLine := make(map[int]int)

	for recordNo := 0; ; recordNo++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedRecordError{Source: source, Line: perr.Line, Reason: "unparseable record", Err: perr.Err}
			}
			return nil, fmt.Errorf("read %s: %w", source, err)
		}

		line, _ := cr.FieldPos(0)

		if len(record) != 2 {
			return nil, &MalformedRecordError{
				Source: source,
				Line:   line,
				Reason: fmt.Sprintf("expected 2 fields (item_id title), got %d", len(record)),
			}
		}

		idField := strings.TrimSpace(record[0])
		itemID, err := strconv.Atoi(idField)
		if err != nil {
			if recordNo == 0 {
				continue // header
			}
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("invalid item_id %q", idField)}
		}
		if itemID < 1 {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("item_id must be >= 1, got %d", itemID)}
		}

		title := strings.TrimSpace(record[1])
		if title == "" {
			return nil, &MalformedRecordError{Source: source, Line: line, Reason: fmt.Sprintf("empty title for item %d", itemID)}
		}
		if title == UnknownTitle {
			return nil, &MalformedRecordError{
				Source: source,
				Line:   line,
				Reason: fmt.Sprintf("item %d uses the reserved title %q", itemID, UnknownTitle),
				Err:    ErrReservedTitle,
			}
		}
		if first, dup := firstLine[itemID]; dup {
			return nil, &MalformedRecordError{
				Source: source,
				Line:   line,
				Reason: fmt.Sprintf("item %d already defined on line %d", itemID, first),
			}
		}

		firstLine[itemID] = line
		titles[itemID] = title
	}

	return titles, nil
}

// LoadMoviesFile opens path and parses it with LoadMovies.
func LoadMoviesFile(path string, delim rune) (Titles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open titles: %w", err)
	}
	defer f.Close()

	return LoadMovies(f, path, delim)
}
