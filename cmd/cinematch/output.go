// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/cinematch/internal/recommend"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EC4F4"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6ef4a1"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F45E6E"))
)

// similarView is the printable form of a similar-movie result.
type similarView struct {
	Movie           string       `json:"movie" yaml:"movie"`
	Recommendations []similarRow `json:"recommendations" yaml:"recommendations"`
}

type similarRow struct {
	Title       string  `json:"title" yaml:"title"`
	Correlation float64 `json:"correlation" yaml:"correlation"`
	CoRaters    int     `json:"co_raters" yaml:"co_raters"`
	NumRatings  int     `json:"num_ratings" yaml:"num_ratings"`
}

type movieRow struct {
	Title      string  `json:"title" yaml:"title"`
	NumRatings int     `json:"num_ratings" yaml:"num_ratings"`
	MeanRating float64 `json:"mean_rating" yaml:"mean_rating"`
}

type statsView struct {
	TotalRatings    int         `json:"total_ratings" yaml:"total_ratings"`
	UniqueUsers     int         `json:"unique_users" yaml:"unique_users"`
	UniqueItems     int         `json:"unique_items" yaml:"unique_items"`
	UniqueTitles    int         `json:"unique_titles" yaml:"unique_titles"`
	UnknownItems    int         `json:"unknown_items" yaml:"unknown_items"`
	CollidingTitles int         `json:"colliding_titles" yaml:"colliding_titles"`
	MeanRating      float64     `json:"mean_rating" yaml:"mean_rating"`
	Distribution    map[int]int `json:"distribution" yaml:"distribution"`
}

func newSimilarView(res recommend.RecommendResult) similarView {
	v := similarView{Movie: res.Movie, Recommendations: make([]similarRow, len(res.Items))}
	for i, it := range res.Items {
		v.Recommendations[i] = similarRow{
			Title:       it.Title,
			Correlation: it.Correlation,
			CoRaters:    it.CoRaters,
			NumRatings:  it.RatingCount,
		}
	}
	return v
}

func newMovieRows(items []recommend.PopularMovie) []movieRow {
	rows := make([]movieRow, len(items))
	for i, it := range items {
		rows[i] = movieRow{Title: it.Title, NumRatings: it.RatingCount, MeanRating: it.MeanRating}
	}
	return rows
}

func newStatsView(s recommend.DatasetStats) statsView {
	dist := make(map[int]int, len(s.Distribution))
	for i, n := range s.Distribution {
		dist[i+recommend.MinRating] = n
	}
	return statsView{
		TotalRatings:    s.TotalRatings,
		UniqueUsers:     s.UniqueUsers,
		UniqueItems:     s.UniqueItems,
		UniqueTitles:    s.UniqueTitles,
		UnknownItems:    s.UnknownItems,
		CollidingTitles: s.CollidingTitles,
		MeanRating:      s.MeanRating,
		Distribution:    dist,
	}
}

// render writes v as JSON or YAML, or calls tableFn for the table format.
func render(w io.Writer, format string, v interface{}, tableFn func() string) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, tableFn())
		return err
	}
}

// newTable builds a bordered table; columns listed in numeric are right-aligned.
func newTable(headers []string, numeric map[int]bool, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func similarTable(v similarView) string {
	rows := make([][]string, len(v.Recommendations))
	for i, r := range v.Recommendations {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.Title,
			strconv.FormatFloat(r.Correlation, 'f', 4, 64),
			strconv.Itoa(r.CoRaters),
			strconv.Itoa(r.NumRatings),
		}
	}
	header := titleStyle.Render("Movies similar to " + v.Movie)
	if len(rows) == 0 {
		return header + "\n(no movie shares enough raters)"
	}
	return header + "\n" + newTable(
		[]string{"#", "Title", "Correlation", "Co-raters", "Ratings"},
		map[int]bool{0: true, 2: true, 3: true, 4: true},
		rows,
	)
}

func movieTable(heading string, items []movieRow) string {
	rows := make([][]string, len(items))
	for i, m := range items {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			m.Title,
			strconv.Itoa(m.NumRatings),
			strconv.FormatFloat(m.MeanRating, 'f', 2, 64),
		}
	}
	return titleStyle.Render(heading) + "\n" + newTable(
		[]string{"#", "Title", "Ratings", "Mean"},
		map[int]bool{0: true, 2: true, 3: true},
		rows,
	)
}

func statsTable(s statsView) string {
	rows := [][]string{
		{"Ratings", strconv.Itoa(s.TotalRatings)},
		{"Users", strconv.Itoa(s.UniqueUsers)},
		{"Items", strconv.Itoa(s.UniqueItems)},
		{"Titles", strconv.Itoa(s.UniqueTitles)},
		{"Unknown items", strconv.Itoa(s.UnknownItems)},
		{"Colliding titles", strconv.Itoa(s.CollidingTitles)},
		{"Mean rating", strconv.FormatFloat(s.MeanRating, 'f', 3, 64)},
	}
	for v := recommend.MinRating; v <= recommend.MaxRating; v++ {
		rows = append(rows, []string{fmt.Sprintf("%d stars", v), strconv.Itoa(s.Distribution[v])})
	}
	return titleStyle.Render("Dataset") + "\n" + newTable([]string{"Metric", "Value"}, map[int]bool{1: true}, rows)
}
