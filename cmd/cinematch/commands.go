// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/config"
)

func newRecommendCmd(opts *rootOptions) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "List movies similar to a title",
		Long: `List movies whose ratings correlate with the given title's, best first.

The title must match exactly, including the year, e.g. "Star Wars (1977)".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := args[0]
			if strings.TrimSpace(title) == "" {
				return errors.New("title must not be empty")
			}

			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			res := svc.Recommend(cmd.Context(), title, n)
			if res.Error != nil {
				return errors.New(res.Error.Message)
			}

			v := newSimilarView(res)
			return render(cmd.OutOrStdout(), opts.output, v, func() string { return similarTable(v) })
		},
	}
	cmd.Flags().IntVarP(&n, "num", "n", 10, "Number of movies to list")
	return cmd
}

func newPopularCmd(opts *rootOptions) *cobra.Command {
	var n int

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List the most-rated movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			rows := newMovieRows(svc.Popular(cmd.Context(), n).Items)
			return render(cmd.OutOrStdout(), opts.output, rows, func() string {
				return movieTable("Most rated", rows)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "num", "n", 20, "Number of movies to list")
	return cmd
}

func newTopRatedCmd(opts *rootOptions) *cobra.Command {
	var (
		n          int
		minRatings int
	)

	cmd := &cobra.Command{
		Use:   "top-rated",
		Short: "List the highest-rated movies with enough ratings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if minRatings < 0 {
				return fmt.Errorf("--min-ratings must be at least 0, got %d", minRatings)
			}

			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			rows := newMovieRows(svc.TopRated(cmd.Context(), n, minRatings).Items)
			return render(cmd.OutOrStdout(), opts.output, rows, func() string {
				return movieTable(fmt.Sprintf("Top rated (at least %d ratings)", minRatings), rows)
			})
		},
	}
	cmd.Flags().IntVarP(&n, "num", "n", 20, "Number of movies to list")
	cmd.Flags().IntVar(&minRatings, "min-ratings", config.Defaults().Recommend.TopRatedMinRatings, "Minimum number of ratings")
	return cmd
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarise the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			v := newStatsView(svc.Stats())
			return render(cmd.OutOrStdout(), opts.output, v, func() string { return statsTable(v) })
		},
	}
}

func newTitlesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "titles",
		Short: "List every rated title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.loadService(cmd.Context())
			if err != nil {
				return err
			}

			titles := svc.Titles()
			return render(cmd.OutOrStdout(), opts.output, titles, func() string {
				return strings.Join(titles, "\n")
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "cinematch %s (%s)\n", version, commit)
			return err
		},
	}
}
