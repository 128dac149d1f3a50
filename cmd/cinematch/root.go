// Cinematch - Item-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Output formats accepted by --output.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// rootOptions holds the persistent flags shared by every query command.
type rootOptions struct {
	ratings    string
	titles     string
	delimiter  string
	minOverlap int
	output     string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	def := config.Defaults()
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "cinematch",
		Short: "Cinematch - item-based movie recommendations",
		Long: `Cinematch answers movie queries from a ratings dataset:

  • movies similar to a title (Pearson correlation over shared raters)
  • the most-rated movies
  • the best-rated movies above a rating-count floor

The dataset is read from --ratings and --titles on every invocation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case formatTable, formatJSON, formatYAML:
			default:
				return fmt.Errorf("invalid --output %q: must be table, json or yaml", opts.output)
			}
			logging.Init(logging.Config{
				Level:     opts.logLevel,
				Format:    "console",
				Timestamp: true,
				Output:    cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ratings, "ratings", def.Data.RatingsPath, "Ratings file (user_id item_id rating timestamp)")
	flags.StringVar(&opts.titles, "titles", def.Data.TitlesPath, "Titles file (item_id,title)")
	flags.StringVar(&opts.delimiter, "titles-delimiter", def.Data.TitlesDelimiter, "Field separator of the titles file")
	flags.IntVar(&opts.minOverlap, "min-overlap", def.Recommend.MinOverlap, "Minimum co-raters for a similar movie")
	flags.StringVarP(&opts.output, "output", "o", formatTable, "Output format: table, json or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newRecommendCmd(opts),
		newPopularCmd(opts),
		newTopRatedCmd(opts),
		newStatsCmd(opts),
		newTitlesCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// loadService reads the dataset named by the flags and wraps it in a
// query facade. Results are not cached; each invocation runs one query.
func (o *rootOptions) loadService(ctx context.Context) (*recommend.Service, error) {
	cfg := config.Defaults()
	cfg.Data.RatingsPath = o.ratings
	cfg.Data.TitlesPath = o.titles
	cfg.Data.TitlesDelimiter = o.delimiter

	logger := logging.WithComponent("cli")
	m, err := recommend.Load(ctx, recommend.SourcesFromConfig(cfg.Data), logger)
	if err != nil {
		return nil, err
	}

	svcOpts := recommend.OptionsFromConfig(cfg.Recommend, logger)
	svcOpts.MinOverlap = o.minOverlap
	svcOpts.CacheEnabled = false
	return recommend.NewService(m, svcOpts), nil
}
