// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
)

func newSimilarCommand(a *app) *cobra.Command {
	var (
		k         int
		diversity float64
		enrich    bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "similar <title>",
		Short: "List the movies most similar to a catalog title",
		Long: `Ranks every other catalog movie by cosine similarity to <title>.

Titles match case-insensitively after trimming. Movies with an all-zero vector
carry no signal and are listed last.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.components(cmd.Context())
			if err != nil {
				return err
			}
			defer closeComponents(c)

			if !cmd.Flags().Changed("k") {
				k = a.cfg.Recommend.DefaultK
			}
			if err := a.checkK(k); err != nil {
				return err
			}

			resp, err := c.Engine.Similar(cmd.Context(), recommend.Request{
				Title:     strings.Join(args, " "),
				K:         k,
				Diversity: diversity,
			})
			if err != nil {
				return err
			}

			var meta []metadata.Metadata
			if enrich {
				meta = c.Enricher.EnrichMany(cmd.Context(), resultTitles(resp))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, resp, meta)
			}
			writeTable(out, fmt.Sprintf("Movies similar to %q", resp.Query), resp, meta)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 15, "number of recommendations")
	cmd.Flags().Float64Var(&diversity, "diversity", 0, "MMR diversity in [0, 1]; 0 uses the configured default")
	cmd.Flags().BoolVar(&enrich, "enrich", false, "attach TMDB metadata")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
