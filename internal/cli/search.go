// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func newSearchCommand(a *app) *cobra.Command {
	var (
		k      int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Rank catalog movies against a free-text description",
		Long: `Vectorizes <text> with the lexical model and ranks the whole catalog.

Requires a model, either embedded in the artifact or given with --model.`,
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

			resp, err := c.Engine.SimilarToText(cmd.Context(), recommend.TextRequest{
				Text: strings.Join(args, " "),
				K:    k,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, resp, nil)
			}
			writeTable(out, fmt.Sprintf("Movies matching %q", resp.Query), resp, nil)
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 15, "number of results")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
