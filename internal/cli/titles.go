// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTitlesCommand(a *app) *cobra.Command {
	var (
		limit int
		query string
	)

	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List catalog titles in artifact order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative, got %d", limit)
			}

			art, err := a.artifact(cmd)
			if err != nil {
				return err
			}
			cat := art.Catalog

			matches := cat.Search(query)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, heading(fmt.Sprintf("%d of %d titles", min(limit, len(matches)), cat.Len())))
			for _, i := range matches[:min(limit, len(matches))] {
				fmt.Fprintln(out, cat.Entry(i).Title)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum titles to print")
	cmd.Flags().StringVarP(&query, "query", "q", "", "case-insensitive title substring")
	return cmd
}
