// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"fmt"
	"io"
	"math"

	"github.com/fatih/color"
	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/metadata"
	"github.com/tomtom215/cinematch/internal/recommend"
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
)

// jsonItem mirrors the API item shape so scripted callers see one format.
type jsonItem struct {
	Rank       int                `json:"rank"`
	Title      string             `json:"title"`
	Score      *float64           `json:"score"`
	Degenerate bool               `json:"degenerate,omitempty"`
	Metadata   *metadata.Metadata `json:"metadata,omitempty"`
}

func writeJSON(w io.Writer, resp *recommend.Response, meta []metadata.Metadata) error {
	items := make([]jsonItem, len(resp.Items))
	for i, it := range resp.Items {
		items[i] = jsonItem{Rank: it.Rank, Title: it.Title, Degenerate: it.Degenerate}
		if !math.IsInf(it.Score, 0) && !math.IsNaN(it.Score) {
			score := it.Score
			items[i].Score = &score
		}
		if meta != nil {
			items[i].Metadata = &meta[i]
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"query": resp.Query,
		"items": items,
	})
}

func writeTable(w io.Writer, title string, resp *recommend.Response, meta []metadata.Metadata) {
	fmt.Fprintln(w, heading(title))
	if len(resp.Items) == 0 {
		fmt.Fprintln(w, faint("  (no results)"))
		return
	}

	for i, it := range resp.Items {
		score := fmt.Sprintf("%.4f", it.Score)
		if math.IsInf(it.Score, -1) {
			score = warning("no signal")
		}
		fmt.Fprintf(w, "%3d. %-48s %s\n", it.Rank, it.Title, score)

		if meta == nil {
			continue
		}
		m := meta[i]
		if m.Placeholder {
			fmt.Fprintln(w, faint("     metadata unavailable"))
			continue
		}
		fmt.Fprintf(w, "     %s  %s\n", faint(m.ReleaseDate), faint(m.PosterURL))
	}
}

func resultTitles(resp *recommend.Response) []string {
	titles := make([]string, len(resp.Items))
	for i, it := range resp.Items {
		titles[i] = it.Title
	}
	return titles
}
