// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command cinematch queries a movie catalog from the terminal.
//
//	cinematch --catalog movies.json similar "The Matrix" -k 5
//	cinematch search "heist in space"
//	cinematch titles --query star
//	cinematch convert --out movies.db
//	cinematch --catalog plain.json convert --fit --out movies.json
//
// Exit status is 1 on any error, including an unknown title.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinematch/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
