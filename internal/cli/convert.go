// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/cinematch/internal/bootstrap"
	"github.com/tomtom215/cinematch/internal/lexical"
	"github.com/tomtom215/cinematch/internal/vectorstore"
)

// fitFlags are the TF-IDF options used by convert --fit.
type fitFlags struct {
	enabled     bool
	maxFeatures int
	stopWords   []string
	ngramMax    int
	sublinear   bool
	modelOut    string
}

func (f *fitFlags) options() lexical.FitOptions {
	opts := lexical.DefaultFitOptions()
	opts.MaxFeatures = f.maxFeatures
	opts.StopWords = f.stopWords
	opts.NGramRange = [2]int{1, f.ngramMax}
	opts.SublinearTF = f.sublinear
	return opts
}

func newConvertCommand(a *app) *cobra.Command {
	var (
		out    string
		format string
		fit    fitFlags
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write the configured catalog in another artifact format",
		Long: `Loads the configured catalog and writes it to --out. The format follows the
file extension unless --format is given. Only JSON artifacts keep the lexical
model; pass it with --model when serving other formats.

With --fit the catalog vectors are replaced by TF-IDF vectors fitted on the
movie overviews. The fitted model is embedded in JSON output and written to
--model-out when given; other formats require --model-out.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				return errors.New("--out is required")
			}

			resolved := strings.ToLower(format)
			if resolved == "" || resolved == vectorstore.FormatAuto {
				detected, err := vectorstore.DetectFormat(out)
				if err != nil {
					return err
				}
				resolved = detected
			}
			if fit.enabled && resolved != vectorstore.FormatJSON && fit.modelOut == "" {
				return fmt.Errorf("--fit with %s output needs --model-out to keep the model", resolved)
			}
			if fit.ngramMax < 1 {
				return fmt.Errorf("--ngram-max must be at least 1, got %d", fit.ngramMax)
			}

			art, err := a.artifact(cmd)
			if err != nil {
				return err
			}

			cat, model := art.Catalog, art.Vectorizer
			if fit.enabled {
				cat, model, err = lexical.FitCatalog(art.Catalog, fit.options())
				if err != nil {
					return fmt.Errorf("fit lexical model: %w", err)
				}
			}

			if err := vectorstore.Write(cmd.Context(), out, resolved, cat, model); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %d movies (%d dimensions) to %s\n",
				heading("Wrote"), cat.Len(), cat.Dimension(), out)

			if fit.enabled && fit.modelOut != "" {
				if err := model.Save(fit.modelOut); err != nil {
					return err
				}
				fmt.Fprintf(w, "%s lexical model (%d terms) to %s\n",
					heading("Wrote"), model.VocabularySize(), fit.modelOut)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&out, "out", "o", "", "destination artifact")
	flags.StringVar(&format, "format", vectorstore.FormatAuto, "json, sqlite, duckdb, parquet or auto")
	flags.BoolVar(&fit.enabled, "fit", false, "fit a TF-IDF model on overviews and re-vectorize the catalog")
	flags.IntVar(&fit.maxFeatures, "max-features", 0, "keep only the most frequent terms (0 keeps all)")
	flags.StringSliceVar(&fit.stopWords, "stop-words", nil, "comma-separated terms to ignore")
	flags.IntVar(&fit.ngramMax, "ngram-max", 1, "longest n-gram counted as a term")
	flags.BoolVar(&fit.sublinear, "sublinear-tf", false, "use 1 + ln(tf) term frequencies")
	flags.StringVar(&fit.modelOut, "model-out", "", "also write the fitted model to this file")
	return cmd
}

// artifact loads only the catalog; listing and converting need neither the
// engine nor the enricher.
func (a *app) artifact(cmd *cobra.Command) (*vectorstore.Artifact, error) {
	if a.cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return bootstrap.LoadArtifact(cmd.Context(), a.cfg)
}
