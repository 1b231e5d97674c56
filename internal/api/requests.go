// CineMatch - Movie Similarity Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/cinematch/internal/validation"
)

// Query parameter defaults.
const (
	defaultMoviesLimit   = 50
	defaultFeaturedLimit = 10
	defaultExternalLimit = 10
)

// MoviesRequest lists catalog titles.
type MoviesRequest struct {
	Query  string `json:"q" validate:"max=500"`
	Limit  int    `json:"limit" validate:"min=1,max=500"`
	Offset int    `json:"offset" validate:"min=0"`
}

// FeaturedRequest lists the first catalog titles.
type FeaturedRequest struct {
	Limit  int  `json:"limit" validate:"min=1,max=100"`
	Enrich bool `json:"enrich"`
}

// TitleRequest names a single catalog title.
type TitleRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
}

// ExternalRequest asks TMDB for its own recommendations.
type ExternalRequest struct {
	Title string `json:"title" validate:"required,notblank,max=500"`
	Limit int    `json:"limit" validate:"min=1,max=50"`
}

// textBody is the POST body of the text endpoint. K is a pointer so an
// omitted k can fall back to the configured default.
type textBody struct {
	Text string `json:"text"`
	K    *int   `json:"k"`
}

// paramError reports a query parameter that could not be parsed.
type paramError struct {
	field string
	value string
	kind  string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.field, e.kind)
}

func (e *paramError) details() map[string]any {
	return map[string]any{"field": e.field, "value": e.value}
}

// queryInt reads an integer query parameter, returning def when it is absent.
func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &paramError{field: key, value: raw, kind: "an integer"}
	}
	return v, nil
}

// queryFloat reads a float query parameter, returning def when it is absent.
func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &paramError{field: key, value: raw, kind: "a number"}
	}
	return v, nil
}

// queryBool reads a boolean query parameter, returning def when it is absent.
func queryBool(r *http.Request, key string, def bool) (bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, &paramError{field: key, value: raw, kind: "a boolean"}
	}
	return v, nil
}

// validateRequest validates a struct using go-playground/validator and writes
// the 400 response itself. It reports whether the request may proceed.
func validateRequest(rw *ResponseWriter, v any) bool {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return true
	}
	apiErr := validationErr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// rejectParam writes the 400 response for a malformed query parameter.
func rejectParam(rw *ResponseWriter, err error) {
	var pe *paramError
	if errors.As(err, &pe) {
		rw.ValidationError(pe.Error(), pe.details())
		return
	}
	rw.ValidationError(err.Error(), nil)
}
