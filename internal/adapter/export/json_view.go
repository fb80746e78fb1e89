// Package export renders simulation summaries as downloadable documents.
package export

import (
	"encoding/json"
	"io"

	"comercial_moveis/internal/adapter/http/dto/response"
	"comercial_moveis/internal/domain/budget"
	"comercial_moveis/internal/format"
)

// JSONView renders the same body served by GET /simulations/:id.
type JSONView struct {
	Locale format.Locale
}

var _ budget.View = JSONView{}

func (JSONView) ContentType() string   { return "application/json; charset=utf-8" }
func (JSONView) FileExtension() string { return "json" }

func (v JSONView) Render(w io.Writer, s budget.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(response.FromSummary(s, v.Locale))
}
