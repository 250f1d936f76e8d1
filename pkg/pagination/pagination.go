// Package pagination provides skip/limit windowing over in-memory result sets.
package pagination

import (
	"net/url"
	"strconv"
)

// Page represents a client request for a window of a result set.
type Page struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Normalize adjusts the page to ensure valid windowing values based on the config.
func (p *Page) Normalize(cfg Config) {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit < 1 {
		p.Limit = cfg.DefaultLimit
	}
	if p.Limit > cfg.MaxLimit {
		p.Limit = cfg.MaxLimit
	}
}

// FromQuery parses skip and limit from URL query values.
func FromQuery(values url.Values, cfg Config) Page {
	skip, _ := strconv.Atoi(values.Get("skip"))
	limit, _ := strconv.Atoi(values.Get("limit"))

	p := Page{Skip: skip, Limit: limit}
	p.Normalize(cfg)
	return p
}

// Result holds one window of a result set along with the total match count
// before windowing.
type Result[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// NewResult windows matches with the given page. Total is always the full
// match count; a window past the end yields empty items.
func NewResult[T any](matches []T, p Page) Result[T] {
	total := len(matches)

	start := p.Skip
	if start > total {
		start = total
	}

	end := start + p.Limit
	if end > total {
		end = total
	}

	items := make([]T, end-start)
	copy(items, matches[start:end])

	return Result[T]{
		Items: items,
		Total: total,
		Skip:  p.Skip,
		Limit: p.Limit,
	}
}
