// Package pagination turns client page options into bounded offset queries
// and shapes list responses.
package pagination

import (
	"math"
	"strconv"
	"strings"

	"taskboard/internal/apperr"
)

type Order string

const (
	ASC  Order = "ASC"
	DESC Order = "DESC"
)

// Options are normalized page options. Use Parse to build them from raw
// query values.
type Options struct {
	Page  int   `json:"page"`
	Take  int   `json:"take"`
	Order Order `json:"order"`
}

func (o Options) Offset() int { return (o.Page - 1) * o.Take }

func (o Options) Limit() int { return o.Take }

// OrderBy returns the id ordering clause for the given table.
func (o Options) OrderBy(table string) string {
	if o.Order == DESC {
		return table + ".id DESC"
	}
	return table + ".id ASC"
}

// Limits bounds the page size.
type Limits struct {
	DefaultTake int
	MaxTake     int
}

// Parse validates raw page, take and order values. Empty values take their
// defaults: page 1, take l.DefaultTake, order ASC.
func (l Limits) Parse(page, take, order string) (Options, error) {
	opts := Options{Page: 1, Take: l.DefaultTake, Order: ASC}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return Options{}, apperr.Validation("page must be an integer greater than or equal to 1")
		}
		opts.Page = n
	}

	if take != "" {
		n, err := strconv.Atoi(take)
		if err != nil || n < 1 || n > l.MaxTake {
			return Options{}, apperr.Validation("take must be an integer between 1 and %d", l.MaxTake)
		}
		opts.Take = n
	}

	// (page-1)*take must fit in an int offset.
	if opts.Take > 0 && opts.Page-1 > math.MaxInt/opts.Take {
		return Options{}, apperr.Validation("page is too large for take %d", opts.Take)
	}

	if order != "" {
		switch Order(strings.ToUpper(order)) {
		case ASC:
			opts.Order = ASC
		case DESC:
			opts.Order = DESC
		default:
			return Options{}, apperr.Validation("order must be one of ASC, DESC")
		}
	}

	return opts, nil
}

type Meta struct {
	Page            int   `json:"page"`
	Take            int   `json:"take"`
	ItemCount       int64 `json:"itemCount"`
	PageCount       int64 `json:"pageCount"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

// NewMeta computes page metadata. itemCount is the total number of rows
// matching the query, not the length of the current page.
func NewMeta(opts Options, itemCount int64) Meta {
	var pageCount int64
	if opts.Take > 0 {
		pageCount = (itemCount + int64(opts.Take) - 1) / int64(opts.Take)
	}
	return Meta{
		Page:            opts.Page,
		Take:            opts.Take,
		ItemCount:       itemCount,
		PageCount:       pageCount,
		HasPreviousPage: opts.Page > 1,
		HasNextPage:     int64(opts.Page) < pageCount,
	}
}

type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func New[T any](data []T, opts Options, itemCount int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Meta: NewMeta(opts, itemCount)}
}
