// Package services holds the business logic between controllers and
// repositories: pagination with page caching, account management, and
// login.
package services

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/bilemo/api/pkg/cache"
	"github.com/bilemo/api/pkg/metrics"
	"github.com/bilemo/api/pkg/response"
)

const (
	// DefaultPage and DefaultLimit apply when the query string omits the
	// parameter entirely. An explicitly empty or malformed value is an
	// error, not a fallback to the default.
	DefaultPage  = 1
	DefaultLimit = 2

	// MaxLimit caps the page size so a single request cannot drain the
	// whole table.
	MaxLimit = 100
)

// PageRequest is a validated page/limit pair.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePageRequest reads page and limit from the query string.
// A missing parameter takes its default; a present-but-empty, non-numeric,
// zero or negative value is rejected with a 400, as is a limit above
// MaxLimit.
func ParsePageRequest(r *http.Request) (PageRequest, *response.HTTPError) {
	q := r.URL.Query()

	page, herr := parsePositive(q, "page", DefaultPage)
	if herr != nil {
		return PageRequest{}, herr
	}

	limit, herr := parsePositive(q, "limit", DefaultLimit)
	if herr != nil {
		return PageRequest{}, herr
	}
	if limit > MaxLimit {
		return PageRequest{}, response.NewError(http.StatusBadRequest,
			fmt.Sprintf("The limit parameter must not exceed %d.", MaxLimit))
	}

	return PageRequest{Page: page, Limit: limit}, nil
}

func parsePositive(q map[string][]string, name string, fallback int) (int, *response.HTTPError) {
	values, present := q[name]
	if !present {
		return fallback, nil
	}

	raw := ""
	if len(values) > 0 {
		raw = values[0]
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, response.NewError(http.StatusBadRequest,
			fmt.Sprintf("The %s parameter must be a positive integer.", name))
	}
	return n, nil
}

// cachedPage is what gets marshalled into the cache for one page.
type cachedPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// Paginate returns one page of an entity, serving from the cache when it
// can. scope distinguishes differently filtered listings of the same
// entity ("" for the unrestricted one), so a customer-filtered page never
// shares a key with the full listing. The entry is tagged with the bare
// entity name; any write to the entity invalidates every page at once.
//
// A page past the end fails with a 404 that reports the total page count.
func Paginate[T any](
	ctx context.Context,
	store cache.Store,
	entity, scope string,
	req PageRequest,
	count func() (int64, error),
	list func(offset, limit int) ([]T, error),
) ([]T, *response.HTTPError) {
	key := pageKey(entity, scope, req)

	var page cachedPage[T]
	if store.Get(ctx, key, &page) {
		metrics.CacheHits.WithLabelValues(entity).Inc()
	} else {
		metrics.CacheMisses.WithLabelValues(entity).Inc()

		total, err := count()
		if err != nil {
			return nil, response.NewError(http.StatusInternalServerError, "Internal server error")
		}

		offset := (req.Page - 1) * req.Limit
		items, err := list(offset, req.Limit)
		if err != nil {
			return nil, response.NewError(http.StatusInternalServerError, "Internal server error")
		}

		page = cachedPage[T]{Items: items, Total: total}
		_ = store.Set(ctx, key, page, cache.DefaultTTL, entity)
	}

	if len(page.Items) == 0 {
		totalPages := int(math.Ceil(float64(page.Total) / float64(req.Limit)))
		return nil, response.NewError(http.StatusNotFound,
			fmt.Sprintf("This page does not exist, total pages: %d", totalPages))
	}

	return page.Items, nil
}

// Invalidate drops every cached page of the entity. Call after any
// successful create, update or delete.
func Invalidate(ctx context.Context, store cache.Store, entity string) {
	_ = store.InvalidateTags(ctx, entity)
}

func pageKey(entity, scope string, req PageRequest) string {
	if scope == "" {
		return fmt.Sprintf("%s-%d-%d", entity, req.Page, req.Limit)
	}
	return fmt.Sprintf("%s-%s-%d-%d", entity, scope, req.Page, req.Limit)
}

// CustomerScope builds the scope fragment for customer-filtered listings.
func CustomerScope(customerID uint) string {
	return fmt.Sprintf("c%d", customerID)
}
