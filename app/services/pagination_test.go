package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bilemo/api/app/services"
	"github.com/bilemo/api/pkg/cache"
)

func TestParsePageRequestDefaults(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req, herr := services.ParsePageRequest(r)
	require.Nil(t, herr)
	require.Equal(t, services.DefaultPage, req.Page)
	require.Equal(t, services.DefaultLimit, req.Limit)
}

func TestParsePageRequestExplicitValues(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/products?page=3&limit=10", nil)
	req, herr := services.ParsePageRequest(r)
	require.Nil(t, herr)
	require.Equal(t, 3, req.Page)
	require.Equal(t, 10, req.Limit)
}

func TestParsePageRequestRejectsBadValues(t *testing.T) {
	for _, query := range []string{
		"page=",       // present but empty
		"page=0",      // zero
		"page=-1",     // negative
		"page=abc",    // non-numeric
		"limit=",      // present but empty
		"limit=0",     // zero
		"limit=-5",    // negative
		"limit=x",     // non-numeric
		"limit=101",   // above the cap
		"limit=99999", // far above the cap
	} {
		r := httptest.NewRequest(http.MethodGet, "/api/products?"+query, nil)
		_, herr := services.ParsePageRequest(r)
		require.NotNil(t, herr, "query %q should fail", query)
		require.Equal(t, http.StatusBadRequest, herr.Status, "query %q", query)
	}
}

// sliceSource serves pages out of an in-memory slice, standing in for a
// repository.
func sliceSource(rows []string) (func() (int64, error), func(int, int) ([]string, error)) {
	count := func() (int64, error) { return int64(len(rows)), nil }
	list := func(offset, limit int) ([]string, error) {
		if offset >= len(rows) {
			return nil, nil
		}
		end := offset + limit
		if end > len(rows) {
			end = len(rows)
		}
		return rows[offset:end], nil
	}
	return count, list
}

func TestPaginateFiveRowsByTwo(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	count, list := sliceSource([]string{"p1", "p2", "p3", "p4", "p5"})

	page1, herr := services.Paginate(ctx, store, "product", "", services.PageRequest{Page: 1, Limit: 2}, count, list)
	require.Nil(t, herr)
	require.Equal(t, []string{"p1", "p2"}, page1)

	page3, herr := services.Paginate(ctx, store, "product", "", services.PageRequest{Page: 3, Limit: 2}, count, list)
	require.Nil(t, herr)
	require.Equal(t, []string{"p5"}, page3)

	_, herr = services.Paginate(ctx, store, "product", "", services.PageRequest{Page: 4, Limit: 2}, count, list)
	require.NotNil(t, herr)
	require.Equal(t, http.StatusNotFound, herr.Status)
	require.Equal(t, "This page does not exist, total pages: 3", herr.Message)
}

func TestPaginateServesFromCacheUntilInvalidated(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()

	rows := []string{"a", "b"}
	calls := 0
	count := func() (int64, error) { return int64(len(rows)), nil }
	list := func(offset, limit int) ([]string, error) {
		calls++
		return rows, nil
	}

	req := services.PageRequest{Page: 1, Limit: 2}

	first, herr := services.Paginate(ctx, store, "product", "", req, count, list)
	require.Nil(t, herr)
	require.Len(t, first, 2)
	require.Equal(t, 1, calls)

	// Second read must come from the cache.
	_, herr = services.Paginate(ctx, store, "product", "", req, count, list)
	require.Nil(t, herr)
	require.Equal(t, 1, calls)

	// A write invalidates the tag; the next read recomputes.
	rows = append(rows, "c")
	services.Invalidate(ctx, store, "product")

	third, herr := services.Paginate(ctx, store, "product", "", req, count, list)
	require.Nil(t, herr)
	require.Len(t, third, 3)
	require.Equal(t, 2, calls)
}

func TestScopedAndUnscopedPagesDoNotCollide(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	req := services.PageRequest{Page: 1, Limit: 2}

	allCount, allList := sliceSource([]string{"u1", "u2", "u3", "u4"})
	all, herr := services.Paginate(ctx, store, "customerUser", "", req, allCount, allList)
	require.Nil(t, herr)
	require.Equal(t, []string{"u1", "u2"}, all)

	// The customer-scoped listing for the same page/limit must hit its
	// own key, not the unrestricted page cached above.
	ownCount, ownList := sliceSource([]string{"u3"})
	own, herr := services.Paginate(ctx, store, "customerUser", services.CustomerScope(7), req, ownCount, ownList)
	require.Nil(t, herr)
	require.Equal(t, []string{"u3"}, own)

	// And two different customers do not share pages either.
	otherCount, otherList := sliceSource([]string{"u4"})
	other, herr := services.Paginate(ctx, store, "customerUser", services.CustomerScope(8), req, otherCount, otherList)
	require.Nil(t, herr)
	require.Equal(t, []string{"u4"}, other)
}

func TestPaginateEmptyTableIs404WithZeroPages(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore()
	count, list := sliceSource(nil)

	_, herr := services.Paginate(ctx, store, "product", "", services.PageRequest{Page: 1, Limit: 2}, count, list)
	require.NotNil(t, herr)
	require.Equal(t, http.StatusNotFound, herr.Status)
	require.Equal(t, "This page does not exist, total pages: 0", herr.Message)
}
