package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/bilemo/api/pkg/cache"
)

func TestSetGetRoundTrip(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	type page struct {
		Items []string `json:"items"`
		Total int64    `json:"total"`
	}

	in := page{Items: []string{"a", "b"}, Total: 5}
	if err := store.Set(ctx, "product-1-2", in, time.Minute, "product"); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out page
	if !store.Get(ctx, "product-1-2", &out) {
		t.Fatal("expected cache hit")
	}
	if out.Total != 5 || len(out.Items) != 2 {
		t.Errorf("got %+v", out)
	}
}

func TestMissOnUnknownKey(t *testing.T) {
	store := cache.NewMemoryStore()

	var out string
	if store.Get(context.Background(), "nope", &out) {
		t.Error("expected miss")
	}
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v", -time.Second, "tag"); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out string
	if store.Get(ctx, "k", &out) {
		t.Error("expired entry should not be served")
	}
}

func TestInvalidateTagsDropsEveryTaggedEntry(t *testing.T) {
	store := cache.NewMemoryStore()
	ctx := context.Background()

	_ = store.Set(ctx, "product-1-2", "a", time.Minute, "product")
	_ = store.Set(ctx, "product-2-2", "b", time.Minute, "product")
	_ = store.Set(ctx, "customer-1-2", "c", time.Minute, "customer")

	if err := store.InvalidateTags(ctx, "product"); err != nil {
		t.Fatalf("invalidate: %v", err)
	}

	var out string
	if store.Get(ctx, "product-1-2", &out) || store.Get(ctx, "product-2-2", &out) {
		t.Error("product pages should be gone")
	}
	if !store.Get(ctx, "customer-1-2", &out) {
		t.Error("customer page should survive")
	}
}

func TestInvalidateUnknownTagIsANoop(t *testing.T) {
	store := cache.NewMemoryStore()
	if err := store.InvalidateTags(context.Background(), "ghost"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
