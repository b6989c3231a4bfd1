package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreSetGetDel(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss, got %v", err)
	}

	if err := store.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := store.Get(ctx, "k")
	if err != nil || got != "v" {
		t.Fatalf("expected v, got %q err %v", got, err)
	}

	if err := store.Del(ctx, "k"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after delete, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.Now = func() time.Time { return now }
	if err := store.Set(ctx, "k", "v", time.Hour); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	if got, err := store.Get(ctx, "k"); err != nil || got != "v" {
		t.Fatalf("expected hit before expiry, got %q err %v", got, err)
	}

	store.Now = func() time.Time { return now.Add(2 * time.Hour) }
	if _, err := store.Get(ctx, "k"); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected miss after expiry, got %v", err)
	}
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	now := time.Now()
	store.Now = func() time.Time { return now }
	if err := store.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	store.Now = func() time.Time { return now.Add(1000 * time.Hour) }
	if got, err := store.Get(ctx, "k"); err != nil || got != "v" {
		t.Fatalf("expected hit, got %q err %v", got, err)
	}
}
