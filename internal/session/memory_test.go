package session

import (
	"context"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var missing map[string]int
	found, err := store.Get(ctx, "sid-1", "cart", &missing)
	if err != nil {
		t.Fatalf("get missing failed: %v", err)
	}
	if found {
		t.Fatalf("missing key should report not found")
	}

	if err := store.Set(ctx, "sid-1", "cart", map[string]int{"count": 3}); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	var got map[string]int
	found, err = store.Get(ctx, "sid-1", "cart", &got)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !found || got["count"] != 3 {
		t.Fatalf("round trip want count=3 got %v found=%v", got, found)
	}

	// Same key under another session is independent.
	found, err = store.Get(ctx, "sid-2", "cart", &got)
	if err != nil {
		t.Fatalf("get other session failed: %v", err)
	}
	if found {
		t.Fatalf("other session should not see the value")
	}

	if err := store.Del(ctx, "sid-1", "cart"); err != nil {
		t.Fatalf("del failed: %v", err)
	}
	found, err = store.Get(ctx, "sid-1", "cart", &got)
	if err != nil {
		t.Fatalf("get after del failed: %v", err)
	}
	if found {
		t.Fatalf("deleted key should report not found")
	}
}
