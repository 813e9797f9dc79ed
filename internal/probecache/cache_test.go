package probecache_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Daisywait/AntiDeepfake/internal/probe"
	"github.com/Daisywait/AntiDeepfake/internal/probecache"
)

func openCache(t *testing.T) *probecache.Store {
	t.Helper()
	store, err := probecache.Open(filepath.Join(t.TempDir(), "cache", "probe.db"))
	if err != nil {
		t.Fatalf("probecache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

func TestLookupAfterSave(t *testing.T) {
	store := openCache(t)
	ctx := context.Background()

	want := probe.Info{
		SampleRate:    16000,
		Channels:      1,
		Frames:        32000,
		BitsPerSample: 16,
		Encoding:      "FLAC",
	}
	if err := store.Save(ctx, "/corpus/a.flac", 1234, 5678, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Lookup(ctx, "/corpus/a.flac", 1234, 5678)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Fatalf("Lookup = %+v, want %+v", got, want)
	}
}

func TestLookupMissesWhenFileChanged(t *testing.T) {
	store := openCache(t)
	ctx := context.Background()

	info := probe.Info{SampleRate: 16000, Channels: 1, Frames: 100, BitsPerSample: 16, Encoding: "FLAC"}
	if err := store.Save(ctx, "/corpus/a.flac", 1234, 5678, info); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if _, ok, err := store.Lookup(ctx, "/corpus/a.flac", 1234, 9999); err != nil || ok {
		t.Fatalf("expected miss on mtime change, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Lookup(ctx, "/corpus/a.flac", 4321, 5678); err != nil || ok {
		t.Fatalf("expected miss on size change, got ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Lookup(ctx, "/corpus/b.flac", 1234, 5678); err != nil || ok {
		t.Fatalf("expected miss on unknown path, got ok=%v err=%v", ok, err)
	}
}

func TestSaveReplacesEntry(t *testing.T) {
	store := openCache(t)
	ctx := context.Background()

	first := probe.Info{SampleRate: 16000, Channels: 1, Frames: 100, BitsPerSample: 16, Encoding: "FLAC"}
	if err := store.Save(ctx, "/corpus/a.flac", 1000, 1, first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := probe.Info{SampleRate: 44100, Channels: 2, Frames: 200, BitsPerSample: 24, Encoding: "FLAC"}
	if err := store.Save(ctx, "/corpus/a.flac", 2000, 2, second); err != nil {
		t.Fatalf("Save replacement: %v", err)
	}

	if _, ok, _ := store.Lookup(ctx, "/corpus/a.flac", 1000, 1); ok {
		t.Fatal("stale entry should not hit")
	}
	got, ok, err := store.Lookup(ctx, "/corpus/a.flac", 2000, 2)
	if err != nil || !ok {
		t.Fatalf("expected hit for replacement, got ok=%v err=%v", ok, err)
	}
	if got != second {
		t.Fatalf("Lookup = %+v, want %+v", got, second)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 1 {
		t.Fatalf("Entries = %d, want 1", stats.Entries)
	}
}

func TestClear(t *testing.T) {
	store := openCache(t)
	ctx := context.Background()

	info := probe.Info{SampleRate: 16000, Channels: 1, Frames: 100, BitsPerSample: 16, Encoding: "FLAC"}
	for _, path := range []string{"/a.flac", "/b.flac"} {
		if err := store.Save(ctx, path, 1, 1, info); err != nil {
			t.Fatalf("Save %s: %v", path, err)
		}
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Entries != 0 {
		t.Fatalf("Entries = %d, want 0", stats.Entries)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "probe.db")

	store, err := probecache.Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	ctx := context.Background()
	info := probe.Info{SampleRate: 16000, Channels: 1, Frames: 100, BitsPerSample: 16, Encoding: "FLAC"}
	if err := store.Save(ctx, "/a.flac", 1, 1, info); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := probecache.Open(path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer reopened.Close()

	if _, ok, err := reopened.Lookup(ctx, "/a.flac", 1, 1); err != nil || !ok {
		t.Fatalf("expected persisted hit, got ok=%v err=%v", ok, err)
	}
}
