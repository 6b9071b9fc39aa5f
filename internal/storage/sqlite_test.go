package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndRecentSessions(t *testing.T) {
	store := openTestStore(t)

	entries := []SessionEntry{
		{Source: "demo", WallHits: 12, ZoneTriggers: 8, MaxSpeed: 4.2, DurationSecs: 60},
		{Source: "bridge", WallHits: 30, ZoneTriggers: 15, MaxSpeed: 9.1, DurationSecs: 120},
		{Source: "demo", WallHits: 5, ZoneTriggers: 3, MaxSpeed: 1.7, DurationSecs: 15},
	}
	for _, e := range entries {
		if _, err := store.SaveSession(e); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(got))
	}

	// Newest first.
	if got[0].Source != "demo" || got[0].WallHits != 5 {
		t.Errorf("expected newest session first, got %+v", got[0])
	}
	if got[1].Source != "bridge" || got[1].MaxSpeed != 9.1 {
		t.Errorf("unexpected middle session: %+v", got[1])
	}
}

func TestRecentSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.SaveSession(SessionEntry{Source: "demo", WallHits: i}); err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	got, err := store.RecentSessions(2)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 sessions, got %d", len(got))
	}
}

func TestRecentSessionsEmpty(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no sessions, got %d", len(got))
	}
}

func TestStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Sessions != 0 || stats.TotalWallHits != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}

	store.SaveSession(SessionEntry{Source: "demo", WallHits: 10, MaxSpeed: 3.0, DurationSecs: 30})
	store.SaveSession(SessionEntry{Source: "bridge", WallHits: 20, MaxSpeed: 7.5, DurationSecs: 90})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.Sessions != 2 {
		t.Errorf("expected 2 sessions, got %d", stats.Sessions)
	}
	if stats.TotalWallHits != 30 {
		t.Errorf("expected 30 total wall hits, got %d", stats.TotalWallHits)
	}
	if stats.BestMaxSpeed != 7.5 {
		t.Errorf("expected best speed 7.5, got %f", stats.BestMaxSpeed)
	}
	if stats.TotalSecs != 120 {
		t.Errorf("expected 120 total secs, got %d", stats.TotalSecs)
	}
}
