package session

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rowanmaddox/twistcube"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp failed: %v", err)
	}
	return db
}

func TestSessionRoundTrip(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	turns := NewTurnRepository(db)

	started := time.Now()
	id, err := sessions.Create(started)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	recorded := []twistcube.Move{twistcube.R, twistcube.UPrime, twistcube.M}
	for i, m := range recorded {
		if _, err := turns.Append(id, i, m, int64(i*100)); err != nil {
			t.Fatalf("Append %d failed: %v", i, err)
		}
	}
	if err := sessions.End(id, started.Add(time.Minute), len(recorded)); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	got, err := turns.Moves(id)
	if err != nil {
		t.Fatalf("Moves failed: %v", err)
	}
	if len(got) != len(recorded) {
		t.Fatalf("Got %d moves, want %d", len(got), len(recorded))
	}
	for i := range recorded {
		if got[i] != recorded[i] {
			t.Errorf("Move %d = %+v, want %+v", i, got[i], recorded[i])
		}
	}

	s, err := sessions.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.TurnCount != len(recorded) {
		t.Errorf("TurnCount = %d, want %d", s.TurnCount, len(recorded))
	}
	if s.EndedAt == nil {
		t.Error("EndedAt should be set after End")
	}
}

func TestReplayedSessionReproducesState(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	turns := NewTurnRepository(db)

	id, err := sessions.Create(time.Now())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	live := twistcube.New()
	sequence := []twistcube.Move{twistcube.R, twistcube.U, twistcube.RPrime, twistcube.UPrime, twistcube.F}
	for i, m := range sequence {
		if err := live.ApplyMoves(m); err != nil {
			t.Fatalf("Live apply failed: %v", err)
		}
		if _, err := turns.Append(id, i, m, 0); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	moves, err := turns.Moves(id)
	if err != nil {
		t.Fatalf("Moves failed: %v", err)
	}
	replayed := twistcube.New()
	if err := replayed.ApplyMoves(moves...); err != nil {
		t.Fatalf("Replay apply failed: %v", err)
	}

	if *replayed != *live {
		t.Error("Replayed session should reproduce the live cube state")
	}
}

func TestListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	base := time.Now()
	first, _ := repo.Create(base)
	second, _ := repo.Create(base.Add(time.Hour))

	list, err := repo.List(10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List returned %d sessions, want 2", len(list))
	}
	if list[0].SessionID != second || list[1].SessionID != first {
		t.Error("List should return newest sessions first")
	}
}
