package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"heat_capacity_game/internal/models"
	"heat_capacity_game/internal/repository"
)

func TestInitDB_MemoryJournalRoundTrip(t *testing.T) {
	conn, err := InitDB("")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer conn.Close()

	repo := repository.NewEventSQLite(conn)
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, typ := range []string{models.EventPause, models.EventPlay, models.EventComplete} {
		err := repo.Append(ctx, models.GameEvent{
			OccurredAt:  at.Add(time.Duration(i) * time.Minute),
			Type:        typ,
			Description: typ,
			Metadata:    map[string]any{"i": i},
		})
		if err != nil {
			t.Fatalf("Append %s: %v", typ, err)
		}
	}

	all, err := repo.List(ctx, repository.EventQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 || all[0].Type != models.EventPause || all[2].Type != models.EventComplete {
		t.Fatalf("unexpected events: %+v", all)
	}

	ranged, err := repo.List(ctx, repository.EventQuery{From: at.Add(time.Minute), Limit: 1})
	if err != nil {
		t.Fatalf("List ranged: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Type != models.EventPlay {
		t.Fatalf("unexpected ranged events: %+v", ranged)
	}
}

func TestInitDB_FileIsReopenable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	first, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	_ = first.Close()

	second, err := InitDB(path)
	if err != nil {
		t.Fatalf("InitDB reopen: %v", err)
	}
	_ = second.Close()
}
