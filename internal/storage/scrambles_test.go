package storage

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("MigrateUp: %v", err)
	}
	return db
}

func TestPathReportsOpenedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()
	if got := db.Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
}

func TestTransactionRollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	wantErr := errors.New("abort")
	err := db.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, created_at, side_length, move_count, notation)
			VALUES ('doomed', '2026-01-01T00:00:00Z', 3, 1, 'F')
		`); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Transaction error = %v, want %v", err, wantErr)
	}

	repo := NewScrambleRepository(db)
	got, err := repo.Get("doomed")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("row survived a rolled-back transaction: %+v", got)
	}
}

func TestTransactionCommits(t *testing.T) {
	db := openTestDB(t)

	err := db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, created_at, side_length, move_count, notation)
			VALUES ('kept', '2026-01-01T00:00:00Z', 3, 1, 'F')
		`)
		return err
	})
	if err != nil {
		t.Fatalf("Transaction: %v", err)
	}

	repo := NewScrambleRepository(db)
	got, err := repo.Get("kept")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Error("committed row not found")
	}
}

func TestMigrateUpIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	if err := db.MigrateUp(); err != nil {
		t.Fatalf("second MigrateUp: %v", err)
	}
}

func TestScrambleCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	id, err := repo.Create(3, 5, "F R' 3U Lw 2-4B'")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatal("Create returned an empty ID")
	}

	got, err := repo.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil for a just-created scramble")
	}
	if got.ScrambleID != id {
		t.Errorf("ScrambleID = %q, want %q", got.ScrambleID, id)
	}
	if got.SideLength != 3 || got.MoveCount != 5 {
		t.Errorf("SideLength/MoveCount = %d/%d, want 3/5", got.SideLength, got.MoveCount)
	}
	if got.Notation != "F R' 3U Lw 2-4B'" {
		t.Errorf("Notation = %q", got.Notation)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero")
	}
}

func TestScrambleGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	got, err := repo.Get("no-such-id")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Errorf("Get of a missing ID = %+v, want nil", got)
	}
}

func TestScrambleList(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	ids := map[string]bool{}
	for i := range 3 {
		id, err := repo.Create(2+i, 10, "F R U")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids[id] = true
	}

	all, err := repo.List(10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("List returned %d scrambles, want 3", len(all))
	}
	for _, s := range all {
		if !ids[s.ScrambleID] {
			t.Errorf("List returned unknown scramble %q", s.ScrambleID)
		}
	}

	limited, err := repo.List(2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d scrambles, want 2", len(limited))
	}
}
