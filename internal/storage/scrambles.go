package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scramble represents a saved scramble in the database.
type Scramble struct {
	ScrambleID string
	CreatedAt  time.Time
	SideLength int
	MoveCount  int
	Notation   string
}

// ScrambleRepository provides CRUD operations for scrambles.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create saves a scramble and returns its ID.
func (r *ScrambleRepository) Create(sideLength, moveCount int, notation string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, created_at, side_length, move_count, notation)
			VALUES (?, ?, ?, ?, ?)
		`, id, createdAt.Format(time.RFC3339), sideLength, moveCount, notation)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to create scramble: %w", err)
	}

	return id, nil
}

// Get retrieves a scramble by ID. Returns nil when no row matches.
func (r *ScrambleRepository) Get(scrambleID string) (*Scramble, error) {
	var s Scramble
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT scramble_id, created_at, side_length, move_count, notation
		FROM scrambles
		WHERE scramble_id = ?
	`, scrambleID).Scan(&s.ScrambleID, &createdAtStr, &s.SideLength, &s.MoveCount, &s.Notation)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &s, nil
}

// List retrieves the most recent scrambles, newest first.
func (r *ScrambleRepository) List(limit int) ([]Scramble, error) {
	rows, err := r.db.Query(`
		SELECT scramble_id, created_at, side_length, move_count, notation
		FROM scrambles
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var scrambles []Scramble
	for rows.Next() {
		var s Scramble
		var createdAtStr string
		if err := rows.Scan(&s.ScrambleID, &createdAtStr, &s.SideLength, &s.MoveCount, &s.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		s.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		scrambles = append(scrambles, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scrambles: %w", err)
	}

	return scrambles, nil
}
