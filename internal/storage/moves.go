package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/nxcube"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Notation  string
	TsMs      int64
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

// Create records a move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, move nxcube.Move, tsMs int64) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO moves (session_id, move_index, notation, ts_ms)
		VALUES (?, ?, ?, ?)
	`, sessionID, moveIndex, move.Notation(), tsMs)

	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateBatch records moves in a single transaction. Every notation is
// checked before anything is written.
func (r *MoveRepository) CreateBatch(sessionID string, records []MoveRecord) error {
	for _, rec := range records {
		if _, err := nxcube.ParseMove(rec.Notation); err != nil {
			return fmt.Errorf("move %d: %w", rec.MoveIndex, err)
		}
	}

	return r.db.Transaction(func(tx *sql.Tx) error {
		for _, rec := range records {
			_, err := tx.Exec(`
				INSERT INTO moves (session_id, move_index, notation, ts_ms)
				VALUES (?, ?, ?, ?)
			`, sessionID, rec.MoveIndex, rec.Notation, rec.TsMs)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", rec.MoveIndex, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, notation, ts_ms
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)

	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Notation, &m.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// Tokens returns the notation of each record in order.
func Tokens(records []MoveRecord) []string {
	tokens := make([]string, len(records))
	for i, r := range records {
		tokens[i] = r.Notation
	}
	return tokens
}

// Replay rebuilds the cube a session ends with: a solved cube of the given
// size with the scramble and then every recorded move applied.
func Replay(s *Session, records []MoveRecord) (*nxcube.Cube, error) {
	cube, err := nxcube.New(s.CubeSize)
	if err != nil {
		return nil, err
	}
	if s.ScrambleText != nil {
		if err := cube.ApplySequence(*s.ScrambleText); err != nil {
			return nil, fmt.Errorf("failed to replay scramble: %w", err)
		}
	}
	if err := cube.ApplyAll(Tokens(records)); err != nil {
		return nil, fmt.Errorf("failed to replay moves: %w", err)
	}
	return cube, nil
}
