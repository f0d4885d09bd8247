package session

import (
	"fmt"

	"github.com/rowanmaddox/twistcube"
)

// Turn represents one committed move in the database.
type Turn struct {
	TurnID    int64
	SessionID string
	Seq       int
	Move      twistcube.Move
	Notation  string
	TsMs      int64
}

// TurnRepository provides CRUD operations for turns.
type TurnRepository struct {
	db *DB
}

// NewTurnRepository creates a new turn repository.
func NewTurnRepository(db *DB) *TurnRepository {
	return &TurnRepository{db: db}
}

// Append stores one committed move at the next sequence number.
func (r *TurnRepository) Append(sessionID string, seq int, move twistcube.Move, tsMs int64) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO turns (session_id, seq, axis, layer, direction, notation, ts_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, sessionID, seq, move.Axis.String(), move.Layer, int(move.Direction), move.Notation(), tsMs)
	if err != nil {
		return 0, fmt.Errorf("failed to append turn: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get turn ID: %w", err)
	}
	return id, nil
}

// BySession retrieves all turns of a session in commit order.
func (r *TurnRepository) BySession(sessionID string) ([]Turn, error) {
	rows, err := r.db.Query(`
		SELECT turn_id, session_id, seq, axis, layer, direction, notation, ts_ms
		FROM turns
		WHERE session_id = ?
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get turns: %w", err)
	}
	defer rows.Close()

	var turns []Turn
	for rows.Next() {
		var t Turn
		var axis string
		var direction int
		if err := rows.Scan(&t.TurnID, &t.SessionID, &t.Seq, &axis, &t.Move.Layer, &direction, &t.Notation, &t.TsMs); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		a, err := parseAxis(axis)
		if err != nil {
			return nil, err
		}
		t.Move.Axis = a
		t.Move.Direction = twistcube.Direction(direction)
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// Moves returns just the move sequence of a session.
func (r *TurnRepository) Moves(sessionID string) ([]twistcube.Move, error) {
	turns, err := r.BySession(sessionID)
	if err != nil {
		return nil, err
	}
	moves := make([]twistcube.Move, len(turns))
	for i, t := range turns {
		moves[i] = t.Move
	}
	return moves, nil
}

func parseAxis(s string) (twistcube.Axis, error) {
	switch s {
	case "X":
		return twistcube.AxisX, nil
	case "Y":
		return twistcube.AxisY, nil
	case "Z":
		return twistcube.AxisZ, nil
	default:
		return 0, fmt.Errorf("unknown axis %q in database", s)
	}
}
