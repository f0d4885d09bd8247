package session

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents one play session in the database.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	TurnCount int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID.
func (r *SessionRepository) Create(startedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at)
		VALUES (?, ?)
	`, id, startedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// End marks a session as finished and records its final turn count.
func (r *SessionRepository) End(sessionID string, endedAt time.Time, turnCount int) error {
	_, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ?, turn_count = ?
		WHERE session_id = ?
	`, endedAt.UTC().Format(time.RFC3339Nano), turnCount, sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// Get retrieves a single session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, turn_count
		FROM sessions WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return s, nil
}

// List retrieves the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, started_at, ended_at, turn_count
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var started string
	var ended sql.NullString
	if err := row.Scan(&s.SessionID, &started, &ended, &s.TurnCount); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return nil, fmt.Errorf("bad started_at %q: %w", started, err)
	}
	s.StartedAt = t

	if ended.Valid {
		t, err := time.Parse(time.RFC3339Nano, ended.String)
		if err != nil {
			return nil, fmt.Errorf("bad ended_at %q: %w", ended.String, err)
		}
		s.EndedAt = &t
	}
	return &s, nil
}
