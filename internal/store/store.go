// Package store provides SQLite-backed persistence for user accounts
// and generation history.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNoCredits reports that a generation was attempted with an exhausted
// credit balance.
var ErrNoCredits = errors.New("no generation credits remaining")

// ErrNotFound reports a lookup that matched no row.
var ErrNotFound = errors.New("not found")

// DefaultCredits is the starting credit balance for new accounts.
const DefaultCredits = 50

// User is a clinician account.
type User struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Profession      string
	DefaultModality string
	DefaultTone     string
	Tier            string
	Credits         int
	CreatedAt       time.Time
}

// Generation is one stored plan generation.
type Generation struct {
	ID         string
	UserID     string
	Topic      string
	Modality   string
	Tone       string
	Profession string
	RawPlan    string
	CreatedAt  time.Time
}

// Store is a SQLite-backed persistence layer.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath and applies the schema.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Clinician accounts
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		profession TEXT NOT NULL DEFAULT 'Counselor',
		default_modality TEXT NOT NULL DEFAULT '',
		default_tone TEXT NOT NULL DEFAULT 'balanced',
		tier TEXT NOT NULL DEFAULT 'Free',
		credits INTEGER NOT NULL DEFAULT 50,
		created_at TIMESTAMP NOT NULL
	);

	-- Plan generation history
	CREATE TABLE IF NOT EXISTS generations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		topic TEXT NOT NULL,
		modality TEXT NOT NULL,
		tone TEXT NOT NULL,
		profession TEXT NOT NULL,
		raw_plan TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
	);
	CREATE INDEX IF NOT EXISTS idx_generations_user ON generations(user_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateUser inserts a new account and returns it. Email uniqueness is
// enforced by the schema; violations surface as an error.
func (s *Store) CreateUser(name, email, passwordHash, profession string) (*User, error) {
	u := &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Profession:   profession,
		DefaultTone:  "balanced",
		Tier:         "Free",
		Credits:      DefaultCredits,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := s.db.Exec(`
		INSERT INTO users (id, name, email, password_hash, profession, default_modality, default_tone, tier, credits, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Profession,
		u.DefaultModality, u.DefaultTone, u.Tier, u.Credits, u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// GetUser returns the user with the given id, or ErrNotFound.
func (s *Store) GetUser(id string) (*User, error) {
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, profession, default_modality, default_tone, tier, credits, created_at
		FROM users WHERE id = ?`, id))
}

// GetUserByEmail returns the user with the given email, or ErrNotFound.
func (s *Store) GetUserByEmail(email string) (*User, error) {
	return s.scanUser(s.db.QueryRow(`
		SELECT id, name, email, password_hash, profession, default_modality, default_tone, tier, credits, created_at
		FROM users WHERE email = ?`, email))
}

func (s *Store) scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Profession,
		&u.DefaultModality, &u.DefaultTone, &u.Tier, &u.Credits, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// UpdatePreferences stores the personalization settings for a user.
func (s *Store) UpdatePreferences(userID, profession, defaultModality, defaultTone string) error {
	res, err := s.db.Exec(`
		UPDATE users SET profession = ?, default_modality = ?, default_tone = ?
		WHERE id = ?`,
		profession, defaultModality, defaultTone, userID)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SpendCredit atomically decrements the user's credit balance. Returns
// ErrNoCredits when the balance is already zero.
func (s *Store) SpendCredit(userID string) error {
	res, err := s.db.Exec(`
		UPDATE users SET credits = credits - 1
		WHERE id = ? AND credits > 0`, userID)
	if err != nil {
		return fmt.Errorf("spend credit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("spend credit: %w", err)
	}
	if n == 0 {
		// Either no such user or an exhausted balance. Disambiguate.
		if _, lookupErr := s.GetUser(userID); lookupErr != nil {
			return lookupErr
		}
		return ErrNoCredits
	}
	return nil
}

// RecordGeneration stores a completed plan generation for the history page.
func (s *Store) RecordGeneration(g *Generation) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO generations (id, user_id, topic, modality, tone, profession, raw_plan, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.UserID, g.Topic, g.Modality, g.Tone, g.Profession, g.RawPlan, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// ListGenerations returns a user's generations, newest first.
func (s *Store) ListGenerations(userID string, limit int) ([]*Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`
		SELECT id, user_id, topic, modality, tone, profession, raw_plan, created_at
		FROM generations WHERE user_id = ?
		ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	var result []*Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.UserID, &g.Topic, &g.Modality, &g.Tone,
			&g.Profession, &g.RawPlan, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		result = append(result, &g)
	}
	return result, rows.Err()
}

// GetGeneration returns one stored generation, scoped to its owner.
func (s *Store) GetGeneration(userID, id string) (*Generation, error) {
	var g Generation
	err := s.db.QueryRow(`
		SELECT id, user_id, topic, modality, tone, profession, raw_plan, created_at
		FROM generations WHERE id = ? AND user_id = ?`, id, userID).
		Scan(&g.ID, &g.UserID, &g.Topic, &g.Modality, &g.Tone,
			&g.Profession, &g.RawPlan, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get generation: %w", err)
	}
	return &g, nil
}

// CountGenerations returns how many plans a user has generated.
func (s *Store) CountGenerations(userID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM generations WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count generations: %w", err)
	}
	return n, nil
}
