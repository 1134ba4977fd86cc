package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"contacts_api/internal/models"
)

type UserSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db, now: utcNow}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	userColumns = `id, username, password_hash, name, token, created_at, updated_at`

	insertUserSQL           = `INSERT INTO users (username, password_hash, name, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	selectUserByUsernameSQL = `SELECT ` + userColumns + ` FROM users WHERE username = ?`
	selectUserByTokenSQL    = `SELECT ` + userColumns + ` FROM users WHERE token = ?`
	updateUserTokenSQL      = `UPDATE users SET token = ?, updated_at = ? WHERE id = ?`
	updateUserNameSQL       = `UPDATE users SET name = ?, updated_at = ? WHERE id = ?`
	updateUserPasswordSQL   = `UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`

	uniqueUsernameViolation = "UNIQUE constraint failed: users.username"
)

// Create inserts a new user and fills in its ID and timestamps.
func (r *UserSQLite) Create(ctx context.Context, u *models.User) error {
	now := r.now()
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Username, u.PasswordHash, u.Name, now, now)
	if err != nil {
		if strings.Contains(err.Error(), uniqueUsernameViolation) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	u.ID = lastID
	u.CreatedAt, u.UpdatedAt = now, now
	return nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByUsernameSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByToken fetches the user holding the given session token. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByToken(ctx context.Context, token string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, selectUserByTokenSQL, token))
	if err != nil {
		return nil, fmt.Errorf("select user by token: %w", err)
	}
	return u, nil
}

// SetToken replaces the user's session token; nil clears it.
func (r *UserSQLite) SetToken(ctx context.Context, id int64, token *string) error {
	var v sql.NullString
	if token != nil {
		v = sql.NullString{String: *token, Valid: true}
	}
	return r.update(ctx, "set token", updateUserTokenSQL, v, id)
}

func (r *UserSQLite) UpdateName(ctx context.Context, id int64, name string) error {
	return r.update(ctx, "update name", updateUserNameSQL, name, id)
}

func (r *UserSQLite) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	return r.update(ctx, "update password", updateUserPasswordSQL, passwordHash, id)
}

func (r *UserSQLite) update(ctx context.Context, what, query string, value any, id int64) error {
	res, err := r.db.ExecContext(ctx, query, value, r.now(), id)
	if err != nil {
		return fmt.Errorf("%s for user %d: %w", what, id, err)
	}
	return expectOneRow(res, what)
}

func scanUser(row *sql.Row) (*models.User, error) {
	var (
		u     models.User
		token sql.NullString
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &token, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if token.Valid {
		u.Token = &token.String
	}
	u.CreatedAt, u.UpdatedAt = u.CreatedAt.UTC(), u.UpdatedAt.UTC()
	return &u, nil
}
