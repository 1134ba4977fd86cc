package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contacts_api/internal/models"
)

var (
	// ErrNotFound is returned by the ownership-scoped accessors when no row
	// matches both the id and the owner. It never distinguishes the two causes.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned when the users.username unique index rejects an insert.
	ErrUsernameTaken = errors.New("username already taken")
)

// Users is the credential store. Lookups return (nil, nil) when nothing matches.
type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	SetToken(ctx context.Context, id int64, token *string) error
	UpdateName(ctx context.Context, id int64, name string) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

// Contacts only exposes accessors scoped by the owning user's id.
type Contacts interface {
	Create(ctx context.Context, userID int64, c *models.Contact) error
	FindOwned(ctx context.Context, userID, id int64) (*models.Contact, error)
	ListOwned(ctx context.Context, userID int64, f models.ContactFilter) ([]models.Contact, int, error)
	UpdateOwned(ctx context.Context, userID int64, c *models.Contact) error
	DeleteOwned(ctx context.Context, userID, id int64) error
}

// Addresses are scoped by both the contact and the contact's owner, so an
// address can never be reached through a contact the caller does not own.
type Addresses interface {
	Create(ctx context.Context, userID int64, a *models.Address) error
	FindOwned(ctx context.Context, userID, contactID, id int64) (*models.Address, error)
	ListOwned(ctx context.Context, userID, contactID int64) ([]models.Address, error)
	UpdateOwned(ctx context.Context, userID int64, a *models.Address) error
	DeleteOwned(ctx context.Context, userID, contactID, id int64) error
}

type Repository struct {
	Users     Users
	Contacts  Contacts
	Addresses Addresses
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:     NewUserSQLite(db),
		Contacts:  NewContactSQLite(db),
		Addresses: NewAddressSQLite(db),
	}
}

// utcNow is the clock used for created_at/updated_at.
func utcNow() time.Time { return time.Now().UTC() }

// expectOneRow turns a zero-row write into ErrNotFound.
func expectOneRow(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", what, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
