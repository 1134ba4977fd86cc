package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"contacts_api/internal/models"
)

type AddressSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewAddressSQLite(db *sql.DB) *AddressSQLite {
	return &AddressSQLite{db: db, now: utcNow}
}

var _ Addresses = (*AddressSQLite)(nil)

// Every statement re-checks that the parent contact belongs to the caller.
const (
	addressColumns = `a.id, a.contact_id, a.street, a.city, a.province, a.country, a.postal_code, a.created_at, a.updated_at`
	ownedContact   = `SELECT c.id FROM contacts c WHERE c.id = ? AND c.user_id = ?`

	insertAddressSQL = `INSERT INTO addresses (contact_id, street, city, province, country, postal_code, created_at, updated_at)
		SELECT c.id, ?, ?, ?, ?, ?, ?, ? FROM contacts c WHERE c.id = ? AND c.user_id = ?`
	selectAddressSQL = `SELECT ` + addressColumns + ` FROM addresses a
		JOIN contacts c ON c.id = a.contact_id
		WHERE c.user_id = ? AND a.contact_id = ? AND a.id = ?`
	listAddressesSQL = `SELECT ` + addressColumns + ` FROM addresses a
		JOIN contacts c ON c.id = a.contact_id
		WHERE c.user_id = ? AND a.contact_id = ?
		ORDER BY a.id ASC`
	updateAddressSQL = `UPDATE addresses SET street = ?, city = ?, province = ?, country = ?, postal_code = ?, updated_at = ?
		WHERE id = ? AND contact_id IN (` + ownedContact + `)`
	deleteAddressSQL = `DELETE FROM addresses WHERE id = ? AND contact_id IN (` + ownedContact + `)`
)

// Create inserts a under a.ContactID; ErrNotFound if that contact is not userID's.
func (r *AddressSQLite) Create(ctx context.Context, userID int64, a *models.Address) error {
	now := r.now()
	res, err := r.db.ExecContext(ctx, insertAddressSQL,
		a.Street, a.City, a.Province, a.Country, a.PostalCode, now, now,
		a.ContactID, userID)
	if err != nil {
		return fmt.Errorf("insert address for contact %d: %w", a.ContactID, err)
	}
	if err := expectOneRow(res, "insert address"); err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id for address: %w", err)
	}
	a.ID = id
	a.CreatedAt, a.UpdatedAt = now, now
	return nil
}

func (r *AddressSQLite) FindOwned(ctx context.Context, userID, contactID, id int64) (*models.Address, error) {
	a, err := scanAddress(r.db.QueryRowContext(ctx, selectAddressSQL, userID, contactID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select address %d: %w", id, err)
	}
	return a, nil
}

// ListOwned returns the contact's addresses in id order; empty if the contact is not userID's.
func (r *AddressSQLite) ListOwned(ctx context.Context, userID, contactID int64) ([]models.Address, error) {
	rows, err := r.db.QueryContext(ctx, listAddressesSQL, userID, contactID)
	if err != nil {
		return nil, fmt.Errorf("list addresses of contact %d: %w", contactID, err)
	}
	defer rows.Close()

	out := make([]models.Address, 0, 4)
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AddressSQLite) UpdateOwned(ctx context.Context, userID int64, a *models.Address) error {
	now := r.now()
	res, err := r.db.ExecContext(ctx, updateAddressSQL,
		a.Street, a.City, a.Province, a.Country, a.PostalCode, now,
		a.ID, a.ContactID, userID)
	if err != nil {
		return fmt.Errorf("update address %d: %w", a.ID, err)
	}
	if err := expectOneRow(res, "update address"); err != nil {
		return err
	}
	a.UpdatedAt = now
	return nil
}

func (r *AddressSQLite) DeleteOwned(ctx context.Context, userID, contactID, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteAddressSQL, id, contactID, userID)
	if err != nil {
		return fmt.Errorf("delete address %d: %w", id, err)
	}
	return expectOneRow(res, "delete address")
}

func scanAddress(s rowScanner) (*models.Address, error) {
	var a models.Address
	if err := s.Scan(&a.ID, &a.ContactID, &a.Street, &a.City, &a.Province, &a.Country, &a.PostalCode, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt, a.UpdatedAt = a.CreatedAt.UTC(), a.UpdatedAt.UTC()
	return &a, nil
}
