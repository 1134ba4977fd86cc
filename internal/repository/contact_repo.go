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

type ContactSQLite struct {
	db  *sql.DB
	now func() time.Time
}

func NewContactSQLite(db *sql.DB) *ContactSQLite {
	return &ContactSQLite{db: db, now: utcNow}
}

var _ Contacts = (*ContactSQLite)(nil)

const (
	contactColumns = `id, user_id, first_name, last_name, email, phone, created_at, updated_at`

	insertContactSQL = `INSERT INTO contacts (user_id, first_name, last_name, email, phone, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectContactSQL = `SELECT ` + contactColumns + ` FROM contacts WHERE user_id = ? AND id = ?`
	updateContactSQL = `UPDATE contacts SET first_name = ?, last_name = ?, email = ?, phone = ?, updated_at = ? WHERE user_id = ? AND id = ?`
	deleteContactSQL = `DELETE FROM contacts WHERE user_id = ? AND id = ?`

	countContactsSQL  = `SELECT COUNT(*) FROM contacts`
	selectContactsSQL = `SELECT ` + contactColumns + ` FROM contacts`
	likeEscape        = ` ESCAPE '\'`
)

// Create inserts c under userID; any UserID already on c is ignored.
func (r *ContactSQLite) Create(ctx context.Context, userID int64, c *models.Contact) error {
	now := r.now()
	res, err := r.db.ExecContext(ctx, insertContactSQL,
		userID, c.FirstName, c.LastName, c.Email, c.Phone, now, now)
	if err != nil {
		return fmt.Errorf("insert contact for user %d: %w", userID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id for contact: %w", err)
	}
	c.ID, c.UserID = id, userID
	c.CreatedAt, c.UpdatedAt = now, now
	return nil
}

// FindOwned returns ErrNotFound both for missing contacts and for contacts of other users.
func (r *ContactSQLite) FindOwned(ctx context.Context, userID, id int64) (*models.Contact, error) {
	c, err := scanContact(r.db.QueryRowContext(ctx, selectContactSQL, userID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("select contact %d: %w", id, err)
	}
	return c, nil
}

// ListOwned returns one page of the user's contacts matching f, in id order,
// together with the total number of matches.
func (r *ContactSQLite) ListOwned(ctx context.Context, userID int64, f models.ContactFilter) ([]models.Contact, int, error) {
	where, args := contactConditions(userID, f)

	var total int
	if err := r.db.QueryRowContext(ctx, countContactsSQL+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count contacts: %w", err)
	}
	out := make([]models.Contact, 0, f.PerPage)
	if total == 0 {
		return out, 0, nil
	}

	q := selectContactsSQL + where + ` ORDER BY id ASC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, append(args, f.PerPage, f.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateOwned writes the editable fields of c; ErrNotFound if userID does not own c.ID.
func (r *ContactSQLite) UpdateOwned(ctx context.Context, userID int64, c *models.Contact) error {
	now := r.now()
	res, err := r.db.ExecContext(ctx, updateContactSQL,
		c.FirstName, c.LastName, c.Email, c.Phone, now, userID, c.ID)
	if err != nil {
		return fmt.Errorf("update contact %d: %w", c.ID, err)
	}
	if err := expectOneRow(res, "update contact"); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

// DeleteOwned removes the contact; its addresses go with it (ON DELETE CASCADE).
func (r *ContactSQLite) DeleteOwned(ctx context.Context, userID, id int64) error {
	res, err := r.db.ExecContext(ctx, deleteContactSQL, userID, id)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return expectOneRow(res, "delete contact")
}

// contactConditions builds the WHERE clause for a search. The owner condition
// is always first.
func contactConditions(userID int64, f models.ContactFilter) (string, []any) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if name := strings.TrimSpace(f.Name); name != "" {
		conds = append(conds, "("+foldFunc+"(first_name) LIKE ?"+likeEscape+" OR "+foldFunc+"(last_name) LIKE ?"+likeEscape+")")
		p := likePattern(fold(name))
		args = append(args, p, p)
	}
	if email := strings.TrimSpace(f.Email); email != "" {
		conds = append(conds, "email LIKE ?"+likeEscape)
		args = append(args, likePattern(email))
	}
	if phone := strings.TrimSpace(f.Phone); phone != "" {
		conds = append(conds, "phone LIKE ?"+likeEscape)
		args = append(args, likePattern(phone))
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps term for a substring LIKE match, escaping wildcards in term.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContact(s rowScanner) (*models.Contact, error) {
	var c models.Contact
	if err := s.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt, c.UpdatedAt = c.CreatedAt.UTC(), c.UpdatedAt.UTC()
	return &c, nil
}
