package models

import (
	"math"
	"time"
)

// Contact always belongs to exactly one user.
type Contact struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactFilter narrows a contact search. Empty fields impose no constraint.
type ContactFilter struct {
	Name    string // matches first_name OR last_name
	Email   string
	Phone   string
	Page    int
	PerPage int
}

// Offset returns the number of rows skipped before the requested page,
// saturating at math.MaxInt.
func (f ContactFilter) Offset() int {
	if f.Page < 1 || f.PerPage < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.PerPage {
		return math.MaxInt
	}
	return (f.Page - 1) * f.PerPage
}
