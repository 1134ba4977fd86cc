package models

import "time"

// Address belongs to a contact and, through it, to the contact's owner.
type Address struct {
	ID         int64     `json:"id"`
	ContactID  int64     `json:"-"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	Province   string    `json:"province"`
	Country    string    `json:"country"`
	PostalCode string    `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
