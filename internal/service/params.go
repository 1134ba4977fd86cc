package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Request inputs. Handlers bind them straight from the query string or the
// request body (JSON or form); the validate tags hold the per-endpoint rules.

// ID is a record identifier. In a JSON body it may be sent as a number or
// as a numeric string ("5"); an empty string or null leaves it zero.
type ID int64

func (id *ID) UnmarshalJSON(b []byte) error {
	raw := string(b)
	if raw == "null" {
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		if raw = strings.TrimSpace(raw); raw == "" {
			*id = 0
			return nil
		}
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("parse id %s: %w", b, err)
	}
	*id = ID(n)
	return nil
}

type RegisterInput struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=100"`
	Name     string `json:"name" form:"name" validate:"required,max=100"`
}

type LoginInput struct {
	Username string `json:"username" form:"username" validate:"required,max=100"`
	Password string `json:"password" form:"password" validate:"required,max=100"`
}

// UpdateProfileInput leaves the name untouched when Name is empty.
type UpdateProfileInput struct {
	Name            string `json:"name" form:"name" validate:"max=100"`
	PasswordConfirm string `json:"password_confirm" form:"password_confirm" validate:"required,max=100"`
}

type ChangePasswordInput struct {
	OldPassword    string `json:"old_password" form:"old_password" validate:"required"`
	NewPassword    string `json:"new_password" form:"new_password" validate:"required,max=50"`
	RepeatPassword string `json:"repeat_password" form:"repeat_password" validate:"required,eqfield=NewPassword"`
}

type ContactInput struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=100"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" form:"phone" validate:"max=20"`
}

type ContactUpdateInput struct {
	ID        ID     `json:"id" form:"id" validate:"required"`
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" form:"last_name" validate:"max=100"`
	Email     string `json:"email" form:"email" validate:"omitempty,email,max=200"`
	Phone     string `json:"phone" form:"phone" validate:"max=20"`
}

type ContactDeleteInput struct {
	ID ID `json:"id" form:"id" validate:"required"`
}

// SearchInput is already lenient-parsed; Search clamps Page and PerPage.
type SearchInput struct {
	Name    string
	Email   string
	Phone   string
	Page    int
	PerPage int
}

type AddressListInput struct {
	ContactID ID `json:"id_contact" form:"id_contact" validate:"required"`
}

// AddressLookupInput identifies one address for the detail endpoint, which
// reports a missing id with a single combined message.
type AddressLookupInput struct {
	ContactID ID `json:"id_contact" form:"id_contact"`
	AddressID ID `json:"id_address" form:"id_address"`
}

type AddressInput struct {
	ContactID  ID     `json:"id_contact" form:"id_contact" validate:"required"`
	Street     string `json:"street" form:"street" validate:"max=200"`
	City       string `json:"city" form:"city" validate:"max=100"`
	Province   string `json:"province" form:"province" validate:"max=100"`
	Country    string `json:"country" form:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" form:"postal_code" validate:"max=10"`
}

type AddressUpdateInput struct {
	ContactID  ID     `json:"id_contact" form:"id_contact" validate:"required"`
	AddressID  ID     `json:"id_address" form:"id_address" validate:"required"`
	Street     string `json:"street" form:"street" validate:"max=200"`
	City       string `json:"city" form:"city" validate:"max=100"`
	Province   string `json:"province" form:"province" validate:"max=100"`
	Country    string `json:"country" form:"country" validate:"required,max=100"`
	PostalCode string `json:"postal_code" form:"postal_code" validate:"max=10"`
}

type AddressDeleteInput struct {
	ContactID ID `json:"id_contact" form:"id_contact" validate:"required"`
	AddressID ID `json:"id_address" form:"id_address" validate:"required"`
}

func (in RegisterInput) Validate() error { return check(in) }
func (in LoginInput) Validate() error { return check(in) }
func (in UpdateProfileInput) Validate() error { return check(in) }
func (in ChangePasswordInput) Validate() error { return check(in) }
func (in ContactInput) Validate() error { return check(in) }
func (in ContactUpdateInput) Validate() error { return check(in) }
func (in ContactDeleteInput) Validate() error { return check(in) }
func (in AddressListInput) Validate() error { return check(in) }
func (in AddressInput) Validate() error { return check(in) }
func (in AddressUpdateInput) Validate() error { return check(in) }
func (in AddressDeleteInput) Validate() error { return check(in) }

func (in AddressLookupInput) Validate() error {
	if in.ContactID == 0 || in.AddressID == 0 {
		return newFieldError("message", msgAddressRefNeeded)
	}
	return nil
}
