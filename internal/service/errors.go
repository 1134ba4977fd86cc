package service

import (
	"errors"
	"sort"
	"strings"

	"contacts_api/internal/repository"
)

// Outcomes the HTTP layer maps to 401 and 404.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// Fixed business-rule messages.
const (
	msgUsernameTaken    = "Username already Registered"
	msgBadCredentials   = "username or password wrong."
	msgPasswordWrong    = "Password Wrong."
	msgAddressRefNeeded = "id_contact or id_address required."
)

// ValidationError carries per-field messages for a 400 response. Business rule
// failures use it too, keyed by the offending field or by "message".
type ValidationError struct {
	Fields map[string][]string
}

func newFieldError(field, msg string) *ValidationError {
	e := &ValidationError{}
	e.Add(field, msg)
	return e
}

// Add appends msg to the messages of field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// scoped converts the repository's not-found into the service one, leaving
// other errors untouched.
func scoped(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
