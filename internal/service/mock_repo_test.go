package service

import (
	"context"

	"contacts_api/internal/models"
)

// In-test mocks for the repository interfaces. Unset funcs panic, which
// doubles as "must not be called".

type mockUserRepo struct {
	CreateFn         func(u *models.User) error
	GetByUsernameFn  func(username string) (*models.User, error)
	GetByTokenFn     func(token string) (*models.User, error)
	SetTokenFn       func(id int64, token *string) error
	UpdateNameFn     func(id int64, name string) error
	UpdatePasswordFn func(id int64, hash string) error

	tokens []*string
}

func (m *mockUserRepo) Create(_ context.Context, u *models.User) error { return m.CreateFn(u) }

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByToken(_ context.Context, token string) (*models.User, error) {
	return m.GetByTokenFn(token)
}

func (m *mockUserRepo) SetToken(_ context.Context, id int64, token *string) error {
	m.tokens = append(m.tokens, token)
	if m.SetTokenFn == nil {
		return nil
	}
	return m.SetTokenFn(id, token)
}

func (m *mockUserRepo) UpdateName(_ context.Context, id int64, name string) error {
	return m.UpdateNameFn(id, name)
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	return m.UpdatePasswordFn(id, hash)
}

type mockContactRepo struct {
	CreateFn      func(userID int64, c *models.Contact) error
	FindOwnedFn   func(userID, id int64) (*models.Contact, error)
	ListOwnedFn   func(userID int64, f models.ContactFilter) ([]models.Contact, int, error)
	UpdateOwnedFn func(userID int64, c *models.Contact) error
	DeleteOwnedFn func(userID, id int64) error
}

func (m *mockContactRepo) Create(_ context.Context, userID int64, c *models.Contact) error {
	return m.CreateFn(userID, c)
}

func (m *mockContactRepo) FindOwned(_ context.Context, userID, id int64) (*models.Contact, error) {
	return m.FindOwnedFn(userID, id)
}

func (m *mockContactRepo) ListOwned(_ context.Context, userID int64, f models.ContactFilter) ([]models.Contact, int, error) {
	return m.ListOwnedFn(userID, f)
}

func (m *mockContactRepo) UpdateOwned(_ context.Context, userID int64, c *models.Contact) error {
	return m.UpdateOwnedFn(userID, c)
}

func (m *mockContactRepo) DeleteOwned(_ context.Context, userID, id int64) error {
	return m.DeleteOwnedFn(userID, id)
}

type mockAddressRepo struct {
	CreateFn      func(userID int64, a *models.Address) error
	FindOwnedFn   func(userID, contactID, id int64) (*models.Address, error)
	ListOwnedFn   func(userID, contactID int64) ([]models.Address, error)
	UpdateOwnedFn func(userID int64, a *models.Address) error
	DeleteOwnedFn func(userID, contactID, id int64) error
}

func (m *mockAddressRepo) Create(_ context.Context, userID int64, a *models.Address) error {
	return m.CreateFn(userID, a)
}

func (m *mockAddressRepo) FindOwned(_ context.Context, userID, contactID, id int64) (*models.Address, error) {
	return m.FindOwnedFn(userID, contactID, id)
}

func (m *mockAddressRepo) ListOwned(_ context.Context, userID, contactID int64) ([]models.Address, error) {
	return m.ListOwnedFn(userID, contactID)
}

func (m *mockAddressRepo) UpdateOwned(_ context.Context, userID int64, a *models.Address) error {
	return m.UpdateOwnedFn(userID, a)
}

func (m *mockAddressRepo) DeleteOwned(_ context.Context, userID, contactID, id int64) error {
	return m.DeleteOwnedFn(userID, contactID, id)
}
