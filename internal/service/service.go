package service

import (
	"context"

	"contacts_api/internal/models"
	"contacts_api/internal/repository"
)

// Users covers account lifecycle and the authentication gate.
type Users interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, in LoginInput) (*models.User, error)
	// Authenticate resolves a session token to its user or returns ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, u models.User, in UpdateProfileInput) (*models.User, error)
	ChangePassword(ctx context.Context, u models.User, in ChangePasswordInput) (*models.User, error)
	Logout(ctx context.Context, u models.User) error
}

// Contacts operates on the caller's own contacts only. Anything outside
// u's address book is reported as ErrNotFound.
type Contacts interface {
	Create(ctx context.Context, u models.User, in ContactInput) (*models.Contact, error)
	Get(ctx context.Context, u models.User, id int64) (*models.Contact, error)
	Update(ctx context.Context, u models.User, in ContactUpdateInput) (*models.Contact, error)
	Delete(ctx context.Context, u models.User, in ContactDeleteInput) error
	Search(ctx context.Context, u models.User, in SearchInput) (models.ContactPage, error)
}

// Addresses resolves the owning contact first, then the address under it.
type Addresses interface {
	List(ctx context.Context, u models.User, in AddressListInput) ([]models.Address, error)
	Get(ctx context.Context, u models.User, in AddressLookupInput) (*models.Address, error)
	Create(ctx context.Context, u models.User, in AddressInput) (*models.Address, error)
	Update(ctx context.Context, u models.User, in AddressUpdateInput) (*models.Address, error)
	Delete(ctx context.Context, u models.User, in AddressDeleteInput) error
}

type Service struct {
	Users
	Contacts
	Addresses
}

// Options tune the service layer; zero values fall back to defaults.
type Options struct {
	MaxPerPage int
}

func NewService(repos *repository.Repository, opts Options) *Service {
	return &Service{
		Users:     NewUserService(repos.Users),
		Contacts:  NewContactService(repos.Contacts, opts.MaxPerPage),
		Addresses: NewAddressService(repos.Contacts, repos.Addresses),
	}
}
