package service

import (
	"context"

	"contacts_api/internal/models"
	"contacts_api/internal/repository"
)

type AddressService struct {
	contacts  repository.Contacts
	addresses repository.Addresses
}

func NewAddressService(contacts repository.Contacts, addresses repository.Addresses) *AddressService {
	return &AddressService{contacts: contacts, addresses: addresses}
}

// contact resolves the parent contact within u's address book.
func (s *AddressService) contact(ctx context.Context, u models.User, id ID) (*models.Contact, error) {
	c, err := s.contacts.FindOwned(ctx, u.ID, int64(id))
	if err != nil {
		return nil, scoped(err)
	}
	return c, nil
}

func (s *AddressService) List(ctx context.Context, u models.User, in AddressListInput) ([]models.Address, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.contact(ctx, u, in.ContactID)
	if err != nil {
		return nil, err
	}
	return s.addresses.ListOwned(ctx, u.ID, c.ID)
}

func (s *AddressService) Get(ctx context.Context, u models.User, in AddressLookupInput) (*models.Address, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.contact(ctx, u, in.ContactID)
	if err != nil {
		return nil, err
	}
	a, err := s.addresses.FindOwned(ctx, u.ID, c.ID, int64(in.AddressID))
	if err != nil {
		return nil, scoped(err)
	}
	return a, nil
}

func (s *AddressService) Create(ctx context.Context, u models.User, in AddressInput) (*models.Address, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.contact(ctx, u, in.ContactID)
	if err != nil {
		return nil, err
	}

	a := &models.Address{
		ContactID:  c.ID,
		Street:     in.Street,
		City:       in.City,
		Province:   in.Province,
		Country:    in.Country,
		PostalCode: in.PostalCode,
	}
	if err := s.addresses.Create(ctx, u.ID, a); err != nil {
		return nil, scoped(err)
	}
	return a, nil
}

func (s *AddressService) Update(ctx context.Context, u models.User, in AddressUpdateInput) (*models.Address, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.contact(ctx, u, in.ContactID)
	if err != nil {
		return nil, err
	}
	a, err := s.addresses.FindOwned(ctx, u.ID, c.ID, int64(in.AddressID))
	if err != nil {
		return nil, scoped(err)
	}

	a.Street, a.City, a.Province = in.Street, in.City, in.Province
	a.Country, a.PostalCode = in.Country, in.PostalCode
	if err := s.addresses.UpdateOwned(ctx, u.ID, a); err != nil {
		return nil, scoped(err)
	}
	return a, nil
}

func (s *AddressService) Delete(ctx context.Context, u models.User, in AddressDeleteInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	c, err := s.contact(ctx, u, in.ContactID)
	if err != nil {
		return err
	}
	if _, err := s.addresses.FindOwned(ctx, u.ID, c.ID, int64(in.AddressID)); err != nil {
		return scoped(err)
	}
	return scoped(s.addresses.DeleteOwned(ctx, u.ID, c.ID, int64(in.AddressID)))
}
