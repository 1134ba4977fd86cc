package service

import (
	"context"
	"math"

	"contacts_api/internal/models"
	"contacts_api/internal/repository"
)

const (
	defaultPerPage    = 10
	defaultMaxPerPage = 100
)

type ContactService struct {
	contacts   repository.Contacts
	maxPerPage int
}

// NewContactService caps page sizes at maxPerPage (100 when not positive).
func NewContactService(repo repository.Contacts, maxPerPage int) *ContactService {
	if maxPerPage < 1 {
		maxPerPage = defaultMaxPerPage
	}
	return &ContactService{contacts: repo, maxPerPage: maxPerPage}
}

func (s *ContactService) Create(ctx context.Context, u models.User, in ContactInput) (*models.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c := &models.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := s.contacts.Create(ctx, u.ID, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactService) Get(ctx context.Context, u models.User, id int64) (*models.Contact, error) {
	c, err := s.contacts.FindOwned(ctx, u.ID, id)
	if err != nil {
		return nil, scoped(err)
	}
	return c, nil
}

func (s *ContactService) Update(ctx context.Context, u models.User, in ContactUpdateInput) (*models.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	c, err := s.contacts.FindOwned(ctx, u.ID, int64(in.ID))
	if err != nil {
		return nil, scoped(err)
	}

	c.FirstName, c.LastName, c.Email, c.Phone = in.FirstName, in.LastName, in.Email, in.Phone
	if err := s.contacts.UpdateOwned(ctx, u.ID, c); err != nil {
		return nil, scoped(err)
	}
	return c, nil
}

// Delete removes the contact together with its addresses.
func (s *ContactService) Delete(ctx context.Context, u models.User, in ContactDeleteInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	if _, err := s.contacts.FindOwned(ctx, u.ID, int64(in.ID)); err != nil {
		return scoped(err)
	}
	return scoped(s.contacts.DeleteOwned(ctx, u.ID, int64(in.ID)))
}

// Search pages through the caller's contacts. Out-of-range paging values are
// clamped rather than rejected.
func (s *ContactService) Search(ctx context.Context, u models.User, in SearchInput) (models.ContactPage, error) {
	f := models.ContactFilter{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Page:    in.Page,
		PerPage: in.PerPage,
	}
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.PerPage < 1:
		f.PerPage = defaultPerPage
	case f.PerPage > s.maxPerPage:
		f.PerPage = s.maxPerPage
	}
	// keeps (Page-1)*PerPage representable; such a page is empty anyway
	if maxPage := math.MaxInt / f.PerPage; f.Page > maxPage {
		f.Page = maxPage
	}

	contacts, total, err := s.contacts.ListOwned(ctx, u.ID, f)
	if err != nil {
		return models.ContactPage{}, err
	}
	return models.ContactPage{
		Contacts:    contacts,
		Total:       total,
		CurrentPage: f.Page,
		PerPage:     f.PerPage,
	}, nil
}
