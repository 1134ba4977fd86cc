package service

import (
	"context"
	"errors"
	"testing"

	"contacts_api/internal/models"
	"contacts_api/internal/repository"
)

// ownedContacts answers FindOwned for contact 3 of owner only.
func ownedContacts() *mockContactRepo {
	return &mockContactRepo{
		FindOwnedFn: func(userID, id int64) (*models.Contact, error) {
			if userID == owner.ID && id == 3 {
				return &models.Contact{ID: 3, UserID: owner.ID}, nil
			}
			return nil, repository.ErrNotFound
		},
	}
}

func TestAddressService_ListRequiresContact(t *testing.T) {
	svc := NewAddressService(ownedContacts(), &mockAddressRepo{
		ListOwnedFn: func(userID, contactID int64) ([]models.Address, error) {
			return []models.Address{{ID: 8, ContactID: contactID}}, nil
		},
	})

	_, err := svc.List(context.Background(), owner, AddressListInput{})
	wantFields(t, err, map[string][]string{"id_contact": {"The id contact field is required."}})

	got, err := svc.List(context.Background(), owner, AddressListInput{ContactID: 3})
	if err != nil || len(got) != 1 {
		t.Fatalf("List = %+v, %v", got, err)
	}

	if _, err := svc.List(context.Background(), owner, AddressListInput{ContactID: 4}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign contact, got %v", err)
	}
}

func TestAddressService_GetDetail(t *testing.T) {
	svc := NewAddressService(ownedContacts(), &mockAddressRepo{
		FindOwnedFn: func(userID, contactID, id int64) (*models.Address, error) {
			if contactID == 3 && id == 8 {
				return &models.Address{ID: 8, ContactID: 3}, nil
			}
			return nil, repository.ErrNotFound
		},
	})

	for _, in := range []AddressLookupInput{{}, {ContactID: 3}, {AddressID: 8}} {
		_, err := svc.Get(context.Background(), owner, in)
		wantFields(t, err, map[string][]string{"message": {"id_contact or id_address required."}})
	}

	if a, err := svc.Get(context.Background(), owner, AddressLookupInput{ContactID: 3, AddressID: 8}); err != nil || a.ID != 8 {
		t.Fatalf("Get = %+v, %v", a, err)
	}
	if _, err := svc.Get(context.Background(), owner, AddressLookupInput{ContactID: 3, AddressID: 9}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing address, got %v", err)
	}
	if _, err := svc.Get(context.Background(), models.User{ID: 2}, AddressLookupInput{ContactID: 3, AddressID: 8}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other user, got %v", err)
	}
}

func TestAddressService_CreateUnderResolvedContact(t *testing.T) {
	var got models.Address
	svc := NewAddressService(ownedContacts(), &mockAddressRepo{
		CreateFn: func(userID int64, a *models.Address) error {
			a.ID = 11
			got = *a
			return nil
		},
	})

	a, err := svc.Create(context.Background(), owner, AddressInput{ContactID: 3, City: "Jakarta", Country: "Indonesia"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ID != 11 || got.ContactID != 3 || got.Country != "Indonesia" {
		t.Fatalf("unexpected address: %+v", got)
	}

	_, err = svc.Create(context.Background(), owner, AddressInput{ContactID: 3, PostalCode: "12345678901"})
	wantFields(t, err, map[string][]string{
		"country":     {"The country field is required."},
		"postal_code": {"The postal code field must not be greater than 10 characters."},
	})
}

func TestAddressService_UpdateRequiresAddressID(t *testing.T) {
	svc := NewAddressService(ownedContacts(), &mockAddressRepo{})
	_, err := svc.Update(context.Background(), owner, AddressUpdateInput{ContactID: 3, Country: "ID"})
	wantFields(t, err, map[string][]string{"id_address": {"The id address field is required."}})
}

func TestAddressService_UpdateAndDelete(t *testing.T) {
	var updated models.Address
	var deleted [2]int64
	svc := NewAddressService(ownedContacts(), &mockAddressRepo{
		FindOwnedFn: func(userID, contactID, id int64) (*models.Address, error) {
			return &models.Address{ID: id, ContactID: contactID, Country: "Old"}, nil
		},
		UpdateOwnedFn: func(userID int64, a *models.Address) error {
			updated = *a
			return nil
		},
		DeleteOwnedFn: func(userID, contactID, id int64) error {
			deleted = [2]int64{contactID, id}
			return nil
		},
	})

	a, err := svc.Update(context.Background(), owner, AddressUpdateInput{ContactID: 3, AddressID: 8, Street: "Main", Country: "MY"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if a.Country != "MY" || updated.Street != "Main" || updated.ID != 8 {
		t.Fatalf("unexpected update: %+v", updated)
	}

	if err := svc.Delete(context.Background(), owner, AddressDeleteInput{ContactID: 3, AddressID: 8}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted != [2]int64{3, 8} {
		t.Fatalf("unexpected delete: %v", deleted)
	}

	if err := svc.Delete(context.Background(), owner, AddressDeleteInput{ContactID: 4, AddressID: 8}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound under foreign contact, got %v", err)
	}
}
