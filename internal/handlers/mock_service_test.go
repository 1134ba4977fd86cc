package handlers

import (
	"context"
	"net/http"

	"contacts_api/internal/models"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockUsers struct {
	user    *models.User
	err     error
	authErr error

	lastToken    string
	lastRegister service.RegisterInput
	lastLogin    service.LoginInput
	lastProfile  service.UpdateProfileInput
	lastPassword service.ChangePasswordInput
	lastCaller   models.User
	logoutCalls  int
}

func (m *mockUsers) Register(_ context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.user, m.err
}

func (m *mockUsers) Login(_ context.Context, in service.LoginInput) (*models.User, error) {
	m.lastLogin = in
	return m.user, m.err
}

// Authenticate accepts only "good" unless authErr is set.
func (m *mockUsers) Authenticate(_ context.Context, token string) (*models.User, error) {
	m.lastToken = token
	if m.authErr != nil {
		return nil, m.authErr
	}
	if token != "good" {
		return nil, service.ErrUnauthorized
	}
	return &models.User{ID: 1, Username: "admin", Name: "admins"}, nil
}

func (m *mockUsers) UpdateProfile(_ context.Context, u models.User, in service.UpdateProfileInput) (*models.User, error) {
	m.lastCaller, m.lastProfile = u, in
	return m.user, m.err
}

func (m *mockUsers) ChangePassword(_ context.Context, u models.User, in service.ChangePasswordInput) (*models.User, error) {
	m.lastCaller, m.lastPassword = u, in
	return m.user, m.err
}

func (m *mockUsers) Logout(_ context.Context, u models.User) error {
	m.lastCaller = u
	m.logoutCalls++
	return m.err
}

type mockContacts struct {
	contact *models.Contact
	page    models.ContactPage
	err     error

	lastCaller models.User
	lastID     int64
	lastCreate service.ContactInput
	lastUpdate service.ContactUpdateInput
	lastDelete service.ContactDeleteInput
	lastSearch service.SearchInput
}

func (m *mockContacts) Create(_ context.Context, u models.User, in service.ContactInput) (*models.Contact, error) {
	m.lastCaller, m.lastCreate = u, in
	return m.contact, m.err
}

func (m *mockContacts) Get(_ context.Context, u models.User, id int64) (*models.Contact, error) {
	m.lastCaller, m.lastID = u, id
	return m.contact, m.err
}

func (m *mockContacts) Update(_ context.Context, u models.User, in service.ContactUpdateInput) (*models.Contact, error) {
	m.lastCaller, m.lastUpdate = u, in
	return m.contact, m.err
}

func (m *mockContacts) Delete(_ context.Context, u models.User, in service.ContactDeleteInput) error {
	m.lastCaller, m.lastDelete = u, in
	return m.err
}

func (m *mockContacts) Search(_ context.Context, u models.User, in service.SearchInput) (models.ContactPage, error) {
	m.lastCaller, m.lastSearch = u, in
	return m.page, m.err
}

type mockAddresses struct {
	address *models.Address
	list    []models.Address
	err     error

	lastList   service.AddressListInput
	lastLookup service.AddressLookupInput
	lastCreate service.AddressInput
	lastUpdate service.AddressUpdateInput
	lastDelete service.AddressDeleteInput
}

func (m *mockAddresses) List(_ context.Context, _ models.User, in service.AddressListInput) ([]models.Address, error) {
	m.lastList = in
	return m.list, m.err
}

func (m *mockAddresses) Get(_ context.Context, _ models.User, in service.AddressLookupInput) (*models.Address, error) {
	m.lastLookup = in
	return m.address, m.err
}

func (m *mockAddresses) Create(_ context.Context, _ models.User, in service.AddressInput) (*models.Address, error) {
	m.lastCreate = in
	return m.address, m.err
}

func (m *mockAddresses) Update(_ context.Context, _ models.User, in service.AddressUpdateInput) (*models.Address, error) {
	m.lastUpdate = in
	return m.address, m.err
}

func (m *mockAddresses) Delete(_ context.Context, _ models.User, in service.AddressDeleteInput) error {
	m.lastDelete = in
	return m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func newMockService() (*service.Service, *mockUsers, *mockContacts, *mockAddresses) {
	u, c, a := &mockUsers{}, &mockContacts{}, &mockAddresses{}
	return &service.Service{Users: u, Contacts: c, Addresses: a}, u, c, a
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", token)
	}
	return h
}
