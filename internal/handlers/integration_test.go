package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"contacts_api/internal/models"
	"contacts_api/internal/repository"
	"contacts_api/internal/repository/db"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIntegrationRouter wires the real stack over a fresh in-memory database.
func newIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	conn, err := db.InitDB(context.Background(), ":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	services := service.NewService(repository.NewRepository(conn), service.Options{MaxPerPage: 100})
	return newTestRouter(services)
}

func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var body struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body.Data
}

func registerAndLogin(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	creds := fmt.Sprintf(`{"username":%q,"password":"secret","name":%q}`, username, username)
	w := doRequest(r, http.MethodPost, "/users/register", creds, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(r, http.MethodPost, "/users/login", creds, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	u := decodeData[models.User](t, w)
	require.NotNil(t, u.Token)
	require.NotEmpty(t, *u.Token)
	return *u.Token
}

func createContact(t *testing.T, r http.Handler, token, body string) models.Contact {
	t.Helper()
	w := doRequest(r, http.MethodPost, "/contacts/createStored", body, authHeader(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeData[models.Contact](t, w)
}

func TestIntegration_RegisterAndLogin(t *testing.T) {
	r := newIntegrationRouter(t)
	registerAndLogin(t, r, "alice")

	w := doRequest(r, http.MethodPost, "/users/register", `{"username":"alice","password":"x","name":"A"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Username already Registered"}, decodeErrors(t, w)["username"])

	for _, body := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"nobody","password":"secret"}`,
	} {
		w = doRequest(r, http.MethodPost, "/users/login", body, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, []string{"username or password wrong."}, decodeErrors(t, w)["message"])
	}
}

func TestIntegration_LoginReplacesPreviousToken(t *testing.T) {
	r := newIntegrationRouter(t)
	first := registerAndLogin(t, r, "alice")

	w := doRequest(r, http.MethodPost, "/users/login", `{"username":"alice","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := *decodeData[models.User](t, w).Token
	require.NotEqual(t, first, second)

	assert.Equal(t, http.StatusUnauthorized, doRequest(r, http.MethodGet, "/users/profile", "", authHeader(first)).Code)
	assert.Equal(t, http.StatusOK, doRequest(r, http.MethodGet, "/users/profile", "", authHeader(second)).Code)
}

func TestIntegration_ContactRoundTrip(t *testing.T) {
	r := newIntegrationRouter(t)
	token := registerAndLogin(t, r, "alice")

	created := createContact(t, r, token, `{"first_name":"John","last_name":"Doe","email":"john@mail.com","phone":"01231231231"}`)

	w := doRequest(r, http.MethodGet, fmt.Sprintf("/contacts/%d", created.ID), "", authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[models.Contact](t, w)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Doe", got.LastName)
	assert.Equal(t, "john@mail.com", got.Email)
	assert.Equal(t, "01231231231", got.Phone)

	w = doRequest(r, http.MethodPost, "/contacts/createStored", `{"first_name":"John","email":"johnmail.com"}`, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"The email field must be a valid email address."}, decodeErrors(t, w)["email"])
}

func TestIntegration_SearchAndPaging(t *testing.T) {
	r := newIntegrationRouter(t)
	token := registerAndLogin(t, r, "alice")

	var ids []int64
	for i := 0; i < 20; i++ {
		first := fmt.Sprintf("other %d", i)
		if i%2 == 0 {
			first = fmt.Sprintf("First %d", i)
		}
		c := createContact(t, r, token, fmt.Sprintf(`{"first_name":%q,"phone":"08%02d"}`, first, i))
		ids = append(ids, c.ID)
	}

	type page struct {
		Data        []models.Contact `json:"data"`
		Total       int              `json:"total"`
		CurrentPage int              `json:"current_page"`
	}
	search := func(query string) page {
		w := doRequest(r, http.MethodGet, "/contacts"+query, "", authHeader(token))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var p page
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		return p
	}

	p := search("?name=first")
	assert.Equal(t, 10, p.Total)
	assert.Len(t, p.Data, 10)

	p = search("?perPage=5&page=2")
	assert.Equal(t, 20, p.Total)
	assert.Equal(t, 2, p.CurrentPage)
	require.Len(t, p.Data, 5)
	assert.Equal(t, ids[5], p.Data[0].ID)

	p = search("?name=first&phone=0804")
	require.Len(t, p.Data, 1)
	assert.Equal(t, ids[4], p.Data[0].ID)

	p = search("?name=%25")
	assert.Equal(t, 0, p.Total)
	assert.NotNil(t, p.Data)

	p = search("?page=9223372036854775807&perPage=100")
	assert.Equal(t, 20, p.Total)
	assert.Empty(t, p.Data)
	assert.Positive(t, p.CurrentPage)
}

func TestIntegration_SearchFoldsNonASCII(t *testing.T) {
	r := newIntegrationRouter(t)
	token := registerAndLogin(t, r, "alice")

	elodie := createContact(t, r, token, `{"first_name":"Élodie","last_name":"Roux"}`)
	createContact(t, r, token, `{"first_name":"Emil","last_name":"ÖZIL"}`)
	createContact(t, r, token, `{"first_name":"Elodie"}`)

	search := func(name string) []models.Contact {
		w := doRequest(r, http.MethodGet, "/contacts?name="+url.QueryEscape(name), "", authHeader(token))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return decodeData[[]models.Contact](t, w)
	}

	got := search("élodie")
	require.Len(t, got, 1)
	assert.Equal(t, elodie.ID, got[0].ID)

	assert.Len(t, search("ÉLO"), 1)
	assert.Len(t, search("özil"), 1)
	assert.Len(t, search("elodie"), 1)
}

func TestIntegration_ContactsAreIsolatedPerUser(t *testing.T) {
	r := newIntegrationRouter(t)
	alice := registerAndLogin(t, r, "alice")
	bob := registerAndLogin(t, r, "bob")

	c := createContact(t, r, alice, `{"first_name":"John"}`)
	path := fmt.Sprintf("/contacts/%d", c.ID)

	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodGet, path, "", authHeader(bob)).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodPost, "/contacts/updateStored",
		fmt.Sprintf(`{"id":%d,"first_name":"Hijacked"}`, c.ID), authHeader(bob)).Code)
	assert.Equal(t, http.StatusNotFound, doRequest(r, http.MethodPost, "/contacts/deleteStored",
		fmt.Sprintf(`{"id":%d}`, c.ID), authHeader(bob)).Code)

	w := doRequest(r, http.MethodGet, "/contacts", "", authHeader(bob))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":0`)

	w = doRequest(r, http.MethodGet, path, "", authHeader(alice))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "John", decodeData[models.Contact](t, w).FirstName)
}

func TestIntegration_AddressesUnderContacts(t *testing.T) {
	r := newIntegrationRouter(t)
	token := registerAndLogin(t, r, "alice")
	c1 := createContact(t, r, token, `{"first_name":"One"}`)
	c2 := createContact(t, r, token, `{"first_name":"Two"}`)

	w := doRequest(r, http.MethodPost, "/contacts/address/createStored",
		fmt.Sprintf(`{"id_contact":%d,"street":"Jl. Sudirman","city":"Jakarta","country":"Indonesia","postal_code":"10220"}`, c1.ID),
		authHeader(token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decodeData[models.Address](t, w)

	detail := func(contactID int64) *httptest.ResponseRecorder {
		return doRequest(r, http.MethodGet,
			fmt.Sprintf("/contacts/address/detail?id_contact=%d&id_address=%d", contactID, a.ID), "", authHeader(token))
	}
	assert.Equal(t, http.StatusOK, detail(c1.ID).Code)
	assert.Equal(t, http.StatusNotFound, detail(c2.ID).Code)

	w = doRequest(r, http.MethodGet, "/contacts/address/detail?id_contact=1", "", authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"id_contact or id_address required."}, decodeErrors(t, w)["message"])

	w = doRequest(r, http.MethodPost, "/contacts/address/updateStored",
		fmt.Sprintf(`{"id_contact":%d,"country":"Malaysia"}`, c1.ID), authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"The id address field is required."}, decodeErrors(t, w)["id_address"])

	w = doRequest(r, http.MethodPost, "/contacts/address/updateStored",
		fmt.Sprintf(`{"id_contact":%d,"id_address":%d,"city":"Kuala Lumpur","country":"Malaysia"}`, c1.ID, a.ID), authHeader(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Kuala Lumpur", decodeData[models.Address](t, w).City)

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/contacts/address/list?id_contact=%d", c1.ID), "", authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeData[[]models.Address](t, w), 1)

	// deleting the contact takes its addresses along
	w = doRequest(r, http.MethodPost, "/contacts/deleteStored", fmt.Sprintf(`{"id":%d}`, c1.ID), authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusNotFound, detail(c1.ID).Code)
}

func TestIntegration_AddressesAreIsolatedPerUser(t *testing.T) {
	r := newIntegrationRouter(t)
	alice := registerAndLogin(t, r, "alice")
	bob := registerAndLogin(t, r, "bob")

	c := createContact(t, r, alice, `{"first_name":"John"}`)
	w := doRequest(r, http.MethodPost, "/contacts/address/createStored",
		fmt.Sprintf(`{"id_contact":%d,"city":"Jakarta","country":"Indonesia"}`, c.ID), authHeader(alice))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	a := decodeData[models.Address](t, w)

	attempts := []struct {
		method, path, body string
	}{
		{http.MethodGet, fmt.Sprintf("/contacts/address/detail?id_contact=%d&id_address=%d", c.ID, a.ID), ""},
		{http.MethodGet, fmt.Sprintf("/contacts/address/list?id_contact=%d", c.ID), ""},
		{http.MethodPost, "/contacts/address/createStored", fmt.Sprintf(`{"id_contact":%d,"country":"Hijacked"}`, c.ID)},
		{http.MethodPost, "/contacts/address/updateStored", fmt.Sprintf(`{"id_contact":%d,"id_address":%d,"country":"Hijacked"}`, c.ID, a.ID)},
		{http.MethodPost, "/contacts/address/deleteStored", fmt.Sprintf(`{"id_contact":"%d","id_address":"%d"}`, c.ID, a.ID)},
	}
	for _, at := range attempts {
		w := doRequest(r, at.method, at.path, at.body, authHeader(bob))
		assert.Equal(t, http.StatusNotFound, w.Code, "%s %s: %s", at.method, at.path, w.Body.String())
	}

	w = doRequest(r, http.MethodGet, fmt.Sprintf("/contacts/address/list?id_contact=%d", c.ID), "", authHeader(alice))
	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[[]models.Address](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "Indonesia", got[0].Country)
}

func TestIntegration_ProfileUpdateAndLogout(t *testing.T) {
	r := newIntegrationRouter(t)
	token := registerAndLogin(t, r, "alice")

	w := doRequest(r, http.MethodPost, "/users/update", `{"name":"Changed","password_confirm":"nope"}`, authHeader(token))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Password Wrong."}, decodeErrors(t, w)["password_confirm"])

	w = doRequest(r, http.MethodGet, "/users/profile", "", authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decodeData[models.User](t, w).Name)

	w = doRequest(r, http.MethodPost, "/users/update", `{"name":"Alice L.","password_confirm":"secret"}`, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Alice L.", decodeData[models.User](t, w).Name)

	w = doRequest(r, http.MethodPost, "/users/updatePassword",
		`{"old_password":"secret","new_password":"secret2","repeat_password":"secret2"}`, authHeader(token))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(r, http.MethodGet, "/users/logout", "", authHeader(token))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":true}`, w.Body.String())

	w = doRequest(r, http.MethodGet, "/users/profile", "", authHeader(token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, []string{"Unauthorized."}, decodeErrors(t, w)["message"])

	w = doRequest(r, http.MethodPost, "/users/login", `{"username":"alice","password":"secret2"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
