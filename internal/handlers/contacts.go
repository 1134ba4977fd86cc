package handlers

import (
	"net/http"
	"strconv"

	"contacts_api"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Search contacts
// @Description  Substring search over the caller's contacts, paginated in creation order.
// @Tags         contacts
// @Produce      json
// @Security     TokenAuth
// @Param        name     query     string  false  "first or last name contains"
// @Param        email    query     string  false  "email contains"
// @Param        phone    query     string  false  "phone contains"
// @Param        page     query     int     false  "page number"  default(1)
// @Param        perPage  query     int     false  "page size"    default(10)
// @Success      200      {object}  contacts_api.ContactPageResponse
// @Failure      401      {object}  contacts_api.ErrorResponse
// @Router       /contacts [get]
func (h *Handler) searchContacts(c *gin.Context) {
	in := service.SearchInput{
		Name:    c.Query("name"),
		Email:   c.Query("email"),
		Phone:   c.Query("phone"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "perPage"),
	}

	u := currentUser(c)
	page, err := h.services.Search(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "contact_search_failed", "user_id", u.ID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.NewContactPageResponse(page))
}

// queryInt reads an integer query parameter; anything unparsable reads as 0.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

// @Summary      Get a contact
// @Tags         contacts
// @Produce      json
// @Security     TokenAuth
// @Param        id   path      int  true  "contact id"
// @Success      200  {object}  contacts_api.DataResponse{data=models.Contact}
// @Failure      401  {object}  contacts_api.ErrorResponse
// @Failure      404  {object}  contacts_api.ErrorResponse
// @Router       /contacts/{id} [get]
func (h *Handler) getContact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		notFound(c)
		return
	}

	u := currentUser(c)
	contact, err := h.services.Contacts.Get(c.Request.Context(), u, id)
	if err != nil {
		h.respondError(c, err, "contact_get_failed", "user_id", u.ID, "contact_id", id)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: contact})
}

// @Summary      Create a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.ContactInput  true  "contact"
// @Success      201    {object}  contacts_api.DataResponse{data=models.Contact}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Router       /contacts/createStored [post]
func (h *Handler) createContact(c *gin.Context) {
	var in service.ContactInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	contact, err := h.services.Contacts.Create(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "contact_create_failed", "user_id", u.ID)
		return
	}
	c.JSON(http.StatusCreated, contacts_api.DataResponse{Data: contact})
}

// @Summary      Update a contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.ContactUpdateInput  true  "contact with id"
// @Success      200    {object}  contacts_api.DataResponse{data=models.Contact}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Failure      404    {object}  contacts_api.ErrorResponse
// @Router       /contacts/updateStored [post]
func (h *Handler) updateContact(c *gin.Context) {
	var in service.ContactUpdateInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	contact, err := h.services.Contacts.Update(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "contact_update_failed", "user_id", u.ID, "contact_id", in.ID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: contact})
}

// @Summary      Delete a contact
// @Description  Removes the contact and all of its addresses.
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.ContactDeleteInput  true  "contact id"
// @Success      200    {object}  contacts_api.MessageResponse
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Failure      404    {object}  contacts_api.ErrorResponse
// @Router       /contacts/deleteStored [post]
func (h *Handler) deleteContact(c *gin.Context) {
	var in service.ContactDeleteInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	if err := h.services.Contacts.Delete(c.Request.Context(), u, in); err != nil {
		h.respondError(c, err, "contact_delete_failed", "user_id", u.ID, "contact_id", in.ID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.MessageResponse{Message: []string{contacts_api.MsgDataDeleted}})
}
