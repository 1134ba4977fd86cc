package handlers

import (
	"net/http"

	"contacts_api"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      List addresses of a contact
// @Tags         addresses
// @Produce      json
// @Security     TokenAuth
// @Param        id_contact  query     int  true  "contact id"
// @Success      200         {object}  contacts_api.DataResponse{data=[]models.Address}
// @Failure      400         {object}  contacts_api.ErrorResponse
// @Failure      401         {object}  contacts_api.ErrorResponse
// @Failure      404         {object}  contacts_api.ErrorResponse
// @Router       /contacts/address/list [get]
func (h *Handler) listAddresses(c *gin.Context) {
	var in service.AddressListInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	list, err := h.services.Addresses.List(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "address_list_failed", "user_id", u.ID, "contact_id", in.ContactID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: list})
}

// @Summary      Get an address
// @Tags         addresses
// @Produce      json
// @Security     TokenAuth
// @Param        id_contact  query     int  true  "contact id"
// @Param        id_address  query     int  true  "address id"
// @Success      200         {object}  contacts_api.DataResponse{data=models.Address}
// @Failure      400         {object}  contacts_api.ErrorResponse
// @Failure      401         {object}  contacts_api.ErrorResponse
// @Failure      404         {object}  contacts_api.ErrorResponse
// @Router       /contacts/address/detail [get]
func (h *Handler) getAddress(c *gin.Context) {
	var in service.AddressLookupInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	a, err := h.services.Addresses.Get(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "address_get_failed", "user_id", u.ID, "contact_id", in.ContactID, "address_id", in.AddressID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: a})
}

// @Summary      Create an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.AddressInput  true  "address"
// @Success      201    {object}  contacts_api.DataResponse{data=models.Address}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Failure      404    {object}  contacts_api.ErrorResponse
// @Router       /contacts/address/createStored [post]
func (h *Handler) createAddress(c *gin.Context) {
	var in service.AddressInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	a, err := h.services.Addresses.Create(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "address_create_failed", "user_id", u.ID, "contact_id", in.ContactID)
		return
	}
	c.JSON(http.StatusCreated, contacts_api.DataResponse{Data: a})
}

// @Summary      Update an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.AddressUpdateInput  true  "address with ids"
// @Success      200    {object}  contacts_api.DataResponse{data=models.Address}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Failure      404    {object}  contacts_api.ErrorResponse
// @Router       /contacts/address/updateStored [post]
func (h *Handler) updateAddress(c *gin.Context) {
	var in service.AddressUpdateInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	a, err := h.services.Addresses.Update(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "address_update_failed", "user_id", u.ID, "contact_id", in.ContactID, "address_id", in.AddressID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: a})
}

// @Summary      Delete an address
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.AddressDeleteInput  true  "contact and address ids"
// @Success      200    {object}  contacts_api.MessageResponse
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Failure      404    {object}  contacts_api.ErrorResponse
// @Router       /contacts/address/deleteStored [post]
func (h *Handler) deleteAddress(c *gin.Context) {
	var in service.AddressDeleteInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	if err := h.services.Addresses.Delete(c.Request.Context(), u, in); err != nil {
		h.respondError(c, err, "address_delete_failed", "user_id", u.ID, "contact_id", in.ContactID, "address_id", in.AddressID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.MessageResponse{Message: []string{contacts_api.MsgDataDeleted}})
}
