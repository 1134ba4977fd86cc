package handlers

import (
	"net/http"

	"contacts_api"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input  body      service.RegisterInput  true  "account"
// @Success      201    {object}  contacts_api.DataResponse{data=models.User}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Router       /users/register [post]
func (h *Handler) register(c *gin.Context) {
	var in service.RegisterInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u, err := h.services.Register(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "user_register_failed", "username", in.Username)
		return
	}
	c.JSON(http.StatusCreated, contacts_api.DataResponse{Data: u})
}

// @Summary      Log in
// @Description  Issues a new session token, replacing any previous one.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        input  body      service.LoginInput  true  "credentials"
// @Success      200    {object}  contacts_api.DataResponse{data=models.User}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Router       /users/login [post]
func (h *Handler) login(c *gin.Context) {
	var in service.LoginInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u, err := h.services.Login(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err, "user_login_failed", "username", in.Username)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: u})
}

// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  contacts_api.DataResponse{data=models.User}
// @Failure      401  {object}  contacts_api.ErrorResponse
// @Router       /users/profile [get]
func (h *Handler) profile(c *gin.Context) {
	u := currentUser(c)
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: u})
}

// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.UpdateProfileInput  true  "new name and current password"
// @Success      200    {object}  contacts_api.DataResponse{data=models.User}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Router       /users/update [post]
func (h *Handler) updateProfile(c *gin.Context) {
	var in service.UpdateProfileInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	updated, err := h.services.UpdateProfile(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "user_update_failed", "user_id", u.ID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: updated})
}

// @Summary      Change password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        input  body      service.ChangePasswordInput  true  "old and new password"
// @Success      200    {object}  contacts_api.DataResponse{data=models.User}
// @Failure      400    {object}  contacts_api.ErrorResponse
// @Failure      401    {object}  contacts_api.ErrorResponse
// @Router       /users/updatePassword [post]
func (h *Handler) updatePassword(c *gin.Context) {
	var in service.ChangePasswordInput
	if !h.bindOrBadRequest(c, &in) {
		return
	}

	u := currentUser(c)
	updated, err := h.services.ChangePassword(c.Request.Context(), u, in)
	if err != nil {
		h.respondError(c, err, "user_password_change_failed", "user_id", u.ID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: updated})
}

// @Summary      Log out
// @Tags         users
// @Produce      json
// @Security     TokenAuth
// @Success      200  {object}  contacts_api.DataResponse{data=bool}
// @Failure      401  {object}  contacts_api.ErrorResponse
// @Router       /users/logout [get]
func (h *Handler) logout(c *gin.Context) {
	u := currentUser(c)
	if err := h.services.Logout(c.Request.Context(), u); err != nil {
		h.respondError(c, err, "user_logout_failed", "user_id", u.ID)
		return
	}
	c.JSON(http.StatusOK, contacts_api.DataResponse{Data: true})
}
