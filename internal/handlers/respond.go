package handlers

import (
	"errors"
	"io"
	"net/http"

	"contacts_api"
	"contacts_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	msgInvalidInput = "The given data was invalid."
)

// respondError maps service outcomes onto the error envelope. Anything the
// service does not classify is logged under logKey and reported as a bare 500.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...any) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, contacts_api.ErrorResponse{Errors: ve.Fields})
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, contacts_api.NewErrorResponse(contacts_api.MessageKey, contacts_api.MsgUnauthorized))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, contacts_api.NewErrorResponse(contacts_api.MessageKey, contacts_api.MsgNotFound))
	default:
		h.log.Errorw(logKey, append([]any{"err", err}, kv...)...)
		c.JSON(http.StatusInternalServerError, contacts_api.NewErrorResponse(contacts_api.MessageKey, contacts_api.MsgInternal))
	}
}

// bindOrBadRequest decodes the query string (GET) or the JSON/form body into dst
// and writes a 400 on malformed input. An empty body is left to validation.
// Returns false if the request was already handled.
func (h *Handler) bindOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBind(dst); err != nil && !errors.Is(err, io.EOF) {
		h.log.Infow("bad_request_body", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusBadRequest, contacts_api.NewErrorResponse(contacts_api.MessageKey, msgInvalidInput))
		return false
	}
	return true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, contacts_api.NewErrorResponse(contacts_api.MessageKey, contacts_api.MsgNotFound))
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": statusOK})
}
