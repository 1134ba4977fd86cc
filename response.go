package contacts_api

import "contacts_api/internal/models"

// Keys and fixed messages of the error envelope.
const (
	MessageKey = "message"

	MsgUnauthorized = "Unauthorized."
	MsgNotFound     = "Not Found"
	MsgDataDeleted  = "Data Deleted"
	MsgInternal     = "Internal Server Error"
)

// DataResponse is the success envelope for single resources and lists.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the failure envelope: field (or "message") to messages.
type ErrorResponse struct {
	Errors map[string][]string `json:"errors"`
}

// NewErrorResponse builds an envelope carrying a single message under key.
func NewErrorResponse(key, msg string) ErrorResponse {
	return ErrorResponse{Errors: map[string][]string{key: {msg}}}
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message []string `json:"message"`
}

// ContactPageResponse is the paginated contact search result.
type ContactPageResponse struct {
	Data        []models.Contact `json:"data"`
	Total       int              `json:"total"`
	CurrentPage int              `json:"current_page"`
	PerPage     int              `json:"per_page"`
	LastPage    int              `json:"last_page"`
	From        *int             `json:"from"`
	To          *int             `json:"to"`
}

// NewContactPageResponse flattens a models.ContactPage into the wire shape.
func NewContactPageResponse(p models.ContactPage) ContactPageResponse {
	data := p.Contacts
	if data == nil {
		data = []models.Contact{}
	}
	resp := ContactPageResponse{
		Data:        data,
		Total:       p.Total,
		CurrentPage: p.CurrentPage,
		PerPage:     p.PerPage,
		LastPage:    p.LastPage(),
	}
	if from, to, ok := p.Bounds(); ok {
		resp.From, resp.To = &from, &to
	}
	return resp
}
