package dto

import "portfolio-blog/models"

// MessageInput is the contact form payload. There is no read field:
// a new message is always unread.
type MessageInput struct {
	Name    string `json:"name" example:"Visitor"`
	Email   string `json:"email" example:"visitor@example.com"`
	Message string `json:"message" example:"Hi there"`
}

func (in MessageInput) Model() models.Message {
	return models.Message{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
}

type MessagePatch struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Message *string `json:"message,omitempty"`
	Read    *bool   `json:"read,omitempty"`
}

func (p MessagePatch) Apply(dst *models.Message) {
	set(&dst.Name, p.Name)
	set(&dst.Email, p.Email)
	set(&dst.Message, p.Message)
	set(&dst.Read, p.Read)
}
