package dto

import (
	appdto "apen/internal/application/contact/dto"
)

// SubmitContactRequest represents the HTTP payload of the contact form.
// Field validation is deliberately left to the domain so the error
// messages come back in the visitor's language.
type SubmitContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Message  string `json:"message"`
	Language string `json:"language"`
}

// ToApplicationRequest converts HTTP DTO to application layer DTO
func (r *SubmitContactRequest) ToApplicationRequest() *appdto.SubmitContactRequest {
	return &appdto.SubmitContactRequest{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Service:  r.Service,
		Date:     r.Date,
		Time:     r.Time,
		Message:  r.Message,
		Language: r.Language,
	}
}
