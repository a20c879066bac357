// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
	customValidation "github.com/allisson/formrelay/internal/validation"
)

// SubmitFormRequest is the contact form body. It binds from JSON or from
// url-encoded / multipart forms.
type SubmitFormRequest struct {
	Name    string `json:"name"    form:"name"`
	Email   string `json:"email"   form:"email"`
	Phone   string `json:"phone"   form:"phone"`
	Service string `json:"service" form:"service"`
	Message string `json:"message" form:"message"`
}

// Validate checks required fields first and the email shape second, returning
// ErrMissingFields or ErrInvalidEmail.
func (r *SubmitFormRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Email, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Phone, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Service, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Message, validation.Required, customValidation.NotBlank),
	)
	if err != nil {
		return relayDomain.ErrMissingFields
	}

	if err := validation.Validate(r.Email, customValidation.Email); err != nil {
		return relayDomain.ErrInvalidEmail
	}

	return nil
}

// ToSubmission maps the request to the domain submission.
func (r *SubmitFormRequest) ToSubmission() *relayDomain.Submission {
	return &relayDomain.Submission{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Service: r.Service,
		Message: r.Message,
	}
}
