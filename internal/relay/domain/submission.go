// Package domain defines contact form submissions, delivery outcomes and relay errors.
package domain

import (
	auditlogDomain "github.com/allisson/formrelay/internal/auditlog/domain"
	"github.com/allisson/formrelay/internal/errors"
)

const (
	// DefaultDeliveryURL is the Web3Forms submission endpoint.
	DefaultDeliveryURL = "https://api.web3forms.com/submit"

	// DefaultFromName is sent as from_name with every delivery.
	DefaultFromName = "5R Associates Contact Form"

	// DefaultWhatsappNumber is echoed to the visitor when no number is configured.
	DefaultWhatsappNumber = "N/A yet"

	// UnknownDeliveryError is recorded when the delivery API rejects a submission
	// without saying why.
	UnknownDeliveryError = "Unknown Web3Forms error"
)

// Submission is a validated contact form.
type Submission struct {
	Name    string
	Email   string
	Phone   string
	Service string
	Message string
}

// Submitter converts the submission into the audit log's submitter fields.
func (s *Submission) Submitter() *auditlogDomain.Submitter {
	return &auditlogDomain.Submitter{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Service: s.Service,
		Message: s.Message,
	}
}

// DeliveryResult is the delivery API's verdict on a submission.
type DeliveryResult struct {
	Success bool
	Message string
}

// SubmitResult is returned to the visitor on success.
type SubmitResult struct {
	WhatsappNumber string
}

var (
	// ErrDeliveryRejected indicates the delivery API answered but did not accept the submission.
	ErrDeliveryRejected = errors.New("form delivery rejected")

	// ErrDeliveryFailed indicates the delivery API could not be reached or answered
	// with something that is not a delivery verdict.
	ErrDeliveryFailed = errors.New("form delivery failed")
)

var (
	// ErrMissingFields indicates a required form field was empty.
	ErrMissingFields = errors.Wrap(errors.ErrInvalidInput, "missing required fields")

	// ErrInvalidEmail indicates the email field is not an email address.
	ErrInvalidEmail = errors.Wrap(errors.ErrInvalidInput, "invalid email address")
)
