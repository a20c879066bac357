package dto

import (
	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

// SubmitFormResponse is the body of a successful submission.
type SubmitFormResponse struct {
	Success        bool   `json:"success"`
	Message        string `json:"message"`
	WhatsappNumber string `json:"whatsappNumber"`
}

// MapSubmitResultToResponse builds the success body.
func MapSubmitResultToResponse(result *relayDomain.SubmitResult) SubmitFormResponse {
	return SubmitFormResponse{
		Success:        true,
		Message:        "Your message has been sent successfully",
		WhatsappNumber: result.WhatsappNumber,
	}
}
