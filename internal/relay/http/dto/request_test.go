package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	relayDomain "github.com/allisson/formrelay/internal/relay/domain"
)

func validRequest() SubmitFormRequest {
	return SubmitFormRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Service: "construction",
		Message: "Need a quote",
	}
}

func TestSubmitFormRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(r *SubmitFormRequest)
		expectedErr error
	}{
		{name: "valid", mutate: func(r *SubmitFormRequest) {}},
		{name: "missing name", mutate: func(r *SubmitFormRequest) { r.Name = "" }, expectedErr: relayDomain.ErrMissingFields},
		{name: "blank phone", mutate: func(r *SubmitFormRequest) { r.Phone = "   " }, expectedErr: relayDomain.ErrMissingFields},
		{name: "missing message", mutate: func(r *SubmitFormRequest) { r.Message = "" }, expectedErr: relayDomain.ErrMissingFields},
		{
			name:        "missing field wins over bad email",
			mutate:      func(r *SubmitFormRequest) { r.Service = ""; r.Email = "nope" },
			expectedErr: relayDomain.ErrMissingFields,
		},
		{name: "invalid email", mutate: func(r *SubmitFormRequest) { r.Email = "jane@example" }, expectedErr: relayDomain.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expectedErr)
			}
		})
	}
}

func TestSubmitFormRequest_ToSubmission(t *testing.T) {
	req := validRequest()
	sub := req.ToSubmission()

	assert.Equal(t, &relayDomain.Submission{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "555-0100",
		Service: "construction",
		Message: "Need a quote",
	}, sub)
}
