package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"club-mareva-site/internal/api"
)

// ErrBackendUnavailable is the generic retry error for form submissions when
// the backend rejects or cannot be reached. Field-level problems come back as
// a *ValidationError instead.
var ErrBackendUnavailable = errors.New("submission failed, please try again later")

// ValidationError carries per-field messages for a rejected form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// AsValidationError unwraps a *ValidationError if err carries one.
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

func validEmail(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	return err == nil && parsed.Address == addr
}

func validateContact(sub api.ContactSubmission) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(sub.FirstName) == "" {
		fields["firstName"] = "first name is required"
	}
	if strings.TrimSpace(sub.LastName) == "" {
		fields["lastName"] = "last name is required"
	}
	if strings.TrimSpace(sub.Email) == "" {
		fields["email"] = "email is required"
	} else if !validEmail(sub.Email) {
		fields["email"] = "email is not valid"
	}
	if strings.TrimSpace(sub.Message) == "" {
		fields["message"] = "message is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validateRegistration(reg api.EventRegistration) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(reg.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(reg.Email) == "" {
		fields["email"] = "email is required"
	} else if !validEmail(reg.Email) {
		fields["email"] = "email is not valid"
	}
	if strings.TrimSpace(reg.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

// remoteFieldErrors converts API field errors into a ValidationError.
func remoteFieldErrors(err error) error {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Details != nil && len(apiErr.Details.Details) > 0 {
		fields := make(map[string]string, len(apiErr.Details.Details))
		for _, fe := range apiErr.Details.Details {
			fields[fe.Field] = fe.Message
		}
		return &ValidationError{Fields: fields}
	}
	return ErrBackendUnavailable
}

// SubmitContact validates and forwards a contact form submission. Unlike
// content queries, form submissions surface errors: a *ValidationError for
// field problems, ErrBackendUnavailable otherwise.
func (s *ContentService) SubmitContact(ctx context.Context, sub api.ContactSubmission) (string, error) {
	if verr := validateContact(sub); verr != nil {
		return "", verr
	}
	resp, err := s.remote.SubmitContact(ctx, sub)
	if err != nil {
		s.log.Error(err, "contact submission failed")
		return "", remoteFieldErrors(err)
	}
	return resp.Message, nil
}

// RegisterForEvent validates and forwards an event registration.
func (s *ContentService) RegisterForEvent(ctx context.Context, eventID string, reg api.EventRegistration) (string, error) {
	if strings.TrimSpace(eventID) == "" {
		return "", &ValidationError{Fields: map[string]string{"eventId": "event id is required"}}
	}
	if verr := validateRegistration(reg); verr != nil {
		return "", verr
	}
	resp, err := s.remote.RegisterForEvent(ctx, eventID, reg)
	if err != nil {
		s.log.Error(err, "event registration failed for \""+eventID+"\"")
		return "", remoteFieldErrors(err)
	}
	return resp.Message, nil
}
