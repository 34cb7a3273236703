// Package contact implements the contact section's form model and the
// submission state machine behind it.
//
// A Section moves through the states
//
//	none -> (submit) -> loading -> success | error
//	success -> (send another) -> none
//
// Submissions are relayed through a Sender. The section treats a nil error
// from the sender as delivered; nothing about the remote response is
// inspected here.
package contact

import (
	"context"
	"errors"
	"strings"
)

const (
	// SuccessMessage is shown after a submission was handed off.
	SuccessMessage = "Thank you for reaching out! Your details are in my records. Expect a response from me soon—let's build something great."
	// ErrorMessage is shown when the relay call fails.
	ErrorMessage = "Something went wrong. Please try again."
	// RateLimitMessage is shown when a client submits too often.
	RateLimitMessage = "You've sent several messages in a short time. Please wait a few minutes and try again."
)

// StatusType tags the outcome of the last submission attempt.
type StatusType string

const (
	StatusNone    StatusType = ""
	StatusSuccess StatusType = "success"
	StatusError   StatusType = "error"
)

// Status is the outcome of the last submission attempt.
type Status struct {
	Type    StatusType
	Message string
}

// IsSuccess reports whether the last attempt was handed off.
func (s Status) IsSuccess() bool { return s.Type == StatusSuccess }

// IsError reports whether the last attempt failed.
func (s Status) IsError() bool { return s.Type == StatusError }

// FormData is the user-entered contact form. Field names on the wire are
// name, email and message.
type FormData struct {
	Name    string `json:"name" form:"name" validate:"required,max=200"`
	Email   string `json:"email" form:"email" validate:"required,mailbox,max=254"`
	Message string `json:"message" form:"message" validate:"required,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (f *FormData) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
}

// IsZero reports whether every field is empty.
func (f FormData) IsZero() bool {
	return f == FormData{}
}

// Sender relays a submitted form somewhere outside this process.
type Sender interface {
	Send(ctx context.Context, form FormData) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, form FormData) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, form FormData) error {
	return f(ctx, form)
}

// ErrNoSender is returned by Submit when no Sender is configured.
var ErrNoSender = errors.New("contact: no sender configured")

// Section is the contact section's state for one render.
type Section struct {
	Form    FormData
	Status  Status
	Loading bool
}

// Submit relays the current form through s. On success the form is cleared
// and the status becomes success. On failure the form is kept and the status
// becomes error with the generic message. The sender's error is returned so
// callers can log it.
func (sec *Section) Submit(ctx context.Context, s Sender) error {
	if s == nil {
		sec.Fail(ErrorMessage)
		return ErrNoSender
	}
	sec.Loading = true
	err := s.Send(ctx, sec.Form)
	sec.Loading = false
	if err != nil {
		sec.Fail(ErrorMessage)
		return err
	}
	sec.Succeed()
	return nil
}

// Succeed moves the section to the success state and clears the form.
func (sec *Section) Succeed() {
	sec.Form = FormData{}
	sec.Status = Status{Type: StatusSuccess, Message: SuccessMessage}
}

// Fail moves the section to the error state. The form is left untouched.
func (sec *Section) Fail(msg string) {
	if msg == "" {
		msg = ErrorMessage
	}
	sec.Status = Status{Type: StatusError, Message: msg}
}

// Reset returns the section to the neutral state ("send another message").
func (sec *Section) Reset() {
	sec.Status = Status{}
	sec.Loading = false
}
