package contact

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidForm is matched by every validation failure.
var ErrInvalidForm = errors.New("contact: invalid form")

// FieldError describes the first invalid field of a form.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("contact: %s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidForm.
func (e *FieldError) Unwrap() error { return ErrInvalidForm }

var validate = NewValidator()

// NewValidator returns a validator configured for the form structs here,
// including the "mailbox" tag.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("mailbox", func(fl validator.FieldLevel) bool {
		return IsMailbox(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsMailbox accepts what a browser's type=email input accepts: a non-empty
// local part and domain around the last "@", with no whitespace. Single-label
// domains such as "localhost" are allowed.
func IsMailbox(s string) bool {
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return false
	}
	domain := s[at+1:]
	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".") && !strings.Contains(domain, "..")
}

// Validate checks a normalized form. It returns a *FieldError for the first
// failing field, or nil.
func (f FormData) Validate() error {
	return FieldErrorFrom(validate.Struct(f))
}

// FieldErrorFrom converts an error produced by a validator into a
// *FieldError with a message fit for the error banner. Errors of any other
// kind are returned unchanged.
func FieldErrorFrom(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &FieldError{Field: fe.Field(), Message: fieldMessage(fe)}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "max" {
			return "Your name is too long."
		}
		return "Please enter your name."
	case "Email":
		if fe.Tag() == "required" {
			return "Please enter your email address."
		}
		return "Please enter a valid email address."
	case "Message":
		if fe.Tag() == "max" {
			return "Your message is too long. Please keep it under 5000 characters."
		}
		return "Please enter a message."
	}
	return "Please check the form and try again."
}
