package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// MaxPasswordLength bounds raw passwords before any hashing work is done.
const MaxPasswordLength = 256

// Email is a syntactically valid email address. Values exist only via
// ParseEmail, so holding an Email means validation already happened.
type Email string

// Password is a non-empty raw password of bounded length. Values exist
// only via ParsePassword.
type Password string

// ParseEmail validates a raw email address string.
func ParseEmail(raw string) (Email, error) {
	if err := validation.Validate(raw, validation.Required, is.EmailFormat); err != nil {
		return "", NewValidationError("email", err)
	}
	return Email(raw), nil
}

// ParsePassword validates a raw password string.
func ParsePassword(raw string) (Password, error) {
	if err := validation.Validate(raw,
		validation.Required.Error("cannot be blank"),
		validation.Length(1, MaxPasswordLength),
	); err != nil {
		return "", NewValidationError("password", err)
	}
	return Password(raw), nil
}

func (e Email) String() string { return string(e) }

func (p Password) String() string { return string(p) }
