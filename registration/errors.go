package registration

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound marks an approve/reject decision on a username that
	// matches neither a patient nor a doctor.
	ErrNotFound = errors.New("no account with that username")

	// ErrUsernameTaken marks a registration reusing an existing username.
	ErrUsernameTaken = errors.New("username already registered")
)

// MissingFieldsError names the required fields absent from a
// registration request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// UsernameTooShortError reports a username under the minimum length.
type UsernameTooShortError struct {
	Username string
	Min      int
}

func (e *UsernameTooShortError) Error() string {
	return fmt.Sprintf("username %q must be at least %d characters", e.Username, e.Min)
}

// InvalidPhoneFormatError reports a doctor phone number that is not
// exactly eleven digits.
type InvalidPhoneFormatError struct {
	Phone string
}

func (e *InvalidPhoneFormatError) Error() string {
	return fmt.Sprintf("phone number %q must be exactly 11 digits", e.Phone)
}
