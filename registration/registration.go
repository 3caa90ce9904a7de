package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/olawale021/Docappointapp/models"
	"github.com/olawale021/Docappointapp/store"
)

const minUsernameLen = 5

// PatientAccounts and DoctorAccounts are the record-store slices the
// workflow needs; the Mongo stores satisfy them.
type PatientAccounts interface {
	Insert(ctx context.Context, p models.Patient) error
	FindByUsername(ctx context.Context, username string) (models.Patient, error)
	SetRegistrationStatus(ctx context.Context, username, status string) (matched, modified int64, err error)
}

type DoctorAccounts interface {
	Insert(ctx context.Context, d models.Doctor) error
	FindByUsername(ctx context.Context, username string) (models.Doctor, error)
	SetRegistrationStatus(ctx context.Context, username, status string) (matched, modified int64, err error)
}

// Service runs the registration and admin-approval workflow for patient
// and doctor accounts.
type Service struct {
	patients PatientAccounts
	doctors  DoctorAccounts
	validate *validator.Validate
}

func NewService(patients PatientAccounts, doctors DoctorAccounts) *Service {
	return &Service{
		patients: patients,
		doctors:  doctors,
		validate: validator.New(),
	}
}

// RegisterPatient validates the record, hashes the password and stores
// the account as pending.
func (s *Service) RegisterPatient(ctx context.Context, p models.Patient) error {
	if err := s.check(p, p.Username, p.PhoneNumber); err != nil {
		return err
	}
	hash, err := hashPassword(p.Password)
	if err != nil {
		return err
	}
	p.Password = hash
	p.RegistrationStatus = models.RegistrationPending

	if err := s.patients.Insert(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// RegisterDoctor is RegisterPatient for doctor accounts; the phone
// format rule only applies here.
func (s *Service) RegisterDoctor(ctx context.Context, d models.Doctor) error {
	if err := s.check(d, d.Username, d.PhoneNumber); err != nil {
		return err
	}
	hash, err := hashPassword(d.Password)
	if err != nil {
		return err
	}
	d.Password = hash
	d.RegistrationStatus = models.RegistrationPending

	if err := s.doctors.Insert(ctx, d); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// check translates validator failures into the registration error
// taxonomy. Missing fields win over format complaints so the user fixes
// emptiness first.
func (s *Service) check(rec any, username, phone string) error {
	err := s.validate.Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var missing []string
	var short, badPhone bool
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, fe.Field())
		case "min":
			if fe.Field() == "Username" {
				short = true
			}
		case "len", "numeric":
			if fe.Field() == "PhoneNumber" {
				badPhone = true
			}
		}
	}
	switch {
	case len(missing) > 0:
		return &MissingFieldsError{Fields: missing}
	case short:
		return &UsernameTooShortError{Username: username, Min: minUsernameLen}
	case badPhone:
		return &InvalidPhoneFormatError{Phone: phone}
	default:
		return err
	}
}

// Decide applies an admin approval or rejection to whichever account
// carries the username. Both collections are updated, matching the
// admin screens which list patients and doctors together. Reapplying
// the same decision matches but modifies nothing; that is reported as
// changed=false rather than an error.
func (s *Service) Decide(ctx context.Context, username, status string) (bool, error) {
	if status != models.RegistrationApproved && status != models.RegistrationRejected {
		return false, fmt.Errorf("invalid registration status %q", status)
	}
	pm, pmod, err := s.patients.SetRegistrationStatus(ctx, username, status)
	if err != nil {
		return false, err
	}
	dm, dmod, err := s.doctors.SetRegistrationStatus(ctx, username, status)
	if err != nil {
		return false, err
	}
	if pm+dm == 0 {
		return false, ErrNotFound
	}
	return pmod+dmod > 0, nil
}

// VerifyPassword re-derives the hash and compares.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
