package store

import (
	"context"
	"fmt"

	"github.com/olawale021/Docappointapp/models"
)

// FindAccount resolves a username within one role's collection and
// returns the common credential view. The explicit role replaces the old
// pattern of probing patient, doctor and admin records in sequence.
func (s *Store) FindAccount(ctx context.Context, role models.Role, username string) (models.Account, error) {
	switch role {
	case models.RolePatient:
		p, err := s.Patients.FindByUsername(ctx, username)
		if err != nil {
			return models.Account{}, err
		}
		return models.Account{
			Role:               role,
			Username:           p.Username,
			PasswordHash:       p.Password,
			RegistrationStatus: p.RegistrationStatus,
		}, nil
	case models.RoleDoctor:
		d, err := s.Doctors.FindByUsername(ctx, username)
		if err != nil {
			return models.Account{}, err
		}
		return models.Account{
			Role:               role,
			Username:           d.Username,
			PasswordHash:       d.Password,
			RegistrationStatus: d.RegistrationStatus,
		}, nil
	case models.RoleAdmin:
		a, err := s.Admins.FindByUsername(ctx, username)
		if err != nil {
			return models.Account{}, err
		}
		return models.Account{
			Role:               role,
			Username:           a.Username,
			PasswordHash:       a.Password,
			RegistrationStatus: models.RegistrationApproved,
		}, nil
	default:
		return models.Account{}, fmt.Errorf("unknown role %q", role)
	}
}
