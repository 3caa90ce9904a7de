package registration

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/olawale021/Docappointapp/models"
	"github.com/olawale021/Docappointapp/store"
)

type memPatients struct {
	patients map[string]models.Patient
}

func (m *memPatients) Insert(_ context.Context, p models.Patient) error {
	if _, ok := m.patients[p.Username]; ok {
		return store.ErrDuplicate
	}
	m.patients[p.Username] = p
	return nil
}

func (m *memPatients) FindByUsername(_ context.Context, username string) (models.Patient, error) {
	p, ok := m.patients[username]
	if !ok {
		return models.Patient{}, store.ErrNoDocument
	}
	return p, nil
}

func (m *memPatients) SetRegistrationStatus(_ context.Context, username, status string) (int64, int64, error) {
	p, ok := m.patients[username]
	if !ok {
		return 0, 0, nil
	}
	if p.RegistrationStatus == status {
		return 1, 0, nil
	}
	p.RegistrationStatus = status
	m.patients[username] = p
	return 1, 1, nil
}

type memDoctors struct {
	doctors map[string]models.Doctor
}

func (m *memDoctors) Insert(_ context.Context, d models.Doctor) error {
	if _, ok := m.doctors[d.Username]; ok {
		return store.ErrDuplicate
	}
	m.doctors[d.Username] = d
	return nil
}

func (m *memDoctors) FindByUsername(_ context.Context, username string) (models.Doctor, error) {
	d, ok := m.doctors[username]
	if !ok {
		return models.Doctor{}, store.ErrNoDocument
	}
	return d, nil
}

func (m *memDoctors) SetRegistrationStatus(_ context.Context, username, status string) (int64, int64, error) {
	d, ok := m.doctors[username]
	if !ok {
		return 0, 0, nil
	}
	if d.RegistrationStatus == status {
		return 1, 0, nil
	}
	d.RegistrationStatus = status
	m.doctors[username] = d
	return 1, 1, nil
}

func newTestService() (*Service, *memPatients, *memDoctors) {
	patients := &memPatients{patients: make(map[string]models.Patient)}
	doctors := &memDoctors{doctors: make(map[string]models.Doctor)}
	return NewService(patients, doctors), patients, doctors
}

func validPatient(username string) models.Patient {
	return models.Patient{
		Username:    username,
		FirstName:   "Walter",
		LastName:    "Obi",
		DateOfBirth: "1990-02-14",
		Gender:      "male",
		PhoneNumber: "08031234567",
		Address:     "12 Marina Road, Lagos",
		Password:    "hunter22",
	}
}

func validDoctor(username, phone string) models.Doctor {
	return models.Doctor{
		Username:    username,
		FirstName:   "Gregory",
		LastName:    "House",
		DateOfBirth: "1975-06-11",
		Gender:      "male",
		PhoneNumber: phone,
		Address:     "5 Hospital Lane",
		Hospital:    "St. Mary",
		Specialty:   "Cardiology",
		Password:    "lupus-is-never-it",
	}
}

func TestRegisterPatientUsernameLength(t *testing.T) {
	s, patients, _ := newTestService()
	ctx := context.Background()

	err := s.RegisterPatient(ctx, validPatient("user"))
	var short *UsernameTooShortError
	if !errors.As(err, &short) {
		t.Fatalf("4-char username err = %v, want UsernameTooShortError", err)
	}

	if err := s.RegisterPatient(ctx, validPatient("users")); err != nil {
		t.Fatalf("5-char username err = %v", err)
	}
	stored := patients.patients["users"]
	if stored.RegistrationStatus != models.RegistrationPending {
		t.Fatalf("status = %q, want pending", stored.RegistrationStatus)
	}
}

func TestRegisterPatientHashesPassword(t *testing.T) {
	s, patients, _ := newTestService()

	if err := s.RegisterPatient(context.Background(), validPatient("walter1")); err != nil {
		t.Fatal(err)
	}
	stored := patients.patients["walter1"]
	if stored.Password == "hunter22" {
		t.Fatal("password stored in clear text")
	}
	if !VerifyPassword(stored.Password, "hunter22") {
		t.Fatal("stored hash does not verify against the original password")
	}
	if VerifyPassword(stored.Password, "wrong") {
		t.Fatal("stored hash verifies against a wrong password")
	}
}

func TestRegisterPatientMissingFields(t *testing.T) {
	s, _, _ := newTestService()

	p := validPatient("walter1")
	p.FirstName = ""
	p.Address = ""

	err := s.RegisterPatient(context.Background(), p)
	var missing *MissingFieldsError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want MissingFieldsError", err)
	}
	sort.Strings(missing.Fields)
	if len(missing.Fields) != 2 || missing.Fields[0] != "Address" || missing.Fields[1] != "FirstName" {
		t.Fatalf("missing fields = %v", missing.Fields)
	}
}

func TestRegisterDoctorPhoneFormat(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		phone string
		ok    bool
	}{
		{name: "nine digits", phone: "123456789", ok: false},
		{name: "eleven digits", phone: "12345678901", ok: true},
		{name: "eleven chars with letter", phone: "1234567890a", ok: false},
	}

	for i, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := s.RegisterDoctor(ctx, validDoctor("drhouse"+string(rune('a'+i)), c.phone))
			var bad *InvalidPhoneFormatError
			if c.ok && err != nil {
				t.Fatalf("err = %v, want success", err)
			}
			if !c.ok && !errors.As(err, &bad) {
				t.Fatalf("err = %v, want InvalidPhoneFormatError", err)
			}
		})
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	s, _, _ := newTestService()
	ctx := context.Background()

	if err := s.RegisterPatient(ctx, validPatient("walter1")); err != nil {
		t.Fatal(err)
	}
	if err := s.RegisterPatient(ctx, validPatient("walter1")); !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("err = %v, want ErrUsernameTaken", err)
	}
}

func TestDecide(t *testing.T) {
	s, patients, _ := newTestService()
	ctx := context.Background()

	if err := s.RegisterPatient(ctx, validPatient("walter1")); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Decide(ctx, "nobody", models.RegistrationApproved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown username err = %v, want ErrNotFound", err)
	}
	if _, err := s.Decide(ctx, "walter1", "banished"); err == nil {
		t.Fatal("invalid status accepted")
	}

	changed, err := s.Decide(ctx, "walter1", models.RegistrationApproved)
	if err != nil || !changed {
		t.Fatalf("approve = %v, %v", changed, err)
	}
	if got := patients.patients["walter1"].RegistrationStatus; got != models.RegistrationApproved {
		t.Fatalf("status = %q", got)
	}

	// Reapplying the same decision matches but changes nothing.
	changed, err = s.Decide(ctx, "walter1", models.RegistrationApproved)
	if err != nil || changed {
		t.Fatalf("second approve = %v, %v; want no changes", changed, err)
	}

	// A different decision is reachable from any current status.
	changed, err = s.Decide(ctx, "walter1", models.RegistrationRejected)
	if err != nil || !changed {
		t.Fatalf("reject after approve = %v, %v", changed, err)
	}
}
