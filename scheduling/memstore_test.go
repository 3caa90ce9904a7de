package scheduling

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/olawale021/Docappointapp/models"
	"github.com/olawale021/Docappointapp/store"
)

// In-memory stand-ins for the Mongo collection stores, mirroring their
// semantics including the unique active-slot constraint.

type memAppointments struct {
	appts map[string]models.Appointment
}

func newMemAppointments() *memAppointments {
	return &memAppointments{appts: make(map[string]models.Appointment)}
}

func active(status string) bool {
	return status == models.StatusRequested || status == models.StatusApproved
}

func (m *memAppointments) Insert(_ context.Context, appt models.Appointment) (models.Appointment, error) {
	if active(appt.Status) {
		for _, a := range m.appts {
			if a.DoctorUsername == appt.DoctorUsername && a.Date == appt.Date &&
				a.TimeSlot == appt.TimeSlot && active(a.Status) {
				return models.Appointment{}, store.ErrDuplicate
			}
		}
	}
	appt.ID = primitive.NewObjectID()
	m.appts[appt.ID.Hex()] = appt
	return appt, nil
}

func (m *memAppointments) FindByID(_ context.Context, id string) (models.Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return models.Appointment{}, store.ErrNoDocument
	}
	return a, nil
}

func (m *memAppointments) FindByDoctorAndStatus(_ context.Context, doctor, status string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.DoctorUsername == doctor && a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointments) FindByPatient(_ context.Context, patient string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.PatientUsername == patient {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAppointments) FindAll(_ context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(m.appts))
	for _, a := range m.appts {
		out = append(out, a)
	}
	return out, nil
}

func (m *memAppointments) CountActive(_ context.Context, doctor, date, slot string) (int64, error) {
	var n int64
	for _, a := range m.appts {
		if a.DoctorUsername == doctor && a.Date == date && a.TimeSlot == slot && active(a.Status) {
			n++
		}
	}
	return n, nil
}

func (m *memAppointments) SetStatus(_ context.Context, id, status string) (int64, int64, error) {
	a, ok := m.appts[id]
	if !ok {
		return 0, 0, nil
	}
	if a.Status == status {
		return 1, 0, nil
	}
	a.Status = status
	m.appts[id] = a
	return 1, 1, nil
}

func (m *memAppointments) Delete(_ context.Context, id string) (int64, error) {
	if _, ok := m.appts[id]; !ok {
		return 0, nil
	}
	delete(m.appts, id)
	return 1, nil
}

type memPatients struct {
	patients map[string]models.Patient
}

func (m *memPatients) FindByUsername(_ context.Context, username string) (models.Patient, error) {
	p, ok := m.patients[username]
	if !ok {
		return models.Patient{}, store.ErrNoDocument
	}
	return p, nil
}

type memDoctors struct {
	doctors map[string]models.Doctor
}

func (m *memDoctors) FindByUsername(_ context.Context, username string) (models.Doctor, error) {
	d, ok := m.doctors[username]
	if !ok {
		return models.Doctor{}, store.ErrNoDocument
	}
	return d, nil
}

// newTestService wires the fakes with a fixed clock so the sample dates
// used in the tests stay in the future.
func newTestService() (*Service, *memAppointments) {
	appts := newMemAppointments()
	patients := &memPatients{patients: map[string]models.Patient{
		"walter1": {
			Username:           "walter1",
			FirstName:          "Walter",
			LastName:           "Obi",
			PhoneNumber:        "08031234567",
			Address:            "12 Marina Road, Lagos",
			RegistrationStatus: models.RegistrationApproved,
		},
	}}
	doctors := &memDoctors{doctors: map[string]models.Doctor{
		"drgreg": {
			Username:           "drgreg",
			FirstName:          "Gregory",
			LastName:           "House",
			Hospital:           "St. Mary",
			Specialty:          "Cardiology",
			RegistrationStatus: models.RegistrationApproved,
		},
	}}

	s := NewService(appts, patients, doctors)
	s.now = func() time.Time {
		return time.Date(2024, 4, 25, 12, 0, 0, 0, time.Local)
	}
	return s, appts
}
