package scheduling

import (
	"context"
	"errors"
	"fmt"

	"github.com/olawale021/Docappointapp/models"
	"github.com/olawale021/Docappointapp/store"
)

// PlaceholderImage is served when a profile has no uploaded picture.
const PlaceholderImage = "/static/default-avatar.png"

// PatientCard is the patient display data joined onto an appointment at
// read time. It is never written back into the appointment record.
type PatientCard struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
}

// DoctorCard is the doctor display data joined onto an appointment.
type DoctorCard struct {
	FullName  string `json:"full_name"`
	Hospital  string `json:"hospital"`
	Specialty string `json:"specialty"`
	ImageURL  string `json:"image_url"`
}

// EnrichedAppointment is a denormalized appointment view for dashboards.
type EnrichedAppointment struct {
	models.Appointment
	Patient *PatientCard `json:"patient,omitempty"`
	Doctor  *DoctorCard  `json:"doctor,omitempty"`
}

// Book validates the candidate slot and inserts a requested appointment.
// The availability check runs first so the caller gets a friendly
// ErrSlotTaken, but the store's unique slot index is the real arbiter:
// losing a concurrent race surfaces as a duplicate key on insert, which
// is mapped to ErrSlotTaken as well.
func (s *Service) Book(ctx context.Context, patient, doctor, date, slot string) (models.Appointment, error) {
	if err := s.CheckDate(date, slot); err != nil {
		return models.Appointment{}, err
	}

	if _, err := s.patients.FindByUsername(ctx, patient); err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return models.Appointment{}, fmt.Errorf("patient %q: %w", patient, ErrNotFound)
		}
		return models.Appointment{}, err
	}
	doc, err := s.doctors.FindByUsername(ctx, doctor)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return models.Appointment{}, fmt.Errorf("doctor %q: %w", doctor, ErrNotFound)
		}
		return models.Appointment{}, err
	}
	if doc.RegistrationStatus != models.RegistrationApproved {
		return models.Appointment{}, fmt.Errorf("doctor %q: %w", doctor, ErrNotFound)
	}

	free, err := s.SlotFree(ctx, doctor, date, slot)
	if err != nil {
		return models.Appointment{}, err
	}
	if !free {
		return models.Appointment{}, ErrSlotTaken
	}

	appt := models.Appointment{
		PatientUsername: patient,
		DoctorUsername:  doctor,
		Date:            date,
		TimeSlot:        slot,
		Status:          models.StatusRequested,
		CreatedAt:       s.now(),
	}
	created, err := s.appointments.Insert(ctx, appt)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Appointment{}, ErrSlotTaken
		}
		return models.Appointment{}, err
	}
	return created, nil
}

// Approve moves an appointment to approved. The returned flag is false
// when the record matched but was already approved, so the caller can
// report "no changes made" instead of "approved".
func (s *Service) Approve(ctx context.Context, id string) (bool, error) {
	return s.setStatus(ctx, id, models.StatusApproved)
}

// Cancel moves an appointment to cancelled from any state. The record
// stays in the store until explicitly deleted.
func (s *Service) Cancel(ctx context.Context, id string) (bool, error) {
	return s.setStatus(ctx, id, models.StatusCancelled)
}

func (s *Service) setStatus(ctx context.Context, id, status string) (bool, error) {
	matched, modified, err := s.appointments.SetStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return false, ErrNotFound
		}
		return false, err
	}
	if matched == 0 {
		return false, ErrNotFound
	}
	return modified > 0, nil
}

// Delete removes an appointment record outright, valid from any state.
func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.appointments.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return ErrNotFound
		}
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

// Get fetches a single appointment by id.
func (s *Service) Get(ctx context.Context, id string) (models.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return models.Appointment{}, ErrNotFound
		}
		return models.Appointment{}, err
	}
	return appt, nil
}

// Requests lists a doctor's appointments still awaiting a decision,
// joined with patient display data.
func (s *Service) Requests(ctx context.Context, doctor string) ([]EnrichedAppointment, error) {
	appts, err := s.appointments.FindByDoctorAndStatus(ctx, doctor, models.StatusRequested)
	if err != nil {
		return nil, err
	}
	return s.withPatients(ctx, appts)
}

// Fixed lists a doctor's approved appointments joined with patient
// display data.
func (s *Service) Fixed(ctx context.Context, doctor string) ([]EnrichedAppointment, error) {
	appts, err := s.appointments.FindByDoctorAndStatus(ctx, doctor, models.StatusApproved)
	if err != nil {
		return nil, err
	}
	return s.withPatients(ctx, appts)
}

// ForPatient lists every appointment of a patient joined with the
// referenced doctor's display data.
func (s *Service) ForPatient(ctx context.Context, patient string) ([]EnrichedAppointment, error) {
	appts, err := s.appointments.FindByPatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	views := make([]EnrichedAppointment, 0, len(appts))
	for _, a := range appts {
		view := EnrichedAppointment{Appointment: a}
		doc, err := s.doctors.FindByUsername(ctx, a.DoctorUsername)
		if err == nil {
			view.Doctor = &DoctorCard{
				FullName:  doc.FullName(),
				Hospital:  doc.Hospital,
				Specialty: doc.Specialty,
				ImageURL:  imageOrDefault(doc.ImageURL),
			}
		} else if !errors.Is(err, store.ErrNoDocument) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *Service) withPatients(ctx context.Context, appts []models.Appointment) ([]EnrichedAppointment, error) {
	views := make([]EnrichedAppointment, 0, len(appts))
	for _, a := range appts {
		view := EnrichedAppointment{Appointment: a}
		p, err := s.patients.FindByUsername(ctx, a.PatientUsername)
		if err == nil {
			view.Patient = &PatientCard{
				FullName: p.FullName(),
				Phone:    p.PhoneNumber,
				Address:  p.Address,
				ImageURL: imageOrDefault(p.ImageURL),
			}
		} else if !errors.Is(err, store.ErrNoDocument) {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func imageOrDefault(url string) string {
	if url == "" {
		return PlaceholderImage
	}
	return url
}
