package scheduling

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/olawale021/Docappointapp/models"
)

const dateTimeLayout = "2006-01-02 15:04"

// AppointmentStore is the slice of the record store the scheduling
// service needs. The Mongo-backed store satisfies it; tests use an
// in-memory fake.
type AppointmentStore interface {
	Insert(ctx context.Context, appt models.Appointment) (models.Appointment, error)
	FindByID(ctx context.Context, id string) (models.Appointment, error)
	FindByDoctorAndStatus(ctx context.Context, doctor, status string) ([]models.Appointment, error)
	FindByPatient(ctx context.Context, patient string) ([]models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
	CountActive(ctx context.Context, doctor, date, slot string) (int64, error)
	SetStatus(ctx context.Context, id, status string) (matched, modified int64, err error)
	Delete(ctx context.Context, id string) (int64, error)
}

type PatientDirectory interface {
	FindByUsername(ctx context.Context, username string) (models.Patient, error)
}

type DoctorDirectory interface {
	FindByUsername(ctx context.Context, username string) (models.Doctor, error)
}

// Service implements slot availability checks and the appointment
// lifecycle over an injected record store.
type Service struct {
	appointments AppointmentStore
	patients     PatientDirectory
	doctors      DoctorDirectory
	now          func() time.Time
}

func NewService(appointments AppointmentStore, patients PatientDirectory, doctors DoctorDirectory) *Service {
	return &Service{
		appointments: appointments,
		patients:     patients,
		doctors:      doctors,
		now:          time.Now,
	}
}

// slotStart extracts the start time from a slot label such as
// "09:00 - 09:30".
func slotStart(slot string) (string, error) {
	start, _, found := strings.Cut(slot, "-")
	if !found {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	start = strings.TrimSpace(start)
	if _, err := time.Parse("15:04", start); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return start, nil
}

// CheckDate rejects a candidate whose combined date and slot start time
// is strictly before the current moment. The slot start matters: a slot
// later today is still bookable.
func (s *Service) CheckDate(date, slot string) error {
	start, err := slotStart(slot)
	if err != nil {
		return err
	}
	at, err := time.ParseInLocation(dateTimeLayout, date+" "+start, time.Local)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidSlot, date)
	}
	if at.Before(s.now()) {
		return ErrPastDate
	}
	return nil
}

// SlotFree reports whether no non-cancelled appointment holds the exact
// doctor/date/slot combination. Slot identity is the literal label; two
// overlapping but differently written slots do not conflict.
func (s *Service) SlotFree(ctx context.Context, doctor, date, slot string) (bool, error) {
	n, err := s.appointments.CountActive(ctx, doctor, date, slot)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// BusyDates maps every doctor to the deduplicated, sorted list of dates
// carrying at least one appointment. It is recomputed from the live
// appointment set on each call.
func (s *Service) BusyDates(ctx context.Context) (map[string][]string, error) {
	appts, err := s.appointments.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]map[string]bool)
	for _, a := range appts {
		if seen[a.DoctorUsername] == nil {
			seen[a.DoctorUsername] = make(map[string]bool)
		}
		seen[a.DoctorUsername][a.Date] = true
	}
	busy := make(map[string][]string, len(seen))
	for doctor, dates := range seen {
		list := make([]string, 0, len(dates))
		for d := range dates {
			list = append(list, d)
		}
		sort.Strings(list)
		busy[doctor] = list
	}
	return busy, nil
}

// BusyDatesFor returns the busy-dates list of a single doctor.
func (s *Service) BusyDatesFor(ctx context.Context, doctor string) ([]string, error) {
	busy, err := s.BusyDates(ctx)
	if err != nil {
		return nil, err
	}
	return busy[doctor], nil
}
