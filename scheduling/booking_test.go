package scheduling

import (
	"context"
	"errors"
	"testing"

	"github.com/olawale021/Docappointapp/models"
)

func TestBook(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	appt, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30")
	if err != nil {
		t.Fatal(err)
	}
	if appt.Status != models.StatusRequested {
		t.Fatalf("new appointment status = %q, want %q", appt.Status, models.StatusRequested)
	}
	if appt.ID.IsZero() {
		t.Fatal("new appointment has no id")
	}

	// Identical doctor/date/slot while the first is non-cancelled.
	_, err = s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30")
	if !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("double booking err = %v, want ErrSlotTaken", err)
	}

	// Cancelling the holder frees the slot.
	if _, err := s.Cancel(ctx, appt.ID.Hex()); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30"); err != nil {
		t.Fatalf("rebooking a cancelled slot: %v", err)
	}
}

func TestBookValidation(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name    string
		patient string
		doctor  string
		date    string
		slot    string
		err     error
	}{
		{
			name:    "past date",
			patient: "walter1", doctor: "drgreg",
			date: "2024-04-20", slot: "09:00 - 09:30",
			err: ErrPastDate,
		},
		{
			name:    "unknown patient",
			patient: "nobody", doctor: "drgreg",
			date: "2024-04-27", slot: "09:00 - 09:30",
			err: ErrNotFound,
		},
		{
			name:    "unknown doctor",
			patient: "walter1", doctor: "drwho",
			date: "2024-04-27", slot: "09:00 - 09:30",
			err: ErrNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := s.Book(ctx, c.patient, c.doctor, c.date, c.slot)
			if !errors.Is(err, c.err) {
				t.Fatalf("Book() err = %v, want %v", err, c.err)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	appt, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30")
	if err != nil {
		t.Fatal(err)
	}

	changed, err := s.Approve(ctx, appt.ID.Hex())
	if err != nil || !changed {
		t.Fatalf("Approve() = %v, %v; want changed", changed, err)
	}
	got, err := s.Get(ctx, appt.ID.Hex())
	if err != nil || got.Status != models.StatusApproved {
		t.Fatalf("after approve: status = %q, err = %v", got.Status, err)
	}

	// Approving again matches but modifies nothing.
	changed, err = s.Approve(ctx, appt.ID.Hex())
	if err != nil || changed {
		t.Fatalf("second Approve() = %v, %v; want no changes", changed, err)
	}

	if _, err := s.Approve(ctx, "652d9fabc0ffee0000000000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("approve unknown id err = %v, want ErrNotFound", err)
	}
}

func TestCancelAndDelete(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	appt, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30")
	if err != nil {
		t.Fatal(err)
	}
	id := appt.ID.Hex()

	if _, err := s.Approve(ctx, id); err != nil {
		t.Fatal(err)
	}
	changed, err := s.Cancel(ctx, id)
	if err != nil || !changed {
		t.Fatalf("Cancel() = %v, %v", changed, err)
	}

	// Cancelled appointments stay retrievable until deleted.
	got, err := s.Get(ctx, id)
	if err != nil || got.Status != models.StatusCancelled {
		t.Fatalf("after cancel: status = %q, err = %v", got.Status, err)
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete: err = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestDoctorViewsEnrichment(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	appt, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30")
	if err != nil {
		t.Fatal(err)
	}

	requests, err := s.Requests(ctx, "drgreg")
	if err != nil {
		t.Fatal(err)
	}
	if len(requests) != 1 || requests[0].Patient == nil {
		t.Fatalf("requests = %+v", requests)
	}
	if requests[0].Patient.FullName != "Walter Obi" {
		t.Fatalf("request patient full name = %q", requests[0].Patient.FullName)
	}
	if requests[0].Patient.ImageURL != PlaceholderImage {
		t.Fatalf("request patient image = %q, want placeholder", requests[0].Patient.ImageURL)
	}

	if _, err := s.Approve(ctx, appt.ID.Hex()); err != nil {
		t.Fatal(err)
	}

	fixed, err := s.Fixed(ctx, "drgreg")
	if err != nil {
		t.Fatal(err)
	}
	if len(fixed) != 1 || fixed[0].Patient == nil || fixed[0].Patient.FullName != "Walter Obi" {
		t.Fatalf("fixed = %+v", fixed)
	}
	if requests, _ = s.Requests(ctx, "drgreg"); len(requests) != 0 {
		t.Fatalf("requests after approval = %+v", requests)
	}
}

func TestPatientViewEnrichment(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	if _, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30"); err != nil {
		t.Fatal(err)
	}

	appts, err := s.ForPatient(ctx, "walter1")
	if err != nil {
		t.Fatal(err)
	}
	if len(appts) != 1 || appts[0].Doctor == nil {
		t.Fatalf("patient view = %+v", appts)
	}
	doc := appts[0].Doctor
	if doc.FullName != "Gregory House" || doc.Hospital != "St. Mary" || doc.Specialty != "Cardiology" {
		t.Fatalf("doctor card = %+v", doc)
	}
}
