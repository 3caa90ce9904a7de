package scheduling

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"testing"
)

func TestCheckDate(t *testing.T) {
	s, _ := newTestService()

	cases := []struct {
		name string
		date string
		slot string
		err  error
	}{
		{
			name: "future date",
			date: "2024-04-27",
			slot: "09:00 - 09:30",
			err:  nil,
		},
		{
			name: "later today",
			date: "2024-04-25",
			slot: "15:00 - 15:30",
			err:  nil,
		},
		{
			name: "earlier today",
			date: "2024-04-25",
			slot: "09:00 - 09:30",
			err:  ErrPastDate,
		},
		{
			name: "past date",
			date: "2024-04-20",
			slot: "09:00 - 09:30",
			err:  ErrPastDate,
		},
		{
			name: "malformed slot",
			date: "2024-04-27",
			slot: "morning",
			err:  ErrInvalidSlot,
		},
		{
			name: "malformed date",
			date: "27/04/2024",
			slot: "09:00 - 09:30",
			err:  ErrInvalidSlot,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := s.CheckDate(c.date, c.slot)
			if !errors.Is(err, c.err) {
				t.Fatalf("CheckDate(%q, %q) = %v, want %v", c.date, c.slot, err, c.err)
			}
		})
	}
}

func TestSlotFree(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	free, err := s.SlotFree(ctx, "drgreg", "2024-04-27", "09:00 - 09:30")
	if err != nil || !free {
		t.Fatalf("empty store: free = %v, err = %v", free, err)
	}

	if _, err := s.Book(ctx, "walter1", "drgreg", "2024-04-27", "09:00 - 09:30"); err != nil {
		t.Fatal(err)
	}

	free, err = s.SlotFree(ctx, "drgreg", "2024-04-27", "09:00 - 09:30")
	if err != nil || free {
		t.Fatalf("booked slot: free = %v, err = %v", free, err)
	}

	// A different label on the same day does not conflict, even when the
	// ranges overlap. Slot identity is the literal string.
	free, err = s.SlotFree(ctx, "drgreg", "2024-04-27", "09:15 - 09:45")
	if err != nil || !free {
		t.Fatalf("overlapping label: free = %v, err = %v", free, err)
	}
}

func TestBusyDates(t *testing.T) {
	s, _ := newTestService()
	ctx := context.Background()

	bookings := []struct{ date, slot string }{
		{"2024-04-27", "09:00 - 09:30"},
		{"2024-04-27", "10:00 - 10:30"},
		{"2024-04-28", "09:00 - 09:30"},
	}
	for _, b := range bookings {
		if _, err := s.Book(ctx, "walter1", "drgreg", b.date, b.slot); err != nil {
			t.Fatal(err)
		}
	}

	busy, err := s.BusyDates(ctx)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string][]string{
		"drgreg": {"2024-04-27", "2024-04-28"},
	}
	if !reflect.DeepEqual(busy, want) {
		t.Fatalf("BusyDates() = %v, want %v", busy, want)
	}

	dates, err := s.BusyDatesFor(ctx, "drgreg")
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(dates)
	if !reflect.DeepEqual(dates, []string{"2024-04-27", "2024-04-28"}) {
		t.Fatalf("BusyDatesFor() = %v", dates)
	}
}
