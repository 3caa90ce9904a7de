package scheduling

import "errors"

// Booking errors are recoverable conditions reported back to the route
// layer, which picks the user-facing message. None of them is fatal.
var (
	// ErrPastDate marks a booking whose date plus slot start time is
	// already behind the current moment.
	ErrPastDate = errors.New("appointment date is in the past")

	// ErrSlotTaken marks a booking that collides with a non-cancelled
	// appointment holding the same doctor, date and time-slot label.
	ErrSlotTaken = errors.New("time slot is already booked")

	// ErrNotFound marks an operation on an appointment id that does not
	// resolve to a stored record.
	ErrNotFound = errors.New("appointment not found")

	// ErrInvalidSlot marks a date or time-slot string that does not parse.
	ErrInvalidSlot = errors.New("invalid date or time slot")
)
