package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrTransientStorage = errors.New("temporary storage failure, safe to retry")

	ErrNoShowSelected = errors.New("no show selected")
	ErrSeatOccupied   = errors.New("seat is already occupied")
	ErrSelectionFull  = errors.New("maximum number of seats already selected")
	ErrSeatNotPicked  = errors.New("seat is not part of the current selection")
	ErrEmptySelection = errors.New("no seats selected")
	ErrSubmitInFlight = errors.New("a submit is already in flight for this selection")
)

// SeatConflictError reports the exact seats that were already occupied at
// commit time, so callers can adjust their selection without a full refetch.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat(s) already occupied: %s", strings.Join(e.Seats, ", "))
}
