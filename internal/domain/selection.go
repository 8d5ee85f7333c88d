package domain

import (
	"slices"

	"github.com/google/uuid"
)

// MaxSeatsPerSelection caps how many seats one session may pick for a show.
const MaxSeatsPerSelection = 5

type SelectionState string

const (
	SelectionStateNoShow     SelectionState = "NO_SHOW_SELECTED"
	SelectionStateShow       SelectionState = "SHOW_SELECTED"
	SelectionStateSubmitting SelectionState = "SUBMITTING"
	SelectionStateCommitted  SelectionState = "COMMITTED"
	SelectionStateRejected   SelectionState = "REJECTED"
)

// Selection is the per-session seat-selection state machine. It enforces the
// local constraints (seat cap, no picking a known-occupied seat) before
// anything is submitted; the occupied set it holds is only the last polled
// snapshot, and the booking repository remains the authority at commit time.
type Selection struct {
	ShowID   uuid.UUID      `json:"showId"`
	Seats    []string       `json:"seats"`
	Occupied []string       `json:"occupied"`
	State    SelectionState `json:"state"`
}

func NewSelection() *Selection {
	return &Selection{State: SelectionStateNoShow}
}

// SelectShow switches the selection to a show. Picked seats never survive a
// show change, so stale seat ids cannot be submitted against another show's
// seat map. Re-selecting the current show only refreshes the occupied set.
func (s *Selection) SelectShow(showID uuid.UUID, occupied []string) []string {
	if s.State != SelectionStateNoShow && s.ShowID == showID {
		return s.Refresh(occupied)
	}

	s.ShowID = showID
	s.Seats = []string{}
	s.Occupied = NormalizeSeats(occupied)
	s.State = SelectionStateShow

	return nil
}

// Pick adds a seat to the selection. Picking a seat from the last-known
// occupied set, or a sixth seat, is an explicit rejection rather than a
// silent cap.
func (s *Selection) Pick(seat string) error {
	switch s.State {
	case SelectionStateNoShow:
		return ErrNoShowSelected
	case SelectionStateSubmitting:
		return ErrSubmitInFlight
	}

	if slices.Contains(s.Seats, seat) {
		return nil
	}

	if slices.Contains(s.Occupied, seat) {
		return ErrSeatOccupied
	}

	if len(s.Seats) >= MaxSeatsPerSelection {
		return ErrSelectionFull
	}

	s.Seats = append(s.Seats, seat)
	s.State = SelectionStateShow

	return nil
}

// Unpick removes a picked seat. Always allowed while no submit is in flight.
func (s *Selection) Unpick(seat string) error {
	if s.State == SelectionStateNoShow {
		return ErrNoShowSelected
	}
	if s.State == SelectionStateSubmitting {
		return ErrSubmitInFlight
	}

	i := slices.Index(s.Seats, seat)
	if i < 0 {
		return ErrSeatNotPicked
	}

	s.Seats = slices.Delete(s.Seats, i, i+1)

	return nil
}

// Refresh replaces the last-known occupied set with a newer poll result and
// drops any picks that now conflict, returning the dropped seats. A refresh
// arriving mid-submit is ignored so it cannot disturb the in-flight request.
func (s *Selection) Refresh(occupied []string) []string {
	if s.State == SelectionStateSubmitting {
		return nil
	}

	s.Occupied = NormalizeSeats(occupied)

	dropped := IntersectSeats(s.Seats, s.Occupied)
	if len(dropped) > 0 {
		s.Seats = DifferenceSeats(s.Seats, dropped)
	}

	return dropped
}

// BeginSubmit transitions to Submitting and returns a copy of the picked
// seats for the booking request, so later refreshes cannot mutate the list
// the coordinator is working on.
func (s *Selection) BeginSubmit() ([]string, error) {
	switch {
	case s.State == SelectionStateNoShow:
		return nil, ErrNoShowSelected
	case s.State == SelectionStateSubmitting:
		return nil, ErrSubmitInFlight
	case len(s.Seats) == 0:
		return nil, ErrEmptySelection
	}

	s.State = SelectionStateSubmitting

	return slices.Clone(s.Seats), nil
}

// CompleteSubmit records a committed booking and clears the local selection.
func (s *Selection) CompleteSubmit() {
	s.Seats = []string{}
	s.State = SelectionStateCommitted
}

// AbortSubmit returns to the picked state after a transient failure, keeping
// the selection intact for a safe retry of the same request.
func (s *Selection) AbortSubmit() {
	if s.State == SelectionStateSubmitting {
		s.State = SelectionStateShow
	}
}

// RejectSubmit records a commit-time conflict: the conflicting seats are
// removed from the selection and folded into the known occupied set, leaving
// the remaining picks intact for a retry.
func (s *Selection) RejectSubmit(conflicts []string) {
	s.Seats = DifferenceSeats(s.Seats, conflicts)
	s.Occupied = UnionSeats(s.Occupied, conflicts)
	s.State = SelectionStateRejected
}
