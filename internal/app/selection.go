package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/watchchill/watchchill/api"
	"github.com/watchchill/watchchill/internal/domain"
)

// The seat-selection state machine lives in the caller's session. Selection
// is optimistic: seats are never locked server-wide at pick time, and the
// booking transaction remains the only place conflicts are enforced. Every
// selection request re-reads the show's occupied set, which doubles as the
// availability refresh and drops picks that have gone stale.
const sessionKeySelection = "selection"

func (app *Application) sessionGetSelection(r *http.Request) *domain.Selection {
	data := app.sessionManager.GetBytes(r.Context(), sessionKeySelection)
	if data == nil {
		return domain.NewSelection()
	}

	var selection domain.Selection

	err := json.Unmarshal(data, &selection)
	if err != nil {
		return domain.NewSelection()
	}

	return &selection
}

func (app *Application) sessionPutSelection(r *http.Request, selection *domain.Selection) error {
	data, err := json.Marshal(selection)
	if err != nil {
		return err
	}

	app.sessionManager.Put(r.Context(), sessionKeySelection, data)

	return nil
}

// GetSelection returns the session's selection for a show, refreshed against
// the current occupied set. Requesting it for a different show than the one
// previously selected resets the picked seats.
func (app *Application) GetSelection(w http.ResponseWriter, r *http.Request) {
	showID, err := showIDFromRequest(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	occupied, ok := app.fetchOccupiedSeats(w, r, showID)
	if !ok {
		return
	}

	selection := app.sessionGetSelection(r)
	dropped := selection.SelectShow(showID, occupied)

	err = app.sessionPutSelection(r, selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeSelectionResponse(w, r, selection, dropped, http.StatusOK)
}

func (app *Application) PickSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showID, err := showIDFromRequest(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.PickSeatRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	occupied, ok := app.fetchOccupiedSeats(w, r, showID)
	if !ok {
		return
	}

	selection := app.sessionGetSelection(r)
	dropped := selection.SelectShow(showID, occupied)

	err = selection.Pick(input.Seat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatOccupied):
			logger.Warn("pick rejected: seat already occupied", "show_id", showID, "seat", input.Seat)
			app.seatConflictResponse(w, r, []string{input.Seat})
		case errors.Is(err, domain.ErrSelectionFull):
			app.badRequestResponse(w, r, domain.ErrSelectionFull)
		default:
			app.badRequestResponse(w, r, err)
		}
		return
	}

	err = app.sessionPutSelection(r, selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeSelectionResponse(w, r, selection, dropped, http.StatusOK)
}

func (app *Application) UnpickSeat(w http.ResponseWriter, r *http.Request) {
	showID, err := showIDFromRequest(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	seat := chi.URLParam(r, "seat")

	selection := app.sessionGetSelection(r)
	if selection.State == domain.SelectionStateNoShow || selection.ShowID != showID {
		app.notFoundResponse(w, r)
		return
	}

	err = selection.Unpick(seat)
	if err != nil {
		if errors.Is(err, domain.ErrSeatNotPicked) {
			app.notFoundResponse(w, r)
			return
		}
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.sessionPutSelection(r, selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeSelectionResponse(w, r, selection, nil, http.StatusOK)
}

// SubmitSelection turns the session's picks into a booking. Conflicts found
// at commit time remove only the conflicting seats from the selection; the
// rest stay picked for a retry against the refreshed seat map.
func (app *Application) SubmitSelection(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	showID, err := showIDFromRequest(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.SubmitSelectionRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	selection := app.sessionGetSelection(r)
	if selection.State == domain.SelectionStateNoShow || selection.ShowID != showID {
		app.notFoundResponse(w, r)
		return
	}

	show, err := app.showRepo.GetById(r.Context(), showID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	// Same optimistic re-check the original client performed before checkout:
	// picks that went stale since the last poll are dropped up front.
	dropped := selection.Refresh(show.OccupiedSeats)

	seats, err := selection.BeginSubmit()
	if err != nil {
		if errors.Is(err, domain.ErrEmptySelection) && len(dropped) > 0 {
			selection.RejectSubmit(dropped)
			app.sessionPutSelection(r, selection)
			app.seatConflictResponse(w, r, dropped)
			return
		}
		app.badRequestResponse(w, r, err)
		return
	}

	booking := &domain.Booking{
		ID:          uuid.New(),
		User:        input.User,
		ShowID:      showID,
		BookedSeats: seats,
		Amount:      domain.TotalAmount(seats, show.Price),
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		var conflictErr *domain.SeatConflictError

		switch {
		case errors.As(err, &conflictErr):
			logger.Warn("submit rejected due to seat conflict", "show_id", showID, "conflict_seats", conflictErr.Seats)
			selection.RejectSubmit(conflictErr.Seats)
			app.sessionPutSelection(r, selection)
			app.seatConflictResponse(w, r, conflictErr.Seats)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrTransientStorage):
			selection.AbortSubmit()
			app.sessionPutSelection(r, selection)
			app.serviceUnavailableResponse(w, r, err)
		default:
			selection.AbortSubmit()
			app.sessionPutSelection(r, selection)
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	selection.CompleteSubmit()

	err = app.sessionPutSelection(r, selection)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("selection committed", "booking_id", booking.ID, "show_id", showID, "seats", seats)

	resp := api.BookingResponse{
		Booking: toApiBooking(*booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// fetchOccupiedSeats loads the current occupied set, writing the error
// response itself when the show is missing or storage is unavailable.
func (app *Application) fetchOccupiedSeats(w http.ResponseWriter, r *http.Request, showID uuid.UUID) ([]string, bool) {
	occupied, err := app.showRepo.GetOccupiedSeats(r.Context(), showID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrTransientStorage):
			app.serviceUnavailableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return nil, false
	}

	return occupied, true
}

func (app *Application) writeSelectionResponse(
	w http.ResponseWriter,
	r *http.Request,
	selection *domain.Selection,
	dropped []string,
	status int) {

	resp := api.SelectionResponse{
		Selection: api.Selection{
			ShowId:        selection.ShowID.String(),
			Seats:         selection.Seats,
			OccupiedSeats: selection.Occupied,
			State:         string(selection.State),
		},
		DroppedSeats: dropped,
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
