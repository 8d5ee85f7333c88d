package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/watchchill/watchchill/api"
	"github.com/watchchill/watchchill/internal/domain"
)

// CreateBooking is the reservation coordinator's HTTP surface. The identity
// in the request body is an opaque value already verified by an external
// collaborator; no credential checking happens here.
func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if !input.Amount.IsPositive() {
		app.badRequestResponse(w, r, fmt.Errorf("amount must be greater than zero"))
		return
	}

	// ShowId already passed the uuid validation rule.
	showID := uuid.MustParse(input.ShowId)

	booking := &domain.Booking{
		ID:          uuid.New(),
		User:        input.User,
		ShowID:      showID,
		BookedSeats: domain.NormalizeSeats(input.BookedSeats),
		Amount:      input.Amount,
		IsPaid:      input.IsPaid,
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		var conflictErr *domain.SeatConflictError

		switch {
		case errors.As(err, &conflictErr):
			logger.Warn("booking rejected due to seat conflict", "show_id", showID, "conflict_seats", conflictErr.Seats)
			app.seatConflictResponse(w, r, conflictErr.Seats)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrTransientStorage):
			app.serviceUnavailableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	logger.Info("booking created", "booking_id", booking.ID, "show_id", showID, "seats", booking.BookedSeats)

	resp := api.BookingResponse{
		Booking: toApiBooking(*booking),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookings lists a user's bookings, most recent first, with the show and
// movie display fields joined in.
func (app *Application) GetBookings(w http.ResponseWriter, r *http.Request) {
	user := r.URL.Query().Get("user")
	if user == "" {
		app.badRequestResponse(w, r, fmt.Errorf("user query parameter is required"))
		return
	}

	bookings, err := app.bookingRepo.GetAllByUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, domain.ErrTransientStorage) {
			app.serviceUnavailableResponse(w, r, err)
			return
		}
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.BookingListResponse{
		Bookings: toApiBookingSummaries(bookings),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteBooking cancels a booking and frees its seats. Cancelling an id that
// no longer exists is a 404, never a silent success, so callers can tell
// "already gone" from "cancelled now".
func (app *Application) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	bookingID, err := uuid.Parse(chi.URLParam(r, "bookingId"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid booking ID"))
		return
	}

	err = app.bookingRepo.Cancel(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrTransientStorage):
			app.serviceUnavailableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	logger.Info("booking cancelled", "booking_id", bookingID)

	resp := api.MessageResponse{
		Message: "Booking cancelled and seats freed",
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiBooking(booking domain.Booking) api.Booking {
	return api.Booking{
		Id:          booking.ID.String(),
		User:        booking.User,
		ShowId:      booking.ShowID.String(),
		BookedSeats: booking.BookedSeats,
		Amount:      booking.Amount,
		IsPaid:      booking.IsPaid,
		CreatedAt:   booking.CreatedAt,
	}
}

func toApiBookingSummaries(bookings []domain.BookingSummary) []api.BookingSummary {
	summaries := make([]api.BookingSummary, len(bookings))

	for i, booking := range bookings {
		summaries[i] = api.BookingSummary{
			Booking:        toApiBooking(booking.Booking),
			ShowStartTime:  booking.ShowStartTime,
			ShowPrice:      booking.ShowPrice,
			MovieTitle:     booking.MovieTitle,
			MoviePosterUrl: booking.MoviePosterUrl,
		}
	}

	return summaries
}
