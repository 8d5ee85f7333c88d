// Package api holds the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

// SeatConflictResponse is the 409 payload: the exact seats that were already
// occupied at commit time.
type SeatConflictResponse struct {
	Message       string    `json:"message"`
	ConflictSeats []string  `json:"conflictSeats"`
	RequestId     string    `json:"requestId,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Movie struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PosterUrl   string    `json:"posterUrl,omitempty"`
	ReleaseDate time.Time `json:"releaseDate"`
	Genres      []string  `json:"genres,omitempty"`
}

type MovieListResponse struct {
	Movies []Movie `json:"movies"`
}

type MovieResponse struct {
	Movie Movie `json:"movie"`
}

type ShowSummary struct {
	Id            string          `json:"id"`
	MovieId       string          `json:"movieId"`
	StartTime     time.Time       `json:"startTime"`
	Price         decimal.Decimal `json:"price"`
	OccupiedSeats []string        `json:"occupiedSeats"`
}

type ShowListResponse struct {
	Shows []ShowSummary `json:"shows"`
}

type OccupiedSeatsResponse struct {
	ShowId        string   `json:"showId"`
	OccupiedSeats []string `json:"occupiedSeats"`
}

type CreateBookingRequest struct {
	User        string          `json:"user" validate:"required"`
	ShowId      string          `json:"showId" validate:"required,uuid"`
	Amount      decimal.Decimal `json:"amount" validate:"-"`
	BookedSeats []string        `json:"bookedSeats" validate:"required,min=1,dive,seat"`
	IsPaid      bool            `json:"isPaid"`
}

type Booking struct {
	Id          string          `json:"id"`
	User        string          `json:"user"`
	ShowId      string          `json:"showId"`
	BookedSeats []string        `json:"bookedSeats"`
	Amount      decimal.Decimal `json:"amount"`
	IsPaid      bool            `json:"isPaid"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type BookingResponse struct {
	Booking Booking `json:"booking"`
}

type BookingSummary struct {
	Booking
	ShowStartTime  time.Time       `json:"showStartTime"`
	ShowPrice      decimal.Decimal `json:"showPrice"`
	MovieTitle     string          `json:"movieTitle"`
	MoviePosterUrl string          `json:"moviePosterUrl,omitempty"`
}

type BookingListResponse struct {
	Bookings []BookingSummary `json:"bookings"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PickSeatRequest struct {
	Seat string `json:"seat" validate:"required,seat"`
}

type SubmitSelectionRequest struct {
	User string `json:"user" validate:"required"`
}

type Selection struct {
	ShowId        string   `json:"showId"`
	Seats         []string `json:"seats"`
	OccupiedSeats []string `json:"occupiedSeats"`
	State         string   `json:"state"`
}

type SelectionResponse struct {
	Selection    Selection `json:"selection"`
	DroppedSeats []string  `json:"droppedSeats,omitempty"`
}
