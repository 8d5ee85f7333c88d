package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is an atomic claim on a non-empty seat list for one show. The
// booking row and the presence of its seats in the show's occupied set are a
// single fact: both are written in one transaction, and cancellation removes
// both or neither.
type Booking struct {
	ID          uuid.UUID
	User        string
	ShowID      uuid.UUID
	BookedSeats []string
	Amount      decimal.Decimal
	IsPaid      bool
	CreatedAt   time.Time
}

// BookingSummary joins the show and movie display fields a booking list needs.
type BookingSummary struct {
	Booking
	ShowStartTime  time.Time
	ShowPrice      decimal.Decimal
	MovieTitle     string
	MoviePosterUrl string
}

type BookingRepository interface {
	// Create commits the booking and the show's occupied-seat union as one
	// atomic unit. It returns a *SeatConflictError when any requested seat is
	// already occupied, ErrRecordNotFound when the show does not exist, and
	// ErrTransientStorage (wrapped) when the commit could not be attempted.
	Create(ctx context.Context, booking *Booking) error

	// Cancel deletes the booking and removes exactly its seats from the
	// show's occupied set, atomically. A second cancel of the same id returns
	// ErrRecordNotFound.
	Cancel(ctx context.Context, id uuid.UUID) error

	GetAllByUser(ctx context.Context, user string) ([]BookingSummary, error)
	GetById(ctx context.Context, id uuid.UUID) (*Booking, error)
}
