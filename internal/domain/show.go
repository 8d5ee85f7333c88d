package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Show is one scheduled screening. OccupiedSeats is the authoritative set of
// unavailable seats for the show and is mutated only through the booking
// repository's transactional create and cancel paths.
type Show struct {
	ID            uuid.UUID
	MovieID       string
	StartTime     time.Time
	Price         decimal.Decimal
	OccupiedSeats []string
}

type ShowRepository interface {
	GetAll(ctx context.Context, movieID string) ([]Show, error)
	GetById(ctx context.Context, id uuid.UUID) (*Show, error)
	GetOccupiedSeats(ctx context.Context, id uuid.UUID) ([]string, error)
}
