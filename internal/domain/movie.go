package domain

import (
	"context"
	"time"
)

// Movie is read-only reference data owned by the catalog; this service only
// joins it into shows and bookings for display.
type Movie struct {
	ID          string
	Title       string
	Description string
	PosterUrl   string
	ReleaseDate time.Time
	Genres      []string
}

type MovieRepository interface {
	GetAll(ctx context.Context) ([]Movie, error)
	GetById(ctx context.Context, id string) (*Movie, error)
}
