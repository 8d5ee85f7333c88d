package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/watchchill/watchchill/internal/domain"
)

type PostgresShowRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowRepository(db *pgxpool.Pool) *PostgresShowRepository {
	return &PostgresShowRepository{
		db: db,
	}
}

func (p *PostgresShowRepository) GetAll(ctx context.Context, movieID string) ([]domain.Show, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `
		SELECT id, movie_id, start_time, price, occupied_seats
		FROM shows
		WHERE $1 = '' OR movie_id = $1
		ORDER BY start_time
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	shows := make([]domain.Show, 0)

	for rows.Next() {
		var show domain.Show

		err := rows.Scan(
			&show.ID,
			&show.MovieID,
			&show.StartTime,
			&show.Price,
			&show.OccupiedSeats,
		)
		if err != nil {
			return nil, err
		}

		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	return shows, nil
}

func (p *PostgresShowRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Show, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `
		SELECT id, movie_id, start_time, price, occupied_seats
		FROM shows
		WHERE id = $1
	`

	var show domain.Show

	err := p.db.QueryRow(ctx, query, id).Scan(
		&show.ID,
		&show.MovieID,
		&show.StartTime,
		&show.Price,
		&show.OccupiedSeats,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, classifyError(err)
	}

	return &show, nil
}

// GetOccupiedSeats is the availability read path. It is a plain snapshot
// read: staleness is bounded by the caller's poll interval and resolved
// authoritatively at commit time, not here.
func (p *PostgresShowRepository) GetOccupiedSeats(ctx context.Context, id uuid.UUID) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var occupied []string

	err := p.db.QueryRow(ctx, `SELECT occupied_seats FROM shows WHERE id = $1`, id).Scan(&occupied)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, classifyError(err)
	}

	return occupied, nil
}
