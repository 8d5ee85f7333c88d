package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/watchchill/watchchill/internal/domain"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// Create runs the check-and-commit protocol as one transaction. The
// `FOR UPDATE` on the show row serializes concurrent creates for the same
// show: the loser of the race re-reads the winner's committed occupied set
// and aborts with a SeatConflictError, so two bookings can never overlap.
func (p *PostgresBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var occupied []string

		query := `
			SELECT occupied_seats
			FROM shows
			WHERE id = $1
			FOR UPDATE
		`

		err := tx.QueryRow(ctx, query, booking.ShowID).Scan(&occupied)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}
			return err
		}

		conflicts := domain.IntersectSeats(booking.BookedSeats, occupied)
		if len(conflicts) > 0 {
			return &domain.SeatConflictError{Seats: conflicts}
		}

		newOccupied := domain.UnionSeats(occupied, booking.BookedSeats)

		_, err = tx.Exec(ctx, `UPDATE shows SET occupied_seats = $1 WHERE id = $2`, newOccupied, booking.ShowID)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO bookings (id, user_email, show_id, booked_seats, amount, is_paid)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at
		`

		return tx.QueryRow(
			ctx,
			query,
			booking.ID,
			booking.User,
			booking.ShowID,
			booking.BookedSeats,
			booking.Amount,
			booking.IsPaid).Scan(&booking.CreatedAt)
	})

	return classifyError(err)
}

// Cancel frees the booking's seats and deletes the booking in one
// transaction. Seats are removed by identifier (set difference), never by
// position, and any seat the booking did not own is left untouched.
func (p *PostgresBookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		var (
			showID      uuid.UUID
			bookedSeats []string
		)

		query := `
			SELECT show_id, booked_seats
			FROM bookings
			WHERE id = $1
			FOR UPDATE
		`

		err := tx.QueryRow(ctx, query, id).Scan(&showID, &bookedSeats)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}
			return err
		}

		var occupied []string

		err = tx.QueryRow(ctx, `SELECT occupied_seats FROM shows WHERE id = $1 FOR UPDATE`, showID).Scan(&occupied)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}
			return err
		}

		remaining := domain.DifferenceSeats(occupied, bookedSeats)

		_, err = tx.Exec(ctx, `UPDATE shows SET occupied_seats = $1 WHERE id = $2`, remaining, showID)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)

		return err
	})

	return classifyError(err)
}

func (p *PostgresBookingRepository) GetAllByUser(ctx context.Context, user string) ([]domain.BookingSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `
		SELECT
			b.id,
			b.user_email,
			b.show_id,
			b.booked_seats,
			b.amount,
			b.is_paid,
			b.created_at,
			s.start_time,
			s.price,
			m.title,
			m.poster_url
		FROM bookings b
		JOIN shows s ON b.show_id = s.id
		JOIN movies m ON s.movie_id = m.id
		WHERE b.user_email = $1
		ORDER BY b.created_at DESC
	`

	rows, err := p.db.Query(ctx, query, user)
	if err != nil {
		return nil, classifyError(err)
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&booking.ID,
			&booking.User,
			&booking.ShowID,
			&booking.BookedSeats,
			&booking.Amount,
			&booking.IsPaid,
			&booking.CreatedAt,
			&booking.ShowStartTime,
			&booking.ShowPrice,
			&booking.MovieTitle,
			&booking.MoviePosterUrl,
		)
		if err != nil {
			return nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, classifyError(err)
	}

	return bookings, nil
}

func (p *PostgresBookingRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	query := `
		SELECT id, user_email, show_id, booked_seats, amount, is_paid, created_at
		FROM bookings
		WHERE id = $1
	`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.User,
		&booking.ShowID,
		&booking.BookedSeats,
		&booking.Amount,
		&booking.IsPaid,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, classifyError(err)
	}

	return &booking, nil
}
