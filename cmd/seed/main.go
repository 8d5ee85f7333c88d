// Command seed loads a fixture catalog of movies and generates shows for the
// next few days. It truncates the existing catalog first, so running it twice
// leaves no duplicates.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type seedMovie struct {
	id          string
	title       string
	description string
	posterUrl   string
	releaseDate time.Time
	genres      []string
}

var movies = []seedMovie{
	{
		id:          "tt15398776",
		title:       "Oppenheimer",
		description: "The story of J. Robert Oppenheimer and the creation of the atomic bomb.",
		posterUrl:   "/posters/oppenheimer.jpg",
		releaseDate: time.Date(2023, 7, 21, 0, 0, 0, 0, time.UTC),
		genres:      []string{"Biography", "Drama", "History"},
	},
	{
		id:          "tt6718170",
		title:       "The Super Mario Bros. Movie",
		description: "A plumber named Mario travels through an underground labyrinth with his brother Luigi.",
		posterUrl:   "/posters/mario.jpg",
		releaseDate: time.Date(2023, 4, 5, 0, 0, 0, 0, time.UTC),
		genres:      []string{"Animation", "Adventure", "Comedy"},
	},
	{
		id:          "tt9362722",
		title:       "Spider-Man: Across the Spider-Verse",
		description: "Miles Morales catapults across the multiverse.",
		posterUrl:   "/posters/spiderverse.jpg",
		releaseDate: time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC),
		genres:      []string{"Animation", "Action", "Adventure"},
	},
	{
		id:          "tt1517268",
		title:       "Barbie",
		description: "Barbie suffers a crisis that leads her to question her world and her existence.",
		posterUrl:   "/posters/barbie.jpg",
		releaseDate: time.Date(2023, 7, 21, 0, 0, 0, 0, time.UTC),
		genres:      []string{"Adventure", "Comedy", "Fantasy"},
	},
}

var showHours = []int{13, 17, 21}

func main() {
	var (
		dsn  = flag.String("db-dsn", "", "PostgreSQL DSN")
		days = flag.Int("days", 5, "number of days of shows to generate")
	)

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *dsn == "" {
		logger.Error("db-dsn flag is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := pgxpool.New(ctx, *dsn)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	err = seed(ctx, db, *days)
	if err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("seeding complete", "movies", len(movies), "shows", len(movies)*len(showHours)**days)
}

func seed(ctx context.Context, db *pgxpool.Pool, days int) error {
	_, err := db.Exec(ctx, `TRUNCATE bookings, shows, movies`)
	if err != nil {
		return err
	}

	for _, movie := range movies {
		_, err := db.Exec(ctx, `
			INSERT INTO movies (id, title, description, poster_url, release_date, genres)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			movie.id,
			movie.title,
			movie.description,
			movie.posterUrl,
			movie.releaseDate,
			movie.genres,
		)
		if err != nil {
			return err
		}
	}

	price := decimal.NewFromInt(200)
	today := time.Now().Truncate(24 * time.Hour)

	for _, movie := range movies {
		for day := 0; day < days; day++ {
			for _, hour := range showHours {
				startTime := today.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)

				_, err := db.Exec(ctx, `
					INSERT INTO shows (id, movie_id, start_time, price, occupied_seats)
					VALUES ($1, $2, $3, $4, '{}')`,
					uuid.New(),
					movie.id,
					startTime,
					price,
				)
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}
