package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(otelchi.Middleware("watchchill-api", otelchi.WithChiRoutes(r)))
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieId}", app.GetMovie)

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", app.GetShows)

		r.Route("/{showId}", func(r chi.Router) {
			r.Get("/seats", app.GetOccupiedSeats)

			r.Route("/selection", func(r chi.Router) {
				r.Get("/", app.GetSelection)
				r.Post("/seats", app.PickSeat)
				r.Delete("/seats/{seat}", app.UnpickSeat)
				r.Post("/submit", app.SubmitSelection)
			})
		})
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", app.CreateBooking)
		r.Get("/", app.GetBookings)
		r.Delete("/{bookingId}", app.DeleteBooking)
	})

	return r
}
