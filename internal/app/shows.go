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

// GetShows is the availability poll endpoint: clients re-fetch it on an
// interval to keep their seat maps fresh between reservation attempts.
func (app *Application) GetShows(w http.ResponseWriter, r *http.Request) {
	movieID := r.URL.Query().Get("movieId")

	shows, err := app.showRepo.GetAll(r.Context(), movieID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowListResponse{
		Shows: toApiShowSummaries(shows),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetOccupiedSeats answers "what seats are occupied right now for this show".
// The snapshot may go stale within the caller's poll interval; the booking
// path re-checks authoritatively at commit time.
func (app *Application) GetOccupiedSeats(w http.ResponseWriter, r *http.Request) {
	showID, err := showIDFromRequest(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

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
		return
	}

	resp := api.OccupiedSeatsResponse{
		ShowId:        showID.String(),
		OccupiedSeats: occupied,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func showIDFromRequest(r *http.Request) (uuid.UUID, error) {
	showID, err := uuid.Parse(chi.URLParam(r, "showId"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid show ID")
	}

	return showID, nil
}

func toApiShowSummaries(shows []domain.Show) []api.ShowSummary {
	summaries := make([]api.ShowSummary, len(shows))

	for i, show := range shows {
		summaries[i] = api.ShowSummary{
			Id:            show.ID.String(),
			MovieId:       show.MovieID,
			StartTime:     show.StartTime,
			Price:         show.Price,
			OccupiedSeats: show.OccupiedSeats,
		}
	}

	return summaries
}
