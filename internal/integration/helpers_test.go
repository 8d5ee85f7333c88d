package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing; booking ids are
	// generated server-side
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "createdAt" || k == "id"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

// resetState empties all tables between scenarios so each starts from its own
// fixtures.
func resetState(t testing.TB, app *TestApp) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(), "TRUNCATE bookings, shows, movies CASCADE")
	require.NoError(t, err)
}

func seedMovie(t testing.TB, app *TestApp, id, title string) {
	t.Helper()

	_, err := app.DB.Exec(context.Background(), `
		INSERT INTO movies (id, title, release_date)
		VALUES ($1, $2, '2023-07-21')
		ON CONFLICT (id) DO NOTHING`,
		id, title)
	require.NoError(t, err)
}

func seedShow(t testing.TB, app *TestApp, showID uuid.UUID, movieID string, occupied []string) {
	t.Helper()

	seedMovie(t, app, movieID, "Oppenheimer")

	_, err := app.DB.Exec(context.Background(), `
		INSERT INTO shows (id, movie_id, start_time, price, occupied_seats)
		VALUES ($1, $2, now() + interval '2 days', 200, $3)`,
		showID, movieID, occupied)
	require.NoError(t, err)
}

func occupiedSeatsOf(t testing.TB, app *TestApp, showID uuid.UUID) []string {
	t.Helper()

	var occupied []string
	err := app.DB.QueryRow(context.Background(),
		"SELECT occupied_seats FROM shows WHERE id = $1", showID).Scan(&occupied)
	require.NoError(t, err)

	return occupied
}

func bookingCountOf(t testing.TB, app *TestApp, showID uuid.UUID) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE show_id = $1", showID).Scan(&count)
	require.NoError(t, err)

	return count
}
