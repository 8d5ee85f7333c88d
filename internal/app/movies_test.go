package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/watchchill/watchchill/api"
	"github.com/watchchill/watchchill/internal/domain"
	"github.com/watchchill/watchchill/internal/mocks"
)

type MoviesTestSuite struct {
	suite.Suite
	app       *Application
	movieRepo *mocks.MockMovieRepo
}

func (s *MoviesTestSuite) SetupTest() {
	s.movieRepo = new(mocks.MockMovieRepo)

	s.app = newTestApplication(func(a *Application) {
		a.movieRepo = s.movieRepo
	})
}

func TestMoviesSuite(t *testing.T) {
	suite.Run(t, new(MoviesTestSuite))
}

func (s *MoviesTestSuite) TestGetMovies() {
	s.Run("should fail with 500 on repository error", func() {
		s.SetupTest()
		s.movieRepo.On("GetAll", mock.Anything).
			Return(nil, fmt.Errorf("database error"))

		w, r := executeRequest(s.T(), http.MethodGet, "/movies", nil)
		s.app.Routes().ServeHTTP(w, r)

		checkErrorResponse(s.T(), w, http.StatusInternalServerError, ErrInternalServer)
	})

	s.Run("should return the catalog", func() {
		s.SetupTest()
		s.movieRepo.On("GetAll", mock.Anything).
			Return([]domain.Movie{
				{
					ID:          "oppenheimer",
					Title:       "Oppenheimer",
					ReleaseDate: time.Date(2023, 7, 21, 0, 0, 0, 0, time.UTC),
					Genres:      []string{"Drama", "History"},
				},
			}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/movies", nil)
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.MovieListResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Require().Len(resp.Movies, 1)
		s.Equal("Oppenheimer", resp.Movies[0].Title)
	})
}

func (s *MoviesTestSuite) TestGetMovie() {
	s.Run("should fail when movie does not exist", func() {
		s.SetupTest()
		s.movieRepo.On("GetById", mock.Anything, "missing").
			Return(nil, domain.ErrRecordNotFound)

		w, r := executeRequest(s.T(), http.MethodGet, "/movies/missing", nil)
		s.app.Routes().ServeHTTP(w, r)

		checkErrorResponse(s.T(), w, http.StatusNotFound, "The requested resource not found")
	})

	s.Run("should return the movie", func() {
		s.SetupTest()
		s.movieRepo.On("GetById", mock.Anything, "oppenheimer").
			Return(&domain.Movie{ID: "oppenheimer", Title: "Oppenheimer"}, nil)

		w, r := executeRequest(s.T(), http.MethodGet, "/movies/oppenheimer", nil)
		s.app.Routes().ServeHTTP(w, r)

		s.Equal(http.StatusOK, w.Code)

		var resp api.MovieResponse
		s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))
		s.Equal("oppenheimer", resp.Movie.Id)
	})
}
