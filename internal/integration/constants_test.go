package integration_test

import "github.com/google/uuid"

const fixtureMovieID = "oppenheimer"

var (
	fixtureShowID = uuid.MustParse("6f1d2a3b-4c5d-4e6f-8a9b-0c1d2e3f4a5b")
	unknownShowID = uuid.MustParse("00000000-0000-4000-8000-000000000000")
)
