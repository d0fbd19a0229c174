package database

import (
	"testing"

	"cinema_ticket/manager"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedMovies(t *testing.T) {
	cinema := manager.NewCinemaManager(nil)
	SeedMovies(cinema)

	movies := cinema.MovieSnapshots()
	require.Len(t, movies, 4)

	var expensive []string
	for _, m := range movies {
		if m.IsExpensive() {
			expensive = append(expensive, m.Title)
		}
	}
	assert.Equal(t, []string{"The Avengers", "Inception"}, expensive)
	assert.Equal(t, "Movie: Titanic, Duration: 195 minutes, Genre: Romance, Price: $10.00", movies[3].GetInfo())
}
