package database

import (
	"cinema_ticket/manager"

	"github.com/shopspring/decimal"
)

type seedMovie struct {
	Title    string
	Duration int
	Genre    string
	Price    string
}

var demoMovies = []seedMovie{
	{Title: "The Avengers", Duration: 143, Genre: "Action", Price: "12.50"},
	{Title: "Inception", Duration: 148, Genre: "Sci-Fi", Price: "11.00"},
	{Title: "The Lion King", Duration: 118, Genre: "Animation", Price: "9.50"},
	{Title: "Titanic", Duration: 195, Genre: "Romance", Price: "10.00"},
}

// SeedMovies thêm catalog mẫu vào manager
func SeedMovies(cinema *manager.CinemaManager) {
	for _, m := range demoMovies {
		cinema.AddMovie(m.Title, m.Duration, m.Genre, decimal.RequireFromString(m.Price))
	}
}
