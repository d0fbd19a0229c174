package model

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

var expensiveThreshold = decimal.NewFromInt(10)

type Movie struct {
	Title    string          `json:"title"`
	Slug     string          `json:"slug"`
	Duration int             `json:"duration"` // minutes
	Genre    string          `json:"genre"`
	Price    decimal.Decimal `json:"price"`
	Rating   float64         `json:"rating"`
	Reviews  []string        `json:"reviews"`
}

type CreateMovieInput struct {
	Title    string          `json:"title" validate:"required"`
	Duration int             `json:"duration" validate:"required"`
	Genre    string          `json:"genre" validate:"required"`
	Price    decimal.Decimal `json:"price"`
}

type CreateReviewInput struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
}

type MovieResponse struct {
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Duration    int             `json:"duration"`
	Genre       string          `json:"genre"`
	Price       decimal.Decimal `json:"price"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"reviewCount"`
	IsExpensive bool            `json:"isExpensive"`
}

func NewMovie(title string, duration int, genre string, price decimal.Decimal) *Movie {
	return &Movie{
		Title:    title,
		Slug:     slug.Make(title),
		Duration: duration,
		Genre:    genre,
		Price:    price,
		Reviews:  []string{},
	}
}

// AddReview keeps the legacy rating: each review pulls the rating halfway
// toward the new value, it is not an average of all reviews.
func (m *Movie) AddReview(text string, rating float64) {
	m.Reviews = append(m.Reviews, text)
	m.Rating = (m.Rating + rating) / 2
}

func (m *Movie) GetInfo() string {
	return fmt.Sprintf("Movie: %s, Duration: %d minutes, Genre: %s, Price: $%s",
		m.Title, m.Duration, m.Genre, m.Price.StringFixed(2))
}

func (m *Movie) IsExpensive() bool {
	return m.Price.GreaterThan(expensiveThreshold)
}

func (m *Movie) Response() MovieResponse {
	return MovieResponse{
		Title:       m.Title,
		Slug:        m.Slug,
		Duration:    m.Duration,
		Genre:       m.Genre,
		Price:       m.Price,
		Rating:      m.Rating,
		ReviewCount: len(m.Reviews),
		IsExpensive: m.IsExpensive(),
	}
}
