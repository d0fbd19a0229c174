package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMovie() *Movie {
	return NewMovie("Test Movie", 120, "Action", decimal.NewFromFloat(15.0))
}

func TestNewMovie(t *testing.T) {
	m := newTestMovie()

	assert.Equal(t, "Test Movie", m.Title)
	assert.Equal(t, "test-movie", m.Slug)
	assert.Equal(t, 120, m.Duration)
	assert.Equal(t, "Action", m.Genre)
	assert.True(t, m.Price.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, 0.0, m.Rating)
	assert.Empty(t, m.Reviews)
}

func TestMovie_AddReview(t *testing.T) {
	tests := []struct {
		name    string
		ratings []float64
		want    []float64
	}{
		{name: "single review", ratings: []float64{5}, want: []float64{2.5}},
		{name: "two reviews", ratings: []float64{4, 5}, want: []float64{2, 3.5}},
		{name: "three reviews", ratings: []float64{5, 4, 3}, want: []float64{2.5, 3.25, 3.125}},
		{name: "out of range rating is accepted", ratings: []float64{-10}, want: []float64{-5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMovie()
			for i, r := range tt.ratings {
				m.AddReview("review", r)
				assert.Equal(t, tt.want[i], m.Rating)
			}
			assert.Len(t, m.Reviews, len(tt.ratings))
		})
	}
}

func TestMovie_AddReviewKeepsText(t *testing.T) {
	m := newTestMovie()
	m.AddReview("Great movie!", 5)
	m.AddReview("", 1)

	require.Len(t, m.Reviews, 2)
	assert.Equal(t, "Great movie!", m.Reviews[0])
	assert.Equal(t, "", m.Reviews[1])
}

func TestMovie_IsExpensive(t *testing.T) {
	tests := []struct {
		price string
		want  bool
	}{
		{price: "25.00", want: true},
		{price: "10.01", want: true},
		{price: "10.00", want: false},
		{price: "5.00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			m := NewMovie("Movie", 90, "Drama", decimal.RequireFromString(tt.price))
			assert.Equal(t, tt.want, m.IsExpensive())
		})
	}
}

func TestMovie_GetInfo(t *testing.T) {
	m := newTestMovie()
	assert.Equal(t, "Movie: Test Movie, Duration: 120 minutes, Genre: Action, Price: $15.00", m.GetInfo())
}

func TestMovie_Response(t *testing.T) {
	m := NewMovie("The Avengers", 143, "Action", decimal.NewFromFloat(12.5))
	m.AddReview("Great movie!", 5)

	resp := m.Response()
	assert.Equal(t, "the-avengers", resp.Slug)
	assert.Equal(t, 1, resp.ReviewCount)
	assert.Equal(t, 2.5, resp.Rating)
	assert.True(t, resp.IsExpensive)
}
