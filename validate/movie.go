package validate

import (
	"cinema_ticket/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMovie() fiber.Handler {
	return bodyInput[model.CreateMovieInput]()
}

func CreateReview() fiber.Handler {
	return bodyInput[model.CreateReviewInput]()
}
