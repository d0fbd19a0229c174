package handler

import (
	"cinema_ticket/model"
	"cinema_ticket/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetMovies(c *fiber.Ctx) error {
	if wantsText(c) {
		return utils.TextResponse(c, fiber.StatusOK, h.cinema.GetMovieList())
	}

	movies := h.cinema.MovieSnapshots()
	rows := make([]model.MovieResponse, 0, len(movies))
	for _, m := range movies {
		rows = append(rows, m.Response())
	}
	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       rows,
		TotalCount: int64(len(rows)),
	})
}

func (h *Handler) GetMovie(c *fiber.Ctx) error {
	movie, err := h.cinema.MovieSnapshot(pathParam(c, "title"))
	if err != nil {
		return cinemaErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"movie":   movie.Response(),
		"info":    movie.GetInfo(),
		"reviews": movie.Reviews,
	})
}

func (h *Handler) CreateMovie(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMovieInput)

	movie := h.cinema.AddMovieSnapshot(input.Title, input.Duration, input.Genre, input.Price)
	return utils.SuccessResponse(c, fiber.StatusCreated, movie.Response())
}

func (h *Handler) AddReview(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateReviewInput)
	title := pathParam(c, "title")

	if _, err := h.cinema.ReviewMovie(title, input.Text, input.Rating); err != nil {
		return cinemaErrorResponse(c, err)
	}
	movie, err := h.cinema.MovieSnapshot(title)
	if err != nil {
		return cinemaErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, movie.Response())
}
