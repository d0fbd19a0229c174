package manager

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"cinema_ticket/constants"
	"cinema_ticket/model"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	SeatRows    = 10
	SeatsPerRow = 20
)

var (
	ErrMovieNotFound    = errors.New("movie not found")
	ErrSeatNotAvailable = errors.New("seat not available")
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrRefundUsedTicket = errors.New("cannot refund used ticket")
)

// CinemaManager owns the catalog, the seat inventory, the active tickets and
// the running revenue. mu guards all four; a sale or refund updates seats,
// tickets and revenue together.
//
// Tickets and movies handed out by the manager are shared pointers. Callers
// that run concurrently must go through UseTicket and ReviewMovie instead of
// mutating them directly.
type CinemaManager struct {
	mu             sync.Mutex
	movies         []*model.Movie
	tickets        []*model.Ticket
	availableSeats []string
	totalRevenue   decimal.Decimal
	log            *zap.Logger
}

func NewCinemaManager(log *zap.Logger) *CinemaManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &CinemaManager{
		movies:         []*model.Movie{},
		tickets:        []*model.Ticket{},
		availableSeats: SeatGrid(SeatRows, SeatsPerRow),
		totalRevenue:   decimal.Zero,
		log:            log,
	}
}

// SeatGrid lists seat identifiers row-major: "1-1".."1-n", "2-1", ...
func SeatGrid(rows, seatsPerRow int) []string {
	seats := make([]string, 0, rows*seatsPerRow)
	for row := 1; row <= rows; row++ {
		for seat := 1; seat <= seatsPerRow; seat++ {
			seats = append(seats, SeatID(row, seat))
		}
	}
	return seats
}

func SeatID(row, seat int) string {
	return strconv.Itoa(row) + "-" + strconv.Itoa(seat)
}

// AddMovie does not check for duplicate titles; lookups return the first match.
func (m *CinemaManager) AddMovie(title string, duration int, genre string, price decimal.Decimal) *model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addMovie(title, duration, genre, price)
}

// AddMovieSnapshot adds like AddMovie and copies the new movie before the lock is released.
func (m *CinemaManager) AddMovieSnapshot(title string, duration int, genre string, price decimal.Decimal) model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	return copyMovie(m.addMovie(title, duration, genre, price))
}

func (m *CinemaManager) addMovie(title string, duration int, genre string, price decimal.Decimal) *model.Movie {
	movie := model.NewMovie(title, duration, genre, price)
	movie.Slug = m.uniqueSlug(movie.Slug)
	m.movies = append(m.movies, movie)

	m.log.Debug("movie added", zap.String("title", title), zap.String("slug", movie.Slug), zap.String("price", price.StringFixed(2)))
	return movie
}

func (m *CinemaManager) FindMovie(title string) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findMovie(title)
}

func (m *CinemaManager) findMovie(title string) (*model.Movie, error) {
	for _, movie := range m.movies {
		if movie.Title == title {
			return movie, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrMovieNotFound, title)
}

func (m *CinemaManager) SellTicket(movieTitle, seatNumber, showtime, customerName string) (*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sellTicket(movieTitle, seatNumber, showtime, customerName)
}

// SellTicketSnapshot sells like SellTicket and renders the ticket under the same lock.
// A render error leaves the sale in place.
func (m *CinemaManager) SellTicketSnapshot(movieTitle, seatNumber, showtime, customerName string) (model.TicketResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ticket, err := m.sellTicket(movieTitle, seatNumber, showtime, customerName)
	if err != nil {
		return model.TicketResponse{}, err
	}
	return ticket.Response()
}

func (m *CinemaManager) sellTicket(movieTitle, seatNumber, showtime, customerName string) (*model.Ticket, error) {
	movie, err := m.findMovie(movieTitle)
	if err != nil {
		m.log.Warn(constants.MOVIE_NOT_FOUND, zap.String("title", movieTitle))
		return nil, err
	}

	seatIndex := slices.Index(m.availableSeats, seatNumber)
	if seatIndex < 0 {
		m.log.Warn(constants.SEAT_NOT_AVAILABLE, zap.String("seat", seatNumber))
		return nil, fmt.Errorf("%w: %q", ErrSeatNotAvailable, seatNumber)
	}

	ticket := model.NewTicket(movie, seatNumber, showtime)
	ticket.Purchase(customerName)

	m.availableSeats = append(m.availableSeats[:seatIndex], m.availableSeats[seatIndex+1:]...)
	m.tickets = append(m.tickets, ticket)
	m.totalRevenue = m.totalRevenue.Add(movie.Price)

	m.log.Info("ticket sold",
		zap.String("ticketId", ticket.TicketID),
		zap.String("title", movie.Title),
		zap.String("seat", seatNumber),
		zap.String("customer", customerName),
	)
	return ticket, nil
}

func (m *CinemaManager) GetTicketByID(ticketID string) (*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ticket, err := m.findTicket(ticketID)
	return ticket, err
}

func (m *CinemaManager) findTicket(ticketID string) (int, *model.Ticket, error) {
	for i, ticket := range m.tickets {
		if ticket.TicketID == ticketID {
			return i, ticket, nil
		}
	}
	return -1, nil, fmt.Errorf("%w: %q", ErrTicketNotFound, ticketID)
}

// UseTicket marks an active ticket as used.
func (m *CinemaManager) UseTicket(ticketID string) (*model.Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ticket, err := m.findTicket(ticketID)
	if err != nil {
		m.log.Warn(constants.TICKET_NOT_FOUND, zap.String("ticketId", ticketID))
		return nil, err
	}
	if err := ticket.UseTicket(); err != nil {
		m.log.Warn(constants.TICKET_ALREADY_USED, zap.String("ticketId", ticketID))
		return ticket, err
	}

	m.log.Info(constants.TICKET_USED_SUCCESS, zap.String("ticketId", ticketID))
	return ticket, nil
}

// RefundTicket returns the seat to the end of the inventory and leaves the
// detached ticket's own fields untouched.
func (m *CinemaManager) RefundTicket(ticketID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	index, ticket, err := m.findTicket(ticketID)
	if err != nil {
		m.log.Warn(constants.TICKET_NOT_FOUND, zap.String("ticketId", ticketID))
		return err
	}
	if ticket.IsUsed {
		m.log.Warn(constants.CANNOT_REFUND_USED, zap.String("ticketId", ticketID))
		return fmt.Errorf("%w: %q", ErrRefundUsedTicket, ticketID)
	}

	m.availableSeats = append(m.availableSeats, ticket.SeatNumber)
	m.totalRevenue = m.totalRevenue.Sub(ticket.Movie.Price)
	m.tickets = append(m.tickets[:index], m.tickets[index+1:]...)

	m.log.Info(constants.TICKET_REFUND_SUCCESS, zap.String("ticketId", ticketID))
	return nil
}

func (m *CinemaManager) ReviewMovie(title, text string, rating float64) (*model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, err := m.findMovie(title)
	if err != nil {
		m.log.Warn(constants.MOVIE_NOT_FOUND, zap.String("title", title))
		return nil, err
	}
	movie.AddReview(text, rating)
	return movie, nil
}

func (m *CinemaManager) GetMovieList() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.movies) == 0 {
		return "No movies available."
	}

	var b strings.Builder
	b.WriteString("Available Movies:\n")
	for _, movie := range m.movies {
		b.WriteString("- " + movie.GetInfo() + "\n")
	}
	return b.String()
}

// GetAvailableSeats returns a snapshot in insertion/removal order, not sorted.
func (m *CinemaManager) GetAvailableSeats() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.availableSeats...)
}

func (m *CinemaManager) Movies() []*model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Movie(nil), m.movies...)
}

func (m *CinemaManager) Tickets() []*model.Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Ticket(nil), m.tickets...)
}

// MovieSnapshot copies the first movie with the given title, reviews included.
func (m *CinemaManager) MovieSnapshot(title string) (model.Movie, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	movie, err := m.findMovie(title)
	if err != nil {
		return model.Movie{}, err
	}
	return copyMovie(movie), nil
}

func (m *CinemaManager) MovieSnapshots() []model.Movie {
	m.mu.Lock()
	defer m.mu.Unlock()

	movies := make([]model.Movie, 0, len(m.movies))
	for _, movie := range m.movies {
		movies = append(movies, copyMovie(movie))
	}
	return movies
}

func (m *CinemaManager) TicketSnapshot(ticketID string) (model.TicketResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ticket, err := m.findTicket(ticketID)
	if err != nil {
		return model.TicketResponse{}, err
	}
	return ticket.Response()
}

func (m *CinemaManager) TotalRevenue() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalRevenue
}

// RevenueReport groups active tickets by movie title, so two catalog entries
// sharing a title are counted together.
func (m *CinemaManager) RevenueReport() model.RevenueReport {
	m.mu.Lock()
	defer m.mu.Unlock()

	report := model.RevenueReport{
		TotalRevenue:   m.totalRevenue,
		TotalTickets:   len(m.tickets),
		TicketsByMovie: []model.MovieTicketCount{},
	}
	positions := make(map[string]int)
	for _, ticket := range m.tickets {
		title := ticket.Movie.Title
		if i, ok := positions[title]; ok {
			report.TicketsByMovie[i].Tickets++
			continue
		}
		positions[title] = len(report.TicketsByMovie)
		report.TicketsByMovie = append(report.TicketsByMovie, model.MovieTicketCount{Title: title, Tickets: 1})
	}
	return report
}

func (m *CinemaManager) GetRevenueReport() string {
	return m.RevenueReport().String()
}

// uniqueSlug thêm hậu tố -1, -2... khi slug đã có trong catalog
func (m *CinemaManager) uniqueSlug(base string) string {
	result := base
	for i := 1; m.hasSlug(result); i++ {
		result = fmt.Sprintf("%s-%d", base, i)
	}
	return result
}

func (m *CinemaManager) hasSlug(slug string) bool {
	for _, movie := range m.movies {
		if movie.Slug == slug {
			return true
		}
	}
	return false
}

func copyMovie(movie *model.Movie) model.Movie {
	c := *movie
	c.Reviews = slices.Clone(movie.Reviews)
	return c
}

