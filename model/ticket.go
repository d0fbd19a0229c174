package model

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketValid TicketStatus = "Valid"
	TicketUsed  TicketStatus = "Used"
)

const (
	TicketIDLength   = 10
	ticketIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var ErrTicketAlreadyUsed = errors.New("ticket already used")

type Ticket struct {
	Movie        *Movie     `json:"-"`
	SeatNumber   string     `json:"seatNumber"`
	Showtime     string     `json:"showtime"`
	TicketID     string     `json:"ticketId"`
	PurchaseDate *time.Time `json:"purchaseDate"`
	CustomerName string     `json:"customerName"`
	IsUsed       bool       `json:"isUsed"`
}

type SellTicketInput struct {
	MovieTitle   string `json:"movieTitle" validate:"required"`
	SeatNumber   string `json:"seatNumber" validate:"required"`
	Showtime     string `json:"showtime" validate:"required"`
	CustomerName string `json:"customerName" validate:"required"`
	Email        string `json:"email" validate:"omitempty,email"`
}

type TicketResponse struct {
	TicketID     string          `json:"ticketId"`
	MovieTitle   string          `json:"movieTitle"`
	SeatNumber   string          `json:"seatNumber"`
	Showtime     string          `json:"showtime"`
	CustomerName string          `json:"customerName"`
	PurchaseDate *time.Time      `json:"purchaseDate"`
	Price        decimal.Decimal `json:"price"`
	IsUsed       bool            `json:"isUsed"`
	Status       TicketStatus    `json:"status"`
}

// NewTicket tạo vé chưa thanh toán: chưa có mã vé, ngày mua, tên khách
func NewTicket(movie *Movie, seatNumber, showtime string) *Ticket {
	return &Ticket{
		Movie:      movie,
		SeatNumber: seatNumber,
		Showtime:   showtime,
	}
}

// Purchase always issues a fresh ID. IDs are random and not checked for
// uniqueness.
func (t *Ticket) Purchase(customerName string) {
	now := time.Now()
	t.CustomerName = customerName
	t.PurchaseDate = &now
	t.TicketID = generateTicketID()
}

func (t *Ticket) IsPurchased() bool {
	return t.TicketID != ""
}

// UseTicket does not require a prior purchase.
func (t *Ticket) UseTicket() error {
	if t.IsUsed {
		return ErrTicketAlreadyUsed
	}
	t.IsUsed = true
	return nil
}

func (t *Ticket) Status() TicketStatus {
	if t.IsUsed {
		return TicketUsed
	}
	return TicketValid
}

func (t *Ticket) GetTicketInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ticket ID: %s\n", t.TicketID)
	fmt.Fprintf(&b, "Movie: %s\n", t.Movie.Title)
	fmt.Fprintf(&b, "Seat: %s\n", t.SeatNumber)
	fmt.Fprintf(&b, "Showtime: %s\n", t.Showtime)
	fmt.Fprintf(&b, "Customer: %s\n", t.CustomerName)
	fmt.Fprintf(&b, "Price: $%s\n", t.Movie.Price.StringFixed(2))
	fmt.Fprintf(&b, "Status: %s\n", t.Status())
	return b.String()
}

func (t *Ticket) Response() (TicketResponse, error) {
	var resp TicketResponse
	if err := copier.Copy(&resp, t); err != nil {
		return TicketResponse{}, fmt.Errorf("copy ticket %q: %w", t.TicketID, err)
	}
	if t.Movie != nil {
		resp.MovieTitle = t.Movie.Title
		resp.Price = t.Movie.Price
	}
	resp.Status = t.Status()
	return resp, nil
}

func generateTicketID() string {
	id := make([]byte, TicketIDLength)
	for i := range id {
		id[i] = ticketIDAlphabet[rand.IntN(len(ticketIDAlphabet))]
	}
	return string(id)
}
