package model

import (
	"regexp"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketIDPattern = regexp.MustCompile(`^[A-Za-z0-9]{10}$`)

func newTestTicket() (*Movie, *Ticket) {
	m := NewMovie("Test Movie", 120, "Action", decimal.NewFromFloat(15.0))
	return m, NewTicket(m, "A1", "2025-09-09 20:00")
}

func TestNewTicket(t *testing.T) {
	m, ticket := newTestTicket()

	assert.Same(t, m, ticket.Movie)
	assert.Equal(t, "A1", ticket.SeatNumber)
	assert.Equal(t, "2025-09-09 20:00", ticket.Showtime)
	assert.Empty(t, ticket.TicketID)
	assert.Nil(t, ticket.PurchaseDate)
	assert.Empty(t, ticket.CustomerName)
	assert.False(t, ticket.IsUsed)
	assert.False(t, ticket.IsPurchased())
}

func TestTicket_Purchase(t *testing.T) {
	_, ticket := newTestTicket()
	ticket.Purchase("John Doe")

	assert.Equal(t, "John Doe", ticket.CustomerName)
	require.NotNil(t, ticket.PurchaseDate)
	assert.Regexp(t, ticketIDPattern, ticket.TicketID)
	assert.True(t, ticket.IsPurchased())
}

func TestTicket_PurchaseIssuesNewID(t *testing.T) {
	m, _ := newTestTicket()
	ticket1 := NewTicket(m, "A1", "2025-09-09 20:00")
	ticket2 := NewTicket(m, "A2", "2025-09-09 20:00")
	ticket1.Purchase("John Doe")
	ticket2.Purchase("Jane Doe")

	assert.NotEqual(t, ticket1.TicketID, ticket2.TicketID)
	assert.Len(t, ticket1.TicketID, TicketIDLength)
}

func TestGenerateTicketID_Alphabet(t *testing.T) {
	seen := make(map[byte]bool)
	for i := 0; i < 500; i++ {
		id := generateTicketID()
		require.Regexp(t, ticketIDPattern, id)
		for j := 0; j < len(id); j++ {
			seen[id[j]] = true
		}
	}
	// 5000 draws over 62 symbols: every class shows up
	var lower, upper, digit bool
	for c := range seen {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		}
	}
	assert.True(t, lower && upper && digit)
}

func TestTicket_UseTicket(t *testing.T) {
	_, ticket := newTestTicket()
	ticket.Purchase("John Doe")

	require.NoError(t, ticket.UseTicket())
	assert.True(t, ticket.IsUsed)

	err := ticket.UseTicket()
	assert.ErrorIs(t, err, ErrTicketAlreadyUsed)
	assert.True(t, ticket.IsUsed)
}

func TestTicket_UseUnpurchasedTicket(t *testing.T) {
	_, ticket := newTestTicket()

	require.NoError(t, ticket.UseTicket())
	assert.True(t, ticket.IsUsed)
	assert.Empty(t, ticket.TicketID)
	assert.Empty(t, ticket.CustomerName)
}

func TestTicket_GetTicketInfo(t *testing.T) {
	_, ticket := newTestTicket()
	ticket.Purchase("John Doe")

	info := ticket.GetTicketInfo()
	lines := strings.Split(strings.TrimSuffix(info, "\n"), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Ticket ID: "+ticket.TicketID, lines[0])
	assert.Equal(t, "Movie: Test Movie", lines[1])
	assert.Equal(t, "Seat: A1", lines[2])
	assert.Equal(t, "Showtime: 2025-09-09 20:00", lines[3])
	assert.Equal(t, "Customer: John Doe", lines[4])
	assert.Equal(t, "Price: $15.00", lines[5])
	assert.Equal(t, "Status: Valid", lines[6])

	require.NoError(t, ticket.UseTicket())
	assert.Contains(t, ticket.GetTicketInfo(), "Status: Used\n")
}

func TestTicket_Response(t *testing.T) {
	_, ticket := newTestTicket()
	ticket.Purchase("John Doe")

	resp, err := ticket.Response()
	require.NoError(t, err)
	assert.Equal(t, ticket.TicketID, resp.TicketID)
	assert.Equal(t, "Test Movie", resp.MovieTitle)
	assert.Equal(t, "A1", resp.SeatNumber)
	assert.Equal(t, "John Doe", resp.CustomerName)
	assert.Equal(t, ticket.PurchaseDate, resp.PurchaseDate)
	assert.True(t, resp.Price.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, TicketValid, resp.Status)
}

func TestTicket_ResponseWithoutMovie(t *testing.T) {
	ticket := NewTicket(nil, "A1", "2024-01-15 19:30")

	resp, err := ticket.Response()
	require.NoError(t, err)
	assert.Empty(t, resp.MovieTitle)
	assert.True(t, resp.Price.IsZero())
	assert.Equal(t, "A1", resp.SeatNumber)
	assert.Equal(t, TicketValid, resp.Status)
}
