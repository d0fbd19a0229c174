package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type MovieTicketCount struct {
	Title   string `json:"title"`
	Tickets int    `json:"tickets"`
}

type RevenueReport struct {
	TotalRevenue   decimal.Decimal    `json:"totalRevenue"`
	TotalTickets   int                `json:"totalTickets"`
	TicketsByMovie []MovieTicketCount `json:"ticketsByMovie"` // grouped by title, first-seen order
}

func (r RevenueReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Revenue: $%s\n", r.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Total Tickets Sold: %d\n", r.TotalTickets)
	b.WriteString("Tickets by Movie:\n")
	for _, item := range r.TicketsByMovie {
		fmt.Fprintf(&b, "  %s: %d tickets\n", item.Title, item.Tickets)
	}
	return b.String()
}
