package main

import (
	"fmt"
	"log"
	"strings"

	"cinema_ticket/database"
	"cinema_ticket/manager"
	"cinema_ticket/model"
)

type sale struct {
	title, seat, showtime, customer string
}

func main() {
	cinema := manager.NewCinemaManager(nil)
	database.SeedMovies(cinema)

	fmt.Println("=== Welcome to Cinema Ticket System ===")
	fmt.Println()
	fmt.Println(cinema.GetMovieList())

	fmt.Println("Selling tickets...")
	sales := []sale{
		{"The Avengers", "1-5", "2024-01-15 19:30", "John Doe"},
		{"Inception", "2-10", "2024-01-15 21:00", "Jane Smith"},
		{"The Lion King", "3-15", "2024-01-16 14:00", "Bob Johnson"},
		{"The Avengers", "1-6", "2024-01-15 19:30", "Alice Brown"},
	}
	tickets := make([]*model.Ticket, len(sales))
	for i, s := range sales {
		ticket, err := cinema.SellTicket(s.title, s.seat, s.showtime, s.customer)
		if err != nil {
			fmt.Printf("Sale %d failed: %v\n", i+1, err)
			continue
		}
		tickets[i] = ticket
		fmt.Printf("Ticket %d sold: %s\n", i+1, ticket.TicketID)
	}
	fmt.Println()

	for i, ticket := range tickets[:2] {
		if ticket == nil {
			continue
		}
		fmt.Printf("Ticket %d Information:\n", i+1)
		fmt.Println(ticket.GetTicketInfo())
	}

	first, third := tickets[0], tickets[2]
	if first != nil {
		fmt.Println("Using ticket...")
		useTicket(cinema, first.TicketID)

		fmt.Println("Trying to use the same ticket again...")
		useTicket(cinema, first.TicketID)

		fmt.Println("Trying to refund a used ticket...")
		refundTicket(cinema, first.TicketID)
	}
	if third != nil {
		fmt.Println("Refunding an unused ticket...")
		refundTicket(cinema, third.TicketID)
	}

	fmt.Println("=== Revenue Report ===")
	fmt.Println(cinema.GetRevenueReport())

	seats := cinema.GetAvailableSeats()
	fmt.Printf("First 10 available seats: [%s]\n\n", strings.Join(seats[:min(10, len(seats))], ", "))

	fmt.Println("=== Adding Movie Reviews ===")
	reviews := []struct {
		text   string
		rating float64
	}{
		{"Great movie!", 5},
		{"Amazing action scenes!", 4},
		{"Could be better", 3},
	}
	for _, r := range reviews {
		if _, err := cinema.ReviewMovie("The Avengers", r.text, r.rating); err != nil {
			log.Fatalf("review failed: %v", err)
		}
	}
	avengers, err := cinema.MovieSnapshot("The Avengers")
	if err != nil {
		log.Fatalf("find movie failed: %v", err)
	}
	fmt.Printf("Avengers rating after reviews: %g\n", avengers.Rating)
	fmt.Printf("Number of reviews: %d\n\n", len(avengers.Reviews))

	fmt.Println("=== Movie Price Check ===")
	for _, movie := range cinema.MovieSnapshots() {
		status := "affordable"
		if movie.IsExpensive() {
			status = "expensive"
		}
		fmt.Printf("%s: $%s - %s\n", movie.Title, movie.Price.StringFixed(2), status)
	}
}

func useTicket(cinema *manager.CinemaManager, ticketID string) {
	if _, err := cinema.UseTicket(ticketID); err != nil {
		fmt.Printf("Could not use ticket %s: %v\n\n", ticketID, err)
		return
	}
	fmt.Printf("Ticket %s used successfully!\n\n", ticketID)
}

func refundTicket(cinema *manager.CinemaManager, ticketID string) {
	if err := cinema.RefundTicket(ticketID); err != nil {
		fmt.Printf("Could not refund ticket %s: %v\n\n", ticketID, err)
		return
	}
	fmt.Printf("Ticket %s refunded successfully!\n\n", ticketID)
}
