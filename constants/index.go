package constants

const (
	ROLE_ADMIN = "ADMIN"
)

const (
	MOVIE_NOT_FOUND       = "Movie not found!"
	SEAT_NOT_AVAILABLE    = "Seat not available!"
	TICKET_NOT_FOUND      = "Ticket not found!"
	CANNOT_REFUND_USED    = "Cannot refund used ticket!"
	TICKET_ALREADY_USED   = "Ticket already used!"
	TICKET_USED_SUCCESS   = "Ticket used successfully!"
	TICKET_REFUND_SUCCESS = "Ticket refunded successfully!"

	ERROR_INPUT          = "Invalid input data"
	ERROR_INTERNAL_ERROR = "Internal server error"
	INVALID_CREDENTIALS  = "Invalid username or password"
	MISSING_TOKEN        = "Missing token"
	INVALID_TOKEN        = "Invalid token"
	NOT_ADMIN            = "Admin role required"
)

const (
	SEAT_CHANNEL = "cinema:seats"
)
