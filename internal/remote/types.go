package remote

import "github.com/mauv0809/pitchside/internal/booking"

// GameSummary is the payload attached to a completed game.
type GameSummary struct {
	FinalScore  string              `json:"final_score"`
	MVPPlayerID string              `json:"mvp_player_id,omitempty"`
	Highlights  []booking.Highlight `json:"highlights,omitempty"`
}

// listReservationsResponse is the wire shape of the reservation listing.
type listReservationsResponse struct {
	Reservations []*booking.Reservation `json:"reservations"`
}

// errorResponse is the structured failure every endpoint returns on rejection.
type errorResponse struct {
	Message string `json:"message"`
}

// kickRequest names the player an admin is removing from a game.
type kickRequest struct {
	UserID string `json:"user_id"`
}

// suspendRequest bans a player for a number of days.
type suspendRequest struct {
	Reason string `json:"reason"`
	Days   int    `json:"days"`
}
