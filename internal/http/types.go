package http

import (
	"net/http"

	"github.com/mauv0809/pitchside/internal/config"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/orchestrator"
	"github.com/mauv0809/pitchside/internal/store"
)

// Server is the thin JSON shell over the orchestrator. It owns no business
// rules; it only derives the actor, decodes requests and classifies errors.
type Server struct {
	Store          store.ReservationStore
	Orchestrator   *orchestrator.Orchestrator
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

type joinRequest struct {
	ReservationID string `json:"reservation_id"`
}

type kickRequest struct {
	ReservationID string `json:"reservation_id"`
	UserID        string `json:"user_id"`
}

type suspendRequest struct {
	UserID string `json:"user_id"`
	Days   int    `json:"days"`
	Reason string `json:"reason"`
}

type summaryRequest struct {
	ReservationID string             `json:"reservation_id"`
	FinalScore    string             `json:"final_score"`
	MVPPlayerID   string             `json:"mvp_player_id,omitempty"`
	Highlights    []highlightRequest `json:"highlights,omitempty"`
}

type highlightRequest struct {
	Type        string `json:"type"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	Minute      int    `json:"minute"`
	Description string `json:"description,omitempty"`
	IsPenalty   bool   `json:"is_penalty,omitempty"`
}

type pitchRequest struct {
	PitchID string `json:"pitch_id"`
}

type leaveResponse struct {
	Penalty bool `json:"penalty"`
}

type errorBody struct {
	Error string `json:"error"`
	Until string `json:"until,omitempty"`
}
