package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/orchestrator"
	"github.com/mauv0809/pitchside/internal/remote"
)

// actorFromRequest derives the acting user from the identity headers. The
// gateway in front of this service is trusted to have authenticated them.
func actorFromRequest(r *http.Request) orchestrator.Actor {
	role := booking.Role(r.Header.Get("X-User-Role"))
	if role != booking.RoleAdmin {
		role = booking.RolePlayer
	}
	return orchestrator.Actor{
		ID:   r.Header.Get("X-User-ID"),
		Name: r.Header.Get("X-User-Name"),
		Role: role,
	}
}

// respondError maps the typed action errors onto HTTP statuses: validation
// failures are the caller's fault, suspensions are forbidden and carry the
// until date, remote failures are a bad gateway.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *booking.ValidationError
	var suspendedErr *booking.SuspendedError
	var remoteErr *booking.RemoteError

	body := errorBody{Error: err.Error()}
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &suspendedErr):
		status = http.StatusForbidden
		body.Until = suspendedErr.Until.Format(time.DateOnly)
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &remoteErr):
		status = http.StatusBadGateway
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("Failed to encode error response", "error", err)
	}
}

func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Error("Failed to decode request body", "error", err)
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ListPitchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, s.Store.Pitches())
	}
}

func (s *Server) ListReservationsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if id := r.URL.Query().Get("id"); id != "" {
			reservation, ok := s.Store.Reservation(id)
			if !ok {
				http.Error(w, "Reservation not found", http.StatusNotFound)
				return
			}
			respondJSON(w, reservation)
			return
		}
		respondJSON(w, s.Store.Reservations())
	}
}

func (s *Server) ListSuspensionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, s.Store.Suspensions())
	}
}

func (s *Server) JoinGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.JoinGame(r.Context(), actor, req.ReservationID); err != nil {
			log.Warn("Join game rejected", "reservationID", req.ReservationID, "userID", actor.ID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) LeaveGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		penalty, err := s.Orchestrator.LeaveGame(r.Context(), actor, req.ReservationID, isDryRunFromContext(r))
		if err != nil {
			log.Warn("Leave game rejected", "reservationID", req.ReservationID, "userID", actor.ID, "error", err)
			respondError(w, err)
			return
		}
		respondJSON(w, leaveResponse{Penalty: penalty})
	}
}

func (s *Server) JoinWaitlistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.JoinWaitlist(r.Context(), actor, req.ReservationID); err != nil {
			log.Warn("Join waitlist rejected", "reservationID", req.ReservationID, "userID", actor.ID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) LeaveWaitlistHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.LeaveWaitlist(r.Context(), actor, req.ReservationID); err != nil {
			log.Warn("Leave waitlist rejected", "reservationID", req.ReservationID, "userID", actor.ID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) CreateReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reservation booking.Reservation
		if !decodeBody(w, r, &reservation) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.CreateReservation(actor, &reservation); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, reservation)
	}
}

func (s *Server) DeleteReservationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req joinRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.DeleteReservation(r.Context(), actor, req.ReservationID); err != nil {
			log.Warn("Delete reservation rejected", "reservationID", req.ReservationID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) KickPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req kickRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.KickPlayer(r.Context(), actor, req.ReservationID, req.UserID, isDryRunFromContext(r)); err != nil {
			log.Warn("Kick player rejected", "reservationID", req.ReservationID, "userID", req.UserID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) SuspendPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req suspendRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.SuspendPlayer(r.Context(), actor, req.UserID, req.Days, req.Reason, isDryRunFromContext(r)); err != nil {
			log.Warn("Suspend player rejected", "userID", req.UserID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) GameSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req summaryRequest
		if !decodeBody(w, r, &req) {
			return
		}

		summary := remote.GameSummary{
			FinalScore:  req.FinalScore,
			MVPPlayerID: req.MVPPlayerID,
		}
		for _, h := range req.Highlights {
			summary.Highlights = append(summary.Highlights, booking.Highlight{
				Type:        booking.HighlightType(h.Type),
				PlayerID:    h.PlayerID,
				PlayerName:  h.PlayerName,
				Minute:      h.Minute,
				Description: h.Description,
				IsPenalty:   h.IsPenalty,
			})
		}

		actor := actorFromRequest(r)
		if err := s.Orchestrator.AddGameSummary(r.Context(), actor, req.ReservationID, summary, isDryRunFromContext(r)); err != nil {
			log.Warn("Game summary rejected", "reservationID", req.ReservationID, "error", err)
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) CreatePitchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pitch booking.Pitch
		if !decodeBody(w, r, &pitch) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.CreatePitch(actor, pitch); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}

func (s *Server) DeletePitchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pitchRequest
		if !decodeBody(w, r, &req) {
			return
		}
		actor := actorFromRequest(r)
		if err := s.Orchestrator.DeletePitch(actor, req.PitchID); err != nil {
			respondError(w, err)
			return
		}
		w.Write([]byte("OK"))
	}
}
