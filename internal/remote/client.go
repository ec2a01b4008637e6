package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pitchside/internal/booking"
)

// APIClient is the HTTP client for the remote booking service.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a new booking service client.
func NewClient(baseURL string) BookingClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    baseURL,
	}
}

// Ensure APIClient implements the BookingClient interface.
var _ BookingClient = (*APIClient)(nil)

// ListReservations fetches the authoritative reservation collection.
func (c *APIClient) ListReservations(ctx context.Context) ([]*booking.Reservation, error) {
	url := fmt.Sprintf("%s/v1/reservations", c.BaseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("Fetching reservations from booking service", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &booking.RemoteError{Op: "listReservations", Message: "booking service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.remoteErr("listReservations", resp)
	}

	var listResponse listReservationsResponse
	if err := json.NewDecoder(resp.Body).Decode(&listResponse); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	log.Info("Fetched reservations from booking service", "count", len(listResponse.Reservations))
	return listResponse.Reservations, nil
}

// Join claims a seat in the reservation for the session user.
func (c *APIClient) Join(ctx context.Context, reservationID string) error {
	return c.post(ctx, "join", fmt.Sprintf("/v1/reservations/%s/join", reservationID), nil)
}

// Cancel gives up the session user's seat.
func (c *APIClient) Cancel(ctx context.Context, reservationID string) error {
	return c.post(ctx, "cancel", fmt.Sprintf("/v1/reservations/%s/cancel", reservationID), nil)
}

// JoinWaitlist queues the session user for a seat.
func (c *APIClient) JoinWaitlist(ctx context.Context, reservationID string) error {
	return c.post(ctx, "joinWaitlist", fmt.Sprintf("/v1/reservations/%s/waitlist/join", reservationID), nil)
}

// LeaveWaitlist removes the session user from the queue.
func (c *APIClient) LeaveWaitlist(ctx context.Context, reservationID string) error {
	return c.post(ctx, "leaveWaitlist", fmt.Sprintf("/v1/reservations/%s/waitlist/leave", reservationID), nil)
}

// DeleteReservation removes the reservation entirely.
func (c *APIClient) DeleteReservation(ctx context.Context, reservationID string) error {
	url := fmt.Sprintf("%s/v1/reservations/%s", c.BaseURL, reservationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	log.Debug("Deleting reservation on booking service", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &booking.RemoteError{Op: "deleteReservation", Message: "booking service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return c.remoteErr("deleteReservation", resp)
	}
	return nil
}

// KickPlayer removes a named player from the reservation.
func (c *APIClient) KickPlayer(ctx context.Context, reservationID, userID string) error {
	return c.post(ctx, "kickPlayer", fmt.Sprintf("/v1/reservations/%s/kick", reservationID), kickRequest{UserID: userID})
}

// SuspendPlayer bans a player for the given number of days.
func (c *APIClient) SuspendPlayer(ctx context.Context, userID, reason string, days int) error {
	return c.post(ctx, "suspendPlayer", fmt.Sprintf("/v1/players/%s/suspend", userID), suspendRequest{Reason: reason, Days: days})
}

// AddGameSummary attaches the final score, MVP and highlights to a game.
func (c *APIClient) AddGameSummary(ctx context.Context, reservationID string, summary GameSummary) error {
	return c.post(ctx, "addGameSummary", fmt.Sprintf("/v1/reservations/%s/summary", reservationID), summary)
}

func (c *APIClient) post(ctx context.Context, op, path string, body any) error {
	url := c.BaseURL + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("Calling booking service", "op", op, "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Booking service unreachable", "op", op, "error", err)
		return &booking.RemoteError{Op: op, Message: "booking service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return c.remoteErr(op, resp)
	}
	return nil
}

// remoteErr turns a non-2xx response into a RemoteError, passing the
// service's message through verbatim when one is present.
func (c *APIClient) remoteErr(op string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResponse errorResponse
	if err := json.Unmarshal(body, &errResponse); err == nil && errResponse.Message != "" {
		log.Warn("Booking service rejected operation", "op", op, "status", resp.StatusCode, "message", errResponse.Message)
		return &booking.RemoteError{Op: op, Message: errResponse.Message}
	}

	log.Error("Received non-OK HTTP status from booking service", "op", op, "status", resp.StatusCode, "body", string(body))
	return &booking.RemoteError{Op: op, Message: fmt.Sprintf("booking service returned status %d", resp.StatusCode)}
}
