package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListReservations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/reservations", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"reservations": []map[string]any{
				{"id": "res-1", "status": "open", "max_players": 10},
				{"id": "res-2", "status": "full", "max_players": 14},
			},
		})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	reservations, err := client.ListReservations(context.Background())
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, "res-1", reservations[0].ID)
	assert.Equal(t, booking.StatusFull, reservations[1].Status)
}

func TestJoin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/reservations/res-1/join", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	require.NoError(t, client.Join(context.Background(), "res-1"))
}

func TestRemoteErrorMessagePassthrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"message": "reservation is locked"})
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	err := client.Join(context.Background(), "res-1")

	var remoteErr *booking.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	// The service's message is surfaced verbatim.
	assert.Equal(t, "reservation is locked", remoteErr.Error())
	assert.Equal(t, "join", remoteErr.Op)
}

func TestRemoteErrorWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	err := client.Cancel(context.Background(), "res-1")

	var remoteErr *booking.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "booking service returned status 500", remoteErr.Error())
}

func TestUnreachableService(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := remote.NewClient(server.URL)
	err := client.Join(context.Background(), "res-1")

	var remoteErr *booking.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, "booking service unreachable", remoteErr.Error())
}

func TestKickPlayerSendsUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reservations/res-1/kick", r.URL.Path)
		var body struct {
			UserID string `json:"user_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "p1", body.UserID)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	require.NoError(t, client.KickPlayer(context.Background(), "res-1", "p1"))
}

func TestSuspendPlayerSendsReasonAndDays(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/players/p1/suspend", r.URL.Path)
		var body struct {
			Reason string `json:"reason"`
			Days   int    `json:"days"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "misconduct", body.Reason)
		assert.Equal(t, 7, body.Days)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	require.NoError(t, client.SuspendPlayer(context.Background(), "p1", "misconduct", 7))
}

func TestDeleteReservation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1/reservations/res-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	require.NoError(t, client.DeleteReservation(context.Background(), "res-1"))
}

func TestAddGameSummary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/reservations/res-1/summary", r.URL.Path)
		var body remote.GameSummary
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "3-2", body.FinalScore)
		require.Len(t, body.Highlights, 1)
		assert.Equal(t, booking.HighlightGoal, body.Highlights[0].Type)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := remote.NewClient(server.URL)
	summary := remote.GameSummary{
		FinalScore:  "3-2",
		MVPPlayerID: "p1",
		Highlights:  []booking.Highlight{{Type: booking.HighlightGoal, PlayerID: "p1", Minute: 42}},
	}
	require.NoError(t, client.AddGameSummary(context.Background(), "res-1", summary))
}
