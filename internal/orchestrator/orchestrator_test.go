package orchestrator_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/notifier"
	"github.com/mauv0809/pitchside/internal/orchestrator"
	"github.com/mauv0809/pitchside/internal/pubsub"
	"github.com/mauv0809/pitchside/internal/remote"
	"github.com/mauv0809/pitchside/internal/roster"
	"github.com/mauv0809/pitchside/internal/snapshot"
	"github.com/mauv0809/pitchside/internal/store"
	"github.com/mauv0809/pitchside/internal/suspension"
	"github.com/mauv0809/pitchside/internal/waitlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	orch     *orchestrator.Orchestrator
	store    store.ReservationStore
	kv       *snapshot.MockKV
	remote   *remote.MockClient
	notifier *notifier.MockNotifier
	pubsub   *pubsub.MockPubSubClient
	metrics  *metrics.Mock
}

func setup(t *testing.T) *fixture {
	t.Helper()

	kv := snapshot.NewMock()
	metricsSvc := metrics.NewMock()
	s := store.New(kv, metricsSvc)
	s.Load()

	remoteMock := remote.NewMockClient()
	notifierMock := notifier.NewMock()
	pubsubMock := pubsub.NewMock()

	orch := orchestrator.New(
		s,
		roster.New(s),
		waitlist.New(s, notifierMock, pubsubMock),
		suspension.New(s),
		remoteMock,
		notifierMock,
		pubsubMock,
		metricsSvc,
	)

	return &fixture{
		orch:     orch,
		store:    s,
		kv:       kv,
		remote:   remoteMock,
		notifier: notifierMock,
		pubsub:   pubsubMock,
		metrics:  metricsSvc,
	}
}

var (
	player = orchestrator.Actor{ID: "p1", Name: "Player One", Role: booking.RolePlayer}
	admin  = orchestrator.Actor{ID: "a1", Name: "Admin", Role: booking.RoleAdmin}
)

// fillGame seats enough players to flip the reservation to full.
func fillGame(t *testing.T, s store.ReservationStore, reservationID string) {
	t.Helper()
	require.NoError(t, s.UpdateReservation(reservationID, func(r *booking.Reservation) error {
		for i := 0; i < r.MaxPlayers; i++ {
			r.Lineup = append(r.Lineup, booking.LineupPlayer{
				UserID: fmt.Sprintf("filler-%d", i),
				Status: booking.PlayerJoined,
			})
		}
		r.RecomputeStatus()
		return nil
	}))
}

func TestJoinGame(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))

	r, _ := f.store.Reservation("res-seed-1")
	assert.True(t, r.HasJoined("p1"))
	assert.Equal(t, []string{"res-seed-1"}, f.remote.JoinCalls)
	assert.Equal(t, 1, f.remote.ListReservationsCalls)
}

func TestJoinGameRejectsAdmins(t *testing.T) {
	f := setup(t)

	err := f.orch.JoinGame(context.Background(), admin, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)

	// Rejected before the remote is ever called.
	assert.Empty(t, f.remote.JoinCalls)
}

func TestJoinGameRejectsAnonymous(t *testing.T) {
	f := setup(t)

	err := f.orch.JoinGame(context.Background(), orchestrator.Actor{}, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestJoinGameRejectsSuspended(t *testing.T) {
	f := setup(t)

	until := time.Now().Add(48 * time.Hour)
	f.store.SetSuspension(booking.Suspension{UserID: "p1", Until: until.Unix(), Reason: "no-show"})

	err := f.orch.JoinGame(context.Background(), player, "res-seed-1")
	var suspendedErr *booking.SuspendedError
	require.ErrorAs(t, err, &suspendedErr)
	assert.Equal(t, until.Unix(), suspendedErr.Until.Unix())
	assert.Empty(t, f.remote.JoinCalls)
}

func TestJoinGameOneGamePerDay(t *testing.T) {
	f := setup(t)

	// Book a second game on the same day as res-seed-1.
	r1, _ := f.store.Reservation("res-seed-1")
	require.NoError(t, f.store.AddReservation(&booking.Reservation{
		ID:         "res-same-day",
		PitchID:    "pitch-old-quarter",
		Date:       r1.Date,
		Time:       "21:00 - 22:00",
		MaxPlayers: 10,
	}))

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))

	err := f.orch.JoinGame(context.Background(), player, "res-same-day")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "already have a game")
}

func TestJoinGameCapacity(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.store.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		for i := 0; i < r.MaxPlayers+booking.BufferSlots; i++ {
			r.Lineup = append(r.Lineup, booking.LineupPlayer{
				UserID: fmt.Sprintf("filler-%d", i),
				Status: booking.PlayerJoined,
			})
		}
		r.RecomputeStatus()
		return nil
	}))

	err := f.orch.JoinGame(context.Background(), player, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "fully booked")
}

func TestJoinGameRemoteFailureLeavesStateUntouched(t *testing.T) {
	f := setup(t)

	f.remote.JoinFunc = func(ctx context.Context, reservationID string) error {
		return &booking.RemoteError{Op: "join", Message: "reservation is locked"}
	}
	putsBefore := len(f.kv.PutCalls)

	err := f.orch.JoinGame(context.Background(), player, "res-seed-1")
	var remoteErr *booking.RemoteError
	require.ErrorAs(t, err, &remoteErr)

	// No local mutation, no snapshot write, and the failure is counted.
	r, _ := f.store.Reservation("res-seed-1")
	assert.False(t, r.HasJoined("p1"))
	assert.Len(t, f.kv.PutCalls, putsBefore)
	assert.Equal(t, 1, f.metrics.RemoteFailureCount("join"))
}

func TestJoinGameReloadsFromRemote(t *testing.T) {
	f := setup(t)

	f.remote.ListReservationsFunc = func(ctx context.Context) ([]*booking.Reservation, error) {
		return []*booking.Reservation{
			{ID: "res-remote", Status: booking.StatusOpen, MaxPlayers: 10},
		}, nil
	}

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))

	// The remote collection replaced the local one wholesale.
	_, ok := f.store.Reservation("res-remote")
	assert.True(t, ok)
	_, ok = f.store.Reservation("res-seed-2")
	assert.False(t, ok)
}

func TestLeaveGame(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))
	penalty, err := f.orch.LeaveGame(context.Background(), player, "res-seed-1", false)
	require.NoError(t, err)
	assert.False(t, penalty)

	r, _ := f.store.Reservation("res-seed-1")
	assert.False(t, r.HasJoined("p1"))
	assert.Equal(t, []string{"res-seed-1"}, f.remote.CancelCalls)
}

func TestLeaveGameNotJoined(t *testing.T) {
	f := setup(t)

	_, err := f.orch.LeaveGame(context.Background(), player, "res-seed-1", false)
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, f.remote.CancelCalls)
}

func TestLeaveGameNotifiesWaitlistWhenSeatFrees(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.store.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.MaxPlayers = 2
		r.Lineup = []booking.LineupPlayer{
			{UserID: "p1", Status: booking.PlayerJoined},
			{UserID: "p2", Status: booking.PlayerJoined},
		}
		r.WaitingList = []string{"queued-1", "queued-2"}
		r.RecomputeStatus()
		return nil
	}))

	_, err := f.orch.LeaveGame(context.Background(), player, "res-seed-1", false)
	require.NoError(t, err)

	// Everyone queued is told; nobody is seated.
	require.Len(t, f.notifier.SlotOpenCalls, 1)
	assert.Equal(t, []string{"queued-1", "queued-2"}, f.notifier.SlotOpenCalls[0].UserIDs)

	r, _ := f.store.Reservation("res-seed-1")
	assert.Equal(t, []string{"queued-1", "queued-2"}, r.WaitingList)
	assert.Equal(t, 1, r.JoinedCount())
}

func TestLeaveGameNoNotificationWhenGameWasOpen(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))
	_, err := f.orch.LeaveGame(context.Background(), player, "res-seed-1", false)
	require.NoError(t, err)

	assert.Empty(t, f.notifier.SlotOpenCalls)
}

func TestJoinWaitlist(t *testing.T) {
	f := setup(t)
	fillGame(t, f.store, "res-seed-1")

	require.NoError(t, f.orch.JoinWaitlist(context.Background(), player, "res-seed-1"))

	r, _ := f.store.Reservation("res-seed-1")
	assert.Equal(t, []string{"p1"}, r.WaitingList)
	assert.Equal(t, []string{"res-seed-1"}, f.remote.JoinWaitlistCalls)
}

func TestJoinWaitlistRejectsOpenGame(t *testing.T) {
	f := setup(t)

	err := f.orch.JoinWaitlist(context.Background(), player, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, f.remote.JoinWaitlistCalls)
}

func TestJoinWaitlistRejectsAdmins(t *testing.T) {
	f := setup(t)
	fillGame(t, f.store, "res-seed-1")

	err := f.orch.JoinWaitlist(context.Background(), admin, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestJoinWaitlistCapacity(t *testing.T) {
	f := setup(t)
	fillGame(t, f.store, "res-seed-1")

	require.NoError(t, f.store.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.WaitingList = []string{"q1", "q2", "q3"}
		return nil
	}))

	err := f.orch.JoinWaitlist(context.Background(), player, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, f.remote.JoinWaitlistCalls)
}

func TestLeaveWaitlist(t *testing.T) {
	f := setup(t)
	fillGame(t, f.store, "res-seed-1")
	require.NoError(t, f.orch.JoinWaitlist(context.Background(), player, "res-seed-1"))

	require.NoError(t, f.orch.LeaveWaitlist(context.Background(), player, "res-seed-1"))

	r, _ := f.store.Reservation("res-seed-1")
	assert.Empty(t, r.WaitingList)
	assert.Equal(t, []string{"res-seed-1"}, f.remote.LeaveWaitlistCalls)
}

func TestLeaveWaitlistNotQueued(t *testing.T) {
	f := setup(t)

	err := f.orch.LeaveWaitlist(context.Background(), player, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, f.remote.LeaveWaitlistCalls)
}

func TestDeleteReservation(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.DeleteReservation(context.Background(), admin, "res-seed-1"))

	_, ok := f.store.Reservation("res-seed-1")
	assert.False(t, ok)
	assert.Equal(t, []string{"res-seed-1"}, f.remote.DeleteCalls)
}

func TestDeleteReservationRejectsPlayers(t *testing.T) {
	f := setup(t)

	err := f.orch.DeleteReservation(context.Background(), player, "res-seed-1")
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, f.remote.DeleteCalls)

	_, ok := f.store.Reservation("res-seed-1")
	assert.True(t, ok)
}

func TestKickPlayer(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))
	require.NoError(t, f.orch.KickPlayer(context.Background(), admin, "res-seed-1", "p1", false))

	r, _ := f.store.Reservation("res-seed-1")
	assert.False(t, r.HasJoined("p1"))
	require.Len(t, f.remote.KickCalls, 1)
	assert.Equal(t, "p1", f.remote.KickCalls[0].UserID)
}

func TestKickPlayerRejectsPlayers(t *testing.T) {
	f := setup(t)

	err := f.orch.KickPlayer(context.Background(), player, "res-seed-1", "p2", false)
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestKickPlayerNotifiesWaitlist(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.store.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.MaxPlayers = 1
		r.Lineup = []booking.LineupPlayer{{UserID: "p1", Status: booking.PlayerJoined}}
		r.WaitingList = []string{"queued-1"}
		r.RecomputeStatus()
		return nil
	}))

	require.NoError(t, f.orch.KickPlayer(context.Background(), admin, "res-seed-1", "p1", false))

	require.Len(t, f.notifier.SlotOpenCalls, 1)
}

func TestSuspendPlayer(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.JoinGame(context.Background(), player, "res-seed-1"))
	require.NoError(t, f.orch.SuspendPlayer(context.Background(), admin, "p1", 7, "misconduct", false))

	// The suspension is recorded and the player purged from the lineup.
	susp, ok := f.store.Suspension("p1")
	require.True(t, ok)
	assert.Equal(t, "misconduct", susp.Reason)

	r, _ := f.store.Reservation("res-seed-1")
	assert.False(t, r.HasJoined("p1"))

	require.Len(t, f.remote.SuspendCalls, 1)
	assert.Equal(t, 7, f.remote.SuspendCalls[0].Days)

	require.Len(t, f.pubsub.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventPlayerSuspended), f.pubsub.SendMessageCalls[0].Topic)
	require.Len(t, f.notifier.SuspensionCalls, 1)
	assert.Equal(t, "p1", f.notifier.SuspensionCalls[0].UserID)
}

func TestSuspendPlayerValidation(t *testing.T) {
	f := setup(t)
	var validationErr *booking.ValidationError

	err := f.orch.SuspendPlayer(context.Background(), admin, "p1", 0, "misconduct", false)
	require.ErrorAs(t, err, &validationErr)

	err = f.orch.SuspendPlayer(context.Background(), admin, "p1", 7, "", false)
	require.ErrorAs(t, err, &validationErr)

	err = f.orch.SuspendPlayer(context.Background(), player, "p2", 7, "misconduct", false)
	require.ErrorAs(t, err, &validationErr)

	assert.Empty(t, f.remote.SuspendCalls)
}

func TestAddGameSummary(t *testing.T) {
	f := setup(t)

	summary := remote.GameSummary{
		FinalScore:  "3-2",
		MVPPlayerID: "p1",
		Highlights: []booking.Highlight{
			{Type: booking.HighlightGoal, PlayerID: "p1", Minute: 42},
			{Type: booking.HighlightRedCard, PlayerID: "p2", Minute: 88},
		},
	}
	require.NoError(t, f.orch.AddGameSummary(context.Background(), admin, "res-seed-1", summary, false))

	r, _ := f.store.Reservation("res-seed-1")
	assert.Equal(t, booking.StatusCompleted, r.Status)
	assert.Equal(t, "3-2", r.FinalScore)
	assert.Equal(t, "p1", r.MVPPlayerID)
	require.Len(t, r.Highlights, 2)
	assert.NotEmpty(t, r.Highlights[0].ID)

	require.Len(t, f.remote.SummaryCalls, 1)
	require.Len(t, f.pubsub.SendMessageCalls, 1)
	assert.Equal(t, string(pubsub.EventGameCompleted), f.pubsub.SendMessageCalls[0].Topic)
	require.Len(t, f.notifier.GameSummaryCalls, 1)
}

func TestAddGameSummaryValidation(t *testing.T) {
	f := setup(t)
	var validationErr *booking.ValidationError

	err := f.orch.AddGameSummary(context.Background(), admin, "res-seed-1", remote.GameSummary{
		Highlights: []booking.Highlight{{Type: booking.HighlightGoal, Minute: 121}},
	}, false)
	require.ErrorAs(t, err, &validationErr)

	err = f.orch.AddGameSummary(context.Background(), admin, "res-seed-1", remote.GameSummary{
		Highlights: []booking.Highlight{{Type: "nutmeg", Minute: 10}},
	}, false)
	require.ErrorAs(t, err, &validationErr)

	err = f.orch.AddGameSummary(context.Background(), player, "res-seed-1", remote.GameSummary{}, false)
	require.ErrorAs(t, err, &validationErr)

	assert.Empty(t, f.remote.SummaryCalls)
}

func TestAddGameSummaryRejectsCancelledGame(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.store.UpdateReservation("res-seed-1", func(r *booking.Reservation) error {
		r.Status = booking.StatusCancelled
		return nil
	}))

	err := f.orch.AddGameSummary(context.Background(), admin, "res-seed-1", remote.GameSummary{FinalScore: "1-0"}, false)
	var validationErr *booking.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestCreateAndDeletePitch(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.orch.CreatePitch(admin, booking.Pitch{ID: "pitch-new", Name: "New Arena"}))
	assert.Len(t, f.store.Pitches(), 4)

	var validationErr *booking.ValidationError
	err := f.orch.CreatePitch(player, booking.Pitch{Name: "Another"})
	require.ErrorAs(t, err, &validationErr)

	// No reservation references the new pitch, so deletion goes through.
	require.NoError(t, f.orch.DeletePitch(admin, "pitch-new"))
	assert.Len(t, f.store.Pitches(), 3)
}

func TestCreateReservation(t *testing.T) {
	f := setup(t)

	r := &booking.Reservation{
		PitchID:    "pitch-camp-nou",
		Date:       "2030-01-01",
		Time:       "19:00 - 20:00",
		MaxPlayers: 10,
	}
	require.NoError(t, f.orch.CreateReservation(admin, r))

	_, ok := f.store.Reservation(r.ID)
	assert.True(t, ok)

	var validationErr *booking.ValidationError
	err := f.orch.CreateReservation(player, &booking.Reservation{PitchID: "pitch-camp-nou", MaxPlayers: 10})
	require.ErrorAs(t, err, &validationErr)
}
