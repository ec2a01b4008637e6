package orchestrator

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/notifier"
	"github.com/mauv0809/pitchside/internal/pubsub"
	"github.com/mauv0809/pitchside/internal/remote"
	"github.com/mauv0809/pitchside/internal/roster"
	"github.com/mauv0809/pitchside/internal/store"
	"github.com/mauv0809/pitchside/internal/suspension"
	"github.com/mauv0809/pitchside/internal/waitlist"
)

// New creates a new Orchestrator.
func New(
	reservationStore store.ReservationStore,
	rosterMgr *roster.Manager,
	waitlistMgr *waitlist.Manager,
	suspensions *suspension.Enforcer,
	remoteClient remote.BookingClient,
	notifierSvc notifier.Notifier,
	pubsubClient pubsub.PubSubClient,
	metricsSvc metrics.Metrics,
) *Orchestrator {
	return &Orchestrator{
		store:       reservationStore,
		roster:      rosterMgr,
		waitlist:    waitlistMgr,
		suspensions: suspensions,
		remote:      remoteClient,
		notifier:    notifierSvc,
		pubsub:      pubsubClient,
		metrics:     metricsSvc,
	}
}

// JoinGame claims a seat for the actor. Preconditions are validated against
// the local snapshot before the remote service is ever called.
func (o *Orchestrator) JoinGame(ctx context.Context, actor Actor, reservationID string) error {
	defer o.timed(actionJoin)()

	if err := o.requirePlayer(actor); err != nil {
		return o.reject(actionJoin, err)
	}
	if suspended, until := o.suspensions.IsSuspended(actor.ID); suspended {
		return o.reject(actionJoin, &booking.SuspendedError{UserID: actor.ID, Until: until})
	}

	r, ok := o.store.Reservation(reservationID)
	if !ok {
		return o.reject(actionJoin, booking.NewValidationError("reservation %s not found", reservationID))
	}
	switch r.Status {
	case booking.StatusCompleted:
		return o.reject(actionJoin, booking.NewValidationError("game has already been played"))
	case booking.StatusCancelled:
		return o.reject(actionJoin, booking.NewValidationError("game has been cancelled"))
	case booking.StatusOpen, booking.StatusFull:
	}
	if r.HasJoined(actor.ID) {
		return o.reject(actionJoin, booking.NewValidationError("you already hold a seat in this game"))
	}
	if r.JoinedCount() >= r.MaxPlayers+booking.BufferSlots {
		return o.reject(actionJoin, booking.NewValidationError("game is fully booked"))
	}
	// One active game per calendar day per player.
	if o.roster.HasJoinedOnDate(r.Date, actor.ID) {
		return o.reject(actionJoin, booking.NewValidationError("you already have a game on %s", r.Date))
	}

	if err := o.remote.Join(ctx, reservationID); err != nil {
		o.metrics.IncRemoteFailures(actionJoin)
		return err
	}

	if err := o.roster.JoinGame(reservationID, actor.ID, actor.Name); err != nil {
		// The remote accepted the join; never happens unless the local
		// snapshot was stale, in which case the reload below fixes it.
		log.Error("Local join failed after remote success", "error", err, "reservationID", reservationID, "userID", actor.ID)
	}
	o.reloadReservations(ctx)
	return nil
}

// LeaveGame gives up the actor's seat and reports whether the departure is
// penalty-eligible. When a previously full game opens up, the waiting list
// is notified; nobody is auto-promoted.
func (o *Orchestrator) LeaveGame(ctx context.Context, actor Actor, reservationID string, dryRun bool) (penalty bool, err error) {
	defer o.timed(actionLeave)()

	if err := o.requirePlayer(actor); err != nil {
		return false, o.reject(actionLeave, err)
	}
	r, ok := o.store.Reservation(reservationID)
	if !ok {
		return false, o.reject(actionLeave, booking.NewValidationError("reservation %s not found", reservationID))
	}
	if !r.HasJoined(actor.ID) {
		return false, o.reject(actionLeave, booking.NewValidationError("you are not in this game"))
	}
	wasFull := r.Status == booking.StatusFull

	if err := o.remote.Cancel(ctx, reservationID); err != nil {
		o.metrics.IncRemoteFailures(actionLeave)
		return false, err
	}

	penalty, err = o.roster.LeaveGame(reservationID, actor.ID)
	if err != nil {
		log.Error("Local leave failed after remote success", "error", err, "reservationID", reservationID, "userID", actor.ID)
	}
	o.notifyIfSeatFreed(reservationID, wasFull, dryRun)
	o.reloadReservations(ctx)
	return penalty, nil
}

// JoinWaitlist queues the actor for a seat in a full game.
func (o *Orchestrator) JoinWaitlist(ctx context.Context, actor Actor, reservationID string) error {
	defer o.timed(actionJoinWaitlist)()

	if err := o.requirePlayer(actor); err != nil {
		return o.reject(actionJoinWaitlist, err)
	}
	if suspended, until := o.suspensions.IsSuspended(actor.ID); suspended {
		return o.reject(actionJoinWaitlist, &booking.SuspendedError{UserID: actor.ID, Until: until})
	}

	r, ok := o.store.Reservation(reservationID)
	if !ok {
		return o.reject(actionJoinWaitlist, booking.NewValidationError("reservation %s not found", reservationID))
	}
	if r.Status != booking.StatusFull {
		return o.reject(actionJoinWaitlist, booking.NewValidationError("only full games take waiting list entries"))
	}
	if r.HasJoined(actor.ID) {
		return o.reject(actionJoinWaitlist, booking.NewValidationError("you already hold a seat in this game"))
	}
	if r.OnWaitingList(actor.ID) {
		return o.reject(actionJoinWaitlist, booking.NewValidationError("you are already on the waiting list"))
	}
	if len(r.WaitingList) >= booking.MaxWaitingList {
		return o.reject(actionJoinWaitlist, booking.NewValidationError("the waiting list is full"))
	}

	if err := o.remote.JoinWaitlist(ctx, reservationID); err != nil {
		o.metrics.IncRemoteFailures(actionJoinWaitlist)
		return err
	}

	if err := o.waitlist.Join(reservationID, actor.ID); err != nil {
		log.Error("Local waitlist join failed after remote success", "error", err, "reservationID", reservationID, "userID", actor.ID)
	}
	o.reloadReservations(ctx)
	return nil
}

// LeaveWaitlist removes the actor from a game's waiting list.
func (o *Orchestrator) LeaveWaitlist(ctx context.Context, actor Actor, reservationID string) error {
	defer o.timed(actionLeaveWaitlist)()

	if err := o.requirePlayer(actor); err != nil {
		return o.reject(actionLeaveWaitlist, err)
	}
	r, ok := o.store.Reservation(reservationID)
	if !ok {
		return o.reject(actionLeaveWaitlist, booking.NewValidationError("reservation %s not found", reservationID))
	}
	if !r.OnWaitingList(actor.ID) {
		return o.reject(actionLeaveWaitlist, booking.NewValidationError("you are not on the waiting list"))
	}

	if err := o.remote.LeaveWaitlist(ctx, reservationID); err != nil {
		o.metrics.IncRemoteFailures(actionLeaveWaitlist)
		return err
	}

	if err := o.waitlist.Leave(reservationID, actor.ID); err != nil {
		log.Error("Local waitlist leave failed after remote success", "error", err, "reservationID", reservationID, "userID", actor.ID)
	}
	o.reloadReservations(ctx)
	return nil
}

// DeleteReservation removes a reservation entirely. Admin only.
func (o *Orchestrator) DeleteReservation(ctx context.Context, actor Actor, reservationID string) error {
	defer o.timed(actionDelete)()

	if err := o.requireAdmin(actor); err != nil {
		return o.reject(actionDelete, err)
	}
	if _, ok := o.store.Reservation(reservationID); !ok {
		return o.reject(actionDelete, booking.NewValidationError("reservation %s not found", reservationID))
	}

	if err := o.remote.DeleteReservation(ctx, reservationID); err != nil {
		o.metrics.IncRemoteFailures(actionDelete)
		return err
	}

	if err := o.store.DeleteReservation(reservationID); err != nil {
		log.Error("Local delete failed after remote success", "error", err, "reservationID", reservationID)
	}
	o.reloadReservations(ctx)
	return nil
}

// KickPlayer removes a named player from a game. Admin only. Like a leave,
// a kick that opens up a full game triggers a waiting list notification.
func (o *Orchestrator) KickPlayer(ctx context.Context, actor Actor, reservationID, userID string, dryRun bool) error {
	defer o.timed(actionKick)()

	if err := o.requireAdmin(actor); err != nil {
		return o.reject(actionKick, err)
	}
	r, ok := o.store.Reservation(reservationID)
	if !ok {
		return o.reject(actionKick, booking.NewValidationError("reservation %s not found", reservationID))
	}
	if !r.HasJoined(userID) {
		return o.reject(actionKick, booking.NewValidationError("player %s is not in this game", userID))
	}
	wasFull := r.Status == booking.StatusFull

	if err := o.remote.KickPlayer(ctx, reservationID, userID); err != nil {
		o.metrics.IncRemoteFailures(actionKick)
		return err
	}

	if _, err := o.roster.LeaveGame(reservationID, userID); err != nil {
		log.Error("Local kick failed after remote success", "error", err, "reservationID", reservationID, "userID", userID)
	}
	o.notifyIfSeatFreed(reservationID, wasFull, dryRun)
	o.reloadReservations(ctx)
	return nil
}

// SuspendPlayer bans a player and purges them from every upcoming game.
// Admin only.
func (o *Orchestrator) SuspendPlayer(ctx context.Context, actor Actor, userID string, durationDays int, reason string, dryRun bool) error {
	defer o.timed(actionSuspend)()

	if err := o.requireAdmin(actor); err != nil {
		return o.reject(actionSuspend, err)
	}
	if durationDays <= 0 {
		return o.reject(actionSuspend, booking.NewValidationError("suspension must last at least one day"))
	}
	if reason == "" {
		return o.reject(actionSuspend, booking.NewValidationError("a suspension needs a reason"))
	}

	if err := o.remote.SuspendPlayer(ctx, userID, reason, durationDays); err != nil {
		o.metrics.IncRemoteFailures(actionSuspend)
		return err
	}

	susp := o.suspensions.Suspend(userID, durationDays, reason)
	until := time.Unix(susp.Until, 0)
	if !dryRun {
		if err := o.pubsub.SendMessage(pubsub.EventPlayerSuspended, susp); err != nil {
			log.Error("Failed to publish suspension event", "error", err, "userID", userID)
		}
	}
	if err := o.notifier.SendSuspensionNotification(userID, until, reason, dryRun); err != nil {
		log.Error("Failed to send suspension notification", "error", err, "userID", userID)
	}
	o.reloadReservations(ctx)
	return nil
}

// AddGameSummary attaches the final score, MVP and highlights to a game and
// marks it completed. Admin only.
func (o *Orchestrator) AddGameSummary(ctx context.Context, actor Actor, reservationID string, summary remote.GameSummary, dryRun bool) error {
	defer o.timed(actionSummary)()

	if err := o.requireAdmin(actor); err != nil {
		return o.reject(actionSummary, err)
	}
	r, ok := o.store.Reservation(reservationID)
	if !ok {
		return o.reject(actionSummary, booking.NewValidationError("reservation %s not found", reservationID))
	}
	if r.Status == booking.StatusCancelled {
		return o.reject(actionSummary, booking.NewValidationError("cancelled games cannot get a summary"))
	}
	for _, h := range summary.Highlights {
		if h.Minute < 0 || h.Minute > 120 {
			return o.reject(actionSummary, booking.NewValidationError("highlight minute %d is out of range", h.Minute))
		}
		switch h.Type {
		case booking.HighlightGoal, booking.HighlightAssist, booking.HighlightYellowCard,
			booking.HighlightRedCard, booking.HighlightSave, booking.HighlightOther:
		default:
			return o.reject(actionSummary, booking.NewValidationError("unknown highlight type %q", h.Type))
		}
	}

	if err := o.remote.AddGameSummary(ctx, reservationID, summary); err != nil {
		o.metrics.IncRemoteFailures(actionSummary)
		return err
	}

	err := o.store.UpdateReservation(reservationID, func(res *booking.Reservation) error {
		res.FinalScore = summary.FinalScore
		res.MVPPlayerID = summary.MVPPlayerID
		for _, h := range summary.Highlights {
			if h.ID == "" {
				h.ID = uuid.NewString()
			}
			res.Highlights = append(res.Highlights, h)
		}
		switch res.Status {
		case booking.StatusOpen, booking.StatusFull:
			res.Status = booking.StatusCompleted
		case booking.StatusCompleted:
			// Already completed; an admin is editing the summary.
		case booking.StatusCancelled:
			return booking.NewValidationError("cancelled games cannot get a summary")
		}
		return nil
	})
	if err != nil {
		log.Error("Local summary update failed after remote success", "error", err, "reservationID", reservationID)
		return err
	}

	if updated, ok := o.store.Reservation(reservationID); ok {
		if !dryRun {
			if err := o.pubsub.SendMessage(pubsub.EventGameCompleted, updated); err != nil {
				log.Error("Failed to publish game-completed event", "error", err, "reservationID", reservationID)
			}
		}
		if err := o.notifier.SendGameSummaryNotification(updated, dryRun); err != nil {
			log.Error("Failed to send game summary notification", "error", err, "reservationID", reservationID)
		}
	}
	o.reloadReservations(ctx)
	return nil
}

// CreatePitch adds a venue to the catalog. Admin only, local only: the
// catalog is not mirrored by the remote booking service.
func (o *Orchestrator) CreatePitch(actor Actor, p booking.Pitch) error {
	if err := o.requireAdmin(actor); err != nil {
		return err
	}
	return o.store.AddPitch(p)
}

// DeletePitch removes a venue. Blocked while upcoming games reference it.
func (o *Orchestrator) DeletePitch(actor Actor, pitchID string) error {
	if err := o.requireAdmin(actor); err != nil {
		return err
	}
	return o.store.DeletePitch(pitchID)
}

// CreateReservation books a new game against the catalog. Admin only.
func (o *Orchestrator) CreateReservation(actor Actor, r *booking.Reservation) error {
	if err := o.requireAdmin(actor); err != nil {
		return err
	}
	return o.store.AddReservation(r)
}

// notifyIfSeatFreed fires the waiting list notification when a previously
// full game now has an open seat.
func (o *Orchestrator) notifyIfSeatFreed(reservationID string, wasFull, dryRun bool) {
	if !wasFull {
		return
	}
	r, ok := o.store.Reservation(reservationID)
	if !ok || r.Status != booking.StatusOpen {
		return
	}
	o.waitlist.Notify(reservationID, dryRun)
}

// reloadReservations replaces the local collection with the remote truth.
// A failed reload is logged and the local mutation stands; the next
// successful action converges the two again.
func (o *Orchestrator) reloadReservations(ctx context.Context) {
	reservations, err := o.remote.ListReservations(ctx)
	if err != nil {
		log.Warn("Failed to reload reservations from booking service", "error", err)
		return
	}
	if reservations == nil {
		return
	}
	o.store.ReplaceReservations(reservations)
}

func (o *Orchestrator) requirePlayer(actor Actor) error {
	if actor.ID == "" {
		return booking.NewValidationError("you must be logged in")
	}
	if actor.Role == booking.RoleAdmin {
		return booking.NewValidationError("admins cannot take part in games")
	}
	return nil
}

func (o *Orchestrator) requireAdmin(actor Actor) error {
	if actor.ID == "" {
		return booking.NewValidationError("you must be logged in")
	}
	if actor.Role != booking.RoleAdmin {
		return booking.NewValidationError("only admins can do this")
	}
	return nil
}

func (o *Orchestrator) reject(action string, err error) error {
	o.metrics.IncValidationRejected(action)
	return err
}

func (o *Orchestrator) timed(action string) func() {
	start := time.Now()
	o.metrics.IncActions(action)
	return func() {
		o.metrics.ObserveActionDuration(action, time.Since(start).Seconds())
	}
}
