package store

import (
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/pitchside/internal/booking"
	"github.com/mauv0809/pitchside/internal/metrics"
	"github.com/mauv0809/pitchside/internal/snapshot"
)

// New creates a new ReservationStore. Call Load before first use.
func New(kv snapshot.KV, metricsSvc metrics.Metrics) ReservationStore {
	return &store{
		kv:           kv,
		metrics:      metricsSvc,
		now:          time.Now,
		pitches:      make(map[string]booking.Pitch),
		reservations: make(map[string]*booking.Reservation),
		suspensions:  make(map[string]booking.Suspension),
	}
}

var _ ReservationStore = (*store)(nil)

// Load reads the persisted snapshots. A missing or corrupt snapshot falls
// back to the seed dataset; Load never fails hard.
func (s *store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pitches []booking.Pitch
	found, err := s.kv.Get(KeyPitches, &pitches)
	if err != nil {
		log.Warn("Failed to read pitches snapshot, falling back to seed data", "error", err)
	}
	if !found || err != nil {
		pitches = seedPitches()
	}
	s.pitches = make(map[string]booking.Pitch, len(pitches))
	for _, p := range pitches {
		s.pitches[p.ID] = p
	}

	var reservations []*booking.Reservation
	found, err = s.kv.Get(KeyReservations, &reservations)
	if err != nil {
		log.Warn("Failed to read reservations snapshot, falling back to seed data", "error", err)
	}
	if !found || err != nil {
		reservations = seedReservations(s.now())
	}
	s.reservations = make(map[string]*booking.Reservation, len(reservations))
	for _, r := range reservations {
		s.reservations[r.ID] = r
	}

	var suspensions []booking.Suspension
	if _, err := s.kv.Get(KeySuspensions, &suspensions); err != nil {
		log.Warn("Failed to read suspensions snapshot, starting empty", "error", err)
	}
	s.suspensions = make(map[string]booking.Suspension, len(suspensions))
	now := s.now()
	purged := 0
	for _, susp := range suspensions {
		// Expired suspensions are dropped on load, per the lazy expiry rule.
		if !susp.Active(now) {
			purged++
			continue
		}
		s.suspensions[susp.UserID] = susp
	}
	if purged > 0 {
		log.Info("Purged expired suspensions on load", "count", purged)
	}

	s.persistPitchesLocked()
	s.persistReservationsLocked()
	s.persistSuspensionsLocked()
	log.Info("Reservation store loaded",
		"pitches", len(s.pitches),
		"reservations", len(s.reservations),
		"suspensions", len(s.suspensions),
	)
}

// Flush writes all collections back to the durable layer.
func (s *store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persistPitchesLocked()
	s.persistReservationsLocked()
	s.persistSuspensionsLocked()
}

func (s *store) Pitches() []booking.Pitch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pitches := make([]booking.Pitch, 0, len(s.pitches))
	for _, p := range s.pitches {
		pitches = append(pitches, p)
	}
	sort.Slice(pitches, func(i, j int) bool { return pitches[i].Name < pitches[j].Name })
	return pitches
}

func (s *store) Pitch(id string) (booking.Pitch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.pitches[id]
	return p, ok
}

func (s *store) AddPitch(p booking.Pitch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if _, exists := s.pitches[p.ID]; exists {
		return booking.NewValidationError("pitch %s already exists", p.ID)
	}
	for _, existing := range s.pitches {
		if existing.Name == p.Name {
			return booking.NewValidationError("a pitch named %q already exists", p.Name)
		}
	}

	s.pitches[p.ID] = p
	s.persistPitchesLocked()
	log.Info("Added pitch to catalog", "pitchID", p.ID, "name", p.Name)
	return nil
}

// DeletePitch removes a pitch from the catalog. Deletion is blocked while
// any open or full reservation still references the pitch.
func (s *store) DeletePitch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pitches[id]; !exists {
		return booking.NewValidationError("pitch %s not found", id)
	}
	for _, r := range s.reservations {
		if r.PitchID != id {
			continue
		}
		switch r.Status {
		case booking.StatusOpen, booking.StatusFull:
			return booking.NewValidationError("pitch %s still has scheduled games", id)
		case booking.StatusCompleted, booking.StatusCancelled:
			// Historical games keep their pitch reference by name.
		}
	}

	delete(s.pitches, id)
	s.persistPitchesLocked()
	log.Info("Deleted pitch from catalog", "pitchID", id)
	return nil
}

func (s *store) ReplacePitches(pitches []booking.Pitch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pitches = make(map[string]booking.Pitch, len(pitches))
	for _, p := range pitches {
		s.pitches[p.ID] = p
	}
	s.persistPitchesLocked()
}

func (s *store) Reservations() []*booking.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reservationsLocked()
}

func (s *store) reservationsLocked() []*booking.Reservation {
	reservations := make([]*booking.Reservation, 0, len(s.reservations))
	for _, r := range s.reservations {
		reservations = append(reservations, r.Clone())
	}
	sort.Slice(reservations, func(i, j int) bool {
		if reservations[i].Date != reservations[j].Date {
			return reservations[i].Date < reservations[j].Date
		}
		if reservations[i].Time != reservations[j].Time {
			return reservations[i].Time < reservations[j].Time
		}
		return reservations[i].ID < reservations[j].ID
	})
	return reservations
}

func (s *store) Reservation(id string) (*booking.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, false
	}
	return r.Clone(), true
}

func (s *store) AddReservation(r *booking.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pitches[r.PitchID]; !ok {
		return booking.NewValidationError("unknown pitch %s", r.PitchID)
	}
	if r.MaxPlayers <= 0 {
		return booking.NewValidationError("max players must be positive")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if _, exists := s.reservations[r.ID]; exists {
		return booking.NewValidationError("reservation %s already exists", r.ID)
	}
	if r.Status == "" {
		r.Status = booking.StatusOpen
	}

	stored := r.Clone()
	stored.RecomputeStatus()
	s.reservations[stored.ID] = stored
	s.persistReservationsLocked()
	log.Info("Added reservation", "reservationID", stored.ID, "pitch", stored.PitchName, "date", stored.Date)
	return nil
}

func (s *store) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reservations[id]; !ok {
		return booking.NewValidationError("reservation %s not found", id)
	}
	delete(s.reservations, id)
	s.persistReservationsLocked()
	log.Info("Deleted reservation", "reservationID", id)
	return nil
}

// UpdateReservation applies mutate to a copy of the reservation under the
// store lock and commits it only when mutate succeeds. This is the seam
// that serializes concurrent mutations against the same reservation.
func (s *store) UpdateReservation(id string, mutate func(*booking.Reservation) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.reservations[id]
	if !ok {
		return booking.NewValidationError("reservation %s not found", id)
	}

	updated := current.Clone()
	if err := mutate(updated); err != nil {
		return err
	}

	s.reservations[id] = updated
	s.persistReservationsLocked()
	return nil
}

func (s *store) ReplaceReservations(reservations []*booking.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = make(map[string]*booking.Reservation, len(reservations))
	for _, r := range reservations {
		s.reservations[r.ID] = r.Clone()
	}
	s.persistReservationsLocked()
}

func (s *store) Suspension(userID string) (booking.Suspension, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	susp, ok := s.suspensions[userID]
	return susp, ok
}

func (s *store) Suspensions() []booking.Suspension {
	s.mu.RLock()
	defer s.mu.RUnlock()

	suspensions := make([]booking.Suspension, 0, len(s.suspensions))
	for _, susp := range s.suspensions {
		suspensions = append(suspensions, susp)
	}
	sort.Slice(suspensions, func(i, j int) bool { return suspensions[i].UserID < suspensions[j].UserID })
	return suspensions
}

// SetSuspension stores a suspension, replacing any prior record for the user.
func (s *store) SetSuspension(susp booking.Suspension) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suspensions[susp.UserID] = susp
	s.persistSuspensionsLocked()
}

func (s *store) RemoveSuspension(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.suspensions[userID]; !ok {
		return
	}
	delete(s.suspensions, userID)
	s.persistSuspensionsLocked()
}

func (s *store) ReplaceSuspensions(suspensions []booking.Suspension) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.suspensions = make(map[string]booking.Suspension, len(suspensions))
	for _, susp := range suspensions {
		s.suspensions[susp.UserID] = susp
	}
	s.persistSuspensionsLocked()
}

// Persistence is best-effort: failures are logged and counted, the
// in-memory state remains authoritative for the session.
func (s *store) persistPitchesLocked() {
	pitches := make([]booking.Pitch, 0, len(s.pitches))
	for _, p := range s.pitches {
		pitches = append(pitches, p)
	}
	sort.Slice(pitches, func(i, j int) bool { return pitches[i].ID < pitches[j].ID })
	if err := s.kv.Put(KeyPitches, pitches); err != nil {
		s.metrics.IncSnapshotWriteFailed()
		log.Warn("Failed to persist pitches snapshot", "error", err)
	}
}

func (s *store) persistReservationsLocked() {
	if err := s.kv.Put(KeyReservations, s.reservationsLocked()); err != nil {
		s.metrics.IncSnapshotWriteFailed()
		log.Warn("Failed to persist reservations snapshot", "error", err)
	}
}

func (s *store) persistSuspensionsLocked() {
	suspensions := make([]booking.Suspension, 0, len(s.suspensions))
	for _, susp := range s.suspensions {
		suspensions = append(suspensions, susp)
	}
	sort.Slice(suspensions, func(i, j int) bool { return suspensions[i].UserID < suspensions[j].UserID })
	if err := s.kv.Put(KeySuspensions, suspensions); err != nil {
		s.metrics.IncSnapshotWriteFailed()
		log.Warn("Failed to persist suspensions snapshot", "error", err)
	}
}
