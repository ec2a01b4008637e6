package booking

import "time"

// Status is the lifecycle state of a reservation. It is a closed set; every
// switch over it must handle all four values.
type Status string

const (
	StatusOpen      Status = "open"
	StatusFull      Status = "full"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PlayerStatus is the state of a single lineup entry.
type PlayerStatus string

const (
	PlayerJoined  PlayerStatus = "joined"
	PlayerLeft    PlayerStatus = "left"
	PlayerInvited PlayerStatus = "invited"
)

// HighlightType categorises a game highlight.
type HighlightType string

const (
	HighlightGoal       HighlightType = "goal"
	HighlightAssist     HighlightType = "assist"
	HighlightYellowCard HighlightType = "yellowCard"
	HighlightRedCard    HighlightType = "redCard"
	HighlightSave       HighlightType = "save"
	HighlightOther      HighlightType = "other"
)

// Role gates which orchestrator actions an actor may perform.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

const (
	// BufferSlots is the over-booking cushion beyond MaxPlayers that absorbs
	// no-shows before a join is hard-blocked.
	BufferSlots = 2
	// MaxWaitingList is the upper bound on queued players per reservation.
	MaxWaitingList = 3
	// PenaltyWindow is the period before kick-off during which leaving is
	// flagged as penalty-eligible.
	PenaltyWindow = 2 * time.Hour
)

// Pitch is a bookable venue. Immutable once reservations reference it.
type Pitch struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	City           string   `json:"city"`
	PricePerHour   float64  `json:"price_per_hour"`
	PlayersPerSide int      `json:"players_per_side"`
	Facilities     []string `json:"facilities"`
}

// LineupPlayer is a single roster entry. Historical "left" entries may be
// retained for audit; only "joined" entries count towards capacity.
type LineupPlayer struct {
	UserID     string       `json:"user_id"`
	Status     PlayerStatus `json:"status"`
	JoinedAt   int64        `json:"joined_at"`
	PlayerName string       `json:"player_name"`
}

// Highlight is a notable event in a played game, owned by its reservation.
type Highlight struct {
	ID          string        `json:"id"`
	Type        HighlightType `json:"type"`
	PlayerID    string        `json:"player_id"`
	PlayerName  string        `json:"player_name"`
	Minute      int           `json:"minute"`
	Description string        `json:"description,omitempty"`
	IsPenalty   bool          `json:"is_penalty,omitempty"`
}

// Suspension is a time-bounded ban. At most one exists per user.
type Suspension struct {
	UserID string `json:"user_id"`
	Until  int64  `json:"until"`
	Reason string `json:"reason"`
}

// Active reports whether the suspension is still in force at the given time.
func (s Suspension) Active(now time.Time) bool {
	return now.Unix() < s.Until
}

// Reservation is a scheduled game on a pitch.
type Reservation struct {
	ID          string         `json:"id"`
	PitchID     string         `json:"pitch_id"`
	PitchName   string         `json:"pitch_name"`
	Date        string         `json:"date"` // calendar day, YYYY-MM-DD
	Time        string         `json:"time"` // slot label, e.g. "20:00 - 21:00"
	Status      Status         `json:"status"`
	MaxPlayers  int            `json:"max_players"`
	Lineup      []LineupPlayer `json:"lineup"`
	WaitingList []string       `json:"waiting_list"`
	Price       float64        `json:"price"`
	FinalScore  string         `json:"final_score,omitempty"`
	MVPPlayerID string         `json:"mvp_player_id,omitempty"`
	Highlights  []Highlight    `json:"highlights,omitempty"`
}

// JoinedCount returns the number of lineup entries currently occupying a seat.
func (r *Reservation) JoinedCount() int {
	count := 0
	for _, p := range r.Lineup {
		if p.Status == PlayerJoined {
			count++
		}
	}
	return count
}

// HasJoined reports whether the user currently holds a joined seat.
func (r *Reservation) HasJoined(userID string) bool {
	for _, p := range r.Lineup {
		if p.UserID == userID && p.Status == PlayerJoined {
			return true
		}
	}
	return false
}

// OnWaitingList reports whether the user is queued for a seat.
func (r *Reservation) OnWaitingList(userID string) bool {
	for _, id := range r.WaitingList {
		if id == userID {
			return true
		}
	}
	return false
}

// RecomputeStatus derives open/full from the joined count. Completed and
// cancelled are terminal and are never changed here.
func (r *Reservation) RecomputeStatus() {
	switch r.Status {
	case StatusCompleted, StatusCancelled:
		return
	case StatusOpen, StatusFull:
		if r.JoinedCount() >= r.MaxPlayers {
			r.Status = StatusFull
		} else {
			r.Status = StatusOpen
		}
	}
}

// Clone returns a deep copy so the store never hands out shared slices.
func (r *Reservation) Clone() *Reservation {
	out := *r
	out.Lineup = append([]LineupPlayer(nil), r.Lineup...)
	out.WaitingList = append([]string(nil), r.WaitingList...)
	out.Highlights = append([]Highlight(nil), r.Highlights...)
	return &out
}
