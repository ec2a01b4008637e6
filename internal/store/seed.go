package store

import (
	"time"

	"github.com/mauv0809/pitchside/internal/booking"
)

// seedPitches is the fixed initial catalog used when no snapshot exists.
func seedPitches() []booking.Pitch {
	return []booking.Pitch{
		{
			ID:             "pitch-camp-nou",
			Name:           "Camp Nou Five-a-Side",
			Location:       "12 Riverside Park",
			City:           "Manchester",
			PricePerHour:   60,
			PlayersPerSide: 5,
			Facilities:     []string{"floodlights", "parking", "changing rooms"},
		},
		{
			ID:             "pitch-old-quarter",
			Name:           "Old Quarter Arena",
			Location:       "3 Mill Lane",
			City:           "Manchester",
			PricePerHour:   80,
			PlayersPerSide: 7,
			Facilities:     []string{"floodlights", "cafe"},
		},
		{
			ID:             "pitch-south-dome",
			Name:           "South Dome",
			Location:       "48 Victoria Road",
			City:           "Salford",
			PricePerHour:   100,
			PlayersPerSide: 11,
			Facilities:     []string{"indoor", "parking", "changing rooms", "showers"},
		},
	}
}

// seedReservations builds the fixed initial schedule relative to now so a
// fresh install always starts with upcoming games.
func seedReservations(now time.Time) []*booking.Reservation {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []*booking.Reservation{
		{
			ID:         "res-seed-1",
			PitchID:    "pitch-camp-nou",
			PitchName:  "Camp Nou Five-a-Side",
			Date:       day(1),
			Time:       "19:00 - 20:00",
			Status:     booking.StatusOpen,
			MaxPlayers: 10,
			Price:      60,
		},
		{
			ID:         "res-seed-2",
			PitchID:    "pitch-old-quarter",
			PitchName:  "Old Quarter Arena",
			Date:       day(2),
			Time:       "20:00 - 21:00",
			Status:     booking.StatusOpen,
			MaxPlayers: 14,
			Price:      80,
		},
		{
			ID:         "res-seed-3",
			PitchID:    "pitch-south-dome",
			PitchName:  "South Dome",
			Date:       day(3),
			Time:       "18:00 - 19:30",
			Status:     booking.StatusOpen,
			MaxPlayers: 22,
			Price:      100,
		},
	}
}
