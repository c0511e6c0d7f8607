package domain

import "github.com/google/uuid"

type CheckInStats struct {
	EventID     uuid.UUID `json:"event_id"`
	Total       int       `json:"total"`
	Used        int       `json:"used"`
	Valid       int       `json:"valid"`
	Cancelled   int       `json:"cancelled"`
	Expired     int       `json:"expired"`
	CheckInRate float64   `json:"check_in_rate"`
	// HourlyCheckIns is indexed by hour of day (0-23) and only counts
	// check-ins from the last 24 hours.
	HourlyCheckIns [24]int `json:"hourly_check_ins"`
}

// NewCheckInStats builds stats from per-status counts.
func NewCheckInStats(eventID uuid.UUID, counts map[TicketStatus]int) *CheckInStats {
	s := &CheckInStats{
		EventID:   eventID,
		Used:      counts[TicketUsed],
		Valid:     counts[TicketValid],
		Cancelled: counts[TicketCancelled],
		Expired:   counts[TicketExpired],
	}

	for _, n := range counts {
		s.Total += n
	}

	if s.Total > 0 {
		s.CheckInRate = float64(s.Used) / float64(s.Total) * 100
	}

	return s
}
