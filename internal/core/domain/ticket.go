package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TicketStatus string

const (
	TicketValid     TicketStatus = "valid"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
	TicketExpired   TicketStatus = "expired"
)

// CheckInGracePeriod is how long after the event date a valid ticket can
// still be redeemed.
const CheckInGracePeriod = 24 * time.Hour

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Ticket struct {
	ID                uuid.UUID       `json:"id"`
	TicketNumber      string          `json:"ticket_number"`
	VerificationToken string          `json:"verification_token"`
	ParticipantID     uuid.UUID       `json:"participant_id"`
	EventID           uuid.UUID       `json:"event_id"`
	TicketType        string          `json:"ticket_type"`
	Price             decimal.Decimal `json:"price"`
	Status            TicketStatus    `json:"status"`
	CheckInTime       *time.Time      `json:"check_in_time,omitempty"`
	CheckInBy         *uuid.UUID      `json:"check_in_by,omitempty"`
	CheckInLocation   *GeoPoint       `json:"check_in_location,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

func (t *Ticket) IsValid() bool {
	return t.Status == TicketValid
}

func (t *Ticket) IsTerminal() bool {
	return t.Status == TicketUsed || t.Status == TicketCancelled || t.Status == TicketExpired
}

// ExpiredAt reports whether a check-in at now falls outside the grace window
// that follows eventDate.
func ExpiredAt(eventDate, now time.Time) bool {
	return now.Sub(eventDate) > CheckInGracePeriod
}

// TokenPayload is the data carried by a verification token.
type TokenPayload struct {
	TicketNumber  string
	EventID       uuid.UUID
	ParticipantID uuid.UUID
	IssuedAt      int64 // epoch millis
}

// CheckIn describes a successful redemption to be recorded on a ticket.
type CheckIn struct {
	Time     time.Time
	By       uuid.UUID
	Location *GeoPoint
}
