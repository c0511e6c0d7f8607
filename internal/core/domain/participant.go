package domain

import (
	"time"

	"github.com/google/uuid"
)

type Participant struct {
	ID          uuid.UUID  `json:"id"`
	EventID     uuid.UUID  `json:"event_id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	TicketID    *uuid.UUID `json:"ticket_id,omitempty"`
	CheckedIn   bool       `json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
}

type Event struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}
