package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidToken = errors.New("invalid verification token")
	ErrInvalidState = errors.New("invalid ticket state")
	ErrExpired      = errors.New("ticket expired")
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateTicketNumber is returned by stores when a ticket number is
	// already taken.
	ErrDuplicateTicketNumber = errors.New("duplicate ticket number")

	// ErrStatusConflict is returned by stores when a conditional status update
	// matched no row because the ticket is no longer valid.
	ErrStatusConflict = errors.New("ticket status changed by another operation")
)

// TicketError carries the ticket a rejected operation was attempted on, so
// callers can explain the rejection.
type TicketError struct {
	Kind   error
	Status TicketStatus
	Ticket *Ticket
	Msg    string
}

func (e *TicketError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: ticket is %s", e.Kind, e.Status)
}

func (e *TicketError) Unwrap() error {
	return e.Kind
}

func NewInvalidStateError(t *Ticket, msg string) *TicketError {
	return &TicketError{Kind: ErrInvalidState, Status: t.Status, Ticket: t, Msg: msg}
}

func NewExpiredError(t *Ticket) *TicketError {
	return &TicketError{Kind: ErrExpired, Status: t.Status, Ticket: t, Msg: "ticket expired: check-in window has closed"}
}

// AsTicketError extracts a *TicketError from err's chain.
func AsTicketError(err error) (*TicketError, bool) {
	var te *TicketError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}
