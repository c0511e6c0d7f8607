package codec

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

var ErrMalformedToken = errors.New("malformed token")

type legacyPayload struct {
	TicketNumber  string `json:"ticketNumber"`
	EventID       string `json:"eventId"`
	ParticipantID string `json:"participantId"`
	IssuedAt      int64  `json:"issuedAt"`
}

// LegacyCodec reads and writes the base64(JSON) tokens printed on tickets
// issued before signed tokens. Anyone who knows a ticket number can forge one.
type LegacyCodec struct{}

func NewLegacyCodec() *LegacyCodec {
	return &LegacyCodec{}
}

func (c *LegacyCodec) Encode(p domain.TokenPayload) (string, error) {
	b, err := json.Marshal(legacyPayload{
		TicketNumber:  p.TicketNumber,
		EventID:       p.EventID.String(),
		ParticipantID: p.ParticipantID.String(),
		IssuedAt:      p.IssuedAt,
	})
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(b), nil
}

func (c *LegacyCodec) Decode(token string) (domain.TokenPayload, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	var lp legacyPayload
	if err := json.Unmarshal(raw, &lp); err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	return toPayload(lp.TicketNumber, lp.EventID, lp.ParticipantID, lp.IssuedAt)
}

func toPayload(ticketNumber, eventID, participantID string, issuedAt int64) (domain.TokenPayload, error) {
	if ticketNumber == "" {
		return domain.TokenPayload{}, fmt.Errorf("%w: missing ticket number", ErrMalformedToken)
	}

	eid, err := uuid.Parse(eventID)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: bad event id", ErrMalformedToken)
	}

	pid, err := uuid.Parse(participantID)
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: bad participant id", ErrMalformedToken)
	}

	return domain.TokenPayload{
		TicketNumber:  ticketNumber,
		EventID:       eid,
		ParticipantID: pid,
		IssuedAt:      issuedAt,
	}, nil
}
