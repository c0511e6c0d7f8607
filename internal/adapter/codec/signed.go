package codec

import (
	"errors"
	"fmt"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/setu-events/ticket-service/internal/core/domain"
)

const tokenIssuer = "setu-tickets"

type ticketClaims struct {
	TicketNumber  string `json:"ticket_number"`
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	IssuedAt      int64  `json:"issued_at"`
	jwtv5.RegisteredClaims
}

// SignedCodec issues HS256 tokens. They carry no expiry: the check-in grace
// window is enforced against the event date, not the token.
type SignedCodec struct {
	secret []byte
}

func NewSignedCodec(secret string) *SignedCodec {
	return &SignedCodec{secret: []byte(secret)}
}

func (c *SignedCodec) Encode(p domain.TokenPayload) (string, error) {
	claims := ticketClaims{
		TicketNumber:  p.TicketNumber,
		EventID:       p.EventID.String(),
		ParticipantID: p.ParticipantID.String(),
		IssuedAt:      p.IssuedAt,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:  tokenIssuer,
			Subject: p.TicketNumber,
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *SignedCodec) Decode(token string) (domain.TokenPayload, error) {
	parsed, err := jwtv5.ParseWithClaims(token, &ticketClaims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return c.secret, nil
	}, jwtv5.WithIssuer(tokenIssuer))
	if err != nil {
		return domain.TokenPayload{}, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims, ok := parsed.Claims.(*ticketClaims)
	if !ok || !parsed.Valid {
		return domain.TokenPayload{}, ErrMalformedToken
	}

	return toPayload(claims.TicketNumber, claims.EventID, claims.ParticipantID, claims.IssuedAt)
}
