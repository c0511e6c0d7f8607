package codec

import (
	"fmt"

	"github.com/setu-events/ticket-service/internal/core/ports"
)

const (
	KindSigned = "signed"
	KindLegacy = "legacy"
)

func New(kind, secret string) (ports.TokenCodec, error) {
	switch kind {
	case KindSigned, "":
		return NewSignedCodec(secret), nil
	case KindLegacy:
		return NewLegacyCodec(), nil
	default:
		return nil, fmt.Errorf("unknown token codec %q", kind)
	}
}
