package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"time"
)

const (
	ticketNumberCharset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	ticketNumberSuffixSize = 6
)

var ticketNumberPattern = regexp.MustCompile(`^TKT-\d{6}-[A-Z0-9]{6}$`)

// GenerateTicketNumber returns TKT-<YYYYMM>-<6 uppercase alphanumerics>.
func GenerateTicketNumber(now time.Time) (string, error) {
	max := big.NewInt(int64(len(ticketNumberCharset)))
	suffix := make([]byte, ticketNumberSuffixSize)

	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate ticket number: %w", err)
		}
		suffix[i] = ticketNumberCharset[n.Int64()]
	}

	return fmt.Sprintf("TKT-%04d%02d-%s", now.Year(), int(now.Month()), suffix), nil
}

func IsTicketNumber(s string) bool {
	return ticketNumberPattern.MatchString(s)
}
