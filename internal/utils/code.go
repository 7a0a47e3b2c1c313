package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// confirmationAlphabet excludes easily confused characters (0/O, 1/I)
// so codes survive being read aloud at a box office counter.
const confirmationAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// NewConfirmationCode mints an opaque booking confirmation identifier
// of the form "TB<millis><4 random chars>".  The timestamp keeps codes
// roughly sortable and human-recognizable; the random suffix makes
// same-millisecond collisions practically impossible.  Codes are safe
// to embed in a URL path segment.
func NewConfirmationCode() (string, error) {
	suffix := make([]byte, 4)
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = confirmationAlphabet[n.Int64()]
	}
	return fmt.Sprintf("TB%d%s", time.Now().UTC().UnixMilli(), suffix), nil
}
