// Package gameid generates sortable game identifiers: a UUIDv7 encoded as
// a 26-character Crockford base32 string, the TypeID suffix format.
package gameid

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

const encodedLen = 26

// Generate creates a game ID from crypto/rand.
func Generate() string {
	return Encode(uuid.Must(uuid.NewV7()))
}

// New creates a game ID whose random bits are read from r. Seeded games pass
// their own source so replays share everything but the timestamp.
func New(r io.Reader) (string, error) {
	id, err := uuid.NewV7FromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are
// left-padded with two zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	var out [encodedLen]byte
	for i := encodedLen - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

// Parse decodes a game ID back into its UUID.
func Parse(id string) (uuid.UUID, error) {
	if err := Validate(id); err != nil {
		return uuid.Nil, err
	}

	var hi, lo uint64
	for i := 0; i < encodedLen; i++ {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}

	var u uuid.UUID
	binary.BigEndian.PutUint64(u[:8], hi)
	binary.BigEndian.PutUint64(u[8:], lo)
	return u, nil
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != encodedLen {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", encodedLen, len(id))
	}

	// Check first character doesn't exceed 7 (to ensure it represents ≤ 128 bits)
	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}
	return nil
}
