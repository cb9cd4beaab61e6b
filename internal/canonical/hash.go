package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content hashes. The version suffix leaves room for
// a future algorithm change without colliding with old fingerprints.
const (
	DomainSettings = "albwlogic/settings/v1"
	DomainWorld    = "albwlogic/world/v1"
)

// Hash computes SHA256(domain || 0x00 || canonical(v)) as lowercase hex.
func Hash(domain string, v any) (string, error) {
	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", domain, err)
	}
	return HashBytes(domain, data), nil
}

// HashBytes hashes already-canonical bytes with domain separation.
func HashBytes(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
