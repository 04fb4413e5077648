package relay

import (
	"fmt"
	"strings"

	"github.com/milefashell/nostrstats/internal/domain"
	"github.com/nbd-wtf/go-nostr/nip19"
)

// DecodeIdentity accepts a public key as either an npub or a 64-character hex
// string and returns the hex identity the rest of the system works with.
func DecodeIdentity(input string) (domain.Identity, error) {
	trimmed := strings.TrimSpace(input)

	if strings.HasPrefix(trimmed, "npub") {
		prefix, value, err := nip19.Decode(trimmed)
		if err != nil {
			return "", fmt.Errorf("decode npub: %w", err)
		}
		if prefix != "npub" {
			return "", fmt.Errorf("decode npub: unexpected prefix %q", prefix)
		}
		hex, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("decode npub: unexpected payload type %T", value)
		}
		return domain.Identity(hex), nil
	}

	if len(trimmed) != 64 || !isLowerHex(strings.ToLower(trimmed)) {
		return "", fmt.Errorf("public key must be an npub or 64 hex characters, got %q", input)
	}

	return domain.Identity(strings.ToLower(trimmed)), nil
}

func isLowerHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
