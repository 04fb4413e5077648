package ports

import (
	"context"
	"time"

	"github.com/milefashell/nostrstats/internal/domain"
)

// RawEvent is one event as it arrived from the network, tagged with the relay
// it was read from. Boundary type: not yet validated beyond decoding.
type RawEvent struct {
	Author    domain.Identity
	Relay     domain.Relay
	Kind      int
	CreatedAt time.Time
}

// FollowerListing pairs a follower identity with the relay URLs it declared,
// still raw and unnormalized.
type FollowerListing struct {
	Identity  domain.Identity
	RelayURLs []string
}

// RelayClient is the network collaborator. Implementations absorb per-relay
// failures (unreachable, timeout) and return whatever subset of the data
// responded; partial results are expected, not fatal.
type RelayClient interface {
	// FetchOwnRelays returns the relay URLs the identity declares as its own
	// write targets.
	FetchOwnRelays(ctx context.Context, id domain.Identity) ([]string, error)

	// FetchFollowers returns every identity declaring a follow relationship
	// toward id, each with its declared relay URLs. Duplicate listings for
	// one identity are allowed.
	FetchFollowers(ctx context.Context, id domain.Identity) ([]FollowerListing, error)

	// FetchEvents streams events mentioning the subject from the given
	// relays. The channel closes when all relays are drained or ctx is
	// cancelled; a truncated feed is a valid feed.
	FetchEvents(ctx context.Context, subject domain.Identity, relays []domain.Relay, since time.Time) (<-chan RawEvent, error)
}
