package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/milefashell/nostrstats/internal/domain"
	"github.com/milefashell/nostrstats/internal/ports"
)

// FollowerResolver turns raw follower listings from the network into
// normalized FollowerRecords. Malformed relay URLs are dropped from the
// follower's set; the follower itself is never dropped, so one that declared
// only garbage URLs still surfaces as unreachable downstream.
type FollowerResolver struct {
	client ports.RelayClient
}

func NewFollowerResolver(client ports.RelayClient) *FollowerResolver {
	return &FollowerResolver{client: client}
}

func (r *FollowerResolver) ResolveFollowers(ctx context.Context, id domain.Identity) ([]domain.FollowerRecord, error) {
	listings, err := r.client.FetchFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch followers: %w", err)
	}

	records := make([]domain.FollowerRecord, 0, len(listings))
	for _, listing := range listings {
		record := domain.FollowerRecord{
			Identity: listing.Identity,
			Relays:   domain.NewRelaySet(),
		}
		for _, raw := range listing.RelayURLs {
			relay, err := domain.NormalizeRelayURL(raw)
			if err != nil {
				if errors.Is(err, domain.ErrInvalidRelayURL) {
					continue
				}
				return nil, err
			}
			record.Relays.Add(relay)
		}
		records = append(records, record)
	}

	return domain.MergeFollowerRecords(records), nil
}
