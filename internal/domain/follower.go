package domain

import "sort"

// FollowerRecord holds the relays one follower is reachable on. A follower
// whose relay declaration was missing or empty keeps an empty set; the
// coverage engine reports it as uncovered instead of dropping it.
type FollowerRecord struct {
	Identity Identity
	Relays   RelaySet
}

// MergeFollowerRecords collapses duplicate entries for the same identity by
// unioning their relay sets. Paginated fetches routinely surface the same
// follower more than once. Output is sorted by identity so the result is
// reproducible.
func MergeFollowerRecords(records []FollowerRecord) []FollowerRecord {
	byIdentity := make(map[Identity]RelaySet, len(records))
	for _, record := range records {
		set, ok := byIdentity[record.Identity]
		if !ok {
			set = NewRelaySet()
			byIdentity[record.Identity] = set
		}
		set.Union(record.Relays)
	}

	merged := make([]FollowerRecord, 0, len(byIdentity))
	for identity, relays := range byIdentity {
		merged = append(merged, FollowerRecord{Identity: identity, Relays: relays})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Identity < merged[j].Identity })

	return merged
}
