package domain

import "sort"

// RelayUsage is one row of the follower relay ranking.
type RelayUsage struct {
	Relay         Relay
	FollowerCount int
}

// RelayRanking lists every relay appearing in any follower's set, ordered by
// follower count descending, ties broken by canonical relay string ascending.
type RelayRanking []RelayUsage

// CoverageResult is the outcome of the minimum-relay computation. Uncovered
// holds followers that declared no relays at all and therefore cannot be
// reached through any selection.
type CoverageResult struct {
	SelectedRelays []Relay
	Uncovered      []Identity
}

// RankRelays tallies, for every relay, the number of distinct followers whose
// set contains it. The tally is exact; only the covering-set computation
// below is approximate.
func RankRelays(followers []FollowerRecord) RelayRanking {
	counts := make(map[Relay]int)
	for _, follower := range followers {
		for relay := range follower.Relays {
			counts[relay]++
		}
	}

	ranking := make(RelayRanking, 0, len(counts))
	for relay, count := range counts {
		ranking = append(ranking, RelayUsage{Relay: relay, FollowerCount: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].FollowerCount != ranking[j].FollowerCount {
			return ranking[i].FollowerCount > ranking[j].FollowerCount
		}
		return ranking[i].Relay < ranking[j].Relay
	})

	return ranking
}

// CoverFollowers computes a small relay subset such that every follower with
// a non-empty relay set is reachable on at least one selected relay.
//
// Exact minimum set cover is NP-hard, so this uses the standard greedy
// approximation: repeatedly pick the relay covering the most still-uncovered
// followers. Ties resolve by global follower count descending, then canonical
// relay string ascending, which makes the output order fully deterministic.
func CoverFollowers(followers []FollowerRecord) CoverageResult {
	result := CoverageResult{
		SelectedRelays: []Relay{},
		Uncovered:      []Identity{},
	}

	remaining := make([]FollowerRecord, 0, len(followers))
	for _, follower := range followers {
		if len(follower.Relays) == 0 {
			result.Uncovered = append(result.Uncovered, follower.Identity)
			continue
		}
		remaining = append(remaining, follower)
	}
	sort.Slice(result.Uncovered, func(i, j int) bool { return result.Uncovered[i] < result.Uncovered[j] })

	globalRank := make(map[Relay]int)
	for i, usage := range RankRelays(followers) {
		globalRank[usage.Relay] = i
	}

	for len(remaining) > 0 {
		counts := make(map[Relay]int)
		for _, follower := range remaining {
			for relay := range follower.Relays {
				counts[relay]++
			}
		}

		var best Relay
		bestCount := 0
		for relay, count := range counts {
			switch {
			case count > bestCount:
				best, bestCount = relay, count
			case count == bestCount && globalRank[relay] < globalRank[best]:
				best = relay
			}
		}

		result.SelectedRelays = append(result.SelectedRelays, best)

		next := remaining[:0]
		for _, follower := range remaining {
			if !follower.Relays.Has(best) {
				next = append(next, follower)
			}
		}
		remaining = next
	}

	return result
}
