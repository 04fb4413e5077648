package application

import (
	"sort"

	"github.com/milefashell/nostrstats/internal/domain"
	"github.com/milefashell/nostrstats/internal/ports"
)

type activityKey struct {
	identity domain.Identity
	relay    domain.Relay
}

// AggregateActivity reduces the event feed into per-(identity, relay)
// activity counts. Events authored by the subject are skipped, as are events
// from relays the subject does not own. The reduction is commutative, so feed
// order never changes the counts; LastSeen always keeps the maximum
// timestamp. Draining stops when the channel closes, which makes a cancelled
// (truncated) feed yield a valid partial result.
func AggregateActivity(subject domain.Identity, owned domain.RelaySet, feed <-chan ports.RawEvent) []domain.ActivityRecord {
	tally := make(map[activityKey]*domain.ActivityRecord)

	for event := range feed {
		if event.Author == subject || !owned.Has(event.Relay) {
			continue
		}

		key := activityKey{identity: event.Author, relay: event.Relay}
		record, ok := tally[key]
		if !ok {
			record = &domain.ActivityRecord{Identity: event.Author, Relay: event.Relay}
			tally[key] = record
		}
		record.EventCount++
		if event.CreatedAt.After(record.LastSeen) {
			record.LastSeen = event.CreatedAt
		}
	}

	records := make([]domain.ActivityRecord, 0, len(tally))
	for _, record := range tally {
		records = append(records, *record)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].EventCount != records[j].EventCount {
			return records[i].EventCount > records[j].EventCount
		}
		if records[i].Identity != records[j].Identity {
			return records[i].Identity < records[j].Identity
		}
		return records[i].Relay < records[j].Relay
	})

	return records
}
