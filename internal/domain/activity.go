package domain

import "time"

// ActivityRecord is the aggregated activity of one identity on one relay.
// Exactly one record exists per (identity, relay) pair after aggregation.
type ActivityRecord struct {
	Identity   Identity
	Relay      Relay
	EventCount int64
	LastSeen   time.Time
}
