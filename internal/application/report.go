package application

import (
	"fmt"
	"time"

	"github.com/milefashell/nostrstats/internal/domain"
)

// Report is the core's whole output contract: the three statistics plus run
// metadata. It carries no formatting responsibility.
type Report struct {
	RunID       string
	Subject     domain.Identity
	GeneratedAt time.Time
	Activity    []domain.ActivityRecord
	Coverage    domain.CoverageResult
	Ranking     domain.RelayRanking
}

// BuildReport assembles the three statistics without transforming them. It
// fails with ErrInconsistentState when the inputs cannot have come from one
// consistent computation, which indicates a caller bug rather than bad
// network data.
func BuildReport(activity []domain.ActivityRecord, coverage domain.CoverageResult, ranking domain.RelayRanking) (Report, error) {
	ranked := domain.NewRelaySet()
	for _, usage := range ranking {
		ranked.Add(usage.Relay)
	}

	for _, relay := range coverage.SelectedRelays {
		if !ranked.Has(relay) {
			return Report{}, fmt.Errorf("%w: selected relay %q missing from ranking", domain.ErrInconsistentState, relay)
		}
	}

	return Report{
		Activity: activity,
		Coverage: coverage,
		Ranking:  ranking,
	}, nil
}
