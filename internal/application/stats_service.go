package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milefashell/nostrstats/internal/domain"
	"github.com/milefashell/nostrstats/internal/ports"
)

var ErrNoStatisticsSelected = errors.New("no statistics selected")

// StatsOptions selects which of the three statistics to compute. Since
// bounds the activity scan; the zero value scans the whole feed.
type StatsOptions struct {
	Activity bool
	Coverage bool
	Ranking  bool
	Since    time.Time
}

func DefaultStatsOptions() StatsOptions {
	return StatsOptions{Activity: true, Coverage: true, Ranking: true}
}

// StatsService computes the statistics report for one identity. Each
// invocation allocates its own directory and tallies, so one service value
// can serve concurrent requests.
type StatsService struct {
	client ports.RelayClient
	clock  ports.Clock
}

func NewStatsService(client ports.RelayClient, clock ports.Clock) *StatsService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &StatsService{client: client, clock: clock}
}

// ComputeStatistics produces the full report: follower activity on the
// subject's own relays, the minimum necessary relay cover, and the follower
// relay ranking.
func (s *StatsService) ComputeStatistics(ctx context.Context, id domain.Identity) (Report, error) {
	return s.ComputeStatisticsWith(ctx, id, DefaultStatsOptions())
}

func (s *StatsService) ComputeStatisticsWith(ctx context.Context, id domain.Identity, opts StatsOptions) (Report, error) {
	if !opts.Activity && !opts.Coverage && !opts.Ranking {
		return Report{}, ErrNoStatisticsSelected
	}

	directory := domain.NewDirectory()

	var (
		followers []domain.FollowerRecord
		coverage  domain.CoverageResult
		ranking   domain.RelayRanking
		activity  []domain.ActivityRecord
	)

	if opts.Coverage || opts.Ranking {
		resolver := NewFollowerResolver(s.client)
		resolved, err := resolver.ResolveFollowers(ctx, id)
		if err != nil {
			return Report{}, err
		}
		followers = resolved

		// Coverage ties break on the global ranking, so the ranking is
		// computed whenever the cover is.
		ranking = domain.RankRelays(followers)
		if opts.Coverage {
			coverage = domain.CoverFollowers(followers)
		}
	}

	if opts.Activity {
		owned, err := s.ownedRelays(ctx, id, directory)
		if err != nil {
			return Report{}, err
		}

		feed, err := s.client.FetchEvents(ctx, id, owned.Sorted(), opts.Since)
		if err != nil {
			return Report{}, fmt.Errorf("fetch events: %w", err)
		}
		activity = AggregateActivity(id, owned, feed)
	}

	report, err := BuildReport(activity, coverage, ranking)
	if err != nil {
		return Report{}, err
	}
	if !opts.Ranking {
		report.Ranking = nil
	}

	report.RunID = uuid.NewString()
	report.Subject = id
	report.GeneratedAt = s.clock.Now()

	return report, nil
}

func (s *StatsService) ownedRelays(ctx context.Context, id domain.Identity, directory *domain.Directory) (domain.RelaySet, error) {
	rawURLs, err := s.client.FetchOwnRelays(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch own relays: %w", err)
	}

	for _, raw := range rawURLs {
		relay, err := domain.NormalizeRelayURL(raw)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidRelayURL) {
				continue
			}
			return nil, err
		}
		directory.MarkOwned(id, relay)
	}

	return directory.OwnedRelays(id), nil
}
