package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/milefashell/nostrstats/internal/domain"
	"github.com/milefashell/nostrstats/internal/ports"
	"github.com/milefashell/nostrstats/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStatisticsFullReport(t *testing.T) {
	now := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)

	client := mocks.NewMockRelayClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(now)

	client.EXPECT().FetchFollowers(mockAnyContext(), domain.Identity("subject")).Return([]ports.FollowerListing{
		{Identity: "a", RelayURLs: []string{"wss://r1", "wss://r2"}},
		{Identity: "b", RelayURLs: []string{"wss://r2", "wss://r3"}},
		{Identity: "c", RelayURLs: []string{"wss://r3"}},
	}, nil)
	client.EXPECT().FetchOwnRelays(mockAnyContext(), domain.Identity("subject")).Return([]string{"wss://own1", "wss://own2/"}, nil)
	client.EXPECT().FetchEvents(mockAnyContext(), domain.Identity("subject"), []domain.Relay{"wss://own1", "wss://own2"}, time.Time{}).Return(feedOf(
		ports.RawEvent{Author: "x", Relay: "wss://own1", CreatedAt: at(1)},
		ports.RawEvent{Author: "x", Relay: "wss://own1", CreatedAt: at(5)},
		ports.RawEvent{Author: "subject", Relay: "wss://own1", CreatedAt: at(9)},
	), nil)

	service := NewStatsService(client, clock)
	rep, err := service.ComputeStatistics(context.Background(), "subject")
	require.NoError(t, err)

	assert.Equal(t, domain.Identity("subject"), rep.Subject)
	assert.Equal(t, now, rep.GeneratedAt)
	assert.NotEmpty(t, rep.RunID)

	require.Len(t, rep.Activity, 1)
	assert.Equal(t, int64(2), rep.Activity[0].EventCount)
	assert.Equal(t, at(5), rep.Activity[0].LastSeen)

	assert.Equal(t, []domain.Relay{"wss://r2", "wss://r3"}, rep.Coverage.SelectedRelays)
	assert.Empty(t, rep.Coverage.Uncovered)

	require.Len(t, rep.Ranking, 3)
	assert.Equal(t, domain.RelayUsage{Relay: "wss://r2", FollowerCount: 2}, rep.Ranking[0])
}

func TestComputeStatisticsCoverageOnlySkipsEventFetch(t *testing.T) {
	client := mocks.NewMockRelayClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0))

	client.EXPECT().FetchFollowers(mockAnyContext(), domain.Identity("subject")).Return([]ports.FollowerListing{
		{Identity: "a", RelayURLs: []string{"wss://r1"}},
	}, nil)

	service := NewStatsService(client, clock)
	rep, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{Coverage: true, Ranking: true})
	require.NoError(t, err)

	assert.Nil(t, rep.Activity)
	assert.Equal(t, []domain.Relay{"wss://r1"}, rep.Coverage.SelectedRelays)
}

func TestComputeStatisticsActivityOnlySkipsFollowerFetch(t *testing.T) {
	client := mocks.NewMockRelayClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0))

	client.EXPECT().FetchOwnRelays(mockAnyContext(), domain.Identity("subject")).Return([]string{"wss://own1"}, nil)
	client.EXPECT().FetchEvents(mockAnyContext(), domain.Identity("subject"), []domain.Relay{"wss://own1"}, time.Time{}).Return(feedOf(), nil)

	service := NewStatsService(client, clock)
	rep, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{Activity: true})
	require.NoError(t, err)

	assert.Empty(t, rep.Activity)
	assert.Nil(t, rep.Coverage.SelectedRelays)
	assert.Nil(t, rep.Ranking)
}

func TestComputeStatisticsInvalidOwnRelaysAreDropped(t *testing.T) {
	client := mocks.NewMockRelayClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0))

	client.EXPECT().FetchOwnRelays(mockAnyContext(), domain.Identity("subject")).Return([]string{"garbage", "wss://own1"}, nil)
	client.EXPECT().FetchEvents(mockAnyContext(), domain.Identity("subject"), []domain.Relay{"wss://own1"}, time.Time{}).Return(feedOf(), nil)

	service := NewStatsService(client, clock)
	_, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{Activity: true})
	require.NoError(t, err)
}

func TestComputeStatisticsSincePassedThrough(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	client := mocks.NewMockRelayClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0))

	client.EXPECT().FetchOwnRelays(mockAnyContext(), domain.Identity("subject")).Return([]string{"wss://own1"}, nil)
	client.EXPECT().FetchEvents(mockAnyContext(), domain.Identity("subject"), []domain.Relay{"wss://own1"}, since).Return(feedOf(), nil)

	service := NewStatsService(client, clock)
	_, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{Activity: true, Since: since})
	require.NoError(t, err)
}

func TestComputeStatisticsNoStatisticsSelected(t *testing.T) {
	service := NewStatsService(mocks.NewMockRelayClient(t), mocks.NewMockClock(t))

	_, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoStatisticsSelected)
}

func TestComputeStatisticsFollowerFetchErrorAborts(t *testing.T) {
	client := mocks.NewMockRelayClient(t)
	client.EXPECT().FetchFollowers(mockAnyContext(), domain.Identity("subject")).Return(nil, errors.New("boom"))

	service := NewStatsService(client, mocks.NewMockClock(t))
	_, err := service.ComputeStatistics(context.Background(), "subject")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch followers")
}

func TestComputeStatisticsEventFetchErrorAborts(t *testing.T) {
	client := mocks.NewMockRelayClient(t)
	client.EXPECT().FetchOwnRelays(mockAnyContext(), domain.Identity("subject")).Return([]string{"wss://own1"}, nil)
	client.EXPECT().FetchEvents(mockAnyContext(), domain.Identity("subject"), []domain.Relay{"wss://own1"}, time.Time{}).Return(nil, errors.New("boom"))

	service := NewStatsService(client, mocks.NewMockClock(t))
	_, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{Activity: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch events")
}

func TestComputeStatisticsEmptyFollowerRelaysGrowUncovered(t *testing.T) {
	client := mocks.NewMockRelayClient(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Unix(0, 0))

	client.EXPECT().FetchFollowers(mockAnyContext(), domain.Identity("subject")).Return([]ports.FollowerListing{
		{Identity: "a"},
		{Identity: "b", RelayURLs: []string{"wss://r1"}},
	}, nil)

	service := NewStatsService(client, clock)
	rep, err := service.ComputeStatisticsWith(context.Background(), "subject", StatsOptions{Coverage: true, Ranking: true})
	require.NoError(t, err)

	assert.Equal(t, []domain.Relay{"wss://r1"}, rep.Coverage.SelectedRelays)
	assert.Equal(t, []domain.Identity{"a"}, rep.Coverage.Uncovered)
}
