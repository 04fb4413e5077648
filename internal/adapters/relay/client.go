package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/milefashell/nostrstats/internal/domain"
	"github.com/milefashell/nostrstats/internal/ports"
	"github.com/nbd-wtf/go-nostr"
)

const defaultQueryTimeout = 30 * time.Second

// Client implements ports.RelayClient on top of the nostr wire protocol.
// Follower and relay-list lookups go to the bootstrap relays; the activity
// scan goes to whichever relays the caller passes in. Per-relay failures are
// logged and absorbed: a relay that does not answer simply contributes
// nothing to the result.
type Client struct {
	bootstrap []string
	timeout   time.Duration
	logger    *slog.Logger
}

var _ ports.RelayClient = (*Client)(nil)

func NewClient(bootstrap []string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		bootstrap: bootstrap,
		timeout:   defaultQueryTimeout,
		logger:    logger,
	}
}

func (c *Client) FetchOwnRelays(ctx context.Context, id domain.Identity) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := nostr.Filter{
		Kinds:   []int{nostr.KindContactList, nostr.KindRelayListMetadata},
		Authors: []string{string(id)},
	}
	results := c.query(ctx, c.bootstrap, filter)

	var contacts, relayList *nostr.Event
	for _, result := range results {
		switch result.event.Kind {
		case nostr.KindContactList:
			contacts = newerContactsOf(contacts, result.event)
		case nostr.KindRelayListMetadata:
			relayList = newerOf(relayList, result.event)
		}
	}

	urls := make([]string, 0)
	if contacts != nil {
		urls = append(urls, relayURLsFromContactList(contacts.Content)...)
	}
	if relayList != nil {
		urls = append(urls, relayURLsFromTags(relayList.Tags)...)
	}
	sort.Strings(urls)

	return urls, nil
}

func (c *Client) FetchFollowers(ctx context.Context, id domain.Identity) ([]ports.FollowerListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := nostr.Filter{
		Kinds: []int{nostr.KindContactList},
		Tags:  nostr.TagMap{"p": []string{string(id)}},
	}
	results := c.query(ctx, c.bootstrap, filter)

	latest := make(map[string]*nostr.Event)
	for _, result := range results {
		latest[result.event.PubKey] = newerContactsOf(latest[result.event.PubKey], result.event)
	}

	authors := make([]string, 0, len(latest))
	for author := range latest {
		authors = append(authors, author)
	}
	sort.Strings(authors)

	listings := make([]ports.FollowerListing, 0, len(latest))
	for _, author := range authors {
		listings = append(listings, ports.FollowerListing{
			Identity:  domain.Identity(author),
			RelayURLs: relayURLsFromContactList(latest[author].Content),
		})
	}

	return listings, nil
}

var activityKinds = []int{nostr.KindTextNote, nostr.KindReaction, nostr.KindZap}

func (c *Client) FetchEvents(ctx context.Context, subject domain.Identity, relays []domain.Relay, since time.Time) (<-chan ports.RawEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filter := nostr.Filter{
		Kinds: activityKinds,
		Tags:  nostr.TagMap{"p": []string{string(subject)}},
	}
	if !since.IsZero() {
		ts := nostr.Timestamp(since.Unix())
		filter.Since = &ts
	}

	out := make(chan ports.RawEvent)
	var wg sync.WaitGroup
	for _, rl := range relays {
		wg.Add(1)
		go func(rl domain.Relay) {
			defer wg.Done()
			for _, event := range c.queryRelay(ctx, string(rl), filter) {
				raw := ports.RawEvent{
					Author:    domain.Identity(event.PubKey),
					Relay:     rl,
					Kind:      event.Kind,
					CreatedAt: event.CreatedAt.Time(),
				}
				select {
				case out <- raw:
				case <-ctx.Done():
					return
				}
			}
		}(rl)
	}
	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

type relayResult struct {
	relay string
	event *nostr.Event
}

// query fans one filter out to every relay and fans the answers back in.
// Single aggregation point: callers only ever see the merged slice.
func (c *Client) query(ctx context.Context, relays []string, filter nostr.Filter) []relayResult {
	merged := make(chan relayResult)
	var wg sync.WaitGroup
	for _, url := range relays {
		wg.Add(1)
		go func(url string) {
			defer wg.Done()
			for _, event := range c.queryRelay(ctx, url, filter) {
				select {
				case merged <- relayResult{relay: url, event: event}:
				case <-ctx.Done():
					return
				}
			}
		}(url)
	}
	go func() {
		wg.Wait()
		close(merged)
	}()

	results := make([]relayResult, 0)
	for result := range merged {
		results = append(results, result)
	}

	return results
}

func (c *Client) queryRelay(ctx context.Context, url string, filter nostr.Filter) []*nostr.Event {
	queryCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := nostr.RelayConnect(queryCtx, url)
	if err != nil {
		c.logger.Warn("relay connect failed", "relay", url, "error", classifyRelayErr(err))
		return nil
	}
	defer conn.Close()

	events, err := conn.QuerySync(queryCtx, filter)
	if err != nil {
		c.logger.Warn("relay query failed", "relay", url, "error", classifyRelayErr(err))
		return nil
	}

	return events
}

func classifyRelayErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrRelayTimeout, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrRelayUnreachable, err)
}

func newerOf(current, candidate *nostr.Event) *nostr.Event {
	if current == nil || candidate.CreatedAt > current.CreatedAt {
		return candidate
	}
	return current
}

// newerContactsOf picks the newest contact event whose content is non-empty.
// The relay set lives in the content, so an empty publish never displaces a
// relay-bearing one; it only wins when nothing non-empty has been seen.
func newerContactsOf(current, candidate *nostr.Event) *nostr.Event {
	if current == nil {
		return candidate
	}
	if candidate.Content == "" {
		return current
	}
	if current.Content == "" || candidate.CreatedAt > current.CreatedAt {
		return candidate
	}
	return current
}
