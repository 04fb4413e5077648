package domain

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Relay is the canonical form of a relay endpoint URL. Two raw URLs that
// normalize identically compare equal, which is what makes relay sets
// deduplicate correctly downstream.
type Relay string

type RelaySet map[Relay]struct{}

func NewRelaySet(relays ...Relay) RelaySet {
	set := make(RelaySet, len(relays))
	for _, relay := range relays {
		set.Add(relay)
	}
	return set
}

func (s RelaySet) Add(relay Relay) {
	s[relay] = struct{}{}
}

func (s RelaySet) Has(relay Relay) bool {
	_, ok := s[relay]
	return ok
}

func (s RelaySet) Union(other RelaySet) {
	for relay := range other {
		s[relay] = struct{}{}
	}
}

// Sorted returns the members in ascending canonical order. Callers that
// iterate a RelaySet for output must go through Sorted so results never
// depend on map iteration order.
func (s RelaySet) Sorted() []Relay {
	relays := make([]Relay, 0, len(s))
	for relay := range s {
		relays = append(relays, relay)
	}
	sort.Slice(relays, func(i, j int) bool { return relays[i] < relays[j] })
	return relays
}

var defaultPorts = map[string]string{
	"ws":    "80",
	"http":  "80",
	"wss":   "443",
	"https": "443",
}

// NormalizeRelayURL converts a raw relay URL into its canonical Relay value:
// scheme and host lower-cased, default ports stripped, trailing slash
// stripped. Malformed input fails with ErrInvalidRelayURL.
func NormalizeRelayURL(raw string) (Relay, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidRelayURL)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidRelayURL, raw, err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if _, ok := defaultPorts[scheme]; !ok {
		return "", fmt.Errorf("%w: %q: unsupported scheme %q", ErrInvalidRelayURL, raw, parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return "", fmt.Errorf("%w: %q: missing host", ErrInvalidRelayURL, raw)
	}

	host := strings.ToLower(parsed.Hostname())
	if port := parsed.Port(); port != "" && port != defaultPorts[scheme] {
		host += ":" + port
	}

	path := strings.TrimRight(parsed.EscapedPath(), "/")

	return Relay(scheme + "://" + host + path), nil
}

// Directory tracks which relays an identity publishes to. One Directory is
// allocated per statistics run; it is not safe for concurrent use.
type Directory struct {
	owned map[Identity]RelaySet
}

func NewDirectory() *Directory {
	return &Directory{owned: make(map[Identity]RelaySet)}
}

func (d *Directory) MarkOwned(id Identity, relay Relay) {
	set, ok := d.owned[id]
	if !ok {
		set = NewRelaySet()
		d.owned[id] = set
	}
	set.Add(relay)
}

func (d *Directory) OwnedRelays(id Identity) RelaySet {
	set := NewRelaySet()
	set.Union(d.owned[id])
	return set
}
