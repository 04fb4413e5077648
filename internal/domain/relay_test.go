package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRelayURLCanonicalForm(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Relay
	}{
		{name: "already canonical", raw: "wss://relay.damus.io", want: "wss://relay.damus.io"},
		{name: "upper-case scheme and host", raw: "WSS://Relay.Damus.IO", want: "wss://relay.damus.io"},
		{name: "trailing slash stripped", raw: "wss://nos.lol/", want: "wss://nos.lol"},
		{name: "default wss port stripped", raw: "wss://nos.lol:443", want: "wss://nos.lol"},
		{name: "default ws port stripped", raw: "ws://nos.lol:80", want: "ws://nos.lol"},
		{name: "non-default port kept", raw: "wss://nos.lol:7777", want: "wss://nos.lol:7777"},
		{name: "path kept without trailing slash", raw: "wss://nostr.example.com/relay/", want: "wss://nostr.example.com/relay"},
		{name: "surrounding whitespace trimmed", raw: "  wss://nostr.mom  ", want: "wss://nostr.mom"},
		{name: "https accepted", raw: "https://relay.example.com", want: "https://relay.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeRelayURL(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRelayURLIsIdempotent(t *testing.T) {
	first, err := NormalizeRelayURL("WSS://Relay.Damus.IO:443/")
	require.NoError(t, err)

	second, err := NormalizeRelayURL(string(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeRelayURLCosmeticVariantsCollapse(t *testing.T) {
	variants := []string{
		"wss://nos.lol",
		"wss://nos.lol/",
		"wss://nos.lol:443",
		"WSS://NOS.LOL",
	}

	set := NewRelaySet()
	for _, variant := range variants {
		relay, err := NormalizeRelayURL(variant)
		require.NoError(t, err)
		set.Add(relay)
	}

	assert.Len(t, set, 1)
}

func TestNormalizeRelayURLRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "no scheme", raw: "nos.lol"},
		{name: "unsupported scheme", raw: "ftp://nos.lol"},
		{name: "missing host", raw: "wss://"},
		{name: "control character", raw: "wss://nos.lol/\x7f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeRelayURL(tt.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidRelayURL)
		})
	}
}

func TestRelaySetSortedIsDeterministic(t *testing.T) {
	set := NewRelaySet("wss://c.example", "wss://a.example", "wss://b.example")

	assert.Equal(t, []Relay{"wss://a.example", "wss://b.example", "wss://c.example"}, set.Sorted())
}

func TestRelaySetUnion(t *testing.T) {
	set := NewRelaySet("wss://a.example")
	set.Union(NewRelaySet("wss://a.example", "wss://b.example"))

	assert.Equal(t, []Relay{"wss://a.example", "wss://b.example"}, set.Sorted())
}

func TestDirectoryTracksOwnedRelaysPerIdentity(t *testing.T) {
	directory := NewDirectory()
	directory.MarkOwned("alice", "wss://a.example")
	directory.MarkOwned("alice", "wss://b.example")
	directory.MarkOwned("alice", "wss://a.example")
	directory.MarkOwned("bob", "wss://c.example")

	assert.Equal(t, []Relay{"wss://a.example", "wss://b.example"}, directory.OwnedRelays("alice").Sorted())
	assert.Equal(t, []Relay{"wss://c.example"}, directory.OwnedRelays("bob").Sorted())
	assert.Empty(t, directory.OwnedRelays("carol").Sorted())
}

func TestDirectoryOwnedRelaysReturnsCopy(t *testing.T) {
	directory := NewDirectory()
	directory.MarkOwned("alice", "wss://a.example")

	owned := directory.OwnedRelays("alice")
	owned.Add("wss://injected.example")

	assert.Equal(t, []Relay{"wss://a.example"}, directory.OwnedRelays("alice").Sorted())
}
