package relay

import (
	"encoding/json"
	"sort"

	"github.com/nbd-wtf/go-nostr"
)

// relayURLsFromContactList extracts relay URLs from a contact-list event's
// content, a JSON object keyed by relay URL. Empty or unparseable content
// yields nil: the follower stays in the result with no relays.
func relayURLsFromContactList(content string) []string {
	if content == "" {
		return nil
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &entries); err != nil {
		return nil
	}

	urls := make([]string, 0, len(entries))
	for url := range entries {
		urls = append(urls, url)
	}
	sort.Strings(urls)

	return urls
}

// relayURLsFromTags extracts relay URLs from the "r" tags of a relay-list
// event (NIP-65).
func relayURLsFromTags(tags nostr.Tags) []string {
	urls := make([]string, 0, len(tags))
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == "r" {
			urls = append(urls, tag[1])
		}
	}
	sort.Strings(urls)

	return urls
}
