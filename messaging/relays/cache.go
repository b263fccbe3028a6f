package relays

import (
	"github.com/nbd-wtf/go-nostr"
	"github.com/sasha-s/go-deadlock"
	"nostrbadges/engine/library"
)

var cache = make(map[library.Sha256]nostr.Event)
var cacheMu = &deadlock.Mutex{}

func pushCache(e nostr.Event) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache[e.ID] = e
}

func FetchCache(id library.Sha256) (nostr.Event, bool) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	event, ok := cache[id]
	return event, ok
}
