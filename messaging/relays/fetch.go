package relays

import (
	"context"
	"sync"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/sasha-s/go-deadlock"
	"nostrbadges/engine/actors"
	"nostrbadges/engine/library"
)

func relayList() []string {
	return actors.MakeOrGetConfig().GetStringSlice("relays")
}

func queryTimeout() time.Duration {
	return time.Duration(actors.MakeOrGetConfig().GetInt64("queryTimeoutSeconds")) * time.Second
}

// Query fans the filters out to every configured relay and returns the
// merged, de-duplicated results once every relay has reached the end of its
// stored events or the timeout fires. Results can be partial or empty; an
// unreachable relay is skipped, never an error.
func Query(ctx context.Context, filters nostr.Filters) []nostr.Event {
	sane := library.ValidateSaneExecutionTime()
	defer sane()
	ctx, cancel := context.WithTimeout(ctx, queryTimeout())
	defer cancel()
	events := make(map[library.Sha256]nostr.Event)
	eventsMu := &deadlock.Mutex{}
	wait := &sync.WaitGroup{}
	for _, url := range relayList() {
		wait.Add(1)
		go func(url string) {
			defer wait.Done()
			relay, err := nostr.RelayConnect(ctx, url)
			if err != nil {
				return
			}
			defer relay.Close()
			sub, err := relay.Subscribe(ctx, filters)
			if err != nil {
				actors.LogCLI(err.Error(), 2)
				return
			}
			defer sub.Close()
			for {
				select {
				case ev := <-sub.Events:
					if ev == nil {
						return
					}
					eventsMu.Lock()
					events[ev.ID] = *ev
					eventsMu.Unlock()
					pushCache(*ev)
				case <-sub.EndOfStoredEvents:
					return
				case <-ctx.Done():
					return
				}
			}
		}(url)
	}
	wait.Wait()
	result := make([]nostr.Event, 0, len(events))
	for _, event := range events {
		result = append(result, event)
	}
	return result
}

// FetchByID returns a single event, consulting the cache before the relays.
func FetchByID(ctx context.Context, id library.Sha256) (nostr.Event, bool) {
	if event, ok := FetchCache(id); ok {
		return event, true
	}
	events := Query(ctx, nostr.Filters{nostr.Filter{IDs: []string{id}}})
	for _, event := range events {
		if event.ID == id {
			return event, true
		}
	}
	return nostr.Event{}, false
}
