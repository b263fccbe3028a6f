package relays

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/actors"
)

// Subscribe opens a live subscription for the filters on every configured
// relay and forwards events to the channel until the terminate channel
// closes. Used to surface fresh badge awards while the tool is running.
func Subscribe(filters nostr.Filters, events chan nostr.Event) {
	for _, url := range relayList() {
		go func(url string) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
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
					pushCache(*ev)
					go func(e nostr.Event) { events <- e }(*ev)
				case <-actors.GetTerminateChan():
					return
				}
			}
		}(url)
	}
}
