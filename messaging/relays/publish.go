package relays

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/sasha-s/go-deadlock"
	"nostrbadges/engine/actors"
	"nostrbadges/engine/library"
)

// Publish stamps, signs and broadcasts a new event as the current wallet.
// It succeeds if at least one configured relay accepts the event.
func Publish(ctx context.Context, kind int, tags nostr.Tags, content string) (nostr.Event, error) {
	sane := library.ValidateSaneExecutionTime()
	defer sane()
	wallet := actors.MyWallet()
	event := nostr.Event{
		PubKey:    wallet.Account,
		CreatedAt: nostr.Timestamp(time.Now().Unix()),
		Kind:      kind,
		Tags:      tags,
		Content:   content,
	}
	event.ID = event.GetID()
	if err := event.Sign(wallet.PrivateKey); err != nil {
		return nostr.Event{}, fmt.Errorf("could not sign event: %s", err.Error())
	}
	if actors.MakeOrGetConfig().GetBool("doNotPublish") {
		actors.LogCLI(fmt.Sprintf("doNotPublish is set, holding back event %s", event.ID), 3)
		pushCache(event)
		return event, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout())
	defer cancel()
	var accepted int
	acceptedMu := &deadlock.Mutex{}
	wait := &sync.WaitGroup{}
	for _, url := range relayList() {
		wait.Add(1)
		go func(url string) {
			defer wait.Done()
			relay, err := nostr.RelayConnect(ctx, url)
			if err != nil {
				actors.LogCLI(fmt.Sprintf("could not connect to relay %s: %s", url, err), 2)
				return
			}
			defer relay.Close()
			if _, err := relay.Publish(ctx, event); err != nil {
				actors.LogCLI(fmt.Sprintf("could not publish to relay %s: %s", url, err), 2)
				return
			}
			acceptedMu.Lock()
			accepted++
			acceptedMu.Unlock()
		}(url)
	}
	wait.Wait()
	if accepted == 0 {
		return nostr.Event{}, fmt.Errorf("no relay accepted event %s", event.ID)
	}
	pushCache(event)
	return event, nil
}
