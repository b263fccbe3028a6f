package relays

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
)

// Transport exposes the package-level relay pool through the interfaces the
// badge state package consumes.
type Transport struct{}

func (Transport) Query(ctx context.Context, filters nostr.Filters) []nostr.Event {
	return Query(ctx, filters)
}

func (Transport) Publish(ctx context.Context, kind int, tags nostr.Tags, content string) (nostr.Event, error) {
	return Publish(ctx, kind, tags, content)
}
