package badges

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/library"
)

const defaultQueryLimit = 100

// Definitions returns every badge definition the relays hold, up to limit.
func Definitions(ctx context.Context, q Querier, limit int) (definitions []nostr.Event) {
	if limit <= 0 {
		limit = defaultQueryLimit
	}
	events := q.Query(ctx, nostr.Filters{nostr.Filter{
		Kinds: []int{KindBadgeDefinition},
		Limit: limit,
	}})
	for _, event := range events {
		if IsBadgeDefinition(event) {
			definitions = append(definitions, event)
		}
	}
	return
}

// IssuerDefinitions returns the badge definitions authored by one issuer.
func IssuerDefinitions(ctx context.Context, q Querier, issuer library.Account) (definitions []nostr.Event) {
	events := q.Query(ctx, nostr.Filters{nostr.Filter{
		Kinds:   []int{KindBadgeDefinition},
		Authors: []string{issuer},
		Limit:   defaultQueryLimit,
	}})
	for _, event := range events {
		if IsBadgeDefinition(event) {
			definitions = append(definitions, event)
		}
	}
	return
}

func DefinitionByID(ctx context.Context, q Querier, id library.Sha256) (nostr.Event, bool) {
	events := q.Query(ctx, nostr.Filters{nostr.Filter{
		IDs:   []string{id},
		Kinds: []int{KindBadgeDefinition},
	}})
	for _, event := range events {
		if IsBadgeDefinition(event) {
			return event, true
		}
	}
	return nostr.Event{}, false
}

func AwardByID(ctx context.Context, q Querier, id library.Sha256) (nostr.Event, bool) {
	events := q.Query(ctx, nostr.Filters{nostr.Filter{
		IDs:   []string{id},
		Kinds: []int{KindBadgeAward},
	}})
	for _, event := range events {
		if IsBadgeAward(event) {
			return event, true
		}
	}
	return nostr.Event{}, false
}

// LatestProfileBadges returns the account's current curation record: the
// most recent well-formed kind 30008 event with the fixed d tag. Profile
// badges are replaceable, so anything older is superseded.
func LatestProfileBadges(ctx context.Context, q Querier, account library.Account) (nostr.Event, bool) {
	events := q.Query(ctx, nostr.Filters{nostr.Filter{
		Kinds:   []int{KindProfileBadges},
		Authors: []string{account},
		Tags:    nostr.TagMap{"d": []string{ProfileBadgesDTag}},
		Limit:   1,
	}})
	var latest nostr.Event
	var found bool
	for _, event := range events {
		if !IsProfileBadges(event) {
			continue
		}
		if !found || event.CreatedAt > latest.CreatedAt {
			latest = event
			found = true
		}
	}
	return latest, found
}
