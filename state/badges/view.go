package badges

import (
	"context"
	"sync"

	"github.com/nbd-wtf/go-nostr"
	"github.com/sasha-s/go-deadlock"
	"golang.org/x/exp/slices"
	"nostrbadges/engine/library"
)

// AwardedBadges joins the awards naming the recipient against their resolved
// badge definitions. Awards whose reference does not decode to a kind 30009
// entity, or whose definition cannot be found on any relay, are silently
// dropped: the view is best-effort, never an error.
func AwardedBadges(ctx context.Context, q Querier, recipient library.Account) (result []Badge) {
	events := q.Query(ctx, nostr.Filters{nostr.Filter{
		Kinds: []int{KindBadgeAward},
		Tags:  nostr.TagMap{"p": []string{recipient}},
		Limit: defaultQueryLimit,
	}})
	var awards []nostr.Event
	refs := make(map[library.Sha256]library.EntityRef)
	slugsByIssuer := make(map[library.Account][]string)
	for _, event := range events {
		if !IsBadgeAward(event) {
			continue
		}
		aRef, _ := library.GetFirstTag(event, "a")
		ref, ok := library.DecodeEntityRef(aRef)
		if !ok || ref.Kind != KindBadgeDefinition {
			continue
		}
		awards = append(awards, event)
		refs[event.ID] = ref
		slugsByIssuer[ref.Pubkey] = append(slugsByIssuer[ref.Pubkey], ref.Slug)
	}
	definitions := fetchDefinitions(ctx, q, slugsByIssuer)
	for _, award := range awards {
		definition, ok := matchDefinition(definitions, refs[award.ID])
		if !ok {
			continue
		}
		award := award
		badge := AssembleBadge(definition, &award)
		badge.AwardEventID = award.ID
		result = append(result, badge)
	}
	return
}

// fetchDefinitions batch-fetches the referenced definitions, one concurrent
// query per issuer. This is purely a fan-out optimization: the caller
// re-matches results by (pubkey, slug), so completion order is irrelevant.
func fetchDefinitions(ctx context.Context, q Querier, slugsByIssuer map[library.Account][]string) []nostr.Event {
	var definitions []nostr.Event
	definitionsMu := &deadlock.Mutex{}
	wait := &sync.WaitGroup{}
	for issuer, slugs := range slugsByIssuer {
		wait.Add(1)
		go func(issuer library.Account, slugs []string) {
			defer wait.Done()
			events := q.Query(ctx, nostr.Filters{nostr.Filter{
				Kinds:   []int{KindBadgeDefinition},
				Authors: []string{issuer},
				Tags:    nostr.TagMap{"d": slugs},
			}})
			definitionsMu.Lock()
			defer definitionsMu.Unlock()
			for _, event := range events {
				if IsBadgeDefinition(event) {
					definitions = append(definitions, event)
				}
			}
		}(issuer, slugs)
	}
	wait.Wait()
	return definitions
}

// matchDefinition resolves a decoded reference to a definition event. When
// relays hold several versions of the same replaceable definition, the most
// recent one is current.
func matchDefinition(definitions []nostr.Event, ref library.EntityRef) (match nostr.Event, found bool) {
	for _, definition := range definitions {
		d, _ := library.GetFirstTag(definition, "d")
		if definition.PubKey != ref.Pubkey || d != ref.Slug {
			continue
		}
		if !found || definition.CreatedAt > match.CreatedAt {
			match = definition
			found = true
		}
	}
	return
}

// UserBadges produces the ordered acceptance view for one account: every
// badge awarded to it, flagged and positioned against the account's current
// profile badges event.
func UserBadges(ctx context.Context, q Querier, account library.Account) []UserBadge {
	awarded := AwardedBadges(ctx, q, account)
	var pairs []Pair
	if profile, ok := LatestProfileBadges(ctx, q, account); ok {
		pairs = PairReferences(profile)
	}
	userBadges := make([]UserBadge, 0, len(awarded))
	for _, badge := range awarded {
		ub := UserBadge{Badge: badge}
		for i, pair := range pairs {
			if pair.ERef == badge.AwardEventID {
				ub.Accepted = true
				ub.Order = i
				break
			}
		}
		userBadges = append(userBadges, ub)
	}
	SortUserBadges(userBadges)
	return userBadges
}

// SortUserBadges applies the display contract: accepted before unaccepted,
// accepted badges by curated order, unaccepted badges newest first. Badges
// with no known issue time sort as oldest.
func SortUserBadges(userBadges []UserBadge) {
	slices.SortStableFunc(userBadges, func(a, b UserBadge) bool {
		if a.Accepted && b.Accepted {
			return a.Order < b.Order
		}
		if a.Accepted != b.Accepted {
			return a.Accepted
		}
		return a.IssuedAt > b.IssuedAt
	})
}
