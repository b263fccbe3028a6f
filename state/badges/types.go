package badges

import (
	"context"

	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/library"
)

const (
	KindBadgeAward      = 8
	KindProfileBadges   = 30008
	KindBadgeDefinition = 30009
)

// ProfileBadgesDTag is the fixed d-tag on every profile badges event; relays
// treat (kind, pubkey, d) as the replacement key, so each account has at most
// one current curation record.
const ProfileBadgesDTag = "profile_badges"

// Badge is the denormalized join of one badge definition with (optionally)
// the award event that granted it. Rebuilt on every reconciliation pass,
// never persisted.
type Badge struct {
	ID           library.Sha256
	Name         string
	Description  string
	Image        string
	Thumb        string
	IssuerPubkey library.Account
	DefinitionID library.Sha256
	BadgeID      library.Slug
	AwardID      library.Sha256
	AwardEventID library.Sha256
	IssuedAt     int64
}

// UserBadge adds the recipient's curation state to a Badge. Order is only
// meaningful while Accepted is true; the sort ignores it otherwise.
type UserBadge struct {
	Badge
	Accepted bool
	Order    int
}

// Pair is one entry in a profile badges event: a definition reference and the
// award event id that authorized it, bound to each other only by position.
type Pair struct {
	ARef string
	ERef library.Sha256
}

// Querier is the read side of the relay transport. Results may be partial or
// empty on timeout; "no results" is never an error.
type Querier interface {
	Query(ctx context.Context, filters nostr.Filters) []nostr.Event
}

// Publisher stamps, signs and broadcasts a new event as the local account.
type Publisher interface {
	Publish(ctx context.Context, kind int, tags nostr.Tags, content string) (nostr.Event, error)
}
