package badges

import (
	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/library"
)

// Structural admission gates. These check shape only; whether an award's
// reference actually resolves to a definition is decided later, when the
// view is built. Events failing these are noise and are dropped silently.

func IsBadgeDefinition(e nostr.Event) bool {
	return e.Kind == KindBadgeDefinition && library.HasTag(e, "d")
}

func IsBadgeAward(e nostr.Event) bool {
	return e.Kind == KindBadgeAward && library.HasTag(e, "a") && library.HasTag(e, "p")
}

func IsProfileBadges(e nostr.Event) bool {
	d, _ := library.GetFirstTag(e, "d")
	return e.Kind == KindProfileBadges && d == ProfileBadgesDTag
}
