package badges

import (
	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/library"
)

// AssembleBadge flattens a definition event, and optionally the award that
// granted it, into a Badge. A definition missing its d tag yields a
// zero-value record; callers must check BadgeID before trusting the result.
func AssembleBadge(definition nostr.Event, award *nostr.Event) (b Badge) {
	badgeID, ok := library.GetFirstTag(definition, "d")
	if !ok {
		return Badge{}
	}
	b.ID = definition.ID
	b.BadgeID = badgeID
	b.Name, _ = library.GetFirstTag(definition, "name")
	b.Description, _ = library.GetFirstTag(definition, "description")
	b.Image, _ = library.GetFirstTag(definition, "image")
	b.Thumb, _ = library.GetFirstTag(definition, "thumb")
	b.IssuerPubkey = definition.PubKey
	b.DefinitionID = definition.ID
	if award != nil {
		b.AwardID = award.ID
		b.IssuedAt = int64(award.CreatedAt)
	}
	return b
}
