package badges

import (
	"context"
	"fmt"

	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/library"
)

// DefinitionFields carries everything an issuer can put on a badge
// definition. Slug and Name are required. Image and Thumb take URLs; when
// both width and height are given the tag value carries a "WxH" suffix.
type DefinitionFields struct {
	Slug        library.Slug
	Name        string
	Description string
	Image       string
	ImageWidth  int
	ImageHeight int
	Thumb       string
	ThumbWidth  int
	ThumbHeight int
}

// CreateDefinition publishes a new badge definition. Republishing with the
// same slug replaces the previous version for this issuer.
func CreateDefinition(ctx context.Context, p Publisher, fields DefinitionFields) (nostr.Event, error) {
	if fields.Slug == "" {
		return nostr.Event{}, fmt.Errorf("a badge definition needs a slug")
	}
	if fields.Name == "" {
		return nostr.Event{}, fmt.Errorf("a badge definition needs a name")
	}
	tags := nostr.Tags{
		nostr.Tag{"d", fields.Slug},
		nostr.Tag{"name", fields.Name},
	}
	if fields.Description != "" {
		tags = append(tags, nostr.Tag{"description", fields.Description})
	}
	if fields.Image != "" {
		tags = append(tags, nostr.Tag{"image", withDimensions(fields.Image, fields.ImageWidth, fields.ImageHeight)})
	}
	if fields.Thumb != "" {
		tags = append(tags, nostr.Tag{"thumb", withDimensions(fields.Thumb, fields.ThumbWidth, fields.ThumbHeight)})
	}
	return p.Publish(ctx, KindBadgeDefinition, tags, "")
}

func withDimensions(url string, width, height int) string {
	if width > 0 && height > 0 {
		return fmt.Sprintf("%s %dx%d", url, width, height)
	}
	return url
}

// AwardBadge publishes a kind 8 event granting the definition to every
// recipient. An award is immutable once published: it cannot be retracted or
// reissued to change its recipient set.
func AwardBadge(ctx context.Context, p Publisher, definition nostr.Event, recipients []library.Account) (nostr.Event, error) {
	if len(recipients) == 0 {
		return nostr.Event{}, fmt.Errorf("a badge award needs at least one recipient")
	}
	if !IsBadgeDefinition(definition) {
		return nostr.Event{}, fmt.Errorf("event %s is not a badge definition", definition.ID)
	}
	slug, _ := library.GetFirstTag(definition, "d")
	if slug == "" {
		return nostr.Event{}, fmt.Errorf("definition %s has an empty slug", definition.ID)
	}
	tags := nostr.Tags{
		nostr.Tag{"a", library.EncodeEntityRef(KindBadgeDefinition, definition.PubKey, slug)},
	}
	for _, recipient := range recipients {
		tags = append(tags, nostr.Tag{"p", recipient})
	}
	return p.Publish(ctx, KindBadgeAward, tags, "")
}

// PublishProfileList replaces the account's profile badges event with the
// given pair sequence: the fixed d tag first, then each pair's a tag
// immediately followed by its e tag. The wire shape matters; readers
// reconstruct pairs purely by position.
func PublishProfileList(ctx context.Context, p Publisher, pairs []Pair) (nostr.Event, error) {
	tags := nostr.Tags{nostr.Tag{"d", ProfileBadgesDTag}}
	for _, pair := range pairs {
		tags = append(tags, nostr.Tag{"a", pair.ARef}, nostr.Tag{"e", pair.ERef})
	}
	return p.Publish(ctx, KindProfileBadges, tags, "")
}
