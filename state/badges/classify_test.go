package badges

import (
	"testing"

	"github.com/nbd-wtf/go-nostr"
)

func TestIsBadgeDefinition(t *testing.T) {
	tests := []struct {
		name  string
		event nostr.Event
		want  bool
	}{
		{"well formed", nostr.Event{Kind: 30009, Tags: nostr.Tags{nostr.Tag{"d", "og"}}}, true},
		{"missing d tag", nostr.Event{Kind: 30009, Tags: nostr.Tags{nostr.Tag{"name", "OG"}}}, false},
		{"wrong kind", nostr.Event{Kind: 30008, Tags: nostr.Tags{nostr.Tag{"d", "og"}}}, false},
	}
	for _, tt := range tests {
		if got := IsBadgeDefinition(tt.event); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsBadgeAward(t *testing.T) {
	tests := []struct {
		name  string
		event nostr.Event
		want  bool
	}{
		{"well formed", nostr.Event{Kind: 8, Tags: nostr.Tags{
			nostr.Tag{"a", "30009:issuer:og"},
			nostr.Tag{"p", "recipient"},
		}}, true},
		{"no recipients", nostr.Event{Kind: 8, Tags: nostr.Tags{
			nostr.Tag{"a", "30009:issuer:og"},
		}}, false},
		{"no reference", nostr.Event{Kind: 8, Tags: nostr.Tags{
			nostr.Tag{"p", "recipient"},
		}}, false},
		// The a tag is not decoded here; a garbage reference still passes the
		// structural gate and is weeded out when the view resolves it.
		{"garbage reference", nostr.Event{Kind: 8, Tags: nostr.Tags{
			nostr.Tag{"a", "not a ref"},
			nostr.Tag{"p", "recipient"},
		}}, true},
		{"wrong kind", nostr.Event{Kind: 1, Tags: nostr.Tags{
			nostr.Tag{"a", "30009:issuer:og"},
			nostr.Tag{"p", "recipient"},
		}}, false},
	}
	for _, tt := range tests {
		if got := IsBadgeAward(tt.event); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsProfileBadges(t *testing.T) {
	tests := []struct {
		name  string
		event nostr.Event
		want  bool
	}{
		{"well formed", nostr.Event{Kind: 30008, Tags: nostr.Tags{nostr.Tag{"d", "profile_badges"}}}, true},
		{"wrong d value", nostr.Event{Kind: 30008, Tags: nostr.Tags{nostr.Tag{"d", "mute_list"}}}, false},
		{"missing d", nostr.Event{Kind: 30008}, false},
		{"wrong kind", nostr.Event{Kind: 30009, Tags: nostr.Tags{nostr.Tag{"d", "profile_badges"}}}, false},
	}
	for _, tt := range tests {
		if got := IsProfileBadges(tt.event); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
