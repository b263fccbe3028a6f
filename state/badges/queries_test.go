package badges

import (
	"context"
	"testing"

	"github.com/nbd-wtf/go-nostr"
)

func TestDefinitionsFiltersMalformed(t *testing.T) {
	q := fakeQuerier{events: []nostr.Event{
		definitionEvent("def1", "issuer", "og", "OG", 100),
		// kind 30009 but no d tag: dropped at the gate.
		{ID: "def2", PubKey: "issuer", Kind: 30009, Tags: nostr.Tags{nostr.Tag{"name", "nameless"}}},
	}}
	definitions := Definitions(context.Background(), q, 0)
	if len(definitions) != 1 || definitions[0].ID != "def1" {
		t.Errorf("got %v, want only def1", definitions)
	}
}

func TestDefinitionByID(t *testing.T) {
	q := fakeQuerier{events: []nostr.Event{
		definitionEvent("def1", "issuer", "og", "OG", 100),
	}}
	if _, ok := DefinitionByID(context.Background(), q, "missing"); ok {
		t.Error("found a definition that does not exist")
	}
	definition, ok := DefinitionByID(context.Background(), q, "def1")
	if !ok || definition.ID != "def1" {
		t.Errorf("got %v %v, want def1", definition.ID, ok)
	}
}

func TestAwardByID(t *testing.T) {
	q := fakeQuerier{events: []nostr.Event{
		awardEvent("award1", "issuer", "30009:issuer:og", "user", 200),
	}}
	award, ok := AwardByID(context.Background(), q, "award1")
	if !ok || award.ID != "award1" {
		t.Errorf("got %v %v, want award1", award.ID, ok)
	}
}

func TestIssuerDefinitions(t *testing.T) {
	q := fakeQuerier{events: []nostr.Event{
		definitionEvent("def1", "alice", "og", "OG", 100),
		definitionEvent("def2", "bob", "helper", "Helper", 100),
	}}
	definitions := IssuerDefinitions(context.Background(), q, "alice")
	if len(definitions) != 1 || definitions[0].ID != "def1" {
		t.Errorf("got %v, want only alice's definition", definitions)
	}
}

func TestLatestProfileBadgesPicksNewest(t *testing.T) {
	older := profileEvent("user", 100, []Pair{{ARef: "30009:issuer:og", ERef: "award1"}})
	older.ID = "profile-old"
	newer := profileEvent("user", 200, nil)
	newer.ID = "profile-new"
	q := fakeQuerier{events: []nostr.Event{older, newer}}
	profile, ok := LatestProfileBadges(context.Background(), q, "user")
	if !ok || profile.ID != "profile-new" {
		t.Errorf("got %v %v, want the replacement event to win", profile.ID, ok)
	}
}

func TestLatestProfileBadgesAbsent(t *testing.T) {
	q := fakeQuerier{}
	if _, ok := LatestProfileBadges(context.Background(), q, "user"); ok {
		t.Error("found a profile badges event for a user who has none")
	}
}
