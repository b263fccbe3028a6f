package badges

import (
	"github.com/nbd-wtf/go-nostr"
	"nostrbadges/engine/library"
)

// PairReferences rebuilds the ordered (definition ref, award id) pairs from a
// profile badges event. The a and e tag streams are collected independently,
// each in document order, and zipped by index; trailing entries without a
// partner in the other stream are dropped. Position is the only evidence of
// pairing, so an author who emits the two streams out of step mispairs their
// own list.
func PairReferences(profileBadges nostr.Event) (pairs []Pair) {
	aRefs := library.GetAllTagValues(profileBadges, "a")
	eRefs := library.GetAllTagValues(profileBadges, "e")
	n := len(aRefs)
	if len(eRefs) < n {
		n = len(eRefs)
	}
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{ARef: aRefs[i], ERef: eRefs[i]})
	}
	return
}
