package badges

import (
	"context"
	"fmt"

	"github.com/sasha-s/go-deadlock"
	"golang.org/x/exp/slices"
	"nostrbadges/engine/library"
)

// Editor stages curation edits against one account's badge view and
// publishes the replacement profile badges event after every mutation.
//
// A failed publish leaves the staged state in place: the caller observes the
// error and decides whether to retry or rebuild from a fresh UserBadges
// read. A concurrent editor on another device is not detected either way;
// whichever publish carries the later created_at wins on the relays and the
// loser's edits are discarded wholesale.
type Editor struct {
	mutex     *deadlock.Mutex
	subject   library.Account
	publisher Publisher
	badges    []UserBadge
}

// NewEditor stages the given view for editing. The subject is the account
// whose profile badges event the editor republishes.
func NewEditor(subject library.Account, view []UserBadge, publisher Publisher) *Editor {
	staged := make([]UserBadge, len(view))
	copy(staged, view)
	SortUserBadges(staged)
	return &Editor{
		mutex:     &deadlock.Mutex{},
		subject:   subject,
		publisher: publisher,
		badges:    staged,
	}
}

func (editor *Editor) Subject() library.Account {
	return editor.subject
}

// Badges returns a copy of the staged view in display order.
func (editor *Editor) Badges() []UserBadge {
	editor.mutex.Lock()
	defer editor.mutex.Unlock()
	out := make([]UserBadge, len(editor.badges))
	copy(out, editor.badges)
	return out
}

// Accept places the badge at the end of the accepted list and republishes
// the profile. It refuses badges without an award event id, since the pair
// list could not reference them.
func (editor *Editor) Accept(ctx context.Context, awardEventID library.Sha256) error {
	editor.mutex.Lock()
	defer editor.mutex.Unlock()
	i, err := editor.find(awardEventID)
	if err != nil {
		return err
	}
	editor.badges[i].Accepted = true
	maxOrder := 0
	for _, badge := range editor.badges {
		if badge.Accepted && badge.Order > maxOrder {
			maxOrder = badge.Order
		}
	}
	editor.badges[i].Order = maxOrder + 1
	SortUserBadges(editor.badges)
	return editor.persist(ctx)
}

// Reject removes the badge from the accepted list and republishes. The
// badge's order goes stale; the sort ignores it until the badge is accepted
// again.
func (editor *Editor) Reject(ctx context.Context, awardEventID library.Sha256) error {
	editor.mutex.Lock()
	defer editor.mutex.Unlock()
	i, err := editor.find(awardEventID)
	if err != nil {
		return err
	}
	editor.badges[i].Accepted = false
	SortUserBadges(editor.badges)
	return editor.persist(ctx)
}

// MoveUp swaps the badge with the accepted badge directly above it. Moving
// the first accepted badge up is a no-op and publishes nothing.
func (editor *Editor) MoveUp(ctx context.Context, awardEventID library.Sha256) error {
	return editor.move(ctx, awardEventID, -1)
}

// MoveDown swaps the badge with the accepted badge directly below it. Moving
// the last accepted badge down is a no-op and publishes nothing.
func (editor *Editor) MoveDown(ctx context.Context, awardEventID library.Sha256) error {
	return editor.move(ctx, awardEventID, +1)
}

func (editor *Editor) move(ctx context.Context, awardEventID library.Sha256, direction int) error {
	editor.mutex.Lock()
	defer editor.mutex.Unlock()
	i, err := editor.find(awardEventID)
	if err != nil {
		return err
	}
	if !editor.badges[i].Accepted {
		return fmt.Errorf("badge with award event %s is not accepted, cannot reorder", awardEventID)
	}
	// Adjacency among accepted badges follows the current sort position, not
	// the raw slice index.
	var accepted []int
	pos := -1
	for j, badge := range editor.badges {
		if !badge.Accepted {
			continue
		}
		if j == i {
			pos = len(accepted)
		}
		accepted = append(accepted, j)
	}
	swap := pos + direction
	if swap < 0 || swap >= len(accepted) {
		return nil
	}
	j := accepted[swap]
	editor.badges[i].Order, editor.badges[j].Order = editor.badges[j].Order, editor.badges[i].Order
	SortUserBadges(editor.badges)
	return editor.persist(ctx)
}

func (editor *Editor) find(awardEventID library.Sha256) (int, error) {
	if awardEventID == "" {
		return 0, fmt.Errorf("badge has no award event id")
	}
	for i, badge := range editor.badges {
		if badge.AwardEventID == awardEventID {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no staged badge with award event %s", awardEventID)
}

// persist rebuilds the pair list from the accepted badges, in curated order,
// and publishes the replacement profile badges event. Staged state is not
// rolled back if the publish fails.
func (editor *Editor) persist(ctx context.Context) error {
	accepted := make([]UserBadge, 0, len(editor.badges))
	for _, badge := range editor.badges {
		if badge.Accepted && badge.AwardEventID != "" {
			accepted = append(accepted, badge)
		}
	}
	slices.SortStableFunc(accepted, func(a, b UserBadge) bool {
		return a.Order < b.Order
	})
	pairs := make([]Pair, 0, len(accepted))
	for _, badge := range accepted {
		pairs = append(pairs, Pair{
			ARef: library.EncodeEntityRef(KindBadgeDefinition, badge.IssuerPubkey, badge.BadgeID),
			ERef: badge.AwardEventID,
		})
	}
	_, err := PublishProfileList(ctx, editor.publisher, pairs)
	return err
}
