package library

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityRef addresses a replaceable event by (kind, author, d-tag) instead of
// by event id, so the reference survives replacement.
type EntityRef struct {
	Kind   int
	Pubkey Account
	Slug   Slug
}

func EncodeEntityRef(kind int, pubkey Account, slug Slug) string {
	return fmt.Sprintf("%d:%s:%s", kind, pubkey, slug)
}

// DecodeEntityRef splits a "kind:pubkey:slug" reference. Anything that does
// not split into exactly three parts is invalid. A non-numeric kind segment
// decodes to kind -1 so it can never match a real kind downstream; pubkey and
// slug are carried as-is without further validation.
func DecodeEntityRef(ref string) (EntityRef, bool) {
	parts := strings.Split(ref, ":")
	if len(parts) != 3 {
		return EntityRef{}, false
	}
	kind, err := strconv.Atoi(parts[0])
	if err != nil {
		kind = -1
	}
	return EntityRef{
		Kind:   kind,
		Pubkey: parts[1],
		Slug:   parts[2],
	}, true
}
