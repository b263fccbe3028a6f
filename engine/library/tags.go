package library

import (
	"github.com/nbd-wtf/go-nostr"
)

func GetFirstTag(e nostr.Event, name string) (string, bool) {
	for _, tag := range e.Tags {
		if tag.StartsWith([]string{name}) {
			return tag.Value(), true
		}
	}
	return "", false
}

func GetAllTagValues(e nostr.Event, name string) (values []string) {
	for _, tag := range e.Tags {
		if tag.StartsWith([]string{name}) {
			values = append(values, tag.Value())
		}
	}
	return
}

// GetTagValuesAt returns the element at the given offset for every tag with
// this name, skipping tags too short to have that offset.
func GetTagValuesAt(e nostr.Event, name string, position int) (values []string) {
	for _, tag := range e.Tags {
		if !tag.StartsWith([]string{name}) {
			continue
		}
		if len(tag) > position {
			values = append(values, tag[position])
		}
	}
	return
}

func HasTag(e nostr.Event, name string) bool {
	_, ok := GetFirstTag(e, name)
	return ok
}
