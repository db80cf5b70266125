package service

import (
	"strings"

	"github.com/xxxsen/gristry/internal/model"
)

type stringSet map[string]struct{}

// splitCSV turns a comma-separated query value into a membership set.
// Empty tokens (trailing commas, blank values) are dropped, so a filter
// never matches the empty-string id.
func splitCSV(raw string) stringSet {
	set := make(stringSet)
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		set[token] = struct{}{}
	}
	return set
}

// predicate is one independent filter condition; an entity must satisfy
// every predicate. Predicates hold no mutable state.
type predicate[T any] interface {
	match(entity *T) bool
}

type itemIDIn struct{ set stringSet }

func (p itemIDIn) match(item *model.Item) bool {
	_, ok := p.set[item.ID]
	return ok
}

// itemTagIn passes when any of the item's tags is in the set.
type itemTagIn struct{ set stringSet }

func (p itemTagIn) match(item *model.Item) bool {
	for _, tag := range item.Tags {
		if _, ok := p.set[tag]; ok {
			return true
		}
	}
	return false
}

type tagIDIn struct{ set stringSet }

func (p tagIDIn) match(tag *model.Tag) bool {
	_, ok := p.set[tag.ID]
	return ok
}

func filterAll[T any](entities []T, preds []predicate[T]) []T {
	if len(preds) == 0 {
		return entities
	}
	out := make([]T, 0, len(entities))
	for i := range entities {
		keep := true
		for _, p := range preds {
			if !p.match(&entities[i]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, entities[i])
		}
	}
	return out
}
