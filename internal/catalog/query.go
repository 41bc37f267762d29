package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AllGroups is the sentinel group label meaning "no group filter".
const AllGroups = "All"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortNone preserves the filtered order.
	SortNone SortKey = ""
	// SortName orders by display name, locale-aware ascending.
	SortName SortKey = "name"
	// SortPriceLow orders by price ascending.
	SortPriceLow SortKey = "price-low"
	// SortPriceHigh orders by price descending.
	SortPriceHigh SortKey = "price-high"
	// SortGroup orders by the group label, locale-aware ascending.
	SortGroup SortKey = "category"
)

// ParseSortKey maps a user-supplied label to a SortKey. Unknown labels
// degrade to SortNone rather than failing.
func ParseSortKey(s string) SortKey {
	switch SortKey(strings.TrimSpace(s)) {
	case SortName, SortPriceLow, SortPriceHigh, SortGroup:
		return SortKey(strings.TrimSpace(s))
	default:
		return SortNone
	}
}

// Params is a listing query: free-text term, group filter, favorites filter
// and sort key. The zero value matches everything in original order.
type Params struct {
	// Term filters case-insensitively against name, description and group;
	// any one match keeps the record.
	Term string

	// Group keeps records whose group label matches exactly (case-sensitive).
	// Empty or AllGroups disables the filter.
	Group string

	// FavoritesOnly keeps records whose id is in Favorites.
	FavoritesOnly bool
	Favorites     map[string]struct{}

	Sort SortKey
}

// Fields adapts a record type to the query engine. Group is the single
// filterable dimension (category, species or specialization depending on the
// domain). A nil accessor contributes nothing: a nil Description never
// matches a term, a nil Price makes the price sorts no-ops.
type Fields[T any] struct {
	ID          func(T) string
	Name        func(T) string
	Group       func(T) string
	Description func(T) string
	Price       func(T) float64
}

// Query returns the ordered, filtered view of records for p. The result is a
// freshly allocated slice; records itself is never reordered. An empty input
// yields an empty result, never an error.
func Query[T any](records []T, f Fields[T], p Params) []T {
	out := make([]T, 0, len(records))

	term := strings.ToLower(strings.TrimSpace(p.Term))
	for _, rec := range records {
		if term != "" && !matchesTerm(rec, f, term) {
			continue
		}
		if p.Group != "" && p.Group != AllGroups && field(f.Group, rec) != p.Group {
			continue
		}
		if p.FavoritesOnly {
			if _, ok := p.Favorites[field(f.ID, rec)]; !ok {
				continue
			}
		}
		out = append(out, rec)
	}

	sortRecords(out, f, p.Sort)
	return out
}

// Groups derives the selectable group labels from records: the AllGroups
// sentinel followed by the unique labels in first-seen order.
func Groups[T any](records []T, f Fields[T]) []string {
	groups := []string{AllGroups}
	seen := make(map[string]struct{})
	for _, rec := range records {
		g := field(f.Group, rec)
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		groups = append(groups, g)
	}
	return groups
}

func matchesTerm[T any](rec T, f Fields[T], term string) bool {
	for _, get := range []func(T) string{f.Name, f.Description, f.Group} {
		if get == nil {
			continue
		}
		if strings.Contains(strings.ToLower(get(rec)), term) {
			return true
		}
	}
	return false
}

func sortRecords[T any](records []T, f Fields[T], key SortKey) {
	switch key {
	case SortName:
		if f.Name == nil {
			return
		}
		c := newCollator()
		sort.SliceStable(records, func(i, j int) bool {
			return c.CompareString(f.Name(records[i]), f.Name(records[j])) < 0
		})
	case SortGroup:
		if f.Group == nil {
			return
		}
		c := newCollator()
		sort.SliceStable(records, func(i, j int) bool {
			return c.CompareString(f.Group(records[i]), f.Group(records[j])) < 0
		})
	case SortPriceLow:
		if f.Price == nil {
			return
		}
		sort.SliceStable(records, func(i, j int) bool {
			return f.Price(records[i]) < f.Price(records[j])
		})
	case SortPriceHigh:
		if f.Price == nil {
			return
		}
		sort.SliceStable(records, func(i, j int) bool {
			return f.Price(records[i]) > f.Price(records[j])
		})
	}
}

// newCollator builds a fresh collator per sort; a collate.Collator carries
// internal buffers and must not be shared.
func newCollator() *collate.Collator {
	return collate.New(language.English)
}

func field[T any](get func(T) string, rec T) string {
	if get == nil {
		return ""
	}
	return get(rec)
}
