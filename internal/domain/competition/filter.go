package competition

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortNone    SortKey = ""
	SortByName  SortKey = "name"
	SortByArea  SortKey = "country"
	DefaultSort         = SortByName
)

// ParseSortKey maps a query value to a sort key. An empty value selects
// DefaultSort; unknown values disable sorting.
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortNone:
		return DefaultSort
	case SortByName:
		return SortByName
	case SortByArea:
		return SortByArea
	default:
		return SortNone
	}
}

// Query narrows a competition list. Empty fields do not filter.
type Query struct {
	Search  string
	Country string
	Sort    SortKey
}

// Apply filters and sorts items according to q. The input slice is not modified.
func Apply(items []Competition, q Query) []Competition {
	out := Filter(items, q.Search, q.Country)
	Sort(out, q.Sort)
	return out
}

// Filter keeps competitions whose name or code contains search and whose area
// equals country, both case-insensitively.
func Filter(items []Competition, search, country string) []Competition {
	search = strings.ToLower(strings.TrimSpace(search))
	country = strings.TrimSpace(country)

	out := make([]Competition, 0, len(items))
	for _, item := range items {
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Code), search) {
			continue
		}
		if country != "" && !strings.EqualFold(item.Area, country) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func Sort(items []Competition, key SortKey) {
	switch key {
	case SortByName:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	case SortByArea:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Area < items[j].Area })
	}
}

// Countries returns the distinct non-empty area names in ascending order.
func Countries(items []Competition) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Area == "" {
			continue
		}
		if _, ok := seen[item.Area]; ok {
			continue
		}
		seen[item.Area] = struct{}{}
		out = append(out, item.Area)
	}
	sort.Strings(out)
	return out
}
