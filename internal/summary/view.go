package summary

import (
	"sort"
	"strings"
)

// PageSize is the fixed dashboard page size.
const PageSize = 25

// View describes the dashboard's table transforms: free-text search over the
// name, sort toggling, and fixed-size pagination. All transforms are pure and
// re-derivable from the same aggregated snapshot.
type View struct {
	Query string
	Sort  string // "score" or "date"; empty means no active sort
	Order string // "asc" or "desc"
	Page  int    // 1-based
}

// Apply runs search, sort, and pagination over the items in that order.
func (v View) Apply(items []Item) []Item {
	out := Search(items, v.Query)
	out = Sort(out, v.Sort, v.Order)
	return Page(out, v.Page)
}

// Search keeps items whose name contains the query, case-insensitively.
func Search(items []Item, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			out = append(out, item)
		}
	}
	return out
}

// Sort orders items by score or date. With no active sort field the stable
// default is alphabetical by name.
func Sort(items []Item, field, order string) []Item {
	out := make([]Item, len(items))
	copy(out, items)

	asc := order != "desc"
	switch field {
	case "score":
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Score < out[j].Score
			}
			return out[i].Score > out[j].Score
		})
	case "date":
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Date.Before(out[j].Date)
			}
			return out[i].Date.After(out[j].Date)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	}
	return out
}

// Page returns the 1-based page of PageSize items; out-of-range pages are
// empty.
func Page(items []Item, page int) []Item {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(items) {
		return []Item{}
	}
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	out := make([]Item, end-start)
	copy(out, items[start:end])
	return out
}
