package diary

import (
	"sort"
	"strings"

	"github.com/tail1887/offline-diary/internal/store"
)

// SortOrder selects how Sort arranges entries.
type SortOrder string

const (
	// SortLatest orders entries by subject date, newest first.
	SortLatest SortOrder = "latest"
	// SortOldest orders entries by subject date, oldest first.
	SortOldest SortOrder = "oldest"
	// SortTitle orders entries alphabetically by title.
	SortTitle SortOrder = "title"
)

// Search returns the entries whose title, content, or tags contain the
// keyword, case-insensitively. An empty keyword matches everything.
func Search(entries []*store.Entry, keyword string) []*store.Entry {
	if keyword == "" {
		return entries
	}
	lower := strings.ToLower(keyword)

	var matched []*store.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Title), lower) ||
			strings.Contains(strings.ToLower(e.Content), lower) ||
			anyTagContains(e.Tags, lower) {
			matched = append(matched, e)
		}
	}
	return matched
}

func anyTagContains(tags []string, lower string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	return false
}

// FilterByCategory returns the entries that carry the category. An empty
// category matches everything.
func FilterByCategory(entries []*store.Entry, category string) []*store.Entry {
	if category == "" {
		return entries
	}
	var matched []*store.Entry
	for _, e := range entries {
		if contains(e.Categories, category) {
			matched = append(matched, e)
		}
	}
	return matched
}

// FilterByTag returns the entries that carry the tag. An empty tag matches
// everything.
func FilterByTag(entries []*store.Entry, tag string) []*store.Entry {
	if tag == "" {
		return entries
	}
	var matched []*store.Entry
	for _, e := range entries {
		if contains(e.Tags, tag) {
			matched = append(matched, e)
		}
	}
	return matched
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of entries; the input slice is not modified.
// Subject dates are YYYY-MM-DD strings, so byte order is date order. An
// unknown order returns the copy unsorted.
func Sort(entries []*store.Entry, order SortOrder) []*store.Entry {
	sorted := make([]*store.Entry, len(entries))
	copy(sorted, entries)

	switch order {
	case SortLatest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date < sorted[j].Date
		})
	case SortTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	}
	return sorted
}
