package entities

import (
	"sort"
	"strings"
)

// StatusFilter is the closed five-state selector of the history view:
// "all" plus the four HistoryStatus values.
type StatusFilter string

const StatusFilterAll StatusFilter = "all"

// ParseStatusFilter validates a raw selector value. An empty value means
// "all"; anything outside the closed set is rejected.
func ParseStatusFilter(raw string) (StatusFilter, bool) {
	if raw == "" || raw == string(StatusFilterAll) {
		return StatusFilterAll, true
	}
	if HistoryStatus(raw).Recognized() {
		return StatusFilter(raw), true
	}
	return "", false
}

// FilterHistory returns the records matching both the free-text query and
// the status selector. Matching is a case-insensitive substring test of the
// trimmed query against the title and the denormalized vehicle
// plateNo/make/model; an empty query matches everything. Records are kept in
// their input order and returned verbatim.
func FilterHistory(items []HistoryItem, query string, status StatusFilter) []HistoryItem {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]HistoryItem, 0, len(items))
	for _, it := range items {
		if status != StatusFilterAll && it.Status != HistoryStatus(status) {
			continue
		}
		if q != "" && !matchesQuery(it, q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesQuery(it HistoryItem, q string) bool {
	if strings.Contains(strings.ToLower(it.Title), q) {
		return true
	}
	if it.Vehicle == nil {
		return false
	}
	return strings.Contains(strings.ToLower(it.Vehicle.PlateNo), q) ||
		strings.Contains(strings.ToLower(it.Vehicle.Make), q) ||
		strings.Contains(strings.ToLower(it.Vehicle.Model), q)
}

// SortByRecency returns a new slice ordered by CompletedAt descending.
//
// The comparison is lexicographic over the ISO-8601 strings, which is valid
// only because all upstream timestamps share the same fixed-width UTC format;
// this keeps the ordering wire-compatible with the upstream service. Records
// without a completion time compare as the empty string and therefore sort
// last. Ties keep their input order.
func SortByRecency(items []HistoryItem) []HistoryItem {
	out := make([]HistoryItem, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		return completedAt(out[i]) > completedAt(out[j])
	})
	return out
}

func completedAt(it HistoryItem) string {
	if it.CompletedAt == nil {
		return ""
	}
	return *it.CompletedAt
}
