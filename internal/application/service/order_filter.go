package service

import (
	"sort"
	"strings"
)

// FilterOrders returns the orders matching the search string, sorted by
// creation time. It is pure: the input slice is never mutated and identical
// inputs always produce identical output. The match is a case-insensitive
// substring test across order id, customer name, customer email and the
// resolved venue name. Ties in creation time keep their original relative
// order; unparseable creation times sort as the lowest possible value.
func FilterOrders(orders []OrderView, search string, descending bool) []OrderView {
	needle := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		if needle == "" || matchesOrder(o, needle) {
			filtered = append(filtered, o)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].CreatedAtTime, filtered[j].CreatedAtTime
		if descending {
			return a.After(b)
		}
		return a.Before(b)
	})

	return filtered
}

func matchesOrder(o OrderView, needle string) bool {
	for _, field := range []string{o.ID, o.CustomerName, o.CustomerEmail, o.VenueName} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
