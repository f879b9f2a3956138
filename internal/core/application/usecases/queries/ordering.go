// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Every query carries the caller's actor; list queries start from the
// caller's visibility set and narrow it with client filters.
package queries

import (
	"slices"
	"strings"

	"fixit/internal/core/ports"
)

// Ordering fields accepted per listing, in client-facing names.
var (
	userOrderingFields  = []string{"email", "first_name", "last_name", "user_type", "date_joined"}
	orderOrderingFields = []string{"created_date", "budget", "status"}
	offerOrderingFields = []string{"price", "expected_date", "last_time_date", "created_at"}
)

var (
	defaultUserOrdering  = []ports.Ordering{{Field: "date_joined", Descending: true}}
	defaultOrderOrdering = []ports.Ordering{{Field: "created_date", Descending: true}}
	defaultOfferOrdering = []ports.Ordering{{Field: "last_time_date", Descending: true}}
)

// ParseOrdering reads a comma separated list like "-budget,status".
// Unknown and repeated fields are dropped; when nothing usable is left the
// fallback ordering applies.
func ParseOrdering(raw string, allowed []string, fallback []ports.Ordering) []ports.Ordering {
	var (
		result []ports.Ordering
		seen   = make(map[string]struct{})
	)

	for _, term := range strings.Split(raw, ",") {
		term = strings.TrimSpace(term)
		desc := strings.HasPrefix(term, "-")
		field := strings.TrimPrefix(term, "-")
		if field == "" || !slices.Contains(allowed, field) {
			continue
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		result = append(result, ports.Ordering{Field: field, Descending: desc})
	}

	if len(result) == 0 {
		return fallback
	}
	return result
}
