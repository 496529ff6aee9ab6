// Package location provides place-name normalization, the gazetteer of known
// localities, ranked local search over it, and the geolocation fallback.
package location

import (
	"strings"
)

// Placeholder is returned when a name has no usable segments.
const Placeholder = "Unknown Location"

// maxSegments is the number of unique segments a normalized name may keep.
const maxSegments = 2

// Normalize collapses a raw place name such as "Delhi,Delhi,Delhi" into a
// canonical label of at most two unique comma-separated segments.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(raw string) string {
	segments := uniqueSegments(raw)
	if len(segments) == 0 {
		return Placeholder
	}
	if len(segments) > maxSegments {
		segments = segments[:maxSegments]
	}
	return strings.Join(segments, ", ")
}

// SearchTerm picks the term sent upstream for a name lookup. For a name with
// two or more segments whose second-to-last segment is longer than two
// characters ("Koramangala, Bangalore, Karnataka" -> "Bangalore") that
// segment is used, otherwise the normalized name as a whole.
func SearchTerm(raw string) string {
	segments := uniqueSegments(raw)
	if len(segments) >= 2 {
		if candidate := segments[len(segments)-2]; len(candidate) > 2 {
			return candidate
		}
	}
	return Normalize(raw)
}

func uniqueSegments(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	segments := make([]string, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, dup := seen[part]; dup {
			continue
		}
		seen[part] = struct{}{}
		segments = append(segments, part)
	}
	return segments
}
