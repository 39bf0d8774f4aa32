package normalize

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// CleanRoomTypeList returns the sorted, de-duplicated, non-empty room types.
func CleanRoomTypeList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

var (
	partySizeMarkers = []string{"khách", "người lớn", "trẻ em"}
	geniusPattern    = regexp.MustCompile(`(?i)genius`)
)

// SplitGuestCell reads the guest column of a booking-platform export, where a
// cell holds the name, an optional "Genius" badge and party-size lines.
func SplitGuestCell(lines []string) (string, bool) {
	var (
		parts  []string
		genius bool
	)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if name, badge := StripGenius(line); badge {
			genius = true
			if name != "" && !isPartySize(name) {
				parts = append(parts, name)
			}
			continue
		}
		if isPartySize(line) {
			continue
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, " "), genius
}

// StripGenius removes a "Genius" badge in any letter case from s and reports
// whether one was present.
func StripGenius(s string) (string, bool) {
	if !geniusPattern.MatchString(s) {
		return strings.TrimSpace(s), false
	}
	return strings.Join(strings.Fields(geniusPattern.ReplaceAllString(s, "")), " "), true
}

func isPartySize(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range partySizeMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ParseGenius interprets membership flags written as booleans, numbers or "Có"/"Không".
func ParseGenius(input any) bool {
	switch v := input.(type) {
	case nil:
		return false
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	switch strings.ToLower(strings.TrimSpace(fmt.Sprint(input))) {
	case "có", "co", "yes", "y", "true", "1", "genius":
		return true
	default:
		return false
	}
}
