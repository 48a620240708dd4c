// Package normalize holds the pure per-field cleaning rules shared by the
// pipeline loaders. Every function is deterministic and side-effect free;
// bad input degrades to a zero value, never an error.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ICP tier labels, in priority order. A contact flagged for more than one
// tier takes the first matching label.
const (
	TierSpecific = "Specific"
	TierGlobal   = "Global"
	TierBroad    = "Broad"
	TierNonICP   = "Non-ICP"
	TierUnknown  = "Unknown"
)

// ReactionTypes are the five reaction sub-counts extracted from the nested
// content-performance payload of a post.
var ReactionTypes = []string{"LIKE", "PRAISE", "EMPATHY", "INTEREST", "APPRECIATION"}

// IdentityKey normalizes a profile URL into the join key used to match the
// same person across source files: trim whitespace, drop one trailing slash.
func IdentityKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	return s
}

// dateLayouts are tried in order by ParseDate. The two-digit-year layouts
// cover excelize's default formatting of date-styled cells.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006 15:04",
	"1/2/06",
	"1/2/2006",
	"Jan 2, 2006",
	"2-Jan-06",
}

// excelEpoch is day zero of the 1900 date system used by xlsx serial dates.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseDate parses a timestamp from a cell string. Unparseable input yields
// nil, never an error. Numeric strings are treated as Excel serial dates.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return serialDate(serial)
	}
	return nil
}

// ParseDateValue parses a timestamp from an untyped cell value: time values
// pass through, numbers are Excel serials, strings go through ParseDate.
func ParseDateValue(v any) *time.Time {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		return &x
	case *time.Time:
		return x
	case float64:
		return serialDate(x)
	case string:
		return ParseDate(x)
	default:
		return nil
	}
}

func serialDate(serial float64) *time.Time {
	// Serial dates below 1 would predate the 1900 epoch; treat as junk.
	if serial < 1 {
		return nil
	}
	t := excelEpoch.Add(time.Duration(serial * float64(24*time.Hour)))
	t = t.Round(time.Second)
	return &t
}

// WeekOf returns the Monday starting the ISO calendar week that contains t,
// at midnight in t's location. Nil input yields nil.
func WeekOf(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	monday := day.AddDate(0, 0, -offset)
	return &monday
}

// ParseNumber coerces a cell value to a number. Non-numeric input yields nil.
func ParseNumber(v any) *float64 {
	switch x := v.(type) {
	case float64:
		return &x
	case int:
		f := float64(x)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(x, ",", ""))
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

// ReactionCounts extracts the reaction_counts mapping from a content
// performance payload. The payload is a tagged variant: a JSON-encoded
// object, a JSON-encoded array whose first element is an object, an already
// decoded object, or junk. Any decode failure or shape mismatch yields an
// empty mapping, never an error.
func ReactionCounts(payload any) map[string]int {
	obj := decodePayload(payload)
	counts := map[string]int{}
	if obj == nil {
		return counts
	}
	raw, ok := obj["reaction_counts"].(map[string]any)
	if !ok {
		return counts
	}
	for name, v := range raw {
		if n := ParseNumber(v); n != nil {
			counts[name] = int(*n)
		}
	}
	return counts
}

// decodePayload resolves the object/array-of-one/invalid variants once at
// the boundary.
func decodePayload(payload any) map[string]any {
	var decoded any
	switch x := payload.(type) {
	case nil:
		return nil
	case map[string]any:
		decoded = x
	case []any:
		decoded = x
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return nil
		}
		if err := json.Unmarshal([]byte(s), &decoded); err != nil {
			return nil
		}
	default:
		return nil
	}

	switch d := decoded.(type) {
	case map[string]any:
		return d
	case []any:
		if len(d) == 0 {
			return nil
		}
		if obj, ok := d[0].(map[string]any); ok {
			return obj
		}
		return nil
	default:
		return nil
	}
}

// ICPTier classifies a contact from its three raw flag columns. Flags match
// on the literal "Yes"; priority is Specific > Global > Broad.
func ICPTier(broad, global, specific string) string {
	switch {
	case specific == "Yes":
		return TierSpecific
	case global == "Yes":
		return TierGlobal
	case broad == "Yes":
		return TierBroad
	default:
		return TierNonICP
	}
}

// IsICP reports whether any of the three raw flags is literally "Yes".
func IsICP(broad, global, specific string) bool {
	return broad == "Yes" || global == "Yes" || specific == "Yes"
}
