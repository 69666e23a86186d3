package readability

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var registry = []Definition{
	{
		ID:          "RDB001",
		Name:        "flesch-kincaid-grade",
		Description: "Flesch-Kincaid Grade Level (US school grade).",
		Precision:   2,
		Compute: func(a *Analysis) Value {
			return FleschKincaidGrade(a.Counts())
		},
	},
	{
		ID:          "RDB002",
		Name:        "flesch-kincaid-ease",
		Description: "Flesch-Kincaid Reading Ease (higher is easier).",
		Precision:   2,
		Compute: func(a *Analysis) Value {
			return FleschKincaidEase(a.Counts())
		},
	},
	{
		ID:          "RDB003",
		Name:        "dale-chall",
		Description: "Dale-Chall score from the share of words missing from the easy-word list.",
		Precision:   2,
		Compute: func(a *Analysis) Value {
			return DaleChall(a.Counts())
		},
	},
	{
		ID:          "RDB004",
		Name:        "smog",
		Description: "SMOG grade; 0 below the minimum sentence count (30 by default).",
		Precision:   2,
		Compute:     (*Analysis).smog,
	},
	{
		ID:          "RDB005",
		Name:        "coleman-liau",
		Description: "Coleman-Liau index from letters and sentences per 100 words.",
		Precision:   2,
		Compute: func(a *Analysis) Value {
			return ColemanLiau(a.Counts())
		},
	},
	{
		ID:          "RDB006",
		Name:        "automated-readability",
		Description: "Automated Readability Index from characters per word and words per sentence.",
		Precision:   2,
		Compute: func(a *Analysis) Value {
			return AutomatedReadability(a.Counts())
		},
	},
	{
		ID:          "RDB007",
		Name:        "forcast",
		Description: "FORCAST grade from monosyllables in a fixed-size sample (150 by default); 0 for shorter documents.",
		Precision:   1,
		Compute:     (*Analysis).forcast,
	},
	{
		ID:          "RDB008",
		Name:        "linsear-write",
		Description: "Linsear Write grade from easy and hard words in the opening sample (100 words by default).",
		Precision:   2,
		Compute:     (*Analysis).linsearWrite,
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs.
// Empty names returns every metric.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return All(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// FormatValue renders a metric value for text output.
func FormatValue(def Definition, value Value) string {
	v := JSONValue(def, value)
	if v == nil {
		return "-"
	}
	n := v.(float64)
	if def.Precision < 0 {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	return fmt.Sprintf("%.*f", def.Precision, n)
}

// JSONValue converts a metric value into a JSON-safe scalar rounded to
// the metric's precision. Unavailable values return nil.
func JSONValue(def Definition, value Value) any {
	if !value.Available {
		return nil
	}
	if def.Precision < 0 {
		return value.Number
	}
	scale := math.Pow10(def.Precision)
	return math.Round(value.Number*scale) / scale
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	names := make([]string, 0, len(registry))
	for _, def := range registry {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
