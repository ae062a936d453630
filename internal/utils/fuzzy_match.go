package utils

import (
	"strings"
)

// manufacturerAliases maps lower-cased shorthand and marketing names to the
// display name used for the manufacturer facet
var manufacturerAliases = map[string]string{
	"bg":                    "BG Manufacturing",
	"bg mfg":                "BG Manufacturing",
	"bg manufacturing":      "BG Manufacturing",
	"champion":              "Champion",
	"champion homes":        "Champion",
	"clayton":               "Clayton",
	"clayton homes":         "Clayton",
	"franklin":              "Franklin",
	"franklin homes":        "Franklin",
	"southern energy":       "Southern Energy",
	"southern energy homes": "Southern Energy",
	"seh":                   "Southern Energy",
	"live oak":              "Live Oak",
	"live oak homes":        "Live Oak",
}

// NormalizeManufacturer returns the display name for a manufacturer.
// Unknown names are returned trimmed but otherwise unchanged.
func NormalizeManufacturer(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := manufacturerAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// FuzzyMatchManufacturer reports whether a user supplied term refers to the
// given manufacturer display name
func FuzzyMatchManufacturer(term, manufacturer string) bool {
	termNorm := strings.ToLower(NormalizeManufacturer(term))
	manufNorm := strings.ToLower(NormalizeManufacturer(manufacturer))
	if termNorm == "" {
		return false
	}
	return termNorm == manufNorm
}

// MatchOption resolves raw against a list of option values, case-insensitively
// and through the manufacturer alias table. It returns the option as spelled
// in the list.
func MatchOption(raw string, options []string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	for _, opt := range options {
		if opt == trimmed {
			return opt, true
		}
	}
	for _, opt := range options {
		if strings.EqualFold(opt, trimmed) || FuzzyMatchManufacturer(trimmed, opt) {
			return opt, true
		}
	}
	return "", false
}

// Slugify lower-cases s and joins its words with dashes
func Slugify(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
