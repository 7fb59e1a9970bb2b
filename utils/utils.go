package utils

import (
	"regexp"
	"strings"

	"github.com/biter777/countries"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9\-]`)

// SlugifyLocation builds the front-end route slug for a race location,
// e.g. "Mexico City" -> "mexico-city-gp".
func SlugifyLocation(location string) string {
	slug := strings.ReplaceAll(strings.ToLower(location), " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "")
	return slug + "-gp"
}

// nationalityCodes maps upstream nationality adjectives that no country
// lookup resolves. Mirrors the upstream vocabulary.
var nationalityCodes = map[string]string{
	"American":      "us",
	"Argentine":     "ar",
	"Australian":    "au",
	"Austrian":      "at",
	"Belgian":       "be",
	"Brazilian":     "br",
	"British":       "gb",
	"Canadian":      "ca",
	"Chilean":       "cl",
	"Chinese":       "cn",
	"Colombian":     "co",
	"Czech":         "cz",
	"Danish":        "dk",
	"Dutch":         "nl",
	"Finnish":       "fi",
	"French":        "fr",
	"German":        "de",
	"Hungarian":     "hu",
	"Indian":        "in",
	"Indonesian":    "id",
	"Irish":         "ie",
	"Italian":       "it",
	"Japanese":      "jp",
	"Luxembourgish": "lu",
	"Malaysian":     "my",
	"Mexican":       "mx",
	"Monegasque":    "mc",
	"New Zealander": "nz",
	"Polish":        "pl",
	"Portuguese":    "pt",
	"Russian":       "ru",
	"Saudi":         "sa",
	"Singaporean":   "sg",
	"South African": "za",
	"South Korean":  "kr",
	"Spanish":       "es",
	"Swedish":       "se",
	"Swiss":         "ch",
	"Thai":          "th",
	"Turkish":       "tr",
	"Venezuelan":    "ve",
}

// CountryCode2 converts a country name to its lowercase ISO 3166-1 alpha-2
// code. Unresolvable names fall back to a deterministic truncation of the
// name itself, so the result is never empty for non-empty input.
func CountryCode2(name string) string {
	if name == "" {
		return ""
	}
	if c := countries.ByName(name); c != countries.Unknown {
		return strings.ToLower(c.Alpha2())
	}
	return truncatedCode(name, 2)
}

// CountryCode3 converts a country name to its uppercase ISO 3166-1 alpha-3
// code, with the same truncation fallback as CountryCode2.
func CountryCode3(name string) string {
	if name == "" {
		return ""
	}
	if c := countries.ByName(name); c != countries.Unknown {
		return c.Alpha3()
	}
	return strings.ToUpper(truncatedCode(name, 3))
}

// NationalityCode converts a nationality adjective or country name to a
// lowercase alpha-2 code. Unknown inputs fall back to truncation, so the
// result is stable and non-empty for any non-trivial input.
func NationalityCode(nationality string) string {
	if nationality == "" {
		return ""
	}
	if code, ok := nationalityCodes[nationality]; ok {
		return code
	}
	if c := countries.ByName(nationality); c != countries.Unknown {
		return strings.ToLower(c.Alpha2())
	}
	return truncatedCode(nationality, 2)
}

func truncatedCode(name string, n int) string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return ""
	}
	runes := []rune(cleaned)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
