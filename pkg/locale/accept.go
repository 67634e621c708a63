package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps the header size we are willing to parse.
// RFC 7231 sets no limit; 4KB covers every legitimate header.
const maxAcceptLanguageLength = 4096

// Preference is one entry of an Accept-Language header.
type Preference struct {
	Tag    string
	Weight float64
}

// ParseAcceptLanguage splits an Accept-Language header into preferences ordered by
// descending weight. Entries with equal weight keep their header order.
// Missing or malformed weights count as 1.0, entries with q=0 are dropped.
// Tags are returned as sent, without case normalisation.
func ParseAcceptLanguage(header string) []Preference {
	if header == "" {
		return nil
	}

	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var prefs []Preference

	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tagAndParams := strings.Split(part, ";")
		tag := strings.TrimSpace(tagAndParams[0])
		if tag == "" {
			continue
		}

		weight := 1.0
		for _, param := range tagAndParams[1:] {
			param = strings.TrimSpace(param)
			if !strings.HasPrefix(param, "q=") {
				continue
			}
			if q, err := strconv.ParseFloat(param[2:], 64); err == nil && q >= 0 && q <= 1 {
				weight = q
			}
			break
		}

		// q=0 means "not acceptable"
		if weight == 0 {
			continue
		}

		prefs = append(prefs, Preference{Tag: tag, Weight: weight})
	}

	slices.SortStableFunc(prefs, func(a, b Preference) int {
		return cmp.Compare(b.Weight, a.Weight)
	})

	return prefs
}

// PrimarySubtag returns the part of a language tag before the first "-".
func PrimarySubtag(tag string) string {
	if idx := strings.IndexByte(tag, '-'); idx >= 0 {
		return tag[:idx]
	}
	return tag
}

// NegotiateHeader walks the header preferences in weight order and returns the first
// primary subtag the registry supports. The boolean is false when nothing matched.
func NegotiateHeader(header string, reg *Registry) (string, bool) {
	for _, pref := range ParseAcceptLanguage(header) {
		if code := PrimarySubtag(pref.Tag); reg.IsSupported(code) {
			return code, true
		}
	}
	return "", false
}
