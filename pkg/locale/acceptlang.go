package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing against oversized input.
const maxAcceptLanguageLength = 4096

// weightedTag is one Accept-Language entry with its quality value.
type weightedTag struct {
	tag     string
	quality float64
}

// ParseAcceptLanguage picks the best match for an Accept-Language header
// from the available locales. Entries are considered in descending
// quality order; an exact tag match wins over a primary-language family
// match of equal quality. When the header is empty or nothing matches,
// the first available locale is returned, so the result is always usable.
//
//	ParseAcceptLanguage("en-US,en;q=0.9,pl;q=0.8", []string{"pl", "en", "de"})
//	// "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	for _, entry := range parseWeightedTags(header) {
		for _, avail := range available {
			if entry.tag == strings.ToLower(avail) {
				return avail
			}
		}
		for _, avail := range available {
			if Normalize(entry.tag) == Normalize(avail) {
				return avail
			}
		}
	}

	return available[0]
}

// parseWeightedTags splits an Accept-Language header into lowercase tags
// sorted by descending quality. Malformed quality values default to 1,
// and the "*" wildcard is dropped since it expresses no preference.
func parseWeightedTags(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tag, qPart, hasQuality := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if rest, ok := strings.CutPrefix(qPart, "q="); ok {
				if q, err := strconv.ParseFloat(rest, 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if tag == "" || tag == "*" {
			continue
		}
		tags = append(tags, weightedTag{
			tag:     strings.ToLower(tag),
			quality: quality,
		})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})
	return tags
}
