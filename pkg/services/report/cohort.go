package report

import (
	"context"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yzxotic23-commits/nexsight/pkg/models/domain"
)

var monthAbbrevs = [...]string{
	"jan", "feb", "mar", "apr", "may", "jun",
	"jul", "aug", "sep", "oct", "nov", "dec",
}

// MonthPatterns enumerates the accepted month spellings for cohort labels,
// most specific first. For January 2026: "jan-2026", "jan2026", "jan-26",
// "jan". This list is the whole spelling policy — matching never builds
// month strings anywhere else.
func MonthPatterns(m domain.Month) []string {
	abbrev := monthAbbrevs[int(m.Month)-1]
	year := strconv.Itoa(m.Year)
	return []string{
		abbrev + "-" + year,
		abbrev + year,
		abbrev + "-" + year[len(year)-2:],
		abbrev,
	}
}

// Classifier decides whether a record's labels place it in a month cohort.
type Classifier struct {
	// RequiredTag must appear (case-insensitive substring) in at least one
	// label, e.g. "wealths".
	RequiredTag string

	// AllowFallback serves the tag-only cohort when strict month matching
	// comes up empty. Off by default; meant for debugging, and always
	// logged when it kicks in.
	AllowFallback bool
}

// Matches reports whether the label set satisfies both the tag rule and
// the month rule. An empty label set never matches.
func (c Classifier) Matches(labels []string, m domain.Month) bool {
	return c.hasTag(labels) && MatchesMonth(labels, m)
}

// MatchesMonth reports whether any label carries the month in one of the
// accepted spellings, independent of any tag rule.
func MatchesMonth(labels []string, m domain.Month) bool {
	return hasAnyPattern(labels, MonthPatterns(m))
}

// Filter splits records into the month cohort. When strict matching yields
// nothing, fallback is allowed, and the tag rule alone matches records,
// the tag-only cohort is returned with fallback=true.
func (c Classifier) Filter(ctx context.Context, records []domain.Record, m domain.Month) ([]domain.Record, bool) {
	patterns := MonthPatterns(m)

	var strict, tagOnly []domain.Record
	for _, r := range records {
		if !c.hasTag(r.Labels) {
			continue
		}
		tagOnly = append(tagOnly, r)
		if hasAnyPattern(r.Labels, patterns) {
			strict = append(strict, r)
		}
	}

	if len(strict) > 0 || !c.AllowFallback || len(tagOnly) == 0 {
		return strict, false
	}

	logger := zerolog.Ctx(ctx)
	logger.Warn().
		Str("month", m.String()).
		Str("tag", c.RequiredTag).
		Int("tag_only_count", len(tagOnly)).
		Msg("no month-labelled records, serving tag-only cohort")
	return tagOnly, true
}

func (c Classifier) hasTag(labels []string) bool {
	tag := strings.ToLower(c.RequiredTag)
	for _, l := range labels {
		if strings.Contains(strings.ToLower(l), tag) {
			return true
		}
	}
	return false
}

func hasAnyPattern(labels []string, patterns []string) bool {
	for _, l := range labels {
		lower := strings.ToLower(l)
		for _, p := range patterns {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}
	return false
}
