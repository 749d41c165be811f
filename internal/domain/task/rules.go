package task

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits.
const (
	MinTitleLength       = 3
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	DeadlineHorizonYears = 5
)

// CheckTitle returns a message describing why raw is not an acceptable
// title, or "" when it is. The minimum applies to the trimmed value and
// the maximum to the raw value.
func CheckTitle(raw string) string {
	if utf8.RuneCountInString(strings.TrimSpace(raw)) < MinTitleLength {
		return fmt.Sprintf("must be at least %d characters", MinTitleLength)
	}
	if utf8.RuneCountInString(raw) > MaxTitleLength {
		return fmt.Sprintf("must be at most %d characters", MaxTitleLength)
	}
	return ""
}

// CheckDescription returns a message describing why raw is not an acceptable
// description, or "" when it is.
func CheckDescription(raw string) string {
	if utf8.RuneCountInString(raw) > MaxDescriptionLength {
		return fmt.Sprintf("must be at most %d characters", MaxDescriptionLength)
	}
	return ""
}

// ParseDeadline parses an RFC 3339 timestamp and checks that it falls in
// (now, now+5y]. On failure the returned message is non-empty.
func ParseDeadline(raw string, now time.Time) (time.Time, string) {
	d, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, "must be an RFC 3339 timestamp"
	}
	if !d.After(now) {
		return time.Time{}, "must be in the future"
	}
	if d.After(now.AddDate(DeadlineHorizonYears, 0, 0)) {
		return time.Time{}, fmt.Sprintf("must be within %d years", DeadlineHorizonYears)
	}
	return d, ""
}

// TitleSearchTerms returns the lower-cased fragments used to look for
// overlapping titles: the whole trimmed title followed by every word long
// enough to be a title on its own.
func TitleSearchTerms(title string) []string {
	whole := strings.ToLower(strings.TrimSpace(title))
	if whole == "" {
		return nil
	}

	terms := []string{whole}
	seen := map[string]struct{}{whole: {}}
	for _, word := range strings.Fields(whole) {
		if utf8.RuneCountInString(word) < MinTitleLength {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		terms = append(terms, word)
	}
	return terms
}

// TitlesOverlap reports whether candidate contains the whole of existing or
// one of its search terms, ignoring case. Together with a store lookup for
// the terms of candidate this makes the overlap check independent of which
// title was created first.
func TitlesOverlap(candidate, existing string) bool {
	for _, term := range TitleSearchTerms(existing) {
		if MatchesTitle(candidate, term) {
			return true
		}
	}
	return false
}

// MatchesTitle reports whether title contains pattern, ignoring case.
func MatchesTitle(title, pattern string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(pattern))
}
