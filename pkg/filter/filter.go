// Package filter matches copy-history entries against user patterns.
package filter

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"linkctl/pkg/history"
)

type FilterMode int

const (
	FilterModeNone FilterMode = iota
	FilterModeExact
	FilterModeContains
	FilterModeRegex
	FilterModeFuzzy
)

// ParseMode maps the --match-mode flag value to a FilterMode.
func ParseMode(name string) (FilterMode, error) {
	switch name {
	case "", "contains":
		return FilterModeContains, nil
	case "exact":
		return FilterModeExact, nil
	case "regex":
		return FilterModeRegex, nil
	case "fuzzy":
		return FilterModeFuzzy, nil
	default:
		return FilterModeNone, fmt.Errorf("unknown match mode '%s' (use exact, contains, regex or fuzzy)", name)
	}
}

type StringFilter struct {
	Pattern string
	Mode    FilterMode
	regex   *regexp.Regexp
}

func NewStringFilter(pattern string, mode FilterMode) (*StringFilter, error) {
	f := &StringFilter{
		Pattern: pattern,
		Mode:    mode,
	}

	if mode == FilterModeRegex {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern '%s': %w", pattern, err)
		}
		f.regex = re
	}

	return f, nil
}

func (f *StringFilter) Match(s string) bool {
	switch f.Mode {
	case FilterModeExact:
		return strings.EqualFold(s, f.Pattern)
	case FilterModeContains:
		return strings.Contains(strings.ToLower(s), strings.ToLower(f.Pattern))
	case FilterModeRegex:
		return f.regex != nil && f.regex.MatchString(s)
	case FilterModeFuzzy:
		return FuzzyMatch(f.Pattern, s)
	default:
		return true
	}
}

// MatchEntry reports whether the pattern matches the entry's URL or label.
func (f *StringFilter) MatchEntry(e history.Entry) bool {
	return f.Match(e.URL) || f.Match(e.Label)
}

// Entries returns the subset of entries matching the filter.
func (f *StringFilter) Entries(entries []history.Entry) []history.Entry {
	if f.Pattern == "" || f.Mode == FilterModeNone {
		return entries
	}
	matched := make([]history.Entry, 0, len(entries))
	for _, e := range entries {
		if f.MatchEntry(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

func FuzzyMatch(pattern, text string) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	pattern = strings.ToLower(pattern)
	text = strings.ToLower(text)

	return fuzzyMatchRecursive(pattern, text, 0, 0)
}

// fuzzyMatchRecursive checks that every pattern character appears in order
// in the text with enough characters left to place the remainder.
func fuzzyMatchRecursive(pattern, text string, pIdx, tIdx int) bool {
	if pIdx >= len(pattern) {
		return true
	}
	if tIdx >= len(text) {
		return false
	}

	if pattern[pIdx] == text[tIdx] {
		remainingChars := len(text) - tIdx - 1
		remainingPattern := len(pattern) - pIdx - 1

		if remainingPattern == 0 {
			return true
		}
		if remainingChars >= remainingPattern {
			return fuzzyMatchRecursive(pattern, text, pIdx+1, tIdx+1)
		}
	}

	return fuzzyMatchRecursive(pattern, text, pIdx, tIdx+1)
}

// FuzzyMatchRanked accepts a match when the Levenshtein similarity reaches
// the threshold.
func FuzzyMatchRanked(pattern, text string, threshold float64) bool {
	if pattern == "" {
		return true
	}
	if text == "" {
		return false
	}

	distance := LevenshteinDistance(pattern, text)
	maxLen := max(len(pattern), len(text))

	if maxLen == 0 {
		return true
	}

	similarity := 1.0 - float64(distance)/float64(maxLen)
	return similarity >= threshold
}

func LevenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	previousRow := make([]int, len(s2)+1)
	currentRow := make([]int, len(s2)+1)

	for i := 0; i <= len(s2); i++ {
		previousRow[i] = i
	}

	for i := 0; i < len(s1); i++ {
		currentRow[0] = i + 1

		for j := 0; j < len(s2); j++ {
			cost := 1
			if unicode.ToLower(rune(s1[i])) == unicode.ToLower(rune(s2[j])) {
				cost = 0
			}

			deletion := currentRow[j] + 1
			insertion := previousRow[j+1] + 1
			substitution := previousRow[j] + cost

			currentRow[j+1] = min(min(deletion, insertion), substitution)
		}

		previousRow, currentRow = currentRow, previousRow
	}

	return previousRow[len(s2)]
}
