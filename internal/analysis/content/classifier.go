package content

import (
	"regexp"
	"strings"
)

var (
	dateOnlyPattern = regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}`)
	timeOnlyPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2})?$`)
)

// Classifier evaluates message bodies against a list of locale pattern sets.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	locales []PatternSet
}

// NewClassifier builds a classifier; with no arguments DefaultLocales is used.
func NewClassifier(locales ...PatternSet) *Classifier {
	if len(locales) == 0 {
		locales = DefaultLocales
	}
	return &Classifier{locales: locales}
}

// Default is the classifier for Japanese and English exports.
var Default = NewClassifier()

// IsSystemMessage reports whether body is an administrative line rather than
// something a participant typed.
func (c *Classifier) IsSystemMessage(body string) bool {
	trimmed := strings.TrimSpace(body)
	lower := strings.ToLower(trimmed)

	for _, set := range c.locales {
		if containsAny(lower, set.CallKeywords) ||
			containsAny(lower, set.UnsentPhrases) ||
			containsAny(lower, set.ReactionPhrases) ||
			containsAny(lower, set.MembershipPhrases) ||
			containsAny(lower, set.CollectionKeywords) ||
			containsAny(lower, set.SecurityPhrases) ||
			hasAnyPrefix(lower, set.SecurityPrefixes) {
			return true
		}
	}

	return dateOnlyPattern.MatchString(trimmed) || timeOnlyPattern.MatchString(trimmed)
}

// IsCallEvent reports whether body mentions a call in any configured locale.
func (c *Classifier) IsCallEvent(body string) bool {
	lower := strings.ToLower(body)
	for _, set := range c.locales {
		if containsAny(lower, set.CallKeywords) {
			return true
		}
	}
	return false
}

// IsMissedCall reports whether a call event carries no talk time.
func (c *Classifier) IsMissedCall(body string) bool {
	lower := strings.ToLower(body)
	for _, set := range c.locales {
		if containsAny(lower, set.MissedCallPhrases) {
			return true
		}
	}
	return false
}

// IsMorningGreeting reports whether the trimmed body opens with a good-morning phrase.
func (c *Classifier) IsMorningGreeting(body string) bool {
	trimmed := strings.TrimSpace(body)
	for _, set := range c.locales {
		if set.MorningGreeting != nil && set.MorningGreeting.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// IsNightGreeting reports whether the trimmed body opens with a good-night phrase.
func (c *Classifier) IsNightGreeting(body string) bool {
	trimmed := strings.TrimSpace(body)
	for _, set := range c.locales {
		if set.NightGreeting != nil && set.NightGreeting.MatchString(trimmed) {
			return true
		}
	}
	return false
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(lower string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(lower, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// Package-level shorthands over Default.

func IsSystemMessage(body string) bool { return Default.IsSystemMessage(body) }
func IsCallEvent(body string) bool { return Default.IsCallEvent(body) }
func ParseCallDuration(body string) int { return Default.ParseCallDuration(body) }
func IsMissedCall(body string) bool { return Default.IsMissedCall(body) }
func IsMorningGreeting(body string) bool { return Default.IsMorningGreeting(body) }
func IsNightGreeting(body string) bool { return Default.IsNightGreeting(body) }
