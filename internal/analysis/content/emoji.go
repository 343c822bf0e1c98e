package content

import (
	"strings"
	"unicode/utf8"
)

const (
	variationSelector16 = '\uFE0F'
	zeroWidthJoiner     = '\u200D'
)

// IsEmojiRune reports whether r falls in the pictographic ranges used to
// decide that a grapheme or body is emoji.
func IsEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F9FF: // symbols, emoticons, transport, supplemental
		return true
	case r >= 0x2600 && r <= 0x26FF: // misc symbols
		return true
	case r >= 0x2700 && r <= 0x27BF: // dingbats
		return true
	}
	return false
}

// IsExtendedEmojiRune widens IsEmojiRune with flags, newer pictographs,
// arrows, technical symbols, selectors and the joiner.
func IsExtendedEmojiRune(r rune) bool {
	if IsEmojiRune(r) {
		return true
	}
	switch {
	case r >= 0x1F1E0 && r <= 0x1F1FF,
		r >= 0x1FA00 && r <= 0x1FAFF,
		r >= 0x2190 && r <= 0x21FF,
		r >= 0x2300 && r <= 0x23FF,
		r >= 0x2B00 && r <= 0x2BFF,
		r >= 0xFE00 && r <= 0xFE0F,
		r == zeroWidthJoiner:
		return true
	}
	return false
}

// IsEmojiOnly reports whether the trimmed body is made of emoji and nothing
// else. Selectors, joiners and skin tones may glue emoji together but do not
// count on their own.
func IsEmojiOnly(body string) bool {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return false
	}
	seen := false
	for _, r := range trimmed {
		switch {
		case IsEmojiRune(r):
			seen = true
		case r == variationSelector16 || r == zeroWidthJoiner:
		default:
			return false
		}
	}
	return seen
}

// ContainsEmoji reports whether body has at least one extended-range emoji.
func ContainsEmoji(body string) bool {
	return strings.IndexFunc(body, IsExtendedEmojiRune) >= 0
}

// ForceEmojiStyle appends U+FE0F to symbol-range characters that lack it,
// so "❤" and "❤️" are counted as the same emoji.
func ForceEmojiStyle(cluster string) string {
	if strings.IndexFunc(cluster, isTextDefaultSymbol) < 0 {
		return cluster
	}
	var b strings.Builder
	b.Grow(len(cluster) + 3)
	for i, r := range cluster {
		b.WriteRune(r)
		if !isTextDefaultSymbol(r) {
			continue
		}
		next, _ := utf8.DecodeRuneInString(cluster[i+utf8.RuneLen(r):])
		if next != variationSelector16 {
			b.WriteRune(variationSelector16)
		}
	}
	return b.String()
}

func isTextDefaultSymbol(r rune) bool {
	return r >= 0x2600 && r <= 0x27BF
}
