package metrics

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

const longestPreviewRunes = 100

func (e *Engine) longestMessages(c *conversation) talk.Pair[*talk.LongestMessage] {
	var out talk.Pair[*talk.LongestMessage]
	c.valid(func(m talk.Message, who int) {
		if m.IsSticker || e.classifier.IsSticker(m.Body) || hasLinkOrPlaceholder(e, m.Body) {
			return
		}
		length := utf8.RuneCountInString(m.Body)
		current := out.At(who)
		if *current != nil && (*current).Length >= length {
			return
		}
		*current = &talk.LongestMessage{
			Text:      m.Body,
			Length:    length,
			Date:      m.Timestamp.Format("2006/1/2"),
			Timestamp: m.Timestamp,
		}
	})

	for i := 0; i < 2; i++ {
		if lm := *out.At(i); lm != nil {
			lm.Text, lm.Truncated = truncate(lm.Text, longestPreviewRunes)
		}
	}
	return out
}

// truncate cuts s to n runes plus an ellipsis, never splitting a grapheme.
func truncate(s string, n int) (string, bool) {
	if utf8.RuneCountInString(s) <= n {
		return s, false
	}
	cut := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		_, to := g.Positions()
		if utf8.RuneCountInString(s[:to]) > n {
			break
		}
		cut = to
	}
	return s[:cut] + "...", true
}

func hasLinkOrPlaceholder(e *Engine, body string) bool {
	switch {
	case urlPattern.MatchString(body),
		wwwPattern.MatchString(body),
		domainPathPattern.MatchString(body),
		emailPattern.MatchString(body):
		return true
	}
	_, ok := e.classifier.FindPlaceholder(body)
	return ok
}
