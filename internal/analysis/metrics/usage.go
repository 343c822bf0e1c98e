package metrics

import (
	"regexp"
	"strings"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

var laughterTokens = []string{"笑", "ｗ", "w", "草", "爆笑", "www", "わら", "笑い", "笑顔", "😂", "😄", "😆"}

var affectionKeywords = []string{
	"愛してる", "愛してます", "愛しています", "大好き", "すきだよ", "好きだよ",
	"love you", "love u", "あいしてる", "ずっと一緒",
}

var (
	likesSomethingPattern = regexp.MustCompile(`が(?:大?好き|すき)`)
	likesYouPattern       = regexp.MustCompile(`(?:君|あなた|お前)が(?:大?好き|すき)`)
)

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func (e *Engine) usage(c *conversation) talk.Pair[talk.UsageRate] {
	var out talk.Pair[talk.UsageRate]
	c.valid(func(m talk.Message, who int) {
		rate := out.At(who)
		rate.Messages++
		switch {
		case e.classifier.IsSticker(m.Body):
			rate.Stickers++
		case content.ContainsEmoji(m.Body):
			rate.EmojiMessages++
		}
	})
	for i := 0; i < 2; i++ {
		rate := out.At(i)
		rate.StickerRate = percent(rate.Stickers, rate.Messages)
		rate.EmojiRate = percent(rate.EmojiMessages, rate.Messages)
	}
	return out
}

func histograms(c *conversation) (hours [24]int, weekdays [7]int) {
	c.valid(func(m talk.Message, _ int) {
		hours[m.Timestamp.Hour()]++
		weekdays[m.Timestamp.Weekday()]++
	})
	return hours, weekdays
}

func messageCounts(c *conversation) talk.Pair[int] {
	var out talk.Pair[int]
	c.valid(func(_ talk.Message, who int) {
		*out.At(who)++
	})
	return out
}

func (e *Engine) laughter(c *conversation) talk.Pair[talk.Laughter] {
	tallies := [2]*tally{newTally(), newTally()}
	var messages [2]int

	c.valid(func(m talk.Message, who int) {
		messages[who]++
		if m.Body == "" || e.classifier.IsSticker(m.Body) {
			return
		}
		for _, token := range laughterTokens {
			tallies[who].add(token, strings.Count(m.Body, token))
		}
	})

	var out talk.Pair[talk.Laughter]
	for i := 0; i < 2; i++ {
		l := out.At(i)
		l.Count = tallies[i].total()
		if messages[i] > 0 {
			l.Rate = float64(l.Count) / float64(messages[i])
		}
		l.Breakdown = tallies[i].top(0)
	}
	return out
}

func (e *Engine) greetings(c *conversation) talk.Pair[talk.Greetings] {
	var out talk.Pair[talk.Greetings]
	c.valid(func(m talk.Message, who int) {
		if e.classifier.IsSticker(m.Body) {
			return
		}
		g := out.At(who)
		if e.classifier.IsMorningGreeting(m.Body) {
			g.Morning++
		}
		if e.classifier.IsNightGreeting(m.Body) {
			g.Night++
		}
	})
	return out
}

func (e *Engine) affection(c *conversation) talk.Pair[int] {
	var out talk.Pair[int]
	c.valid(func(m talk.Message, who int) {
		if e.classifier.IsSticker(m.Body) {
			return
		}
		if IsAffectionate(m.Body) {
			*out.At(who)++
		}
	})
	return out
}

// IsAffectionate reports whether body declares affection. "Xが好き" about a
// third thing does not count unless X is a second-person referent.
func IsAffectionate(body string) bool {
	lower := strings.ToLower(body)
	matched := false
	for _, k := range affectionKeywords {
		if strings.Contains(lower, k) {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}
	return !likesSomethingPattern.MatchString(body) || likesYouPattern.MatchString(body)
}
