package metrics

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

const (
	topTrending        = 5
	trendingMinimum    = 5
	trendingMultiplier = 2
)

func (e *Engine) rankings(c *conversation) (words, emoji talk.Pair[[]talk.TermCount]) {
	wordTallies := [2]*tally{newTally(), newTally()}
	emojiTallies := [2]*tally{newTally(), newTally()}

	c.valid(func(m talk.Message, who int) {
		if !e.countsTowardWords(m) {
			return
		}
		for _, w := range Tokenize(m.Body) {
			wordTallies[who].add(w, 1)
		}
		for _, cluster := range emojiClusters(m.Body) {
			emojiTallies[who].add(cluster, 1)
		}
	})

	for i := 0; i < 2; i++ {
		*words.At(i) = wordTallies[i].top(topTerms)
		*emoji.At(i) = emojiTallies[i].top(topTerms)
	}
	return words, emoji
}

// emojiClusters returns the grapheme clusters of body that contain an
// emoji, normalised to emoji presentation.
func emojiClusters(body string) []string {
	var clusters []string
	g := uniseg.NewGraphemes(body)
	for g.Next() {
		cluster := g.Str()
		if strings.IndexFunc(cluster, content.IsEmojiRune) < 0 {
			continue
		}
		clusters = append(clusters, content.ForceEmojiStyle(cluster))
	}
	return clusters
}

func (e *Engine) trendingWords(c *conversation) []talk.MonthlyTrend {
	byMonth := make(map[string]*tally)
	c.valid(func(m talk.Message, _ int) {
		if !e.countsTowardWords(m) {
			return
		}
		key := m.Timestamp.Format("2006-01")
		t, ok := byMonth[key]
		if !ok {
			t = newTally()
			byMonth[key] = t
		}
		for _, w := range Tokenize(m.Body) {
			t.add(w, 1)
		}
	})

	months := make([]string, 0, len(byMonth))
	for key := range byMonth {
		months = append(months, key)
	}
	sort.Strings(months)

	var trends []talk.MonthlyTrend
	for i := 1; i < len(months); i++ {
		prev, cur := byMonth[months[i-1]], byMonth[months[i]]

		var words []talk.TrendingWord
		for _, w := range cur.order {
			count, before := cur.get(w), prev.get(w)
			increase := count - before
			switch {
			case before > 0 && count >= before*trendingMultiplier && increase >= trendingMinimum:
			case before == 0 && count >= trendingMinimum:
			default:
				continue
			}
			words = append(words, talk.TrendingWord{Word: w, Count: count, Previous: before, Increase: increase})
		}
		if len(words) == 0 {
			continue
		}
		sort.SliceStable(words, func(a, b int) bool {
			return words[a].Increase > words[b].Increase
		})
		if len(words) > topTrending {
			words = words[:topTrending]
		}
		trends = append(trends, talk.MonthlyTrend{Month: months[i], Words: words})
	}
	return trends
}
