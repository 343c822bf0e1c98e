package relationship

import (
	"math"
	"strings"

	model "github.com/zhouzirui/talklens/backend/internal/model/relationship"
)

const (
	placeholderUser1 = "{user1}"
	placeholderUser2 = "{user2}"
)

var (
	balanceLabels    = map[model.Balance]string{model.Equal: "バランス型", model.Bias: "偏り型"}
	tempoLabels      = map[model.Tempo]string{model.HighSpeed: "高速型", model.Leisurely: "まったり型"}
	expressionLabels = map[model.Expression]string{model.Story: "長文型", model.Resonance: "メディア型", model.Peace: "短文型"}
)

// Classifier maps an Input to a Verdict. It is safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
	types      model.Store
}

// NewClassifier builds a classifier. Zero threshold fields take their
// defaults; a nil store uses the built-in catalogue.
func NewClassifier(thresholds Thresholds, types model.Store) *Classifier {
	if types == nil {
		types = model.NewMemoryStore(model.Catalog())
	}
	return &Classifier{thresholds: thresholds.withDefaults(), types: types}
}

// Thresholds returns the tuning in effect.
func (c *Classifier) Thresholds() Thresholds {
	return c.thresholds
}

// Classify judges the three axes and renders the category text.
func (c *Classifier) Classify(in Input) model.Verdict {
	raw := model.RawStats{
		TotalMessages: in.TotalMessages,
		UserAChars:    in.Chars[0],
		UserBChars:    in.Chars[1],
		CallCount:     in.CallCount,
		StickerCount:  in.StickerCount,
	}
	if in.TotalMessages < c.thresholds.MinMessages {
		return c.egg(in, raw)
	}

	balance, balanceRate := c.judgeBalance(in)
	tempo, highSpeedRate, avgReply, counted := c.judgeTempo(in)
	expression, avgChars, mediaRate := c.judgeExpression(in)

	raw.TotalMediaCount = in.MediaCount
	raw.ValidReplyCount = counted

	key := model.Key(balance, tempo, expression)
	typ, ok := c.types.FindByKey(key)
	if !ok {
		return c.egg(in, raw)
	}

	user1, user2 := in.Users[0], in.Users[1]
	if balance == model.Bias && in.Chars[1] > in.Chars[0] {
		user1, user2 = in.Users[1], in.Users[0]
	}

	return model.Verdict{
		Type:      render(typ, user1, user2),
		Judgments: model.Judgments{Balance: balance, Tempo: tempo, Expression: expression},
		Metrics: model.VerdictMetrics{
			BalanceRate:        round(balanceRate, 2),
			HighSpeedReplyRate: round(highSpeedRate, 2),
			AvgReplyMinutes:    int(math.Round(avgReply)),
			AvgCharCount:       round(avgChars, 1),
			MediaRate:          round(mediaRate, 2),
		},
		RawStats: raw,
		Reason:   reason(balance, tempo, expression),
	}
}

func (c *Classifier) egg(in Input, raw model.RawStats) model.Verdict {
	typ, ok := c.types.FindByKey(model.EggKey)
	if !ok {
		typ = model.Type{Key: model.EggKey}
	}
	return model.Verdict{
		Type:     render(typ, in.Users[0], in.Users[1]),
		RawStats: raw,
	}
}

func (c *Classifier) judgeBalance(in Input) (model.Balance, float64) {
	total := in.Chars[0] + in.Chars[1]
	if total == 0 {
		return model.Equal, 0
	}
	rate := float64(max(in.Chars[0], in.Chars[1])) / float64(total)
	if rate >= c.thresholds.BiasRate {
		return model.Bias, rate
	}
	return model.Equal, rate
}

// judgeTempo returns the tempo, the fast-reply share, the mean gap and the
// number of gaps counted.
func (c *Classifier) judgeTempo(in Input) (model.Tempo, float64, float64, int) {
	counted, fast := 0, 0
	sum := 0.0
	for _, gap := range in.ReplyGaps {
		if gap >= c.thresholds.ReplyWindowMinutes {
			continue
		}
		counted++
		sum += gap
		if gap <= c.thresholds.HighSpeedMinutes {
			fast++
		}
	}
	if counted == 0 {
		return model.Leisurely, 0, 0, 0
	}

	rate := float64(fast) / float64(counted)
	avg := sum / float64(counted)
	if rate >= c.thresholds.HighSpeedRate {
		return model.HighSpeed, rate, avg, counted
	}
	return model.Leisurely, rate, avg, counted
}

func (c *Classifier) judgeExpression(in Input) (model.Expression, float64, float64) {
	avgChars := 0.0
	if in.TextMessages > 0 {
		avgChars = float64(in.TextChars) / float64(in.TextMessages)
	}
	mediaRate := 0.0
	if in.TotalMessages > 0 {
		mediaRate = float64(in.MediaCount) / float64(in.TotalMessages)
	}

	switch {
	case avgChars >= c.thresholds.StoryAvgChars:
		return model.Story, avgChars, mediaRate
	case mediaRate >= c.thresholds.ResonanceMediaRate:
		return model.Resonance, avgChars, mediaRate
	default:
		return model.Peace, avgChars, mediaRate
	}
}

func render(t model.Type, user1, user2 string) model.Type {
	r := strings.NewReplacer(placeholderUser1, user1, placeholderUser2, user2)
	t.Name = r.Replace(t.Name)
	t.Description = r.Replace(t.Description)
	t.DetailedDescription = r.Replace(t.DetailedDescription)
	return t
}

func reason(b model.Balance, t model.Tempo, e model.Expression) string {
	return "このタイプが選ばれたペアは...\n" +
		"メッセージ比率：" + balanceLabels[b] + "\n" +
		"返信スピード：" + tempoLabels[t] + "\n" +
		"表現スタイル：" + expressionLabels[e]
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
