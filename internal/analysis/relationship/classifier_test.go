package relationship

import (
	"strings"
	"testing"
	"time"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/analysis/transcript"
	model "github.com/zhouzirui/talklens/backend/internal/model/relationship"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultThresholds(), nil)
}

// conversation alternates A and B every gap minutes with fixed-length bodies.
func conversation(n int, gap time.Duration, bodyA, bodyB string) []talk.Message {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	msgs := make([]talk.Message, 0, n)
	for i := 0; i < n; i++ {
		sender, body := "A", bodyA
		if i%2 == 1 {
			sender, body = "B", bodyB
		}
		msgs = append(msgs, talk.Message{
			Timestamp: start.Add(time.Duration(i) * gap),
			Sender:    sender,
			Body:      body,
			IsSticker: content.IsSticker(body),
		})
	}
	return msgs
}

var users = [2]string{"A", "B"}

func TestEggBoundary(t *testing.T) {
	c := newTestClassifier()

	v := c.Classify(Collect(conversation(99, time.Minute, "こんにちは", "こんにちは"), users, nil))
	if v.Key != model.EggKey {
		t.Fatalf("expected egg for 99 messages, got %s", v.Key)
	}
	if v.Reason != "" || v.Judgments != (model.Judgments{}) {
		t.Fatalf("expected empty reason and judgments for egg, got %q %+v", v.Reason, v.Judgments)
	}

	v = c.Classify(Collect(conversation(100, time.Minute, "こんにちは", "こんにちは"), users, nil))
	if v.Key != model.Key(model.Equal, model.HighSpeed, model.Peace) {
		t.Fatalf("expected equal_highSpeed_peace for 100 messages, got %s", v.Key)
	}
}

func TestSystemMessagesDoNotCountTowardEgg(t *testing.T) {
	msgs := conversation(99, time.Minute, "こんにちは", "こんにちは")
	msgs = append(msgs, talk.Message{
		Timestamp:   msgs[len(msgs)-1].Timestamp.Add(time.Minute),
		Sender:      "A",
		Body:        "☎ 通話時間 1:00",
		IsCallEvent: true,
	})
	v := newTestClassifier().Classify(Collect(msgs, users, nil))
	if v.Key != model.EggKey {
		t.Fatalf("expected call line to be excluded from the valid count, got %s", v.Key)
	}
}

func TestCollectCountsParsedCalls(t *testing.T) {
	text := strings.Join([]string{
		"2024/03/01(金)",
		"08:00\tA\tおはよう",
		"08:01\tB\t[スタンプ]",
		"08:02\tA\t☎ 通話時間 1:02",
		"08:05\tB\t☎ 通話時間 0:40",
		"08:06\tA\tまたね",
	}, "\n")
	msgs, _ := transcript.NewParser(nil, time.UTC).Parse(text)

	in := Collect(msgs, users, nil)
	if in.CallCount != 2 {
		t.Fatalf("expected 2 calls, got %d", in.CallCount)
	}
	if in.TotalMessages != 3 {
		t.Fatalf("expected calls excluded from the valid count, got %d", in.TotalMessages)
	}
	if in.StickerCount != 1 {
		t.Fatalf("expected 1 sticker, got %d", in.StickerCount)
	}
	// the gap A(08:00) -> B(08:01) -> A(08:06) skips both call lines
	if len(in.ReplyGaps) != 2 || in.ReplyGaps[1] != 5 {
		t.Fatalf("expected reply gaps [1 5], got %v", in.ReplyGaps)
	}

	v := newTestClassifier().Classify(in)
	if v.RawStats.CallCount != 2 || v.RawStats.StickerCount != 1 {
		t.Fatalf("expected call and sticker counts in raw stats, got %+v", v.RawStats)
	}
}

func TestBalanceThreshold(t *testing.T) {
	c := newTestClassifier()
	base := Input{Users: users, TotalMessages: 200}

	in := base
	in.Chars = [2]int{600, 400}
	if v := c.Classify(in); v.Judgments.Balance != model.Bias {
		t.Fatalf("expected bias at 0.6, got %s", v.Judgments.Balance)
	}

	in.Chars = [2]int{599, 401}
	v := c.Classify(in)
	if v.Judgments.Balance != model.Equal {
		t.Fatalf("expected equal at 0.599, got %s", v.Judgments.Balance)
	}
	if v.Metrics.BalanceRate != 0.6 {
		t.Fatalf("expected rounded balance rate 0.6, got %f", v.Metrics.BalanceRate)
	}
}

func TestTempoIgnoresLeisurelyAverage(t *testing.T) {
	c := newTestClassifier()

	// 7 of 10 gaps are fast even though the mean is far above 180 minutes.
	gaps := []float64{1, 1, 1, 1, 1, 1, 1, 1400, 1400, 1400}
	v := c.Classify(Input{Users: users, TotalMessages: 200, ReplyGaps: gaps})
	if v.Judgments.Tempo != model.HighSpeed {
		t.Fatalf("expected highSpeed, got %s", v.Judgments.Tempo)
	}
	if v.Metrics.AvgReplyMinutes != 421 {
		t.Fatalf("expected average 421 minutes, got %d", v.Metrics.AvgReplyMinutes)
	}

	// 6 of 10 fast with a small mean is still leisurely.
	gaps = []float64{1, 1, 1, 1, 1, 1, 11, 11, 11, 11}
	v = c.Classify(Input{Users: users, TotalMessages: 200, ReplyGaps: gaps})
	if v.Judgments.Tempo != model.Leisurely {
		t.Fatalf("expected leisurely, got %s", v.Judgments.Tempo)
	}
}

func TestTempoSkipsGapsBeyondOneDay(t *testing.T) {
	v := newTestClassifier().Classify(Input{
		Users:         users,
		TotalMessages: 200,
		ReplyGaps:     []float64{0, 5, 10, 1440, 3000},
	})
	if v.RawStats.ValidReplyCount != 3 {
		t.Fatalf("expected 3 counted gaps, got %d", v.RawStats.ValidReplyCount)
	}
	if v.Metrics.HighSpeedReplyRate != 1 {
		t.Fatalf("expected all counted gaps fast, got %f", v.Metrics.HighSpeedReplyRate)
	}
}

func TestExpressionPriority(t *testing.T) {
	c := newTestClassifier()
	cases := []struct {
		name string
		in   Input
		want model.Expression
	}{
		{"story beats media", Input{TotalMessages: 200, TextMessages: 100, TextChars: 2000, MediaCount: 100}, model.Story},
		{"resonance", Input{TotalMessages: 200, TextMessages: 160, TextChars: 800, MediaCount: 40}, model.Resonance},
		{"peace", Input{TotalMessages: 200, TextMessages: 190, TextChars: 950, MediaCount: 10}, model.Peace},
	}
	for _, tc := range cases {
		tc.in.Users = users
		if v := c.Classify(tc.in); v.Judgments.Expression != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.name, tc.want, v.Judgments.Expression)
		}
	}
}

func TestMediaPlaceholderCountsTowardMediaRate(t *testing.T) {
	msgs := conversation(100, time.Minute, "[写真]", "うん")
	in := Collect(msgs, users, nil)
	if in.MediaCount != 50 {
		t.Fatalf("expected 50 media messages, got %d", in.MediaCount)
	}
	v := newTestClassifier().Classify(in)
	if v.Judgments.Expression != model.Resonance || v.Metrics.MediaRate != 0.5 {
		t.Fatalf("expected resonance at 0.5, got %s %f", v.Judgments.Expression, v.Metrics.MediaRate)
	}
}

func TestBiasBindsDominantSender(t *testing.T) {
	long := strings.Repeat("あ", 30)
	msgs := conversation(120, time.Minute, "うん", long)
	v := newTestClassifier().Classify(Collect(msgs, users, nil))

	if v.Judgments.Balance != model.Bias {
		t.Fatalf("expected bias, got %s", v.Judgments.Balance)
	}
	if !strings.HasPrefix(v.DetailedDescription, "B") {
		t.Fatalf("expected dominant sender B bound to {user1}, got %q", v.DetailedDescription)
	}
	if strings.Contains(v.DetailedDescription, "{user") {
		t.Fatalf("expected placeholders substituted, got %q", v.DetailedDescription)
	}
}

func TestEqualBindsFirstSeenOrder(t *testing.T) {
	msgs := conversation(120, time.Minute, "こんにちは", "こんにちは")
	v := newTestClassifier().Classify(Collect(msgs, users, nil))
	if !strings.HasPrefix(v.DetailedDescription, "AとB") {
		t.Fatalf("expected A bound to {user1}, got %q", v.DetailedDescription)
	}
}

func TestReasonText(t *testing.T) {
	msgs := conversation(120, 30*time.Minute, strings.Repeat("長", 25), strings.Repeat("文", 25))
	v := newTestClassifier().Classify(Collect(msgs, users, nil))
	want := "このタイプが選ばれたペアは...\nメッセージ比率：バランス型\n返信スピード：まったり型\n表現スタイル：長文型"
	if v.Reason != want {
		t.Fatalf("unexpected reason %q", v.Reason)
	}
	if v.Key != model.Key(model.Equal, model.Leisurely, model.Story) {
		t.Fatalf("expected equal_leisurely_story, got %s", v.Key)
	}
}

func TestAlternateTuning(t *testing.T) {
	c := NewClassifier(Thresholds{MinMessages: 10, BiasRate: 0.9}, nil)
	if c.Thresholds().HighSpeedRate != 0.7 {
		t.Fatalf("expected unset fields to default, got %+v", c.Thresholds())
	}
	msgs := conversation(12, time.Minute, "ああああああああ", "ああ")
	v := c.Classify(Collect(msgs, users, nil))
	if v.Key == model.EggKey {
		t.Fatalf("expected lowered minimum to classify, got egg")
	}
	if v.Judgments.Balance != model.Equal {
		t.Fatalf("expected 0.8 balance to be equal under 0.9 tuning, got %s", v.Judgments.Balance)
	}
}
