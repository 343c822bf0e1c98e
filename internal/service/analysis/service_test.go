package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zhouzirui/talklens/backend/internal/analysis/relationship"
	"github.com/zhouzirui/talklens/backend/internal/service/counter"
)

func transcriptOf(n int, body string) []byte {
	var b strings.Builder
	b.WriteString("[LINE] 花子とのトーク履歴\n保存日時：2024/02/01 10:00\n\n")
	b.WriteString("2024/01/15(月)\n")
	senders := []string{"太郎", "花子"}
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%02d:%02d\t%s\t%s\n", 8+i/60, i%60, senders[i%2], body)
	}
	return []byte(b.String())
}

type failingCounter struct{ calls int }

func (f *failingCounter) Increment(context.Context) error {
	f.calls++
	return errors.New("redis down")
}

func (f *failingCounter) Total(context.Context) (int64, error) { return 0, nil }

func (f *failingCounter) Daily(context.Context, int) ([]counter.DailyCount, error) {
	return nil, nil
}

func newTestService(c counter.Counter) *Service {
	return NewService(Options{Location: time.UTC, Counter: c}, zerolog.Nop())
}

func TestAnalyzeProducesVerdict(t *testing.T) {
	store := counter.NewMemoryStore()
	svc := newTestService(store)

	result, err := svc.Analyze(context.Background(), transcriptOf(120, "こんにちは"))
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if result.ID == "" {
		t.Fatalf("expected result id")
	}
	if result.Encoding != "utf-8" {
		t.Fatalf("expected utf-8, got %s", result.Encoding)
	}
	if result.TotalMessages != 120 {
		t.Fatalf("expected 120 messages, got %d", result.TotalMessages)
	}
	if result.Participants.User1 != "太郎" || result.Participants.User2 != "花子" {
		t.Fatalf("unexpected participants %+v", result.Participants)
	}
	if result.Relationship.Key != "equal_highSpeed_peace" {
		t.Fatalf("expected equal_highSpeed_peace, got %s", result.Relationship.Key)
	}
	if result.Metrics.MessageCounts.User1 != 60 || result.Metrics.MessageCounts.User2 != 60 {
		t.Fatalf("unexpected message counts %+v", result.Metrics.MessageCounts)
	}

	total, _ := store.Total(context.Background())
	if total != 1 {
		t.Fatalf("expected counter 1, got %d", total)
	}
}

func TestAnalyzeReportsStagesInOrder(t *testing.T) {
	svc := newTestService(nil)

	var seen []Stage
	var percents []int
	_, err := svc.AnalyzeWithProgress(context.Background(), transcriptOf(10, "hi"), func(stage Stage, percent int) {
		seen = append(seen, stage)
		percents = append(percents, percent)
	})
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if len(seen) != len(Stages) {
		t.Fatalf("expected %d stages, got %v", len(Stages), seen)
	}
	for i, stage := range Stages {
		if seen[i] != stage {
			t.Fatalf("expected stage %s at %d, got %s", stage, i, seen[i])
		}
	}
	if percents[len(percents)-1] != 100 {
		t.Fatalf("expected final percent 100, got %d", percents[len(percents)-1])
	}
}

func TestAnalyzeFewMessagesIsEgg(t *testing.T) {
	result, err := newTestService(nil).Analyze(context.Background(), transcriptOf(20, "hi"))
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if result.Relationship.Key != "egg" {
		t.Fatalf("expected egg, got %s", result.Relationship.Key)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	single := "2024/01/15(月)\n10:00\t太郎\tひとりごと\n10:01\t太郎\tまだひとり\n"
	systemOnly := "2024/01/15(月)\n10:00\t\t花子がメッセージの送信を取り消しました\n"

	cases := []struct {
		name string
		raw  []byte
		want error
	}{
		{"empty", nil, ErrDecodeFailure},
		{"unrecognized", []byte("just some notes\nwithout any structure\n"), ErrNoMessagesFound},
		{"system only", []byte(systemOnly), ErrNoMessagesFound},
		{"one sender", []byte(single), ErrInsufficientParticipants},
	}

	svc := newTestService(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tc.raw)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if Message(err) == Message(errors.New("other")) {
				t.Fatalf("expected a specific message for %v", tc.want)
			}
		})
	}
}

func TestAnalyzeStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(nil).Analyze(ctx, transcriptOf(10, "hi"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCounterFailureDoesNotFailAnalysis(t *testing.T) {
	fc := &failingCounter{}
	if _, err := newTestService(fc).Analyze(context.Background(), transcriptOf(10, "hi")); err != nil {
		t.Fatalf("expected success despite counter failure, got %v", err)
	}
	if fc.calls != 1 {
		t.Fatalf("expected one increment attempt, got %d", fc.calls)
	}
}

func TestCustomThresholds(t *testing.T) {
	svc := NewService(Options{
		Location:   time.UTC,
		Thresholds: relationship.Thresholds{MinMessages: 5},
	}, zerolog.Nop())

	if got := svc.Thresholds().MinMessages; got != 5 {
		t.Fatalf("expected MinMessages 5, got %d", got)
	}
	if got := svc.Thresholds().BiasRate; got != 0.6 {
		t.Fatalf("expected default BiasRate 0.6, got %v", got)
	}

	result, err := svc.Analyze(context.Background(), transcriptOf(10, "hi"))
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if result.Relationship.Key == "egg" {
		t.Fatalf("expected a judged category with MinMessages 5")
	}
}
