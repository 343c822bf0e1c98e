package counter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestMemoryStoreCountsTotalAndDaily(t *testing.T) {
	store := NewMemoryStore()
	store.now = fixedClock(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Increment(ctx); err != nil {
			t.Fatalf("Increment err: %v", err)
		}
	}

	total, err := store.Total(ctx)
	if err != nil {
		t.Fatalf("Total err: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total 3, got %d", total)
	}

	days, err := store.Daily(ctx, 3)
	if err != nil {
		t.Fatalf("Daily err: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	if days[0].Date != "2024-03-08" || days[2].Date != "2024-03-10" {
		t.Fatalf("expected window 2024-03-08..2024-03-10, got %s..%s", days[0].Date, days[2].Date)
	}
	if days[0].Count != 0 || days[2].Count != 3 {
		t.Fatalf("expected counts 0..3, got %d..%d", days[0].Count, days[2].Count)
	}
	if Sum(days) != 3 {
		t.Fatalf("expected window sum 3, got %d", Sum(days))
	}
}

func TestMemoryStoreRejectsEmptyWindow(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Daily(context.Background(), 0); err != ErrInvalidWindow {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
}

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := newRedisStore(client, "test", zerolog.Nop())
	store.now = fixedClock(time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC))
	return store, mr
}

func TestRedisStoreIncrementWritesKeys(t *testing.T) {
	store, mr := newTestRedisStore(t)
	ctx := context.Background()

	if err := store.Increment(ctx); err != nil {
		t.Fatalf("Increment err: %v", err)
	}
	if err := store.Increment(ctx); err != nil {
		t.Fatalf("Increment err: %v", err)
	}

	if got, _ := mr.Get("test:total"); got != "2" {
		t.Fatalf("expected total key 2, got %q", got)
	}
	if got, _ := mr.Get("test:daily:2024-03-10"); got != "2" {
		t.Fatalf("expected daily key 2, got %q", got)
	}
	if ttl := mr.TTL("test:daily:2024-03-10"); ttl != dailyTTL {
		t.Fatalf("expected daily ttl %v, got %v", dailyTTL, ttl)
	}
	if ttl := mr.TTL("test:total"); ttl != 0 {
		t.Fatalf("expected total key without ttl, got %v", ttl)
	}
}

func TestRedisStoreTotalMissingKeyIsZero(t *testing.T) {
	store, _ := newTestRedisStore(t)

	total, err := store.Total(context.Background())
	if err != nil {
		t.Fatalf("Total err: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0, got %d", total)
	}
}

func TestRedisStoreDailyZeroFills(t *testing.T) {
	store, mr := newTestRedisStore(t)
	if err := mr.Set("test:daily:2024-03-09", "4"); err != nil {
		t.Fatalf("seed err: %v", err)
	}
	if err := mr.Set("test:daily:2024-03-10", "1"); err != nil {
		t.Fatalf("seed err: %v", err)
	}

	days, err := store.Daily(context.Background(), 30)
	if err != nil {
		t.Fatalf("Daily err: %v", err)
	}
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	if days[0].Date != "2024-02-10" {
		t.Fatalf("expected window start 2024-02-10, got %s", days[0].Date)
	}
	if days[28].Count != 4 || days[29].Count != 1 {
		t.Fatalf("expected trailing counts 4,1, got %d,%d", days[28].Count, days[29].Count)
	}
	if Sum(days) != 5 {
		t.Fatalf("expected sum 5, got %d", Sum(days))
	}
}

func TestRedisStoreOpensBreakerAfterFailures(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := store.Increment(ctx); err == nil {
			t.Fatalf("expected error with redis down")
		}
	}
	if state := store.cb.State().String(); state != "open" {
		t.Fatalf("expected breaker open, got %s", state)
	}
}
