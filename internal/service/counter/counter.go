// Package counter keeps an anonymous tally of completed analyses.
package counter

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultKeyPrefix 是计数器键的默认前缀
	DefaultKeyPrefix = "talklens:analysis"
	dayLayout        = "2006-01-02"
	dailyTTL         = 40 * 24 * time.Hour
)

var ErrInvalidWindow = errors.New("daily window must be positive")

// DailyCount is the number of analyses finished on one calendar day.
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Counter 抽象计数存储，便于测试与替换实现
type Counter interface {
	Increment(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	Daily(ctx context.Context, days int) ([]DailyCount, error)
}

// Sum adds the daily counts of a window.
func Sum(days []DailyCount) int64 {
	var total int64
	for _, d := range days {
		total += d.Count
	}
	return total
}

// windowDates lists days ending at now, oldest first.
func windowDates(now time.Time, days int) []string {
	dates := make([]string, days)
	for i := 0; i < days; i++ {
		dates[i] = now.AddDate(0, 0, i-days+1).Format(dayLayout)
	}
	return dates
}

// MemoryStore is the in-process counter used when no Redis URL is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	total int64
	daily map[string]int64
	now   func() time.Time
}

// NewMemoryStore returns an empty in-memory counter.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		daily: make(map[string]int64),
		now:   time.Now,
	}
}

// Increment bumps the total and today's bucket.
func (s *MemoryStore) Increment(_ context.Context) error {
	day := s.now().Format(dayLayout)

	s.mu.Lock()
	s.total++
	s.daily[day]++
	s.mu.Unlock()

	return nil
}

// Total returns the all-time count.
func (s *MemoryStore) Total(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total, nil
}

// Daily returns the last days buckets, zero-filled, oldest first.
func (s *MemoryStore) Daily(_ context.Context, days int) ([]DailyCount, error) {
	if days <= 0 {
		return nil, ErrInvalidWindow
	}

	dates := windowDates(s.now(), days)
	out := make([]DailyCount, len(dates))

	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, date := range dates {
		out[i] = DailyCount{Date: date, Count: s.daily[date]}
	}
	return out, nil
}
