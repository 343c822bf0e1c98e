package talk

import (
	"time"

	"github.com/zhouzirui/talklens/backend/internal/model/relationship"
)

// Pair holds one value per participant, in first-seen order.
type Pair[T any] struct {
	User1 T `json:"user1"`
	User2 T `json:"user2"`
}

// At returns a pointer to the value of participant idx (0 or 1).
func (p *Pair[T]) At(idx int) *T {
	if idx == 0 {
		return &p.User1
	}
	return &p.User2
}

// TermCount is a ranked word, emoji or laughter token.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// LatencyBucket counts replies per participant inside one gap range.
type LatencyBucket struct {
	Label string `json:"label"`
	User1 int    `json:"user1"`
	User2 int    `json:"user2"`
}

// ReplyLatency summarises how quickly each participant answers.
type ReplyLatency struct {
	AverageMinutes Pair[float64]   `json:"averageMinutes"`
	Distribution   []LatencyBucket `json:"distribution"`
}

// UsageRate is a participant's sticker and emoji habit.
type UsageRate struct {
	Messages      int     `json:"messages"`
	Stickers      int     `json:"stickers"`
	EmojiMessages int     `json:"emojiMessages"`
	StickerRate   float64 `json:"stickerRate"`
	EmojiRate     float64 `json:"emojiRate"`
}

// TrendingWord is a word whose use jumped compared to the previous month.
type TrendingWord struct {
	Word     string `json:"word"`
	Count    int    `json:"count"`
	Previous int    `json:"previous"`
	Increase int    `json:"increase"`
}

// MonthlyTrend lists the trending words of one calendar month (YYYY-MM).
type MonthlyTrend struct {
	Month string         `json:"month"`
	Words []TrendingWord `json:"words"`
}

// Laughter is a participant's laughter token usage. Rate is count per message.
type Laughter struct {
	Count     int         `json:"count"`
	Rate      float64     `json:"rate"`
	Breakdown []TermCount `json:"breakdown"`
}

// Greetings counts good-morning and good-night openers.
type Greetings struct {
	Morning int `json:"morning"`
	Night   int `json:"night"`
}

// LongestMessage is the longest plain-text body a participant sent.
type LongestMessage struct {
	Text      string    `json:"text"`
	Length    int       `json:"length"`
	Truncated bool      `json:"truncated"`
	Date      string    `json:"date"`
	Timestamp time.Time `json:"timestamp"`
}

// CallStats aggregates call events.
type CallStats struct {
	TotalCalls             int       `json:"totalCalls"`
	TotalDurationSeconds   int       `json:"totalDurationSeconds"`
	AverageDurationSeconds int       `json:"averageDurationSeconds"`
	PerUser                Pair[int] `json:"perUser"`
}

// Language is the detected language of the conversation.
type Language struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Script     string  `json:"script"`
	Confidence float64 `json:"confidence"`
}

// Metrics gathers every statistical view computed over a transcript.
type Metrics struct {
	WordRanking      Pair[[]TermCount]     `json:"wordRanking"`
	EmojiRanking     Pair[[]TermCount]     `json:"emojiRanking"`
	ReplyLatency     ReplyLatency          `json:"replyLatency"`
	Usage            Pair[UsageRate]       `json:"usage"`
	HourHistogram    [24]int               `json:"hourHistogram"`
	WeekdayHistogram [7]int                `json:"weekdayHistogram"`
	MessageCounts    Pair[int]             `json:"messageCounts"`
	Chasers          Pair[int]             `json:"chasers"`
	TrendingWords    []MonthlyTrend        `json:"trendingWords"`
	Laughter         Pair[Laughter]        `json:"laughter"`
	Greetings        Pair[Greetings]       `json:"greetings"`
	LongestMessage   Pair[*LongestMessage] `json:"longestMessage"`
	Calls            CallStats             `json:"calls"`
	Affection        Pair[int]             `json:"affection"`
	Language         Language              `json:"language"`
}

// Result is everything one analysis produces. It is built once and never stored.
type Result struct {
	ID            string               `json:"id"`
	CreatedAt     time.Time            `json:"createdAt"`
	Encoding      string               `json:"encoding"`
	Participants  Pair[string]         `json:"participants"`
	TotalMessages int                  `json:"totalMessages"`
	Metrics       Metrics              `json:"metrics"`
	Relationship  relationship.Verdict `json:"relationship"`
}
