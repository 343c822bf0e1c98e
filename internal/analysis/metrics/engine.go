// Package metrics reduces a reconstructed conversation into statistics.
package metrics

import (
	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

const topTerms = 10

// Participants returns distinct non-system senders in first-seen order.
func Participants(messages []talk.Message) []string {
	seen := make(map[string]struct{})
	var users []string
	for _, m := range messages {
		if talk.IsSystemSender(m.Sender) {
			continue
		}
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		users = append(users, m.Sender)
	}
	return users
}

// Engine computes talk.Metrics. Every metric is an independent pass.
type Engine struct {
	classifier *content.Classifier
}

// NewEngine builds an engine over classifier (content.Default when nil).
func NewEngine(classifier *content.Classifier) *Engine {
	if classifier == nil {
		classifier = content.Default
	}
	return &Engine{classifier: classifier}
}

// conversation is the message sequence seen from the two participants.
type conversation struct {
	users    [2]string
	all      []talk.Message
	filtered []talk.Message
	system   []bool
}

func (e *Engine) newConversation(messages []talk.Message, users [2]string) *conversation {
	c := &conversation{users: users, all: messages}
	for _, m := range messages {
		if m.Sender != users[0] && m.Sender != users[1] {
			continue
		}
		c.filtered = append(c.filtered, m)
		c.system = append(c.system, e.classifier.IsSystemMessage(m.Body))
	}
	return c
}

// index maps a sender to 0 or 1, or -1 for anyone else.
func (c *conversation) index(sender string) int {
	switch sender {
	case c.users[0]:
		return 0
	case c.users[1]:
		return 1
	}
	return -1
}

// valid calls fn for each non-system message of the two participants.
func (c *conversation) valid(fn func(m talk.Message, who int)) {
	for i, m := range c.filtered {
		if c.system[i] {
			continue
		}
		fn(m, c.index(m.Sender))
	}
}

// countsTowardWords reports whether a body is plain typed text.
func (e *Engine) countsTowardWords(m talk.Message) bool {
	if m.IsCallEvent || m.IsSticker || e.classifier.IsSticker(m.Body) {
		return false
	}
	_, hasPlaceholder := e.classifier.FindPlaceholder(m.Body)
	return !hasPlaceholder
}

// Compute runs every metric for the two participants.
func (e *Engine) Compute(messages []talk.Message, users [2]string) talk.Metrics {
	c := e.newConversation(messages, users)

	var out talk.Metrics
	out.WordRanking, out.EmojiRanking = e.rankings(c)
	out.ReplyLatency = replyLatency(c)
	out.Usage = e.usage(c)
	out.HourHistogram, out.WeekdayHistogram = histograms(c)
	out.MessageCounts = messageCounts(c)
	out.Chasers = chasers(c)
	out.TrendingWords = e.trendingWords(c)
	out.Laughter = e.laughter(c)
	out.Greetings = e.greetings(c)
	out.LongestMessage = e.longestMessages(c)
	out.Calls = e.calls(c)
	out.Affection = e.affection(c)
	out.Language = e.language(c)
	return out
}
