package relationship

import (
	"unicode/utf8"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

// Input is what the classifier judges from. Index 0 is the first-seen
// participant.
type Input struct {
	Users [2]string

	// TotalMessages counts non-system messages of the two participants.
	TotalMessages int

	// Chars sums body lengths (runes) of non-call messages per participant.
	Chars [2]int

	// ReplyGaps holds minutes between adjacent valid messages whose sender changes.
	ReplyGaps []float64

	// TextMessages and TextChars cover non-call, non-sticker messages.
	TextMessages int
	TextChars    int
	MediaCount   int
	StickerCount int

	// CallCount counts call events of the two participants. Calls are kept
	// out of every other field.
	CallCount int
}

// Collect builds an Input from reconstructed messages.
func Collect(messages []talk.Message, users [2]string, classifier *content.Classifier) Input {
	if classifier == nil {
		classifier = content.Default
	}
	in := Input{Users: users}

	var prev *talk.Message
	for i := range messages {
		m := &messages[i]
		who := -1
		switch m.Sender {
		case users[0]:
			who = 0
		case users[1]:
			who = 1
		}
		if who < 0 {
			continue
		}
		// 通话行同时命中系统消息规则，需先单独计数
		if m.IsCallEvent || classifier.IsCallEvent(m.Body) {
			in.CallCount++
			continue
		}
		if classifier.IsSystemMessage(m.Body) {
			continue
		}

		in.TotalMessages++
		length := utf8.RuneCountInString(m.Body)
		sticker := m.IsSticker || classifier.IsSticker(m.Body)

		in.Chars[who] += length
		if !sticker {
			in.TextMessages++
			in.TextChars += length
		}
		if sticker {
			in.StickerCount++
		}
		if sticker || classifier.IsMediaElement(m.Body) {
			in.MediaCount++
		}

		if prev != nil && prev.Sender != m.Sender {
			in.ReplyGaps = append(in.ReplyGaps, m.Timestamp.Sub(prev.Timestamp).Minutes())
		}
		prev = m
	}
	return in
}
