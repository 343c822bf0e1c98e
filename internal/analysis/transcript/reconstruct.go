package transcript

import (
	"sort"
	"strings"
	"time"

	"github.com/zhouzirui/talklens/backend/internal/analysis/content"
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

// State is the reconstructor's position in the export.
type State int

const (
	SkippingHeader State = iota
	AwaitingDate
	AwaitingMessage
	AccumulatingBody
)

func (s State) String() string {
	switch s {
	case SkippingHeader:
		return "skipping_header"
	case AwaitingDate:
		return "awaiting_date"
	case AwaitingMessage:
		return "awaiting_message"
	default:
		return "accumulating_body"
	}
}

type pendingMessage struct {
	timestamp time.Time
	sender    string
	lines     []string
}

type calendarDate struct {
	year  int
	month time.Month
	day   int
}

// scanState is everything carried from one line to the next.
// pending is non-nil exactly when state is AccumulatingBody.
type scanState struct {
	state   State
	date    *calendarDate
	pending *pendingMessage
}

// Stats describes what a parse saw.
type Stats struct {
	Lines          int
	DroppedSystem  int
	SkippedUndated int
}

// Parser rebuilds messages from decoded export text. It is stateless
// between calls and safe for concurrent use.
type Parser struct {
	classifier *content.Classifier
	location   *time.Location
}

// NewParser returns a parser that stamps messages in loc (time.Local when nil).
func NewParser(classifier *content.Classifier, loc *time.Location) *Parser {
	if classifier == nil {
		classifier = content.Default
	}
	if loc == nil {
		loc = time.Local
	}
	return &Parser{classifier: classifier, location: loc}
}

// Parse folds the text into messages sorted by timestamp. Pure system lines
// are dropped; call events are kept.
func (p *Parser) Parse(text string) ([]talk.Message, Stats) {
	rawLines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	stats := Stats{Lines: len(rawLines)}
	messages := make([]talk.Message, 0, len(rawLines)/2)

	emit := func(done *pendingMessage) {
		if done == nil {
			return
		}
		msg, ok := p.finalize(done)
		if !ok {
			stats.DroppedSystem++
			return
		}
		messages = append(messages, msg)
	}

	st := scanState{state: SkippingHeader}
	for _, raw := range rawLines {
		line := Classify(raw)
		if line.Kind == LineMessage && st.date == nil && st.state != SkippingHeader {
			stats.SkippedUndated++
		}
		var done *pendingMessage
		st, done = p.transition(st, line)
		emit(done)
	}
	emit(st.pending)

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, stats
}

// transition applies one classified line. It returns the next state and the
// message the line closed, if any. Neither input is modified.
func (p *Parser) transition(s scanState, line Line) (scanState, *pendingMessage) {
	if s.state == SkippingHeader {
		if line.Kind != LineDate {
			return s, nil
		}
		return withDate(line), nil
	}

	switch line.Kind {
	case LineBlank:
		return idle(s.date), s.pending

	case LineDate:
		return withDate(line), s.pending

	case LineMessage:
		if s.date == nil {
			return idle(nil), s.pending
		}
		sender := line.Sender
		if sender == "" {
			sender = talk.SystemSender
		}
		opened := &pendingMessage{
			timestamp: time.Date(s.date.year, s.date.month, s.date.day, line.Hour, line.Minute, line.Second, 0, p.location),
			sender:    sender,
			lines:     []string{line.Body},
		}
		return scanState{state: AccumulatingBody, date: s.date, pending: opened}, s.pending

	case LineMalformedMessage:
		return s, nil

	default: // LineText, LineHeader
		if s.pending == nil {
			return s, nil
		}
		grown := *s.pending
		grown.lines = append(s.pending.lines[:len(s.pending.lines):len(s.pending.lines)], line.Text)
		return scanState{state: AccumulatingBody, date: s.date, pending: &grown}, nil
	}
}

func withDate(line Line) scanState {
	if line.Month < 1 || line.Month > 12 || line.Day < 1 || line.Day > 31 {
		return idle(nil)
	}
	return idle(&calendarDate{year: line.Year, month: time.Month(line.Month), day: line.Day})
}

func idle(date *calendarDate) scanState {
	if date == nil {
		return scanState{state: AwaitingDate}
	}
	return scanState{state: AwaitingMessage, date: date}
}

// finalize turns a closed pending message into a Message, or reports false
// when it is a system line without call content.
func (p *Parser) finalize(pm *pendingMessage) (talk.Message, bool) {
	body := unwrapQuotes(pm.lines)
	isCall := p.classifier.IsCallEvent(body)
	if !isCall && p.classifier.IsSystemMessage(body) {
		return talk.Message{}, false
	}

	msg := talk.Message{
		Timestamp:   pm.timestamp,
		Sender:      pm.sender,
		Body:        body,
		IsCallEvent: isCall,
		IsSticker:   p.classifier.IsSticker(body),
	}
	if isCall {
		msg.CallDurationSeconds = p.classifier.ParseCallDuration(body)
	}
	msg.IsEmojiOnly = !msg.IsSticker && content.IsEmojiOnly(body)
	return msg, true
}

// unwrapQuotes strips the double quotes LINE puts around multi-line bodies.
// A single line loses its quotes only when they wrap it completely; a span
// loses a quote at its opening and at its closing boundary.
func unwrapQuotes(lines []string) string {
	if len(lines) == 1 {
		body := strings.TrimSpace(lines[0])
		if len(body) > 1 && strings.HasPrefix(body, `"`) && strings.HasSuffix(body, `"`) {
			body = body[1 : len(body)-1]
		}
		return strings.TrimSpace(body)
	}

	body := strings.TrimSpace(strings.Join(lines, "\n"))
	body = strings.TrimPrefix(body, `"`)
	body = strings.TrimSuffix(body, `"`)
	return strings.TrimSpace(body)
}
