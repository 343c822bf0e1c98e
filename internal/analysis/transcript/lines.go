// Package transcript rebuilds messages from a LINE talk-history export.
package transcript

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// LineKind is the outcome of classifying one physical line.
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeader
	LineDate
	LineMessage
	// LineMalformedMessage starts like a message but lacks a field; it is dropped.
	LineMalformedMessage
	LineText
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeader:
		return "header"
	case LineDate:
		return "date"
	case LineMessage:
		return "message"
	case LineMalformedMessage:
		return "malformed"
	default:
		return "text"
	}
}

// Line is a classified physical line. Date fields are set for LineDate,
// clock and sender/body fields for LineMessage.
type Line struct {
	Kind LineKind
	Text string

	Year, Month, Day     int
	Hour, Minute, Second int
	Sender, Body         string
}

var (
	slashDatePattern = regexp.MustCompile(`^(\d{4})/(\d{2})/(\d{2})\(.\)$`)
	dotDatePattern   = regexp.MustCompile(`^(\d{4})\.(\d{2})\.(\d{2})\s+[月火水木金土日]曜日$`)

	// tab, comma and whitespace-run delimited variants, tried in that order.
	messagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?\t([^\t]*)\t(.*)$`),
		regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?,([^,]*),(.*)$`),
		regexp.MustCompile(`^(\d{2}):(\d{2})(?::(\d{2}))?\s+(\S+)\s+(.*)$`),
	}
	malformedPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^\d{2}:\d{2}\t`),
		regexp.MustCompile(`^\d{2}:\d{2}\s+\S+\s+`),
	}
)

// Classify inspects one line in isolation.
func Classify(raw string) Line {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Line{Kind: LineBlank}
	}

	if m := slashDatePattern.FindStringSubmatch(trimmed); m != nil {
		return dateLine(trimmed, m)
	}
	if m := dotDatePattern.FindStringSubmatch(trimmed); m != nil {
		return dateLine(trimmed, m)
	}

	// keep trailing delimiters so an empty body still matches
	leading := strings.TrimLeftFunc(strings.TrimRight(raw, "\r"), unicode.IsSpace)
	for _, p := range messagePatterns {
		if m := p.FindStringSubmatch(leading); m != nil {
			return Line{
				Kind:   LineMessage,
				Text:   trimmed,
				Hour:   atoi(m[1]),
				Minute: atoi(m[2]),
				Second: atoi(m[3]),
				Sender: strings.TrimSpace(m[4]),
				Body:   m[5],
			}
		}
	}
	for _, p := range malformedPatterns {
		if p.MatchString(trimmed) {
			return Line{Kind: LineMalformedMessage, Text: trimmed}
		}
	}

	if isHeader(trimmed) {
		return Line{Kind: LineHeader, Text: trimmed}
	}
	return Line{Kind: LineText, Text: trimmed}
}

func dateLine(text string, m []string) Line {
	return Line{Kind: LineDate, Text: text, Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3])}
}

func isHeader(line string) bool {
	return strings.HasPrefix(line, "[LINE]") ||
		strings.Contains(line, "保存日時") ||
		strings.Contains(line, "トーク履歴")
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
