package content

import (
	"regexp"
	"strconv"
	"strings"
)

type durationShape int

const (
	shapeHMS durationShape = iota
	shapeMS
	shapeUnit
)

type durationPattern struct {
	re    *regexp.Regexp
	shape durationShape
}

// ParseCallDuration extracts the talk time of a call line in seconds.
// It returns 0 when no duration label is present, which is the case for
// missed, canceled and unanswered calls.
func (c *Classifier) ParseCallDuration(body string) int {
	for _, set := range c.locales {
		for _, p := range set.Durations {
			m := p.re.FindStringSubmatch(body)
			if m == nil {
				continue
			}
			switch p.shape {
			case shapeHMS:
				return atoi(m[1])*3600 + atoi(m[2])*60 + atoi(m[3])
			case shapeMS:
				return atoi(m[1])*60 + atoi(m[2])
			case shapeUnit:
				return atoi(m[1]) * unitSeconds(m[2])
			}
		}
	}
	return 0
}

func unitSeconds(unit string) int {
	unit = strings.ToLower(unit)
	if unit == "分" || strings.HasPrefix(unit, "min") {
		return 60
	}
	return 1
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
