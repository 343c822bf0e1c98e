package metrics

import (
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

// calls sees every message, including call lines that other metrics treat
// as system messages.
func (e *Engine) calls(c *conversation) talk.CallStats {
	var out talk.CallStats
	for _, m := range c.all {
		if !m.IsCallEvent {
			continue
		}
		who := c.index(m.Sender)
		if who < 0 {
			continue
		}
		*out.PerUser.At(who)++
		out.TotalCalls++

		if e.classifier.IsMissedCall(m.Body) {
			continue
		}
		duration := m.CallDurationSeconds
		if duration == 0 {
			duration = e.classifier.ParseCallDuration(m.Body)
		}
		if duration > 0 {
			out.TotalDurationSeconds += duration
		}
	}
	if out.TotalCalls > 0 {
		out.AverageDurationSeconds = out.TotalDurationSeconds / out.TotalCalls
	}
	return out
}
