package metrics

import (
	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

const (
	minutesPerDay = 1440
	chaserMinutes = 5
)

var latencyBuckets = []struct {
	label string
	upTo  float64 // inclusive upper bound in minutes
}{
	{"5分以内", 5},
	{"30分以内", 30},
	{"1時間以内", 60},
	{"3時間以内", 180},
	{"1日以内", minutesPerDay},
	{"1日以上", -1},
}

func bucketFor(minutes float64) int {
	for i, b := range latencyBuckets {
		if b.upTo >= 0 && minutes <= b.upTo {
			return i
		}
	}
	return len(latencyBuckets) - 1
}

// replyPairs calls fn for adjacent non-system messages whose sender changes.
// A system line between two messages breaks adjacency.
func replyPairs(c *conversation, fn func(who int, minutes float64)) {
	for i := 1; i < len(c.filtered); i++ {
		if c.system[i-1] || c.system[i] {
			continue
		}
		prev, cur := c.filtered[i-1], c.filtered[i]
		if prev.Sender == cur.Sender {
			continue
		}
		fn(c.index(cur.Sender), cur.Timestamp.Sub(prev.Timestamp).Minutes())
	}
}

func replyLatency(c *conversation) talk.ReplyLatency {
	var sums [2]float64
	var counts [2]int
	dist := make([]talk.LatencyBucket, len(latencyBuckets))
	for i, b := range latencyBuckets {
		dist[i].Label = b.label
	}

	replyPairs(c, func(who int, minutes float64) {
		if minutes > 0 && minutes < minutesPerDay {
			sums[who] += minutes
			counts[who]++
		}
		if minutes < 0 {
			return
		}
		bucket := &dist[bucketFor(minutes)]
		if who == 0 {
			bucket.User1++
		} else {
			bucket.User2++
		}
	})

	var out talk.ReplyLatency
	for i := 0; i < 2; i++ {
		if counts[i] > 0 {
			*out.AverageMinutes.At(i) = sums[i] / float64(counts[i])
		}
	}
	out.Distribution = dist
	return out
}

// chasers counts, per responder, replies sent within five minutes of the
// other participant's message.
func chasers(c *conversation) talk.Pair[int] {
	var out talk.Pair[int]
	replyPairs(c, func(who int, minutes float64) {
		if minutes >= 0 && minutes < chaserMinutes {
			*out.At(who)++
		}
	})
	return out
}
