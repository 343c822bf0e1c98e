package metrics

import (
	"sort"

	"github.com/zhouzirui/talklens/backend/internal/model/talk"
)

// tally counts terms and remembers first-seen order for tie-breaks.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(term string, n int) {
	if n <= 0 {
		return
	}
	if _, ok := t.counts[term]; !ok {
		t.order = append(t.order, term)
	}
	t.counts[term] += n
}

func (t *tally) get(term string) int {
	return t.counts[term]
}

func (t *tally) total() int {
	sum := 0
	for _, c := range t.counts {
		sum += c
	}
	return sum
}

// top returns up to n terms by descending count; equal counts keep
// first-seen order. n <= 0 returns all terms.
func (t *tally) top(n int) []talk.TermCount {
	ranked := make([]talk.TermCount, 0, len(t.order))
	for _, term := range t.order {
		ranked = append(ranked, talk.TermCount{Term: term, Count: t.counts[term]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
