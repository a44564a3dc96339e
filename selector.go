package pdfroulette

import (
	"errors"
	"math/rand"
)

// ErrEmptyCandidateSet is returned by Select when there is nothing to pick
// from. Callers are expected to translate it into something a visitor can
// understand.
var ErrEmptyCandidateSet = errors.New("empty candidate set")

// Selection is the result of a pick.
type Selection struct {
	Pdf Pdf

	// HistoryReset reports that every candidate had already been viewed,
	// so the caller must clear the history before recording the new pick.
	// Without this the history would grow past the candidate set and every
	// later pick would be drawn from the full set again.
	HistoryReset bool
}

// Selector picks a random pdf among candidates while avoiding the ones the
// history already contains. As long as the candidate set does not change,
// no pdf is picked twice before all of them have been picked once.
type Selector struct {
	// Rand returns a uniform number in [0, 1). It defaults to
	// math/rand.Float64 and is only overridden in tests.
	Rand func() float64
}

// Select picks one pdf among candidates. Unseen candidates are preferred;
// once they are exhausted the pick is drawn from the full candidate set
// again and HistoryReset is set.
func (s Selector) Select(candidates []Pdf, history History) (Selection, error) {
	if len(candidates) == 0 {
		return Selection{}, ErrEmptyCandidateSet
	}

	unseen := make([]Pdf, 0, len(candidates))
	for _, pdf := range candidates {
		if !history.Contains(pdf.ID) {
			unseen = append(unseen, pdf)
		}
	}

	pool := unseen
	reset := false
	if len(unseen) == 0 {
		pool = candidates
		reset = len(history) > 0
	}

	return Selection{
		Pdf:          pool[s.index(len(pool))],
		HistoryReset: reset,
	}, nil
}

func (s Selector) index(n int) int {
	uniform := rand.Float64
	if s.Rand != nil {
		uniform = s.Rand
	}

	i := int(uniform() * float64(n))
	if i >= n {
		// Rand is not trusted to stay below 1.
		i = n - 1
	}
	return i
}
