package pdfroulette

// DefaultMaxHistorySize is the number of ids a history keeps when no other
// bound is configured.
const DefaultMaxHistorySize = 50

// History is the ordered record of previously selected pdf ids, oldest
// first. It only exists to avoid showing the same pdf again too soon, so
// losing it is never an error.
type History []string

// Contains returns whether id has already been viewed.
func (h History) Contains(id string) bool {
	for _, viewed := range h {
		if viewed == id {
			return true
		}
	}
	return false
}

// Append records id as the most recently viewed pdf and returns the new
// history, dropping the oldest entries to stay within max. A max of 0 or
// less means DefaultMaxHistorySize.
func (h History) Append(id string, max int) History {
	if max <= 0 {
		max = DefaultMaxHistorySize
	}

	h = append(h, id)
	if len(h) > max {
		h = h[len(h)-max:]
	}
	return h
}
