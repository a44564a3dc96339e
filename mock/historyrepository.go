package mock

import (
	"github.com/bobinette/pdfroulette"
)

// HistoryRepository keeps the view history in memory.
type HistoryRepository struct {
	Entries pdfroulette.History

	// MaxSize bounds the history like the bolt repository does. 0 means
	// pdfroulette.DefaultMaxHistorySize.
	MaxSize int

	Cleared int

	LoadErr   error
	AppendErr error
	ClearErr  error
}

func (r *HistoryRepository) History() (pdfroulette.History, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	return r.Entries, nil
}

func (r *HistoryRepository) Append(id string) error {
	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.Entries = r.Entries.Append(id, r.MaxSize)
	return nil
}

func (r *HistoryRepository) Clear() error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.Entries = nil
	r.Cleared++
	return nil
}
