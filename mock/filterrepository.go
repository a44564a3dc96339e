package mock

import (
	"github.com/bobinette/pdfroulette"
)

// FilterRepository keeps the last saved filter in memory.
type FilterRepository struct {
	Saved pdfroulette.Filter

	LoadErr  error
	SaveErr  error
	ClearErr error
}

func (r *FilterRepository) Filter() (pdfroulette.Filter, error) {
	if r.LoadErr != nil {
		return pdfroulette.Filter{}, r.LoadErr
	}
	return r.Saved, nil
}

func (r *FilterRepository) Save(f pdfroulette.Filter) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.Saved = f
	return nil
}

func (r *FilterRepository) Clear() error {
	if r.ClearErr != nil {
		return r.ClearErr
	}
	r.Saved = pdfroulette.Filter{}
	return nil
}
