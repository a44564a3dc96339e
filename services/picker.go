package services

import (
	"fmt"

	"github.com/bobinette/pdfroulette"
	"github.com/bobinette/pdfroulette/errors"
	"github.com/bobinette/pdfroulette/log"
)

// Options configures a PickerService. The value is built once by the
// caller, with precedence explicit override > stored preference > default,
// and is never mutated afterwards.
type Options struct {
	// RememberFilters persists the filter of each request and reuses it
	// when a later request carries no filter parameters.
	RememberFilters bool

	// URLParameters enables reading the filter from the request. When a
	// request carries filter parameters they win over a remembered
	// filter: a shared url must reproduce what its sharer saw.
	URLParameters bool
}

// PickerService runs the selection sessions: it resolves the candidate
// set, picks a pdf and records it in the history. There is one logical
// request in flight at a time per session, re-entry is the caller's
// problem.
type PickerService struct {
	provider  pdfroulette.CatalogProvider
	histories pdfroulette.HistoryRepository
	filters   pdfroulette.FilterRepository
	selector  pdfroulette.Selector

	opts   Options
	logger log.Logger
}

func NewPickerService(
	provider pdfroulette.CatalogProvider,
	histories pdfroulette.HistoryRepository,
	filters pdfroulette.FilterRepository,
	logger log.Logger,
	opts Options,
) *PickerService {
	return &PickerService{
		provider:  provider,
		histories: histories,
		filters:   filters,

		opts:   opts,
		logger: logger,
	}
}

// RandomRequest carries the filter decoded from a request.
type RandomRequest struct {
	Filter pdfroulette.Filter

	// HasParams reports whether the request carried any filter parameter
	// at all, distinguishing "no filter requested" from "explicitly empty
	// filter requested".
	HasParams bool
}

// Random picks one pdf. The history is only touched after a successful
// selection, and a failed request leaves the session ready for the next
// one. Store failures are logged and swallowed: losing the history or the
// saved filter must never block a selection.
func (s *PickerService) Random(req RandomRequest) (pdfroulette.Pdf, error) {
	filter := s.effectiveFilter(req)

	catalog, err := s.provider.Catalog()
	if err != nil {
		return pdfroulette.Pdf{}, errors.New(
			"could not load the pdf catalog",
			errors.ServiceUnavailable(),
			errors.WithCause(err),
		)
	}

	candidates := pdfroulette.Resolve(catalog.Pdfs, filter)

	history, err := s.histories.History()
	if err != nil {
		s.logger.Errorf("could not load the view history, starting from an empty one: %v", err)
		history = nil
	}

	selection, err := s.selector.Select(candidates, history)
	if err != nil {
		// Select only fails on an empty candidate set.
		return pdfroulette.Pdf{}, errNoCandidates(filter)
	}

	if selection.HistoryReset {
		if err := s.histories.Clear(); err != nil {
			s.logger.Errorf("could not reset the view history: %v", err)
		}
	}
	if err := s.histories.Append(selection.Pdf.ID); err != nil {
		s.logger.Errorf("could not record %s in the view history: %v", selection.Pdf.ID, err)
	}

	if s.opts.RememberFilters && req.HasParams {
		if err := s.filters.Save(filter); err != nil {
			s.logger.Errorf("could not save the filter: %v", err)
		}
	}

	return selection.Pdf, nil
}

// ResetHistory clears the view history and the remembered filter. The
// catalog cache is left alone. Store failures are logged and swallowed,
// like everywhere else.
func (s *PickerService) ResetHistory() {
	if err := s.histories.Clear(); err != nil {
		s.logger.Errorf("could not clear the view history: %v", err)
	}
	if err := s.filters.Clear(); err != nil {
		s.logger.Errorf("could not clear the saved filter: %v", err)
	}
}

// Categories returns the categories of the catalog, for the filter
// widgets.
func (s *PickerService) Categories() ([]pdfroulette.Category, error) {
	catalog, err := s.provider.Catalog()
	if err != nil {
		return nil, errors.New(
			"could not load the pdf catalog",
			errors.ServiceUnavailable(),
			errors.WithCause(err),
		)
	}

	return catalog.Categories, nil
}

func (s *PickerService) effectiveFilter(req RandomRequest) pdfroulette.Filter {
	if s.opts.URLParameters && req.HasParams {
		return req.Filter
	}

	if s.opts.RememberFilters {
		filter, err := s.filters.Filter()
		if err != nil {
			s.logger.Errorf("could not load the saved filter, ignoring it: %v", err)
			return pdfroulette.Filter{}
		}
		return filter
	}

	return pdfroulette.Filter{}
}

func errNoCandidates(f pdfroulette.Filter) error {
	if f.IsZero() {
		return errors.New("no pdf available in the catalog", errors.NotFound())
	}

	return errors.New(
		fmt.Sprintf("no pdf matches the current filter (%s)", f.Describe()),
		errors.NotFound(),
	)
}
