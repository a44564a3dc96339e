package mock

import (
	"github.com/bobinette/pdfroulette"
)

// CatalogProvider serves a fixed catalog from memory.
type CatalogProvider struct {
	Categories []pdfroulette.Category
	Pdfs       []pdfroulette.Pdf

	Err error
}

func (p *CatalogProvider) Catalog() (pdfroulette.Catalog, error) {
	if p.Err != nil {
		return pdfroulette.Catalog{}, p.Err
	}

	return pdfroulette.Catalog{
		Categories: p.Categories,
		Pdfs:       p.Pdfs,
	}, nil
}
