package pdfroulette

// Pdf describes one externally hosted PDF from the catalog. Pdfs are
// created and updated by the offline toolchain only: once loaded, a Pdf is
// an immutable snapshot for the duration of the session.
type Pdf struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`

	Author        string `json:"author,omitempty"`
	DateAdded     string `json:"dateAdded,omitempty"`
	Pages         int    `json:"pages,omitempty"`
	YearPublished int    `json:"yearPublished,omitempty"`

	Categories []string `json:"categories,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Source     string   `json:"source,omitempty"`

	// Available is maintained by the offline validator. A pdf with
	// Available set to false is never a selection candidate.
	Available bool `json:"isAvailable"`
}

// Category labels a group of pdfs. Categories come from the catalog
// metadata and are only used to build and validate filters.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Catalog is the read-only snapshot served by a CatalogProvider.
type Catalog struct {
	LastValidated string
	Categories    []Category
	Pdfs          []Pdf
}

// CatalogProvider gives read access to the catalog. The catalog is built
// and validated elsewhere, providers only fetch and decode it.
type CatalogProvider interface {
	Catalog() (Catalog, error)
}

// HistoryRepository persists the view history.
type HistoryRepository interface {
	History() (History, error)
	Append(id string) error
	Clear() error
}

// FilterRepository persists the last used filter.
type FilterRepository interface {
	Filter() (Filter, error)
	Save(Filter) error
	Clear() error
}
