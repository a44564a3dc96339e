package pdfroulette

import (
	"fmt"
	"net/url"
	"strings"
)

// Filter restricts the catalog to the pdfs a visitor is interested in. The
// zero value matches every available pdf.
type Filter struct {
	// Categories is OR-matched: a pdf passes if it belongs to at least one
	// of them. Empty means no category restriction at all.
	Categories []string

	// Tags is AND-matched: a pdf passes only if it carries every tag.
	Tags []string

	// Search is a case-insensitive substring matched against the title,
	// the author and the tags.
	Search string

	// Source, when set, must match the pdf source exactly.
	Source string
}

// IsZero returns whether the filter restricts anything.
func (f Filter) IsZero() bool {
	return len(f.Categories) == 0 && len(f.Tags) == 0 && strings.TrimSpace(f.Search) == "" && f.Source == ""
}

// Describe names the active parts of the filter. It is used to build error
// messages the visitor can act on.
func (f Filter) Describe() string {
	var parts []string
	if len(f.Categories) > 0 {
		parts = append(parts, "categories "+strings.Join(f.Categories, ", "))
	}
	if len(f.Tags) > 0 {
		parts = append(parts, "tags "+strings.Join(f.Tags, ", "))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		parts = append(parts, fmt.Sprintf("search %q", term))
	}
	if f.Source != "" {
		parts = append(parts, "source "+f.Source)
	}

	if len(parts) == 0 {
		return "no filter"
	}
	return strings.Join(parts, ", ")
}

// QueryParams serializes the filter as url query parameters. Multi-valued
// fields are comma-joined, empty fields are absent. A single category is
// written under the legacy category parameter so that old bookmarked urls
// and new ones stay interchangeable.
func (f Filter) QueryParams() url.Values {
	params := url.Values{}

	switch len(f.Categories) {
	case 0:
	case 1:
		params.Set("category", f.Categories[0])
	default:
		params.Set("categories", strings.Join(f.Categories, ","))
	}

	if len(f.Tags) > 0 {
		params.Set("tags", strings.Join(f.Tags, ","))
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		params.Set("search", term)
	}
	if f.Source != "" {
		params.Set("source", f.Source)
	}

	return params
}

// FilterFromQueryParams reads a filter back from url query parameters. The
// legacy category parameter is accepted and folded into the categories.
func FilterFromQueryParams(params url.Values) Filter {
	f := Filter{
		Categories: splitList(params.Get("categories")),
		Tags:       splitList(params.Get("tags")),
		Search:     strings.TrimSpace(params.Get("search")),
		Source:     params.Get("source"),
	}

	if category := strings.TrimSpace(params.Get("category")); category != "" && !contains(f.Categories, category) {
		f.Categories = append(f.Categories, category)
	}

	return f
}

// FilterParamKeys lists the query parameters a filter can be read from, in
// serialization order. The filter repository uses the same keys.
var FilterParamKeys = []string{"category", "categories", "tags", "search", "source"}

func splitList(value string) []string {
	if value == "" {
		return nil
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" && !contains(list, item) {
			list = append(list, item)
		}
	}
	return list
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
