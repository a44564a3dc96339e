package pdfroulette

import "strings"

// Resolve derives the candidate set for a selection: the pdfs of the
// catalog that are available and pass every part of the filter. It is a
// single linear pass and preserves the catalog order.
func Resolve(pdfs []Pdf, f Filter) []Pdf {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	var candidates []Pdf
	for _, pdf := range pdfs {
		if !pdf.Available {
			continue
		}
		if len(f.Categories) > 0 && !intersects(pdf.Categories, f.Categories) {
			continue
		}
		if f.Source != "" && pdf.Source != f.Source {
			continue
		}
		if len(f.Tags) > 0 && !containsAll(pdf.Tags, f.Tags) {
			continue
		}
		if term != "" && !matchesTerm(pdf, term) {
			continue
		}

		candidates = append(candidates, pdf)
	}
	return candidates
}

// matchesTerm looks for term in the title, then the author, then the tags.
// term must already be lower-cased.
func matchesTerm(pdf Pdf, term string) bool {
	if strings.Contains(strings.ToLower(pdf.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(pdf.Author), term) {
		return true
	}
	for _, tag := range pdf.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func intersects(values, wanted []string) bool {
	for _, value := range values {
		if contains(wanted, value) {
			return true
		}
	}
	return false
}

func containsAll(values, wanted []string) bool {
	for _, w := range wanted {
		if !contains(values, w) {
			return false
		}
	}
	return true
}
