// Package catalog fetches and decodes the catalog document built by the
// offline toolchain. Providers are read-only: nothing in here ever writes
// the catalog back.
package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/bobinette/pdfroulette"
)

// document is the wire format of the catalog file.
type document struct {
	LastValidated string `json:"lastValidated"`
	Metadata      struct {
		Categories []pdfroulette.Category `json:"categories"`
	} `json:"metadata"`
	Pdfs []pdfroulette.Pdf `json:"pdfs"`
}

func (d document) catalog() pdfroulette.Catalog {
	return pdfroulette.Catalog{
		LastValidated: d.LastValidated,
		Categories:    d.Metadata.Categories,
		Pdfs:          d.Pdfs,
	}
}

// HTTPClient is the interface needed by the HTTPProvider to fetch the
// catalog, allowing tests to avoid the network.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

// HTTPProvider fetches the catalog document from a url.
type HTTPProvider struct {
	url    string
	client HTTPClient
}

func NewHTTPProvider(c HTTPClient, url string) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: c,
	}
}

func (p *HTTPProvider) Catalog() (pdfroulette.Catalog, error) {
	req, err := http.NewRequest("GET", p.url, nil)
	if err != nil {
		return pdfroulette.Catalog{}, err
	}

	res, err := p.client.Do(req)
	if err != nil {
		return pdfroulette.Catalog{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return pdfroulette.Catalog{}, fmt.Errorf("fetching catalog: got status %d", res.StatusCode)
	}

	var doc document
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return pdfroulette.Catalog{}, fmt.Errorf("decoding catalog: %v", err)
	}

	return doc.catalog(), nil
}

// FileProvider reads the catalog document from disk.
type FileProvider struct {
	path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Catalog() (pdfroulette.Catalog, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return pdfroulette.Catalog{}, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return pdfroulette.Catalog{}, fmt.Errorf("decoding catalog: %v", err)
	}

	return doc.catalog(), nil
}
