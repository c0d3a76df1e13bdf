package core

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// Catalog is an immutable set of known licenses, keyed by short identifier.
// Lookups are case-sensitive exact matches. A Catalog is safe for concurrent
// reads.
type Catalog struct {
	licenses map[string]License
}

// catalogRecord is the on-disk shape of one catalog entry: a two-element
// array [fullName, osiApproved].
type catalogRecord struct {
	Name        string
	OSIApproved bool
}

func (r *catalogRecord) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if len(fields) != 2 {
		return fmt.Errorf("license record has %d elements, want 2", len(fields))
	}
	if err := json.Unmarshal(fields[0], &r.Name); err != nil {
		return fmt.Errorf("license record name: %w", err)
	}
	if err := json.Unmarshal(fields[1], &r.OSIApproved); err != nil {
		return fmt.Errorf("license record osiApproved: %w", err)
	}
	return nil
}

// NewCatalog reads catalog data from r. The data is a JSON object mapping
// each identifier to a [fullName, osiApproved] record.
func NewCatalog(r io.Reader) (*Catalog, error) {
	var raw map[string]catalogRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	licenses := make(map[string]License, len(raw))
	for id, rec := range raw {
		licenses[id] = License{ID: id, Name: rec.Name, OSIApproved: rec.OSIApproved}
	}
	return &Catalog{licenses: licenses}, nil
}

// LoadCatalogFile reads catalog data from a file.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return NewCatalog(f)
}

// Contains reports whether identifier is a recognized SPDX short identifier.
func (c *Catalog) Contains(identifier string) bool {
	_, ok := c.licenses[identifier]
	return ok
}

// Get returns the license metadata for identifier.
func (c *Catalog) Get(identifier string) (License, bool) {
	l, ok := c.licenses[identifier]
	return l, ok
}

// FindIDByName returns the identifier of the first license whose full name
// equals name exactly.
func (c *Catalog) FindIDByName(name string) (string, bool) {
	for id, l := range c.licenses {
		if l.Name == name {
			return id, true
		}
	}
	return "", false
}

// Len returns the number of licenses in the catalog.
func (c *Catalog) Len() int {
	return len(c.licenses)
}

// IDs returns all identifiers in the catalog, sorted.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.licenses))
	for id := range c.licenses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

//go:embed licenses.json
var embeddedData []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// DefaultCatalog returns the catalog built from the embedded SPDX license
// list. The data is decoded once, on first use.
func DefaultCatalog() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(bytes.NewReader(embeddedData))
		if err != nil {
			// The embedded data ships with the module; failing to decode
			// it is a build defect, not a runtime condition.
			panic("spdx: embedded license data: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}
