// Package core provides the license catalog and the expression validator.
package core

// License is the canonical metadata for an SPDX short identifier.
type License struct {
	ID          string
	Name        string
	OSIApproved bool
}

// TextURL returns the spdx.org URL for the license text. The URL is derived
// from the identifier, not stored in the catalog data.
func (l License) TextURL() string {
	return "https://spdx.org/licenses/" + l.ID + "#licenseText"
}
