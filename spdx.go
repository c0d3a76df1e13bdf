// Package spdx validates license expressions written in SPDX tag notation
// and looks up canonical license metadata by short identifier.
//
// The expression language is the restricted form used in package manifests:
// a bare identifier ("MIT"), the NONE and NOASSERTION sentinels, a numeric
// license reference ("LicenseRef-3"), or a single parenthesized combination
// joined by one operator ("(MIT OR Apache-2.0)"). Mixed AND/OR chains and
// nested groups are rejected rather than guessed at.
//
// Basic usage:
//
//	ok, err := spdx.Validate("(MIT OR Apache-2.0)")
//	if err != nil {
//		log.Fatal(err) // input was not a string or list of strings
//	}
//	fmt.Println(ok)
//
//	if l, ok := spdx.Lookup("Apache-2.0"); ok {
//		fmt.Println(l.Name, l.OSIApproved, l.TextURL())
//	}
//
// The package-level functions use the embedded license catalog. To validate
// against a different catalog, load one and build a Validator:
//
//	catalog, err := spdx.LoadCatalogFile("licenses.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	v := spdx.NewValidator(catalog)
//	fmt.Println(v.ValidateExpression("MIT"))
package spdx

import (
	"io"
	"sync"

	"github.com/git-pkgs/spdx/internal/core"
)

// Re-export types from internal/core
type (
	// License is the canonical metadata for an SPDX short identifier.
	License = core.License

	// Catalog is an immutable set of known licenses, keyed by identifier.
	Catalog = core.Catalog

	// Validator checks license declarations against the grammar and a catalog.
	Validator = core.Validator

	// IdentifierSet is the catalog view a Validator consults.
	IdentifierSet = core.IdentifierSet

	// Token is a classified slice of a license expression.
	Token = core.Token

	// TokenKind classifies a Token.
	TokenKind = core.TokenKind
)

// Re-export errors
var (
	ErrInvalidInput = core.ErrInvalidInput
)

// Error types
type (
	InputError = core.InputError
)

// DefaultCatalog returns the catalog built from the embedded SPDX license
// list. It is decoded once, on first use, and shared by every caller.
func DefaultCatalog() *Catalog {
	return core.DefaultCatalog()
}

// NewCatalog reads catalog data from r: a JSON object mapping each license
// identifier to a [fullName, osiApproved] record.
func NewCatalog(r io.Reader) (*Catalog, error) {
	return core.NewCatalog(r)
}

// LoadCatalogFile reads catalog data from a file.
func LoadCatalogFile(path string) (*Catalog, error) {
	return core.LoadCatalogFile(path)
}

// NewValidator creates a validator backed by the given catalog.
func NewValidator(catalog IdentifierSet) *Validator {
	return core.NewValidator(catalog)
}

// Validate checks a license declaration against the embedded catalog. The
// declaration may be a single expression (string) or a list of alternative
// expressions ([]string or []any of strings), validated as a disjunction.
// Any other input shape returns an error wrapping ErrInvalidInput; malformed
// license text yields (false, nil).
func Validate(license any) (bool, error) {
	return defaultValidator().Validate(license)
}

// ValidExpression reports whether a single license expression is valid
// against the embedded catalog.
func ValidExpression(expr string) bool {
	return defaultValidator().ValidateExpression(expr)
}

// ValidAny reports whether the disjunction of the given alternative
// expressions is valid against the embedded catalog.
func ValidAny(alternatives []string) bool {
	return defaultValidator().ValidateAny(alternatives)
}

// Lookup returns the license metadata for identifier from the embedded
// catalog. Lookups are case-sensitive.
func Lookup(identifier string) (License, bool) {
	return core.DefaultCatalog().Get(identifier)
}

// Contains reports whether identifier is in the embedded catalog.
func Contains(identifier string) bool {
	return core.DefaultCatalog().Contains(identifier)
}

// FindIDByName returns the identifier of the first embedded-catalog license
// whose full name equals name exactly.
func FindIDByName(name string) (string, bool) {
	return core.DefaultCatalog().FindIDByName(name)
}

var (
	validatorOnce sync.Once
	validator     *Validator
)

func defaultValidator() *Validator {
	validatorOnce.Do(func() {
		validator = core.NewValidator(core.DefaultCatalog())
	})
	return validator
}
