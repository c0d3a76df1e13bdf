package core

import "strings"

// IdentifierSet is the part of the catalog the validator consults for bare
// license identifiers. It must not be mutated while a validation is running.
type IdentifierSet interface {
	Contains(identifier string) bool
}

// Validator checks license declarations against the SPDX tag-notation
// grammar and a license catalog. It holds no per-call state, so a single
// Validator is safe for concurrent use.
type Validator struct {
	catalog IdentifierSet
}

// NewValidator creates a validator backed by the given catalog.
func NewValidator(catalog IdentifierSet) *Validator {
	return &Validator{catalog: catalog}
}

// Validate checks a license declaration, which may be a single expression
// (string) or a list of alternative expressions ([]string, or []any whose
// elements are all strings). A list is validated as the disjunction of its
// elements. Any other shape returns an InputError; malformed license text
// never errors, it yields false.
func (v *Validator) Validate(license any) (bool, error) {
	switch val := license.(type) {
	case string:
		return v.ValidateExpression(val), nil
	case []string:
		return v.ValidateAny(val), nil
	case []any:
		alts := make([]string, len(val))
		for i, el := range val {
			s, ok := el.(string)
			if !ok {
				return false, &InputError{Value: el, Index: i}
			}
			alts[i] = s
		}
		return v.ValidateAny(alts), nil
	default:
		return false, &InputError{Value: license, Index: -1}
	}
}

// ValidateAny validates the disjunction of the given alternatives:
// zero alternatives form the empty expression (invalid), one is taken
// verbatim, and more are joined as "(e1 or e2 ... or eN)". Alternatives are
// joined in their given order, duplicates included.
func (v *Validator) ValidateAny(alternatives []string) bool {
	return v.ValidateExpression(joinAlternatives(alternatives))
}

func joinAlternatives(alternatives []string) string {
	switch len(alternatives) {
	case 0:
		return ""
	case 1:
		return alternatives[0]
	}
	return "(" + strings.Join(alternatives, " or ") + ")"
}

// ValidateExpression reports whether a single license expression is
// grammatically valid and every bare identifier in it is known to the
// catalog.
func (v *Validator) ValidateExpression(expr string) bool {
	st := grammarState{expectingOperand: true}
	lx := NewLexer(expr)
	for tok, ok := lx.Next(); ok; tok, ok = lx.Next() {
		if tok.Kind == Whitespace {
			continue
		}
		if !st.consume(tok, v.catalog) {
			return false
		}
	}
	// No dangling open group, and the expression must not end waiting for
	// another operand. The empty expression fails here.
	return st.parenDepth != 1 && !st.expectingOperand
}

// grammarState is the per-validation state machine. parenDepth is 0 before a
// group opens, 1 inside it, and 2 once it has closed; a closed group is
// terminal. boundOperator is fixed by the first operator seen and every
// later operator must match it.
type grammarState struct {
	parenDepth       int
	expectingOperand bool
	boundOperator    string
}

func (s *grammarState) consume(tok Token, catalog IdentifierSet) bool {
	switch tok.Kind {
	case OpenParen:
		if s.parenDepth != 0 || !s.expectingOperand {
			return false
		}
		s.parenDepth = 1
		return true

	case CloseParen:
		// A group must hold a complete combination: no pending operand
		// and at least one operator.
		if s.parenDepth != 1 || s.expectingOperand || s.boundOperator == "" {
			return false
		}
		s.parenDepth = 2
		return true

	case Operator:
		if s.expectingOperand || s.parenDepth != 1 {
			return false
		}
		op := strings.ToLower(tok.Text)
		if s.boundOperator == "" {
			s.boundOperator = op
		} else if s.boundOperator != op {
			return false
		}
		s.expectingOperand = true
		return true

	case SentinelIdentifier:
		// NONE and NOASSERTION stand for the whole declaration; they may
		// not appear inside a group.
		if s.parenDepth == 1 {
			return false
		}
		return s.satisfyOperand()

	case LicenseRefIdentifier:
		return s.satisfyOperand()

	case LicenseIdentifier:
		if !catalog.Contains(tok.Text) {
			return false
		}
		return s.satisfyOperand()
	}

	// Unrecognized input always fails.
	return false
}

func (s *grammarState) satisfyOperand() bool {
	if !s.expectingOperand {
		return false
	}
	s.expectingOperand = false
	return true
}
