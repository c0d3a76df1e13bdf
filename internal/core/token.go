package core

// TokenKind classifies a lexical unit of a license expression.
type TokenKind int

const (
	OpenParen TokenKind = iota
	CloseParen
	Operator
	SentinelIdentifier
	LicenseRefIdentifier
	LicenseIdentifier
	Whitespace
	Unrecognized
)

func (k TokenKind) String() string {
	switch k {
	case OpenParen:
		return "open-paren"
	case CloseParen:
		return "close-paren"
	case Operator:
		return "operator"
	case SentinelIdentifier:
		return "sentinel"
	case LicenseRefIdentifier:
		return "license-ref"
	case LicenseIdentifier:
		return "license-id"
	case Whitespace:
		return "whitespace"
	case Unrecognized:
		return "unrecognized"
	}
	return "unknown"
}

// Token is a classified slice of a license expression.
// Offset is the byte position of Text in the source string.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
}
