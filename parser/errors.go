package parser

import (
	"fmt"
	"strings"
)

// ErrKind classifies a ParseError.
type ErrKind int

const (
	// ErrUnexpectedToken reports input that does not match the expected
	// grammar production.
	ErrUnexpectedToken ErrKind = iota

	// ErrUnexpectedEnd reports input that ended while more was expected.
	ErrUnexpectedEnd

	// ErrTrailingInput reports non-whitespace input remaining after the
	// last well-formed definition.
	ErrTrailingInput

	// ErrInvalidLiteral reports a malformed numeric or string literal.
	ErrInvalidLiteral

	// ErrNestingTooDeep reports that the type nesting depth limit was hit.
	ErrNestingTooDeep
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnexpectedEnd:
		return "unexpected end of input"
	case ErrTrailingInput:
		return "trailing input"
	case ErrInvalidLiteral:
		return "invalid literal"
	case ErrNestingTooDeep:
		return "nesting too deep"
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// ParseError describes the first syntactic problem found in the input. It is
// the only error type returned by Parse.
type ParseError struct {
	Kind     ErrKind
	Offset   int      // byte offset of the failure in the input
	Expected string   // description of what the parser was looking for
	Found    string   // description of what it found instead
	Context  []string // enclosing constructs, innermost first
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "offset %d: %s", e.Offset, e.Kind)
	if e.Expected != "" {
		fmt.Fprintf(&b, ": expected %s", e.Expected)
	}
	if e.Found != "" {
		fmt.Fprintf(&b, ", found %s", e.Found)
	}
	for _, c := range e.Context {
		fmt.Fprintf(&b, ", while parsing %s", c)
	}
	return b.String()
}

// describeLexeme renders a token for error messages.
func describeLexeme(t lexeme) string {
	switch t.kind {
	case tokenTypeEOF:
		return "end of input"
	case tokenTypeIdentifier:
		return fmt.Sprintf("%q", t.value)
	case tokenTypeString:
		return fmt.Sprintf("string literal %s", t.value)
	case tokenTypeNumber:
		return fmt.Sprintf("number %s", t.value)
	case tokenTypeError, tokenTypeErrorLiteral, tokenTypeErrorUnterminated:
		return t.value
	default:
		return fmt.Sprintf("%q", t.value)
	}
}

// errExpected builds a ParseError at the current token. Lexer-level error
// tokens carry their own classification: malformed literals map to
// ErrInvalidLiteral, unterminated constructs to ErrUnexpectedEnd.
func (p *sourceParser) errExpected(expected string) *ParseError {
	kind := ErrUnexpectedToken
	switch p.currentToken.kind {
	case tokenTypeEOF, tokenTypeErrorUnterminated:
		kind = ErrUnexpectedEnd
	case tokenTypeErrorLiteral:
		kind = ErrInvalidLiteral
	}
	return &ParseError{
		Kind:     kind,
		Offset:   int(p.currentToken.position),
		Expected: expected,
		Found:    describeLexeme(p.currentToken.lexeme),
		Context:  p.contextChain(),
	}
}

func (p *sourceParser) errExpectedf(format string, args ...interface{}) *ParseError {
	return p.errExpected(fmt.Sprintf(format, args...))
}

// errAt builds an ErrUnexpectedToken positioned at the given token rather
// than the current one. Used when a rule rejects an already-consumed
// construct, such as a mandatory argument following an optional one.
func (p *sourceParser) errAt(token commentedLexeme, expected string) *ParseError {
	return &ParseError{
		Kind:     ErrUnexpectedToken,
		Offset:   int(token.position),
		Expected: expected,
		Found:    describeLexeme(token.lexeme),
		Context:  p.contextChain(),
	}
}

// errTrailing builds the driver-level error for input that cannot start a
// definition.
func (p *sourceParser) errTrailing() *ParseError {
	return &ParseError{
		Kind:     ErrTrailingInput,
		Offset:   int(p.currentToken.position),
		Expected: "end of input or another definition",
		Found:    describeLexeme(p.currentToken.lexeme),
	}
}

// errNesting builds the defensive recursion-guard error.
func (p *sourceParser) errNesting() *ParseError {
	return &ParseError{
		Kind:     ErrNestingTooDeep,
		Offset:   int(p.currentToken.position),
		Expected: fmt.Sprintf("type nesting no deeper than %d levels", p.config.maxTypeDepth),
		Context:  p.contextChain(),
	}
}
