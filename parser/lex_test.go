// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Portions copied and modified from: https://github.com/golang/go/blob/master/src/text/template/parse/lex_test.go

package parser

import (
	"testing"
)

type lexerTest struct {
	name   string
	input  string
	tokens []lexeme
}

var (
	tEOF        = lexeme{tokenTypeEOF, 0, ""}
	tWhitespace = lexeme{tokenTypeWhitespace, 0, " "}
)

var lexerTests = []lexerTest{
	// Simple tests.
	{"empty", "", []lexeme{tEOF}},

	{"single whitespace", " ", []lexeme{tWhitespace, tEOF}},
	{"single tab", "\t", []lexeme{{tokenTypeWhitespace, 0, "\t"}, tEOF}},
	{"multiple whitespace", "   ", []lexeme{tWhitespace, tWhitespace, tWhitespace, tEOF}},

	{"newline r", "\r", []lexeme{{tokenTypeWhitespace, 0, "\r"}, tEOF}},
	{"newline n", "\n", []lexeme{{tokenTypeWhitespace, 0, "\n"}, tEOF}},
	{"newline rn", "\r\n", []lexeme{{tokenTypeWhitespace, 0, "\r"}, {tokenTypeWhitespace, 0, "\n"}, tEOF}},

	{"comment", "// a comment", []lexeme{{tokenTypeComment, 0, "// a comment"}, tEOF}},
	{"multiline comment", "/* a comment */foo", []lexeme{
		{tokenTypeComment, 0, "/* a comment */"}, {tokenTypeIdentifier, 0, "foo"}, tEOF,
	}},
	{"multiline comment 2", "/* a\ncomment */foo", []lexeme{
		{tokenTypeComment, 0, "/* a\ncomment */"}, {tokenTypeIdentifier, 0, "foo"}, tEOF,
	}},
	{"unterminated comment", "/* a comment", []lexeme{
		{tokenTypeErrorUnterminated, 0, "unterminated comment"},
	}},

	{"left brace", "{", []lexeme{{tokenTypeLeftBrace, 0, "{"}, tEOF}},
	{"right brace", "}", []lexeme{{tokenTypeRightBrace, 0, "}"}, tEOF}},

	{"left bracket", "[", []lexeme{{tokenTypeLeftBracket, 0, "["}, tEOF}},
	{"right bracket", "]", []lexeme{{tokenTypeRightBracket, 0, "]"}, tEOF}},

	{"left paren", "(", []lexeme{{tokenTypeLeftParen, 0, "("}, tEOF}},
	{"right paren", ")", []lexeme{{tokenTypeRightParen, 0, ")"}, tEOF}},

	{"left tri", "<", []lexeme{{tokenTypeLeftTri, 0, "<"}, tEOF}},
	{"right tri", ">", []lexeme{{tokenTypeRightTri, 0, ">"}, tEOF}},

	{"semicolon", ";", []lexeme{{tokenTypeSemicolon, 0, ";"}, tEOF}},
	{"comma", ",", []lexeme{{tokenTypeComma, 0, ","}, tEOF}},
	{"equals", "=", []lexeme{{tokenTypeEquals, 0, "="}, tEOF}},
	{"question mark", "?", []lexeme{{tokenTypeQuestionMark, 0, "?"}, tEOF}},
	{"colon", ":", []lexeme{{tokenTypeColon, 0, ":"}, tEOF}},
	{"variadic", "...", []lexeme{{tokenTypeVariadic, 0, "..."}, tEOF}},

	{"keyword", "interface", []lexeme{{tokenTypeIdentifier, 0, "interface"}, tEOF}},
	{"identifier", "interace", []lexeme{{tokenTypeIdentifier, 0, "interace"}, tEOF}},
	{"escaped identifier", "_interface", []lexeme{{tokenTypeIdentifier, 0, "_interface"}, tEOF}},
	{"identifier with dash", "aria-label", []lexeme{{tokenTypeIdentifier, 0, "aria-label"}, tEOF}},
	{"bare underscore", "_", []lexeme{{tokenTypeError, 0, `malformed identifier: "_"`}}},

	{"string", `"val"`, []lexeme{{tokenTypeString, 0, `"val"`}, tEOF}},
	{"string no escapes", `"va\l"`, []lexeme{{tokenTypeString, 0, `"va\l"`}, tEOF}},
	// With no escape mechanism the first quote always terminates.
	{"string backslash quote", `"va\" `, []lexeme{
		{tokenTypeString, 0, `"va\"`}, tWhitespace, tEOF,
	}},
	{"unterminated string", `"val`, []lexeme{
		{tokenTypeErrorUnterminated, 0, "unterminated string literal"},
	}},

	{"number", "0.0", []lexeme{{tokenTypeNumber, 0, "0.0"}, tEOF}},
	{"integer", "42", []lexeme{{tokenTypeNumber, 0, "42"}, tEOF}},
	{"negative integer", "-42", []lexeme{{tokenTypeNumber, 0, "-42"}, tEOF}},
	{"hex", "0x7fSomething", []lexeme{{tokenTypeNumber, 0, "0x7f"}, {tokenTypeIdentifier, 0, "Something"}, tEOF}},
	{"leading dot float", ".5", []lexeme{{tokenTypeNumber, 0, ".5"}, tEOF}},
	{"leading dot exponent", ".5e2", []lexeme{{tokenTypeNumber, 0, ".5e2"}, tEOF}},
	// A second dot starts a new token, never extends the first.
	{"two leading dot floats", ".5.5", []lexeme{{tokenTypeNumber, 0, ".5"}, {tokenTypeNumber, 0, ".5"}, tEOF}},
	{"dotted float pair", "5..5", []lexeme{{tokenTypeNumber, 0, "5."}, {tokenTypeNumber, 0, ".5"}, tEOF}},
	{"exponent", "1.5e-3", []lexeme{{tokenTypeNumber, 0, "1.5e-3"}, tEOF}},
	{"negative infinity", "-Infinity", []lexeme{{tokenTypeNumber, 0, "-Infinity"}, tEOF}},
	{"infinity is an identifier", "Infinity", []lexeme{{tokenTypeIdentifier, 0, "Infinity"}, tEOF}},

	{"malformed hex", "0x", []lexeme{{tokenTypeErrorLiteral, 0, "malformed hexadecimal literal"}}},
	{"malformed exponent", "1e", []lexeme{{tokenTypeErrorLiteral, 0, "malformed exponent in float literal"}}},
	{"bare minus", "-", []lexeme{{tokenTypeErrorLiteral, 0, "malformed numeric literal"}}},

	{"unrecognized character", "@", []lexeme{
		{tokenTypeError, 0, "unrecognized character at this location: U+0040 '@'"},
	}},
}

func TestLexer(t *testing.T) {
	for _, test := range lexerTests {
		t.Run(test.name, func(t *testing.T) {
			tokens := collect(&test)
			if !equal(tokens, test.tokens, false) {
				t.Errorf("%s: got\n\t%+v\nexpected\n\t%+v", test.name, tokens, test.tokens)
			}
		})
	}
}

// collect gathers the emitted tokens into a slice. The lexer terminates on
// EOF and on any error token.
func collect(t *lexerTest) (tokens []lexeme) {
	l := lex(t.input)
	for {
		token := l.nextToken()
		tokens = append(tokens, token)
		switch token.kind {
		case tokenTypeEOF, tokenTypeError, tokenTypeErrorLiteral, tokenTypeErrorUnterminated:
			return
		}
	}
}

// equal checks that the two sets of tokens are structurally equal
func equal(i1, i2 []lexeme, checkPos bool) bool {
	if len(i1) != len(i2) {
		return false
	}
	for k := range i1 {
		if i1[k].kind != i2[k].kind {
			return false
		}
		if i1[k].value != i2[k].value {
			return false
		}
		if checkPos && i1[k].position != i2[k].position {
			return false
		}
	}
	return true
}

func TestLexerPositions(t *testing.T) {
	test := lexerTest{"positions", "interface A {};", []lexeme{
		{tokenTypeIdentifier, 0, "interface"},
		{tokenTypeWhitespace, 9, " "},
		{tokenTypeIdentifier, 10, "A"},
		{tokenTypeWhitespace, 11, " "},
		{tokenTypeLeftBrace, 12, "{"},
		{tokenTypeRightBrace, 13, "}"},
		{tokenTypeSemicolon, 14, ";"},
		{tokenTypeEOF, 15, ""},
	}}
	tokens := collect(&test)
	if !equal(tokens, test.tokens, true) {
		t.Errorf("got\n\t%+v\nexpected\n\t%+v", tokens, test.tokens)
	}
}
