// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "fmt"

// lex creates a new scanner for the input string.
func lex(input string) *lexer {
	return buildlex(input, lexSource)
}

// tokenType identifies the type of lexer lexemes.
type tokenType int

const (
	tokenTypeError             tokenType = iota // unrecognized input; value is text of error
	tokenTypeErrorLiteral                       // malformed literal; value is text of error
	tokenTypeErrorUnterminated                  // unterminated string or comment; value is text of error
	tokenTypeEOF
	tokenTypeWhitespace
	tokenTypeComment

	tokenTypeIdentifier // helloworld, interface
	tokenTypeString     // "hello"
	tokenTypeNumber     // 123, 0x7f, 1.5e3, -Infinity

	tokenTypeLeftBrace    // {
	tokenTypeRightBrace   // }
	tokenTypeLeftParen    // (
	tokenTypeRightParen   // )
	tokenTypeLeftBracket  // [
	tokenTypeRightBracket // ]
	tokenTypeLeftTri      // <
	tokenTypeRightTri     // >

	tokenTypeEquals       // =
	tokenTypeSemicolon    // ;
	tokenTypeComma        // ,
	tokenTypeQuestionMark // ?
	tokenTypeColon        // :
	tokenTypeVariadic     // ...
)

var tokenTypeNames = map[tokenType]string{
	tokenTypeError:             "Error",
	tokenTypeErrorLiteral:      "ErrorLiteral",
	tokenTypeErrorUnterminated: "ErrorUnterminated",
	tokenTypeEOF:               "EOF",
	tokenTypeWhitespace:        "Whitespace",
	tokenTypeComment:           "Comment",
	tokenTypeIdentifier:        "Identifier",
	tokenTypeString:            "String",
	tokenTypeNumber:            "Number",
	tokenTypeLeftBrace:         "LeftBrace",
	tokenTypeRightBrace:        "RightBrace",
	tokenTypeLeftParen:         "LeftParen",
	tokenTypeRightParen:        "RightParen",
	tokenTypeLeftBracket:       "LeftBracket",
	tokenTypeRightBracket:      "RightBracket",
	tokenTypeLeftTri:           "LeftTri",
	tokenTypeRightTri:          "RightTri",
	tokenTypeEquals:            "Equals",
	tokenTypeSemicolon:         "Semicolon",
	tokenTypeComma:             "Comma",
	tokenTypeQuestionMark:      "QuestionMark",
	tokenTypeColon:             "Colon",
	tokenTypeVariadic:          "Variadic",
}

func (t tokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

// lexSource scans until EOFRUNE.
func lexSource(l *lexer) stateFn {
Loop:
	for {
		switch r := l.next(); {
		case r == EOFRUNE:
			break Loop

		case r == '{':
			l.emit(tokenTypeLeftBrace)

		case r == '}':
			l.emit(tokenTypeRightBrace)

		case r == '(':
			l.emit(tokenTypeLeftParen)

		case r == ')':
			l.emit(tokenTypeRightParen)

		case r == '[':
			l.emit(tokenTypeLeftBracket)

		case r == ']':
			l.emit(tokenTypeRightBracket)

		case r == '<':
			l.emit(tokenTypeLeftTri)

		case r == '>':
			l.emit(tokenTypeRightTri)

		case r == ';':
			l.emit(tokenTypeSemicolon)

		case r == ',':
			l.emit(tokenTypeComma)

		case r == '=':
			l.emit(tokenTypeEquals)

		case r == '?':
			l.emit(tokenTypeQuestionMark)

		case r == ':':
			l.emit(tokenTypeColon)

		case r == '.':
			if l.acceptString("..") {
				l.emit(tokenTypeVariadic)
			} else if isDigit(l.peek()) {
				return lexNumberFraction
			} else {
				return l.errorf("unrecognized character at this location: %#U", r)
			}

		case r == '-' || isDigit(r):
			l.backup()
			return lexNumber

		case isSpace(r) || isNewline(r):
			l.emit(tokenTypeWhitespace)

		case r == '"':
			l.backup()
			return lexStringLiteral

		case r == '_' || isAlpha(r):
			l.backup()
			return lexIdentifier

		case r == '/':
			l.backup()
			return lexComment

		default:
			return l.errorf("unrecognized character at this location: %#U", r)
		}
	}

	l.emit(tokenTypeEOF)
	return nil
}

// lexComment scans a `//` comment until newline, or a `/* */` comment until
// its terminator. Block comments do not nest.
func lexComment(l *lexer) stateFn {
	if l.acceptString("//") {
		for {
			r := l.peek()
			if r == EOFRUNE || isNewline(r) {
				break
			}
			l.next()
		}
		l.emit(tokenTypeComment)
		return lexSource
	}

	if l.acceptString("/*") {
		for {
			if l.acceptString("*/") {
				l.emit(tokenTypeComment)
				return lexSource
			}
			if l.next() == EOFRUNE {
				return l.errorToken(tokenTypeErrorUnterminated, "unterminated comment")
			}
		}
	}

	r := l.next()
	return l.errorf("unrecognized character at this location: %#U", r)
}

// lexIdentifier scans an identifier or keyword: an optional leading `_`
// escape marker, a letter, then letters, digits, `_` or `-`. Keywords are
// emitted as plain identifiers; the parser decides their meaning from
// context.
func lexIdentifier(l *lexer) stateFn {
	l.accept("_")
	if !isAlpha(l.peek()) {
		l.next()
		return l.errorf("malformed identifier: %q", l.currentValue())
	}

	for {
		r := l.peek()
		if !isAlphaNumeric(r) && r != '-' {
			break
		}
		l.next()
	}
	l.emit(tokenTypeIdentifier)
	return lexSource
}

// lexStringLiteral scans a `"`-delimited string. The grammar has no escape
// mechanism: the first `"` after the opening quote terminates the literal.
func lexStringLiteral(l *lexer) stateFn {
	l.accept(`"`)
	for {
		switch l.next() {
		case '"':
			l.emit(tokenTypeString)
			return lexSource
		case EOFRUNE:
			return l.errorToken(tokenTypeErrorUnterminated, "unterminated string literal")
		}
	}
}

const decimalDigits = "0123456789"

// lexNumber scans an integer (decimal, 0x/0X hexadecimal, leading-zero
// octal) or a float (fraction and/or exponent), with an optional leading
// sign, plus the special form -Infinity. The bare Infinity and NaN literals
// arrive as identifiers and are recognized by the parser.
func lexNumber(l *lexer) stateFn {
	l.accept("-")
	if l.acceptString("Infinity") {
		l.emit(tokenTypeNumber)
		return lexSource
	}

	if l.accept("0") && l.accept("xX") {
		if l.acceptRun("0123456789abcdefABCDEF") == 0 {
			return l.errorToken(tokenTypeErrorLiteral, "malformed hexadecimal literal")
		}
		l.emit(tokenTypeNumber)
		return lexSource
	}

	l.acceptRun(decimalDigits)
	if l.accept(".") {
		l.acceptRun(decimalDigits)
	}
	if l.accept("eE") {
		l.accept("+-")
		if l.acceptRun(decimalDigits) == 0 {
			return l.errorToken(tokenTypeErrorLiteral, "malformed exponent in float literal")
		}
	}

	switch l.currentValue() {
	case "-", ".", "-.":
		return l.errorToken(tokenTypeErrorLiteral, "malformed numeric literal")
	}

	l.emit(tokenTypeNumber)
	return lexSource
}

// lexNumberFraction scans a float whose leading '.' was already consumed by
// the dispatcher, so only fraction digits and an optional exponent remain. A
// further '.' is never part of the token.
func lexNumberFraction(l *lexer) stateFn {
	l.acceptRun(decimalDigits)
	if l.accept("eE") {
		l.accept("+-")
		if l.acceptRun(decimalDigits) == 0 {
			return l.errorToken(tokenTypeErrorLiteral, "malformed exponent in float literal")
		}
	}
	l.emit(tokenTypeNumber)
	return lexSource
}
