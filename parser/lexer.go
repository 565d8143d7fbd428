// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on design first introduced in: http://blog.golang.org/two-go-talks-lexical-scanning-in-go-and
// Portions copied and modified from: https://github.com/golang/go/blob/master/src/text/template/parse/lex.go

package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOFRUNE is returned by next and peek once the input is exhausted.
const EOFRUNE = -1

// bytePosition is a byte offset into the source buffer.
type bytePosition int

// lexeme is a single token returned from the lexer.
type lexeme struct {
	kind     tokenType    // the type of this lexeme
	position bytePosition // the starting position of this token in the input string
	value    string       // the textual value of this token
}

// stateFn represents the state of the scanner as a function that returns the
// next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner. The state machine is advanced on
// demand: nextToken runs states until at least one token has been emitted.
type lexer struct {
	input  string       // the string being scanned
	state  stateFn      // the next lexing function to enter
	pos    bytePosition // current position in the input
	start  bytePosition // start position of the token being scanned
	width  int          // width of the last rune read from input
	queued []lexeme     // tokens emitted but not yet returned
}

// buildlex creates a new scanner for the input string, starting in the given
// state.
func buildlex(input string, initial stateFn) *lexer {
	return &lexer{
		input: input,
		state: initial,
	}
}

// nextToken returns the next token from the input.
func (l *lexer) nextToken() lexeme {
	for len(l.queued) == 0 {
		if l.state == nil {
			return lexeme{tokenTypeEOF, l.pos, ""}
		}
		l.state = l.state(l)
	}

	token := l.queued[0]
	l.queued = l.queued[1:]
	return token
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		return EOFRUNE
	}

	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += bytePosition(w)
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	l.pos -= bytePosition(l.width)
	l.width = 0
}

// emit passes the pending text as a token of the given type.
func (l *lexer) emit(kind tokenType) {
	l.queued = append(l.queued, lexeme{kind, l.start, l.input[l.start:l.pos]})
	l.start = l.pos
}

// currentValue returns the text scanned for the pending token so far.
func (l *lexer) currentValue() string {
	return l.input[l.start:l.pos]
}

// accept consumes the next rune if it is in the valid set.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set, returning the number
// consumed.
func (l *lexer) acceptRun(valid string) (count int) {
	for strings.ContainsRune(valid, l.next()) {
		count++
	}
	l.backup()
	return count
}

// acceptString consumes the given string if it prefixes the remaining input.
func (l *lexer) acceptString(s string) bool {
	if strings.HasPrefix(l.input[int(l.pos):], s) {
		l.pos += bytePosition(len(s))
		l.width = 0
		return true
	}
	return false
}

// errorToken emits an error token of the given kind and terminates the scan.
// The token's value is the error message; its position is the start of the
// offending lexeme.
func (l *lexer) errorToken(kind tokenType, format string, args ...interface{}) stateFn {
	l.queued = append(l.queued, lexeme{kind, l.start, fmt.Sprintf(format, args...)})
	return nil
}

// errorf emits a generic error token (unrecognized input) and terminates the
// scan.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	return l.errorToken(tokenTypeError, format, args...)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isNewline(r rune) bool {
	return r == '\r' || r == '\n'
}

func isAlpha(r rune) bool {
	return unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlphaNumeric(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
