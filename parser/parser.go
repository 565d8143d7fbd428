// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser translates WebIDL (https://webidl.spec.whatwg.org/) source
// text into the AST defined in the ast package. Parsing is all-or-nothing: a
// parse call returns either a complete tree or a single located *ParseError.
package parser

import (
	"fmt"
	"strings"

	"github.com/idlgo/webidl/ast"
)

// commentedLexeme is a lexeme with preceding comments attached.
type commentedLexeme struct {
	lexeme
	comments []string
}

// parserConfig holds configuration for customizing the parser.
type parserConfig struct {
	ignoredTokenTypes map[tokenType]bool // the token types skipped by the parser
	maxTypeDepth      int                // recursion guard for the type grammar
}

// sourceParser holds the state of the parser.
type sourceParser struct {
	lex           *peekableLexer  // a reference to the lexer used for tokenization
	config        parserConfig    // configuration for customizing the parser
	currentToken  commentedLexeme // the current token
	previousToken commentedLexeme // the previous token
	typeDepth     int             // current nesting depth of the type grammar
	context       []string        // enclosing constructs, outermost first
}

// buildParser returns a new sourceParser instance.
func buildParser(lexer *lexer, config parserConfig) *sourceParser {
	return &sourceParser{
		lex:          peekableLex(lexer),
		config:       config,
		currentToken: commentedLexeme{lexeme: lexeme{tokenTypeEOF, 0, ""}},
	}
}

// consumeToken advances the lexer forward, returning the next non-ignored
// token. Comments skipped along the way are attached to that token.
func (p *sourceParser) consumeToken() commentedLexeme {
	var comments []string

	for {
		token := p.lex.nextToken()

		if token.kind == tokenTypeComment {
			comments = append(comments, token.value)
		}

		if !p.config.ignoredTokenTypes[token.kind] {
			p.previousToken = p.currentToken
			p.currentToken = commentedLexeme{token, comments}
			return p.currentToken
		}
	}
}

// isToken returns true if the current token matches one of the types given.
func (p *sourceParser) isToken(types ...tokenType) bool {
	for _, kind := range types {
		if p.currentToken.kind == kind {
			return true
		}
	}
	return false
}

// nextToken returns the next non-ignored token without advancing the parser.
// Used for lookahead.
func (p *sourceParser) nextToken() lexeme {
	var counter int
	for {
		counter++
		token := p.lex.peekToken(counter)
		if !p.config.ignoredTokenTypes[token.kind] {
			return token
		}
	}
}

// isKeyword returns true if the current token is a keyword matching that
// given. An identifier escaped with a leading `_` never matches a keyword.
func (p *sourceParser) isKeyword(keyword string) bool {
	return p.isToken(tokenTypeIdentifier) && p.currentToken.value == keyword
}

// isNextKeyword returns true if the next token is a keyword matching that
// given.
func (p *sourceParser) isNextKeyword(keyword string) bool {
	token := p.nextToken()
	return token.kind == tokenTypeIdentifier && token.value == keyword
}

// tryConsumeKeyword attempts to consume an expected keyword token.
func (p *sourceParser) tryConsumeKeyword(keyword string) bool {
	if !p.isKeyword(keyword) {
		return false
	}

	p.consumeToken()
	return true
}

// consumeKeyword consumes an expected keyword token or fails.
func (p *sourceParser) consumeKeyword(keyword string) *ParseError {
	if !p.tryConsumeKeyword(keyword) {
		return p.errExpectedf("keyword %q", keyword)
	}
	return nil
}

// tryConsume consumes the current token if it matches any of the given types
// and returns it.
func (p *sourceParser) tryConsume(types ...tokenType) (commentedLexeme, bool) {
	if p.isToken(types...) {
		token := p.currentToken
		p.consumeToken()
		return token, true
	}
	return commentedLexeme{}, false
}

// consume consumes the current token if it matches any of the given types
// and returns it. Otherwise it fails with a description of the expected
// token set.
func (p *sourceParser) consume(types ...tokenType) (commentedLexeme, *ParseError) {
	token, ok := p.tryConsume(types...)
	if !ok {
		descs := make([]string, len(types))
		for i, kind := range types {
			descs[i] = describeTokenType(kind)
		}
		return token, p.errExpected(strings.Join(descs, " or "))
	}
	return token, nil
}

// describeTokenType renders an expected token type for error messages.
func describeTokenType(kind tokenType) string {
	switch kind {
	case tokenTypeIdentifier:
		return "an identifier"
	case tokenTypeString:
		return "a string literal"
	case tokenTypeNumber:
		return "a number"
	case tokenTypeLeftBrace:
		return "'{'"
	case tokenTypeRightBrace:
		return "'}'"
	case tokenTypeLeftParen:
		return "'('"
	case tokenTypeRightParen:
		return "')'"
	case tokenTypeLeftBracket:
		return "'['"
	case tokenTypeRightBracket:
		return "']'"
	case tokenTypeLeftTri:
		return "'<'"
	case tokenTypeRightTri:
		return "'>'"
	case tokenTypeEquals:
		return "'='"
	case tokenTypeSemicolon:
		return "';'"
	case tokenTypeComma:
		return "','"
	case tokenTypeQuestionMark:
		return "'?'"
	case tokenTypeColon:
		return "':'"
	case tokenTypeVariadic:
		return "'...'"
	}
	return kind.String()
}

// tryConsumeIdentifier attempts to consume an identifier, returning its
// stored name: a single leading `_` escape marker is stripped.
func (p *sourceParser) tryConsumeIdentifier() (string, bool) {
	if !p.isToken(tokenTypeIdentifier) {
		return "", false
	}

	value := p.currentToken.value
	p.consumeToken()
	return strings.TrimPrefix(value, "_"), true
}

// consumeIdentifier consumes an expected identifier token or fails.
func (p *sourceParser) consumeIdentifier() (string, *ParseError) {
	identifier, ok := p.tryConsumeIdentifier()
	if !ok {
		return "", p.errExpected("an identifier")
	}
	return identifier, nil
}

// pushContext records an enclosing construct for error messages and returns
// the function that pops it.
func (p *sourceParser) pushContext(format string, args ...interface{}) func() {
	p.context = append(p.context, fmt.Sprintf(format, args...))
	return func() {
		p.context = p.context[:len(p.context)-1]
	}
}

// contextChain snapshots the context stack, innermost first.
func (p *sourceParser) contextChain() []string {
	if len(p.context) == 0 {
		return nil
	}
	chain := make([]string, len(p.context))
	for i, c := range p.context {
		chain[len(p.context)-1-i] = c
	}
	return chain
}

// enterType bumps the type-grammar depth counter, failing once the
// configured limit is reached.
func (p *sourceParser) enterType() *ParseError {
	if p.typeDepth >= p.config.maxTypeDepth {
		return p.errNesting()
	}
	p.typeDepth++
	return nil
}

func (p *sourceParser) leaveType() {
	p.typeDepth--
}

// finishNode decorates the node with its span and the comments preceding its
// first token. The start token is the current token captured when the rule
// began; the end position is just past the previous (last consumed) token.
func (p *sourceParser) finishNode(node ast.Node, start commentedLexeme) {
	b := node.NodeBase()
	b.Start = int(start.position)
	b.End = int(p.previousToken.position) + len(p.previousToken.value)
	b.Comments = start.comments
}
