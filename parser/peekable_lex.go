// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "fmt"

// peekableLexer wraps a lexer and provides the ability to peek forward
// without losing state. Tokens read from the underlying lexer are buffered
// until consumed.
type peekableLexer struct {
	lex *lexer   // a reference to the lexer used for tokenization
	buf []lexeme // tokens already read from the lexer during a lookahead
}

// peekableLex returns a new peekableLexer for the given lexer.
func peekableLex(lex *lexer) *peekableLexer {
	return &peekableLexer{
		lex: lex,
	}
}

// nextToken returns the next token found in the lexer.
func (l *peekableLexer) nextToken() lexeme {
	if len(l.buf) > 0 {
		token := l.buf[0]
		l.buf = l.buf[1:]
		return token
	}

	return l.lex.nextToken()
}

// peekToken performs lookahead of the given count on the token stream.
func (l *peekableLexer) peekToken(count int) lexeme {
	if count < 1 {
		panic(fmt.Sprintf("Expected count >= 1, received: %v", count))
	}

	for len(l.buf) < count {
		l.buf = append(l.buf, l.lex.nextToken())
	}

	return l.buf[count-1]
}
