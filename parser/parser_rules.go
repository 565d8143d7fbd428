// Copyright 2015 The Serulian Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"

	"github.com/idlgo/webidl/ast"
)

// defaultMaxTypeDepth bounds the nesting depth of the type grammar, the only
// unbounded recursion point: unions and the generic type arguments all
// re-enter the type production. Real-world IDL nests a handful of levels.
const defaultMaxTypeDepth = 512

// Parse parses the given WebIDL source into an AST. The entire input must be
// consumed: either a complete *ast.File is returned, or a single *ParseError
// locating the first syntactic problem. An input holding only whitespace and
// comments yields a file with no definitions.
func Parse(input string) (*ast.File, error) {
	config := parserConfig{
		ignoredTokenTypes: map[tokenType]bool{
			tokenTypeWhitespace: true,
			tokenTypeComment:    true,
		},
		maxTypeDepth: defaultMaxTypeDepth,
	}

	p := buildParser(lex(input), config)
	f, err := p.consumeTopLevel()
	if err != nil {
		return nil, err
	}
	return f, nil
}

// consumeTopLevel consumes definitions until the input is exhausted.
func (p *sourceParser) consumeTopLevel() (*ast.File, *ParseError) {
	n := &ast.File{}

	// Start at the first token.
	p.consumeToken()

	for !p.isToken(tokenTypeEOF) {
		def, err := p.consumeDefinition()
		if err != nil {
			return nil, err
		}
		n.Definitions = append(n.Definitions, def)
	}

	n.End = int(p.currentToken.position)
	return n, nil
}

// consumeDefinition consumes one definition: an optional extended-attribute
// list, then a form selected by the leading keyword. An includes-statement
// is recognized by one token of lookahead past its leading identifier.
func (p *sourceParser) consumeDefinition() (ast.Definition, *ParseError) {
	start := p.currentToken
	attrs, err := p.tryConsumeExtendedAttributes()
	if err != nil {
		return nil, err
	}

	switch {
	case p.isKeyword("interface"):
		p.consumeToken()
		if p.tryConsumeKeyword("mixin") {
			return p.consumeMixin(false, attrs, start)
		}
		return p.consumeInterface(false, false, attrs, start)

	case p.isKeyword("partial"):
		p.consumeToken()
		switch {
		case p.isKeyword("interface"):
			p.consumeToken()
			if p.tryConsumeKeyword("mixin") {
				return p.consumeMixin(true, attrs, start)
			}
			return p.consumeInterface(true, false, attrs, start)
		case p.isKeyword("dictionary"):
			p.consumeToken()
			return p.consumeDictionary(true, attrs, start)
		case p.isKeyword("namespace"):
			p.consumeToken()
			return p.consumeNamespace(true, attrs, start)
		}
		return nil, p.errExpected(`keyword "interface", "dictionary" or "namespace" after "partial"`)

	case p.isKeyword("callback"):
		p.consumeToken()
		if p.isKeyword("interface") {
			p.consumeToken()
			return p.consumeInterface(false, true, attrs, start)
		}
		return p.consumeCallback(attrs, start)

	case p.isKeyword("dictionary"):
		p.consumeToken()
		return p.consumeDictionary(false, attrs, start)

	case p.isKeyword("namespace"):
		p.consumeToken()
		return p.consumeNamespace(false, attrs, start)

	case p.isKeyword("enum"):
		p.consumeToken()
		return p.consumeEnum(attrs, start)

	case p.isKeyword("typedef"):
		p.consumeToken()
		return p.consumeTypedef(attrs, start)

	case p.isToken(tokenTypeIdentifier) && p.isNextKeyword("includes"):
		return p.consumeIncludes(attrs, start)
	}

	// Malformed literals and unterminated constructs keep their richer
	// classification; anything else the lexer or grammar cannot place here
	// is trailing input.
	if len(attrs) > 0 || p.isToken(tokenTypeErrorLiteral, tokenTypeErrorUnterminated) {
		return nil, p.errExpected("a definition")
	}
	return nil, p.errTrailing()
}

// bodyKind selects which member productions a definition body admits.
type bodyKind int

const (
	bodyInterface bodyKind = iota
	bodyCallbackInterface
	bodyMixin
	bodyNamespace
)

func (k bodyKind) String() string {
	switch k {
	case bodyInterface:
		return "interface"
	case bodyCallbackInterface:
		return "callback interface"
	case bodyMixin:
		return "interface mixin"
	case bodyNamespace:
		return "namespace"
	}
	return "definition"
}

func (p *sourceParser) consumeInterface(partial, callback bool, attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	kind := bodyInterface
	if callback {
		kind = bodyCallbackInterface
	}

	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("%s %s", kind, name)()

	n := &ast.Interface{Attributes: attrs, Partial: partial, Callback: callback, Name: name}

	// Inheritance is permitted on full, non-callback interfaces only.
	if !partial && !callback {
		if _, ok := p.tryConsume(tokenTypeColon); ok {
			if n.Inherits, err = p.consumeIdentifier(); err != nil {
				return nil, err
			}
		}
	}

	if n.Members, err = p.consumeBody(kind); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeMixin(partial bool, attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("interface mixin %s", name)()

	n := &ast.Mixin{Attributes: attrs, Partial: partial, Name: name}
	if n.Members, err = p.consumeBody(bodyMixin); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeNamespace(partial bool, attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("namespace %s", name)()

	n := &ast.Namespace{Attributes: attrs, Partial: partial, Name: name}
	if n.Members, err = p.consumeBody(bodyNamespace); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeDictionary(partial bool, attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("dictionary %s", name)()

	n := &ast.Dictionary{Attributes: attrs, Partial: partial, Name: name}
	if !partial {
		if _, ok := p.tryConsume(tokenTypeColon); ok {
			if n.Inherits, err = p.consumeIdentifier(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.consume(tokenTypeLeftBrace); err != nil {
		return nil, err
	}
	for !p.isToken(tokenTypeRightBrace) {
		if p.isToken(tokenTypeEOF) {
			return nil, p.errExpected("'}' or a dictionary member")
		}
		m, err := p.consumeDictionaryMember()
		if err != nil {
			return nil, err
		}
		n.Members = append(n.Members, m)
	}
	p.consumeToken() // '}'

	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeEnum(attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("enum %s", name)()

	n := &ast.Enum{Attributes: attrs, Name: name}
	if _, err := p.consume(tokenTypeLeftBrace); err != nil {
		return nil, err
	}

	// At least one value; a trailing comma is permitted.
	for {
		if len(n.Values) > 0 && p.isToken(tokenTypeRightBrace) {
			break
		}
		lit, err := p.consumeStringLiteral()
		if err != nil {
			return nil, err
		}
		n.Values = append(n.Values, lit)
		if _, ok := p.tryConsume(tokenTypeComma); !ok {
			break
		}
	}

	if _, err := p.consume(tokenTypeRightBrace); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeTypedef(attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	defer p.pushContext("typedef")()

	typ, err := p.consumeAttributedType()
	if err != nil {
		return nil, err
	}
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	n := &ast.Typedef{Attributes: attrs, Name: name, Type: typ}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeCallback(attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("callback %s", name)()

	if _, err := p.consume(tokenTypeEquals); err != nil {
		return nil, err
	}
	ret, err := p.consumeReturnType()
	if err != nil {
		return nil, err
	}
	params, err := p.consumeParenArguments()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	n := &ast.Callback{Attributes: attrs, Name: name, Return: ret, Parameters: params}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeIncludes(attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Definition, *ParseError) {
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	defer p.pushContext("includes statement for %s", name)()

	if err := p.consumeKeyword("includes"); err != nil {
		return nil, err
	}
	source, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	n := &ast.Includes{Attributes: attrs, Name: name, Source: source}
	p.finishNode(n, start)
	return n, nil
}

// consumeBody consumes a '{'-delimited member list for the given enclosing
// definition kind.
func (p *sourceParser) consumeBody(kind bodyKind) ([]ast.Member, *ParseError) {
	if _, err := p.consume(tokenTypeLeftBrace); err != nil {
		return nil, err
	}

	var members []ast.Member
	for !p.isToken(tokenTypeRightBrace) {
		if p.isToken(tokenTypeEOF) {
			return nil, p.errExpected("'}' or a member")
		}
		m, err := p.consumeMember(kind)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	p.consumeToken() // '}'
	return members, nil
}

// attributeFlags carries the modifiers preceding an attribute declaration.
type attributeFlags struct {
	static      bool
	stringifier bool
	inherit     bool
	readonly    bool
}

// opForm carries the modifiers preceding an operation declaration.
type opForm struct {
	static       bool
	special      ast.Special
	nameOptional bool
}

// consumeMember consumes one member, dispatching on its leading keyword.
// Each definition kind admits only a subset of the member grammar; a
// keyword outside the enclosing kind's subset is a syntax error.
func (p *sourceParser) consumeMember(kind bodyKind) (ast.Member, *ParseError) {
	start := p.currentToken
	attrs, err := p.tryConsumeExtendedAttributes()
	if err != nil {
		return nil, err
	}

	switch {
	case p.isKeyword("const"):
		return p.consumeConst(attrs, start)

	case p.isKeyword("constructor"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		p.consumeToken()
		params, err := p.consumeParenArguments()
		if err != nil {
			return nil, err
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		n := &ast.Constructor{Attributes: attrs, Parameters: params}
		p.finishNode(n, start)
		return n, nil

	case p.isKeyword("static"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		p.consumeToken()
		if readonly := p.tryConsumeKeyword("readonly"); readonly || p.isKeyword("attribute") {
			if err := p.consumeKeyword("attribute"); err != nil {
				return nil, err
			}
			return p.consumeAttributeRest(attrs, start, attributeFlags{static: true, readonly: readonly})
		}
		return p.consumeOperationRest(attrs, start, opForm{static: true})

	case p.isKeyword("stringifier"):
		if kind != bodyInterface && kind != bodyMixin {
			return nil, p.errInvalidMember(kind)
		}
		p.consumeToken()
		if _, ok := p.tryConsume(tokenTypeSemicolon); ok {
			n := &ast.Operation{Attributes: attrs, Special: ast.SpecialStringifier}
			p.finishNode(n, start)
			return n, nil
		}
		if readonly := p.tryConsumeKeyword("readonly"); readonly || p.isKeyword("attribute") {
			if err := p.consumeKeyword("attribute"); err != nil {
				return nil, err
			}
			return p.consumeAttributeRest(attrs, start, attributeFlags{stringifier: true, readonly: readonly})
		}
		return p.consumeOperationRest(attrs, start, opForm{special: ast.SpecialStringifier, nameOptional: true})

	case p.isKeyword("inherit"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		p.consumeToken()
		if err := p.consumeKeyword("attribute"); err != nil {
			return nil, err
		}
		return p.consumeAttributeRest(attrs, start, attributeFlags{inherit: true})

	case p.isKeyword("readonly"):
		if kind == bodyCallbackInterface {
			return nil, p.errInvalidMember(kind)
		}
		p.consumeToken()
		switch {
		case p.isKeyword("attribute"):
			p.consumeToken()
			return p.consumeAttributeRest(attrs, start, attributeFlags{readonly: true})
		case p.isKeyword("maplike"):
			if kind != bodyInterface {
				return nil, p.errInvalidMember(kind)
			}
			return p.consumeMaplike(attrs, start, true)
		case p.isKeyword("setlike"):
			if kind != bodyInterface {
				return nil, p.errInvalidMember(kind)
			}
			return p.consumeSetlike(attrs, start, true)
		}
		return nil, p.errExpected(`keyword "attribute", "maplike" or "setlike" after "readonly"`)

	case p.isKeyword("attribute"):
		if kind == bodyNamespace {
			return nil, p.errExpected("a readonly attribute (namespace attributes must be readonly)")
		}
		if kind == bodyCallbackInterface {
			return nil, p.errInvalidMember(kind)
		}
		p.consumeToken()
		return p.consumeAttributeRest(attrs, start, attributeFlags{})

	case p.isKeyword("iterable"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		return p.consumeIterable(attrs, start)

	case p.isKeyword("maplike"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		return p.consumeMaplike(attrs, start, false)

	case p.isKeyword("setlike"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		return p.consumeSetlike(attrs, start, false)

	case p.isKeyword("getter") || p.isKeyword("setter") || p.isKeyword("deleter") || p.isKeyword("legacycaller"):
		if kind != bodyInterface {
			return nil, p.errInvalidMember(kind)
		}
		special := ast.Special(p.currentToken.value)
		p.consumeToken()
		return p.consumeOperationRest(attrs, start, opForm{special: special, nameOptional: true})
	}

	// Anything else must be a regular operation, starting with its return
	// type.
	return p.consumeOperationRest(attrs, start, opForm{})
}

func (p *sourceParser) errInvalidMember(kind bodyKind) *ParseError {
	return p.errExpectedf("a member valid in a %s", kind)
}

func (p *sourceParser) consumeAttributeRest(attrs []ast.ExtendedAttribute, start commentedLexeme, flags attributeFlags) (ast.Member, *ParseError) {
	typ, err := p.consumeAttributedType()
	if err != nil {
		return nil, err
	}
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	n := &ast.Attribute{
		Attributes:  attrs,
		Static:      flags.static,
		Stringifier: flags.stringifier,
		Inherit:     flags.inherit,
		Readonly:    flags.readonly,
		Type:        typ,
		Name:        name,
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeOperationRest(attrs []ast.ExtendedAttribute, start commentedLexeme, form opForm) (ast.Member, *ParseError) {
	ret, err := p.consumeReturnType()
	if err != nil {
		return nil, err
	}

	var name string
	if form.nameOptional {
		name, _ = p.tryConsumeIdentifier()
	} else {
		if name, err = p.consumeIdentifier(); err != nil {
			return nil, err
		}
	}

	params, err := p.consumeParenArguments()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	n := &ast.Operation{
		Attributes: attrs,
		Static:     form.static,
		Special:    form.special,
		Return:     ret,
		Name:       name,
		Parameters: params,
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeConst(attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Member, *ParseError) {
	p.consumeToken() // 'const'

	typ, err := p.consumeConstType()
	if err != nil {
		return nil, err
	}
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenTypeEquals); err != nil {
		return nil, err
	}
	value, err := p.consumeConstValue()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}

	n := &ast.Const{Attributes: attrs, Type: typ, Name: name, Value: value}
	p.finishNode(n, start)
	return n, nil
}

// consumeConstType consumes a constant's type: a primitive or an identifier
// reference, optionally nullable.
func (p *sourceParser) consumeConstType() (ast.Type, *ParseError) {
	if !p.isToken(tokenTypeIdentifier) {
		return nil, p.errExpected("a primitive type or type name")
	}

	prim, ok, err := p.tryConsumePrimitiveType()
	if err != nil {
		return nil, err
	}

	var t ast.Type
	if ok {
		t = prim
	} else {
		start := p.currentToken
		name, _ := p.consumeIdentifier()
		ref := &ast.TypeName{Name: name}
		p.finishNode(ref, start)
		t = ref
	}
	return p.tryConsumeNullableSuffix(t)
}

func (p *sourceParser) consumeConstValue() (*ast.Literal, *ParseError) {
	start := p.currentToken
	lit, err := p.consumeLiteral()
	if err != nil {
		return nil, err
	}
	switch lit.Kind {
	case ast.LiteralBool, ast.LiteralInteger, ast.LiteralFloat, ast.LiteralNull:
		return lit, nil
	}
	return nil, p.errAt(start, "a boolean, numeric or null constant value")
}

func (p *sourceParser) consumeIterable(attrs []ast.ExtendedAttribute, start commentedLexeme) (ast.Member, *ParseError) {
	p.consumeToken() // 'iterable'

	if _, err := p.consume(tokenTypeLeftTri); err != nil {
		return nil, err
	}
	first, err := p.consumeAttributedType()
	if err != nil {
		return nil, err
	}

	n := &ast.Iterable{Attributes: attrs}
	if _, ok := p.tryConsume(tokenTypeComma); ok {
		n.Key = first
		if n.Value, err = p.consumeAttributedType(); err != nil {
			return nil, err
		}
	} else {
		n.Value = first
	}

	if _, err := p.consume(tokenTypeRightTri); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeMaplike(attrs []ast.ExtendedAttribute, start commentedLexeme, readonly bool) (ast.Member, *ParseError) {
	p.consumeToken() // 'maplike'

	n := &ast.Maplike{Attributes: attrs, Readonly: readonly}
	if _, err := p.consume(tokenTypeLeftTri); err != nil {
		return nil, err
	}
	var err *ParseError
	if n.Key, err = p.consumeAttributedType(); err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenTypeComma); err != nil {
		return nil, err
	}
	if n.Value, err = p.consumeAttributedType(); err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenTypeRightTri); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

func (p *sourceParser) consumeSetlike(attrs []ast.ExtendedAttribute, start commentedLexeme, readonly bool) (ast.Member, *ParseError) {
	p.consumeToken() // 'setlike'

	n := &ast.Setlike{Attributes: attrs, Readonly: readonly}
	if _, err := p.consume(tokenTypeLeftTri); err != nil {
		return nil, err
	}
	var err *ParseError
	if n.Elem, err = p.consumeAttributedType(); err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenTypeRightTri); err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

// consumeDictionaryMember consumes one dictionary member. The required form
// takes no default value; the plain form takes an optional one.
func (p *sourceParser) consumeDictionaryMember() (*ast.DictionaryMember, *ParseError) {
	start := p.currentToken
	attrs, err := p.tryConsumeExtendedAttributes()
	if err != nil {
		return nil, err
	}

	n := &ast.DictionaryMember{Attributes: attrs}
	if p.tryConsumeKeyword("required") {
		n.Required = true
		if n.Type, err = p.consumeAttributedType(); err != nil {
			return nil, err
		}
		if n.Name, err = p.consumeIdentifier(); err != nil {
			return nil, err
		}
	} else {
		if n.Type, err = p.consumeType(); err != nil {
			return nil, err
		}
		if n.Name, err = p.consumeIdentifier(); err != nil {
			return nil, err
		}
		if _, ok := p.tryConsume(tokenTypeEquals); ok {
			if n.Default, err = p.consumeLiteral(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	p.finishNode(n, start)
	return n, nil
}

// tryConsumeExtendedAttributes consumes a bracketed attribute list if one is
// present. An absent bracket pair yields an empty list, not an error.
func (p *sourceParser) tryConsumeExtendedAttributes() ([]ast.ExtendedAttribute, *ParseError) {
	if _, ok := p.tryConsume(tokenTypeLeftBracket); !ok {
		return nil, nil
	}

	var out []ast.ExtendedAttribute
	for {
		attr, err := p.consumeExtendedAttribute()
		if err != nil {
			return nil, err
		}
		out = append(out, attr)
		if _, ok := p.tryConsume(tokenTypeComma); !ok {
			break
		}
	}

	if _, err := p.consume(tokenTypeRightBracket); err != nil {
		return nil, err
	}
	return out, nil
}

// consumeExtendedAttribute consumes one attribute. The five forms share
// textual prefixes, so they are distinguished in a fixed order: A=B(args),
// A(args), A=(idents), A=B, then bare A. One token of lookahead decides
// each fork, so the ordering needs no backtracking.
func (p *sourceParser) consumeExtendedAttribute() (ast.ExtendedAttribute, *ParseError) {
	start := p.currentToken
	name, err := p.consumeIdentifier()
	if err != nil {
		return nil, err
	}

	if _, ok := p.tryConsume(tokenTypeEquals); ok {
		if p.isToken(tokenTypeLeftParen) {
			values, err := p.consumeIdentifierList()
			if err != nil {
				return nil, err
			}
			n := &ast.ExtAttrIdentList{Name: name, Values: values}
			p.finishNode(n, start)
			return n, nil
		}

		target, err := p.consumeIdentifier()
		if err != nil {
			return nil, err
		}
		if p.isToken(tokenTypeLeftParen) {
			args, err := p.consumeParenArguments()
			if err != nil {
				return nil, err
			}
			n := &ast.ExtAttrNamedArgList{Name: name, Target: target, Args: args}
			p.finishNode(n, start)
			return n, nil
		}
		n := &ast.ExtAttrIdent{Name: name, Value: target}
		p.finishNode(n, start)
		return n, nil
	}

	if p.isToken(tokenTypeLeftParen) {
		args, err := p.consumeParenArguments()
		if err != nil {
			return nil, err
		}
		n := &ast.ExtAttrArgList{Name: name, Args: args}
		p.finishNode(n, start)
		return n, nil
	}

	n := &ast.ExtAttrNoArgs{Name: name}
	p.finishNode(n, start)
	return n, nil
}

// consumeIdentifierList consumes '(' identifier (',' identifier)* ')'. The
// list may not be empty.
func (p *sourceParser) consumeIdentifierList() ([]string, *ParseError) {
	if _, err := p.consume(tokenTypeLeftParen); err != nil {
		return nil, err
	}
	var list []string
	for {
		name, err := p.consumeIdentifier()
		if err != nil {
			return nil, err
		}
		list = append(list, name)
		if _, ok := p.tryConsume(tokenTypeComma); !ok {
			break
		}
	}
	if _, err := p.consume(tokenTypeRightParen); err != nil {
		return nil, err
	}
	return list, nil
}

// consumeParenArguments consumes '(' ArgumentList ')'. Two positional rules
// hold at parse time: a mandatory argument may not follow an optional one,
// and a variadic argument must be last.
func (p *sourceParser) consumeParenArguments() ([]*ast.Argument, *ParseError) {
	if _, err := p.consume(tokenTypeLeftParen); err != nil {
		return nil, err
	}
	if _, ok := p.tryConsume(tokenTypeRightParen); ok {
		return nil, nil
	}

	var out []*ast.Argument
	seenOptional := false
	for {
		arg, err := p.consumeArgument(seenOptional)
		if err != nil {
			return nil, err
		}
		out = append(out, arg)
		seenOptional = seenOptional || arg.Optional

		if _, ok := p.tryConsume(tokenTypeRightParen); ok {
			return out, nil
		}
		if arg.Variadic {
			return nil, p.errExpected("')' (a variadic argument must be last)")
		}
		if _, err := p.consume(tokenTypeComma); err != nil {
			return nil, err
		}
	}
}

// consumeArgument consumes one argument. Only the optional form takes a
// default value, and only the mandatory form takes the variadic marker.
func (p *sourceParser) consumeArgument(seenOptional bool) (*ast.Argument, *ParseError) {
	start := p.currentToken
	attrs, err := p.tryConsumeExtendedAttributes()
	if err != nil {
		return nil, err
	}

	n := &ast.Argument{Attributes: attrs}
	if p.tryConsumeKeyword("optional") {
		n.Optional = true
		if n.Type, err = p.consumeAttributedType(); err != nil {
			return nil, err
		}
		if n.Name, err = p.consumeIdentifier(); err != nil {
			return nil, err
		}
		if _, ok := p.tryConsume(tokenTypeEquals); ok {
			if n.Default, err = p.consumeLiteral(); err != nil {
				return nil, err
			}
		}
	} else {
		if n.Type, err = p.consumeType(); err != nil {
			return nil, err
		}
		_, n.Variadic = p.tryConsume(tokenTypeVariadic)
		if seenOptional && !n.Variadic {
			return nil, p.errAt(start, "an optional or variadic argument (a mandatory argument may not follow an optional one)")
		}
		if n.Name, err = p.consumeIdentifier(); err != nil {
			return nil, err
		}
	}

	p.finishNode(n, start)
	return n, nil
}

var stringTypeNames = map[string]bool{
	"DOMString":  true,
	"ByteString": true,
	"USVString":  true,
}

var bufferTypeNames = map[string]bool{
	"ArrayBuffer":       true,
	"SharedArrayBuffer": true,
	"DataView":          true,
	"Int8Array":         true,
	"Int16Array":        true,
	"Int32Array":        true,
	"Uint8Array":        true,
	"Uint16Array":       true,
	"Uint32Array":       true,
	"Uint8ClampedArray": true,
	"BigInt64Array":     true,
	"BigUint64Array":    true,
	"Float32Array":      true,
	"Float64Array":      true,
}

// simplePrimitiveNames are the single-keyword primitives. The multi-keyword
// integer and float forms are handled by tryConsumePrimitiveType.
var simplePrimitiveNames = map[string]bool{
	"boolean":   true,
	"byte":      true,
	"octet":     true,
	"bigint":    true,
	"short":     true,
	"float":     true,
	"double":    true,
	"object":    true,
	"symbol":    true,
	"undefined": true,
}

// consumeType consumes a full type: a parenthesized union or a single type,
// either one followed by an optional '?' nullable suffix. The union
// alternative is tried first; it is unambiguous because no single type
// starts with '('.
func (p *sourceParser) consumeType() (ast.Type, *ParseError) {
	if err := p.enterType(); err != nil {
		return nil, err
	}
	defer p.leaveType()

	if p.isToken(tokenTypeLeftParen) {
		return p.consumeUnionType()
	}

	t, err := p.consumeSingleType()
	if err != nil {
		return nil, err
	}
	return p.tryConsumeNullableSuffix(t)
}

// consumeAttributedType consumes a type optionally preceded by an extended
// attribute list (the TypeWithExtendedAttributes positions of the grammar).
func (p *sourceParser) consumeAttributedType() (ast.Type, *ParseError) {
	start := p.currentToken
	attrs, err := p.tryConsumeExtendedAttributes()
	if err != nil {
		return nil, err
	}

	t, err := p.consumeType()
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		info := t.Info()
		info.Attributes = attrs
		info.Start = int(start.position)
		if len(info.Comments) == 0 {
			info.Comments = start.comments
		}
	}
	return t, nil
}

// tryConsumeNullableSuffix applies a trailing '?' to the type. The any and
// Promise types reject it as a syntax error.
func (p *sourceParser) tryConsumeNullableSuffix(t ast.Type) (ast.Type, *ParseError) {
	if !p.isToken(tokenTypeQuestionMark) {
		return t, nil
	}

	switch t.(type) {
	case *ast.AnyType:
		return nil, p.errExpected("no nullable marker (any is never nullable)")
	case *ast.PromiseType:
		return nil, p.errExpected("no nullable marker (Promise types are never nullable)")
	}

	p.consumeToken()
	info := t.Info()
	info.Nullable = true
	info.End = int(p.previousToken.position) + len(p.previousToken.value)
	return t, nil
}

func (p *sourceParser) consumeUnionType() (ast.Type, *ParseError) {
	start := p.currentToken
	p.consumeToken() // '('

	var types []ast.Type
	for {
		member, err := p.consumeAttributedType()
		if err != nil {
			return nil, err
		}
		types = append(types, member)
		if !p.tryConsumeKeyword("or") {
			break
		}
	}
	if len(types) < 2 {
		return nil, p.errExpected(`keyword "or" (a union type has at least two members)`)
	}

	if _, err := p.consume(tokenTypeRightParen); err != nil {
		return nil, err
	}
	n := &ast.UnionType{Types: types}
	p.finishNode(n, start)
	return p.tryConsumeNullableSuffix(n)
}

// consumeSingleType consumes one non-union type.
func (p *sourceParser) consumeSingleType() (ast.Type, *ParseError) {
	start := p.currentToken
	if !p.isToken(tokenTypeIdentifier) {
		return nil, p.errExpected("a type")
	}

	switch p.currentToken.value {
	case "any":
		p.consumeToken()
		n := &ast.AnyType{}
		p.finishNode(n, start)
		return n, nil

	case "sequence":
		p.consumeToken()
		elem, err := p.consumeTypeArgument()
		if err != nil {
			return nil, err
		}
		n := &ast.SequenceType{Elem: elem}
		p.finishNode(n, start)
		return n, nil

	case "FrozenArray":
		p.consumeToken()
		elem, err := p.consumeTypeArgument()
		if err != nil {
			return nil, err
		}
		n := &ast.FrozenArrayType{Elem: elem}
		p.finishNode(n, start)
		return n, nil

	case "Promise":
		p.consumeToken()
		if _, err := p.consume(tokenTypeLeftTri); err != nil {
			return nil, err
		}
		elem, err := p.consumeReturnType()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokenTypeRightTri); err != nil {
			return nil, err
		}
		n := &ast.PromiseType{Elem: elem}
		p.finishNode(n, start)
		return n, nil

	case "record":
		p.consumeToken()
		if _, err := p.consume(tokenTypeLeftTri); err != nil {
			return nil, err
		}
		key, err := p.consumeStringType()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokenTypeComma); err != nil {
			return nil, err
		}
		elem, err := p.consumeAttributedType()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokenTypeRightTri); err != nil {
			return nil, err
		}
		n := &ast.RecordType{Key: key, Elem: elem}
		p.finishNode(n, start)
		return n, nil
	}

	if stringTypeNames[p.currentToken.value] {
		n := &ast.StringType{Name: p.currentToken.value}
		p.consumeToken()
		p.finishNode(n, start)
		return n, nil
	}
	if bufferTypeNames[p.currentToken.value] {
		n := &ast.BufferType{Name: p.currentToken.value}
		p.consumeToken()
		p.finishNode(n, start)
		return n, nil
	}

	prim, ok, err := p.tryConsumePrimitiveType()
	if err != nil {
		return nil, err
	}
	if ok {
		return prim, nil
	}

	name, _ := p.consumeIdentifier()
	n := &ast.TypeName{Name: name}
	p.finishNode(n, start)
	return n, nil
}

// tryConsumePrimitiveType consumes a primitive type, selecting the longest
// matching keyword sequence: `unsigned long long` wins over `unsigned long`,
// which wins over `long`.
func (p *sourceParser) tryConsumePrimitiveType() (*ast.PrimitiveType, bool, *ParseError) {
	start := p.currentToken

	var name string
	switch {
	case p.tryConsumeKeyword("unsigned"):
		switch {
		case p.tryConsumeKeyword("short"):
			name = "unsigned short"
		case p.tryConsumeKeyword("long"):
			name = "unsigned long"
			if p.tryConsumeKeyword("long") {
				name = "unsigned long long"
			}
		default:
			return nil, false, p.errExpected(`keyword "short" or "long" after "unsigned"`)
		}

	case p.tryConsumeKeyword("long"):
		name = "long"
		if p.tryConsumeKeyword("long") {
			name = "long long"
		}

	case p.tryConsumeKeyword("unrestricted"):
		switch {
		case p.tryConsumeKeyword("float"):
			name = "unrestricted float"
		case p.tryConsumeKeyword("double"):
			name = "unrestricted double"
		default:
			return nil, false, p.errExpected(`keyword "float" or "double" after "unrestricted"`)
		}

	default:
		if !p.isToken(tokenTypeIdentifier) || !simplePrimitiveNames[p.currentToken.value] {
			return nil, false, nil
		}
		name = p.currentToken.value
		p.consumeToken()
	}

	n := &ast.PrimitiveType{Name: name}
	p.finishNode(n, start)
	return n, true, nil
}

// consumeTypeArgument consumes '<' TypeWithExtendedAttributes '>'.
func (p *sourceParser) consumeTypeArgument() (ast.Type, *ParseError) {
	if _, err := p.consume(tokenTypeLeftTri); err != nil {
		return nil, err
	}
	elem, err := p.consumeAttributedType()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(tokenTypeRightTri); err != nil {
		return nil, err
	}
	return elem, nil
}

// consumeStringType consumes one of the string types, the only types a
// record key may take.
func (p *sourceParser) consumeStringType() (*ast.StringType, *ParseError) {
	if !p.isToken(tokenTypeIdentifier) || !stringTypeNames[p.currentToken.value] {
		return nil, p.errExpected("a string type (DOMString, ByteString or USVString)")
	}

	start := p.currentToken
	n := &ast.StringType{Name: p.currentToken.value}
	p.consumeToken()
	p.finishNode(n, start)
	return n, nil
}

// consumeReturnType consumes an operation or callback return type, which
// accepts the legacy void spelling in addition to the full type grammar
// (undefined is an ordinary primitive and needs no special case).
func (p *sourceParser) consumeReturnType() (ast.Type, *ParseError) {
	if p.isKeyword("void") {
		start := p.currentToken
		p.consumeToken()
		n := &ast.PrimitiveType{Name: "void"}
		p.finishNode(n, start)
		return n, nil
	}
	return p.consumeType()
}

// consumeLiteral consumes a default or constant value literal.
func (p *sourceParser) consumeLiteral() (*ast.Literal, *ParseError) {
	start := p.currentToken
	n := &ast.Literal{}

	switch {
	case p.isToken(tokenTypeString):
		value := p.currentToken.value
		n.Kind = ast.LiteralString
		n.Value = value[1 : len(value)-1]
		p.consumeToken()

	case p.isToken(tokenTypeNumber):
		value := p.currentToken.value
		n.Kind = literalKindOfNumber(value)
		n.Value = value
		p.consumeToken()

	case p.isKeyword("true") || p.isKeyword("false"):
		n.Kind = ast.LiteralBool
		n.Value = p.currentToken.value
		p.consumeToken()

	case p.isKeyword("null"):
		n.Kind = ast.LiteralNull
		p.consumeToken()

	case p.isKeyword("Infinity") || p.isKeyword("NaN"):
		n.Kind = ast.LiteralFloat
		n.Value = p.currentToken.value
		p.consumeToken()

	case p.isToken(tokenTypeLeftBracket):
		p.consumeToken()
		if _, err := p.consume(tokenTypeRightBracket); err != nil {
			return nil, err
		}
		n.Kind = ast.LiteralEmptyArray

	case p.isToken(tokenTypeLeftBrace):
		p.consumeToken()
		if _, err := p.consume(tokenTypeRightBrace); err != nil {
			return nil, err
		}
		n.Kind = ast.LiteralEmptyDictionary

	default:
		return nil, p.errExpected("a literal value")
	}

	p.finishNode(n, start)
	return n, nil
}

// consumeStringLiteral consumes a string literal, as required by enum
// bodies.
func (p *sourceParser) consumeStringLiteral() (*ast.Literal, *ParseError) {
	if !p.isToken(tokenTypeString) {
		return nil, p.errExpected("a string literal")
	}

	start := p.currentToken
	value := p.currentToken.value
	p.consumeToken()

	n := &ast.Literal{Kind: ast.LiteralString, Value: value[1 : len(value)-1]}
	p.finishNode(n, start)
	return n, nil
}

// literalKindOfNumber classifies a number token. Hexadecimal literals are
// always integers; otherwise a fraction, exponent or infinity marks a float.
func literalKindOfNumber(value string) ast.LiteralKind {
	if strings.HasPrefix(value, "0x") || strings.HasPrefix(value, "0X") ||
		strings.HasPrefix(value, "-0x") || strings.HasPrefix(value, "-0X") {
		return ast.LiteralInteger
	}
	if strings.ContainsAny(value, ".eE") || strings.Contains(value, "Infinity") {
		return ast.LiteralFloat
	}
	return ast.LiteralInteger
}

func (p *sourceParser) consumeSemicolon() *ParseError {
	_, err := p.consume(tokenTypeSemicolon)
	return err
}
