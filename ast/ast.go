// Package ast defines the node types produced by parsing WebIDL source
// (https://webidl.spec.whatwg.org/). Nodes are plain data: they are built
// once by the parser, own copies of the text they represent, and are never
// mutated afterwards. Cross-references between definitions are kept by name
// only; no node points at another definition structurally.
package ast

// Node is implemented by every AST node.
type Node interface {
	NodeBase() *Base
}

// Base carries the byte-offset span of a node within the source buffer.
// Start is the offset of the node's first byte, End is the offset just past
// its last byte. Comments holds the text of the comments immediately
// preceding the node, in source order.
type Base struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Comments []string `json:"comments,omitempty"`
}

func (b *Base) NodeBase() *Base { return b }

// File is the root node: an ordered sequence of definitions.
type File struct {
	Base
	Definitions []Definition `json:"definitions,omitempty"`
}

// Definition is a top-level WebIDL construct.
type Definition interface {
	Node
	isDefinition()
}

// interface Foo : Bar { ... };
// callback interface Foo { ... };
type Interface struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Partial    bool                `json:"partial,omitempty"`
	Callback   bool                `json:"callback,omitempty"`
	Name       string              `json:"name"`
	Inherits   string              `json:"inherits,omitempty"`
	Members    []Member            `json:"members,omitempty"`
}

// interface mixin Foo { ... };
type Mixin struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Partial    bool                `json:"partial,omitempty"`
	Name       string              `json:"name"`
	Members    []Member            `json:"members,omitempty"`
}

// namespace Foo { ... };
type Namespace struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Partial    bool                `json:"partial,omitempty"`
	Name       string              `json:"name"`
	Members    []Member            `json:"members,omitempty"`
}

// dictionary Foo : Bar { ... };
type Dictionary struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Partial    bool                `json:"partial,omitempty"`
	Name       string              `json:"name"`
	Inherits   string              `json:"inherits,omitempty"`
	Members    []*DictionaryMember `json:"members,omitempty"`
}

// enum Foo { "a", "b" };
type Enum struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Name       string              `json:"name"`
	Values     []*Literal          `json:"values"`
}

// typedef Type Name;
type Typedef struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Name       string              `json:"name"`
	Type       Type                `json:"type"`
}

// callback Foo = ReturnType (args);
type Callback struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Name       string              `json:"name"`
	Return     Type                `json:"return"`
	Parameters []*Argument         `json:"parameters,omitempty"`
}

// Document includes DocumentOrShadowRoot;
type Includes struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Name       string              `json:"name"`
	Source     string              `json:"source"`
}

func (*Interface) isDefinition()  {}
func (*Mixin) isDefinition()      {}
func (*Namespace) isDefinition()  {}
func (*Dictionary) isDefinition() {}
func (*Enum) isDefinition()       {}
func (*Typedef) isDefinition()    {}
func (*Callback) isDefinition()   {}
func (*Includes) isDefinition()   {}

// Member is a construct appearing inside a definition body.
type Member interface {
	Node
	isMember()
}

// readonly attribute DOMString name;
type Attribute struct {
	Base
	Attributes  []ExtendedAttribute `json:"attributes,omitempty"`
	Static      bool                `json:"static,omitempty"`
	Stringifier bool                `json:"stringifier,omitempty"`
	Inherit     bool                `json:"inherit,omitempty"`
	Readonly    bool                `json:"readonly,omitempty"`
	Type        Type                `json:"type"`
	Name        string              `json:"name"`
}

// Special identifies a special operation form.
type Special string

const (
	SpecialNone         Special = ""
	SpecialGetter       Special = "getter"
	SpecialSetter       Special = "setter"
	SpecialDeleter      Special = "deleter"
	SpecialLegacyCaller Special = "legacycaller"
	SpecialStringifier  Special = "stringifier"
)

// DOMString toString();
// getter Item (unsigned long index);
// Name is empty for special forms that omit it; Return is nil for the bare
// `stringifier;` form.
type Operation struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Static     bool                `json:"static,omitempty"`
	Special    Special             `json:"special,omitempty"`
	Return     Type                `json:"return,omitempty"`
	Name       string              `json:"name,omitempty"`
	Parameters []*Argument         `json:"parameters"`
}

// const unsigned short X = 3;
type Const struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Type       Type                `json:"type"`
	Name       string              `json:"name"`
	Value      *Literal            `json:"value"`
}

// constructor(DOMString name);
type Constructor struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Parameters []*Argument         `json:"parameters"`
}

// iterable<V>; or iterable<K, V>;
// Key is nil for the single-parameter form.
type Iterable struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Key        Type                `json:"key,omitempty"`
	Value      Type                `json:"value"`
}

// readonly maplike<K, V>;
type Maplike struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Readonly   bool                `json:"readonly,omitempty"`
	Key        Type                `json:"key"`
	Value      Type                `json:"value"`
}

// readonly setlike<V>;
type Setlike struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Readonly   bool                `json:"readonly,omitempty"`
	Elem       Type                `json:"elem"`
}

// required DOMString name; or long size = 0;
type DictionaryMember struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Required   bool                `json:"required,omitempty"`
	Type       Type                `json:"type"`
	Name       string              `json:"name"`
	Default    *Literal            `json:"default,omitempty"`
}

func (*Attribute) isMember()        {}
func (*Operation) isMember()        {}
func (*Const) isMember()            {}
func (*Constructor) isMember()      {}
func (*Iterable) isMember()         {}
func (*Maplike) isMember()          {}
func (*Setlike) isMember()          {}
func (*DictionaryMember) isMember() {}

// optional long threshold = 0
// DOMString... args
type Argument struct {
	Base
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
	Optional   bool                `json:"optional,omitempty"`
	Variadic   bool                `json:"variadic,omitempty"`
	Type       Type                `json:"type"`
	Name       string              `json:"name"`
	Default    *Literal            `json:"default,omitempty"`
}

// LiteralKind tags the concrete form of a literal value.
type LiteralKind string

const (
	LiteralString          LiteralKind = "string"
	LiteralInteger         LiteralKind = "integer"
	LiteralFloat           LiteralKind = "float"
	LiteralBool            LiteralKind = "bool"
	LiteralNull            LiteralKind = "null"
	LiteralEmptyArray      LiteralKind = "array"
	LiteralEmptyDictionary LiteralKind = "dictionary"
)

// Literal is a constant or default value. Value holds the source spelling,
// without the surrounding quotes for string literals, and is empty for the
// null, [] and {} forms.
type Literal struct {
	Base
	Kind  LiteralKind `json:"kind"`
	Value string      `json:"value,omitempty"`
}

// ExtendedAttribute is one entry of a bracketed `[...]` annotation list.
type ExtendedAttribute interface {
	Node
	isExtendedAttribute()

	// AttrName returns the attribute's leading identifier.
	AttrName() string
}

// [Replaceable]
type ExtAttrNoArgs struct {
	Base
	Name string `json:"name"`
}

// [NewObject(DOMString name)]
type ExtAttrArgList struct {
	Base
	Name string      `json:"name"`
	Args []*Argument `json:"args"`
}

// [Exposed=Window]
type ExtAttrIdent struct {
	Base
	Name  string `json:"name"`
	Value string `json:"value"`
}

// [Exposed=(Window,Worker)]
type ExtAttrIdentList struct {
	Base
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// [NamedConstructor=Image(DOMString src)]
type ExtAttrNamedArgList struct {
	Base
	Name   string      `json:"name"`
	Target string      `json:"target"`
	Args   []*Argument `json:"args"`
}

func (*ExtAttrNoArgs) isExtendedAttribute()       {}
func (*ExtAttrArgList) isExtendedAttribute()      {}
func (*ExtAttrIdent) isExtendedAttribute()        {}
func (*ExtAttrIdentList) isExtendedAttribute()    {}
func (*ExtAttrNamedArgList) isExtendedAttribute() {}

func (a *ExtAttrNoArgs) AttrName() string       { return a.Name }
func (a *ExtAttrArgList) AttrName() string      { return a.Name }
func (a *ExtAttrIdent) AttrName() string        { return a.Name }
func (a *ExtAttrIdentList) AttrName() string    { return a.Name }
func (a *ExtAttrNamedArgList) AttrName() string { return a.Name }
