package ast

// Type is a use of a WebIDL type. Nullability and the optional extended
// attributes of a TypeWithExtendedAttributes position are orthogonal to the
// concrete variant and live in the shared TypeInfo.
type Type interface {
	Node
	isType()

	// Info returns the shared per-type data (span, nullable flag,
	// extended attributes).
	Info() *TypeInfo
}

// TypeInfo is embedded by every type variant.
type TypeInfo struct {
	Base
	Nullable   bool                `json:"nullable,omitempty"`
	Attributes []ExtendedAttribute `json:"attributes,omitempty"`
}

func (t *TypeInfo) Info() *TypeInfo { return t }
func (t *TypeInfo) isType()         {}

// any
type AnyType struct {
	TypeInfo
}

// boolean, byte, octet, bigint, the integer family (short, long, long long,
// and unsigned forms) and the float family (float, double, and unrestricted
// forms). Name holds the canonical space-separated keyword sequence, e.g.
// "unsigned long long". The object and symbol types and the undefined
// (legacy: void) return type are also represented here.
type PrimitiveType struct {
	TypeInfo
	Name string `json:"name"`
}

// DOMString, ByteString or USVString.
type StringType struct {
	TypeInfo
	Name string `json:"name"`
}

// ArrayBuffer, SharedArrayBuffer, DataView or one of the typed array views.
type BufferType struct {
	TypeInfo
	Name string `json:"name"`
}

// sequence<T>
type SequenceType struct {
	TypeInfo
	Elem Type `json:"elem"`
}

// record<K, V>; the key is restricted to a string type by the grammar.
type RecordType struct {
	TypeInfo
	Key  *StringType `json:"key"`
	Elem Type        `json:"elem"`
}

// Promise<T>; never nullable.
type PromiseType struct {
	TypeInfo
	Elem Type `json:"elem"`
}

// FrozenArray<T>
type FrozenArrayType struct {
	TypeInfo
	Elem Type `json:"elem"`
}

// (T or U or ...), at least two members.
type UnionType struct {
	TypeInfo
	Types []Type `json:"types"`
}

// A reference to a definition by name. Resolution is left to consumers.
type TypeName struct {
	TypeInfo
	Name string `json:"name"`
}
