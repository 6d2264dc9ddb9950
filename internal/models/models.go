package models

// Value is a generic type to represent any XML-RPC value.
// Concrete values are int64, float64, string, Label, bool, time.Time,
// []byte, Struct, or Array.
type Value interface{}

// Struct represents an XML-RPC struct, a mapping from member names to Values.
// Member order is not preserved across a decode, and a repeated member name
// overwrites the previous binding.
type Struct map[string]Value

// Array represents an XML-RPC array, an ordered slice of Values.
type Array []Value

// Label is a symbol-like atom. On the wire it is indistinguishable from an
// ordinary string, so a decoded string node is always plain text: the round
// trip Label -> wire -> string loses the distinction.
type Label string
