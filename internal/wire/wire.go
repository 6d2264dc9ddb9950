// Package wire models the generic tagged-node tree that sits between the
// value codec and whatever XML layer produced or will print the document.
package wire

import "strings"

// Tags of the XML-RPC value grammar.
const (
	TagValue    = "value"
	TagInt      = "int"
	TagI4       = "i4"
	TagDouble   = "double"
	TagString   = "string"
	TagBoolean  = "boolean"
	TagDateTime = "dateTime.iso8601"
	TagBase64   = "base64"
	TagStruct   = "struct"
	TagMember   = "member"
	TagName     = "name"
	TagArray    = "array"
	TagData     = "data"
)

// Node is one element of the wire tree. Children holds *Node elements and
// string text tokens, in document order.
type Node struct {
	Tag      string
	Children []interface{}
}

// New builds a node from a tag and its children. Children must be *Node
// elements or string text tokens.
func New(tag string, children ...interface{}) *Node {
	return &Node{Tag: tag, Children: children}
}

// Significant returns children with whitespace-only text tokens removed.
// Indentation between elements carries no structure in the value grammar,
// so structural checks run over this filtered list.
func Significant(children []interface{}) []interface{} {
	out := make([]interface{}, 0, len(children))
	for _, c := range children {
		if s, ok := c.(string); ok && strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Text concatenates the text tokens directly under n, ignoring nested
// elements. XML scanners may split character data into several tokens, so
// scalar content is always read through this concatenation.
func (n *Node) Text() string {
	var b strings.Builder
	for _, c := range n.Children {
		if s, ok := c.(string); ok {
			b.WriteString(s)
		}
	}
	return b.String()
}
