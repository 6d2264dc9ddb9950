package wire

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/mcncl/xmlrpcval/internal/errors"
)

// ParseDocument reads an XML document and returns its root element as a
// generic node tree. The scanner resolves entity references in character
// data, so trees built here pair with the identity escape policy on decode.
// Comments, processing instructions and directives are dropped.
func ParseDocument(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewInputError(
				fmt.Sprintf("XML scan failed: %v", err), errors.ErrInvalidXML)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			} else {
				return nil, errors.NewInputError("multiple root elements", errors.ErrInvalidXML)
			}
			stack = append(stack, n)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.Children = append(top.Children, string(t))
			}
			// Text outside the root element is prologue/epilogue whitespace.
		}
	}

	if root == nil {
		return nil, errors.NewInputError("no element found in document", errors.ErrInvalidXML)
	}
	return root, nil
}

// Render prints the tree as XML text. Text tokens are written verbatim: the
// renderer performs no entity escaping of its own, which is why trees headed
// for it are built with the substitute escape policy.
func Render(n *Node) []byte {
	var buf bytes.Buffer
	render(&buf, n)
	return buf.Bytes()
}

func render(buf *bytes.Buffer, n *Node) {
	buf.WriteByte('<')
	buf.WriteString(n.Tag)
	if len(n.Children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	for _, c := range n.Children {
		switch c := c.(type) {
		case *Node:
			render(buf, c)
		case string:
			buf.WriteString(c)
		}
	}
	buf.WriteString("</")
	buf.WriteString(n.Tag)
	buf.WriteByte('>')
}
