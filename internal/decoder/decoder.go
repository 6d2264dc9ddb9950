// Package decoder deserialises XML-RPC wire trees back into values.
package decoder

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/xmlrpcval/internal/errors"
	"github.com/mcncl/xmlrpcval/internal/escape"
	"github.com/mcncl/xmlrpcval/internal/isodate"
	"github.com/mcncl/xmlrpcval/internal/models"
	"github.com/mcncl/xmlrpcval/internal/wire"
)

// Decoder turns wire trees back into values.
type Decoder struct {
	policy escape.Policy
}

// NewDecoder creates a Decoder using the given escape policy for string
// content.
func NewDecoder(policy escape.Policy) *Decoder {
	return &Decoder{policy: policy}
}

// Decode deserialises a node of the value grammar. Whitespace-only text
// tokens are discarded before any structural check, then dispatch runs on
// the node's tag.
func (d *Decoder) Decode(n *wire.Node) (models.Value, error) {
	switch n.Tag {
	case wire.TagValue:
		return d.decodeValue(n)
	case wire.TagInt, wire.TagI4:
		return d.decodeInt(n)
	case wire.TagDouble:
		return d.decodeDouble(n)
	case wire.TagString:
		return d.policy.Decode(n.Text()), nil
	case wire.TagBoolean:
		return strings.TrimSpace(n.Text()) == "1", nil
	case wire.TagDateTime:
		return isodate.Parse(strings.TrimSpace(n.Text()))
	case wire.TagBase64:
		return d.decodeBase64(n)
	case wire.TagStruct:
		return d.decodeStruct(n)
	case wire.TagArray:
		return d.decodeArray(n)
	default:
		return nil, errors.NewUnsupportedError(
			fmt.Sprintf("no decoding rule for <%s> node", n.Tag), nil)
	}
}

// decodeValue handles the generic value wrapper. An empty wrapper is the
// empty string (the grammar's implicit default type is string), a bare text
// token is a string, and a single nested element is decoded by tag.
func (d *Decoder) decodeValue(n *wire.Node) (models.Value, error) {
	kids := wire.Significant(n.Children)
	switch len(kids) {
	case 0:
		return "", nil
	case 1:
		switch c := kids[0].(type) {
		case string:
			return d.policy.Decode(c), nil
		case *wire.Node:
			return d.Decode(c)
		}
	}
	// Some XML scanners split character data into several tokens; if
	// everything under the wrapper is text, stitch it back together.
	for _, k := range kids {
		if _, ok := k.(string); !ok {
			return nil, errors.NewWireError(
				fmt.Sprintf("value node holds %d children, expected at most one element", len(kids)), nil)
		}
	}
	return d.policy.Decode(n.Text()), nil
}

func (d *Decoder) decodeInt(n *wire.Node) (models.Value, error) {
	text := strings.TrimSpace(n.Text())
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, errors.NewWireError(fmt.Sprintf("bad integer text %q", text), err)
	}
	return v, nil
}

func (d *Decoder) decodeDouble(n *wire.Node) (models.Value, error) {
	text := strings.TrimSpace(n.Text())
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, errors.NewWireError(fmt.Sprintf("bad double text %q", text), err)
	}
	return v, nil
}

// decodeBase64 tolerates an empty node: some servers omit the content
// entirely for an empty payload.
func (d *Decoder) decodeBase64(n *wire.Node) (models.Value, error) {
	text := strings.TrimSpace(n.Text())
	if text == "" {
		return []byte{}, nil
	}
	b, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.NewWireError("bad base64 content", err)
	}
	return b, nil
}

func (d *Decoder) decodeStruct(n *wire.Node) (models.Value, error) {
	out := make(models.Struct)
	for _, child := range wire.Significant(n.Children) {
		member, ok := child.(*wire.Node)
		if !ok || member.Tag != wire.TagMember {
			return nil, errors.NewWireError("struct child is not a member node", nil)
		}
		name, val, err := d.decodeMember(member)
		if err != nil {
			return nil, err
		}
		// A repeated member name overwrites the earlier binding.
		out[name] = val
	}
	return out, nil
}

// decodeMember expects a name element followed by a value element. A member
// holding only a name is the shorthand some peers emit for the empty
// string.
func (d *Decoder) decodeMember(member *wire.Node) (string, models.Value, error) {
	kids := wire.Significant(member.Children)
	if len(kids) == 0 || len(kids) > 2 {
		return "", nil, errors.NewWireError(
			fmt.Sprintf("member holds %d children, expected a name and a value", len(kids)), nil)
	}
	nameNode, ok := kids[0].(*wire.Node)
	if !ok || nameNode.Tag != wire.TagName {
		return "", nil, errors.NewWireError("member does not start with a name node", nil)
	}
	name := nameNode.Text()
	if len(kids) == 1 {
		return name, "", nil
	}
	valNode, ok := kids[1].(*wire.Node)
	if !ok || valNode.Tag != wire.TagValue {
		return "", nil, errors.NewWireError(
			fmt.Sprintf("member %q does not pair its name with a value node", name), nil)
	}
	val, err := d.Decode(valNode)
	if err != nil {
		return "", nil, err
	}
	return name, val, nil
}

func (d *Decoder) decodeArray(n *wire.Node) (models.Value, error) {
	kids := wire.Significant(n.Children)
	if len(kids) != 1 {
		return nil, errors.NewWireError(
			fmt.Sprintf("array holds %d children, expected exactly one data node", len(kids)), nil)
	}
	data, ok := kids[0].(*wire.Node)
	if !ok || data.Tag != wire.TagData {
		return nil, errors.NewWireError("array child is not a data node", nil)
	}

	elems := wire.Significant(data.Children)
	out := make(models.Array, 0, len(elems))
	for _, el := range elems {
		node, ok := el.(*wire.Node)
		if !ok {
			return nil, errors.NewWireError("data child is not an element", nil)
		}
		v, err := d.Decode(node)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
