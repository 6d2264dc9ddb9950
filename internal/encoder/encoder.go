// Package encoder serialises values into the XML-RPC wire tree.
package encoder

import (
	"encoding/base64"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/mcncl/xmlrpcval/internal/errors"
	"github.com/mcncl/xmlrpcval/internal/escape"
	"github.com/mcncl/xmlrpcval/internal/isodate"
	"github.com/mcncl/xmlrpcval/internal/models"
	"github.com/mcncl/xmlrpcval/internal/wire"
)

// Bounds of the accepted integer range. The upper bound is 1<<31 itself,
// one past the conventional int32 maximum; existing traffic depends on the
// inclusive bound, so it stays as-is.
const (
	IntMin = -1 << 31
	IntMax = 1 << 31
)

// Encoder turns values into wire trees.
type Encoder struct {
	policy escape.Policy
}

// NewEncoder creates an Encoder using the given escape policy for string
// content.
func NewEncoder(policy escape.Policy) *Encoder {
	return &Encoder{policy: policy}
}

// Encode serialises v, wrapped in a value node.
func (e *Encoder) Encode(v models.Value) (*wire.Node, error) {
	switch v := v.(type) {
	case int:
		return e.encodeInt(int64(v))
	case int32:
		return e.encodeInt(int64(v))
	case int64:
		return e.encodeInt(v)
	case float64:
		return e.encodeDouble(v)
	case string:
		return wrap(wire.New(wire.TagString, e.policy.Encode(v))), nil
	case models.Label:
		// Labels serialise exactly like strings; the distinction does not
		// survive the wire.
		return wrap(wire.New(wire.TagString, e.policy.Encode(string(v)))), nil
	case bool:
		text := "0"
		if v {
			text = "1"
		}
		return wrap(wire.New(wire.TagBoolean, text)), nil
	case time.Time:
		return wrap(wire.New(wire.TagDateTime, isodate.Format(v))), nil
	case []byte:
		return wrap(wire.New(wire.TagBase64, base64.StdEncoding.EncodeToString(v))), nil
	case models.Struct:
		return e.encodeStruct(v)
	case models.Array:
		return e.encodeArray(v)
	default:
		return nil, errors.NewUnsupportedError(
			fmt.Sprintf("cannot serialise value of type %T", v), nil)
	}
}

func (e *Encoder) encodeInt(v int64) (*wire.Node, error) {
	if v < IntMin || v > IntMax {
		return nil, errors.NewRangeError(
			fmt.Sprintf("integer %d outside the accepted range [%d, %d]", v, int64(IntMin), int64(IntMax)), nil)
	}
	return wrap(wire.New(wire.TagInt, strconv.FormatInt(v, 10))), nil
}

func (e *Encoder) encodeDouble(v float64) (*wire.Node, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.NewRepresentationError(
			fmt.Sprintf("double %v has no wire representation", v), nil)
	}
	return wrap(wire.New(wire.TagDouble, strconv.FormatFloat(v, 'g', -1, 64))), nil
}

func (e *Encoder) encodeStruct(s models.Struct) (*wire.Node, error) {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	// Member order on the wire is not contractual; sorting keeps the output
	// deterministic across runs.
	sort.Strings(names)

	st := wire.New(wire.TagStruct)
	for _, name := range names {
		val, err := e.Encode(s[name])
		if err != nil {
			return nil, err
		}
		// Member names go out unescaped regardless of policy.
		member := wire.New(wire.TagMember, wire.New(wire.TagName, name), val)
		st.Children = append(st.Children, member)
	}
	return wrap(st), nil
}

func (e *Encoder) encodeArray(a models.Array) (*wire.Node, error) {
	data := wire.New(wire.TagData)
	for _, el := range a {
		v, err := e.Encode(el)
		if err != nil {
			return nil, err
		}
		data.Children = append(data.Children, v)
	}
	return wrap(wire.New(wire.TagArray, data)), nil
}

func wrap(n *wire.Node) *wire.Node {
	return wire.New(wire.TagValue, n)
}
