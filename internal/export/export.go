// Package export renders decoded values in an application-side encoding:
// JSON, YAML or CBOR.
package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/xmlrpcval/internal/errors"
	"github.com/mcncl/xmlrpcval/internal/models"
)

// Format selects the output encoding for decoded values.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// MemberCase controls renaming of struct member names on export.
type MemberCase string

const (
	MemberCaseKeep  MemberCase = "keep"
	MemberCaseCamel MemberCase = "camel"
	MemberCaseSnake MemberCase = "snake"
)

// Exporter renders values for consumption outside the codec.
type Exporter struct {
	format Format
	casing MemberCase
	indent bool
}

// NewExporter creates an Exporter for the given format. Indentation only
// affects JSON output.
func NewExporter(format Format, casing MemberCase, indent bool) *Exporter {
	return &Exporter{format: format, casing: casing, indent: indent}
}

// Export renders v in the exporter's format.
func (e *Exporter) Export(v models.Value) ([]byte, error) {
	plain := e.plain(v)
	switch e.format {
	case FormatJSON:
		var out []byte
		var err error
		if e.indent {
			out, err = json.MarshalIndent(plain, "", "  ")
		} else {
			out, err = json.Marshal(plain)
		}
		if err != nil {
			return nil, errors.NewOutputError("failed to encode JSON", err)
		}
		return out, nil
	case FormatYAML:
		out, err := yaml.Marshal(plain)
		if err != nil {
			return nil, errors.NewOutputError("failed to encode YAML", err)
		}
		return out, nil
	case FormatCBOR:
		out, err := cbor.Marshal(plain)
		if err != nil {
			return nil, errors.NewOutputError("failed to encode CBOR", err)
		}
		return out, nil
	default:
		return nil, errors.NewOutputError(
			fmt.Sprintf("unknown output format %q", e.format), errors.ErrUnknownFormat)
	}
}

// plain converts the value model into plain Go data the target encoders all
// understand: structs become maps with renamed keys, timestamps become
// RFC 3339 strings, labels become strings. Byte sequences are left to each
// encoder's native convention (base64 text in JSON, !!binary in YAML, a
// byte string in CBOR).
func (e *Exporter) plain(v models.Value) interface{} {
	switch v := v.(type) {
	case models.Struct:
		out := make(map[string]interface{}, len(v))
		for name, val := range v {
			out[e.memberName(name)] = e.plain(val)
		}
		return out
	case models.Array:
		out := make([]interface{}, len(v))
		for i, val := range v {
			out[i] = e.plain(val)
		}
		return out
	case models.Label:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return v
	}
}

func (e *Exporter) memberName(name string) string {
	switch e.casing {
	case MemberCaseCamel:
		return strcase.ToLowerCamel(name)
	case MemberCaseSnake:
		return strcase.ToSnake(name)
	}
	return name
}
