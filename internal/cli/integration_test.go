package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/xmlrpcval/internal/decoder"
	"github.com/mcncl/xmlrpcval/internal/encoder"
	"github.com/mcncl/xmlrpcval/internal/escape"
	"github.com/mcncl/xmlrpcval/internal/export"
	"github.com/mcncl/xmlrpcval/internal/models"
	"github.com/mcncl/xmlrpcval/internal/parser"
	"github.com/mcncl/xmlrpcval/internal/wire"
)

// TestPipeline_XMLToJSON walks the full decode path: XML text, wire tree,
// value model, JSON export.
func TestPipeline_XMLToJSON(t *testing.T) {
	doc := `
<value>
  <struct>
    <member><name>title</name><value><string>Fahrenheit &amp; friends</string></value></member>
    <member><name>pages</name><value><int>208</int></value></member>
    <member><name>in_print</name><value><boolean>1</boolean></value></member>
    <member><name>rating</name><value><double>4.5</double></value></member>
    <member><name>tags</name><value><array><data>
      <value><string>dystopia</string></value>
      <value><string>classic</string></value>
    </data></array></value></member>
  </struct>
</value>`

	tree, err := wire.ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)

	value, err := decoder.NewDecoder(escape.PolicyIdentity).Decode(tree)
	require.NoError(t, err)

	s, ok := value.(models.Struct)
	require.True(t, ok)
	assert.Equal(t, "Fahrenheit & friends", s["title"])
	assert.Equal(t, int64(208), s["pages"])
	assert.Equal(t, true, s["in_print"])
	assert.Equal(t, 4.5, s["rating"])
	assert.Equal(t, models.Array{"dystopia", "classic"}, s["tags"])

	out, err := export.NewExporter(export.FormatJSON, export.MemberCaseKeep, false).Export(value)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Fahrenheit & friends", decoded["title"])
	assert.Equal(t, float64(208), decoded["pages"])
}

// TestPipeline_JSONToXMLAndBack encodes parsed JSON, renders it, and pushes
// the rendered document through a real XML parse and decode.
func TestPipeline_JSONToXMLAndBack(t *testing.T) {
	value, err := parser.ParseString(`{"a": 1, "b": "x < y", "c": [true, 2.5]}`)
	require.NoError(t, err)

	tree, err := encoder.NewEncoder(escape.PolicySubstitute).Encode(value)
	require.NoError(t, err)
	doc := wire.Render(tree)
	assert.Contains(t, string(doc), "x &lt; y")

	tree2, err := wire.ParseDocument(bytes.NewReader(doc))
	require.NoError(t, err)
	got, err := decoder.NewDecoder(escape.PolicyIdentity).Decode(tree2)
	require.NoError(t, err)
	assert.Equal(t, value, got)
}

// TestPipeline_MemberCaseExport checks that renaming happens at the export
// boundary only: wire names stay untouched.
func TestPipeline_MemberCaseExport(t *testing.T) {
	value, err := parser.ParseString(`{"page_count": 10}`)
	require.NoError(t, err)

	tree, err := encoder.NewEncoder(escape.PolicySubstitute).Encode(value)
	require.NoError(t, err)
	assert.Contains(t, string(wire.Render(tree)), "<name>page_count</name>")

	out, err := export.NewExporter(export.FormatJSON, export.MemberCaseCamel, false).Export(value)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"pageCount"`)
}

// TestPipeline_StableJSON runs JSON through the wire and back and checks
// the re-exported JSON matches the first export.
func TestPipeline_StableJSON(t *testing.T) {
	value, err := parser.ParseString(`{"n": 5, "s": "hi", "l": [1, 2, 3]}`)
	require.NoError(t, err)

	exp := export.NewExporter(export.FormatJSON, export.MemberCaseKeep, false)
	first, err := exp.Export(value)
	require.NoError(t, err)

	tree, err := encoder.NewEncoder(escape.PolicySubstitute).Encode(value)
	require.NoError(t, err)
	tree2, err := wire.ParseDocument(bytes.NewReader(wire.Render(tree)))
	require.NoError(t, err)
	back, err := decoder.NewDecoder(escape.PolicyIdentity).Decode(tree2)
	require.NoError(t, err)

	second, err := exp.Export(back)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
}
