// Package parser reads JSON text into the value model, the application-side
// representation the encoder serialises.
package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/xmlrpcval/internal/encoder"
	"github.com/mcncl/xmlrpcval/internal/errors"
	"github.com/mcncl/xmlrpcval/internal/models"
)

// Parse converts JSON data from an io.Reader into a value tree.
func Parse(reader io.Reader) (models.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // Ensure numbers are read as json.Number

	var root interface{}
	if err := decoder.Decode(&root); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, errors.NewInputError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *json.SyntaxError
		if stderrors.As(err, &syntaxError) {
			return nil, errors.NewInputError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				errors.ErrInvalidJSON,
			)
		}
		return nil, errors.NewInputError("failed to decode JSON", err)
	}

	// Anything after the first JSON value is a second root, which has no
	// single-value mapping.
	if decoder.More() {
		var trailing interface{}
		if err := decoder.Decode(&trailing); err == nil {
			return nil, errors.NewInputError("multiple JSON values found at the root", errors.ErrMultipleJSON)
		} else if !stderrors.Is(err, io.EOF) {
			return nil, errors.NewInputError("invalid trailing data after first JSON value", err)
		}
	}

	return fromJSON(root)
}

// fromJSON maps decoded JSON data onto the value model. Integral numbers
// inside the encoder's accepted range become int64; everything else numeric
// becomes float64.
func fromJSON(v interface{}) (models.Value, error) {
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(models.Struct, len(v))
		for key, val := range v {
			w, err := fromJSON(val)
			if err != nil {
				return nil, err
			}
			out[key] = w
		}
		return out, nil
	case []interface{}:
		out := make(models.Array, len(v))
		for i, val := range v {
			w, err := fromJSON(val)
			if err != nil {
				return nil, err
			}
			out[i] = w
		}
		return out, nil
	case json.Number:
		if i, err := v.Int64(); err == nil && i >= encoder.IntMin && i <= encoder.IntMax {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("bad number %q", v.String()), err)
		}
		return f, nil
	case string:
		return v, nil
	case bool:
		return v, nil
	case nil:
		return nil, errors.NewUnsupportedError("JSON null has no XML-RPC value", nil)
	default:
		return nil, errors.NewUnsupportedError(fmt.Sprintf("unexpected JSON value type %T", v), nil)
	}
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
