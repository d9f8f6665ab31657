// Package parser adapts fastjson to the tree shape the flattener walks.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/valyala/fastjson"

	"github.com/mcncl/jsonflat/internal/errors"
)

// ParseString parses a single JSON document from a string.
//
// Every value returned shares memory with a parser allocated for this call
// only, so results from concurrent calls never alias.
func ParseString(jsonString string) (*fastjson.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewParsingError("input is empty or contains only whitespace",
			fmt.Errorf("%w: %w", errors.ErrMalformedJSON, errors.ErrEmptyInput))
	}

	// Parse alone accepts NaN, bad escapes and leading zeros.
	if err := fastjson.Validate(jsonString); err != nil {
		return nil, errors.NewParsingError("JSON syntax error",
			fmt.Errorf("%w: %w", errors.ErrMalformedJSON, err))
	}

	var p fastjson.Parser
	v, err := p.Parse(jsonString)
	if err != nil {
		return nil, errors.NewParsingError("JSON syntax error",
			fmt.Errorf("%w: %v", errors.ErrMalformedJSON, err))
	}
	return v, nil
}

// ParseBytes parses a single JSON document from b.
func ParseBytes(b []byte) (*fastjson.Value, error) {
	return ParseString(string(b))
}

// Parse reads r to EOF and parses the result as one JSON document.
func Parse(reader io.Reader) (*fastjson.Value, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (*fastjson.Value, error) {
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

// IsContainer reports whether v is a JSON object or array.
func IsContainer(v *fastjson.Value) bool {
	if v == nil {
		return false
	}
	t := v.Type()
	return t == fastjson.TypeObject || t == fastjson.TypeArray
}
