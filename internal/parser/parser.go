package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"jsoncompare/internal/errors"
	"jsoncompare/internal/models"
)

// MaxDepth bounds how deeply nested a document may be before parsing is
// abandoned. JSON cannot encode cycles, so this is the only guard the
// comparator needs against pathological inputs. Package consumers can
// override it before parsing.
var MaxDepth = 10000

// Parse converts JSON data from an io.Reader into a models.Value tree.
// Object keys keep the order they appear in the input, which is why this
// walks the decoder's token stream instead of unmarshaling into a map.
func Parse(reader io.Reader) (models.Value, error) {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber() // keep numbers as json.Number so literal form survives

	tok, err := decoder.Token()
	if err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.Value{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		return models.Value{}, wrapSyntaxError(err)
	}

	value, err := parseValue(decoder, tok, 0)
	if err != nil {
		return models.Value{}, err
	}

	// Check for trailing data after the first JSON value.
	if decoder.More() {
		return models.Value{}, errors.NewParsingError("multiple JSON values found at the root", errors.ErrMultipleJSON)
	}

	return value, nil
}

// parseValue builds the tree for the value whose first token is tok.
func parseValue(decoder *json.Decoder, tok json.Token, depth int) (models.Value, error) {
	if depth > MaxDepth {
		return models.Value{}, errors.NewParsingError(
			fmt.Sprintf("document exceeds the maximum nesting depth of %d", MaxDepth),
			errors.ErrMaxDepthExceeded,
		)
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(decoder, depth+1)
		case '[':
			return parseArray(decoder, depth+1)
		}
		// The decoder only hands closing delimiters to the matching
		// parseObject/parseArray loop, so this is unreachable on its output.
		return models.Value{}, errors.NewParsingError(
			fmt.Sprintf("unexpected delimiter %q", t.String()),
			errors.ErrInvalidJSON,
		)
	case nil:
		return models.Null(), nil
	case bool:
		return models.Boolean(t), nil
	case json.Number:
		return models.Number(t), nil
	case string:
		return models.String(t), nil
	default:
		return models.Value{}, errors.NewParsingError(
			fmt.Sprintf("unexpected token of type %T", tok),
			errors.ErrInvalidJSON,
		)
	}
}

func parseObject(decoder *json.Decoder, depth int) (models.Value, error) {
	obj := models.NewObject()
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapSyntaxError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return models.ObjectValue(obj), nil
		}

		// Inside an object the decoder guarantees the token before a value
		// is the member key.
		key, ok := tok.(string)
		if !ok {
			return models.Value{}, errors.NewParsingError(
				fmt.Sprintf("expected object key, got token of type %T", tok),
				errors.ErrInvalidJSON,
			)
		}

		valueTok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapSyntaxError(err)
		}
		value, err := parseValue(decoder, valueTok, depth)
		if err != nil {
			return models.Value{}, err
		}
		obj.Set(key, value)
	}
}

func parseArray(decoder *json.Decoder, depth int) (models.Value, error) {
	var elems []models.Value
	for {
		tok, err := decoder.Token()
		if err != nil {
			return models.Value{}, wrapSyntaxError(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return models.Array(elems...), nil
		}

		value, err := parseValue(decoder, tok, depth)
		if err != nil {
			return models.Value{}, err
		}
		elems = append(elems, value)
	}
}

// wrapSyntaxError converts decoder errors into the application taxonomy.
func wrapSyntaxError(err error) error {
	if stderrors.Is(err, io.EOF) || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return errors.NewParsingError("json syntax error: unexpected EOF", errors.ErrInvalidJSON)
	}
	var syntaxError *json.SyntaxError
	if stderrors.As(err, &syntaxError) {
		return errors.NewParsingError(
			fmt.Sprintf("json syntax error at offset %d: %v", syntaxError.Offset, syntaxError),
			errors.ErrInvalidJSON,
		)
	}
	return errors.NewParsingError("failed to decode JSON", err)
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.Value{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	reader := strings.NewReader(jsonString)
	return Parse(reader)
}

// ParseBytes parses JSON from a byte slice
func ParseBytes(data []byte) (models.Value, error) {
	return ParseString(string(data))
}

// ParseFile parses JSON from a file path
func ParseFile(filePath string) (models.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.Value{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.Value{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.Value{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
