package document

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const indent = "  "

// MarshalIndent encodes v as two-space indented JSON followed by a newline.
func MarshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

// ModuleExports encodes v as a CommonJS module whose export is the JSON
// literal of v. Every JSON literal is a valid JavaScript expression, so the
// output can be evaluated by tools that load their config with require().
func ModuleExports(v any) ([]byte, error) {
	body, err := MarshalIndent(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("module.exports = ")
	buf.Write(bytes.TrimRight(body, "\n"))
	buf.WriteString(";\n")
	return buf.Bytes(), nil
}

// Parse decodes a JSON object document.
func Parse(data []byte) (*Object, error) {
	obj := NewObject()
	if err := obj.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return obj, nil
}

// Marshal encodes v as compact JSON without HTML escaping.
func Marshal(v any) ([]byte, error) {
	b, err := encodeCompact(v)
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return b, nil
}
