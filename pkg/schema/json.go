package schema

import (
	"bytes"
	"encoding/json"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Json is a dynamically-shaped structured value: nil, bool, json.Number,
// string, []any or map[string]any. Request and response payloads vary per
// endpoint, so they are not given fixed schemas.
type Json = any

// Object is a JSON object, for building request bodies
type Object = map[string]any

// Array is a JSON array, for building request bodies
type Array = []any

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Parse decodes text into a structured value. Numbers are decoded as
// json.Number so that large integers are not rounded. Returns
// ErrMalformedResponse if the text is not exactly one JSON value.
func Parse(data []byte) (Json, error) {
	if !json.Valid(data) {
		return nil, ErrMalformedResponse.With("invalid JSON")
	}

	var result Json
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return nil, ErrMalformedResponse.With(err)
	}

	// Return success
	return result, nil
}

// Marshal serializes a structured value to compact text. A string, []byte or
// json.RawMessage is treated as text which has already been serialized, and
// is returned as-is.
func Marshal(v any) ([]byte, error) {
	switch v := v.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case json.RawMessage:
		return v, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, ErrBadParameter.With(err)
	}
	return data, nil
}

// ErrorValue returns the value of the top-level "error" key, and true if the
// value is an object containing that key
func ErrorValue(v Json) (Json, bool) {
	if obj, ok := v.(map[string]any); ok {
		value, exists := obj["error"]
		return value, exists
	}
	return nil, false
}
