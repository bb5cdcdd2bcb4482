// Package jsonutil holds the JSON encoder settings shared by every writer.
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder that leaves "&" and "<" alone, since line
// item names such as "Fixed O&M" are shown to people.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
