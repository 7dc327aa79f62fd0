// Package toon ties the parser and encoder together behind a small
// convenience surface.
package toon

import (
	"bytes"
	"encoding/json"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/parse"
)

func Parse(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.Parse(d, opts...)
}

func Encode(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Marshal renders a Go value as toon text. Struct fields follow their
// json tags on the way through the value bridge.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses toon text into a Go value over the JSON bridge.
func Unmarshal(d []byte, v any, opts ...parse.ParseOption) error {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return err
	}
	jd, err := ir.ToJSON(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(jd, v)
}
