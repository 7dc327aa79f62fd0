package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/ir"
	"github.com/toon-format/go-toon/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func readObjData(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readObjData(cc, path)
	if err != nil {
		return nil, err
	}
	return decodeIn(cfg, d, opts...)
}

// decodeIn reads a document in the configured input format into the
// IR. json and yaml inputs come through the value bridge, so object
// field order is sorted.
func decodeIn(cfg *MainConfig, d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	f := cfg.inFormat()
	switch {
	case f.IsJSON():
		return ir.FromJSON(d)
	case f.IsYAML():
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v)
	default:
		if len(opts) == 0 {
			opts = cfg.parseOpts()
		}
		return parse.Parse(d, opts...)
	}
}

func encodeOut(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	f := cfg.outFormat()
	switch {
	case f.IsJSON():
		d, err := json.MarshalIndent(ir.ToAny(y), "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case f.IsYAML():
		d, err := yaml.Marshal(ir.ToAny(y))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return encode.Encode(y, w, cfg.encOpts(w)...)
	}
}
