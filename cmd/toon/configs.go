package main

import (
	"fmt"
	"io"
	"os"

	"github.com/toon-format/go-toon/encode"
	"github.com/toon-format/go-toon/format"
	"github.com/toon-format/go-toon/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=pretty desc='separate top level fields with blank lines'"`
	Indent int  `cli:"name=indent desc='indent width in spaces'"`

	T bool `cli:"name=t aliases=toon desc='do i/o in toon'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format
	Delim               *format.Delimiter
	Marker              rune

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) delimOpt(_ *cli.Context, v string) (any, error) {
	d, err := format.ParseDelimiter(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Delim = &d
	return d, nil
}

func (cfg *MainConfig) markerOpt(_ *cli.Context, v string) (any, error) {
	r := []rune(v)
	if len(r) != 1 {
		return nil, fmt.Errorf("%w: length marker must be a single character", cli.ErrUsage)
	}
	cfg.Marker = r[0]
	return v, nil
}

func (cfg *MainConfig) fmtDefault() format.Format {
	switch {
	case cfg.J:
		return format.JSONFormat
	case cfg.Y:
		return format.YAMLFormat
	default:
		return format.ToonFormat
	}
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return cfg.fmtDefault()
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return cfg.fmtDefault()
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{}
	if cfg.Marker != 0 {
		res = append(res, parse.ParseLengthMarker(cfg.Marker))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.Delim != nil {
		res = append(res, encode.EncodeDelimiter(*cfg.Delim))
	}
	if cfg.Marker != 0 {
		res = append(res, encode.EncodeLengthMarker(cfg.Marker))
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Tables bool `cli:"name=tables desc='keep tabular arrays as tables in the dump'"`
	Dump   *cli.Command
}

func (cfg *DumpConfig) parseOpts() []parse.ParseOption {
	res := cfg.MainConfig.parseOpts()
	if cfg.Tables {
		res = append(res, parse.ParseKeepTables())
	}
	return res
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
