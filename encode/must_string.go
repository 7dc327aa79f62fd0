package encode

import (
	"bytes"
	"strings"

	"github.com/toon-format/go-toon/ir"
)

func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
