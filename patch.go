package toon

import (
	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/toon-format/go-toon/ir"
)

// Patch applies an RFC 6902 JSON patch to a document. The document
// crosses into JSON, takes the patch there and comes back, so field
// order after a patch is sorted.
func Patch(doc *ir.Node, patchJSON []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, err
	}
	jd, err := ir.ToJSON(doc)
	if err != nil {
		return nil, err
	}
	jd, err = ops.Apply(jd)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(jd)
}
