// Package render provides the text encodings for document trees: a
// flattened dotted-path form, an indented bracketed tree form, and JSON in
// pretty or packed variants.
//
// Each renderer is a walker.Visitor selected by Style and constructed with
// New. Renderers write to an explicit io.Writer supplied at construction,
// keep only private per-document state, and reset that state at every
// OnTraverseStart, so one renderer may be reused and re-rendering the same
// tree yields byte-identical output.
//
//	r, err := render.New(render.StyleDotted, os.Stdout,
//	    render.WithRootToken("db.coll{0}"),
//	    render.WithTypeMask(typemap.MaskName|typemap.MaskCode),
//	)
//	if err != nil {
//	    return err
//	}
//	return walker.Walk(root, r)
//
// The dotted and tree styles append a type annotation to scalar lines,
// controlled by typemap.Mask. The JSON styles ignore the mask: their
// output is valid JSON and round-trips through encoding/json.
package render
