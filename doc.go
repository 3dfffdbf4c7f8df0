// Package mongotype provides tools for inspecting the structure and BSON
// types of MongoDB documents.
//
// mongotype decodes documents into a uniform tree of objects, arrays and
// scalars, traverses that tree with a visitor, and renders it in several
// text styles annotated with BSON type information.
//
// # Overview
//
// The library consists of five primary packages:
//
//   - document: Decode raw BSON or extended JSON into a document tree
//   - walker: Depth-first traversal of document trees with a visitor interface
//   - render: Text renderers for the dotted, tree and JSON output styles
//   - typemap: The BSON type catalog and type annotation formatting
//   - dumper: Stream documents from a collection, file or slice through a renderer
//
// # Quick Start
//
// Render a document in the tree style:
//
//	import (
//		"os"
//
//		"go.mongodb.org/mongo-driver/v2/bson"
//
//		"github.com/erraggy/mongotype/document"
//		"github.com/erraggy/mongotype/render"
//		"github.com/erraggy/mongotype/walker"
//	)
//
//	root, err := document.FromD(bson.D{{Key: "a", Value: int32(1)}})
//	if err != nil {
//		log.Fatal(err)
//	}
//	r, err := render.New(render.StyleTree, os.Stdout)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := walker.Walk(root, r); err != nil {
//		log.Fatal(err)
//	}
//
// Dump a live collection:
//
//	import "github.com/erraggy/mongotype/dumper"
//
//	src, err := dumper.OpenCollection(ctx, dumper.CollectionConfig{
//		URI:        "mongodb://localhost:27017",
//		Database:   "db",
//		Collection: "coll",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer src.Close(ctx)
//
//	d := dumper.New(
//		dumper.WithStyle(render.StyleDotted),
//		dumper.WithNamespace("db.coll"),
//	)
//	if err := d.Dump(ctx, os.Stdout, src); err != nil {
//		log.Fatal(err)
//	}
//
// # Output Styles
//
// Four styles are available:
//
//   - dotted: one line per scalar with its full path, e.g.
//     "db.coll{0}.a.b 5 (NumberInt/int32/16)"
//   - tree: an indented brace structure with array length annotations
//   - json: pretty-printed JSON that parses with any JSON reader
//   - jsonpacked: the same JSON with all optional whitespace removed
//
// The dotted and tree styles append a type annotation to each scalar; the
// typemap.Mask type selects which of its name, description and code parts
// appear. The JSON styles ignore the mask to keep their output valid JSON.
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Decode errors: invalid BSON or extended JSON input (mterrors.ErrDecode)
//   - Malformed nodes and stack underflows: programmer errors that abort a
//     traversal (mterrors.ErrMalformedNode, mterrors.ErrStackUnderflow)
//   - Configuration errors: unknown styles, invalid masks, bad settings
//     (mterrors.ErrConfig)
//   - Connection errors: unreachable deployments and failing cursors
//     (mterrors.ErrConnection)
//
// Unknown BSON types are not errors; the type catalog degrades to an
// UNKNOWN annotation and traversal continues.
//
// # Command-Line Interface
//
// In addition to the library packages, mongotype provides a command-line
// interface:
//
//	# Dump a collection's structure
//	mongotype dump db.coll
//
//	# Render extended JSON documents from a file
//	mongotype render --style dotted docs.json
//
//	# Show the BSON type catalog
//	mongotype types
//
// Install the CLI:
//
//	go install github.com/erraggy/mongotype/cmd/mongotype@latest
package mongotype
