package render

import (
	"fmt"
	"io"

	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/mterrors"
	"github.com/erraggy/mongotype/typemap"
	"github.com/erraggy/mongotype/walker"
)

// Style selects one of the text encodings.
type Style int

const (
	// StyleDotted renders one line per scalar with its full dotted path.
	StyleDotted Style = iota

	// StyleTree renders an indented brace/bracket structure.
	StyleTree

	// StyleJSON renders pretty-printed JSON.
	StyleJSON

	// StyleJSONPacked renders JSON with all optional whitespace removed.
	StyleJSONPacked
)

// IsValid returns true if the style is one of the defined constants.
func (s Style) IsValid() bool {
	return s >= StyleDotted && s <= StyleJSONPacked
}

// String returns the spelling accepted by ParseStyle.
func (s Style) String() string {
	switch s {
	case StyleDotted:
		return "dotted"
	case StyleTree:
		return "tree"
	case StyleJSON:
		return "json"
	case StyleJSONPacked:
		return "jsonpacked"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// ParseStyle parses a style name. Unknown names fail with a
// *mterrors.ConfigError.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "dotted":
		return StyleDotted, nil
	case "tree":
		return StyleTree, nil
	case "json":
		return StyleJSON, nil
	case "jsonpacked":
		return StyleJSONPacked, nil
	default:
		return StyleDotted, &mterrors.ConfigError{
			Option:  "style",
			Value:   name,
			Message: "unknown output style (valid: dotted, tree, json, jsonpacked)",
		}
	}
}

// options holds renderer configuration shared by all styles.
type options struct {
	indent    string
	mask      typemap.Mask
	rootToken string
	baseLevel int
}

func defaultOptions() options {
	return options{
		indent:    "  ",
		mask:      typemap.MaskAll,
		rootToken: "doc",
	}
}

// Option configures a renderer.
type Option func(*options)

// WithIndent sets the token repeated once per nesting level by the tree
// and pretty JSON styles. Default is two spaces.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithTypeMask selects the components of the type annotation appended to
// scalar lines by the dotted and tree styles. Default is typemap.MaskAll.
// The JSON styles ignore the mask.
func WithTypeMask(mask typemap.Mask) Option {
	return func(o *options) { o.mask = mask }
}

// WithRootToken sets the path prefix the dotted style seeds each document
// with, conventionally "db.collection{index}". Default is "doc".
func WithRootToken(token string) Option {
	return func(o *options) { o.rootToken = token }
}

// WithBaseLevel sets the indent level the tree and pretty JSON styles
// start at, for output embedded in an enclosing structure. Default is 0.
func WithBaseLevel(level int) Option {
	return func(o *options) { o.baseLevel = level }
}

// New constructs the renderer for a style, writing to w. The returned
// visitor is ready to pass to walker.Walk and may be reused across
// documents.
func New(style Style, w io.Writer, opts ...Option) (walker.Visitor, error) {
	if w == nil {
		return nil, &mterrors.ConfigError{Option: "writer", Message: "nil output writer"}
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch style {
	case StyleDotted:
		return &dotRenderer{w: w, mask: o.mask, rootToken: o.rootToken}, nil
	case StyleTree:
		return &treeRenderer{w: w, indent: o.indent, mask: o.mask, base: o.baseLevel}, nil
	case StyleJSON:
		return &jsonRenderer{w: w, indent: o.indent, base: o.baseLevel}, nil
	case StyleJSONPacked:
		return &jsonRenderer{w: w, packed: true}, nil
	default:
		return nil, &mterrors.ConfigError{Option: "style", Value: int(style), Message: "unknown output style"}
	}
}

// parentIsArray reports whether the enclosing collection of the node whose
// event is firing is an Array. The top of the stack is the node itself, so
// the enclosing collection sits at Item(-2); a stack too shallow for that
// lookup means the node is the root, which is not array-enclosed.
func parentIsArray(ctx *walker.Context) bool {
	parent, err := ctx.Item(-2)
	if err != nil {
		return false
	}
	return parent.Kind == document.KindArray
}

// parentIsObject reports whether the enclosing collection is an Object.
func parentIsObject(ctx *walker.Context) bool {
	parent, err := ctx.Item(-2)
	if err != nil {
		return false
	}
	return parent.Kind == document.KindObject
}
