// Package dumper renders streams of BSON documents. It drives the
// per-document render pipeline across a Source, adding the stream-level
// furniture: the count banner, per-document root tokens, separators and
// the JSON array wrapping.
package dumper

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/render"
	"github.com/erraggy/mongotype/typemap"
	"github.com/erraggy/mongotype/walker"
)

// options holds Dumper configuration.
type options struct {
	style     render.Style
	indent    string
	mask      typemap.Mask
	namespace string
	separator string
}

func defaultOptions() options {
	return options{
		style:     render.StyleTree,
		indent:    "  ",
		mask:      typemap.MaskAll,
		namespace: "doc",
	}
}

// Option configures a Dumper.
type Option func(*options)

// WithStyle selects the output style. Default is render.StyleTree.
func WithStyle(style render.Style) Option {
	return func(o *options) { o.style = style }
}

// WithIndent sets the indentation unit for the tree and pretty JSON
// styles.
func WithIndent(indent string) Option {
	return func(o *options) { o.indent = indent }
}

// WithTypeMask selects the type annotation components for the dotted and
// tree styles.
func WithTypeMask(mask typemap.Mask) Option {
	return func(o *options) { o.mask = mask }
}

// WithNamespace sets the "db.collection" prefix used for the count
// banner and the per-document root tokens. Default is "doc".
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithSeparator sets extra text written between consecutive documents in
// the dotted and tree styles. The JSON styles always separate documents
// with a comma and ignore this.
func WithSeparator(sep string) Option {
	return func(o *options) { o.separator = sep }
}

// Dumper renders every document of a Source to a writer, strictly one at
// a time and in source order.
type Dumper struct {
	opts options
}

// New returns a Dumper with the given options applied over the defaults.
func New(opts ...Option) *Dumper {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Dumper{opts: o}
}

// jsonStyle reports whether the configured style is one of the JSON
// variants, which share the array-wrapping output shape.
func (d *Dumper) jsonStyle() bool {
	return d.opts.style == render.StyleJSON || d.opts.style == render.StyleJSONPacked
}

// rootToken returns the dotted-style root token for the i-th document.
func (d *Dumper) rootToken(i int) string {
	return fmt.Sprintf("%s{%d}", d.opts.namespace, i)
}

// Dump renders all documents from src to w. For the dotted and tree
// styles each document gets the root token "<namespace>{N}", preceded by
// a "<namespace>.count:N" banner when the source knows its count. The
// JSON styles wrap the whole stream in a single array. On error the
// writer holds whatever was rendered before the failure and the error
// propagates unchanged.
func (d *Dumper) Dump(ctx context.Context, w io.Writer, src Source) error {
	if !d.jsonStyle() {
		if counter, ok := src.(Counter); ok {
			n, err := counter.Count(ctx)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s.count:%d\n", d.opts.namespace, n); err != nil {
				return err
			}
		}
	} else {
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
	}

	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		raw, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if i > 0 {
			sep := d.opts.separator
			if d.jsonStyle() {
				sep = ","
			}
			if sep != "" {
				if _, err := io.WriteString(w, sep); err != nil {
					return err
				}
			}
		}

		root, err := document.FromRaw(raw)
		if err != nil {
			return err
		}

		renderOpts := []render.Option{
			render.WithIndent(d.opts.indent),
			render.WithTypeMask(d.opts.mask),
			render.WithRootToken(d.rootToken(i)),
		}
		if d.jsonStyle() {
			// Documents sit one level inside the wrapping array.
			renderOpts = append(renderOpts, render.WithBaseLevel(1))
		}
		r, err := render.New(d.opts.style, w, renderOpts...)
		if err != nil {
			return err
		}
		if err := walker.Walk(root, r); err != nil {
			return err
		}
	}

	if d.jsonStyle() {
		closing := "]\n"
		if d.opts.style == render.StyleJSON {
			closing = "\n]\n"
		}
		if _, err := io.WriteString(w, closing); err != nil {
			return err
		}
	}
	return nil
}
