package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/typemap"
	"github.com/erraggy/mongotype/walker"
)

// dotRenderer emits one line per terminal scalar, prefixed with the full
// dotted path from the root token. Nesting depth is invisible except
// through the accumulated path text.
type dotRenderer struct {
	w         io.Writer
	mask      typemap.Mask
	rootToken string

	segs []string
}

// pathSegment returns the path text contributed by a collection scope:
// ".key" for children of an Object, "[i]" for array elements, nothing for
// the tree root. Membership is decided by the parent scope's kind; BSON
// permits empty field names, so key emptiness is no discriminator.
func pathSegment(ctx *walker.Context, s walker.Scope) (string, bool) {
	if parentIsObject(ctx) {
		return "." + s.Key, true
	}
	if parentIsArray(ctx) {
		return "[" + strconv.Itoa(s.ArrayIndex) + "]", true
	}
	return "", false
}

func (r *dotRenderer) OnTraverseStart() error {
	r.segs = r.segs[:0]
	r.segs = append(r.segs, r.rootToken)
	return nil
}

func (r *dotRenderer) OnTraverseEnd() error {
	return nil
}

func (r *dotRenderer) OnObjectStart(ctx *walker.Context) error {
	return r.enter(ctx)
}

func (r *dotRenderer) OnObjectEnd(ctx *walker.Context) error {
	return r.leave(ctx)
}

func (r *dotRenderer) OnArrayStart(ctx *walker.Context) error {
	return r.enter(ctx)
}

func (r *dotRenderer) OnArrayEnd(ctx *walker.Context) error {
	return r.leave(ctx)
}

func (r *dotRenderer) enter(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	if seg, ok := pathSegment(ctx, top); ok {
		r.segs = append(r.segs, seg)
	}
	return nil
}

func (r *dotRenderer) leave(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	if _, ok := pathSegment(ctx, top); ok {
		r.segs = r.segs[:len(r.segs)-1]
	}
	return nil
}

func (r *dotRenderer) OnElement(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	val, err := top.Node.Value()
	if err != nil {
		return err
	}

	var b strings.Builder
	for _, seg := range r.segs {
		b.WriteString(seg)
	}
	if parentIsArray(ctx) {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(top.ArrayIndex))
		b.WriteByte(']')
	} else {
		b.WriteByte('.')
		b.WriteString(top.Key)
	}
	b.WriteByte(' ')
	b.WriteString(document.ValueText(val))
	if annot := typemap.Format(val.Type, r.mask); annot != "" {
		b.WriteByte(' ')
		b.WriteString(annot)
	}
	b.WriteByte('\n')

	_, err = io.WriteString(r.w, b.String())
	return err
}
