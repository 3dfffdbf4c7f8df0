package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/erraggy/mongotype/document"
	"github.com/erraggy/mongotype/typemap"
	"github.com/erraggy/mongotype/walker"
)

// treeRenderer emits an indented brace/bracket structure, one line per
// scalar and per structural bracket, with array lengths annotated as
// {ARRAY[n]} on the array's key line.
type treeRenderer struct {
	w      io.Writer
	indent string
	mask   typemap.Mask
	base   int

	level int
}

func (r *treeRenderer) OnTraverseStart() error {
	r.level = r.base
	return nil
}

func (r *treeRenderer) OnTraverseEnd() error {
	_, err := io.WriteString(r.w, "\n")
	return err
}

func (r *treeRenderer) line() string {
	return "\n" + strings.Repeat(r.indent, r.level)
}

func (r *treeRenderer) OnObjectStart(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(r.line())
	if parentIsArray(ctx) {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(top.ArrayIndex))
		b.WriteString("]: ")
	}
	b.WriteByte('{')
	r.level++
	_, err = io.WriteString(r.w, b.String())
	return err
}

func (r *treeRenderer) OnObjectEnd(_ *walker.Context) error {
	r.level--
	_, err := io.WriteString(r.w, r.line()+"}")
	return err
}

func (r *treeRenderer) OnArrayStart(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(r.line())
	if parentIsObject(ctx) {
		b.WriteString(top.Key)
	} else {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(top.ArrayIndex))
		b.WriteString("]:")
	}
	b.WriteString(" {ARRAY[")
	b.WriteString(strconv.Itoa(top.Node.Len()))
	b.WriteString("]}")
	r.level++
	_, err = io.WriteString(r.w, b.String())
	return err
}

func (r *treeRenderer) OnArrayEnd(_ *walker.Context) error {
	r.level--
	return nil
}

func (r *treeRenderer) OnElement(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	val, err := top.Node.Value()
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString(r.line())
	if parentIsArray(ctx) {
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(top.ArrayIndex))
		b.WriteString("]: ")
	} else {
		b.WriteString(top.Key)
		b.WriteString(": ")
	}
	b.WriteString(document.ValueText(val))
	if annot := typemap.Format(val.Type, r.mask); annot != "" {
		b.WriteByte(' ')
		b.WriteString(annot)
	}
	_, err = io.WriteString(r.w, b.String())
	return err
}
