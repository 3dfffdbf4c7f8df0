package render

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/walker"
)

// jsonRenderer emits valid JSON, pretty or packed. The two variants share
// one implementation: packed only suppresses the inter-token whitespace,
// never the comma/key logic.
type jsonRenderer struct {
	w      io.Writer
	indent string
	packed bool
	base   int

	level int
}

func (r *jsonRenderer) OnTraverseStart() error {
	r.level = r.base
	return nil
}

func (r *jsonRenderer) OnTraverseEnd() error {
	return nil
}

// ws returns the whitespace run preceding the next token: newline plus
// indentation when pretty, nothing when packed.
func (r *jsonRenderer) ws() string {
	if r.packed {
		return ""
	}
	return "\n" + strings.Repeat(r.indent, r.level)
}

// comma reports whether a separating comma is due before this node. The
// first child of every collection is comma-free exactly once, whichever
// indexing scheme applies.
func comma(ctx *walker.Context, top walker.Scope) bool {
	return top.SiblingIndex > 0 && (!parentIsArray(ctx) || top.ArrayIndex > 0)
}

// keyPrefix returns the quoted key and separator when the enclosing
// collection is an Object; array elements and the root carry no key. BSON
// permits empty field names, so key emptiness is no discriminator.
func (r *jsonRenderer) keyPrefix(ctx *walker.Context, top walker.Scope) string {
	if !parentIsObject(ctx) {
		return ""
	}
	if r.packed {
		return jsonString(top.Key) + ":"
	}
	return jsonString(top.Key) + ": "
}

func (r *jsonRenderer) open(ctx *walker.Context, bracket byte) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	var b strings.Builder
	if comma(ctx, top) {
		b.WriteByte(',')
	}
	b.WriteString(r.ws())
	b.WriteString(r.keyPrefix(ctx, top))
	b.WriteByte(bracket)
	r.level++
	_, err = io.WriteString(r.w, b.String())
	return err
}

func (r *jsonRenderer) close(bracket byte) error {
	r.level--
	_, err := io.WriteString(r.w, r.ws()+string(bracket))
	return err
}

func (r *jsonRenderer) OnObjectStart(ctx *walker.Context) error {
	return r.open(ctx, '{')
}

func (r *jsonRenderer) OnObjectEnd(_ *walker.Context) error {
	return r.close('}')
}

func (r *jsonRenderer) OnArrayStart(ctx *walker.Context) error {
	return r.open(ctx, '[')
}

func (r *jsonRenderer) OnArrayEnd(_ *walker.Context) error {
	return r.close(']')
}

func (r *jsonRenderer) OnElement(ctx *walker.Context) error {
	top, err := ctx.Top()
	if err != nil {
		return err
	}
	val, err := top.Node.Value()
	if err != nil {
		return err
	}
	var b strings.Builder
	if comma(ctx, top) {
		b.WriteByte(',')
	}
	b.WriteString(r.ws())
	b.WriteString(r.keyPrefix(ctx, top))
	b.WriteString(jsonValue(val))
	_, err = io.WriteString(r.w, b.String())
	return err
}

// jsonString renders s as a JSON string literal with full escaping of
// quotes, backslashes and control characters.
func jsonString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string only fails on invalid UTF-8, which
		// json.Marshal replaces rather than rejects; keep a fallback.
		return strconv.Quote(s)
	}
	return string(data)
}

// jsonValue renders a scalar BSON value as a JSON-legal literal. Numbers
// stay bare; types JSON has no spelling for become strings. The output of
// the JSON styles always parses with a standard JSON reader.
func jsonValue(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeDouble:
		f := v.Double()
		if math.IsInf(f, 1) {
			return jsonString("Infinity")
		}
		if math.IsInf(f, -1) {
			return jsonString("-Infinity")
		}
		if math.IsNaN(f) {
			return jsonString("NaN")
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	case bson.TypeString:
		return jsonString(v.StringValue())
	case bson.TypeBoolean:
		return strconv.FormatBool(v.Boolean())
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeNull, bson.TypeUndefined:
		return "null"
	case bson.TypeDateTime:
		return jsonString(v.Time().UTC().Format(time.RFC3339Nano))
	case bson.TypeObjectID:
		return jsonString(v.ObjectID().Hex())
	case bson.TypeBinary:
		_, data := v.Binary()
		return jsonString(base64.StdEncoding.EncodeToString(data))
	case bson.TypeRegex:
		pattern, options := v.Regex()
		return jsonString("/" + pattern + "/" + options)
	case bson.TypeTimestamp:
		t, i := v.Timestamp()
		return jsonString(fmt.Sprintf("Timestamp(%d, %d)", t, i))
	case bson.TypeDecimal128:
		return jsonString(v.Decimal128().String())
	case bson.TypeJavaScript:
		return jsonString(v.JavaScript())
	case bson.TypeSymbol:
		return jsonString(v.Symbol())
	case bson.TypeMinKey:
		return jsonString("MinKey")
	case bson.TypeMaxKey:
		return jsonString("MaxKey")
	default:
		return jsonString(v.String())
	}
}
