package document

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ValueText renders a scalar BSON value as human-readable text for the
// dotted and tree styles. Strings are double-quoted, dates use RFC 3339,
// and driver-specific types use their conventional shell spellings. The
// JSON renderer does not use this; it emits JSON-legal literals instead.
func ValueText(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeDouble:
		return strconv.FormatFloat(v.Double(), 'g', -1, 64)
	case bson.TypeString:
		return strconv.Quote(v.StringValue())
	case bson.TypeBoolean:
		return strconv.FormatBool(v.Boolean())
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	case bson.TypeObjectID:
		return fmt.Sprintf("ObjectId(%q)", v.ObjectID().Hex())
	case bson.TypeNull:
		return "null"
	case bson.TypeUndefined:
		return "undefined"
	case bson.TypeBinary:
		subtype, data := v.Binary()
		return fmt.Sprintf("BinData(%d, %q)", subtype, base64.StdEncoding.EncodeToString(data))
	case bson.TypeRegex:
		pattern, options := v.Regex()
		return "/" + pattern + "/" + options
	case bson.TypeTimestamp:
		t, i := v.Timestamp()
		return fmt.Sprintf("Timestamp(%d, %d)", t, i)
	case bson.TypeDecimal128:
		return v.Decimal128().String()
	case bson.TypeJavaScript:
		return v.JavaScript()
	case bson.TypeSymbol:
		return v.Symbol()
	case bson.TypeMinKey:
		return "MinKey"
	case bson.TypeMaxKey:
		return "MaxKey"
	default:
		// DBPointer, code-with-scope and anything newer than this table
		// fall back to the driver's extended JSON rendering.
		return v.String()
	}
}
