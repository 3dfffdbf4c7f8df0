package typemap

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/mterrors"
)

// Mask selects which components appear in a rendered type annotation.
// Components are joined with "/" in name, description, code order.
type Mask uint8

const (
	// MaskName includes the BSON type name, e.g. "NumberInt".
	MaskName Mask = 1 << iota

	// MaskDesc includes the short description, e.g. "int32".
	MaskDesc

	// MaskCode includes the numeric BSON type code.
	MaskCode

	// MaskNone suppresses the annotation entirely.
	MaskNone Mask = 0

	// MaskAll includes all three components.
	MaskAll = MaskName | MaskDesc | MaskCode
)

// ParseMask parses a comma-separated component list such as "name,desc" or
// the shorthands "all" and "none". Unknown components fail with a
// *mterrors.ConfigError.
func ParseMask(s string) (Mask, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "", "all":
		return MaskAll, nil
	case "none":
		return MaskNone, nil
	}

	var m Mask
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "name":
			m |= MaskName
		case "desc", "description":
			m |= MaskDesc
		case "code":
			m |= MaskCode
		default:
			return MaskNone, &mterrors.ConfigError{
				Option:  "types",
				Value:   part,
				Message: "unknown annotation component (valid: name, desc, code, all, none)",
			}
		}
	}
	return m, nil
}

// String returns the canonical spelling accepted by ParseMask.
func (m Mask) String() string {
	switch m {
	case MaskNone:
		return "none"
	case MaskAll:
		return "all"
	}
	var parts []string
	if m&MaskName != 0 {
		parts = append(parts, "name")
	}
	if m&MaskDesc != 0 {
		parts = append(parts, "desc")
	}
	if m&MaskCode != 0 {
		parts = append(parts, "code")
	}
	return strings.Join(parts, ",")
}

// Format renders the parenthesized annotation for a BSON type with the
// selected components, e.g. "(NumberInt/int32/16)". It returns the empty
// string for MaskNone.
func Format(t bson.Type, m Mask) string {
	if m == MaskNone {
		return ""
	}
	info := Lookup(t)
	var b strings.Builder
	b.WriteByte('(')
	if m&MaskName != 0 {
		b.WriteString(info.Name)
	}
	if m&MaskDesc != 0 {
		if b.Len() > 1 {
			b.WriteByte('/')
		}
		b.WriteString(info.Desc)
	}
	if m&MaskCode != 0 {
		if b.Len() > 1 {
			b.WriteByte('/')
		}
		b.WriteString(fmt.Sprintf("%d", int(t)))
	}
	b.WriteByte(')')
	return b.String()
}
