// Package typemap maps BSON scalar type tags to descriptive strings and
// formats the optional type annotation appended to rendered scalar lines.
//
// Lookups never fail: an unmatched type degrades to ("UNKNOWN","UNKNOWN")
// and rendering continues.
package typemap

import (
	"sort"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Info holds the descriptive strings for one BSON type.
type Info struct {
	// Name is the classic BSON type name, e.g. "NumberLong"
	Name string
	// Desc is a short human description, e.g. "int64"
	Desc string
}

// unknown is returned for any type tag not in the catalog.
var unknown = Info{Name: "UNKNOWN", Desc: "UNKNOWN"}

// catalog is the fixed lookup table from BSON type tag to descriptive
// strings. The names follow the classic BSON type vocabulary.
var catalog = map[bson.Type]Info{
	bson.TypeDouble:           {Name: "NumberDouble", Desc: "Double"},
	bson.TypeString:           {Name: "String", Desc: "UTF8"},
	bson.TypeEmbeddedDocument: {Name: "Object", Desc: "BSON"},
	bson.TypeArray:            {Name: "Array", Desc: "BSON Array"},
	bson.TypeBinary:           {Name: "BinData", Desc: "Binary"},
	bson.TypeUndefined:        {Name: "Undefined", Desc: "Undefined"},
	bson.TypeObjectID:         {Name: "jstOID", Desc: "ObjectId"},
	bson.TypeBoolean:          {Name: "Bool", Desc: "Boolean"},
	bson.TypeDateTime:         {Name: "Date", Desc: "Date"},
	bson.TypeNull:             {Name: "jstNULL", Desc: "NULL"},
	bson.TypeRegex:            {Name: "RegEx", Desc: "Regex"},
	bson.TypeDBPointer:        {Name: "DBRef", Desc: "deprecated"},
	bson.TypeJavaScript:       {Name: "Code", Desc: "deprecated"},
	bson.TypeSymbol:           {Name: "Symbol", Desc: "Symbol"},
	bson.TypeCodeWithScope:    {Name: "CodeWScope", Desc: "Javascript"},
	bson.TypeInt32:            {Name: "NumberInt", Desc: "int32"},
	bson.TypeTimestamp:        {Name: "Timestamp", Desc: "Timestamp"},
	bson.TypeInt64:            {Name: "NumberLong", Desc: "int64"},
	bson.TypeDecimal128:       {Name: "NumberDecimal", Desc: "decimal128"},
	bson.TypeMinKey:           {Name: "MinKey", Desc: "MinKey"},
	bson.TypeMaxKey:           {Name: "MaxKey", Desc: "MaxKey"},
}

// Lookup returns the descriptive strings for a BSON type tag, or the
// UNKNOWN info for type tags not in the catalog.
func Lookup(t bson.Type) Info {
	if info, ok := catalog[t]; ok {
		return info
	}
	return unknown
}

// Entry pairs a BSON type tag with its descriptive strings.
type Entry struct {
	Type bson.Type
	Info Info
}

// Catalog returns every known type ordered by numeric type code.
func Catalog() []Entry {
	entries := make([]Entry, 0, len(catalog))
	for t, info := range catalog {
		entries = append(entries, Entry{Type: t, Info: info})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type < entries[j].Type
	})
	return entries
}
