// Package commands provides CLI command handlers for mongotype.
package commands

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/config"
	"github.com/erraggy/mongotype/mterrors"
	"github.com/erraggy/mongotype/render"
	"github.com/erraggy/mongotype/typemap"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// StyleFlags holds the output-shaping flags shared by the dump and render
// commands.
type StyleFlags struct {
	Style  string
	Types  string
	Indent string
	Config string
}

// AddStyleFlags registers the shared style flags on a FlagSet. Empty
// defaults mean "take the value from the config file".
func AddStyleFlags(fs *flag.FlagSet, flags *StyleFlags) {
	fs.StringVar(&flags.Style, "style", "", "output style: dotted, tree, json, jsonpacked (default from config)")
	fs.StringVar(&flags.Types, "types", "", "type annotation parts: all, none, or a comma list of name, desc, code (default from config)")
	fs.StringVar(&flags.Indent, "indent", "", "indentation unit for tree and json styles (default from config)")
	fs.StringVar(&flags.Config, "config", "", "config file path (default ~/"+config.DefaultFileName+")")
}

// LoadConfigFlag loads the config file named by the --config flag, or the
// default config file when the flag is empty.
func LoadConfigFlag(path string) (config.Config, error) {
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// ResolveStyle merges the style flags with the loaded config and parses
// them into renderer settings. Flag values win over config file values.
func ResolveStyle(flags *StyleFlags, cfg config.Config) (render.Style, typemap.Mask, string, error) {
	styleName := flags.Style
	if styleName == "" {
		styleName = cfg.Style
	}
	typesName := flags.Types
	if typesName == "" {
		typesName = cfg.Types
	}
	indent := flags.Indent
	if indent == "" {
		indent = cfg.Indent
	}

	style, err := render.ParseStyle(styleName)
	if err != nil {
		return style, typemap.MaskAll, indent, err
	}
	mask, err := typemap.ParseMask(typesName)
	if err != nil {
		return style, mask, indent, err
	}
	return style, mask, indent, nil
}

// ParseExtJSONFlag parses an optional extended JSON document flag such as
// --query or --projection. An empty value yields a nil document.
func ParseExtJSONFlag(name, value string) (bson.D, error) {
	if value == "" {
		return nil, nil
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON([]byte(value), false, &doc); err != nil {
		return nil, &mterrors.ConfigError{
			Option:  name,
			Value:   value,
			Message: "invalid extended JSON",
			Cause:   err,
		}
	}
	return doc, nil
}

// RenderSummaryTable renders a fixed-width table of results with headers.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for i, h := range headers {
		if i > 0 {
			Writef(w, "  ")
		}
		Writef(w, "%-*s", widths[i], h)
	}
	Writef(w, "\n")

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				Writef(w, "  ")
			}
			Writef(w, "%-*s", widths[i], cell)
		}
		Writef(w, "\n")
	}
}
