package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/mongotype/dumper"
)

// DumpFlags contains flags for the dump command
type DumpFlags struct {
	StyleFlags
	Host       string
	Port       int
	URI        string
	Query      string
	Projection string
	Limit      int64
}

// SetupDumpFlags creates and configures a FlagSet for the dump command.
// Returns the FlagSet and a DumpFlags struct with bound flag variables.
func SetupDumpFlags() (*flag.FlagSet, *DumpFlags) {
	fs := flag.NewFlagSet("dump", flag.ContinueOnError)
	flags := &DumpFlags{}

	AddStyleFlags(fs, &flags.StyleFlags)
	fs.StringVar(&flags.Host, "host", "", "MongoDB host (default from config)")
	fs.IntVar(&flags.Port, "port", 0, "MongoDB port (default from config)")
	fs.StringVar(&flags.URI, "uri", "", "full mongodb:// connection string (overrides --host/--port)")
	fs.StringVar(&flags.Query, "query", "", "extended JSON filter document")
	fs.StringVar(&flags.Projection, "projection", "", "extended JSON projection document")
	fs.Int64Var(&flags.Limit, "limit", 0, "maximum documents to dump (0 = no limit, default from config)")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mongotype dump [flags] <db.collection>\n\n")
		Writef(output, "Dump the structure and BSON types of every document in a collection.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  mongotype dump test.people\n")
		Writef(output, "  mongotype dump --style dotted test.people\n")
		Writef(output, "  mongotype dump --query '{\"age\": {\"$gt\": 21}}' --limit 10 test.people\n")
		Writef(output, "  mongotype dump --uri mongodb://db.example.com:27018 test.people\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Dump successful\n")
		Writef(output, "  1    Invalid arguments or rendering failure\n")
		Writef(output, "  2    Could not connect to or query MongoDB\n")
	}

	return fs, flags
}

// HandleDump executes the dump command
func HandleDump(args []string) error {
	fs, flags := SetupDumpFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("dump command requires exactly one db.collection namespace")
	}

	namespace := fs.Arg(0)
	db, coll, ok := strings.Cut(namespace, ".")
	if !ok || db == "" || coll == "" {
		return fmt.Errorf("invalid namespace %q: expected db.collection", namespace)
	}

	cfg, err := LoadConfigFlag(flags.Config)
	if err != nil {
		return err
	}
	style, mask, indent, err := ResolveStyle(&flags.StyleFlags, cfg)
	if err != nil {
		return err
	}

	if flags.Host != "" {
		cfg.Host = flags.Host
	}
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	if flags.Limit != 0 {
		cfg.Limit = flags.Limit
	}
	uri := flags.URI
	if uri == "" {
		uri = cfg.URI()
	}

	filter, err := ParseExtJSONFlag("query", flags.Query)
	if err != nil {
		return err
	}
	projection, err := ParseExtJSONFlag("projection", flags.Projection)
	if err != nil {
		return err
	}

	ctx := context.Background()
	src, err := dumper.OpenCollection(ctx, dumper.CollectionConfig{
		URI:        uri,
		Database:   db,
		Collection: coll,
		Filter:     filter,
		Projection: projection,
		Limit:      cfg.Limit,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = src.Close(ctx)
	}()

	d := dumper.New(
		dumper.WithStyle(style),
		dumper.WithIndent(indent),
		dumper.WithTypeMask(mask),
		dumper.WithNamespace(namespace),
	)
	return d.Dump(ctx, os.Stdout, src)
}
