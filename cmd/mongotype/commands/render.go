package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/mongotype/dumper"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	StyleFlags
	Namespace string
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	AddStyleFlags(fs, &flags.StyleFlags)
	fs.StringVar(&flags.Namespace, "namespace", "doc", "root token prefix for the dotted style")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mongotype render [flags] <file|->\n\n")
		Writef(output, "Render newline-delimited extended JSON documents without a MongoDB connection.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  mongotype render docs.json\n")
		Writef(output, "  mongotype render --style json docs.json\n")
		Writef(output, "  mongoexport -d test -c people | mongotype render --style dotted -\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one file path or '-' for stdin")
	}

	cfg, err := LoadConfigFlag(flags.Config)
	if err != nil {
		return err
	}
	style, mask, indent, err := ResolveStyle(&flags.StyleFlags, cfg)
	if err != nil {
		return err
	}

	inputPath := fs.Arg(0)
	var reader io.Reader
	name := inputPath
	if inputPath == StdinFilePath {
		reader = os.Stdin
		name = "<stdin>"
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		reader = f
	}

	ctx := context.Background()
	src := dumper.NewExtJSONSource(name, reader)
	d := dumper.New(
		dumper.WithStyle(style),
		dumper.WithIndent(indent),
		dumper.WithTypeMask(mask),
		dumper.WithNamespace(flags.Namespace),
	)
	return d.Dump(ctx, os.Stdout, src)
}
