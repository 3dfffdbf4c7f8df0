package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/erraggy/mongotype/typemap"
)

// TypesFlags contains flags for the types command
type TypesFlags struct {
	Mask string
}

// SetupTypesFlags creates and configures a FlagSet for the types command.
func SetupTypesFlags() (*flag.FlagSet, *TypesFlags) {
	fs := flag.NewFlagSet("types", flag.ContinueOnError)
	flags := &TypesFlags{}

	fs.StringVar(&flags.Mask, "mask", "all", "annotation components to preview: all, none, or a comma list of name, desc, code")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mongotype types [flags]\n\n")
		Writef(output, "Print the BSON type catalog with the annotation each type renders as.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  mongotype types\n")
		Writef(output, "  mongotype types --mask name,code\n")
	}

	return fs, flags
}

// HandleTypes executes the types command
func HandleTypes(args []string) error {
	fs, flags := SetupTypesFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("types command takes no arguments")
	}

	mask, err := typemap.ParseMask(flags.Mask)
	if err != nil {
		return err
	}

	headers := []string{"CODE", "NAME", "DESCRIPTION", "ANNOTATION"}
	var rows [][]string
	for _, entry := range typemap.Catalog() {
		rows = append(rows, []string{
			fmt.Sprintf("%d", int(entry.Type)),
			entry.Info.Name,
			entry.Info.Desc,
			typemap.Format(entry.Type, mask),
		})
	}
	RenderSummaryTable(os.Stdout, headers, rows)
	return nil
}
