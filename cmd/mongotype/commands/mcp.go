package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/mongotype/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: mongotype mcp\n\n")
		Writef(output, "Start an MCP (Model Context Protocol) server over stdio exposing\n")
		Writef(output, "mongotype's render and type catalog capabilities as tools.\n\n")
		Writef(output, "The server runs until the client disconnects.\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
