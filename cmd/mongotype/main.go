package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/mongotype"
	"github.com/erraggy/mongotype/cmd/mongotype/commands"
	"github.com/erraggy/mongotype/mterrors"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("mongotype v%s\n", mongotype.Version())
	case "help", "-h", "--help":
		printUsage()
	case "dump":
		exitOnError(commands.HandleDump(os.Args[2:]))
	case "render":
		exitOnError(commands.HandleRender(os.Args[2:]))
	case "types":
		exitOnError(commands.HandleTypes(os.Args[2:]))
	case "mcp":
		exitOnError(commands.HandleMCP(os.Args[2:]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// knownCommands lists the commands considered for typo suggestions.
var knownCommands = []string{"dump", "render", "types", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or an empty string when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// exitOnError reports the error and exits. Connection failures exit with
// status 2 so scripts can tell an unreachable deployment apart from bad
// arguments or rendering failures.
func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, mterrors.ErrConnection) {
		os.Exit(2)
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Println(`mongotype - MongoDB document structure and BSON type inspector

Usage:
  mongotype <command> [options]

Commands:
  dump        Dump the structure and BSON types of a live collection
  render      Render extended JSON documents from a file or stdin
  types       Show the BSON type catalog
  mcp         Start an MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  mongotype dump test.people
  mongotype dump --style dotted --limit 10 test.people
  mongotype render --style json docs.json
  mongotype types

Run 'mongotype <command> --help' for more information on a command.`)
}
