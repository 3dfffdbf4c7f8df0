// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes mongotype capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/mongotype"
)

const serverInstructions = `mongotype MCP server — renders the structure and BSON types of MongoDB documents.

Tools:
- render: pass extended JSON documents (one per line) and get back their structure in the dotted, tree, json or jsonpacked style, with optional BSON type annotations.
- types: list the BSON type catalog with the annotation each type renders as.

The dotted and tree styles annotate every scalar with its BSON type; the json styles produce output that parses with any JSON reader.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "mongotype", Version: mongotype.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render the structure and BSON types of MongoDB documents. Pass extended JSON documents (one per line) in content. Styles: dotted (one line per scalar with its full path), tree (indented braces with array lengths), json, jsonpacked. Use types to choose annotation parts (all, none, or a comma list of name, desc, code).",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "types",
		Description: "List the BSON type catalog: numeric type code, classic name, description, and the annotation each type renders as in dotted and tree output.",
	}, handleTypes)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
