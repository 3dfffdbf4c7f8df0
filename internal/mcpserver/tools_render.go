package mcpserver

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/erraggy/mongotype/dumper"
	"github.com/erraggy/mongotype/render"
	"github.com/erraggy/mongotype/typemap"
)

type renderInput struct {
	Content   string `json:"content"              jsonschema:"Extended JSON documents to render\\, one per line"`
	Style     string `json:"style,omitempty"      jsonschema:"Output style: dotted\\, tree\\, json\\, jsonpacked (default tree)"`
	Types     string `json:"types,omitempty"      jsonschema:"Type annotation parts: all\\, none\\, or a comma list of name\\, desc\\, code (default all)"`
	Indent    string `json:"indent,omitempty"     jsonschema:"Indentation unit for tree and json styles (default two spaces)"`
	RootToken string `json:"root_token,omitempty" jsonschema:"Root path prefix for the dotted style (default doc)"`
}

type renderOutput struct {
	Rendered  string `json:"rendered"`
	Documents int    `json:"documents"`
	Style     string `json:"style"`
}

func handleRender(ctx context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, any, error) {
	styleName := input.Style
	if styleName == "" {
		styleName = "tree"
	}
	style, err := render.ParseStyle(styleName)
	if err != nil {
		return errResult(err), nil, nil
	}
	mask, err := typemap.ParseMask(input.Types)
	if err != nil {
		return errResult(err), nil, nil
	}
	indent := input.Indent
	if indent == "" {
		indent = "  "
	}
	rootToken := input.RootToken
	if rootToken == "" {
		rootToken = "doc"
	}

	// Decode up front so the document count is known and decode errors
	// surface before any rendering happens.
	src := dumper.NewExtJSONSource("content", strings.NewReader(input.Content))
	var docs []bson.Raw
	for {
		doc, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return errResult(err), nil, nil
		}
		docs = append(docs, doc)
	}

	var buf bytes.Buffer
	d := dumper.New(
		dumper.WithStyle(style),
		dumper.WithIndent(indent),
		dumper.WithTypeMask(mask),
		dumper.WithNamespace(rootToken),
	)
	if err := d.Dump(ctx, &buf, dumper.NewSliceSource(docs...)); err != nil {
		return errResult(err), nil, nil
	}

	return nil, renderOutput{
		Rendered:  buf.String(),
		Documents: len(docs),
		Style:     style.String(),
	}, nil
}
