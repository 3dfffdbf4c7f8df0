package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/mongotype/typemap"
)

type typesInput struct {
	Mask string `json:"mask,omitempty" jsonschema:"Annotation parts to preview: all\\, none\\, or a comma list of name\\, desc\\, code (default all)"`
}

type typeEntry struct {
	Code       int    `json:"code"`
	Name       string `json:"name"`
	Desc       string `json:"desc"`
	Annotation string `json:"annotation,omitempty"`
}

type typesOutput struct {
	Types []typeEntry `json:"types"`
}

func handleTypes(_ context.Context, _ *mcp.CallToolRequest, input typesInput) (*mcp.CallToolResult, any, error) {
	mask, err := typemap.ParseMask(input.Mask)
	if err != nil {
		return errResult(err), nil, nil
	}

	catalog := typemap.Catalog()
	output := typesOutput{Types: make([]typeEntry, 0, len(catalog))}
	for _, entry := range catalog {
		output.Types = append(output.Types, typeEntry{
			Code:       int(entry.Type),
			Name:       entry.Info.Name,
			Desc:       entry.Info.Desc,
			Annotation: typemap.Format(entry.Type, mask),
		})
	}
	return nil, output, nil
}
