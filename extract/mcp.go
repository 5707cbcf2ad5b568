package extract

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers extraction tools on an MCP server. The server
// lifecycle belongs to the caller.
//
// Registered tools:
//
//	lexpipe_extract — extract normalized text from a contract file
//	lexpipe_formats — list supported container formats
func (e *Engine) RegisterMCP(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "lexpipe_extract",
		Description: "Extract normalized text and metadata from a contract file (pdf or docx).",
	}, e.extractTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "lexpipe_formats",
		Description: "List supported contract container formats.",
	}, formatsTool)
}

type extractInput struct {
	Path   string `json:"path" jsonschema:"path of the contract file to extract"`
	Format string `json:"format,omitempty" jsonschema:"container format (pdf or docx); detected from the file extension when empty"`
}

func (e *Engine) extractTool(ctx context.Context, _ *mcp.CallToolRequest, in extractInput) (*mcp.CallToolResult, *Result, error) {
	format := Format(in.Format)
	if in.Format == "" {
		var err error
		if format, err = Detect(in.Path); err != nil {
			return nil, nil, err
		}
	}
	buf, err := os.ReadFile(in.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", in.Path, err)
	}
	res, err := e.Extract(ctx, buf, format)
	if err != nil {
		return nil, nil, err
	}
	return nil, res, nil
}

type formatsOutput struct {
	Formats []string `json:"formats"`
}

func formatsTool(_ context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, formatsOutput, error) {
	return nil, formatsOutput{Formats: []string{string(FormatPDF), string(FormatDocx)}}, nil
}
