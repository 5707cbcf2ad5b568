package chunk

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers chunking tools on an MCP server.
//
// Registered tools:
//
//	lexpipe_chunk        — split normalized text into overlapping chunks
//	lexpipe_count_tokens — count BPE tokens in text
func (s *Splitter) RegisterMCP(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "lexpipe_chunk",
		Description: "Split normalized contract text into ordered, overlapping, token-bounded chunks.",
	}, s.chunkTool)

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "lexpipe_count_tokens",
		Description: "Count BPE tokens in a text for context-window admission checks.",
	}, s.countTool)
}

type chunkInput struct {
	Text string `json:"text" jsonschema:"normalized text to chunk"`
}

type chunkOutput struct {
	Chunks []Chunk `json:"chunks"`
}

func (s *Splitter) chunkTool(_ context.Context, _ *mcp.CallToolRequest, in chunkInput) (*mcp.CallToolResult, chunkOutput, error) {
	chunks, err := s.Split(in.Text)
	if err != nil {
		return nil, chunkOutput{}, err
	}
	return nil, chunkOutput{Chunks: chunks}, nil
}

type countInput struct {
	Text string `json:"text" jsonschema:"text to count tokens in"`
}

type countOutput struct {
	Tokens int `json:"tokens"`
}

func (s *Splitter) countTool(_ context.Context, _ *mcp.CallToolRequest, in countInput) (*mcp.CallToolResult, countOutput, error) {
	n, err := s.CountTokens(in.Text)
	if err != nil {
		return nil, countOutput{}, err
	}
	return nil, countOutput{Tokens: n}, nil
}
