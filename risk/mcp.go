package risk

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterMCP registers the scoring tool on an MCP server.
//
// Registered tools:
//
//	lexpipe_risk_score — aggregate clause records into a contract risk score
func (s *Scorer) RegisterMCP(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "lexpipe_risk_score",
		Description: "Aggregate per-clause risk classifications into a weighted contract-level risk score with breakdown.",
	}, s.scoreTool)
}

type scoreInput struct {
	Clauses []Clause `json:"clauses" jsonschema:"clause classification records from upstream extraction"`
}

func (s *Scorer) scoreTool(_ context.Context, _ *mcp.CallToolRequest, in scoreInput) (*mcp.CallToolResult, Result, error) {
	return nil, s.Score(in.Clauses), nil
}
