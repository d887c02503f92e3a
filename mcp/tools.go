// Package mcp exposes the tree edit distance engine as MCP tools over
// stdio, for use by MCP-capable clients.
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all treedist MCP tools with the server
func RegisterTools(s *server.MCPServer) {
	// Tool 1: tree_distance - scalar edit distance
	s.AddTool(mcp.NewTool("tree_distance",
		mcp.WithDescription("Compute the exact edit distance between two ordered labeled trees in bracket notation, e.g. {a{b}{c}}"),
		mcp.WithString("tree1",
			mcp.Required(),
			mcp.Description("First tree in bracket notation")),
		mcp.WithString("tree2",
			mcp.Required(),
			mcp.Description("Second tree in bracket notation")),
		mcp.WithNumber("rename_cost",
			mcp.Description("Cost of renaming a node (default: 1)")),
		mcp.WithNumber("insert_cost",
			mcp.Description("Cost of inserting a node (default: 1)")),
		mcp.WithNumber("delete_cost",
			mcp.Description("Cost of deleting a node (default: 1)")),
	), HandleTreeDistance)

	// Tool 2: tree_mapping - distance plus minimum-cost edit mapping
	s.AddTool(mcp.NewTool("tree_mapping",
		mcp.WithDescription("Compute the edit distance and the minimum-cost edit mapping (match/rename/delete/insert per node) between two trees in bracket notation"),
		mcp.WithString("tree1",
			mcp.Required(),
			mcp.Description("First tree in bracket notation")),
		mcp.WithString("tree2",
			mcp.Required(),
			mcp.Description("Second tree in bracket notation")),
	), HandleTreeMapping)
}
