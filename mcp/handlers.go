package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ludo-technologies/treedist/domain"
	"github.com/ludo-technologies/treedist/service"
)

// HandleTreeDistance handles the tree_distance tool
func HandleTreeDistance(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	req, errResult := compareRequestFromArgs(args)
	if errResult != nil {
		return errResult, nil
	}

	resp, err := service.NewCompareService().Compare(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"distance":   resp.Distance,
		"similarity": resp.Similarity,
		"tree1_size": resp.Tree1Size,
		"tree2_size": resp.Tree2Size,
	})
}

// HandleTreeMapping handles the tree_mapping tool
func HandleTreeMapping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}

	req, errResult := compareRequestFromArgs(args)
	if errResult != nil {
		return errResult, nil
	}
	req.IncludeMapping = true

	resp, err := service.NewCompareService().Compare(ctx, req)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("comparison failed: %v", err)), nil
	}

	return jsonResult(resp)
}

func compareRequestFromArgs(args map[string]interface{}) (*domain.CompareRequest, *mcp.CallToolResult) {
	tree1, ok := args["tree1"].(string)
	if !ok {
		return nil, mcp.NewToolResultError("tree1 parameter is required and must be a string")
	}
	tree2, ok := args["tree2"].(string)
	if !ok {
		return nil, mcp.NewToolResultError("tree2 parameter is required and must be a string")
	}

	req := domain.DefaultCompareRequest()
	req.Tree1 = tree1
	req.Tree2 = tree2
	if v, ok := args["rename_cost"].(float64); ok {
		req.Costs.Rename = v
	}
	if v, ok := args["insert_cost"].(float64); ok {
		req.Costs.Insert = v
	}
	if v, ok := args["delete_cost"].(float64); ok {
		req.Costs.Delete = v
	}
	if err := req.Validate(); err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return req, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
