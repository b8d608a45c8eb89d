package tools

import (
	"context"
	"encoding/json"

	"github.com/elC0mpa/cloud-optimizer/cmd/mcp/response"
	"github.com/elC0mpa/cloud-optimizer/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAggregationTools registers the aggregation engine tools with the MCP server
func RegisterAggregationTools(s *server.MCPServer, engine service.AggregationService) {
	s.AddTool(
		mcp.NewTool("get_inventory",
			mcp.WithDescription("Get the full resource inventory for a registered client. Lists VMs, databases and storage buckets normalized across AWS, Azure and GCP, with per-category errors when a provider call fails."),
			mcp.WithString("client_id",
				mcp.Required(),
				mcp.Description("ID of the registered client"),
			),
		),
		makeInventoryHandler(engine),
	)

	s.AddTool(
		mcp.NewTool("get_cost_breakdown",
			mcp.WithDescription("Get an estimated cost breakdown (compute, storage, network, database) for a registered client over an analysis period, plus a projected monthly total."),
			mcp.WithString("client_id",
				mcp.Required(),
				mcp.Description("ID of the registered client"),
			),
			mcp.WithNumber("period_days",
				mcp.Description("Analysis window in days (default 30)"),
			),
		),
		makeCostBreakdownHandler(engine),
	)

	s.AddTool(
		mcp.NewTool("get_recommendations",
			mcp.WithDescription("Get cost, security and reliability recommendations for a registered client, with estimated monthly savings."),
			mcp.WithString("client_id",
				mcp.Required(),
				mcp.Description("ID of the registered client"),
			),
		),
		makeRecommendationsHandler(engine),
	)

	s.AddTool(
		mcp.NewTool("test_connection",
			mcp.WithDescription("Test a registered client's cloud credentials with one minimal authenticated call. Never returns secrets."),
			mcp.WithString("client_id",
				mcp.Required(),
				mcp.Description("ID of the registered client"),
			),
		),
		makeTestConnectionHandler(engine),
	)
}

func makeInventoryHandler(engine service.AggregationService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		clientID, err := request.RequireString("client_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		inv, err := engine.GetInventory(ctx, clientID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, _ := json.MarshalIndent(response.ConvertInventory(inv), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeCostBreakdownHandler(engine service.AggregationService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		clientID, err := request.RequireString("client_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		periodDays := int(request.GetFloat("period_days", 0))

		breakdown, err := engine.GetCostBreakdown(ctx, clientID, periodDays)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, _ := json.MarshalIndent(response.ConvertCostBreakdown(breakdown), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRecommendationsHandler(engine service.AggregationService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		clientID, err := request.RequireString("client_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		set, err := engine.GetRecommendations(ctx, clientID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, _ := json.MarshalIndent(response.ConvertRecommendationSet(set), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeTestConnectionHandler(engine service.AggregationService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		clientID, err := request.RequireString("client_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := engine.TestConnection(ctx, clientID)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, _ := json.MarshalIndent(response.ConvertConnectionTestResult(result), "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
