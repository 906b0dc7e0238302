package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerStatsTool(srv, svc)
	registerSceneTool(srv, svc)
	registerURLTool(srv, svc)
	registerScreensTool(srv, svc)
}

// calendarOptions are the parameters shared by the calendar tools.
func calendarOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("view",
			mcp.Description("Calendar view."),
			mcp.Enum("days", "months", "quarters", "life", "goal"),
		),
		mcp.WithString("screen",
			mcp.Description("Screen preset name or slug, e.g. iphone-16-pro. Sets width and height."),
		),
		mcp.WithNumber("width", mcp.Description("Image width in pixels.")),
		mcp.WithNumber("height", mcp.Description("Image height in pixels.")),
		mcp.WithString("theme",
			mcp.Description("Base palette."),
			mcp.Enum("dark", "light"),
		),
		mcp.WithString("weekStart",
			mcp.Description("First day of the week for the months and quarters views."),
			mcp.Enum("monday", "sunday"),
		),
		mcp.WithString("birthday", mcp.Description("Birth date for the life view, YYYY-MM-DD.")),
		mcp.WithNumber("lifespan", mcp.Description("Expected lifespan in years for the life view.")),
		mcp.WithString("goalStart", mcp.Description("Goal start date, YYYY-MM-DD.")),
		mcp.WithString("goalEnd", mcp.Description("Goal end date, YYYY-MM-DD, or an offset from the start such as +12w.")),
		mcp.WithString("goalTitle", mcp.Description("Title shown above the goal grid.")),
		mcp.WithNumber("scale", mcp.Description("Dot scale for the months view, 0.8 to 2.")),
		mcp.WithString("accent", mcp.Description("Accent color override, #RRGGBB.")),
		mcp.WithString("bg", mcp.Description("Background color override, #RRGGBB.")),
		mcp.WithString("dot", mcp.Description("Future dot color override, #RRGGBB.")),
		mcp.WithString("tz", mcp.Description("IANA time zone that decides what today is.")),
	}
}

func calendarTool(name, description string) mcp.Tool {
	opts := append([]mcp.ToolOption{mcp.WithDescription(description)}, calendarOptions()...)
	return mcp.NewTool(name, opts...)
}

func registerStatsTool(srv *server.MCPServer, svc *Service) {
	tool := calendarTool("calendar_stats", "Progress of a calendar today: elapsed, left, total and percent.")

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CalendarArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		summary, err := svc.Stats(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(summary)
	})
}

func registerSceneTool(srv *server.MCPServer, svc *Service) {
	tool := calendarTool("calendar_scene", "Dot positions, colors and labels of a wallpaper. Needs a screen or width and height.")

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CalendarArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		scene, err := svc.Scene(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(scene)
	})
}

func registerURLTool(srv *server.MCPServer, svc *Service) {
	tool := calendarTool("wallpaper_url", "Link to the PNG wallpaper for a phone automation to fetch daily.")

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CalendarArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		link, err := svc.URL(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(link), nil
	})
}

func registerScreensTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_screens",
		mcp.WithDescription("List phone screen presets and their resolutions."),
		mcp.WithString("category",
			mcp.Description("Only presets from this maker, e.g. Apple."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Category string `json:"category"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		screens := svc.Screens(args.Category)
		return toJSONResult(map[string]any{
			"screens": screens,
			"count":   len(screens),
		})
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
