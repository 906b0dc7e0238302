package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerScreensResource(srv, svc)
	registerThemesResource(srv, svc)
	registerViewsResource(srv, svc)
}

func registerScreensResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"dotcal://screens",
		"Screens",
		mcp.WithResourceDescription("Phone screen presets with their resolutions."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		screens := svc.Screens("")
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"screens": screens,
			"count":   len(screens),
		})
	})
}

func registerThemesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"dotcal://themes",
		"Themes",
		mcp.WithResourceDescription("Built-in color palettes."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"themes": svc.Themes(),
		})
	})
}

func registerViewsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"dotcal://views",
		"Views",
		mcp.WithResourceDescription("Calendar views and what each one shows."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"views": svc.Views(),
		})
	})
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
