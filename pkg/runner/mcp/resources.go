package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerListsResource(srv, svc)
	registerSummaryResource(srv, svc)
	registerListTemplate(srv, svc)
	registerTaskTemplate(srv, svc)
}

func registerListsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tasklists://lists",
		"Lists",
		mcp.WithResourceDescription("All task lists in display order with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		lists, err := svc.ListLists(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"lists": lists,
			"count": len(lists),
		})
	})
}

func registerSummaryResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"tasklists://summary",
		"Summary",
		mcp.WithResourceDescription("Task counts for the whole store."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, sum)
	})
}

func registerListTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tasklists://lists/{list}",
		"List Tasks",
		mcp.WithTemplateDescription("Active tasks that belong to a list, by id or name."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ref := templateArg(request, "list")
		if ref == "" {
			return nil, fmt.Errorf("list is required")
		}
		list, tasks, err := svc.List(ctx, ref)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"list":  list,
			"tasks": tasks,
			"count": len(tasks),
		})
	})
}

func registerTaskTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"tasklists://tasks/{id}",
		"Task Details",
		mcp.WithTemplateDescription("A single task, active or deleted."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request, "id")
		if id == "" {
			return nil, fmt.Errorf("task id is required")
		}
		dto, err := svc.Task(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"task": dto})
	})
}

// templateArg reads a URI template variable. The server may deliver it as a
// string or as a one-element slice.
func templateArg(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
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
