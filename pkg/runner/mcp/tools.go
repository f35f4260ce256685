package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListTasksTool(srv, svc)
	registerGetTaskTool(srv, svc)
	registerCreateTaskTool(srv, svc)
	registerUpdateTaskTool(srv, svc)
	registerToggleTaskTool(srv, svc)
	registerDeleteTaskTool(srv, svc)
	registerRestoreTaskTool(srv, svc)
	registerMoveTaskTool(srv, svc)
	registerListListsTool(srv, svc)
	registerCreateListTool(srv, svc)
	registerDeleteListTool(srv, svc)
	registerReorderListsTool(srv, svc)
	registerGroupByDateTool(srv, svc)
	registerSummaryTool(srv, svc)
}

var stringItems = mcp.Items(map[string]any{"type": "string"})

func filterParams() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("keyword",
			mcp.Description("Case-insensitive substring of the task name."),
		),
		mcp.WithArray("dates",
			mcp.Description("Due date buckets; a task passes when it matches any of them."),
			stringItems,
		),
		mcp.WithArray("lists",
			mcp.Description("List ids or names; a task passes when it is in any of them."),
			stringItems,
		),
		mcp.WithBoolean("include_completed",
			mcp.Description("Also return completed tasks."),
		),
		mcp.WithBoolean("deleted",
			mcp.Description("Search the trash instead of the active tasks."),
		),
	}
}

func registerListTasksTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("List tasks, optionally filtered by keyword, due date bucket (today, tomorrow, week, no-date) and list."),
	}, filterParams()...)
	tool := mcp.NewTool("list_tasks", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListTasksOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		tasks, err := svc.ListTasks(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tasks": tasks,
			"count": len(tasks),
		})
	})
}

func registerGetTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_task",
		mcp.WithDescription("Fetch a single task, active or deleted, by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.Task(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCreateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_task",
		mcp.WithDescription("Create a new task."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Task name."),
		),
		mcp.WithString("list",
			mcp.Description("List id or name; defaults to Uncategorized."),
		),
		mcp.WithString("due",
			mcp.Description("Due date: an ISO date, today, tomorrow, a weekday, or a window such as 3d."),
		),
		mcp.WithString("due_time",
			mcp.Description("Due time as HH:MM."),
		),
		mcp.WithString("icon",
			mcp.Description("Font Awesome icon name such as fa-star."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CreateTaskOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.CreateTask(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_task",
		mcp.WithDescription("Change fields of a task. Omitted fields are left alone; an empty due clears the date."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
		mcp.WithString("name", mcp.Description("New name.")),
		mcp.WithString("list", mcp.Description("List id or name.")),
		mcp.WithString("due", mcp.Description("New due date, or none.")),
		mcp.WithString("due_time", mcp.Description("New due time as HH:MM, or empty to clear.")),
		mcp.WithString("icon", mcp.Description("New icon.")),
		mcp.WithBoolean("completed", mcp.Description("Completion flag.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		var args UpdateTaskOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.UpdateTask(ctx, id, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerIDTool(srv *server.MCPServer, name, description string, fn func(ctx context.Context, id string) (*TaskDTO, error)) {
	tool := mcp.NewTool(
		name,
		mcp.WithDescription(description),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := fn(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleTaskTool(srv *server.MCPServer, svc *Service) {
	registerIDTool(srv, "toggle_task", "Flip the completion flag of a task.", svc.ToggleTask)
}

func registerDeleteTaskTool(srv *server.MCPServer, svc *Service) {
	registerIDTool(srv, "delete_task", "Move a task to the trash.", svc.DeleteTask)
}

func registerRestoreTaskTool(srv *server.MCPServer, svc *Service) {
	registerIDTool(srv, "restore_task", "Bring a task back from the trash.", svc.RestoreTask)
}

func registerMoveTaskTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_task",
		mcp.WithDescription("Drop a task on a list, a date heading, or the trash."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task identifier."),
		),
		mcp.WithString("target",
			mcp.Required(),
			mcp.Description("List id or name, a date heading such as Tomorrow or 2024-05-02, No Due Date, or trash."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		target, err := request.RequireString("target")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.MoveTask(ctx, id, target)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListListsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_lists",
		mcp.WithDescription("List all task lists in display order with task counts."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		lists, err := svc.ListLists(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"lists": lists,
			"count": len(lists),
		})
	})
}

func registerCreateListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_list",
		mcp.WithDescription("Create a new list at the end of the order."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("List name."),
		),
		mcp.WithString("icon",
			mcp.Description("Font Awesome icon name such as fa-briefcase."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.CreateList(ctx, name, request.GetString("icon", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteListTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_list",
		mcp.WithDescription("Delete a list. Its tasks move to Uncategorized, which cannot be deleted."),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("List id or name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ref, err := request.RequireString("list")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.DeleteList(ctx, ref); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": ref})
	})
}

func registerReorderListsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reorder_lists",
		mcp.WithDescription("Set the list order. Every list must appear exactly once."),
		mcp.WithArray("lists",
			mcp.Required(),
			mcp.Description("List ids or names in the new order."),
			stringItems,
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Lists []string `json:"lists"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		lists, err := svc.ReorderLists(ctx, args.Lists)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"lists": lists,
			"count": len(lists),
		})
	})
}

func registerGroupByDateTool(srv *server.MCPServer, svc *Service) {
	opts := append([]mcp.ToolOption{
		mcp.WithDescription("Group tasks by due date, earliest first, with the no-date group last."),
	}, filterParams()...)
	tool := mcp.NewTool("group_by_date", opts...)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListTasksOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		groups, err := svc.GroupByDate(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"groups": groups,
			"count":  len(groups),
		})
	})
}

func registerSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"summary",
		mcp.WithDescription("Count tasks: total, incomplete, due today, overdue, deleted and per list."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sum)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
