package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	stdlog "log"
	"os"

	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/tasklists/pkg/app"
)

// Runner coordinates MCP server startup over stdio.
type Runner struct {
	Service *app.Service
	Name    string
	Version string

	Stdin  io.Reader
	Stdout io.Writer
}

// Run starts the Model Context Protocol server on the process stdio.
func Run(ctx context.Context, svc *app.Service) error {
	r := Runner{
		Service: svc,
		Name:    "tasklists",
		Version: "dev",
	}
	return r.Do(ctx)
}

// NewServer builds the MCP server with every tool and resource registered.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.Service == nil {
		return nil, errors.New("mcp runner requires a service")
	}
	name := r.Name
	if name == "" {
		name = "tasklists"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Manage tasks and task lists: create, complete, move between lists or due dates, trash and restore."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Service)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do serves until ctx is done or stdin closes.
func (r Runner) Do(ctx context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}

	in, out := r.Stdin, r.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	stdio := server.NewStdioServer(srv)
	stdio.SetErrorLogger(stdlog.New(log.StandardLogger().WriterLevel(log.ErrorLevel), "mcp: ", 0))
	log.WithField("location", r.Service.Location()).Debug("mcp: serving on stdio")
	err = stdio.Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
