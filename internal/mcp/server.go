// ABOUTME: MCP server setup for fitplan.
// ABOUTME: Wires profile, plan, tracker, and export services into MCP tools.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/corefit/fitplan/internal/export"
	"github.com/corefit/fitplan/internal/plan"
	"github.com/corefit/fitplan/internal/profile"
	"github.com/corefit/fitplan/internal/storage"
	"github.com/corefit/fitplan/internal/tracker"
)

// Server wraps the MCP server with the fitplan services.
type Server struct {
	mcpServer   *mcp.Server
	profiles    *profile.Service
	gen         *plan.Generator
	trk         *tracker.Tracker
	exporter    *export.Serializer
	defaultUser string
}

// NewServer creates a new MCP server over a repository. defaultUser is
// assumed when a tool call omits user_id.
func NewServer(repo storage.Repository, goals tracker.Goals, defaultUser string) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitplan",
			Version: "1.0.0",
		},
		nil,
	)

	gen := plan.NewGenerator(repo)
	trk := tracker.NewTracker(repo, gen, goals)

	s := &Server{
		mcpServer:   mcpServer,
		profiles:    profile.NewService(repo),
		gen:         gen,
		trk:         trk,
		exporter:    export.NewSerializer(gen, trk),
		defaultUser: defaultUser,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// user resolves a tool-supplied user ID, falling back to the default.
func (s *Server) user(userID string) string {
	if userID == "" {
		return s.defaultUser
	}
	return userID
}
