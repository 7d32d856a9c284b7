// Package mcpserver exposes diagram generation and revision as MCP tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"plantuml_assistant/generator"
)

const (
	serverName         = "plantuml-assistant"
	defaultDiagramType = "class"
)

type tools struct {
	agent        *generator.Agent
	diagramTypes []string
}

// New builds an MCP server with the generate_uml, improve_uml and
// list_diagram_types tools.
func New(agent *generator.Agent, diagramTypes []string, version string) (*server.MCPServer, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	t := &tools{agent: agent, diagramTypes: diagramTypes}

	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.AddTool(mcp.NewTool(
		"generate_uml",
		mcp.WithDescription("Generate a PlantUML diagram (@startuml...@enduml) from a natural-language system description."),
		mcp.WithString("description", mcp.Required(), mcp.Description("free-text description of the system")),
		mcp.WithString("diagram_type", mcp.Description("diagram type, e.g. class or sequence (default class)")),
	), t.generate)

	s.AddTool(mcp.NewTool(
		"improve_uml",
		mcp.WithDescription("Answer a question about, or apply a change to, an existing PlantUML diagram. Returns JSON {uml, rawText}; uml is null when the diagram was not changed."),
		mcp.WithString("current_uml", mcp.Required(), mcp.Description("current diagram source")),
		mcp.WithString("user_message", mcp.Required(), mcp.Description("question or change request")),
		mcp.WithString("diagram_type", mcp.Description("diagram type (default class)")),
		mcp.WithString("original_story", mcp.Description("the description the diagram was generated from")),
	), t.improve)

	s.AddTool(mcp.NewTool(
		"list_diagram_types",
		mcp.WithDescription("List the diagram types that have reference templates."),
	), t.listTypes)

	return s, nil
}

// Serve runs the server over stdio until stdin closes.
func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

func (t *tools) generate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description := mcp.ParseString(req, "description", "")
	if description == "" {
		return mcp.NewToolResultError("description is required"), nil
	}

	uml, err := t.agent.Generate(ctx, generator.GenerationRequest{
		Description: description,
		DiagramType: mcp.ParseString(req, "diagram_type", defaultDiagramType),
	})
	if err != nil {
		return mcp.NewToolResultErrorf("generation failed: %v", err), nil
	}
	return mcp.NewToolResultText(uml), nil
}

func (t *tools) improve(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	currentUML := mcp.ParseString(req, "current_uml", "")
	message := mcp.ParseString(req, "user_message", "")
	if currentUML == "" || message == "" {
		return mcp.NewToolResultError("current_uml and user_message are required"), nil
	}

	rev := t.agent.Revise(ctx, generator.RevisionRequest{
		CurrentUML:    currentUML,
		UserMessage:   message,
		DiagramType:   mcp.ParseString(req, "diagram_type", defaultDiagramType),
		OriginalStory: mcp.ParseString(req, "original_story", ""),
	})
	if rev == nil {
		return mcp.NewToolResultError(generator.ErrRevisionFailed.Error()), nil
	}

	b, err := json.MarshalIndent(rev, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (t *tools) listTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	types := t.diagramTypes
	if types == nil {
		types = []string{}
	}
	b, err := json.Marshal(types)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
