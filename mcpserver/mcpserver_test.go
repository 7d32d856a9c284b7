package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantuml_assistant/generator"
)

type fakeLLM struct {
	reply string
	err   error
}

func (f fakeLLM) Complete(_ context.Context, _ generator.Prompt) (string, error) {
	return f.reply, f.err
}

func newTools(t *testing.T, llm generator.LLMClient) *tools {
	t.Helper()
	agent, err := generator.NewAgent(llm, "{}", nil)
	require.NoError(t, err)
	return &tools{agent: agent, diagramTypes: []string{"class", "sequence"}}
}

func callReq(name string, args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Name = name
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", res.Content[0])
	return ""
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil, "test")
	assert.Error(t, err)

	agent, err := generator.NewAgent(generator.MockLLM{}, "{}", nil)
	require.NoError(t, err)
	s, err := New(agent, []string{"class"}, "test")
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestGenerateTool(t *testing.T) {
	tl := newTools(t, fakeLLM{reply: "class Foo"})

	res, err := tl.generate(context.Background(), callReq("generate_uml", map[string]any{"description": "foo"}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "@startuml\nclass Foo\n@enduml", resultText(t, res))
}

func TestGenerateTool_Errors(t *testing.T) {
	tl := newTools(t, fakeLLM{reply: "@startuml\nfoo --> bar\n@enduml"})

	res, err := tl.generate(context.Background(), callReq("generate_uml", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = tl.generate(context.Background(), callReq("generate_uml", map[string]any{"description": "foo"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "no class definitions")
}

func TestImproveTool(t *testing.T) {
	tl := newTools(t, fakeLLM{reply: "Here you go.\n```plantuml\nclass A\n```\nDone."})

	res, err := tl.improve(context.Background(), callReq("improve_uml", map[string]any{
		"current_uml":  "class B",
		"user_message": "rename B to A",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var rev generator.Revision
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &rev))
	require.NotNil(t, rev.UML)
	assert.Equal(t, "class A", *rev.UML)
	assert.Equal(t, "Here you go.\n\nDone.", rev.RawText)
}

func TestImproveTool_Failure(t *testing.T) {
	tl := newTools(t, fakeLLM{err: errors.New("boom")})

	res, err := tl.improve(context.Background(), callReq("improve_uml", map[string]any{
		"current_uml":  "class B",
		"user_message": "add C",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "revision failed")
}

func TestListTypesTool(t *testing.T) {
	tl := newTools(t, fakeLLM{})

	res, err := tl.listTypes(context.Background(), callReq("list_diagram_types", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `["class","sequence"]`, resultText(t, res))
}
