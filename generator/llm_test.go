package generator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubServer captures the decoded JSON body of the last request and answers
// requests whose path ends with suffix with reply.
func stubServer(t *testing.T, suffix, reply string, captured *map[string]any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, suffix) {
			http.NotFound(w, r)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		var decoded map[string]any
		if err := json.Unmarshal(body, &decoded); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		*captured = decoded
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv
}

const openAIReply = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "gpt-4o",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "@startuml\nclass Foo\n@enduml"}, "finish_reason": "stop"},
		{"index": 1, "message": {"role": "assistant", "content": "second choice"}, "finish_reason": "stop"}
	]
}`

func TestOpenAILLM_Complete(t *testing.T) {
	var req map[string]any
	srv := stubServer(t, "/chat/completions", openAIReply, &req)

	llm, err := NewOpenAILLMFromConfig(&LLMSettings{APIKey: "sk-test", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	out, err := llm.Complete(context.Background(), Prompt{User: "draw a Foo"})
	require.NoError(t, err)
	assert.Equal(t, "@startuml\nclass Foo\n@enduml", out)

	assert.Equal(t, DefaultModel, req["model"])
	assert.NotContains(t, req, "temperature")
	assert.NotContains(t, req, "top_p")
	messages, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Equal(t, "draw a Foo", msg["content"])
}

func TestOpenAILLM_EmptyChoices(t *testing.T) {
	var req map[string]any
	srv := stubServer(t, "/chat/completions", `{"id":"chatcmpl-2","object":"chat.completion","model":"gpt-4o","choices":[]}`, &req)

	llm, err := NewOpenAILLMFromConfig(&LLMSettings{APIKey: "sk-test", BaseURL: srv.URL + "/v1/"})
	require.NoError(t, err)

	_, err = llm.Complete(context.Background(), Prompt{User: "draw a Foo"})
	assert.ErrorIs(t, err, ErrEmptyChoices)
}

const anthropicReply = `{
	"id": "msg_1",
	"type": "message",
	"role": "assistant",
	"model": "claude-sonnet-4-20250514",
	"content": [
		{"type": "text", "text": "Added Bar.\n"},
		{"type": "text", "text": "` + "```plantuml\\nclass Bar\\n```" + `"}
	],
	"stop_reason": "end_turn",
	"usage": {"input_tokens": 10, "output_tokens": 5}
}`

func TestAnthropicLLM_Complete(t *testing.T) {
	var req map[string]any
	srv := stubServer(t, "/v1/messages", anthropicReply, &req)

	llm, err := NewAnthropicLLMFromConfig(&LLMSettings{APIKey: "ak-test", BaseURL: srv.URL})
	require.NoError(t, err)

	out, err := llm.Complete(context.Background(), Prompt{User: "add Bar"})
	require.NoError(t, err)
	assert.Equal(t, "Added Bar.\n```plantuml\nclass Bar\n```", out)

	assert.Equal(t, defaultAnthropicModel, req["model"])
	assert.EqualValues(t, defaultAnthropicMaxTokens, req["max_tokens"])
	assert.NotContains(t, req, "temperature")
	assert.NotContains(t, req, "system")
	messages, ok := req["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	msg := messages[0].(map[string]any)
	assert.Equal(t, "user", msg["role"])
	assert.Contains(t, mustJSON(t, msg["content"]), `"text":"add Bar"`)
}

func TestAnthropicLLM_EmptyContent(t *testing.T) {
	var req map[string]any
	srv := stubServer(t, "/v1/messages", `{"id":"msg_2","type":"message","role":"assistant","model":"m","content":[],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":0}}`, &req)

	llm, err := NewAnthropicLLMFromConfig(&LLMSettings{APIKey: "ak-test", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = llm.Complete(context.Background(), Prompt{User: "add Bar"})
	assert.ErrorIs(t, err, ErrEmptyChoices)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestNewLLM(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *LLMSettings
		wantErr string
	}{
		{name: "nil config", cfg: nil, wantErr: "provider missing"},
		{name: "empty provider", cfg: &LLMSettings{APIKey: "k"}, wantErr: "provider missing"},
		{name: "unknown provider", cfg: &LLMSettings{Provider: "deepseek", APIKey: "k"}, wantErr: "not supported"},
		{name: "openai without key", cfg: &LLMSettings{Provider: ProviderOpenAI}, wantErr: "openai api key missing"},
		{name: "anthropic without key", cfg: &LLMSettings{Provider: ProviderAnthropic}, wantErr: "anthropic api key missing"},
		{name: "gemini without key", cfg: &LLMSettings{Provider: ProviderGemini}, wantErr: "gemini api key missing"},
		{name: "openai", cfg: &LLMSettings{Provider: ProviderOpenAI, APIKey: "k"}},
		{name: "anthropic", cfg: &LLMSettings{Provider: ProviderAnthropic, APIKey: "k"}},
		{name: "mock", cfg: &LLMSettings{Provider: ProviderMock}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm, err := NewLLM(context.Background(), tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, llm)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, llm)
		})
	}
}

func TestNewOpenAILLM_DefaultsModel(t *testing.T) {
	llm, err := NewOpenAILLMFromConfig(&LLMSettings{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, llm.Model)

	llm, err = NewOpenAILLMFromConfig(&LLMSettings{APIKey: "k", Model: "gpt-4.1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", llm.Model)
}
