package provider

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsumeStream(t *testing.T) {
	lines := []string{
		`{"type":"system","subtype":"init","session_id":"sess-42"}`,
		`garbage that is not json`,
		`{"type":"system","subtype":"status"}`,
		`{"type":"assistant","message":{"content":[{"type":"text","text":"Hello "}]}}`,
		`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Read","input":{"file_path":"/tmp/a.go"}},{"type":"text","text":"world"}]}}`,
		`{"type":"result","total_cost_usd":0.0123,"usage":{"input_tokens":100,"output_tokens":20,"cache_creation_input_tokens":5,"cache_read_input_tokens":7}}`,
	}

	var events []StreamEvent
	a := NewClaudeCLIAdapter(ClaudeCLIConfig{})
	st := a.consumeStream(strings.NewReader(strings.Join(lines, "\n")), func(ev StreamEvent) {
		events = append(events, ev)
	})

	assert.Equal(t, "sess-42", st.sessionID)
	assert.Equal(t, "Hello world", st.output.String())
	assert.Empty(t, st.errText)
	assert.True(t, st.usageSeen)
	assert.Equal(t, 112, st.inputTokens)
	assert.Equal(t, 20, st.outputTokens)
	assert.InDelta(t, 0.0123, st.costUSD, 1e-9)

	require.Len(t, events, 4)
	assert.Equal(t, StreamEventInit, events[0].Type)
	assert.Equal(t, StreamEvent{Type: StreamEventText, Text: "Hello "}, events[1])
	assert.Equal(t, StreamEvent{Type: StreamEventToolUse, Text: "Read /tmp/a.go"}, events[2])
	assert.Equal(t, StreamEvent{Type: StreamEventText, Text: "world"}, events[3])
}

func TestConsumeStreamErrorResult(t *testing.T) {
	a := NewClaudeCLIAdapter(ClaudeCLIConfig{})
	st := a.consumeStream(strings.NewReader(
		`{"type":"result","is_error":true,"result":"Credit balance is too low"}`), nil)
	assert.Equal(t, "Credit balance is too low", st.errText)

	st = a.consumeStream(strings.NewReader(`{"type":"result","is_error":true}`), nil)
	assert.Equal(t, "CLI reported an error result", st.errText)
}

func TestSummarizeToolUse(t *testing.T) {
	raw := func(s string) json.RawMessage { return json.RawMessage(s) }
	tests := []struct {
		name  string
		tool  string
		input json.RawMessage
		want  string
	}{
		{"read", "Read", raw(`{"file_path":"/src/main.go"}`), "Read /src/main.go"},
		{"write", "Write", raw(`{"file_path":"/src/out.go"}`), "Write /src/out.go"},
		{"edit", "Edit", raw(`{"file_path":"x.go"}`), "Edit x.go"},
		{"bash", "Bash", raw(`{"command":"ls -la"}`), "Bash: ls -la"},
		{"grep", "Grep", raw(`{"pattern":"func main"}`), "Grep func main"},
		{"unknown tool", "WebSearch", raw(`{}`), "Tool WebSearch"},
		{"empty name", "", raw(`{}`), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarizeToolUse(tt.tool, tt.input))
		})
	}
}

func TestSummarizeToolUseTruncatesBash(t *testing.T) {
	long := strings.Repeat("x", 300)
	input, err := json.Marshal(map[string]string{"command": long})
	require.NoError(t, err)
	got := summarizeToolUse("Bash", input)
	assert.Less(t, len(got), 140)
	assert.True(t, strings.HasPrefix(got, "Bash: xxx"))
}

func TestClaudeCLIExecuteRejectsBadModel(t *testing.T) {
	a := NewClaudeCLIAdapter(ClaudeCLIConfig{})
	res := a.Execute(context.Background(), ExecutionContext{
		Prompt: "hi",
		Model:  "sonnet; rm -rf /",
	})
	assert.False(t, res.Success)
	assert.Equal(t, ErrorKindPermanent, res.ErrorKind)
	assert.Contains(t, res.Error, "invalid model name")
}

func TestWriteMCPConfig(t *testing.T) {
	t.Run("empty when no tools transport", func(t *testing.T) {
		a := NewClaudeCLIAdapter(ClaudeCLIConfig{})
		path, err := a.writeMCPConfig("proj-1")
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Remove(path) })

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		var cfg map[string]map[string]any
		require.NoError(t, json.Unmarshal(raw, &cfg))
		assert.Empty(t, cfg["mcpServers"])
	})

	t.Run("project scoped server entry", func(t *testing.T) {
		a := NewClaudeCLIAdapter(ClaudeCLIConfig{
			MCPServerCommand: "foreman",
			MCPServerArgs:    []string{"mcp-serve"},
		})
		path, err := a.writeMCPConfig("proj-2")
		require.NoError(t, err)
		t.Cleanup(func() { _ = os.Remove(path) })

		var cfg struct {
			MCPServers map[string]struct {
				Type    string   `json:"type"`
				Command string   `json:"command"`
				Args    []string `json:"args"`
			} `json:"mcpServers"`
		}
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &cfg))
		entry, ok := cfg.MCPServers["foreman"]
		require.True(t, ok)
		assert.Equal(t, "stdio", entry.Type)
		assert.Equal(t, "foreman", entry.Command)
		assert.Equal(t, []string{"mcp-serve", "--project-id", "proj-2"}, entry.Args)
	})
}
