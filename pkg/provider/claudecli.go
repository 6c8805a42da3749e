package provider

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/foremanhq/foreman/pkg/models"
)

// modelNamePattern guards the model argument passed to the CLI.
var modelNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._:/-]+$`)

// abortPollInterval is how often a running CLI execution checks the
// project abort flag.
const abortPollInterval = 3 * time.Second

// ClaudeCLIConfig configures the subprocess CLI adapter.
type ClaudeCLIConfig struct {
	BinaryPath string `yaml:"binary_path"`

	// MCPServerCommand, when set, is written into a project-scoped MCP
	// config pointing the CLI at the auxiliary tools transport. When empty
	// an empty MCP config is written instead.
	MCPServerCommand string   `yaml:"mcp_server_command"`
	MCPServerArgs    []string `yaml:"mcp_server_args"`

	Models []ModelInfo       `yaml:"models"`
	Env    map[string]string `yaml:"env"`
}

// ClaudeCLIAdapter runs prompts through the Claude Code CLI in stream-json
// mode. It is the full-capability adapter: file access, shell, tools, and
// sub-agents.
type ClaudeCLIAdapter struct {
	cfg ClaudeCLIConfig
}

// NewClaudeCLIAdapter creates the subprocess CLI adapter.
func NewClaudeCLIAdapter(cfg ClaudeCLIConfig) *ClaudeCLIAdapter {
	if strings.TrimSpace(cfg.BinaryPath) == "" {
		cfg.BinaryPath = "claude"
	}
	return &ClaudeCLIAdapter{cfg: cfg}
}

func (a *ClaudeCLIAdapter) ID() string   { return "claude-cli" }
func (a *ClaudeCLIAdapter) Name() string { return "Claude Code CLI" }

func (a *ClaudeCLIAdapter) Capabilities() models.Capabilities {
	return models.Capabilities{FileAccess: true, ShellAccess: true, ToolUse: true, SubAgents: true}
}

func (a *ClaudeCLIAdapter) Models() []ModelInfo {
	return a.cfg.Models
}

// Detect checks that the CLI binary is on PATH.
func (a *ClaudeCLIAdapter) Detect(_ context.Context) Availability {
	if _, err := exec.LookPath(a.cfg.BinaryPath); err != nil {
		return Availability{Reason: fmt.Sprintf("binary %q not found in PATH", a.cfg.BinaryPath)}
	}
	return Availability{Available: true}
}

// Execute spawns the CLI, parses its stream-json output, and returns the
// accumulated assistant text. The subprocess is SIGTERM/SIGKILL'd on abort
// or deadline.
func (a *ClaudeCLIAdapter) Execute(ctx context.Context, execCtx ExecutionContext) *ExecutionResult {
	start := time.Now()
	fail := func(kind ErrorKind, format string, args ...any) *ExecutionResult {
		msg := fmt.Sprintf(format, args...)
		return &ExecutionResult{
			Error:      msg,
			ErrorKind:  kind,
			DurationMs: int(time.Since(start).Milliseconds()),
		}
	}

	if execCtx.Model != "" && !modelNamePattern.MatchString(execCtx.Model) {
		return fail(ErrorKindPermanent, "invalid model name %q", execCtx.Model)
	}

	mcpConfigPath, err := a.writeMCPConfig(execCtx.ProjectID)
	if err != nil {
		return fail(ErrorKindUnknown, "failed to write MCP config: %v", err)
	}
	defer os.Remove(mcpConfigPath)

	args := []string{"-p", "--output-format", "stream-json", "--verbose",
		"--mcp-config", mcpConfigPath}
	if execCtx.Model != "" {
		args = append(args, "--model", execCtx.Model)
	}
	if execCtx.SessionID != "" {
		args = append(args, "--resume", execCtx.SessionID)
	}
	if execCtx.SystemPrompt != "" {
		args = append(args, "--append-system-prompt", execCtx.SystemPrompt)
	}
	if !execCtx.EnableTools {
		args = append(args, "--allowedTools", "")
	}
	args = append(args, "--", execCtx.Prompt)

	procCtx := ctx
	var cancel context.CancelFunc
	if execCtx.Timeout > 0 {
		procCtx, cancel = context.WithTimeout(ctx, execCtx.Timeout)
		defer cancel()
	}

	p, err := startProc(procCtx, procConfig{
		Command:    a.cfg.BinaryPath,
		Args:       args,
		Env:        a.cfg.Env,
		WorkingDir: execCtx.WorkingDir,
	})
	if err != nil {
		return fail(ErrorKindTransient, "failed to start %s: %v", a.cfg.BinaryPath, err)
	}

	// Abort poller: SIGTERM then SIGKILL the process group when the project
	// abort flag appears. Deadline kills are handled by procCtx.
	stopPolling := make(chan struct{})
	defer close(stopPolling)
	var aborted atomic.Bool
	if execCtx.AbortRequested != nil {
		go func() {
			ticker := time.NewTicker(abortPollInterval)
			defer ticker.Stop()
			for {
				select {
				case <-stopPolling:
					return
				case <-ticker.C:
					if execCtx.AbortRequested() {
						aborted.Store(true)
						p.Stop()
						return
					}
				}
			}
		}()
	}

	parsed := a.consumeStream(p.Stdout(), execCtx.OnEvent)
	waitErr := p.Wait()

	result := &ExecutionResult{
		Output:     parsed.output.String(),
		DurationMs: int(time.Since(start).Milliseconds()),
		SessionID:  parsed.sessionID,
		CostUSD:    parsed.costUSD,
	}
	if parsed.usageSeen {
		result.Usage = &TokenUsage{
			InputTokens:  parsed.inputTokens,
			OutputTokens: parsed.outputTokens,
		}
	}

	switch {
	case aborted.Load():
		result.Error = "execution aborted (SIGTERM)"
		result.ErrorKind = ErrorKindTransient
	case procCtx.Err() == context.DeadlineExceeded:
		result.Error = "timed out"
		result.ErrorKind = ErrorKindTransient
	case parsed.errText != "":
		result.Error = parsed.errText
		result.ErrorKind = ClassifyError(parsed.errText)
	case waitErr != nil:
		result.Error = waitErr.Error()
		result.ErrorKind = ClassifyError(waitErr.Error())
	default:
		result.Success = true
	}
	return result
}

// writeMCPConfig writes the MCP config file for this execution: empty when
// no tools transport is configured, otherwise a project-scoped server entry.
func (a *ClaudeCLIAdapter) writeMCPConfig(projectID string) (string, error) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("foreman-mcp-%s-%d.json", projectID, time.Now().UnixNano()))

	payload := map[string]any{"mcpServers": map[string]any{}}
	if a.cfg.MCPServerCommand != "" {
		payload["mcpServers"] = map[string]any{
			"foreman": map[string]any{
				"type":    "stdio",
				"command": a.cfg.MCPServerCommand,
				"args":    append(append([]string{}, a.cfg.MCPServerArgs...), "--project-id", projectID),
			},
		}
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// streamState accumulates what Execute needs from the event stream.
type streamState struct {
	output       strings.Builder
	sessionID    string
	errText      string
	inputTokens  int
	outputTokens int
	usageSeen    bool
	costUSD      float64
}

// consumeStream reads line-delimited JSON events from the CLI. Assistant
// text blocks go to the output accumulator and the event callback; tool-use
// blocks are rendered as one-line summaries for the log. Tool results and
// unknown subtypes are ignored for log hygiene.
func (a *ClaudeCLIAdapter) consumeStream(r interface{ Read([]byte) (int, error) }, onEvent func(StreamEvent)) *streamState {
	st := &streamState{}
	emit := func(ev StreamEvent) {
		if onEvent != nil {
			onEvent(ev)
		}
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "{") {
			continue
		}
		var ev cliEvent
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}

		switch ev.Type {
		case "system":
			if ev.Subtype == "init" {
				st.sessionID = ev.SessionID
				emit(StreamEvent{Type: StreamEventInit, Text: fmt.Sprintf("session %s initialized", ev.SessionID)})
			}
		case "assistant":
			if ev.Message == nil {
				continue
			}
			for _, block := range ev.Message.Content {
				switch block.Type {
				case "text":
					if block.Text != "" {
						st.output.WriteString(block.Text)
						emit(StreamEvent{Type: StreamEventText, Text: block.Text})
					}
				case "tool_use":
					if summary := summarizeToolUse(block.Name, block.Input); summary != "" {
						emit(StreamEvent{Type: StreamEventToolUse, Text: summary})
					}
				}
			}
		case "result":
			if ev.Usage != nil {
				st.usageSeen = true
				st.inputTokens = ev.Usage.InputTokens + ev.Usage.CacheCreationInputTokens + ev.Usage.CacheReadInputTokens
				st.outputTokens = ev.Usage.OutputTokens
			}
			st.costUSD = ev.TotalCostUSD
			if ev.IsError {
				st.errText = ev.Result
				if st.errText == "" {
					st.errText = "CLI reported an error result"
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("CLI stream read error", "error", err)
	}
	return st
}

// cliEvent is one stream-json line from the CLI. Only the fields the
// orchestrator cares about are decoded.
type cliEvent struct {
	Type      string `json:"type"`
	Subtype   string `json:"subtype"`
	SessionID string `json:"session_id"`

	Message *struct {
		Content []contentBlock `json:"content"`
	} `json:"message"`

	Result       string    `json:"result"`
	IsError      bool      `json:"is_error"`
	TotalCostUSD float64   `json:"total_cost_usd"`
	Usage        *cliUsage `json:"usage"`
}

type contentBlock struct {
	Type  string          `json:"type"`
	Text  string          `json:"text"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

type cliUsage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
}

// summarizeToolUse renders a tool-use block as a one-line human-readable
// summary for the live log.
func summarizeToolUse(name string, input json.RawMessage) string {
	var args map[string]any
	_ = json.Unmarshal(input, &args)
	str := func(key string) string {
		if v, ok := args[key].(string); ok {
			return v
		}
		return ""
	}

	switch name {
	case "Read":
		return fmt.Sprintf("Read %s", str("file_path"))
	case "Write":
		return fmt.Sprintf("Write %s", str("file_path"))
	case "Edit":
		return fmt.Sprintf("Edit %s", str("file_path"))
	case "Bash":
		return fmt.Sprintf("Bash: %s", truncateLine(str("command"), 120))
	case "Grep":
		return fmt.Sprintf("Grep %s", str("pattern"))
	case "Glob":
		return fmt.Sprintf("Glob %s", str("pattern"))
	case "":
		return ""
	default:
		return fmt.Sprintf("Tool %s", name)
	}
}

func truncateLine(s string, limit int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
