package provider

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/foremanhq/foreman/pkg/models"
	llmv1 "github.com/foremanhq/foreman/proto"
)

// GRPCConfig configures the model-server gRPC adapter.
type GRPCConfig struct {
	Addr   string      `yaml:"addr"`
	Models []ModelInfo `yaml:"models"`
}

// GRPCAdapter executes prompts against a sidecar model server over gRPC.
// Prompt-only: the server streams text back, there is no tool execution.
type GRPCAdapter struct {
	cfg    GRPCConfig
	conn   *grpc.ClientConn
	client llmv1.ModelServiceClient
}

// NewGRPCAdapter dials the model server. The connection is lazy; dial
// errors surface on first use.
func NewGRPCAdapter(cfg GRPCConfig) (*GRPCAdapter, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("model server address is required")
	}
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model server at %s: %w", cfg.Addr, err)
	}
	return &GRPCAdapter{
		cfg:    cfg,
		conn:   conn,
		client: llmv1.NewModelServiceClient(conn),
	}, nil
}

func (a *GRPCAdapter) ID() string   { return "model-server" }
func (a *GRPCAdapter) Name() string { return "Model server (gRPC)" }

func (a *GRPCAdapter) Capabilities() models.Capabilities {
	return models.Capabilities{}
}

func (a *GRPCAdapter) Models() []ModelInfo { return a.cfg.Models }

// Detect reports availability based on configuration; the lazy connection
// means actual reachability surfaces as a transient execution error.
func (a *GRPCAdapter) Detect(ctx context.Context) Availability {
	if a.conn == nil {
		return Availability{Reason: "model server not connected"}
	}
	return Availability{Available: true}
}

// Close releases the gRPC connection.
func (a *GRPCAdapter) Close() error {
	return a.conn.Close()
}

// Execute streams one generation from the model server, accumulating text
// chunks into the result output.
func (a *GRPCAdapter) Execute(ctx context.Context, execCtx ExecutionContext) *ExecutionResult {
	start := time.Now()
	result := &ExecutionResult{}

	model := execCtx.Model
	if model == "" {
		model = DefaultModel(a)
	}

	if execCtx.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, execCtx.Timeout)
		defer cancel()
	}

	req := &llmv1.GenerateRequest{
		ProjectId:       execCtx.ProjectID,
		SessionId:       execCtx.SessionID,
		Model:           model,
		SystemPrompt:    execCtx.SystemPrompt,
		Prompt:          execCtx.Prompt,
		MaxOutputTokens: int32(execCtx.MaxOutputTokens),
	}

	stream, err := a.client.Generate(ctx, req)
	if err != nil {
		result.Error = fmt.Sprintf("gRPC Generate call failed: %v", err)
		result.ErrorKind = ErrorKindTransient
		result.DurationMs = int(time.Since(start).Milliseconds())
		return result
	}

	var sb strings.Builder
	var usage *TokenUsage
	var execErr *llmv1.ErrorChunk
	sessionID := execCtx.SessionID

	for {
		resp, recvErr := stream.Recv()
		if recvErr == io.EOF {
			break
		}
		if recvErr != nil {
			result.Error = fmt.Sprintf("model server stream: %v", recvErr)
			if ctx.Err() == context.DeadlineExceeded {
				result.Error = "model server execution timed out"
			}
			result.ErrorKind = ErrorKindTransient
			result.DurationMs = int(time.Since(start).Milliseconds())
			return result
		}
		switch c := resp.Content.(type) {
		case *llmv1.GenerateResponse_Text:
			sb.WriteString(c.Text.Content)
			if execCtx.OnEvent != nil {
				execCtx.OnEvent(StreamEvent{Type: StreamEventText, Text: c.Text.Content})
			}
		case *llmv1.GenerateResponse_Thinking:
			if execCtx.OnEvent != nil {
				execCtx.OnEvent(StreamEvent{Type: StreamEventThinking, Text: c.Thinking.Content})
			}
		case *llmv1.GenerateResponse_Usage:
			usage = &TokenUsage{
				InputTokens:  int(c.Usage.InputTokens),
				OutputTokens: int(c.Usage.OutputTokens),
			}
			result.CostUSD = c.Usage.CostUsd
		case *llmv1.GenerateResponse_Error:
			execErr = c.Error
		case *llmv1.GenerateResponse_Done:
			if c.Done.SessionId != "" {
				sessionID = c.Done.SessionId
			}
		}
	}

	result.DurationMs = int(time.Since(start).Milliseconds())
	result.Usage = usage
	result.SessionID = sessionID
	if usage != nil && result.CostUSD == 0 {
		result.CostUSD = usageCost(a.cfg.Models, model, *usage)
	}
	if execErr != nil {
		result.Error = execErr.Message
		if execErr.Retryable {
			result.ErrorKind = ErrorKindTransient
		} else {
			result.ErrorKind = ClassifyError(execErr.Message)
		}
		return result
	}
	result.Success = true
	result.Output = sb.String()
	return result
}
