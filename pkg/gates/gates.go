// Package gates implements the file-based rendezvous between the detached
// worker process and the request-serving front end: the append-only live
// log, the abort flag, the worker pid file, plan confirmation, PM
// questions, and the mid-run user-message queue. All files live under a
// per-project directory and are single-writer by convention; both sides
// read the other's writes by polling. Whole-file JSON writes go through a
// temp-file rename so readers never observe partial content.
package gates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	liveLogFile  = "live.log"
	abortFile    = "abort.flag"
	pidFile      = "worker.pid"
	appDirName   = "foreman"
	pollInterval = 2 * time.Second
)

// Plan decision actions written by the front end.
const (
	PlanActionConfirm = "confirm"
	PlanActionReject  = "reject"
	PlanActionModify  = "modify"
)

// Sentinel errors for gate waits.
var (
	// ErrGateTimeout means the other side never responded within the
	// deadline. Plan gates treat this as auto-continue; question gates
	// unblock without an answer.
	ErrGateTimeout = errors.New("gate timed out")

	// ErrAborted means the abort flag appeared while waiting.
	ErrAborted = errors.New("run aborted")
)

// PlanFile is the worker-written plan awaiting approval.
type PlanFile struct {
	Status    string `json:"status"`
	Plan      string `json:"plan"`
	CreatedAt string `json:"createdAt"`
}

// PlanDecision is the front end's answer to a plan gate.
type PlanDecision struct {
	Action string `json:"action"`
	Notes  string `json:"notes,omitempty"`
}

// QuestionFile is a PM question directed at the user.
type QuestionFile struct {
	Question  string `json:"question"`
	Context   string `json:"context,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// AnswerFile is the user's reply to a question gate.
type AnswerFile struct {
	Answer     string `json:"answer"`
	AnsweredAt string `json:"answeredAt"`
}

// UserMessage is one queued mid-run message from the user.
type UserMessage struct {
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// Project is a handle on one project's gate directory.
type Project struct {
	dir    string
	logger *slog.Logger
	poll   time.Duration
}

// NewProject opens (creating if needed) the gate directory for projectID
// under the system temp dir.
func NewProject(projectID string) (*Project, error) {
	return NewProjectAt(filepath.Join(os.TempDir(), appDirName, projectID))
}

// NewProjectAt opens a gate directory at an explicit path. Tests and the
// front end use this to share a directory with a running worker.
func NewProjectAt(dir string) (*Project, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create gate directory %s: %w", dir, err)
	}
	return &Project{
		dir:    dir,
		logger: slog.With("component", "gates", "dir", dir),
		poll:   pollInterval,
	}, nil
}

// Dir returns the gate directory path.
func (p *Project) Dir() string { return p.dir }

// ────────────────────────────────────────────────────────────
// Live log
// ────────────────────────────────────────────────────────────

// AppendLog appends one line to the live log. Best effort: failures are
// logged and swallowed, the pipeline never stops over log I/O.
func (p *Project) AppendLog(line string) {
	f, err := os.OpenFile(filepath.Join(p.dir, liveLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		p.logger.Warn("failed to open live log", "error", err)
		return
	}
	defer f.Close()
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := f.WriteString(line); err != nil {
		p.logger.Warn("failed to append to live log", "error", err)
	}
}

// LogModTime returns the live log's last modification time, or zero when
// the log does not exist yet.
func (p *Project) LogModTime() time.Time {
	info, err := os.Stat(filepath.Join(p.dir, liveLogFile))
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// ReadLogFrom returns log content starting at offset and the new offset,
// for offset-based polling by the front end.
func (p *Project) ReadLogFrom(offset int64) (string, int64, error) {
	f, err := os.Open(filepath.Join(p.dir, liveLogFile))
	if err != nil {
		if os.IsNotExist(err) {
			return "", offset, nil
		}
		return "", offset, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return "", offset, err
	}
	if offset >= info.Size() {
		return "", info.Size(), nil
	}
	if offset < 0 {
		offset = 0
	}
	buf := make([]byte, info.Size()-offset)
	if _, err := f.ReadAt(buf, offset); err != nil {
		return "", offset, err
	}
	return string(buf), info.Size(), nil
}

// ────────────────────────────────────────────────────────────
// Abort flag + worker pid
// ────────────────────────────────────────────────────────────

// AbortRequested reports whether the abort flag file exists.
func (p *Project) AbortRequested() bool {
	_, err := os.Stat(filepath.Join(p.dir, abortFile))
	return err == nil
}

// RequestAbort creates the abort flag. Front-end side.
func (p *Project) RequestAbort() error {
	return os.WriteFile(filepath.Join(p.dir, abortFile), []byte("1"), 0o644)
}

// ClearAbort removes the abort flag, typically before a resume.
func (p *Project) ClearAbort() {
	if err := os.Remove(filepath.Join(p.dir, abortFile)); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to clear abort flag", "error", err)
	}
}

// WritePID records the worker's pid for external SIGTERM on abort.
func (p *Project) WritePID(pid int) error {
	return os.WriteFile(filepath.Join(p.dir, pidFile), []byte(strconv.Itoa(pid)), 0o644)
}

// ReadPID returns the recorded worker pid.
func (p *Project) ReadPID() (int, error) {
	raw, err := os.ReadFile(filepath.Join(p.dir, pidFile))
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, fmt.Errorf("malformed pid file: %w", err)
	}
	return pid, nil
}

// RemovePID deletes the pid file on clean worker exit.
func (p *Project) RemovePID() {
	if err := os.Remove(filepath.Join(p.dir, pidFile)); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to remove pid file", "error", err)
	}
}

// ────────────────────────────────────────────────────────────
// Plan confirmation gate
// ────────────────────────────────────────────────────────────

func (p *Project) planPath(runID string) string {
	return filepath.Join(p.dir, fmt.Sprintf("plan-%s.json", runID))
}

func (p *Project) planConfirmPath(runID string) string {
	return filepath.Join(p.dir, fmt.Sprintf("plan-confirm-%s.json", runID))
}

// WritePlan publishes a plan awaiting approval.
func (p *Project) WritePlan(runID, plan string) error {
	return p.writeJSON(p.planPath(runID), PlanFile{
		Status:    "awaiting_confirmation",
		Plan:      plan,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// WritePlanDecision records the user's plan decision. Front-end side.
func (p *Project) WritePlanDecision(runID string, d PlanDecision) error {
	return p.writeJSON(p.planConfirmPath(runID), d)
}

// AwaitPlanDecision polls for the plan-confirm file. Returns ErrGateTimeout
// when the deadline passes and ErrAborted when the abort flag appears.
// The plan and confirm files are removed once a decision is read.
func (p *Project) AwaitPlanDecision(ctx context.Context, runID string, timeout time.Duration) (*PlanDecision, error) {
	var d PlanDecision
	err := p.pollFor(ctx, p.planConfirmPath(runID), timeout, &d)
	if err != nil {
		return nil, err
	}
	p.remove(p.planPath(runID))
	p.remove(p.planConfirmPath(runID))
	return &d, nil
}

// ────────────────────────────────────────────────────────────
// PM question gate
// ────────────────────────────────────────────────────────────

func (p *Project) questionPath(runID string) string {
	return filepath.Join(p.dir, fmt.Sprintf("question-%s.json", runID))
}

func (p *Project) answerPath(runID string) string {
	return filepath.Join(p.dir, fmt.Sprintf("question-%s-answer.json", runID))
}

// WriteQuestion publishes a PM question for the user.
func (p *Project) WriteQuestion(runID, question, qctx string) error {
	return p.writeJSON(p.questionPath(runID), QuestionFile{
		Question:  question,
		Context:   qctx,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// WriteAnswer records the user's reply. Front-end side.
func (p *Project) WriteAnswer(runID, answer string) error {
	return p.writeJSON(p.answerPath(runID), AnswerFile{
		Answer:     answer,
		AnsweredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// AwaitAnswer polls for the user's reply to a question. Returns
// ErrGateTimeout when the deadline passes; the caller unblocks the task
// without an answer in that case. Question and answer files are removed
// once read.
func (p *Project) AwaitAnswer(ctx context.Context, runID string, timeout time.Duration) (string, error) {
	var a AnswerFile
	err := p.pollFor(ctx, p.answerPath(runID), timeout, &a)
	if err != nil {
		if errors.Is(err, ErrGateTimeout) {
			p.remove(p.questionPath(runID))
		}
		return "", err
	}
	p.remove(p.questionPath(runID))
	p.remove(p.answerPath(runID))
	return a.Answer, nil
}

// ────────────────────────────────────────────────────────────
// User-message queue
// ────────────────────────────────────────────────────────────

// EnqueueUserMessage queues a mid-run user message. Front-end side. Each
// message gets its own timestamped file so concurrent writes never clash.
func (p *Project) EnqueueUserMessage(runID, message string) error {
	name := fmt.Sprintf("user-msg-%s-%d.json", runID, time.Now().UnixNano())
	return p.writeJSON(filepath.Join(p.dir, name), UserMessage{
		Message:   message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// DrainUserMessages consumes all queued user messages for runID in
// timestamp order. Unreadable entries are logged and discarded.
func (p *Project) DrainUserMessages(runID string) []UserMessage {
	pattern := filepath.Join(p.dir, fmt.Sprintf("user-msg-%s-*.json", runID))
	paths, err := filepath.Glob(pattern)
	if err != nil || len(paths) == 0 {
		return nil
	}
	sort.Strings(paths)

	out := make([]UserMessage, 0, len(paths))
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			p.logger.Warn("failed to read user message", "path", path, "error", err)
			p.remove(path)
			continue
		}
		var msg UserMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			p.logger.Warn("malformed user message", "path", path, "error", err)
			p.remove(path)
			continue
		}
		out = append(out, msg)
		p.remove(path)
	}
	return out
}

// ────────────────────────────────────────────────────────────
// Internals
// ────────────────────────────────────────────────────────────

// writeJSON writes whole-file JSON atomically: temp file in the same
// directory, then rename.
func (p *Project) writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	tmp, err := os.CreateTemp(p.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// pollFor polls until path exists and decodes it into v, observing the
// context, the timeout, and the abort flag.
func (p *Project) pollFor(ctx context.Context, path string, timeout time.Duration, v any) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(p.poll)
	defer ticker.Stop()

	for {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(raw, v); err != nil {
				return fmt.Errorf("malformed gate file %s: %w", filepath.Base(path), err)
			}
			return nil
		}
		if !os.IsNotExist(err) {
			return err
		}
		if p.AbortRequested() {
			return ErrAborted
		}
		if time.Now().After(deadline) {
			return ErrGateTimeout
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (p *Project) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		p.logger.Warn("failed to remove gate file", "path", path, "error", err)
	}
}
