// Package router extracts structured inter-agent messages from raw agent
// output and routes them: messages addressed to the PM feed the next
// decision trigger, everything else lands in a recent-messages window
// shown to subsequently launched agents.
package router

import (
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/foremanhq/foreman/pkg/models"
)

// envelopePattern matches one [AGENT_MESSAGE]{json}[/AGENT_MESSAGE] block.
// The payload is non-greedy so adjacent blocks stay separate.
var envelopePattern = regexp.MustCompile(`(?s)\[AGENT_MESSAGE\]\s*(\{.*?\})\s*\[/AGENT_MESSAGE\]`)

// PMRecipient is the reserved recipient name that routes to the decision
// loop rather than another agent.
const PMRecipient = "pm"

// defaultRecentWindow bounds the recent-messages list.
const defaultRecentWindow = 20

// Extract parses all message envelopes in output, attributing them to the
// sending agent. Invalid payloads are logged and skipped. The returned
// string is output with every envelope removed, so downstream consumers
// (step summaries, PM prompt) see clean text.
func Extract(from, taskID, output string) ([]models.AgentMessage, string) {
	matches := envelopePattern.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return nil, output
	}

	msgs := make([]models.AgentMessage, 0, len(matches))
	for _, m := range matches {
		var msg models.AgentMessage
		if err := json.Unmarshal([]byte(m[1]), &msg); err != nil {
			slog.Warn("malformed agent message block", "from", from, "error", err)
			continue
		}
		msg.From = from
		if msg.TaskID == "" {
			msg.TaskID = taskID
		}
		if err := msg.Validate(); err != nil {
			slog.Warn("invalid agent message", "from", from, "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}

	stripped := envelopePattern.ReplaceAllString(output, "")
	return msgs, strings.TrimSpace(stripped)
}

// Router accumulates routed messages for one pipeline run. Safe for use
// from concurrent task-completion handlers.
type Router struct {
	mu      sync.Mutex
	toPM    []models.AgentMessage
	recent  []models.AgentMessage
	window  int
	persist func(models.AgentMessage)
}

// Option configures a Router.
type Option func(*Router)

// WithWindow overrides the recent-messages window size.
func WithWindow(n int) Option {
	return func(r *Router) { r.window = n }
}

// WithPersist registers a callback invoked for every routed message,
// used to store message rows. Persistence failures are the callback's
// problem; routing never depends on them.
func WithPersist(fn func(models.AgentMessage)) Option {
	return func(r *Router) { r.persist = fn }
}

// New creates an empty router.
func New(opts ...Option) *Router {
	r := &Router{window: defaultRecentWindow}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Route files one validated message: PM-addressed messages accumulate for
// the next decision, others enter the recent window.
func (r *Router) Route(msg models.AgentMessage) {
	if r.persist != nil {
		r.persist(msg)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if strings.EqualFold(msg.To, PMRecipient) {
		r.toPM = append(r.toPM, msg)
		return
	}
	r.recent = append(r.recent, msg)
	if len(r.recent) > r.window {
		r.recent = r.recent[len(r.recent)-r.window:]
	}
}

// ProcessOutput extracts, routes, and strips messages from one task's
// output in a single call.
func (r *Router) ProcessOutput(from, taskID, output string) string {
	msgs, stripped := Extract(from, taskID, output)
	for _, msg := range msgs {
		r.Route(msg)
	}
	return stripped
}

// DrainPM returns and clears the accumulated PM-addressed messages.
func (r *Router) DrainPM() []models.AgentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.toPM
	r.toPM = nil
	return out
}

// Recent returns a copy of the recent inter-agent messages.
func (r *Router) Recent() []models.AgentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.AgentMessage(nil), r.recent...)
}

// RecentFor returns recent messages addressed to the named agent or to
// everyone ("all").
func (r *Router) RecentFor(agent string) []models.AgentMessage {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.AgentMessage
	for _, m := range r.recent {
		if strings.EqualFold(m.To, agent) || strings.EqualFold(m.To, "all") {
			out = append(out, m)
		}
	}
	return out
}
