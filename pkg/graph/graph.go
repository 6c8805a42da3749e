// Package graph implements the immutable task graph engine. Every mutating
// operation returns a new Graph value; callers never observe partial state.
// The package performs no I/O — persistence and scheduling live elsewhere.
package graph

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/foremanhq/foreman/pkg/models"
)

// Graph maps task identifiers to nodes. The zero value is an empty graph.
type Graph map[string]models.TaskNode

// New builds a graph from the given specs, assigning identifiers where
// missing and computing initial readiness. Returns an error on dangling
// dependencies or cycles.
func New(specs []models.TaskSpec) (Graph, error) {
	g := Graph{}
	g, _ = g.AddTasks(specs, 0)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Clone returns a shallow copy of the graph. Nodes are value types, so the
// copy is safe to mutate independently.
func (g Graph) Clone() Graph {
	out := make(Graph, len(g))
	for id, n := range g {
		out[id] = n
	}
	return out
}

// IDs returns all task identifiers in lexicographic order.
func (g Graph) IDs() []string {
	ids := make([]string, 0, len(g))
	for id := range g {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the node for id.
func (g Graph) Get(id string) (models.TaskNode, bool) {
	n, ok := g[id]
	return n, ok
}

// depsSatisfied reports whether every dependency of the node is in a status
// that unblocks dependents (done, skipped, or cancelled). A dependency that
// does not exist never satisfies.
func (g Graph) depsSatisfied(n models.TaskNode) bool {
	for _, dep := range n.DependsOn {
		depNode, ok := g[dep]
		if !ok || !depNode.Status.SatisfiesDependents() {
			return false
		}
	}
	return true
}

// ReadyTasks returns identifiers that can be launched now: nodes already in
// ready status plus pending nodes whose dependencies are all satisfied.
// Output order is lexicographic.
func (g Graph) ReadyTasks() []string {
	var out []string
	for _, id := range g.IDs() {
		n := g[id]
		switch n.Status {
		case models.TaskStatusReady:
			out = append(out, id)
		case models.TaskStatusPending:
			if g.depsSatisfied(n) {
				out = append(out, id)
			}
		}
	}
	return out
}

// UpdateStatus returns a graph with the node's status changed. extra applies
// additional field writes to the copied node before insertion. If the new
// status satisfies dependents, pending downstream nodes whose dependencies
// are now all satisfied are auto-promoted to ready.
func (g Graph) UpdateStatus(id string, status models.TaskStatus, extra func(*models.TaskNode)) (Graph, error) {
	n, ok := g[id]
	if !ok {
		return g, fmt.Errorf("task %q not found", id)
	}
	out := g.Clone()
	n.Status = status
	if extra != nil {
		extra(&n)
	}
	out[id] = n

	if status.SatisfiesDependents() {
		out.promotePending()
	}
	return out, nil
}

// promotePending flips pending nodes whose dependencies are all satisfied to
// ready. Iteration is in identifier order so promotion is deterministic.
func (g Graph) promotePending() {
	for _, id := range g.IDs() {
		n := g[id]
		if n.Status == models.TaskStatusPending && g.depsSatisfied(n) {
			n.Status = models.TaskStatusReady
			g[id] = n
		}
	}
}

// AddTasks inserts new nodes built from specs. Identifiers are assigned as
// t<max+1> when a spec omits one. Readiness of each new node is evaluated
// against the pre-insert graph, so a task depending on another task added in
// the same batch starts pending and is promoted one cycle later.
// Returns the new graph and the identifiers actually assigned.
func (g Graph) AddTasks(specs []models.TaskSpec, round int) (Graph, []string) {
	out := g.Clone()
	base := g // readiness evaluated against pre-insert state
	ids := make([]string, 0, len(specs))
	next := out.nextNumericSuffix()

	for _, spec := range specs {
		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("t%d", next)
			next++
		}
		n := models.TaskNode{
			ID:                 id,
			Title:              spec.Title,
			Description:        spec.Description,
			AcceptanceCriteria: spec.AcceptanceCriteria,
			DependsOn:          spec.DependsOn,
			Provider:           spec.Provider,
			Model:              spec.Model,
			Skills:             spec.Skills,
			Agent:              spec.Agent,
			Role:               spec.Role,
			Status:             models.TaskStatusPending,
			DecisionRound:      round,
		}
		if base.depsSatisfied(n) {
			n.Status = models.TaskStatusReady
		}
		out[id] = n
		ids = append(ids, id)
	}
	return out, ids
}

// RemoveTasks marks the given nodes cancelled and auto-promotes downstream
// nodes whose remaining dependencies are all satisfied. Unknown identifiers
// are ignored.
func (g Graph) RemoveTasks(ids []string) Graph {
	out := g.Clone()
	for _, id := range ids {
		if n, ok := out[id]; ok {
			n.Status = models.TaskStatusCancelled
			out[id] = n
		}
	}
	out.promotePending()
	return out
}

// Reassign changes a task's agent/role without touching its status.
func (g Graph) Reassign(id, agent, role string) (Graph, error) {
	n, ok := g[id]
	if !ok {
		return g, fmt.Errorf("task %q not found", id)
	}
	out := g.Clone()
	n.Agent = agent
	if role != "" {
		n.Role = role
	}
	out[id] = n
	return out, nil
}

// Block moves a task to blocked and records the question it waits on.
func (g Graph) Block(id, question string) (Graph, error) {
	return g.UpdateStatus(id, models.TaskStatusBlocked, func(n *models.TaskNode) {
		n.BlockingQuestion = question
	})
}

// Unblock returns a blocked task to ready and clears the blocking question.
func (g Graph) Unblock(id string) (Graph, error) {
	n, ok := g[id]
	if !ok {
		return g, fmt.Errorf("task %q not found", id)
	}
	if n.Status != models.TaskStatusBlocked {
		return g, nil
	}
	return g.UpdateStatus(id, models.TaskStatusReady, func(n *models.TaskNode) {
		n.BlockingQuestion = ""
	})
}

// Retry resets a failed task to ready, increments its attempt counter,
// clears the recorded error, and applies optional overrides.
func (g Graph) Retry(id string, changes *models.RetryChanges) (Graph, error) {
	n, ok := g[id]
	if !ok {
		return g, fmt.Errorf("task %q not found", id)
	}
	if n.Status != models.TaskStatusFailed {
		return g, fmt.Errorf("task %q is %s, only failed tasks can be retried", id, n.Status)
	}
	return g.UpdateStatus(id, models.TaskStatusReady, func(n *models.TaskNode) {
		n.Attempts++
		n.Error = ""
		if changes != nil {
			if changes.Description != "" {
				n.Description = changes.Description
			}
			if changes.Agent != "" {
				n.Agent = changes.Agent
			}
			if changes.Role != "" {
				n.Role = changes.Role
			}
		}
	})
}

// IsComplete reports whether every node is in a terminal status.
func (g Graph) IsComplete() bool {
	for _, n := range g {
		if !n.Status.IsTerminal() {
			return false
		}
	}
	return true
}

// IsStuck reports whether the graph can make no progress: nothing running,
// nothing ready, but pending or blocked work remains.
func (g Graph) IsStuck() bool {
	var pendingOrBlocked bool
	for _, n := range g {
		switch n.Status {
		case models.TaskStatusRunning, models.TaskStatusReady:
			return false
		case models.TaskStatusPending, models.TaskStatusBlocked:
			pendingOrBlocked = true
		}
	}
	if pendingOrBlocked && len(g.ReadyTasks()) > 0 {
		// Pending nodes whose deps became satisfied count as launchable.
		return false
	}
	return pendingOrBlocked
}

// WithStatus returns identifiers currently in the given status, sorted.
func (g Graph) WithStatus(status models.TaskStatus) []string {
	var out []string
	for _, id := range g.IDs() {
		if g[id].Status == status {
			out = append(out, id)
		}
	}
	return out
}

// Summary renders one line per task in lexicographic id order. Used for
// the plan gate and log output; the PM prompt renders its own richer view.
func (g Graph) Summary() string {
	var b strings.Builder
	for _, id := range g.IDs() {
		n := g[id]
		agent := n.Agent
		if n.Role != "" {
			agent += ":" + n.Role
		}
		fmt.Fprintf(&b, "%s [%s] %s - %s", n.ID, n.Status, agent, n.Title)
		if len(n.DependsOn) > 0 {
			fmt.Fprintf(&b, " (depends: %s)", strings.Join(n.DependsOn, ", "))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// NextTaskID returns t<max numeric suffix + 1>.
func (g Graph) NextTaskID() string {
	return fmt.Sprintf("t%d", g.nextNumericSuffix())
}

func (g Graph) nextNumericSuffix() int {
	max := 0
	for id := range g {
		if !strings.HasPrefix(id, "t") {
			continue
		}
		if n, err := strconv.Atoi(id[1:]); err == nil && n > max {
			max = n
		}
	}
	return max + 1
}

// TotalCost sums accumulated per-task cost.
func (g Graph) TotalCost() float64 {
	var total float64
	for _, n := range g {
		total += n.CostUSD
	}
	return total
}

// Validate checks structural invariants: no dangling dependency references
// and an acyclic dependency relation.
func (g Graph) Validate() error {
	for id, n := range g {
		for _, dep := range n.DependsOn {
			if _, ok := g[dep]; !ok {
				return fmt.Errorf("task %q depends on missing task %q", id, dep)
			}
		}
	}
	return g.checkAcyclic()
}

// checkAcyclic runs a topological scan over the dependency relation.
func (g Graph) checkAcyclic() error {
	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[string]int, len(g))

	var visit func(id string) error
	visit = func(id string) error {
		switch state[id] {
		case visited:
			return nil
		case visiting:
			return fmt.Errorf("dependency cycle involving task %q", id)
		}
		state[id] = visiting
		for _, dep := range g[id].DependsOn {
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[id] = visited
		return nil
	}

	for _, id := range g.IDs() {
		if err := visit(id); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON serializes the graph as a map of nodes.
func (g Graph) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]models.TaskNode(g))
}

// UnmarshalJSON restores a graph from its serialized form.
func (g *Graph) UnmarshalJSON(data []byte) error {
	var m map[string]models.TaskNode
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*g = Graph(m)
	return nil
}

// Parse restores a graph from checkpointed JSON and validates it.
func Parse(data string) (Graph, error) {
	var g Graph
	if err := json.Unmarshal([]byte(data), &g); err != nil {
		return nil, fmt.Errorf("failed to parse task graph: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Encode serializes the graph for checkpointing.
func (g Graph) Encode() (string, error) {
	data, err := json.Marshal(g)
	if err != nil {
		return "", fmt.Errorf("failed to encode task graph: %w", err)
	}
	return string(data), nil
}
