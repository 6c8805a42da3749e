package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
)

func spec(id, title string, deps ...string) models.TaskSpec {
	return models.TaskSpec{ID: id, Title: title, Agent: "engineer", DependsOn: deps}
}

func newGraph(t *testing.T, specs ...models.TaskSpec) Graph {
	t.Helper()
	g, err := New(specs)
	require.NoError(t, err)
	return g
}

func TestNew_InitialReadiness(t *testing.T) {
	g := newGraph(t,
		spec("t1", "roots are ready"),
		spec("t2", "waits on t1", "t1"),
		spec("t3", "also a root"),
	)

	assert.Equal(t, []string{"t1", "t3"}, g.ReadyTasks())
	n, _ := g.Get("t2")
	assert.Equal(t, models.TaskStatusPending, n.Status)
}

func TestNew_RejectsDanglingDependency(t *testing.T) {
	_, err := New([]models.TaskSpec{spec("t1", "bad", "t9")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing task")
}

func TestNew_RejectsCycle(t *testing.T) {
	_, err := New([]models.TaskSpec{
		spec("t1", "a", "t2"),
		spec("t2", "b", "t1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestUpdateStatus_PromotesDependents(t *testing.T) {
	g := newGraph(t,
		spec("t1", "first"),
		spec("t2", "second", "t1"),
		spec("t3", "third", "t1", "t2"),
	)

	g2, err := g.UpdateStatus("t1", models.TaskStatusDone, nil)
	require.NoError(t, err)

	// Original untouched.
	n, _ := g.Get("t1")
	assert.Equal(t, models.TaskStatusReady, n.Status)

	n2, _ := g2.Get("t2")
	assert.Equal(t, models.TaskStatusReady, n2.Status)
	n3, _ := g2.Get("t3")
	assert.Equal(t, models.TaskStatusPending, n3.Status, "t3 still waits on t2")
}

func TestUpdateStatus_FailureDoesNotPromote(t *testing.T) {
	g := newGraph(t,
		spec("t1", "first"),
		spec("t2", "second", "t1"),
	)

	g2, err := g.UpdateStatus("t1", models.TaskStatusFailed, func(n *models.TaskNode) {
		n.Error = "broken"
	})
	require.NoError(t, err)

	n, _ := g2.Get("t2")
	assert.Equal(t, models.TaskStatusPending, n.Status)
	assert.Empty(t, g2.ReadyTasks())
	assert.True(t, g2.IsStuck())
}

func TestUpdateStatus_SkipSatisfiesDependents(t *testing.T) {
	g := newGraph(t,
		spec("t1", "first"),
		spec("t2", "second", "t1"),
	)

	g2, err := g.UpdateStatus("t1", models.TaskStatusSkipped, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"t2"}, g2.ReadyTasks())
}

func TestUpdateStatus_UnknownTask(t *testing.T) {
	g := newGraph(t, spec("t1", "only"))
	_, err := g.UpdateStatus("t9", models.TaskStatusDone, nil)
	assert.Error(t, err)
}

func TestAddTasks_AssignsSequentialIDs(t *testing.T) {
	g := newGraph(t, spec("t1", "existing"), spec("t4", "gap"))

	g2, ids := g.AddTasks([]models.TaskSpec{
		{Title: "added a", Agent: "engineer"},
		{Title: "added b", Agent: "reviewer"},
	}, 2)

	assert.Equal(t, []string{"t5", "t6"}, ids)
	n, ok := g2.Get("t5")
	require.True(t, ok)
	assert.Equal(t, 2, n.DecisionRound)
	assert.Equal(t, models.TaskStatusReady, n.Status)
}

func TestAddTasks_CoBatchDependencyStartsPending(t *testing.T) {
	g := newGraph(t, spec("t1", "existing"))
	g, err := g.UpdateStatus("t1", models.TaskStatusDone, nil)
	require.NoError(t, err)

	// t3 depends on t2 from the same batch; readiness is evaluated
	// against the pre-insert graph, so t3 starts pending even though t2
	// lands ready.
	g2, ids := g.AddTasks([]models.TaskSpec{
		{ID: "t2", Title: "batch a", Agent: "engineer", DependsOn: []string{"t1"}},
		{ID: "t3", Title: "batch b", Agent: "engineer", DependsOn: []string{"t2"}},
	}, 1)
	require.Equal(t, []string{"t2", "t3"}, ids)

	n2, _ := g2.Get("t2")
	assert.Equal(t, models.TaskStatusReady, n2.Status)
	n3, _ := g2.Get("t3")
	assert.Equal(t, models.TaskStatusPending, n3.Status)

	// Once t2 terminates, t3 promotes.
	g3, err := g2.UpdateStatus("t2", models.TaskStatusDone, nil)
	require.NoError(t, err)
	n3, _ = g3.Get("t3")
	assert.Equal(t, models.TaskStatusReady, n3.Status)
}

func TestRemoveTasks_CancelsAndPromotes(t *testing.T) {
	g := newGraph(t,
		spec("t1", "doomed"),
		spec("t2", "waits", "t1"),
	)

	g2 := g.RemoveTasks([]string{"t1", "t9"})

	n, _ := g2.Get("t1")
	assert.Equal(t, models.TaskStatusCancelled, n.Status)
	// Cancelled satisfies dependents.
	n2, _ := g2.Get("t2")
	assert.Equal(t, models.TaskStatusReady, n2.Status)
}

func TestReassign(t *testing.T) {
	g := newGraph(t, spec("t1", "work"))

	g2, err := g.Reassign("t1", "reviewer", "review")
	require.NoError(t, err)
	n, _ := g2.Get("t1")
	assert.Equal(t, "reviewer", n.Agent)
	assert.Equal(t, "review", n.Role)
	assert.Equal(t, models.TaskStatusReady, n.Status)

	// Empty role keeps the existing one.
	g3, err := g2.Reassign("t1", "engineer", "")
	require.NoError(t, err)
	n, _ = g3.Get("t1")
	assert.Equal(t, "engineer", n.Agent)
	assert.Equal(t, "review", n.Role)

	_, err = g.Reassign("t9", "x", "")
	assert.Error(t, err)
}

func TestBlockUnblock(t *testing.T) {
	g := newGraph(t, spec("t1", "asker"))

	g2, err := g.Block("t1", "which region?")
	require.NoError(t, err)
	n, _ := g2.Get("t1")
	assert.Equal(t, models.TaskStatusBlocked, n.Status)
	assert.Equal(t, "which region?", n.BlockingQuestion)

	g3, err := g2.Unblock("t1")
	require.NoError(t, err)
	n, _ = g3.Get("t1")
	assert.Equal(t, models.TaskStatusReady, n.Status)
	assert.Empty(t, n.BlockingQuestion)

	// Unblocking a non-blocked task is a no-op.
	g4, err := g3.Unblock("t1")
	require.NoError(t, err)
	n, _ = g4.Get("t1")
	assert.Equal(t, models.TaskStatusReady, n.Status)
}

func TestRetry(t *testing.T) {
	g := newGraph(t, spec("t1", "flaky"))
	g, err := g.UpdateStatus("t1", models.TaskStatusFailed, func(n *models.TaskNode) {
		n.Error = "boom"
		n.Attempts = 1
	})
	require.NoError(t, err)

	g2, err := g.Retry("t1", &models.RetryChanges{Agent: "reviewer", Description: "try differently"})
	require.NoError(t, err)
	n, _ := g2.Get("t1")
	assert.Equal(t, models.TaskStatusReady, n.Status)
	assert.Equal(t, 2, n.Attempts)
	assert.Empty(t, n.Error)
	assert.Equal(t, "reviewer", n.Agent)
	assert.Equal(t, "try differently", n.Description)
}

func TestRetry_OnlyFailedTasks(t *testing.T) {
	g := newGraph(t, spec("t1", "fine"))
	_, err := g.Retry("t1", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only failed tasks")

	_, err = g.Retry("t9", nil)
	assert.Error(t, err)
}

func TestIsCompleteAndIsStuck(t *testing.T) {
	g := newGraph(t,
		spec("t1", "a"),
		spec("t2", "b", "t1"),
	)
	assert.False(t, g.IsComplete())
	assert.False(t, g.IsStuck())

	g, err := g.UpdateStatus("t1", models.TaskStatusDone, nil)
	require.NoError(t, err)
	assert.False(t, g.IsComplete())

	g, err = g.UpdateStatus("t2", models.TaskStatusSkipped, nil)
	require.NoError(t, err)
	assert.True(t, g.IsComplete())
	assert.False(t, g.IsStuck())
}

func TestIsStuck_BlockedOnly(t *testing.T) {
	g := newGraph(t, spec("t1", "stuck"))
	g, err := g.Block("t1", "?")
	require.NoError(t, err)
	assert.True(t, g.IsStuck())
}

func TestNextTaskID(t *testing.T) {
	g := newGraph(t, spec("t1", "a"), spec("t7", "b"))
	assert.Equal(t, "t8", g.NextTaskID())

	empty := Graph{}
	assert.Equal(t, "t1", empty.NextTaskID())
}

func TestTotalCost(t *testing.T) {
	g := newGraph(t, spec("t1", "a"), spec("t2", "b"))
	g, err := g.UpdateStatus("t1", models.TaskStatusDone, func(n *models.TaskNode) { n.CostUSD = 0.5 })
	require.NoError(t, err)
	g, err = g.UpdateStatus("t2", models.TaskStatusDone, func(n *models.TaskNode) { n.CostUSD = 0.25 })
	require.NoError(t, err)
	assert.InDelta(t, 0.75, g.TotalCost(), 0.0001)
}

func TestSummary(t *testing.T) {
	g := newGraph(t,
		models.TaskSpec{ID: "t1", Title: "build", Agent: "engineer", Role: "implement"},
		models.TaskSpec{ID: "t2", Title: "review", Agent: "reviewer", DependsOn: []string{"t1"}},
	)

	got := g.Summary()
	assert.Equal(t,
		"t1 [ready] engineer:implement - build\n"+
			"t2 [pending] reviewer - review (depends: t1)",
		got)
}

func TestEncodeParseRoundTrip(t *testing.T) {
	g := newGraph(t,
		spec("t1", "a"),
		spec("t2", "b", "t1"),
	)
	g, err := g.UpdateStatus("t1", models.TaskStatusDone, func(n *models.TaskNode) {
		n.Output = "built it"
		n.CostUSD = 1.5
		n.Attempts = 2
	})
	require.NoError(t, err)

	data, err := g.Encode()
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, g, back)
}

func TestParse_RejectsInvalidGraph(t *testing.T) {
	_, err := Parse(`{"t1": {"id": "t1", "title": "x", "agent": "a", "status": "ready", "depends_on": ["t9"]}}`)
	require.Error(t, err)

	_, err = Parse("not json")
	require.Error(t, err)
}
