package gates

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func testProject(t *testing.T) *Project {
	t.Helper()
	p, err := NewProjectAt(t.TempDir())
	require.NoError(t, err)
	p.poll = 10 * time.Millisecond
	return p
}

func TestLiveLogAppendAndReadFrom(t *testing.T) {
	p := testProject(t)

	assert.True(t, p.LogModTime().IsZero())

	p.AppendLog("first line")
	p.AppendLog("second line\n")

	content, offset, err := p.ReadLogFrom(0)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line\n", content)
	assert.False(t, p.LogModTime().IsZero())

	// Nothing new past the end.
	content, next, err := p.ReadLogFrom(offset)
	require.NoError(t, err)
	assert.Empty(t, content)
	assert.Equal(t, offset, next)

	p.AppendLog("third")
	content, _, err = p.ReadLogFrom(offset)
	require.NoError(t, err)
	assert.Equal(t, "third\n", content)
}

func TestAbortFlag(t *testing.T) {
	p := testProject(t)

	assert.False(t, p.AbortRequested())
	require.NoError(t, p.RequestAbort())
	assert.True(t, p.AbortRequested())
	p.ClearAbort()
	assert.False(t, p.AbortRequested())
}

func TestWorkerPID(t *testing.T) {
	p := testProject(t)

	_, err := p.ReadPID()
	assert.Error(t, err)

	require.NoError(t, p.WritePID(12345))
	pid, err := p.ReadPID()
	require.NoError(t, err)
	assert.Equal(t, 12345, pid)

	p.RemovePID()
	_, err = p.ReadPID()
	assert.Error(t, err)
}

func TestPlanGateConfirm(t *testing.T) {
	p := testProject(t)
	ctx := context.Background()

	require.NoError(t, p.WritePlan("run-1", "1. build\n2. test"))

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = p.WritePlanDecision("run-1", PlanDecision{Action: PlanActionConfirm})
	}()

	d, err := p.AwaitPlanDecision(ctx, "run-1", time.Second)
	require.NoError(t, err)
	assert.Equal(t, PlanActionConfirm, d.Action)

	// Files are consumed.
	assert.NoFileExists(t, p.planPath("run-1"))
	assert.NoFileExists(t, p.planConfirmPath("run-1"))
}

func TestPlanGateTimeout(t *testing.T) {
	p := testProject(t)

	require.NoError(t, p.WritePlan("run-1", "plan"))
	_, err := p.AwaitPlanDecision(context.Background(), "run-1", 30*time.Millisecond)
	assert.ErrorIs(t, err, ErrGateTimeout)
}

func TestPlanGateAbortWhileWaiting(t *testing.T) {
	p := testProject(t)
	require.NoError(t, p.RequestAbort())

	_, err := p.AwaitPlanDecision(context.Background(), "run-1", time.Second)
	assert.ErrorIs(t, err, ErrAborted)
}

func TestQuestionGate(t *testing.T) {
	p := testProject(t)

	require.NoError(t, p.WriteQuestion("run-1", "Which database?", "schema design"))

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = p.WriteAnswer("run-1", "postgres")
	}()

	answer, err := p.AwaitAnswer(context.Background(), "run-1", time.Second)
	require.NoError(t, err)
	assert.Equal(t, "postgres", answer)
	assert.NoFileExists(t, p.questionPath("run-1"))
	assert.NoFileExists(t, p.answerPath("run-1"))
}

func TestQuestionGateTimeoutRemovesQuestion(t *testing.T) {
	p := testProject(t)

	require.NoError(t, p.WriteQuestion("run-1", "anyone there?", ""))
	_, err := p.AwaitAnswer(context.Background(), "run-1", 30*time.Millisecond)
	assert.ErrorIs(t, err, ErrGateTimeout)
	assert.NoFileExists(t, p.questionPath("run-1"))
}

func TestUserMessageQueueOrderAndDrain(t *testing.T) {
	p := testProject(t)

	require.NoError(t, p.EnqueueUserMessage("run-1", "first"))
	require.NoError(t, p.EnqueueUserMessage("run-1", "second"))
	require.NoError(t, p.EnqueueUserMessage("run-2", "other run"))

	msgs := p.DrainUserMessages("run-1")
	require.Len(t, msgs, 2)
	assert.Equal(t, "first", msgs[0].Message)
	assert.Equal(t, "second", msgs[1].Message)

	// Drained: queue is empty, other run untouched.
	assert.Empty(t, p.DrainUserMessages("run-1"))
	require.Len(t, p.DrainUserMessages("run-2"), 1)
}

func TestDrainUserMessagesDiscardsMalformed(t *testing.T) {
	p := testProject(t)

	require.NoError(t, p.EnqueueUserMessage("run-1", "good"))
	bad := p.dir + "/user-msg-run-1-0000000000000000000.json"
	require.NoError(t, writeRaw(bad, "{not json"))

	msgs := p.DrainUserMessages("run-1")
	require.Len(t, msgs, 1)
	assert.Equal(t, "good", msgs[0].Message)
	assert.NoFileExists(t, bad)
}

func TestContextCancelUnblocksPoll(t *testing.T) {
	p := testProject(t)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := p.AwaitAnswer(ctx, "run-1", time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
}
