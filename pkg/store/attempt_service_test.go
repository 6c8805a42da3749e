package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
	testdb "github.com/foremanhq/foreman/test/database"
)

func TestAttemptService_CreateAndList(t *testing.T) {
	client := testdb.NewTestClient(t)
	runs := NewRunService(client.Client)
	service := NewAttemptService(client.Client)
	ctx := context.Background()

	run := newTestRun(t, runs, "acme-site")

	_, err := service.CreateAgentRun(ctx, models.CreateAgentRunRequest{
		RunID:        run.ID,
		GraphTaskID:  "t1",
		Agent:        "engineer",
		Role:         "implement",
		Provider:     "claude-cli",
		Model:        "sonnet",
		Attempt:      1,
		Success:      false,
		Input:        "## Task t1: Fix redirect",
		ErrorMessage: "rate limited",
		ErrorKind:    "transient",
		DurationMs:   1200,
		CostUSD:      0.03,
	})
	require.NoError(t, err)

	_, err = service.CreateAgentRun(ctx, models.CreateAgentRunRequest{
		RunID:       run.ID,
		GraphTaskID: "t1",
		Agent:       "engineer",
		Role:        "implement",
		Provider:    "claude-cli",
		Model:       "sonnet",
		Attempt:     2,
		Success:     true,
		Output:      "patched and verified",
		DurationMs:  8400,
		CostUSD:     0.11,
	})
	require.NoError(t, err)

	attempts, err := service.ListAttempts(ctx, run.ID, "t1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.False(t, attempts[0].Success)
	assert.Equal(t, "transient", attempts[0].ErrorKind)
	require.NotNil(t, attempts[0].ErrorMessage)
	assert.Equal(t, "rate limited", *attempts[0].ErrorMessage)
	assert.True(t, attempts[1].Success)
	assert.Equal(t, 2, attempts[1].Attempt)

	// Attempts for other tasks stay out of the listing.
	empty, err := service.ListAttempts(ctx, run.ID, "t2")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestAttemptService_ValidatesRunID(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewAttemptService(client.Client)

	var verr *ValidationError
	_, err := service.CreateAgentRun(context.Background(), models.CreateAgentRunRequest{GraphTaskID: "t1"})
	require.Error(t, err)
	assert.ErrorAs(t, err, &verr)
}
