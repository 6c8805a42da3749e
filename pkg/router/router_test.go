package router

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
)

func TestExtractSingleMessage(t *testing.T) {
	output := `I finished the schema.
[AGENT_MESSAGE]{"to":"pm","type":"flag","message":"migration needs review"}[/AGENT_MESSAGE]
Moving on.`

	msgs, stripped := Extract("backend-dev", "t3", output)
	require.Len(t, msgs, 1)
	assert.Equal(t, "backend-dev", msgs[0].From)
	assert.Equal(t, "pm", msgs[0].To)
	assert.Equal(t, models.MessageTypeFlag, msgs[0].Type)
	assert.Equal(t, "migration needs review", msgs[0].Message)
	assert.Equal(t, "t3", msgs[0].TaskID)

	assert.NotContains(t, stripped, "[AGENT_MESSAGE]")
	assert.Contains(t, stripped, "I finished the schema.")
	assert.Contains(t, stripped, "Moving on.")
}

func TestExtractMultipleAndNestedBraces(t *testing.T) {
	output := `[AGENT_MESSAGE]{"to":"qa","type":"handoff","message":"run {integration} suite"}[/AGENT_MESSAGE]` +
		"\nbetween\n" +
		`[AGENT_MESSAGE]{"to":"pm","type":"question","message":"which env?"}[/AGENT_MESSAGE]`

	msgs, stripped := Extract("dev", "t1", output)
	require.Len(t, msgs, 2)
	assert.Equal(t, "qa", msgs[0].To)
	assert.Equal(t, "run {integration} suite", msgs[0].Message)
	assert.Equal(t, "pm", msgs[1].To)
	assert.Equal(t, "between", stripped)
}

func TestExtractSkipsInvalid(t *testing.T) {
	output := `[AGENT_MESSAGE]{"to":"","type":"flag","message":"no recipient"}[/AGENT_MESSAGE]
[AGENT_MESSAGE]{"to":"pm","type":"nonsense","message":"bad type"}[/AGENT_MESSAGE]
[AGENT_MESSAGE]{not json at all}[/AGENT_MESSAGE]
[AGENT_MESSAGE]{"to":"pm","type":"flag","message":"ok"}[/AGENT_MESSAGE]`

	msgs, stripped := Extract("dev", "t1", output)
	require.Len(t, msgs, 1)
	assert.Equal(t, "ok", msgs[0].Message)
	// Invalid envelopes are still stripped.
	assert.NotContains(t, stripped, "AGENT_MESSAGE")
}

func TestExtractNoMessages(t *testing.T) {
	msgs, stripped := Extract("dev", "t1", "plain output")
	assert.Nil(t, msgs)
	assert.Equal(t, "plain output", stripped)
}

// Stripped text plus the extracted messages carry everything the original
// output did, modulo envelope whitespace.
func TestExtractStripLaw(t *testing.T) {
	body := "one {brace} deep"
	output := fmt.Sprintf(`prefix text
[AGENT_MESSAGE]{"to":"pm","type":"suggestion","message":"%s"}[/AGENT_MESSAGE]
suffix text`, body)

	msgs, stripped := Extract("dev", "t1", output)
	require.Len(t, msgs, 1)
	assert.Contains(t, stripped, "prefix text")
	assert.Contains(t, stripped, "suffix text")
	assert.Equal(t, body, msgs[0].Message)
	assert.Equal(t, "prefix text\n\nsuffix text", stripped)
}

func TestRouterRouting(t *testing.T) {
	var persisted []models.AgentMessage
	r := New(WithPersist(func(m models.AgentMessage) { persisted = append(persisted, m) }))

	out := r.ProcessOutput("dev", "t1", `done
[AGENT_MESSAGE]{"to":"pm","type":"flag","message":"for the pm"}[/AGENT_MESSAGE]
[AGENT_MESSAGE]{"to":"qa","type":"handoff","message":"for qa"}[/AGENT_MESSAGE]`)

	assert.Equal(t, "done", out)
	assert.Len(t, persisted, 2)

	pm := r.DrainPM()
	require.Len(t, pm, 1)
	assert.Equal(t, "for the pm", pm[0].Message)
	assert.Empty(t, r.DrainPM(), "drain clears the accumulator")

	recent := r.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, "qa", recent[0].To)
}

func TestRouterRecentFor(t *testing.T) {
	r := New()
	r.Route(models.AgentMessage{From: "a", To: "qa", Type: models.MessageTypeFlag, Message: "m1"})
	r.Route(models.AgentMessage{From: "b", To: "all", Type: models.MessageTypeFlag, Message: "m2"})
	r.Route(models.AgentMessage{From: "c", To: "dev", Type: models.MessageTypeFlag, Message: "m3"})

	got := r.RecentFor("qa")
	require.Len(t, got, 2)
	assert.Equal(t, "m1", got[0].Message)
	assert.Equal(t, "m2", got[1].Message)
}

func TestRouterWindowBound(t *testing.T) {
	r := New(WithWindow(3))
	for i := 0; i < 10; i++ {
		r.Route(models.AgentMessage{
			From: "a", To: "b", Type: models.MessageTypeFlag,
			Message: fmt.Sprintf("m%d", i),
		})
	}
	recent := r.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "m7", recent[0].Message)
	assert.Equal(t, "m9", recent[2].Message)
}

func TestRouterPMCaseInsensitive(t *testing.T) {
	r := New()
	r.Route(models.AgentMessage{From: "a", To: "PM", Type: models.MessageTypeEscalate, Message: "urgent"})
	require.Len(t, r.DrainPM(), 1)
	assert.Empty(t, r.Recent())
}

func TestProcessOutputLeavesPlainTextAlone(t *testing.T) {
	r := New()
	text := strings.Repeat("line\n", 5)
	assert.Equal(t, text, r.ProcessOutput("dev", "t1", text))
}
