package provider

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foremanhq/foreman/pkg/models"
)

// fakeAdapter is a configurable stub for registry tests.
type fakeAdapter struct {
	id        string
	caps      models.Capabilities
	models    []ModelInfo
	available bool
	reason    string

	detectCalls int
}

func (f *fakeAdapter) ID() string                        { return f.id }
func (f *fakeAdapter) Name() string                      { return "fake " + f.id }
func (f *fakeAdapter) Capabilities() models.Capabilities { return f.caps }
func (f *fakeAdapter) Models() []ModelInfo               { return f.models }

func (f *fakeAdapter) Detect(ctx context.Context) Availability {
	f.detectCalls++
	return Availability{Available: f.available, Reason: f.reason}
}

func (f *fakeAdapter) Execute(ctx context.Context, execCtx ExecutionContext) *ExecutionResult {
	return &ExecutionResult{Success: true, Output: "ok from " + f.id}
}

func fullCaps() models.Capabilities {
	return models.Capabilities{FileAccess: true, ShellAccess: true, ToolUse: true, SubAgents: true}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry(0)
	a := &fakeAdapter{id: "one", available: true, models: []ModelInfo{{ID: "m1"}}}
	require.NoError(t, r.Register(a))

	got, err := r.Get("one")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = r.Get("missing")
	assert.Error(t, err)

	err = r.Register(&fakeAdapter{id: "one"})
	assert.Error(t, err, "duplicate id must be rejected")
}

func TestRegistryResolveModelFirstRegistrationWins(t *testing.T) {
	r := NewRegistry(0)
	first := &fakeAdapter{id: "first", models: []ModelInfo{{ID: "shared"}}}
	second := &fakeAdapter{id: "second", models: []ModelInfo{{ID: "shared"}, {ID: "only-second"}}}
	require.NoError(t, r.Register(first))
	require.NoError(t, r.Register(second))

	got, err := r.ResolveModel("shared")
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID())

	got, err = r.ResolveModel("only-second")
	require.NoError(t, err)
	assert.Equal(t, "second", got.ID())

	_, err = r.ResolveModel("unknown")
	assert.Error(t, err)
}

func TestRegistryAvailabilityCaching(t *testing.T) {
	r := NewRegistry(time.Hour)
	a := &fakeAdapter{id: "one", available: true}
	require.NoError(t, r.Register(a))

	ctx := context.Background()
	av, err := r.Availability(ctx, "one", false)
	require.NoError(t, err)
	assert.True(t, av.Available)
	assert.Equal(t, 1, a.detectCalls)

	// Cached: no second Detect.
	_, err = r.Availability(ctx, "one", false)
	require.NoError(t, err)
	assert.Equal(t, 1, a.detectCalls)

	// Refresh forces detection.
	_, err = r.Availability(ctx, "one", true)
	require.NoError(t, err)
	assert.Equal(t, 2, a.detectCalls)
}

func TestRegistryAvailableProviders(t *testing.T) {
	r := NewRegistry(0)
	require.NoError(t, r.Register(&fakeAdapter{
		id: "up", available: true, caps: fullCaps(),
		models: []ModelInfo{{ID: "m1"}, {ID: "m2"}},
	}))
	require.NoError(t, r.Register(&fakeAdapter{
		id: "down", reason: "no credentials",
	}))

	infos := r.AvailableProviders(context.Background(), false)
	require.Len(t, infos, 2)
	assert.Equal(t, "up", infos[0].ID)
	assert.True(t, infos[0].Available)
	assert.Equal(t, []string{"m1", "m2"}, infos[0].Models)
	assert.False(t, infos[1].Available)
	assert.Equal(t, "no credentials", infos[1].UnavailableReason)
}

func TestRegistryCheapestAvailable(t *testing.T) {
	r := NewRegistry(0)
	require.NoError(t, r.Register(&fakeAdapter{
		id: "pricey", available: true,
		models: []ModelInfo{{ID: "big", InputPer1M: 15, OutputPer1M: 75}},
	}))
	require.NoError(t, r.Register(&fakeAdapter{
		id: "cheap", available: true,
		models: []ModelInfo{{ID: "small", InputPer1M: 0.25, OutputPer1M: 1.25}},
	}))
	require.NoError(t, r.Register(&fakeAdapter{
		id: "free-but-down",
		models: []ModelInfo{{ID: "zero"}},
	}))

	a, model, err := r.CheapestAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cheap", a.ID())
	assert.Equal(t, "small", model)
}

func TestRegistryBestAvailableUsesTier(t *testing.T) {
	r := NewRegistry(0)
	// CLI models are priced at zero, so price ordering would pick them for
	// "cheapest" but the tier decides "best".
	require.NoError(t, r.Register(&fakeAdapter{
		id: "cli", available: true, caps: fullCaps(),
		models: []ModelInfo{{ID: "alias", Tier: 3}},
	}))
	require.NoError(t, r.Register(&fakeAdapter{
		id: "api", available: true,
		models: []ModelInfo{{ID: "frontier", InputPer1M: 15, OutputPer1M: 75, Tier: 5}},
	}))

	a, model, err := r.BestAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "api", a.ID())
	assert.Equal(t, "frontier", model)
}

func TestRegistryNoProvidersAvailable(t *testing.T) {
	r := NewRegistry(0)
	require.NoError(t, r.Register(&fakeAdapter{id: "down", models: []ModelInfo{{ID: "m"}}}))

	_, _, err := r.CheapestAvailable(context.Background())
	assert.Error(t, err)
	_, _, err = r.BestAvailable(context.Background())
	assert.Error(t, err)
}

func TestFirstAcceptableFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("full caps required skips prompt-only", func(t *testing.T) {
		r := NewRegistry(0)
		require.NoError(t, r.Register(&fakeAdapter{id: "prompt-only", available: true}))
		require.NoError(t, r.Register(&fakeAdapter{id: "full", available: true, caps: fullCaps()}))

		a, err := r.FirstAcceptableFallback(ctx, true, nil)
		require.NoError(t, err)
		assert.Equal(t, "full", a.ID())
	})

	t.Run("no caps required takes first available", func(t *testing.T) {
		r := NewRegistry(0)
		require.NoError(t, r.Register(&fakeAdapter{id: "prompt-only", available: true}))
		require.NoError(t, r.Register(&fakeAdapter{id: "full", available: true, caps: fullCaps()}))

		a, err := r.FirstAcceptableFallback(ctx, false, nil)
		require.NoError(t, err)
		assert.Equal(t, "prompt-only", a.ID())
	})

	t.Run("exclusions respected", func(t *testing.T) {
		r := NewRegistry(0)
		require.NoError(t, r.Register(&fakeAdapter{id: "a", available: true, caps: fullCaps()}))
		require.NoError(t, r.Register(&fakeAdapter{id: "b", available: true, caps: fullCaps()}))

		a, err := r.FirstAcceptableFallback(ctx, true, map[string]bool{"a": true})
		require.NoError(t, err)
		assert.Equal(t, "b", a.ID())
	})

	t.Run("nothing acceptable", func(t *testing.T) {
		r := NewRegistry(0)
		require.NoError(t, r.Register(&fakeAdapter{id: "prompt-only", available: true}))

		_, err := r.FirstAcceptableFallback(ctx, true, nil)
		assert.Error(t, err)
	})
}

func TestDefaultModelAndSupportsModel(t *testing.T) {
	a := &fakeAdapter{id: "one", models: []ModelInfo{{ID: "first"}, {ID: "second"}}}
	assert.Equal(t, "first", DefaultModel(a))
	assert.True(t, SupportsModel(a, "second"))
	assert.False(t, SupportsModel(a, "third"))

	empty := &fakeAdapter{id: "none"}
	assert.Equal(t, "", DefaultModel(empty))
}
