package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/foremanhq/foreman/pkg/models"
)

// Registry maps adapter ids and model names to adapters, and caches
// availability detection results. Adapters are registered once at startup;
// lookups return borrowed references.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
	byModel  map[string]string // model id → adapter id
	order    []string          // registration order, for deterministic scans

	detected   map[string]Availability
	detectedAt time.Time
	cacheTTL   time.Duration
}

// NewRegistry creates an empty registry. Detection results are cached for
// cacheTTL; pass 0 for the 5-minute default.
func NewRegistry(cacheTTL time.Duration) *Registry {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Registry{
		adapters: make(map[string]Adapter),
		byModel:  make(map[string]string),
		detected: make(map[string]Availability),
		cacheTTL: cacheTTL,
	}
}

// Register adds an adapter. Model mappings are first-registration-wins so a
// model alias shared by two adapters resolves to the earlier registration.
func (r *Registry) Register(a Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := a.ID()
	if _, exists := r.adapters[id]; exists {
		return fmt.Errorf("provider %q already registered", id)
	}
	r.adapters[id] = a
	r.order = append(r.order, id)
	for _, m := range a.Models() {
		if _, taken := r.byModel[m.ID]; !taken {
			r.byModel[m.ID] = id
		}
	}
	return nil
}

// Get returns the adapter registered under id.
func (r *Registry) Get(id string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[id]
	if !ok {
		return nil, fmt.Errorf("provider %q not registered", id)
	}
	return a, nil
}

// ResolveModel returns the adapter that declares the given model id.
func (r *Registry) ResolveModel(model string) (Adapter, error) {
	r.mu.RLock()
	id, ok := r.byModel[model]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no provider declares model %q", model)
	}
	return r.Get(id)
}

// IDs returns adapter ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Availability returns the cached detection result for id, running Detect
// if the cache is cold or refresh is set.
func (r *Registry) Availability(ctx context.Context, id string, refresh bool) (Availability, error) {
	r.mu.RLock()
	a, ok := r.adapters[id]
	cached, haveCached := r.detected[id]
	fresh := time.Since(r.detectedAt) < r.cacheTTL
	r.mu.RUnlock()
	if !ok {
		return Availability{}, fmt.Errorf("provider %q not registered", id)
	}
	if haveCached && fresh && !refresh {
		return cached, nil
	}

	av := a.Detect(ctx)
	r.mu.Lock()
	r.detected[id] = av
	r.detectedAt = time.Now()
	r.mu.Unlock()
	return av, nil
}

// AvailableProviders returns info records for every registered adapter,
// scanning (and caching) availability. Order follows registration order.
func (r *Registry) AvailableProviders(ctx context.Context, refresh bool) []models.ProviderInfo {
	infos := make([]models.ProviderInfo, 0, len(r.IDs()))
	for _, id := range r.IDs() {
		a, err := r.Get(id)
		if err != nil {
			continue
		}
		av, err := r.Availability(ctx, id, refresh)
		if err != nil {
			continue
		}
		ms := a.Models()
		modelIDs := make([]string, len(ms))
		for i, m := range ms {
			modelIDs[i] = m.ID
		}
		infos = append(infos, models.ProviderInfo{
			ID:                id,
			Name:              a.Name(),
			Available:         av.Available,
			UnavailableReason: av.Reason,
			Models:            modelIDs,
			Capabilities:      a.Capabilities(),
		})
	}
	return infos
}

// CheapestAvailable picks the available adapter/model with the lowest
// combined per-million-token price. Ties break by registration order, then
// by model id.
func (r *Registry) CheapestAvailable(ctx context.Context) (Adapter, string, error) {
	var (
		best      Adapter
		bestModel string
		bestPrice float64
		found     bool
	)
	for _, id := range r.IDs() {
		a, _ := r.Get(id)
		av, err := r.Availability(ctx, id, false)
		if err != nil || !av.Available {
			continue
		}
		ms := append([]ModelInfo(nil), a.Models()...)
		sort.Slice(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID })
		for _, m := range ms {
			price := m.InputPer1M + m.OutputPer1M
			if !found || price < bestPrice {
				best, bestModel, bestPrice, found = a, m.ID, price, true
			}
		}
	}
	if !found {
		return nil, "", fmt.Errorf("no providers available")
	}
	return best, bestModel, nil
}

// BestAvailable picks the available adapter/model with the highest declared
// capability tier. CLI alias models are priced at zero, so price-based
// ranking would be degenerate; the tier is configured per model instead.
func (r *Registry) BestAvailable(ctx context.Context) (Adapter, string, error) {
	var (
		best      Adapter
		bestModel string
		bestTier  int
		found     bool
	)
	for _, id := range r.IDs() {
		a, _ := r.Get(id)
		av, err := r.Availability(ctx, id, false)
		if err != nil || !av.Available {
			continue
		}
		ms := append([]ModelInfo(nil), a.Models()...)
		sort.Slice(ms, func(i, j int) bool { return ms[i].ID < ms[j].ID })
		for _, m := range ms {
			if !found || m.Tier > bestTier {
				best, bestModel, bestTier, found = a, m.ID, m.Tier, true
			}
		}
	}
	if !found {
		return nil, "", fmt.Errorf("no providers available")
	}
	return best, bestModel, nil
}

// FirstAcceptableFallback returns the first available adapter, in
// registration order, that is acceptable for an agent with the given
// capability requirements: either the adapter
// exposes both file access and tool use, or the agent requires no
// full-capability tags. exclude names adapter ids to skip.
func (r *Registry) FirstAcceptableFallback(ctx context.Context, requiresFullCaps bool, exclude map[string]bool) (Adapter, error) {
	for _, id := range r.IDs() {
		if exclude[id] {
			continue
		}
		a, _ := r.Get(id)
		av, err := r.Availability(ctx, id, false)
		if err != nil || !av.Available {
			continue
		}
		caps := a.Capabilities()
		if requiresFullCaps && !(caps.FileAccess && caps.ToolUse) {
			continue
		}
		return a, nil
	}
	return nil, fmt.Errorf("no acceptable fallback provider available")
}
