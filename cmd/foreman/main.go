// Foreman pipeline worker — loads one pipeline run, drives the PM decision
// loop to termination, and serves the worker's own status API.
//
// The front end creates the PipelineRun record (with the initial task
// graph) and spawns this process; crossing back happens through the
// database and the file gates.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/foremanhq/foreman/pkg/api"
	"github.com/foremanhq/foreman/pkg/cleanup"
	"github.com/foremanhq/foreman/pkg/config"
	"github.com/foremanhq/foreman/pkg/database"
	"github.com/foremanhq/foreman/pkg/gates"
	"github.com/foremanhq/foreman/pkg/graph"
	"github.com/foremanhq/foreman/pkg/loop"
	"github.com/foremanhq/foreman/pkg/masking"
	"github.com/foremanhq/foreman/pkg/models"
	"github.com/foremanhq/foreman/pkg/provider"
	"github.com/foremanhq/foreman/pkg/runner"
	"github.com/foremanhq/foreman/pkg/store"
	"github.com/foremanhq/foreman/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	os.Exit(run())
}

func run() int {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	runID := flag.String("run-id", "", "Pipeline run to drive (required)")
	resume := flag.Bool("resume", false,
		"Resume an interrupted run instead of starting from the plan gate")
	workDir := flag.String("workdir", "",
		"Project working directory (default: <workspace>/<project-id>)")
	flag.Parse()

	if *runID == "" {
		fmt.Fprintln(os.Stderr, "foreman: -run-id is required")
		return 2
	}

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	slog.Info("Starting foreman worker",
		"version", version.Full(),
		"run_id", *runID,
		"resume", *resume,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		return 1
	}

	// 2. Database + store
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		return 1
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		return 1
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	st := store.New(dbClient.Client)

	// 3. Load the run record and its graph
	runRec, err := st.Runs.GetRun(ctx, *runID)
	if err != nil {
		slog.Error("Failed to load pipeline run", "run_id", *runID, "error", err)
		return 1
	}
	g, err := graph.Parse(runRec.GraphJSON)
	if err != nil {
		slog.Error("Pipeline run has no usable task graph", "run_id", *runID, "error", err)
		return 1
	}

	// 4. File gates for this project
	gate, err := gates.NewProject(runRec.ProjectID)
	if err != nil {
		slog.Error("Failed to prepare project gate directory", "error", err)
		return 1
	}
	if err := gate.WritePID(os.Getpid()); err != nil {
		slog.Warn("Failed to record worker pid", "error", err)
	}

	// 5. Provider adapters
	registry, err := buildProviderRegistry(cfg)
	if err != nil {
		slog.Error("Failed to build provider registry", "error", err)
		return 1
	}

	// 6. Agent runner
	installRoot := ""
	if exe, err := os.Executable(); err == nil {
		installRoot = filepath.Dir(exe)
	}
	agentRunner := runner.New(cfg, registry, st, installRoot)

	// 7. PM client, preferring the project-manager agent's own settings
	pmProvider, pmModel := cfg.Defaults.Provider, cfg.Defaults.Model
	if pmCfg, err := cfg.GetAgent("project-manager"); err == nil {
		if pmCfg.Provider != "" {
			pmProvider = pmCfg.Provider
		}
		if pmCfg.Model != "" {
			pmModel = pmCfg.Model
		}
	}
	pm := loop.NewRegistryPM(registry, pmProvider, pmModel)

	// 8. Decision loop
	lp := loop.New(*cfg.Loop, cfg.AgentRegistry.Definitions(), agentRunner, pm, st, gate)
	lp.SetMasker(masking.NewService())

	opts := loop.Options{
		RunID:      *runID,
		ProjectID:  runRec.ProjectID,
		Request:    runRec.Request,
		WorkingDir: resolveWorkDir(*workDir, cfg, runRec.ProjectID),
		Graph:      g,
	}
	if *resume {
		opts.Resume = &models.Trigger{
			Kind:           models.TriggerPipelineResumed,
			InterruptedIDs: g.WithStatus(models.TaskStatusRunning),
			FailedIDs:      g.WithStatus(models.TaskStatusFailed),
		}
	}

	// 9. Background retention
	retention := cleanup.NewService(cfg.Retention, st.Runs, st.Events)
	retention.Start(ctx)
	defer retention.Stop()

	// 10. Supervision: the run itself, the status API, and signal handling
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, egCtx := errgroup.WithContext(runCtx)

	apiServer := api.NewServer(st.Runs, dbClient, gate)
	if addr := cfg.Worker.ListenAddr; addr != "" {
		eg.Go(func() error {
			slog.Info("Status API listening", "addr", addr)
			return apiServer.Start(addr)
		})
		eg.Go(func() error {
			<-egCtx.Done()
			shutdownCtx, sc := context.WithTimeout(context.Background(), 5*time.Second)
			defer sc()
			return apiServer.Shutdown(shutdownCtx)
		})
	}

	// Signals translate into the abort gate so the loop checkpoints the
	// run as aborted instead of dying mid-cycle.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	eg.Go(func() error {
		select {
		case sig := <-sigCh:
			slog.Info("Shutdown signal received, requesting abort", "signal", sig)
			if err := gate.RequestAbort(); err != nil {
				slog.Error("Failed to write abort flag", "error", err)
			}
		case <-egCtx.Done():
		}
		return nil
	})

	var result *loop.Result
	eg.Go(func() error {
		defer cancel()
		var runErr error
		result, runErr = lp.Run(egCtx, opts)
		return runErr
	})

	if err := eg.Wait(); err != nil {
		slog.Error("Worker failed", "run_id", *runID, "error", err)
		return 1
	}

	slog.Info("Run finished",
		"run_id", *runID,
		"status", result.Status,
		"decisions", result.Decisions,
		"spent_usd", result.SpentUSD)
	return 0
}

// resolveWorkDir picks the directory agent executions run in: explicit
// flag, then <workspace>/<projectID>, then a per-project temp directory.
func resolveWorkDir(flagValue string, cfg *config.Config, projectID string) string {
	dir := flagValue
	if dir == "" {
		workspace := cfg.Defaults.Workspace
		if workspace == "" {
			workspace = filepath.Join(os.TempDir(), "foreman-workspaces")
		}
		dir = filepath.Join(workspace, projectID)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Warn("Failed to create working directory", "dir", dir, "error", err)
	}
	return dir
}

// buildProviderRegistry constructs live adapters from provider settings.
// Disabled entries stay out; a config entry whose section is missing for
// its declared type is an error.
func buildProviderRegistry(cfg *config.Config) (*provider.Registry, error) {
	registry := provider.NewRegistry(cfg.Loop.DetectCacheTTL)

	for name, pc := range cfg.ProviderRegistry.GetAll() {
		if !pc.IsEnabled() {
			continue
		}

		var adapter provider.Adapter
		switch pc.Type {
		case config.ProviderTypeClaudeCLI:
			if pc.ClaudeCLI == nil {
				return nil, fmt.Errorf("provider %s: missing claude_cli section", name)
			}
			adapter = provider.NewClaudeCLIAdapter(*pc.ClaudeCLI)
		case config.ProviderTypeAnthropic:
			if pc.Anthropic == nil {
				return nil, fmt.Errorf("provider %s: missing anthropic section", name)
			}
			adapter = provider.NewAnthropicAdapter(*pc.Anthropic)
		case config.ProviderTypeOpenAIPool:
			if pc.OpenAIPool == nil {
				return nil, fmt.Errorf("provider %s: missing openai_pool section", name)
			}
			adapter = provider.NewOpenAIPoolAdapter(*pc.OpenAIPool, nil)
		case config.ProviderTypeModelServer:
			if pc.ModelServer == nil {
				return nil, fmt.Errorf("provider %s: missing model_server section", name)
			}
			grpcAdapter, err := provider.NewGRPCAdapter(*pc.ModelServer)
			if err != nil {
				return nil, fmt.Errorf("provider %s: %w", name, err)
			}
			adapter = grpcAdapter
		default:
			return nil, fmt.Errorf("provider %s: unknown type %q", name, pc.Type)
		}

		if err := registry.Register(adapter); err != nil {
			return nil, fmt.Errorf("provider %s: %w", name, err)
		}
	}

	return registry, nil
}
