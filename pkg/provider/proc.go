package provider

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// procConfig describes how to spawn a managed CLI subprocess.
type procConfig struct {
	Command    string
	Args       []string
	Env        map[string]string
	WorkingDir string
}

// proc manages the lifecycle of one CLI subprocess. The child is placed in
// its own process group so Stop can take down descendants too.
type proc struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdout io.ReadCloser
	done   chan struct{}
	err    error
	pgid   int
}

// killGrace is how long Stop waits after SIGTERM before sending SIGKILL.
const killGrace = 5 * time.Second

func startProc(ctx context.Context, cfg procConfig) (*proc, error) {
	cmd := exec.CommandContext(ctx, cfg.Command, cfg.Args...)
	if cfg.WorkingDir != "" {
		cmd.Dir = cfg.WorkingDir
	}
	if len(cfg.Env) > 0 {
		env := append([]string{}, os.Environ()...)
		for k, v := range cfg.Env {
			env = append(env, fmt.Sprintf("%s=%s", k, v))
		}
		cmd.Env = env
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	cmd.Stderr = cmd.Stdout // interleave; the stream parser skips non-JSON lines
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start subprocess: %w", err)
	}

	p := &proc{
		cmd:    cmd,
		stdout: stdout,
		done:   make(chan struct{}),
	}
	if cmd.Process != nil {
		p.pgid, _ = syscall.Getpgid(cmd.Process.Pid)
	}

	go func() {
		err := cmd.Wait()
		p.mu.Lock()
		p.err = err
		p.mu.Unlock()
		close(p.done)
	}()

	return p, nil
}

func (p *proc) Stdout() io.Reader { return p.stdout }

// Wait blocks until the subprocess exits and returns its exit error.
func (p *proc) Wait() error {
	<-p.done
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Stop sends SIGTERM to the process group, escalating to SIGKILL after the
// grace period.
func (p *proc) Stop() {
	p.mu.Lock()
	cmd := p.cmd
	pgid := p.pgid
	p.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}
	if pgid == 0 {
		pgid = cmd.Process.Pid
	}
	_ = syscall.Kill(-pgid, syscall.SIGTERM)

	select {
	case <-p.done:
	case <-time.After(killGrace):
		_ = syscall.Kill(-pgid, syscall.SIGKILL)
	}
}

// Kill sends SIGKILL to the process group immediately.
func (p *proc) Kill() {
	p.mu.Lock()
	cmd := p.cmd
	pgid := p.pgid
	p.mu.Unlock()

	if cmd == nil || cmd.Process == nil {
		return
	}
	if pgid == 0 {
		pgid = cmd.Process.Pid
	}
	_ = syscall.Kill(-pgid, syscall.SIGKILL)
}
