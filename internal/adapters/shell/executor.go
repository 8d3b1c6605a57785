// Package shell provides the executor that runs the intercepted build.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"go.trai.ch/cdb/internal/adapters/detector"
	"go.trai.ch/cdb/internal/core/domain"
	"go.trai.ch/cdb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Process represents a running build.
type Process interface {
	Wait() error
	Resize(rows, cols int) error
}

type ptyProcess struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	ioDone <-chan struct{}
}

func (p *ptyProcess) Wait() error {
	err := p.cmd.Wait()

	// Wait for the IO copy loop to drain what the build wrote before it exited.
	<-p.ioDone

	return err
}

func (p *ptyProcess) Resize(rows, cols int) error {
	if rows > math.MaxUint16 || cols > math.MaxUint16 || rows < 0 || cols < 0 {
		return errors.New("terminal size out of bounds")
	}

	return pty.Setsize(p.ptmx, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
}

type pipeProcess struct {
	cmd *exec.Cmd
}

func (p *pipeProcess) Wait() error {
	return p.cmd.Wait()
}

func (p *pipeProcess) Resize(_, _ int) error {
	return nil
}

// Executor implements ports.Executor using os/exec and, on terminals, a pty.
type Executor struct {
	logger ports.Logger
	mode   func(io.Writer) detector.TerminalMode
}

// Option configures an Executor.
type Option func(*Executor)

// WithTerminalMode fixes the terminal mode instead of detecting it from stdout.
func WithTerminalMode(mode detector.TerminalMode) Option {
	return func(e *Executor) {
		e.mode = func(io.Writer) detector.TerminalMode { return mode }
	}
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger: logger,
		mode:   detector.Resolve,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start launches argv in a PTY when stdout is a terminal, or with plain pipes otherwise.
// It returns a Process to control and wait for the build.
func (e *Executor) Start(
	ctx context.Context,
	argv, env []string,
	dir string,
	stdout, stderr io.Writer,
) (Process, error) {
	if len(argv) == 0 {
		return nil, domain.ErrNoBuildCommand
	}

	name := argv[0]

	// Resolve the executable against the PATH the build will see.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, argv[1:]...) //nolint:gosec // user provided command
	cmd.Args[0] = name
	cmd.Dir = dir
	cmd.Env = env

	mode := e.mode(stdout)
	e.logger.Debug(fmt.Sprintf("running %s in %s mode", name, mode))

	if mode == detector.ModePTY {
		return startPTY(cmd, name, stdout)
	}

	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if err := cmd.Start(); err != nil {
		return nil, startError(err, name)
	}
	return &pipeProcess{cmd: cmd}, nil
}

func startPTY(cmd *exec.Cmd, name string, stdout io.Writer) (Process, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, startError(err, name)
	}

	if tty, ok := stdout.(*os.File); ok {
		// Not every writer that looks like a terminal has a size; keep the default then.
		_ = pty.InheritSize(tty, ptmx)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()

		// The PTY merges stdout and stderr into one stream.
		_, _ = io.Copy(stdout, ptmx)
	}()

	return &ptyProcess{
		cmd:    cmd,
		ptmx:   ptmx,
		ioDone: ioDone,
	}, nil
}

// Execute runs the build and waits for it to complete.
// A build that exits non-zero yields a *domain.BuildFailure carrying its exit code.
func (e *Executor) Execute(ctx context.Context, argv, env []string, dir string, stdout, stderr io.Writer) error {
	proc, err := e.Start(ctx, argv, env, dir, stdout, stderr)
	if err != nil {
		return err
	}

	if err := proc.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &domain.BuildFailure{ExitCode: exitCode(exitErr)}
		}
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "command", argv[0])
	}

	return nil
}

// exitCode follows the shell convention of 128+N for a build killed by signal N.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return 128 + int(status.Signal())
	}
	return exitErr.ExitCode()
}

func startError(err error, name string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrBuildStartFailed.Error()), "command", name)
}

// lookPath searches for an executable in the directories named by the PATH in env.
func lookPath(file string, env []string) (string, error) {
	if strings.ContainsRune(file, filepath.Separator) {
		return file, findExecutable(file)
	}

	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
