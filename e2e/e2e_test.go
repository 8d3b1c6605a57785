//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.trai.ch/cdb/internal/adapters/report"
	"go.trai.ch/cdb/internal/core/domain"
)

var cdbBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "cdb-e2e-*")
	if err != nil {
		panic(err)
	}

	cdbBinary = filepath.Join(tmpDir, "cdb")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", cdbBinary, "./cmd/cdb")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build cdb binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"report": cmdReport,
		},
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(cdbBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)

	return nil
}

// cmdReport writes a report file as the preload library would.
//
//	report <file> <directory> <program> [args...]
func cmdReport(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("unsupported: ! report")
	}
	if len(args) < 3 {
		ts.Fatalf("usage: report file directory program [args...]")
	}

	inv, err := domain.NewRawInvocation(args[2:], args[1])
	ts.Check(err)
	inv.PID = "1000"
	inv.PPID = "1"
	inv.Function = "execve"

	path := ts.MkAbs(args[0])
	ts.Check(os.MkdirAll(filepath.Dir(path), 0o750))
	ts.Check(os.WriteFile(path, []byte(report.Format(inv)), 0o600))
}
