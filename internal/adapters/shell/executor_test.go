package shell_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wandler/internal/adapters/shell"
	"go.trai.ch/wandler/internal/core/domain"
	"go.trai.ch/wandler/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestExecutor(t *testing.T) *shell.Executor {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return shell.NewExecutor(mockLogger).WithStdin(strings.NewReader(""))
}

func run(t *testing.T, executor *shell.Executor, command, dir string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	task := domain.Task{Name: "test", Command: command}
	err := executor.Execute(context.Background(), task, dir, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestExecutor_Execute_Success(t *testing.T) {
	executor := newTestExecutor(t)

	stdout, stderr, err := run(t, executor, `sh -c 'echo line1; echo line2'`, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", stdout)
	assert.Empty(t, stderr)
}

func TestExecutor_Execute_WorkingDirectory(t *testing.T) {
	executor := newTestExecutor(t)
	dir := t.TempDir()

	stdout, _, err := run(t, executor, "pwd", dir)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecutor_Execute_RelativeCommandResolvesInWorkDir(t *testing.T) {
	executor := newTestExecutor(t)
	dir := t.TempDir()
	script := "#!/bin/sh\necho from script\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "run.sh"), []byte(script), 0o700)) //nolint:gosec // test script

	stdout, _, err := run(t, executor, "./run.sh", dir)
	require.NoError(t, err)
	assert.Equal(t, "from script\n", stdout)
}

func TestExecutor_Execute_NoShellExpansion(t *testing.T) {
	executor := newTestExecutor(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o600))

	stdout, _, err := run(t, executor, `echo $HOME *.txt | wc`, dir)
	require.NoError(t, err)
	assert.Equal(t, "$HOME *.txt | wc\n", stdout)
}

func TestExecutor_Execute_Quoting(t *testing.T) {
	executor := newTestExecutor(t)

	stdout, _, err := run(t, executor, `printf '%s|' "a b" c 'd "e"' f\ g`, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, `a b|c|d "e"|f g|`, stdout)
}

func TestExecutor_Execute_StderrIsSeparate(t *testing.T) {
	executor := newTestExecutor(t)

	stdout, stderr, err := run(t, executor, `sh -c 'echo out; echo oops >&2'`, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "out\n", stdout)
	assert.Equal(t, "oops\n", stderr)
}

func TestExecutor_Execute_Stdin(t *testing.T) {
	executor := newTestExecutor(t).WithStdin(strings.NewReader("piped input"))

	stdout, _, err := run(t, executor, "cat", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "piped input", stdout)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	executor := newTestExecutor(t)

	stdout, _, err := run(t, executor, `sh -c 'echo partial; exit 3'`, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	assert.Contains(t, err.Error(), "task 'test' failed")
	assert.Contains(t, err.Error(), "exit status 3")

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())

	assert.Equal(t, "partial\n", stdout, "output produced before the failure is not withheld")
}

func TestExecutor_Execute_CommandNotFound(t *testing.T) {
	executor := newTestExecutor(t)

	_, _, err := run(t, executor, "wandler-definitely-not-a-command --flag", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestExecutor_Execute_MissingWorkDir(t *testing.T) {
	executor := newTestExecutor(t)

	_, _, err := run(t, executor, "true", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
}

func TestExecutor_Execute_InvalidSyntax(t *testing.T) {
	executor := newTestExecutor(t)

	_, _, err := run(t, executor, `echo 'unterminated`, t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	assert.Contains(t, err.Error(), "command is not valid shell syntax")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	executor := newTestExecutor(t)

	_, _, err := run(t, executor, "   ", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestExecutor_Execute_CanceledContext(t *testing.T) {
	executor := newTestExecutor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	task := domain.Task{Name: "sleep", Command: "sleep 5"}
	err := executor.Execute(ctx, task, t.TempDir(), io.Discard, io.Discard)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTaskExecutionFailed)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		command string
		want    []string
		wantErr bool
	}{
		{name: "single word", command: "pytest", want: []string{"pytest"}},
		{name: "whitespace", command: "  go   test\t./... ", want: []string{"go", "test", "./..."}},
		{name: "double quotes", command: `echo "hello world"`, want: []string{"echo", "hello world"}},
		{name: "single quotes keep backslashes", command: `echo 'a\b'`, want: []string{"echo", `a\b`}},
		{name: "escaped space", command: `ls my\ dir`, want: []string{"ls", "my dir"}},
		{name: "metacharacters stay literal", command: "echo a|b > c", want: []string{"echo", "a|b", ">", "c"}},
		{name: "unterminated single quote", command: "echo 'x", wantErr: true},
		{name: "unterminated double quote", command: `echo "x`, wantErr: true},
		{name: "trailing escape", command: `echo x\`, wantErr: true},
		{name: "blank", command: " \t ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shell.Split(tt.command)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
