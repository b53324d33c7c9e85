package adapter

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKeyboardConfig() config.Keyboard {
	return config.Keyboard{
		Display: ":99",
		Tool:    "xdotool",
		Shell:   "sh",
		Timeout: time.Second,
	}
}

// recordingRunner captures the last invocation and returns the canned result.
type recordingRunner struct {
	name  string
	args  []string
	calls int

	out []byte
	err error
}

func (r *recordingRunner) run(_ context.Context, name string, args ...string) ([]byte, error) {
	r.calls++
	r.name = name
	r.args = args
	return r.out, r.err
}

func TestEscapeDoubleQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `hello`, want: `hello`},
		{in: `say "hi"`, want: `say \"hi\"`},
		{in: `""`, want: `\"\"`},
		{in: `it's`, want: `it's`},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeDoubleQuotes(tt.in))
	}
}

func TestBuildTypeCommand(t *testing.T) {
	got := BuildTypeCommand(":99", "xdotool", `say "hi"`)

	assert.Equal(t, `DISPLAY=:99 xdotool type "say \"hi\""`, got)
}

func TestTypeText_InvokesShell(t *testing.T) {
	runner := &recordingRunner{}
	inj := NewKeystrokeInjectorWithRunner(testKeyboardConfig(), runner.run)

	err := inj.TypeText(context.Background(), `say "hi"`)

	require.NoError(t, err)
	assert.Equal(t, 1, runner.calls)
	assert.Equal(t, "sh", runner.name)
	assert.Equal(t, []string{"-c", `DISPLAY=:99 xdotool type "say \"hi\""`}, runner.args)
}

func TestTypeText_FailureCarriesOutputButNotText(t *testing.T) {
	runner := &recordingRunner{
		out: []byte("Can't open display: :99\n"),
		err: errors.New("exit status 1"),
	}
	inj := NewKeystrokeInjectorWithRunner(testKeyboardConfig(), runner.run)

	err := inj.TypeText(context.Background(), "secret-password")

	require.ErrorIs(t, err, ErrKeystrokeFailed)
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.Error(), "Can't open display: :99")
	assert.NotContains(t, err.Error(), "secret-password")
}

func TestTypeText_FailureWithoutOutput(t *testing.T) {
	runner := &recordingRunner{err: errors.New("exec: \"sh\": executable file not found in $PATH")}
	inj := NewKeystrokeInjectorWithRunner(testKeyboardConfig(), runner.run)

	err := inj.TypeText(context.Background(), "x")

	require.ErrorIs(t, err, ErrKeystrokeFailed)
	assert.Contains(t, err.Error(), "executable file not found")
}

func TestTypeText_Timeout(t *testing.T) {
	cfg := testKeyboardConfig()
	cfg.Timeout = 20 * time.Millisecond

	var deadlineSet bool
	blocking := func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
		_, deadlineSet = ctx.Deadline()
		<-ctx.Done()
		return nil, errors.New("signal: killed")
	}
	inj := NewKeystrokeInjectorWithRunner(cfg, blocking)

	err := inj.TypeText(context.Background(), "x")

	assert.True(t, deadlineSet)
	require.ErrorIs(t, err, ErrKeystrokeTimeout)
	assert.NotErrorIs(t, err, ErrKeystrokeFailed)
}

func TestTypeText_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	blocking := func(ctx context.Context, _ string, _ ...string) ([]byte, error) {
		cancel()
		<-ctx.Done()
		return nil, errors.New("signal: killed")
	}
	inj := NewKeystrokeInjectorWithRunner(testKeyboardConfig(), blocking)

	err := inj.TypeText(ctx, "x")

	require.ErrorIs(t, err, ErrKeystrokeFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestTypeText_RealShellSuccess(t *testing.T) {
	requireShell(t)
	cfg := testKeyboardConfig()
	cfg.Tool = "true"

	err := NewKeystrokeInjector(cfg).TypeText(context.Background(), `say "hi"`)

	assert.NoError(t, err)
}

func TestTypeText_RealShellNonZeroExit(t *testing.T) {
	requireShell(t)
	cfg := testKeyboardConfig()
	cfg.Tool = "false"

	err := NewKeystrokeInjector(cfg).TypeText(context.Background(), "hello")

	require.ErrorIs(t, err, ErrKeystrokeFailed)
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestTypeText_RealShellKilledOnTimeout(t *testing.T) {
	requireShell(t)
	cfg := testKeyboardConfig()
	cfg.Tool = "sleep 5;"
	cfg.Timeout = 50 * time.Millisecond

	start := time.Now()
	err := NewKeystrokeInjector(cfg).TypeText(context.Background(), "x")

	require.ErrorIs(t, err, ErrKeystrokeTimeout)
	assert.Less(t, time.Since(start), 4*time.Second)
}
