package adapter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/MKhiriev/mailspring-api/internal/config"
	"github.com/MKhiriev/mailspring-api/internal/logger"
)

// waitDelay bounds how long Wait keeps draining output after the typing tool
// was killed, in case a grandchild still holds the pipe open.
const waitDelay = 2 * time.Second

// CommandRunner starts name with args, waits for it and returns its combined
// output. The process must be killed when ctx is done.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner is the [CommandRunner] backed by os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	return cmd.CombinedOutput()
}

type shellKeystrokeInjector struct {
	shell   string
	display string
	tool    string
	timeout time.Duration

	run CommandRunner
}

// NewKeystrokeInjector returns a [KeystrokeInjector] running
// `<shell> -c 'DISPLAY=<display> <tool> type "<text>"'`.
func NewKeystrokeInjector(cfg config.Keyboard) KeystrokeInjector {
	return NewKeystrokeInjectorWithRunner(cfg, ExecRunner)
}

// NewKeystrokeInjectorWithRunner is [NewKeystrokeInjector] with a custom
// process runner.
func NewKeystrokeInjectorWithRunner(cfg config.Keyboard, run CommandRunner) KeystrokeInjector {
	return &shellKeystrokeInjector{
		shell:   cfg.Shell,
		display: cfg.Display,
		tool:    cfg.Tool,
		timeout: cfg.Timeout,
		run:     run,
	}
}

func (k *shellKeystrokeInjector) TypeText(ctx context.Context, text string) error {
	log := logger.FromContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	start := time.Now()
	out, err := k.run(ctx, k.shell, "-c", BuildTypeCommand(k.display, k.tool, text))
	log.Debug().
		Str("display", k.display).
		Int("text_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("typing tool finished")

	if err == nil {
		return nil
	}

	// the command line embeds the typed text, so it never goes into errors
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w after %s", ErrKeystrokeTimeout, k.timeout)
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrKeystrokeFailed, ctx.Err())
	}

	if output := strings.TrimSpace(string(out)); output != "" {
		return fmt.Errorf("%w: %w: %s", ErrKeystrokeFailed, err, output)
	}
	return fmt.Errorf("%w: %w", ErrKeystrokeFailed, err)
}

// BuildTypeCommand assembles the shell command line for typing text on
// display.
//
// Only double quotes are escaped. Backticks, "$(...)", "$VAR" and backslashes
// keep their shell meaning inside the double-quoted argument, so text must
// come from a trusted caller.
func BuildTypeCommand(display, tool, text string) string {
	return fmt.Sprintf(`DISPLAY=%s %s type "%s"`, display, tool, EscapeDoubleQuotes(text))
}

// EscapeDoubleQuotes prefixes every `"` in s with a backslash.
func EscapeDoubleQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
