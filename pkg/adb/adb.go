// Package adb talks to an attached Android device through the adb
// binary. It covers exactly what the screen-query pipeline needs:
// taking a screenshot and identifying the foreground application.
package adb

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
)

// Runner executes a device command and returns its combined stdout.
// The exec-backed implementation is the default; tests substitute a
// fake to simulate device failures without a device attached.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%s: %w: %s", name, err, exitErr.Stderr)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}

// resumedActivityPattern extracts the package owning the foreground
// activity from a dumpsys activities dump. Both the pre- and
// post-Android-10 field names are accepted.
var resumedActivityPattern = regexp.MustCompile(`(?:mResumedActivity|topResumedActivity).*?(\S+)/\S+`)

// Bridge issues adb commands against a single device. A zero Bridge
// is not usable; construct with NewBridge.
type Bridge struct {
	serial string
	runner Runner
}

// NewBridge returns a Bridge for the device with the given serial.
// An empty serial lets adb resolve the device itself, which assumes
// exactly one is attached.
func NewBridge(serial string) *Bridge {
	return &Bridge{serial: serial, runner: execRunner{}}
}

// NewBridgeWithRunner is NewBridge with a custom command Runner.
func NewBridgeWithRunner(serial string, runner Runner) *Bridge {
	return &Bridge{serial: serial, runner: runner}
}

// adb builds the argument list for one adb invocation, inserting the
// -s selector when a serial is configured.
func (b *Bridge) adb(args ...string) []string {
	if b.serial != "" {
		return append([]string{"-s", b.serial}, args...)
	}
	return args
}

func (b *Bridge) run(ctx context.Context, args ...string) ([]byte, error) {
	return b.runner.Run(ctx, "adb", b.adb(args...)...)
}

// ForegroundApp returns the package name of the application owning
// the visible UI, or "unknown" if the probe fails or the dump has no
// resumed activity. A failed probe never fails the caller.
func (b *Bridge) ForegroundApp(ctx context.Context) string {
	out, err := b.run(ctx, "shell", "dumpsys", "activity", "activities")
	if err != nil {
		return "unknown"
	}
	m := resumedActivityPattern.FindSubmatch(out)
	if m == nil {
		return "unknown"
	}
	return string(m[1])
}
