// Package analyzer implements the screen-query pipeline: capture a
// screenshot of the attached device, ask a vision model a question
// about it, and hand back the answer annotated with everything needed
// to convert its relative coordinates to device pixels. The pipeline
// is strictly advisory; it never drives the device.
package analyzer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/screenpeek/screenpeek/pkg/adb"
	"github.com/screenpeek/screenpeek/pkg/prompt"
)

// Snapshotter captures one screenshot-plus-context snapshot of the
// device. Satisfied by *adb.Bridge.
type Snapshotter interface {
	Capture(ctx context.Context) (*adb.Snapshot, error)
}

// Pipeline runs one screen query end to end. A Pipeline is safe to
// reuse across queries; it holds no per-query state.
type Pipeline struct {
	cfg    Config
	device Snapshotter
	client Client
	logger *zap.Logger
	now    func() time.Time
}

// New wires a Pipeline against the real device bridge and model
// endpoint described by cfg.
func New(cfg Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		device: adb.NewBridge(cfg.Serial),
		client: NewClient(cfg),
		logger: logger,
		now:    time.Now,
	}
}

type queryResult struct {
	text string
	err  error
}

// Query answers one question about the current screen. The returned
// string is always a user-facing text payload: either the augmented
// model answer or a message prefixed "Error: ". Failures never
// escape as errors, because the tool contract promises text in all
// cases.
//
// The blocking work (device capture, image decode, model call) runs
// in its own goroutine under a single wall-clock deadline. On expiry
// Query returns the timeout text immediately and detaches: the
// in-flight device or network call cannot be interrupted and is left
// to finish into a buffered channel with no further effect.
func (p *Pipeline) Query(ctx context.Context, question string) string {
	// Fail before any device round trip when the call cannot succeed.
	if p.cfg.APIKey == "" {
		return errorText(ErrAuth)
	}
	if question == "" {
		return errorText(ErrInput)
	}

	start := p.now()
	results := make(chan queryResult, 1)
	go func() {
		results <- p.run(ctx, question)
	}()

	timer := time.NewTimer(p.cfg.Timeout)
	defer timer.Stop()

	select {
	case res := <-results:
		if res.err != nil {
			p.logger.Warn("query failed",
				zap.Error(res.err),
				zap.Duration("elapsed", p.now().Sub(start)),
			)
			return errorText(res.err)
		}
		p.logger.Info("query answered",
			zap.Duration("elapsed", p.now().Sub(start)),
			zap.Int("answer_len", len(res.text)),
		)
		return res.text
	case <-timer.C:
		p.logger.Warn("query deadline exceeded, detaching",
			zap.Duration("timeout", p.cfg.Timeout),
		)
		return errorText(fmt.Errorf("%w (%s)", ErrTimeout, p.cfg.Timeout))
	case <-ctx.Done():
		return errorText(fmt.Errorf("%w (%v)", ErrTimeout, ctx.Err()))
	}
}

// run is the blocking worker: capture, build prompts, call the model,
// augment. Sequential, no retries anywhere.
func (p *Pipeline) run(ctx context.Context, question string) queryResult {
	snap, err := p.device.Capture(ctx)
	if err != nil {
		return queryResult{err: fmt.Errorf("%w: %v", ErrCapture, err)}
	}
	p.logger.Debug("snapshot captured",
		zap.Int("width", snap.Width),
		zap.Int("height", snap.Height),
		zap.String("foreground_app", snap.ForegroundApp),
	)

	system := prompt.System(p.now())
	user := prompt.User(question, snap.ForegroundApp)

	reply, err := p.client.Ask(ctx, system, user, snap.PNG)
	if err != nil {
		return queryResult{err: err}
	}

	// The note must carry the resolution of this snapshot, not any
	// other: callers convert coordinates with it.
	return queryResult{text: Augment(reply, snap.Width, snap.Height)}
}

// errorText renders any pipeline failure as the user-facing payload.
func errorText(err error) string {
	return "Error: " + err.Error()
}
