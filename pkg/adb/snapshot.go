package adb

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/disintegration/imaging"
)

// remoteScreenshotPath is where screencap writes on the device before
// the file is pulled. The same fixed path is reused on every capture.
const remoteScreenshotPath = "/sdcard/screenpeek.png"

// Snapshot is one screenshot plus the metadata derived from it at
// capture time. It is created fresh per query and never cached.
type Snapshot struct {
	PNG           []byte
	Width         int
	Height        int
	ForegroundApp string
}

// Capture takes a screenshot of the attached device and probes the
// foreground application. The screenshot is written to a fixed path
// on the device, pulled into a local temp file, and decoded to learn
// the resolution; the temp file is removed on every exit path.
//
// Capture and pull must both succeed; a partial pair is an error and
// is not retried. A failed foreground-app probe degrades to
// "unknown" instead of failing the snapshot.
func (b *Bridge) Capture(ctx context.Context) (*Snapshot, error) {
	if _, err := b.run(ctx, "shell", "screencap", "-p", remoteScreenshotPath); err != nil {
		return nil, fmt.Errorf("screencap: %w", err)
	}

	tmp, err := os.CreateTemp("", "screenpeek-*.png")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if _, err := b.run(ctx, "pull", remoteScreenshotPath, tmpPath); err != nil {
		return nil, fmt.Errorf("pull screenshot: %w", err)
	}

	data, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read screenshot: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}
	bounds := img.Bounds()

	return &Snapshot{
		PNG:           data,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		ForegroundApp: b.ForegroundApp(ctx),
	}, nil
}
