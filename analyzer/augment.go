package analyzer

import "fmt"

// augmentTemplate prepends the resolution and conversion formulas to
// a model reply. Coordinates in the reply are on a 0-1000 relative
// scale; the note makes the reply self-describing so any consumer
// can convert to pixels without knowing the device.
const augmentTemplate = `
---
⚠️ IMPORTANT: Coordinates below are relative (0-1000 scale), NOT pixels!

Must convert to pixels using:
Screen Info:
- Resolution: %d x %d
- Coordinate conversion: x_pixel = int(x / 1000 * %d), y_pixel = int(y / 1000 * %d)
---

%s`

// Augment binds a model reply to the resolution of the screenshot it
// was produced from. Pure; width and height MUST be those of the
// image actually sent for this reply, or every derived coordinate
// is silently wrong.
func Augment(reply string, width, height int) string {
	return fmt.Sprintf(augmentTemplate, width, height, width, height, reply)
}
