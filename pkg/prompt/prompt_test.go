package prompt_test

import (
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/screenpeek/screenpeek/pkg/prompt"
)

var _ = Describe("System", func() {
	now := time.Date(2026, time.March, 14, 10, 30, 0, 0, time.UTC)

	It("embeds the date as YYYY-MM-DD plus the weekday", func() {
		Expect(prompt.System(now)).To(ContainSubstring("The current date: 2026-03-14, Saturday"))
	})

	It("is deterministic for a fixed timestamp", func() {
		Expect(prompt.System(now)).To(Equal(prompt.System(now)))
	})

	It("changes only in the date line across timestamps", func() {
		later := now.AddDate(0, 0, 1)
		a := prompt.System(now)
		b := prompt.System(later)

		Expect(a).NotTo(Equal(b))
		// Strip the date line of each; the remainder is identical.
		Expect(strings.SplitN(a, "\n", 2)[1]).To(Equal(strings.SplitN(b, "\n", 2)[1]))
	})

	It("describes the full action vocabulary", func() {
		sys := prompt.System(now)
		for _, action := range []string{
			`do(action="Tap", element=[x,y])`,
			`do(action="Type", text="Hello World")`,
			`do(action="Swipe", start=[x1,y1], end=[x2,y2])`,
			`do(action="Long Press", element=[x,y])`,
			`do(action="Launch", app="Settings")`,
			`do(action="Back")`,
			`finish(message="Task completed.")`,
		} {
			Expect(sys).To(ContainSubstring(action))
		}
	})

	It("mandates the think/answer response grammar on the 0-1000 scale", func() {
		sys := prompt.System(now)
		Expect(sys).To(ContainSubstring("<think>"))
		Expect(sys).To(ContainSubstring("<answer>"))
		Expect(sys).To(ContainSubstring("0-1000 relative scale"))
		Expect(sys).To(ContainSubstring("Only ONE LINE of action"))
	})
})

var _ = Describe("User", func() {
	It("carries the question and the foreground app as JSON context", func() {
		msg := prompt.User("Where is the search button?", "com.android.settings")

		Expect(msg).To(HavePrefix("Where is the search button?\n\n"))
		Expect(msg).To(ContainSubstring(`{"current_app":"com.android.settings"}`))
	})

	It("keeps the unknown-app sentinel as-is", func() {
		Expect(prompt.User("q", "unknown")).To(ContainSubstring(`{"current_app":"unknown"}`))
	})
})
