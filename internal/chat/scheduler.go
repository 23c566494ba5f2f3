package chat

import (
	"strings"
	"time"

	"github.com/adilcr01/adil-dev/internal/assistant"
)

// Scheduler runs f once after d. The returned stop function prevents f from
// running and reports whether it did so.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}

// TimerScheduler schedules with time.AfterFunc.
type TimerScheduler struct{}

func (TimerScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Navigator moves the visitor to a link target.
type Navigator interface {
	// Open shows an external URL in a new browsing context.
	Open(url string)
	// ScrollTo brings the in-page element with the given anchor into view.
	ScrollTo(anchor string)
}

// Follow dispatches link to nav. A nil link is ignored.
func Follow(nav Navigator, link *assistant.Link) {
	if link == nil {
		return
	}
	if link.External() {
		nav.Open(link.URL)
		return
	}
	nav.ScrollTo(strings.TrimPrefix(link.URL, "#"))
}
