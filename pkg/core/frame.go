package core

import "sync"

var (
	postFrameMu    sync.Mutex
	postFrameQueue []func()
)

// Schedule queues a callback to run after the host's next layout pass.
//
// The shared-element registry uses this to defer geometry capture: at
// registration time the frame has not been laid out, so bounding boxes are
// unknown. Hosts call [FlushPostFrame] once per frame after layout completes.
func Schedule(callback func()) {
	if callback == nil {
		return
	}
	postFrameMu.Lock()
	postFrameQueue = append(postFrameQueue, callback)
	postFrameMu.Unlock()
}

// FlushPostFrame runs all queued post-frame callbacks.
//
// Callbacks may schedule further callbacks; those run within the same flush,
// so a register call that triggers more registration settles in one tick.
// The drain is bounded to avoid spinning forever on a callback that
// reschedules itself unconditionally.
func FlushPostFrame() {
	const maxDrains = 100
	for i := 0; i < maxDrains; i++ {
		postFrameMu.Lock()
		if len(postFrameQueue) == 0 {
			postFrameMu.Unlock()
			return
		}
		queue := postFrameQueue
		postFrameQueue = nil
		postFrameMu.Unlock()

		for _, callback := range queue {
			callback()
		}
	}
}

// PendingPostFrame reports whether any callbacks are waiting for the next flush.
func PendingPostFrame() bool {
	postFrameMu.Lock()
	defer postFrameMu.Unlock()
	return len(postFrameQueue) > 0
}
