// Package loader provides the asynchronous data-loading view-model used by
// every screen that shows remote data.
//
// A Loader fetches one JSON resource for a named entity, decodes it into a
// typed payload and exposes a State that moves exactly once:
//
//	StatusLoading -> StatusLoaded(payload)
//	StatusLoading -> StatusFailed(message)
//
// # Failure Messages
//
//   - "invalid request": the target URL could not be built; nothing is sent
//   - "network error": no response was received
//   - "Bad status: <code>": the server answered >= 400; the body is not parsed
//   - "decode error": the body did not match the payload shape
//
// # Threading
//
// The request runs on its own goroutine. The terminal transition is handed
// to a Dispatcher so it is applied, and subscribers notified, on the
// presentation context. Use Inline without a UI loop, EventLoop for a plain
// serial loop, or an adapter over a UI toolkit's own scheduler.
//
// # Teardown
//
// Close detaches a Loader from its screen. The request is not cancelled;
// its result is discarded when it arrives.
package loader
