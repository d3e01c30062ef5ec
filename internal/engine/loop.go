package engine

// FrameLoop runs a callback once per display frame between Start and Stop.
// Implementations must make Start a no-op while running and Stop safe to
// call from inside the frame callback.
type FrameLoop interface {
	Start(frame func())
	Stop()
	Running() bool
}
