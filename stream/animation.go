package stream

// An Animation implements a way to render a specific animation. Frames depend
// only on the construction parameters and elapsedMs, the time since the
// animation started.
type Animation interface {
	CalculateFrame(elapsedMs int64) *Frame
}
