package widgets

import (
	"time"

	"fyne.io/fyne/v2"
)

// AnimationLoop runs a frame callback on every animation tick until
// stopped. It satisfies engine.FrameLoop.
type AnimationLoop struct {
	anim  *fyne.Animation
	frame func()
}

func NewAnimationLoop() *AnimationLoop { return &AnimationLoop{} }

// Start is a no-op while the loop is already running, so at most one
// animation is ever registered.
func (l *AnimationLoop) Start(frame func()) {
	if l.anim != nil {
		return
	}
	l.frame = frame
	l.anim = fyne.NewAnimation(time.Second, func(float32) { l.tick() })
	l.anim.Curve = fyne.AnimationLinear
	l.anim.RepeatCount = fyne.AnimationRepeatForever
	l.anim.Start()
}

func (l *AnimationLoop) Stop() {
	if l.anim == nil {
		return
	}
	l.anim.Stop()
	l.anim = nil
	l.frame = nil
}

func (l *AnimationLoop) Running() bool { return l.anim != nil }

// tick may stop the loop from inside the frame.
func (l *AnimationLoop) tick() {
	if f := l.frame; f != nil {
		f()
	}
}
