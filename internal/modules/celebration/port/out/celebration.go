package out

import (
	"time"

	"goalcheer/internal/modules/celebration/domain"
)

// FrameFunc runs once per animation frame with the frame timestamp.
type FrameFunc func(now time.Time)

// Scheduler is the animation clock. Callbacks run one at a time on the
// caller's loop, never concurrently with each other.
type Scheduler interface {
	Now() time.Time
	RequestFrame(fn FrameFunc)
	AfterFunc(d time.Duration, fn func())
}

// Canvas mirrors the 2D drawing context the particles render with.
type Canvas interface {
	Width() int
	Height() int
	ClearRect(x, y, w, h float64)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	SetFillStyle(color string)
	SetGlobalAlpha(alpha float64)
	FillRect(x, y, w, h float64)
}

// Surface owns the pixel dimensions of the drawing area.
type Surface interface {
	Resize(width, height int)
	// Context returns apperrors.ErrSurfaceUnavailable when nothing can be drawn.
	Context() (Canvas, error)
}

type Overlay interface {
	Show()
	Hide()
	Visible() bool
}

// HeartContainer holds live hearts. Each heart removes itself when its
// animation ends; Clear drops all of them at once.
type HeartContainer interface {
	Append(heart domain.Heart)
	Clear()
	Len() int
}

type Viewport interface {
	Size() (width, height int)
	// OnResize registers fn and returns the function that deregisters it.
	OnResize(fn func(width, height int)) (cancel func())
}
