package out

import (
	"image"

	"github.com/tfriedel6/canvas"
	"github.com/tfriedel6/canvas/backend/softwarebackend"

	celebrationout "goalcheer/internal/modules/celebration/port/out"
	apperrors "goalcheer/internal/platform/errors"
)

// CanvasSurface rasterises into an in-memory RGBA image through the canvas
// software backend. A zero-sized surface has no context.
type CanvasSurface struct {
	backend *softwarebackend.SoftwareBackend
	cv      *canvas.Canvas
	width   int
	height  int
}

func NewCanvasSurface() *CanvasSurface {
	return &CanvasSurface{}
}

func (s *CanvasSurface) Resize(width, height int) {
	if width == s.width && height == s.height && s.cv != nil {
		return
	}
	s.width, s.height = width, height
	if width <= 0 || height <= 0 {
		s.backend, s.cv = nil, nil
		return
	}
	s.backend = softwarebackend.New(width, height)
	s.cv = canvas.New(s.backend)
}

func (s *CanvasSurface) Context() (celebrationout.Canvas, error) {
	if s.cv == nil {
		return nil, apperrors.ErrSurfaceUnavailable
	}
	return canvasContext{cv: s.cv}, nil
}

// Image is the current raster, or nil while the surface is unavailable.
func (s *CanvasSurface) Image() *image.RGBA {
	if s.backend == nil {
		return nil
	}
	return s.backend.Image
}

func (s *CanvasSurface) Size() (int, int) { return s.width, s.height }

type canvasContext struct {
	cv *canvas.Canvas
}

func (c canvasContext) Width() int                   { return c.cv.Width() }
func (c canvasContext) Height() int                  { return c.cv.Height() }
func (c canvasContext) ClearRect(x, y, w, h float64) { c.cv.ClearRect(x, y, w, h) }
func (c canvasContext) Save()                        { c.cv.Save() }
func (c canvasContext) Restore()                     { c.cv.Restore() }
func (c canvasContext) Translate(x, y float64)       { c.cv.Translate(x, y) }
func (c canvasContext) Rotate(angle float64)         { c.cv.Rotate(angle) }
func (c canvasContext) SetFillStyle(color string)    { c.cv.SetFillStyle(color) }
func (c canvasContext) SetGlobalAlpha(alpha float64) { c.cv.SetGlobalAlpha(alpha) }
func (c canvasContext) FillRect(x, y, w, h float64)  { c.cv.FillRect(x, y, w, h) }
