package engine

// Viewport is the contain-fit of the design space into the rendering
// surface. It is replaced wholesale whenever the surface size changes.
type Viewport struct {
	Scale         float64 `json:"scale"`
	OffsetX       float64 `json:"offsetX"`
	OffsetY       float64 `json:"offsetY"`
	SurfaceWidth  float64 `json:"surfaceWidth"`
	SurfaceHeight float64 `json:"surfaceHeight"`
}

// ComputeFit scales a designW x designH area uniformly so it fits inside the
// surface, and centers it on the axis with slack. Design dimensions must be
// positive.
func ComputeFit(designW, designH, surfaceW, surfaceH float64) Viewport {
	scale := min(surfaceW/designW, surfaceH/designH)
	return Viewport{
		Scale:         scale,
		OffsetX:       (surfaceW - designW*scale) / 2,
		OffsetY:       (surfaceH - designH*scale) / 2,
		SurfaceWidth:  surfaceW,
		SurfaceHeight: surfaceH,
	}
}

// Matrix returns the design-to-surface transform: translate, then scale.
func (v Viewport) Matrix() Matrix2D {
	return Translate(v.OffsetX, v.OffsetY).Multiply(Scale(v.Scale, v.Scale))
}

// ToDesign maps a surface point back into design space.
func (v Viewport) ToDesign(x, y float64) (float64, float64) {
	return v.Matrix().Invert().TransformPoint(x, y)
}

// DesignBounds returns the design-space rectangle the whole surface shows,
// letterbox bars included.
func (v Viewport) DesignBounds() (x0, y0, x1, y1 float64) {
	x0, y0 = v.ToDesign(0, 0)
	x1, y1 = v.ToDesign(v.SurfaceWidth, v.SurfaceHeight)
	return x0, y0, x1, y1
}

// CoverFit sizes an imgW x imgH image to cover the whole surface while
// keeping its aspect ratio, and centers it. The overflowing axis is cropped
// by the surface edges.
func CoverFit(imgW, imgH, surfaceW, surfaceH float64) (x, y, w, h float64) {
	imgAspect := imgW / imgH
	surfaceAspect := surfaceW / surfaceH

	if imgAspect > surfaceAspect {
		h = surfaceH
		w = imgAspect * surfaceH
	} else {
		w = surfaceW
		h = surfaceW / imgAspect
	}
	return (surfaceW - w) / 2, (surfaceH - h) / 2, w, h
}
