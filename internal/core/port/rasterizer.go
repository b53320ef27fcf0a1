package port

import "svg2png/internal/core/domain"

type Rasterizer interface {
	// IntrinsicSize reports the width and height the document declares for
	// itself, in user units, without rendering it.
	IntrinsicSize(document []byte) (width, height float64, err error)
	// Rasterize renders the document into an RGBA buffer of exactly the
	// requested pixel size.
	Rasterize(document []byte, width, height int) (*domain.PixelBuffer, error)
}
