package raster

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"svg2png/internal/core/domain"
)

// OkSVG renders SVG documents with the oksvg/rasterx engine. Any parse or
// render failure, including engine panics, surfaces as a domain.RenderError.
type OkSVG struct{}

func NewOkSVG() *OkSVG {
	return &OkSVG{}
}

// IntrinsicSize parses the document just far enough to read its declared
// viewport, without rendering anything.
func (r *OkSVG) IntrinsicSize(document []byte) (float64, float64, error) {
	icon, err := parseIcon(document)
	if err != nil {
		return 0, 0, err
	}

	return icon.ViewBox.W, icon.ViewBox.H, nil
}

// Rasterize renders the document into an RGBA buffer of exactly width by
// height pixels, scaling the declared viewport to fill the target.
func (r *OkSVG) Rasterize(document []byte, width, height int) (buffer *domain.PixelBuffer, err error) {
	// oksvg aborts on some malformed path and transform data instead of
	// returning an error; a broken document must stay a render error.
	defer func() {
		if rec := recover(); rec != nil {
			err = &domain.RenderError{Cause: fmt.Errorf("rasterizer panic: %v", rec)}
		}
	}()

	icon, err := parseIcon(document)
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	return &domain.PixelBuffer{Pix: img.Pix, Width: width, Height: height}, nil
}

func parseIcon(document []byte) (icon *oksvg.SvgIcon, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = &domain.RenderError{Cause: fmt.Errorf("parser panic: %v", rec)}
		}
	}()

	icon, parseErr := oksvg.ReadIconStream(bytes.NewReader(document))
	if parseErr != nil {
		return nil, &domain.RenderError{Cause: parseErr}
	}

	return icon, nil
}
