package port

import "svg2png/internal/core/domain"

type Encoder interface {
	// Encode produces a PNG byte stream from the buffer, carrying the given
	// dots-per-meter value as physical resolution metadata on both axes.
	Encode(buffer *domain.PixelBuffer, dotsPerMeter uint32) (*domain.Image, error)
}
