package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"svg2png/internal/core/domain"
	"svg2png/internal/core/port"
)

// Converter orchestrates the conversion pipeline. It owns input validation;
// everything downstream of it receives a non-empty document.
type Converter struct {
	rasterizer  port.Rasterizer
	encoder     port.Encoder
	transparent port.TransparencyConverter
}

func NewConverter(rasterizer port.Rasterizer, encoder port.Encoder,
	transparent port.TransparencyConverter) *Converter {
	return &Converter{rasterizer: rasterizer, encoder: encoder, transparent: transparent}
}

// Convert resolves target dimensions for the requested DPI, rasterizes the
// document and encodes the result with physical resolution metadata. It
// short-circuits on the first failure; no partial image is ever returned.
func (c *Converter) Convert(_ context.Context, document []byte, rawDPI string) (*domain.Image, error) {
	if len(document) == 0 {
		return nil, &domain.ValidationError{Reason: "request body cannot be empty"}
	}

	dpi := domain.EffectiveDPI(rawDPI)

	intrinsicWidth, intrinsicHeight, err := c.rasterizer.IntrinsicSize(document)
	if err != nil {
		return nil, err
	}

	dims, err := domain.ResolveDimensions(intrinsicWidth, intrinsicHeight, dpi)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Float64("dpi", dpi).
		Int("width", dims.Width).
		Int("height", dims.Height).
		Msg("resolved target dimensions")

	buffer, err := c.rasterizer.Rasterize(document, dims.Width, dims.Height)
	if err != nil {
		return nil, err
	}

	return c.encoder.Encode(buffer, dims.DotsPerMeter)
}

// ConvertTransparent delegates to the external transparency conversion after
// validating the input.
func (c *Converter) ConvertTransparent(ctx context.Context, document []byte) (*domain.Image, error) {
	if len(document) == 0 {
		return nil, &domain.ValidationError{Reason: "request body cannot be empty"}
	}

	return c.transparent.Convert(ctx, document)
}
