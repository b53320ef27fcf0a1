package domain

import (
	"math"
	"strconv"
)

const metersPerInch = 0.0254

// EffectiveDPI parses a raw DPI parameter leniently. A missing, unparsable,
// non-positive or non-finite value falls back to DefaultDPI instead of
// failing; a bad DPI is never an error on its own.
func EffectiveDPI(raw string) float64 {
	if raw == "" {
		return DefaultDPI
	}

	dpi, err := strconv.ParseFloat(raw, 64)
	if err != nil || dpi <= 0 || math.IsNaN(dpi) || math.IsInf(dpi, 0) {
		return DefaultDPI
	}

	return dpi
}

// ResolveDimensions scales the intrinsic document size to the requested DPI
// and derives the dots-per-meter value for the PNG physical resolution chunk.
// Pixel dimensions round to the nearest integer; a dimension that rounds
// below one pixel is a validation failure, not a silent clamp to 1x1.
func ResolveDimensions(intrinsicWidth, intrinsicHeight, dpi float64) (Dimensions, error) {
	scale := dpi / DefaultDPI

	width := int(math.Round(intrinsicWidth * scale))
	height := int(math.Round(intrinsicHeight * scale))
	if width < 1 || height < 1 {
		return Dimensions{}, &ValidationError{Reason: "degenerate output dimensions"}
	}

	// Rounded independently of the pixel dimensions.
	return Dimensions{
		Width:        width,
		Height:       height,
		DotsPerMeter: uint32(math.Round(dpi / metersPerInch)),
	}, nil
}
