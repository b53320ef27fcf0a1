package domain

// MIMETypePNG is the media type declared on every successful conversion result.
const MIMETypePNG = "image/png"

// DefaultDPI is the reference resolution SVG user units are defined against.
// A document rendered at this DPI keeps its intrinsic pixel size.
const DefaultDPI = 96.0

// PixelBuffer is a raw RGBA buffer (8 bits per channel) produced by a
// rasterizer. Ownership transfers to the encoder that consumes it.
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// Image is an encoded raster image ready to be written to a response body.
type Image struct {
	Data     []byte
	MIMEType string
}

// Dimensions is the resolved raster target size plus the physical resolution
// metadata derived from the requested DPI.
type Dimensions struct {
	Width        int
	Height       int
	DotsPerMeter uint32
}
