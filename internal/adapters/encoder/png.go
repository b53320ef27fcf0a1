package encoder

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"

	"svg2png/internal/core/domain"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	bitDepthEight      = 8
	colorTypeRGBA      = 6
	unitSpecifierMeter = 1
	bytesPerPixel      = 4
)

// PNG encodes RGBA pixel buffers as PNG streams. The chunks are written
// directly so the stream always carries 8-bit RGBA samples and a pHYs
// physical resolution chunk, neither of which Go's image/png encoder can
// guarantee.
type PNG struct{}

func NewPNG() *PNG {
	return &PNG{}
}

// Encode produces a PNG stream for the buffer with the same pixels-per-meter
// value on both axes. All failures here are server faults; input validation
// happened upstream.
func (e *PNG) Encode(buffer *domain.PixelBuffer, dotsPerMeter uint32) (*domain.Image, error) {
	if buffer.Width < 1 || buffer.Height < 1 {
		return nil, &domain.EncodeError{
			Cause: fmt.Errorf("invalid buffer size %dx%d", buffer.Width, buffer.Height),
		}
	}
	if want := buffer.Width * buffer.Height * bytesPerPixel; len(buffer.Pix) != want {
		return nil, &domain.EncodeError{
			Cause: fmt.Errorf("pixel buffer is %d bytes, want %d", len(buffer.Pix), want),
		}
	}

	idat, err := compressScanlines(buffer)
	if err != nil {
		return nil, &domain.EncodeError{Cause: err}
	}

	var out bytes.Buffer
	out.Grow(len(pngSignature) + len(idat) + 64)
	out.Write(pngSignature)
	writeChunk(&out, "IHDR", headerData(buffer.Width, buffer.Height))
	writeChunk(&out, "pHYs", physData(dotsPerMeter))
	writeChunk(&out, "IDAT", idat)
	writeChunk(&out, "IEND", nil)

	return &domain.Image{Data: out.Bytes(), MIMEType: domain.MIMETypePNG}, nil
}

func headerData(width, height int) []byte {
	data := make([]byte, 13)
	binary.BigEndian.PutUint32(data[0:4], uint32(width))
	binary.BigEndian.PutUint32(data[4:8], uint32(height))
	data[8] = bitDepthEight
	data[9] = colorTypeRGBA
	// Remaining bytes: deflate compression, adaptive filtering, no interlace.
	return data
}

// physData lays out the physical pixel dimension chunk: X and Y
// pixels-per-meter as big-endian words followed by the unit specifier.
func physData(dotsPerMeter uint32) []byte {
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], dotsPerMeter)
	binary.BigEndian.PutUint32(data[4:8], dotsPerMeter)
	data[8] = unitSpecifierMeter
	return data
}

// compressScanlines deflates the pixel rows, each prefixed with filter type
// None.
func compressScanlines(buffer *domain.PixelBuffer) ([]byte, error) {
	var out bytes.Buffer
	zw := zlib.NewWriter(&out)

	stride := buffer.Width * bytesPerPixel
	filterNone := []byte{0}
	for y := 0; y < buffer.Height; y++ {
		if _, err := zw.Write(filterNone); err != nil {
			return nil, err
		}
		if _, err := zw.Write(buffer.Pix[y*stride : (y+1)*stride]); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func writeChunk(out *bytes.Buffer, chunkType string, data []byte) {
	var word [4]byte

	binary.BigEndian.PutUint32(word[:], uint32(len(data)))
	out.Write(word[:])
	out.WriteString(chunkType)
	out.Write(data)

	crc := crc32.NewIEEE()
	crc.Write([]byte(chunkType))
	crc.Write(data)
	binary.BigEndian.PutUint32(word[:], crc.Sum32())
	out.Write(word[:])
}
