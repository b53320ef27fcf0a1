package port

import (
	"context"

	"svg2png/internal/core/domain"
)

type TransparencyConverter interface {
	// Convert produces a transparency-aware PNG from the document by
	// delegating to an external process.
	Convert(ctx context.Context, document []byte) (*domain.Image, error)
}
