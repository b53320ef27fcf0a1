package converter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"

	"svg2png/internal/adapters/file"
	"svg2png/internal/core/domain"
)

// DefaultBinary is the external converter invoked when none is configured.
const DefaultBinary = "rsvg-convert"

// RSVG produces transparency-aware PNGs by shelling out to rsvg-convert
// through a scoped temp file exchange. Both files are removed on every exit
// path, including cancellation.
type RSVG struct {
	binary  string
	workDir string
}

func NewRSVG(binary, workDir string) *RSVG {
	if binary == "" {
		binary = DefaultBinary
	}
	if workDir == "" {
		workDir = os.TempDir()
	}

	if _, err := exec.LookPath(binary); err != nil {
		log.Warn().Str("binary", binary).Msg("converter binary not found, transparency conversions will fail")
	} else {
		log.Debug().Str("binary", binary).Msg("converter binary found")
	}

	return &RSVG{binary: binary, workDir: workDir}
}

func (r *RSVG) Convert(ctx context.Context, document []byte) (*domain.Image, error) {
	if _, err := exec.LookPath(r.binary); err != nil {
		return nil, &domain.ConversionError{Kind: domain.SpawnFailure, Cause: err}
	}

	in, err := file.WriteTemp(r.workDir, document, ".svg")
	if err != nil {
		return nil, &domain.ConversionError{Kind: domain.ProcessFailure, Cause: err}
	}
	defer file.Remove(in)

	out, err := file.TempPath(r.workDir, ".png")
	if err != nil {
		return nil, &domain.ConversionError{Kind: domain.ProcessFailure, Cause: err}
	}
	defer file.Remove(out)

	cmd := exec.CommandContext(ctx, r.binary, "-o", out, in)
	if output, err := cmd.CombinedOutput(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Error().Bytes("output", output).Int("exitCode", exitErr.ExitCode()).Msg("converter failed")
			return nil, &domain.ConversionError{
				Kind:  domain.ProcessFailure,
				Cause: fmt.Errorf("%s exited %d: %s", r.binary, exitErr.ExitCode(), output),
			}
		}
		return nil, &domain.ConversionError{Kind: domain.SpawnFailure, Cause: err}
	}

	png, err := file.Read(out)
	if err != nil {
		return nil, &domain.ConversionError{
			Kind:  domain.ProcessFailure,
			Cause: fmt.Errorf("converter produced no output: %w", err),
		}
	}
	if len(png) == 0 {
		return nil, &domain.ConversionError{
			Kind:  domain.ProcessFailure,
			Cause: errors.New("converter produced an empty file"),
		}
	}

	log.Debug().Int("bytes", len(png)).Msg("conversion finished")

	return &domain.Image{Data: png, MIMEType: domain.MIMETypePNG}, nil
}
