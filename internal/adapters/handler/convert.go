package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"svg2png/internal/adapters/file"
	"svg2png/internal/core/domain"
	"svg2png/internal/core/service"
)

// Convert exposes the conversion pipeline over HTTP.
type Convert struct {
	converter *service.Converter
}

func NewConvert(converter *service.Converter) *Convert {
	return &Convert{converter: converter}
}

// HandleConversion converts the SVG document in the request body, honoring
// an optional dpi query parameter.
func (h *Convert) HandleConversion(c *fiber.Ctx) error {
	img, err := h.converter.Convert(c.UserContext(), c.Body(), c.Query("dpi"))
	if err != nil {
		return classify(err)
	}

	c.Set(fiber.HeaderContentType, img.MIMEType)
	return c.Send(img.Data)
}

// HandleURLConversion fetches an SVG document from a remote URL and converts
// it like HandleConversion.
func (h *Convert) HandleURLConversion(c *fiber.Ctx) error {
	url := c.Query("url")
	if url == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing url parameter")
	}

	document, err := file.Download(c.UserContext(), url)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "could not fetch document: "+err.Error())
	}

	img, err := h.converter.Convert(c.UserContext(), document, c.Query("dpi"))
	if err != nil {
		return classify(err)
	}

	c.Set(fiber.HeaderContentType, img.MIMEType)
	return c.Send(img.Data)
}

// HandleTransparentConversion converts the SVG document in the request body
// through the external transparency path.
func (h *Convert) HandleTransparentConversion(c *fiber.Ctx) error {
	img, err := h.converter.ConvertTransparent(c.UserContext(), c.Body())
	if err != nil {
		return classify(err)
	}

	c.Set(fiber.HeaderContentType, img.MIMEType)
	return c.Send(img.Data)
}

// HandleHealth reports process liveness.
func (h *Convert) HandleHealth(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// classify maps pipeline errors onto caller-fault and server-fault statuses.
// Validation and render failures are the caller's problem; encode and
// external process failures are ours.
func classify(err error) error {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return fiber.NewError(fiber.StatusBadRequest, validation.Error())
	}

	var render *domain.RenderError
	if errors.As(err, &render) {
		return fiber.NewError(fiber.StatusBadRequest, render.Error())
	}

	var conversion *domain.ConversionError
	if errors.As(err, &conversion) {
		log.Error().Err(err).Msg("transparency conversion failed")
		return fiber.NewError(fiber.StatusInternalServerError, conversion.Error())
	}

	var encode *domain.EncodeError
	if errors.As(err, &encode) {
		log.Error().Err(err).Msg("png encoding failed")
		return fiber.NewError(fiber.StatusInternalServerError, encode.Error())
	}

	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
