package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"svg2png/internal/adapters/handler"
)

// Setup creates and configures the Fiber app with middleware and the
// conversion routes mounted.
func Setup(convert *handler.Convert) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			log.Warn().Str("path", c.Path()).Int("status", code).Str("message", msg).Msg("request failed")

			return c.Status(code).JSON(fiber.Map{
				"error": fiber.Map{
					"code":    code,
					"message": msg,
				},
			})
		},
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: func() string {
			return xid.New().String()
		},
	}))

	app.Use(func(c *fiber.Ctx) error {
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("requestId", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("incoming request")
		return c.Next()
	})

	app.Post("/svg-to-png", convert.HandleConversion)
	app.Get("/svg-to-png", convert.HandleURLConversion)
	app.Post("/svg-to-png/transparent", convert.HandleTransparentConversion)
	app.Get("/health", convert.HandleHealth)

	// Ensure all responses, including 404s, return JSON.
	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not Found")
	})

	return app
}
