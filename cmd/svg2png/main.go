package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"svg2png/internal/adapters/converter"
	"svg2png/internal/adapters/encoder"
	"svg2png/internal/adapters/handler"
	"svg2png/internal/adapters/raster"
	"svg2png/internal/app"
	"svg2png/internal/core/service"
)

func main() {
	log.Info().Msg("starting svg2png...")

	loadConfig()

	switch viper.GetString("log_level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc := service.NewConverter(
		raster.NewOkSVG(),
		encoder.NewPNG(),
		converter.NewRSVG(viper.GetString("converter_binary"), ""),
	)

	a := app.Setup(handler.NewConvert(svc))

	addr := viper.GetString("host") + ":" + viper.GetString("port")
	go func() {
		log.Info().Str("address", addr).Msg("server listening")
		if err := a.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Warn().Msg("shutdown signal received, closing server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := a.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped cleanly")
}

// loadConfig reads an optional config.toml from the working directory and
// lets SVG2PNG_* environment variables override it.
func loadConfig() {
	viper.SetDefault("host", "0.0.0.0")
	viper.SetDefault("port", "3000")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("converter_binary", converter.DefaultBinary)

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("svg2png")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("could not read config file")
		}
	}
}
