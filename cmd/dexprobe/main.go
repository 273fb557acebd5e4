package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go-dexprobe/internal/common"
	"go-dexprobe/internal/config"
	"go-dexprobe/internal/dexscreener"
	"go-dexprobe/internal/probe"
	"go-dexprobe/internal/util"
)

func main() {
	configPath := flag.String("config", common.DefaultConfigPath, "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("error_code", common.ErrCodeConfigLoadFailed.String()).
			Str("error_message", common.ErrMsgConfigLoadFailed.String()).
			Msg("Failed to load config")
	}

	// Set global log level from config
	switch cfg.LogLevel {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		log.Fatal().Str("log_level", cfg.LogLevel).Msg("Invalid log level in config, use: debug, info, warn, error")
	}

	// Diagnostics go to stderr; stdout carries only the result lines.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	logger := util.NewLogger()

	client := dexscreener.NewClient(cfg.GetBaseURL())
	p := probe.NewProbe(cfg, client, os.Stdout)

	logger.Debug("Starting probe", "base_url", cfg.GetBaseURL())
	if err := p.Run(); err != nil {
		logger.Error(err, common.ErrCodeProbeAborted, common.ErrMsgProbeAborted, "Probe aborted")
		os.Exit(1)
	}
	logger.Debug("Probe completed")
}
