package main

import (
	"flag"
	"halma/config"
	"halma/experiments"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment config (defaults apply when empty)")
	size := flag.Int("size", 0, "Board size, overrides the config")
	games := flag.Int("games", 0, "Games per match up, overrides the config")
	out := flag.String("out", "", "Directory for experiment records, overrides the config")
	throughput := flag.Int("throughput", 0, "Run the search throughput experiment up to this depth instead of matchups")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *size > 0 {
		cfg.BoardSize = *size
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *out != "" {
		cfg.OutDir = *out
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *throughput > 0 {
		if _, err := experiments.RunThroughputExperiment(cfg.BoardSize, *throughput); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
		return
	}

	result, err := experiments.RunMatchups("matchups", cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("matchup experiment failed")
	}
	log.Info().Msgf("wrote %d game records to %s", len(result.Games), result.Dir)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
