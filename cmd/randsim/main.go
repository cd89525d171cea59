package main

import (
	"flag"
	"os"

	"github.com/emrzvv/randkit/internal/config"
	"github.com/emrzvv/randkit/internal/export"
	"github.com/emrzvv/randkit/internal/simulation"
	"github.com/rs/zerolog"
)

func main() {
	cfgPath := flag.String("cfg", "./config/default.yaml", "path to config")
	outDir := flag.String("out", "./csv", "output directory for csv")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	log.Info().
		Str("generator", cfg.Simulation.Generator).
		Uint32("seed", cfg.Simulation.Seed).
		Float64("rate_rps", cfg.Arrivals.RateRPS).
		Str("service_dist", cfg.Service.Dist).
		Msg("starting simulation")

	st, servers, err := simulation.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("run simulation")
	}

	log.Info().
		Int("arrivals", len(st.Arrivals)).
		Int("served", len(st.Requests)).
		Int("dropped", len(st.Drops)).
		Msg("simulation finished")

	if err := export.ToCSV(*outDir, st, servers); err != nil {
		log.Fatal().Err(err).Msg("export csv")
	}
	log.Info().Str("dir", *outDir).Msg("csv written")
}
