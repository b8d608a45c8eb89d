package main

import (
	"log/slog"
	"os"

	"github.com/elC0mpa/cloud-optimizer/service/aggregator"
	"github.com/elC0mpa/cloud-optimizer/service/flag"
	"github.com/elC0mpa/cloud-optimizer/service/orchestrator"
	"github.com/elC0mpa/cloud-optimizer/service/store"
	"github.com/elC0mpa/cloud-optimizer/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		panic(err)
	}

	utils.StartSpinner()

	clientStore, err := store.NewFileStore(flags.ClientsFile)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}

	level := slog.LevelWarn
	if os.Getenv("CLOUD_OPTIMIZER_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	engine := aggregator.NewService(clientStore, aggregator.Config{
		PeriodDays: flags.PeriodDays,
		Logger:     logger,
	})

	orchestratorService := orchestrator.NewService(engine)

	err = orchestratorService.Orchestrate(flags)
	if err != nil {
		utils.StopSpinner()
		panic(err)
	}
}
