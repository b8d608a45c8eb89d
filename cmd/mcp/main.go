package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/cloud-optimizer/cmd/mcp/tools"
	"github.com/elC0mpa/cloud-optimizer/service/aggregator"
	"github.com/elC0mpa/cloud-optimizer/service/store"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	cfg := LoadConfig()

	clientStore, err := store.NewFileStore(cfg.ClientsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load clients: %v\n", err)
		os.Exit(1)
	}

	engine := aggregator.NewService(clientStore, aggregator.Config{
		PeriodDays: cfg.PeriodDays,
		Logger:     cfg.Logger,
	})

	s := server.NewMCPServer(
		"cloud-optimizer-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	tools.RegisterAggregationTools(s, engine)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
