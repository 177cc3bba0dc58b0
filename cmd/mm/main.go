package main

import (
	"context"
	"fmt"
	"os"

	"momentum/internal/api"
	"momentum/internal/cli"
	"momentum/internal/config"
	"momentum/internal/habit"
	"momentum/internal/logging"
	"momentum/internal/store"
)

func main() {
	// Build the effective configuration: defaults, then environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.Logging.Development || cfg.Application.Verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	// Create repository based on environment
	factory := NewRepositoryFactory(GetEnvironment())
	repo, err := factory.CreateRepository(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	// The store owns the task collection for the process lifetime. Load
	// never fails: a missing or corrupt snapshot means no prior data.
	taskStore := store.New(repo)
	taskStore.Load(ctx)

	stacker := habit.NewStacker(taskStore, repo)
	apiInstance := api.New(taskStore, stacker)

	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
