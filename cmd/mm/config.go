package main

import (
	"fmt"
	"os"

	"momentum/internal/config"
	"momentum/internal/repository/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment from MM_ENV
func GetEnvironment() Environment {
	switch os.Getenv("MM_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}

// RepositoryFactory creates repository instances based on environment
type RepositoryFactory struct {
	env Environment
}

// NewRepositoryFactory creates a new repository factory for the given environment
func NewRepositoryFactory(env Environment) *RepositoryFactory {
	return &RepositoryFactory{env: env}
}

// CreateRepository creates a repository instance based on the current environment
func (rf *RepositoryFactory) CreateRepository(cfg *config.Config) (sqlite.Repository, error) {
	switch rf.env {
	case Development:
		return rf.createDevelopmentRepository()
	case Testing:
		return rf.createTestingRepository()
	default:
		return rf.createProductionRepository(cfg)
	}
}

// createDevelopmentRepository uses a local database file in the working
// directory so development data stays out of the real database.
func (rf *RepositoryFactory) createDevelopmentRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New("momentum.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return repo, nil
}

// createTestingRepository uses an in-memory database
func (rf *RepositoryFactory) createTestingRepository() (sqlite.Repository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return repo, nil
}

// createProductionRepository uses the configured database location,
// creating its directory on first run.
func (rf *RepositoryFactory) createProductionRepository(cfg *config.Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(cfg.Database.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.New(cfg.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return repo, nil
}
