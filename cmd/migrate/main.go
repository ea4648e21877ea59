package main

import (
	"contabilito/internal/config" // Custom import path (Config)
	"contabilito/internal/store"  // Custom import path (Store)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Open the store against MySQL
	st, err := store.Open(cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	defer st.Close()

	// EnsureSchema will create tables, missing foreign keys, constraints, columns and indexes
	if err := st.EnsureSchema(); err != nil {
		logrus.Fatalf("migration failed: %v", err) // Log fatal error if migration fails
	}
	logrus.Info("Migration completed.") // Log successful migration
}
