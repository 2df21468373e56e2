package main

import (
	"fmt"
	"os"
	"time"

	"github.com/SscSPs/backoffice_app/internal/cli"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/google/uuid"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := &cli.App{
		Now:                      func() time.Time { return time.Now().UTC() },
		NewID:                    uuid.NewString,
		RejectDuplicateAssignees: !cfg.SplitAllowDuplicateAssignees,
		RatioScale:               cfg.AllocationRatioScale,
		JWTSecret:                cfg.JWTSecret,
		JWTIssuer:                cfg.JWTIssuer,
		JWTExpiry:                cfg.JWTExpiryDuration,
	}

	return cli.NewRootCmd(app).Execute()
}
