package main

import (
	"fmt"
	"log"

	"github.com/kutbudev/gearstore/api/handlers"
	"github.com/kutbudev/gearstore/pkg/config"
	"github.com/kutbudev/gearstore/pkg/repository"
	"github.com/urfave/cli/v2"
)

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the catalog HTTP server",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := repository.New(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repository.Migrate(db.DB); err != nil {
				return err
			}

			r := handlers.NewRouter(db.DB)
			log.Printf("gearstore listening on %s", cfg.ServerAddr())
			return r.Run(cfg.ServerAddr())
		},
	}
}
