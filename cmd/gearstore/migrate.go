package main

import (
	"fmt"
	"log"

	"github.com/kutbudev/gearstore/pkg/config"
	"github.com/kutbudev/gearstore/pkg/repository"
	"github.com/urfave/cli/v2"
)

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create or update the catalog schema",
		Action: func(c *cli.Context) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repository.Migrate(db.DB); err != nil {
				return err
			}
			log.Println("schema up to date")
			return nil
		},
	}
}

func newSeedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Load the sample catalog into the store",
		Action: func(c *cli.Context) error {
			db, err := openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := repository.Migrate(db.DB); err != nil {
				return err
			}
			if err := repository.Seed(db.DB); err != nil {
				return err
			}
			log.Println("sample catalog loaded")
			return nil
		},
	}
}

func openDatabase() (*repository.Database, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return repository.New(cfg)
}
