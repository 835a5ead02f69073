package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "gearstore",
		Usage:   "E-commerce catalog REST API",
		Version: Version,
		Commands: []*cli.Command{
			newServeCommand(),
			newMigrateCommand(),
			newSeedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
