package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Anubrata-Das/bluebella-e2e/internal/browser"
	internalcli "github.com/Anubrata-Das/bluebella-e2e/internal/cli"
	"github.com/Anubrata-Das/bluebella-e2e/internal/config"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// RunCommand returns the command that executes the checkout suite.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run the checkout flow for every test record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "browser",
				Usage: fmt.Sprintf("Browser to drive (%s)", strings.Join(browser.SupportedBrowsers, ", ")),
			},
			&cli.BoolFlag{
				Name:  "headless",
				Usage: "Run the browser in headless mode",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "Number of records to run concurrently",
				Value: 1,
			},
			&cli.StringFlag{
				Name:  "data",
				Usage: "Path to the test data JSON file",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return err
			}
			return internalcli.RunSuite(c.Context, cfg, internalcli.RunOptions{
				Browser:  c.String("browser"),
				Headless: c.Bool("headless"),
				Parallel: c.Int("parallel"),
				DataPath: c.String("data"),
			})
		},
	}
}

// InstallCommand returns the command that downloads the browser bundles.
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the Playwright browser bundles",
		Action: func(c *cli.Context) error {
			return browser.Install()
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "bluebella-e2e",
		Usage:   "End-to-end checkout suite for the bluebella storefront",
		Version: version,
		Commands: []*cli.Command{
			RunCommand(),
			InstallCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
