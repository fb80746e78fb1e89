package main

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"comercial_moveis/internal/config"
	"comercial_moveis/internal/infrastructure/probe"
	"comercial_moveis/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func main() {
	cfg := config.Load()

	app := &cli.App{
		Name:  "probe",
		Usage: "check the commercial backend endpoints and print the results as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Usage:   "backend base URL",
				Value:   cfg.BackendAPIURL,
				EnvVars: []string{"BACKEND_API_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout",
				Value: cfg.BackendTimeout,
			},
			&cli.StringSliceFlag{
				Name:    "endpoint",
				Aliases: []string{"e"},
				Usage:   "path to check, repeatable (default /health and /api/v1/docs)",
			},
			&cli.StringSliceFlag{
				Name:    "header",
				Aliases: []string{"H"},
				Usage:   "extra request header as Name=Value, repeatable",
			},
		},
		Action: run(cfg.BackendHeaders),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(defaultHeaders map[string]string) cli.ActionFunc {
	return func(c *cli.Context) error {
		headers := lo.Assign(defaultHeaders, parseHeaders(c.StringSlice("header")))
		client := probe.NewClient(c.String("url"), c.Duration("timeout"), headers)

		diagnostics := usecase.NewDiagnosticsUseCase(client)
		report := diagnostics.CheckBackend(c.Context, c.StringSlice("endpoint"))

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.Healthy {
			return cli.Exit("backend unhealthy", 1)
		}
		return nil
	}
}

func parseHeaders(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			log.Printf("[probe][cli] skipping invalid header %q", pair)
			continue
		}
		out[name] = strings.TrimSpace(value)
	}
	return out
}
