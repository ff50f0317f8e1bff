package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"tisubmit/internal/app/version"
	"tisubmit/internal/auth"
	"tisubmit/internal/batch"
	"tisubmit/internal/config"
	"tisubmit/internal/graph"
	"tisubmit/internal/indicator"
)

// Run parses the command line, wires the auth provider and Graph client,
// and submits either the single indicator described by the flags or one
// indicator per row of the given CSV file. It returns a non-nil error when
// configuration is unusable or any submission failed.
func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found. Falling back to system environment variables.")
	}

	config.ReadSettings()
	cfg := config.GetConfig()

	var params indicator.Parameters
	registerIndicatorFlags(&params)

	apiVersionFlag := flag.String("api-version", cfg.Graph.APIVersion, "Graph API version (v1.0 or beta)")
	csvFlag := flag.String("csv", "", "Submit one indicator per row of this CSV file (headers are attribute names)")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging")
	versionFlag := flag.Bool("build-version", false, "Print build metadata and exit")
	flag.Parse()

	if *versionFlag {
		info := version.Get()
		fmt.Printf("tisubmit %s (built %s)\n", info.BuildVersion, info.BuiltAt)
		return nil
	}

	log.SetLevel(log.InfoLevel)
	if *verboseFlag {
		log.SetLevel(log.DebugLevel)
	}

	if params.TargetProduct == "" {
		params.TargetProduct = cfg.Graph.TargetProduct
	}

	apiVersion, err := graph.ParseAPIVersion(*apiVersionFlag)
	if err != nil {
		return err
	}

	httpClient, err := graph.NewHTTPClient(cfg.HTTPTimeout(), cfg.HTTP.Socks5Proxy)
	if err != nil {
		return err
	}

	client, err := graph.NewClient(cfg.Graph.Root, apiVersion, tokenProvider(cfg), httpClient)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if *csvFlag != "" {
		return runBatch(ctx, *csvFlag, params, client)
	}
	return runSingle(ctx, params, client)
}

// tokenProvider prefers a pre-acquired token from the environment over the
// client-credentials flow.
func tokenProvider(cfg config.Config) auth.TokenProvider {
	if cfg.Auth.AccessToken != "" {
		return &auth.Static{Token: cfg.Auth.AccessToken}
	}
	return &auth.ClientCredentials{
		TenantID:      cfg.Auth.TenantID,
		ClientID:      cfg.Auth.ClientID,
		ClientSecret:  cfg.Auth.ClientSecret,
		TokenEndpoint: cfg.Auth.TokenEndpoint,
	}
}

func runSingle(ctx context.Context, params indicator.Parameters, client *graph.Client) error {
	ti, err := indicator.Build(params)
	if err != nil {
		return err
	}

	created, err := client.SubmitIndicator(ctx, ti)
	if err != nil {
		return err
	}

	log.Info("Indicator submitted", "id", created.ID)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(created)
}

func runBatch(ctx context.Context, path string, defaults indicator.Parameters, client *graph.Client) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open csv file: %w", err)
	}
	defer file.Close()

	results, err := batch.ProcessCSV(ctx, file, defaults, client)
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}

	log.Info("Batch complete", "total", len(results), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d indicators failed to submit", failed, len(results))
	}
	return nil
}
