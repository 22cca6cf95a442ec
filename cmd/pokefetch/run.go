package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pokefetch/pokefetch/internal/config"
	"github.com/pokefetch/pokefetch/internal/database"
	"github.com/pokefetch/pokefetch/internal/fetch"
	pokelog "github.com/pokefetch/pokefetch/internal/log"
	"github.com/pokefetch/pokefetch/internal/pipeline"
	"github.com/pokefetch/pokefetch/internal/report"
)

// dbPasswordEnv is the environment variable consulted for the database
// password. Passwords never travel through flags so they stay out of
// shell history and process listings.
const dbPasswordEnv = "POKEFETCH_DB_PASSWORD"

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch the Pokédex and replace the destination table",
		Long: `Run fetches the national Pokédex listing page, follows every detail-page
link it contains, extracts the basic data tables, and replaces the destination
database table with the merged rows.

The run aborts on the first fetch or parse failure, leaving the existing
table untouched. Rows keep the listing order even with concurrent workers.

The database password is read from the ` + dbPasswordEnv + ` environment
variable, never from a flag.

Examples:
  # Fetch into the default SQLite file
  pokefetch run

  # Fetch with 8 concurrent detail-page workers
  pokefetch run --workers 8

  # Fetch into an Oracle schema
  POKEFETCH_DB_PASSWORD=secret pokefetch run \
    --driver oracle --db-user scott --db-host db.example.com \
    --db-port 1521 --db-service XEPDB1 --table master_pokemon

  # Write a Markdown summary to a file
  pokefetch run --markdown -o report.md

Configuration file (.pokefetch) example:
  catalog_url: https://pokemondb.net/pokedex/national
  base_origin: https://pokemondb.net
  timeout: 30s
  workers: 4
  database:
    driver: oracle
    user: scott
    host: db.example.com
    port: 1521
    service: XEPDB1
    table_name: master_pokemon`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	// Scrape behavior flags
	cmd.Flags().String("catalog-url", config.DefaultCatalogURL,
		"Listing page to start from")
	cmd.Flags().String("base-origin", config.DefaultBaseOrigin,
		"Origin prepended to detail-page link suffixes")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for each page fetch")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of concurrent detail-page fetches")

	// Database destination flags
	cmd.Flags().String("driver", string(database.DriverSQLite),
		"Database driver (oracle or sqlite)")
	cmd.Flags().String("db-user", "", "Database user")
	cmd.Flags().String("db-host", "", "Database host")
	cmd.Flags().Int("db-port", 0, "Database port")
	cmd.Flags().String("db-service", "",
		"Oracle service name, or SQLite file path")
	cmd.Flags().String("table", config.DefaultTableName,
		"Destination table name (dropped and recreated on success)")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .pokefetch in current or XDG config directory)")

	// Summary output flags
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown run summary instead of plain text")
	cmd.Flags().StringP("output", "o", "",
		"Write run summary to specified file path (creates directories if needed)")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging with credential masking
	logger := pokelog.NewSecureLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runFetch(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from defaults, the config file, the
// environment, and cobra flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load configuration file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently continue with defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Apply(file); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	// The password comes from the environment, never from a flag.
	if password := os.Getenv(dbPasswordEnv); password != "" {
		cfg.Database.Password = password
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags overrides cfg with flags the user actually set, so config
// file values survive untouched flag defaults.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("catalog-url") {
		v, err := flags.GetString("catalog-url")
		if err != nil {
			return err
		}
		cfg.CatalogURL = v
	}
	if flags.Changed("base-origin") {
		v, err := flags.GetString("base-origin")
		if err != nil {
			return err
		}
		cfg.BaseOrigin = v
	}
	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = v
	}
	if flags.Changed("workers") {
		v, err := flags.GetInt("workers")
		if err != nil {
			return err
		}
		cfg.Workers = v
	}
	if flags.Changed("driver") {
		v, err := flags.GetString("driver")
		if err != nil {
			return err
		}
		cfg.Database.Driver = database.Driver(v)
	}
	if flags.Changed("db-user") {
		v, err := flags.GetString("db-user")
		if err != nil {
			return err
		}
		cfg.Database.User = v
	}
	if flags.Changed("db-host") {
		v, err := flags.GetString("db-host")
		if err != nil {
			return err
		}
		cfg.Database.Host = v
	}
	if flags.Changed("db-port") {
		v, err := flags.GetInt("db-port")
		if err != nil {
			return err
		}
		cfg.Database.Port = v
	}
	if flags.Changed("db-service") {
		v, err := flags.GetString("db-service")
		if err != nil {
			return err
		}
		cfg.Database.Service = v
	}
	if flags.Changed("table") {
		v, err := flags.GetString("table")
		if err != nil {
			return err
		}
		cfg.Database.TableName = v
	}

	return nil
}

// runFetch executes the scrape-and-persist pipeline.
func runFetch(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting fetch",
		"catalog", cfg.CatalogURL,
		"workers", cfg.Workers,
		"destination", cfg.Database.Redacted(),
	)

	fetcher := fetch.New(
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithLogger(logger),
	)

	p := pipeline.New([]pipeline.Step{
		pipeline.NewListingStep(fetcher, cfg.CatalogURL,
			pipeline.WithListingLogger(logger)),
		pipeline.NewEntitiesStep(fetcher, cfg.BaseOrigin,
			pipeline.WithWorkers(cfg.Workers),
			pipeline.WithEntitiesLogger(logger)),
		pipeline.NewPersistStep(
			database.NewSink(database.WithSinkLogger(logger)),
			cfg.Database,
			pipeline.WithPersistLogger(logger)),
	}, pipeline.WithLogger(logger))

	run := pipeline.NewRun()

	fmt.Printf("Fetching %s...\n", cfg.CatalogURL)
	startTime := time.Now()

	if err := p.Execute(ctx, run); err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Fetch completed in %s\n", elapsed.Round(time.Millisecond))

	summary := &report.Summary{
		CatalogURL:  cfg.CatalogURL,
		Entities:    run.Table.Len(),
		Columns:     run.Table.Columns(),
		Destination: cfg.Database.Redacted(),
		TableName:   cfg.Database.TableName,
		Elapsed:     elapsed,
		FinishedAt:  time.Now(),
	}

	return outputSummary(cfg, summary)
}

// outputSummary writes the run summary in the requested format.
func outputSummary(cfg *config.Config, summary *report.Summary) error {
	var output *os.File
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(summary)
		return err
	}

	// Human-readable summary (default). Verbose runs also list the
	// merged column names.
	writer := report.NewSimpleWriter(output, report.WithShowColumns(cfg.Verbose))
	_, err := writer.Write(summary)
	return err
}
