package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fflow/fflow/config"
	"github.com/fflow/fflow/financeflow"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *financeflow.Client

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	dryRun  bool
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fflow",
	Short: "A terminal client for the FinanceFlow personal-finance service",
	Long: `fflow is a CLI client for FinanceFlow: inspect dashboards, manage
transactions, wallets, categories, budgets and transfers, share capital
groups, pull reports and talk to the support assistant, all from the
terminal.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build metadata injected by the linker.
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, buildTime)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(testCmd)
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	// Create FinanceFlow client
	opts := []financeflow.Option{
		financeflow.WithToken(cfg.API.Token),
		financeflow.WithTimeout(time.Duration(cfg.API.TimeoutSeconds) * time.Second),
		financeflow.WithUserAgent("fflow/" + appVersion),
	}
	if cfg.Logging.Level == "debug" {
		opts = append(opts, financeflow.WithDebug())
	}
	client, err = financeflow.NewClient(cfg.API.BaseURL, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FinanceFlow client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; only color a real terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to the FinanceFlow backend",
	Long:  `Test the connection to the FinanceFlow backend and display basic account information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to FinanceFlow at %s...\n", cfg.API.BaseURL)

	ctx := context.Background()
	if err := client.TestConnection(ctx); err != nil {
		return err
	}
	fmt.Println("✓ Connection successful!")

	if client.Token() == "" {
		fmt.Println("\nNot logged in. Run 'fflow login' to authenticate.")
		return nil
	}

	user, err := client.GetProfile(ctx)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	fmt.Printf("\nLogged in as: %s <%s>\n", user.Name, user.Email)
	fmt.Printf("- Default currency: %s\n", user.Currency)
	fmt.Printf("- Premium: %s\n", boolToStatus(user.Premium))

	if cfg.Assistant.Enabled {
		fmt.Println("- Support assistant: Enabled")
	} else {
		fmt.Println("- Support assistant: Disabled")
	}

	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
