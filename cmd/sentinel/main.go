package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"portsentinel/cmd/sentinel/config"
	"portsentinel/cmd/sentinel/ui"
	"portsentinel/internal/cases"
	"portsentinel/internal/summary"
)

// Version is stamped at build time.
var Version = "dev"

var (
	// Global flags
	verbose    bool
	apiBaseURL string
	incidentID string
	timeout    time.Duration

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sentinel",
	Short: "PortSentinel - incident console for port security operations",
	Long: `PortSentinel is a terminal console for tracking security incident cases
and exercising the summary generation service.

Run without arguments to start the interactive dashboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "sentinel" && cmd.CalledAs() == "sentinel" {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard()
	},
}

// checkCmd runs the summary service diagnostics without the TUI.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run summary service diagnostics headlessly",
	Long: `Checks the summary service health endpoint and triggers a summary
generation run for the configured incident. Both calls run concurrently;
the command fails if either does.`,
	RunE: runCheck,
}

// versionCmd prints the build version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the sentinel version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sentinel %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api-url", "", "Summary service base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&incidentID, "incident", "", "Incident id for diagnostics (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves the effective configuration: file, environment,
// then command-line flags, in increasing precedence.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil && logger != nil {
		logger.Warn("Config load failed, using defaults", zap.Error(err))
	}
	if apiBaseURL != "" {
		cfg.APIBaseURL = apiBaseURL
	}
	if incidentID != "" {
		cfg.IncidentID = incidentID
	}
	return cfg
}

func themeFor(cfg config.Config) ui.Theme {
	switch cfg.Theme {
	case "light":
		return ui.LightTheme()
	case "dark":
		return ui.DarkTheme()
	default:
		return ui.DetectTheme()
	}
}

// runDashboard launches the interactive console.
func runDashboard() error {
	cfg := loadConfig()

	client := summary.NewClient(cfg.APIBaseURL, zap.NewNop())
	dashboard := ui.NewDashboard(cases.NewStore(), client, cfg.IncidentID, ui.NewStyles(themeFor(cfg)))

	p := tea.NewProgram(dashboard, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}

// runCheck exercises both diagnostics operations concurrently and prints
// the results.
func runCheck(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	client := summary.NewClient(cfg.APIBaseURL, logger)

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	logger.Info("Running diagnostics",
		zap.String("base_url", cfg.APIBaseURL),
		zap.String("incident_id", cfg.IncidentID))

	var (
		status *summary.ServiceStatus
		result *summary.ExecutionSummary
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		status, err = client.GetServiceStatus(ctx)
		if err != nil {
			return fmt.Errorf("service status check: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		result, err = client.GenerateExecutionSummary(ctx, cfg.IncidentID, map[string]any{
			"source":           "sentinel-check",
			"include_timeline": true,
		})
		if err != nil {
			return fmt.Errorf("summary generation: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Println("✓ Service status check passed")
	fmt.Printf("  status:              %s\n", status.Status)
	fmt.Printf("  service:             %s\n", status.Service)
	fmt.Printf("  agent_4_integration: %s\n", status.Agent4Integration)
	fmt.Println("✓ Summary generated")
	fmt.Printf("  incident_id:         %s\n", result.IncidentID)
	fmt.Printf("  execution_status:    %s\n", result.Summary.ExecutionStatus)
	escalation := "no"
	if result.Summary.EscalationRequired {
		escalation = "yes"
	}
	fmt.Printf("  escalation_required: %s\n", escalation)
	fmt.Printf("  summary_path:        %s\n", result.Summary.SummaryPath)
	return nil
}
