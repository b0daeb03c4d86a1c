package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"pancake/internal/config"
	"pancake/internal/processor"
	"pancake/internal/report"
	"pancake/internal/tui"
	"pancake/internal/uploader"
	"pancake/internal/validator"
)

var (
	flagToken   string
	flagID      string
	flagReport  string
	flagConfig  string
	flagVerbose int
)

var rootCmd = &cobra.Command{
	Use:   "pancake <path>",
	Short: "pancake 🥞 - bulk-upload image trees to Cloudflare Images",
	Long: "pancake 🥞 recursively scans a directory for images that conform to the\n" +
		"Cloudflare Images limits, uploads each one, and can emit a CSV report of\n" +
		"every upload attempt.",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runUpload,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&flagToken, "cloudflare-token", "", "Cloudflare authorization token (env CLOUDFLARE_AUTH_TOKEN)")
	rootCmd.Flags().StringVar(&flagID, "cloudflare-id", "", "Cloudflare account id (env CLOUDFLARE_ID)")
	rootCmd.Flags().StringVar(&flagReport, "report", "", "CSV report filename")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "TOML file overriding upload limits")
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "raise log verbosity (repeatable, up to -vvvv)")
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

func runUpload(cmd *cobra.Command, args []string) error {
	path := args[0]

	// A .env in the working directory is a convenience, not a requirement.
	_ = godotenv.Load()

	creds, err := resolveCredentials()
	if err != nil {
		return err
	}

	logger := newLogger(flagVerbose)

	cons, baseURL, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot scan %s: %w", path, err)
	}

	updates := make(chan processor.ProgressUpdate, 64)
	model := tui.NewModel(updates)
	program := tea.NewProgram(model)
	uiDone := watchUI(program, updates)

	check := validator.New(cons, logger)
	client := uploader.New(baseURL, creds, logger)
	proc := processor.New(check, client, logger, updates)

	entries, summary, runErr := proc.Run(context.Background(), path)
	close(updates)
	<-uiDone
	if runErr != nil {
		return runErr
	}

	if flagReport != "" {
		if err := report.WriteCSV(flagReport, entries); err != nil {
			return err
		}
	}

	rows := []tui.SummaryRow{
		{Label: "Files examined", Value: fmt.Sprintf("%d", summary.Found)},
		{Label: "Uploaded", Value: fmt.Sprintf("%d", summary.Uploaded)},
		{Label: "Skipped by checks", Value: fmt.Sprintf("%d", summary.Skipped)},
		{Label: "Failed uploads", Value: fmt.Sprintf("%d", summary.Failed)},
	}
	fmt.Fprintln(os.Stdout, tui.RenderSummary(rows))
	if flagReport != "" {
		fmt.Fprintf(os.Stdout, "Report written to: %s\n", flagReport)
	}

	return nil
}

type uiProgram interface {
	Run() (tea.Model, error)
}

// watchUI runs the progress UI and, once it stops, keeps draining updates so
// the walk never blocks on a full channel even when the UI exits early. The
// returned channel closes after updates is closed and drained.
func watchUI(program uiProgram, updates <-chan processor.ProgressUpdate) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		_, _ = program.Run()
		for range updates {
		}
		close(done)
	}()
	return done
}

// resolveCredentials prefers flags over the environment. Both values are
// required before any traversal starts, and neither is ever logged.
func resolveCredentials() (config.Credentials, error) {
	token := flagToken
	if token == "" {
		token = os.Getenv("CLOUDFLARE_AUTH_TOKEN")
	}
	if token == "" {
		return config.Credentials{}, fmt.Errorf("missing Cloudflare token: set --cloudflare-token or CLOUDFLARE_AUTH_TOKEN")
	}

	id := flagID
	if id == "" {
		id = os.Getenv("CLOUDFLARE_ID")
	}
	if id == "" {
		return config.Credentials{}, fmt.Errorf("missing Cloudflare account id: set --cloudflare-id or CLOUDFLARE_ID")
	}

	return config.Credentials{AccountID: id, Token: token}, nil
}

// newLogger maps the -v count onto slog levels: 0 errors only, -v warnings,
// -vv info, -vvv and above debug. Logs go to stderr so they never mix with
// the summary on stdout.
func newLogger(verbose int) *slog.Logger {
	var level slog.Level
	switch {
	case verbose <= 0:
		level = slog.LevelError
	case verbose == 1:
		level = slog.LevelWarn
	case verbose == 2:
		level = slog.LevelInfo
	default:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
