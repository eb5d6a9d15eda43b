package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"team-inventory/core/config"
	"team-inventory/core/logger"
	"team-inventory/core/roster"
	"team-inventory/core/snapshot"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunRoster bool
	yesConfirm   bool
)

// rosterCmd is the parent command for roster operations.
var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage the team roster",
}

// rosterImportCmd replaces the roster from a parsed roster file.
var rosterImportCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Replace players and assignments from a roster file",
	Long: `Import a parsed roster. Every current assignment is checked in, all players
are removed, and the roster is rebuilt with the requested checkouts.

A preview is always printed first. Lines that cannot be satisfied are reported
and skipped; the rest are applied.

Examples:
  # Preview only
  roster import roster.json --dry-run

  # Import with interactive confirmation
  roster import roster.json

  # Import non-interactively
  roster import roster.json --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runRosterImport,
}

func init() {
	rosterCmd.AddCommand(rosterImportCmd)

	rosterImportCmd.Flags().BoolVar(&dryRunRoster, "dry-run", false, "Only print the preview")
	rosterImportCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm the import (non-interactive)")

	RootCmd.AddCommand(rosterCmd)
}

func runRosterImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	input, err := readRoster(args[0])
	if err != nil {
		return err
	}

	if cfg.Persistence.Backend == snapshot.BackendMemory {
		l.Warn("Memory persistence backend: the import will not outlive this command")
	}

	tr, cleanup, err := bootstrap(ctx, cfg, l)
	if err != nil {
		return err
	}
	defer cleanup()

	preview := tr.PreviewRoster(input)
	printRosterReport(l, preview)

	if dryRunRoster {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}

	if !confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout()) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	report := tr.ImportRoster(ctx, input)
	printRosterReport(l, report)
	l.Info("Roster imported", zap.Int("assigned", report.Summary.Assigned))
	return nil
}

func readRoster(path string) (roster.Roster, error) {
	var r roster.Roster

	f, err := os.Open(path)
	if err != nil {
		return r, fmt.Errorf("failed to open roster file: %w", err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&r); err != nil {
		return r, fmt.Errorf("failed to parse roster file: %w", err)
	}
	return r, nil
}

// printRosterReport prints a reconciliation report using logger.
func printRosterReport(l *zap.Logger, report *roster.Report) {
	s := report.Summary

	l.Info("Roster report",
		zap.Bool("dry_run", report.DryRun),
		zap.Int("checked_in", s.CheckedIn),
		zap.Int("players", s.Players),
		zap.Int("lines", s.Lines),
		zap.Int("assigned", s.Assigned),
		zap.Int("issues", s.Issues),
	)

	for _, msg := range report.Messages() {
		l.Warn("Roster issue", zap.String("message", msg))
	}
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction(in io.Reader, out io.Writer) bool {
	if yesConfirm {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprint(out, "\n⚠️  Type 'yes' to replace the current roster: ")
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(response) == "yes"
}
