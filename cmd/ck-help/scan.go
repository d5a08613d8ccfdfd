package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claudekit/ck-help/pkg/ingest"
	"github.com/claudekit/ck-help/pkg/presenter"
)

// ScanConfig holds configuration for the scan command.
type ScanConfig struct {
	Roots  []string
	Output string
}

// NewScanConfig creates a ScanConfig with default values.
func NewScanConfig() *ScanConfig {
	return &ScanConfig{
		Roots:  nil,
		Output: filepath.Join(".claudekit", ingest.SnapshotFileName),
	}
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Regenerate the skills catalog snapshot",
	Long: `Scan skill directories for SKILL.md metadata and write the catalog
snapshot that queries are routed against.

Skills that fail to parse are reported as warnings and skipped; the scan
itself only fails when the snapshot cannot be written.

Examples:
  ck-help scan
  ck-help scan --root ./docs/skills --output /tmp/catalog.jsonl`,
	Run: func(cmd *cobra.Command, _ []string) {
		runScan(cmd.Context(), getScanConfigFromFlags(cmd))
	},
}

func init() {
	defaults := NewScanConfig()
	scanCmd.Flags().StringSlice("root", defaults.Roots, "Skill root directories to scan (repeatable; defaults to local and user-global roots)")
	scanCmd.Flags().StringP("output", "o", defaults.Output, "Path of the snapshot to write")
}

func getScanConfigFromFlags(cmd *cobra.Command) *ScanConfig {
	config := NewScanConfig()
	if roots, err := cmd.Flags().GetStringSlice("root"); err == nil {
		config.Roots = roots
	}
	if output, err := cmd.Flags().GetString("output"); err == nil {
		config.Output = output
	}
	return config
}

func runScan(ctx context.Context, config *ScanConfig) {
	var opts []ingest.Option
	if len(config.Roots) > 0 {
		opts = append(opts, ingest.WithRoots(config.Roots...))
	}

	scanner, err := ingest.NewScanner(opts...)
	if err != nil {
		presenter.Error(err, "Failed to initialize skill scanner")
		os.Exit(1)
	}

	skills, scanErr := scanner.Scan(ctx)
	if scanErr != nil {
		presenter.Warning(fmt.Sprintf("Some skills were skipped:\n%v", scanErr))
	}

	if err := ingest.WriteSnapshot(config.Output, skills); err != nil {
		presenter.Error(err, "Failed to write catalog snapshot")
		os.Exit(1)
	}
	if err := ingest.WriteLegacyPlaceholder(config.Output); err != nil {
		presenter.Warning(fmt.Sprintf("Failed to refresh legacy placeholder: %v", err))
	}

	presenter.Success(fmt.Sprintf("Wrote %d skill(s) to %s", len(skills), config.Output))
}
