package main

import (
	"fmt"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay/coverage"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	coverageProfiles string
	reportDir        string
)

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Write a CSV and XLSX coverage report over the device profiles",
		Args:  cobra.NoArgs,
		RunE:  runCoverage,
	}
	cmd.Flags().StringVar(&coverageProfiles, "profiles-dir", "", "Profiles directory")
	cmd.Flags().StringVar(&reportDir, "out-dir", "", "Report directory")
	return cmd
}

func runCoverage(cmd *cobra.Command, args []string) error {
	dir := pick(cmd.Flags().Changed("profiles-dir"), coverageProfiles, cfg.Paths.ProfilesDir)
	rows, err := coverage.Build(dir)
	if err != nil {
		return fmt.Errorf("failed to read profiles: %w", err)
	}

	stamp := time.Now().UTC().Format("20060102_150405")
	rep, err := coverage.Write(pick(cmd.Flags().Changed("out-dir"), reportDir, cfg.Paths.ReportDir), stamp, rows)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	logger.Info("wrote coverage report",
		zap.Int("devices", len(rows)),
		zap.String("csv", rep.CSV),
		zap.String("xlsx", rep.XLSX))
	return nil
}
