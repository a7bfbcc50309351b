package main

import (
	"fmt"

	"github.com/ifls/patchbay-go/pkg/patchbay/enrich"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	manualMap   string
	profilesDir string
	maxProfiles int
)

func newEnrichCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich device profiles from the manuals listed in manual_map.csv",
		Args:  cobra.NoArgs,
		RunE:  runEnrich,
	}
	cmd.Flags().StringVar(&manualMap, "manual-map", "", "CSV with id and manual_url columns")
	cmd.Flags().StringVar(&profilesDir, "profiles-dir", "", "Profiles directory")
	cmd.Flags().IntVar(&maxProfiles, "max", 0, "Profiles to enrich (default from config)")
	return cmd
}

func runEnrich(cmd *cobra.Command, args []string) error {
	timeout, err := cfg.Enrich.TimeoutDuration()
	if err != nil {
		return err
	}

	ec := enrich.DefaultConfig()
	ec.ManualMap = pick(cmd.Flags().Changed("manual-map"), manualMap, cfg.Paths.ManualMap)
	ec.ProfilesDir = pick(cmd.Flags().Changed("profiles-dir"), profilesDir, cfg.Paths.ProfilesDir)
	ec.Max = cfg.Enrich.Max
	if cmd.Flags().Changed("max") {
		ec.Max = maxProfiles
	}
	if cfg.Enrich.Concurrency > 0 {
		ec.Concurrency = cfg.Enrich.Concurrency
	}
	if cfg.Enrich.MaxPDFPages > 0 {
		ec.MaxPDFPages = cfg.Enrich.MaxPDFPages
	}
	ec.Timeout = timeout
	ec.UserAgent = cfg.Enrich.UserAgent
	ec.Logger = logger

	sum, err := enrich.Run(cmd.Context(), ec)
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}
	logger.Info("enrichment done",
		zap.Int("processed", sum.Processed),
		zap.Int("failed", sum.Failed),
		zap.Int("skipped", sum.Skipped))
	return nil
}
