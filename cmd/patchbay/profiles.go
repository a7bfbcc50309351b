package main

import (
	"fmt"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay/models"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"github.com/ifls/patchbay-go/pkg/patchbay/profiles"
	"github.com/spf13/cobra"
)

var (
	gearJSON    string
	profilesOut string
	docsOut     string
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Generate device profile skeletons from gear.json",
		Args:  cobra.NoArgs,
		RunE:  runProfiles,
	}
	cmd.Flags().StringVar(&gearJSON, "gear-json", "", "gear.json produced by convert (required)")
	cmd.Flags().StringVar(&profilesOut, "out", "", "Profiles directory")
	cmd.Flags().StringVar(&docsOut, "docs-out", "", "Directory for Markdown pages")
	_ = cmd.MarkFlagRequired("gear-json")
	return cmd
}

func runProfiles(cmd *cobra.Command, args []string) error {
	var gear models.GearDocument
	if err := output.ReadJSON(gearJSON, &gear); err != nil {
		return fmt.Errorf("failed to read gear: %w", err)
	}

	_, err := profiles.Generate(gear.Gear, profiles.Options{
		Source:  gearJSON,
		OutDir:  pick(cmd.Flags().Changed("out"), profilesOut, cfg.Paths.ProfilesDir),
		DocsDir: pick(cmd.Flags().Changed("docs-out"), docsOut, cfg.Paths.DocsDir),
		Logger:  logger,
		Now:     time.Now,
	})
	return err
}
