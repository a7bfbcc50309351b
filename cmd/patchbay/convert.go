package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ifls/patchbay-go/pkg/patchbay"
	"github.com/ifls/patchbay-go/pkg/patchbay/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	gearXLSX       string
	patchbayXLSX   string
	outDir         string
	sheetName      string
	area           string
	optionalInputs bool
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert gear and patchbay workbooks to gear.json and patchbay.json",
		Args:  cobra.NoArgs,
		RunE:  runConvert,
	}
	cmd.Flags().StringVar(&gearXLSX, "gear-xlsx", "", "Gear inventory workbook")
	cmd.Flags().StringVar(&patchbayXLSX, "patchbay-xlsx", "", "Patchbay matrix workbook")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory")
	cmd.Flags().StringVar(&sheetName, "sheet", "", "Patchbay sheet (default: active sheet)")
	cmd.Flags().StringVar(&area, "area", "", "Limit the patchbay scan to a range or defined name")
	cmd.Flags().BoolVar(&optionalInputs, "optional-inputs", false, "Allow an inputs header without a body")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	gearPath := pick(flags.Changed("gear-xlsx"), gearXLSX, cfg.Paths.GearXLSX)
	patchPath := pick(flags.Changed("patchbay-xlsx"), patchbayXLSX, cfg.Paths.PatchbayXLSX)
	dir := pick(flags.Changed("out-dir"), outDir, cfg.Paths.OutDir)
	if gearPath == "" && patchPath == "" {
		return errors.New("nothing to convert: set --gear-xlsx and/or --patchbay-xlsx")
	}

	opts := patchbay.Options{
		Sheet:          pick(flags.Changed("sheet"), sheetName, cfg.Extract.Sheet),
		Area:           pick(flags.Changed("area"), area, cfg.Extract.Area),
		OptionalInputs: optionalInputs || cfg.Extract.OptionalInputs,
		Logger:         logger,
		Now:            time.Now,
	}

	if gearPath != "" {
		gearOpts := opts
		gearOpts.Sheet = ""
		gear, err := patchbay.ConvertGear(gearPath, gearOpts)
		if err != nil {
			return fmt.Errorf("gear conversion failed: %w", err)
		}
		if err := writeDoc(filepath.Join(dir, "gear.json"), gear); err != nil {
			return err
		}
	}

	if patchPath != "" {
		doc, err := patchbay.ExtractRouting(patchPath, opts)
		if err != nil {
			return fmt.Errorf("patchbay extraction failed: %w", err)
		}
		if err := writeDoc(filepath.Join(dir, "patchbay.json"), doc); err != nil {
			return err
		}
	}
	return nil
}

func writeDoc(path string, v any) error {
	if err := output.WriteJSON(path, v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote", zap.String("path", path))
	return nil
}

// pick prefers an explicitly set flag over the config value.
func pick(changed bool, flag, fromConfig string) string {
	if changed || fromConfig == "" {
		return flag
	}
	return fromConfig
}
