// Package main provides the CLI entry point for sheetfill.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/lists"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/models"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/output"
	"github.com/ukaji3/sheetfill-go/pkg/sheetfill/sheet"
)

var (
	sourceRange string
	targetRange string
	sheetName   string
	outputPath  string
	listsPath   string
	locale      string
	reportPath  string
	pretty      bool
	verbose     bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetfill",
		Short: "Autofill cell ranges in Excel files",
		Long: `sheetfill detects the pattern in a range of cells (numbers, dates,
month and weekday names, custom lists, formulas) and continues it into
an adjacent range, like dragging a spreadsheet fill handle.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pattern detection to stderr")
	rootCmd.PersistentFlags().StringVar(&locale, "locale", "", "Locale of month and weekday names (default: en)")
	rootCmd.PersistentFlags().StringVar(&listsPath, "lists", "", "Custom list file, one entry per line, groups separated by a \\ line")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	fillCmd := &cobra.Command{
		Use:   "fill [input.xlsx]",
		Short: "Fill a target range from a source range",
		Args:  cobra.ExactArgs(1),
		RunE:  runFill,
	}
	fillCmd.Flags().StringVarP(&sourceRange, "source", "s", "", "Source range, e.g. A1:A3")
	fillCmd.Flags().StringVarP(&targetRange, "target", "t", "", "Target range, e.g. A1:A10 (default: down to the last used row)")
	fillCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet name (default: active sheet)")
	fillCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	fillCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON fill report to this path (- for stdout)")
	fillCmd.MarkFlagRequired("source")

	listsCmd := &cobra.Command{
		Use:   "lists",
		Short: "Print the reference lists used to recognize names",
		Args:  cobra.NoArgs,
		RunE:  runLists,
	}

	rootCmd.AddCommand(fillCmd, listsCmd)
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func referenceLists() (*lists.ReferenceLists, error) {
	ref, err := lists.ForLocale(locale)
	if err != nil {
		return nil, err
	}
	if listsPath != "" {
		custom, err := lists.LoadCustomList(listsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load custom lists: %w", err)
		}
		ref = ref.WithCustom(custom)
	}
	return ref, nil
}

func runFill(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	log := newLogger()
	ref, err := referenceLists()
	if err != nil {
		return err
	}

	src, err := sheetfill.ParseRange(sourceRange)
	if err != nil {
		return err
	}

	x, err := sheet.OpenXLSX(inputPath, sheetName)
	if err != nil {
		return err
	}
	defer x.Close()

	dest, err := resolveTarget(x, src)
	if err != nil {
		return err
	}

	opts := sheetfill.Options{Lists: ref, Logger: log}
	report, err := sheetfill.Autofill(x, src, dest, opts)
	if err != nil {
		return fmt.Errorf("autofill failed: %w", err)
	}
	log.Info("filled", "sheet", x.Name(), "source", sheetfill.FormatRange(src),
		"target", sheetfill.FormatRange(dest), "cells", report.CellsWritten())

	// Write workbook
	if outputPath != "" {
		err = x.SaveAs(outputPath)
	} else {
		err = x.Save()
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if reportPath != "" {
		return writeReport(cmd, report)
	}
	return nil
}

// resolveTarget parses --target, or extends the source down to the last
// used row of the sheet when it is omitted.
func resolveTarget(x *sheet.XLSX, src models.Rect) (models.Rect, error) {
	if targetRange != "" {
		return sheetfill.ParseRange(targetRange)
	}
	used, ok, err := x.UsedRange()
	if err != nil {
		return models.Rect{}, err
	}
	if !ok {
		return src, nil
	}
	dest, _ := sheet.FillDownTarget(src, used)
	return dest, nil
}

func writeReport(cmd *cobra.Command, report *models.FillReport) error {
	jsonData, err := output.ToJSON(report, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if reportPath == "-" {
		fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
		return nil
	}
	if err := os.WriteFile(reportPath, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func runLists(cmd *cobra.Command, args []string) error {
	ref, err := referenceLists()
	if err != nil {
		return err
	}
	name := locale
	if name == "" {
		name = lists.Locales()[0]
	}
	jsonData, err := output.ListsToJSON(output.NewListsView(name, ref), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}
