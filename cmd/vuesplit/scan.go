package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vuesplit/vuesplit/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Parse every component under a directory",
	Long:  "Walk a directory tree, parse every .vue file found and report per-file results. Exits non-zero when any file fails to parse.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().IntP("jobs", "j", 0, "Concurrent parse workers (default: one per CPU)")
	scanCmd.Flags().Bool("json", false, "Emit the full report as JSON")

	_ = viper.BindPFlag("jobs", scanCmd.Flags().Lookup("jobs"))

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	emitter := scan.NewEmitter()
	emitter.On(logEventListener())

	report, err := scan.Dir(cmd.Context(), args[0], scan.Options{
		Jobs:          viper.GetInt("jobs"),
		AllowUnquoted: viper.GetBool("allow_unquoted"),
		Events:        emitter,
	})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		printScanSummary(report)
	}

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", report.Failed, report.Files)
	}
	return nil
}

// logEventListener returns an event listener that logs scan progress.
func logEventListener() func(scan.Event) {
	return func(e scan.Event) {
		switch e.Type {
		case scan.EventScanStarted:
			root, _ := e.Data["root"].(string)
			files, _ := e.Data["files"].(int)
			log.Info().Str("root", root).Int("files", files).Msg("scan started")

		case scan.EventFileParsed:
			path, _ := e.Data["path"].(string)
			sections, _ := e.Data["sections"].(int)
			log.Info().Str("path", path).Int("sections", sections).Msg("parsed")

		case scan.EventFileFailed:
			path, _ := e.Data["path"].(string)
			errMsg, _ := e.Data["error"].(string)
			log.Warn().Str("path", path).Str("error", errMsg).Msg("parse failed")

		case scan.EventScanCompleted:
			parsed, _ := e.Data["parsed"].(int)
			failed, _ := e.Data["failed"].(int)
			log.Info().Int("parsed", parsed).Int("failed", failed).Msg("scan completed")
		}
	}
}

// printScanSummary prints per-file outcomes and totals.
func printScanSummary(report *scan.Report) {
	for _, res := range report.Results {
		if res.Err != "" {
			fmt.Fprintf(os.Stdout, "%s: %s\n", res.Path, res.Err)
			continue
		}
		fmt.Fprintf(os.Stdout, "%s: %d sections, %d blocks\n", res.Path, res.Sections, len(res.Blocks))
	}
	fmt.Fprintf(os.Stdout, "\n%d files, %d parsed, %d failed (%.1fs)\n",
		report.Files, report.Parsed, report.Failed, report.Elapsed.Seconds())
}
