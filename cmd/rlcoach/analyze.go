package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rlcoach/rlcoach/internal/config"
	"github.com/rlcoach/rlcoach/internal/rlerrors"
	"github.com/rlcoach/rlcoach/pkg/rlcoach"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		outDir     string
		headerOnly bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <replay-file>",
		Short: "Parse a replay and write its analysis report as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadOptionalConfig(flagConfigPath)
			if err != nil {
				return writeErrorDocument(err)
			}

			rep, err := rlcoach.ProcessReplay(args[0], rlcoach.Options{
				Config:     cfg,
				HeaderOnly: headerOnly,
			})
			if err != nil {
				return writeErrorDocument(err)
			}

			reportsDir := outDir
			if reportsDir == "" && cfg != nil {
				reportsDir = cfg.Paths.ReportsDir
			}
			if reportsDir == "" {
				reportsDir = "./reports"
			}
			timezone := ""
			if cfg != nil {
				timezone = cfg.Preferences.Timezone
			}

			path, err := rlcoach.WriteReport(rep, reportsDir, timezone, pretty)
			if err != nil {
				return writeErrorDocument(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "reports directory (default: config paths.reports_dir, else ./reports)")
	cmd.Flags().BoolVar(&headerOnly, "header-only", false, "skip network-frame parsing, producing a header-only report")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the written JSON report")
	return cmd
}

func loadOptionalConfig(path string) (*config.Config, error) {
	if path == "" {
		return nil, nil
	}
	return config.Load(path)
}

// writeErrorDocument prints the error document to stdout and returns a
// non-nil error so Execute reports a nonzero exit code.
func writeErrorDocument(err error) error {
	doc := rlreplay.ErrorDocument{Error: "internal_error", Details: err.Error()}
	if kind, ok := rlerrors.KindOf(err); ok {
		doc.Error = string(kind)
		if rerr, ok := err.(*rlerrors.Error); ok {
			doc.Details = rerr.Details
		}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(doc)
	return err
}
