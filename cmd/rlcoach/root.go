package main

import (
	"github.com/spf13/cobra"
)

var (
	flagConfigPath string
	flagHashAlgo   string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Offline Rocket League replay analysis engine",
		Version: appVersion,
	}
	root.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the YAML identity/paths config")
	root.PersistentFlags().StringVar(&flagHashAlgo, "hash-algo", "sha256", "debug: accepted but not read; replay_id is always SHA-256")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newReportMDCmd())
	return root
}
