package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rlcoach/rlcoach/pkg/rlcoach"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func newReportMDCmd() *cobra.Command {
	var (
		outDir     string
		headerOnly bool
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "report-md <replay-file>",
		Short: "Parse a replay, writing both the JSON report and a Markdown dossier",
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

			jsonPath, err := rlcoach.WriteReport(rep, reportsDir, timezone, pretty)
			if err != nil {
				return writeErrorDocument(err)
			}

			mdPath := strings.TrimSuffix(jsonPath, filepath.Ext(jsonPath)) + ".md"
			if err := os.WriteFile(mdPath, []byte(renderMarkdown(rep)), 0o644); err != nil {
				return writeErrorDocument(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), jsonPath)
			fmt.Fprintln(cmd.OutOrStdout(), mdPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "reports directory (default: config paths.reports_dir, else ./reports)")
	cmd.Flags().BoolVar(&headerOnly, "header-only", false, "skip network-frame parsing, producing a header-only report")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the written JSON report")
	return cmd
}

// renderMarkdown produces a human-readable dossier from the same Report
// the JSON writer consumes. This is a thin convenience view, not a second
// source of truth: every number here traces back to a report field.
func renderMarkdown(rep *rlreplay.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Match report: %s\n\n", rep.ReplayID)
	fmt.Fprintf(&b, "Playlist: %s  \nMap: %s  \nTeam size: %d  \nDuration: %.0fs\n\n",
		rep.Metadata.Playlist, rep.Metadata.Map, rep.Metadata.TeamSize, rep.Metadata.DurationSeconds)

	fmt.Fprintf(&b, "## Score\n\nBlue %d - %d Orange\n\n", rep.Teams.Blue.Score, rep.Teams.Orange.Score)

	if len(rep.Quality.Warnings) > 0 {
		b.WriteString("## Quality warnings\n\n")
		for _, w := range rep.Quality.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Players\n\n")
	b.WriteString("| Player | Team | Goals | Saves | Assists | Shots | Avg boost |\n")
	b.WriteString("|---|---|---|---|---|---|---|\n")
	for _, p := range rep.Players {
		pm, ok := rep.Analysis.PerPlayer[p.PlayerID]
		if !ok {
			continue
		}
		teamName := "Blue"
		if p.Team == 1 {
			teamName = "Orange"
		}
		avgBoost := 0.0
		if pm.Boost.AvgBoost != nil {
			avgBoost = *pm.Boost.AvgBoost
		}
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %d | %d | %.1f |\n",
			p.DisplayName, teamName,
			pm.Fundamentals.Goals, pm.Fundamentals.Saves, pm.Fundamentals.Assists, pm.Fundamentals.Shots,
			avgBoost)
	}
	b.WriteString("\n")

	if len(rep.Analysis.CoachingInsights) > 0 {
		b.WriteString("## Insights\n\n")
		for _, ins := range rep.Analysis.CoachingInsights {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", ins.Code, ins.Severity, ins.Message)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "## Events\n\nGoals: %d  \nDemos: %d  \nKickoffs: %d  \nChallenges: %d\n",
		len(rep.Events.Goals), len(rep.Events.Demos), len(rep.Events.Kickoffs), len(rep.Events.Challenges))

	return b.String()
}
