package rlcoach

import (
	"time"

	"github.com/google/uuid"

	"github.com/rlcoach/rlcoach/internal/ingest"
	"github.com/rlcoach/rlcoach/internal/parser"
	"github.com/rlcoach/rlcoach/internal/quality"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

type assembleInput struct {
	Path          string
	Record        *ingest.Record
	Header        *rlreplay.Header
	Diagnostics   *quality.Diagnostics
	ParsedNetwork bool
	Variant       parser.Variant
	MeasuredHz    float64
	TotalFrames   int
	Analysis      rlreplay.Analysis
	Events        rlreplay.Events
	PlayerIDs     []string
	TeamOf        map[string]byte
}

// assembleReport builds the root Report document from every stage's
// output, per spec.md §4.7/§6. Measured Hz and total frames come from the
// caller and duration_seconds is the header's match length; schema
// validation happens at write time (internal/report.Write).
func assembleReport(in assembleInput) *rlreplay.Report {
	matchGUID := uuid.NewString()

	rep := &rlreplay.Report{
		SchemaVersion:  rlreplay.SchemaVersion,
		ReplayID:       in.Record.SHA256,
		SourceFile:     in.Path,
		GeneratedAtUTC: nowUTC(),
		Metadata: rlreplay.Metadata{
			Playlist:            in.Header.PlaylistID,
			Map:                 in.Header.MapName,
			TeamSize:            in.Header.TeamSize,
			MatchGUID:           matchGUID,
			DurationSeconds:     in.Header.MatchLengthSeconds,
			RecordedFrameHz:     in.MeasuredHz,
			TotalFrames:         in.TotalFrames,
			CoordinateReference: rlreplay.DefaultCoordinateReference,
		},
		Quality: rlreplay.Quality{
			Parser: rlreplay.ParserQuality{
				Name:              "rlcoach-parser",
				Version:           parserVersion,
				ParsedNetworkData: in.ParsedNetwork,
				ParsedHeaderData:  true,
				CRCChecked:        in.Record.CRCChecked,
			},
			Warnings: buildWarnings(in),
		},
		Teams:    buildTeams(in),
		Players:  buildPlayers(in.Header),
		Analysis: in.Analysis,
		Events:   buildEventsDoc(in.Events),
	}
	return rep
}

// parserVersion identifies this build's parser adapter, surfaced in
// quality.parser.version.
const parserVersion = "1.0.0"

func buildWarnings(in assembleInput) []string {
	all := append([]string{}, in.Header.Warnings...)
	all = append(all, in.Diagnostics.Warnings...)
	if !in.Record.CRCChecked {
		all = append(all, quality.WarnCRCNotVerified)
	}
	return quality.Dedup(all)
}

func buildTeams(in assembleInput) rlreplay.Teams {
	blue := rlreplay.TeamSummary{Name: "Blue", Score: in.Header.Team0Score}
	orange := rlreplay.TeamSummary{Name: "Orange", Score: in.Header.Team1Score}
	for _, p := range in.Header.Players {
		if p.Team == 0 {
			blue.Players = append(blue.Players, p.CanonicalID)
		} else {
			orange.Players = append(orange.Players, p.CanonicalID)
		}
	}
	return rlreplay.Teams{Blue: blue, Orange: orange}
}

func buildPlayers(h *rlreplay.Header) []rlreplay.PlayerEntry {
	out := make([]rlreplay.PlayerEntry, 0, len(h.Players))
	for _, p := range h.Players {
		out = append(out, rlreplay.PlayerEntry{
			PlayerID:    p.CanonicalID,
			DisplayName: p.DisplayName,
			Team:        p.Team,
			PlatformIDs: p.PlatformIDs,
			Camera:      p.Camera,
			Loadout:     p.Loadout,
		})
	}
	return out
}

func buildEventsDoc(ev rlreplay.Events) rlreplay.EventsDoc {
	return rlreplay.EventsDoc{
		Timeline:     ev.Timeline,
		Goals:        ev.Goals,
		Demos:        ev.Demos,
		Kickoffs:     ev.Kickoffs,
		BoostPickups: ev.BoostPickups,
		Touches:      ev.Touches,
		Challenges:   ev.Challenges,
	}
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}
