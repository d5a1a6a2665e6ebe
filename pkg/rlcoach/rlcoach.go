// Package rlcoach wires C1 through C7 into the single library entry point
// external callers (and the CLI) use: process a replay file into a
// validated report, or a structured error.
package rlcoach

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rlcoach/rlcoach/internal/analyze"
	"github.com/rlcoach/rlcoach/internal/config"
	"github.com/rlcoach/rlcoach/internal/events"
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/internal/ingest"
	"github.com/rlcoach/rlcoach/internal/normalize"
	"github.com/rlcoach/rlcoach/internal/parser"
	"github.com/rlcoach/rlcoach/internal/quality"
	"github.com/rlcoach/rlcoach/internal/report"
	"github.com/rlcoach/rlcoach/internal/rlerrors"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// Options configures a single ProcessReplay call.
type Options struct {
	Config     *config.Config
	HeaderOnly bool
}

// ProcessReplay runs the full pipeline (C2->C7) for the replay at path and
// returns the validated Report, or an *rlerrors.Error on any fatal
// condition (excluded_account short-circuits before any parsing work
// beyond the header).
func ProcessReplay(path string, opts Options) (*rlreplay.Report, error) {
	rec, err := ingest.Ingest(path, ingest.Options{})
	if err != nil {
		return nil, err
	}

	adapter, err := parser.NewAdapter(rec.Data, opts.HeaderOnly)
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindParserUnavailable, "selecting parser adapter", err)
	}

	header, err := adapter.ParseHeader()
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg != nil {
		meID, _ := cfg.ResolveMe(header)
		if cfg.IsExcluded(header, meID) {
			return nil, rlerrors.New(rlerrors.KindExcludedAccount, "resolved identity is in excluded_names")
		}
	}

	diag := quality.NewDiagnostics()
	var frames []rlreplay.Frame
	var padEvents []parser.BoostPadEvent
	parsedNetwork := false

	netResult, netErr := adapter.ParseNetwork()
	if netErr != nil {
		log.Warn().Err(netErr).Str("path", path).Msg("network frames unavailable, continuing header-only")
		diag.Status = quality.StatusUnavailable
		diag.AddWarning(quality.WarnNetworkDataUnparsedFallbackHeaderOnly)
	} else {
		frames = netResult.Frames
		padEvents = netResult.PadEvents
		diag = netResult.Diagnostics
		parsedNetwork = len(frames) > 0
	}

	playerIndex := normalize.NormalizePlayers(header, frames, diag)
	timeline, downsampleN, downsampled := normalize.BuildTimeline(header, frames, diag)
	_ = downsampleN
	_ = downsampled
	measuredHz := normalize.MeasureFrameRate(timeline)

	teamOf := map[string]byte{}
	var playerIDs []string
	for id, p := range playerIndex.ByCanonicalID {
		teamOf[id] = p.Team
		playerIDs = append(playerIDs, id)
	}

	padObservations := make([]events.PadObservation, 0, len(padEvents))
	for _, pe := range padEvents {
		padObservations = append(padObservations, events.PadObservation{
			TimestampS: pe.TimestampS,
			PadID:      pe.PadID,
			Status:     string(pe.Status),
			PlayerID:   pe.PlayerID,
			PlayerTeam: teamOf[pe.PlayerID],
			PadSide:    pe.PadSide,
		})
	}

	ev := events.Detect(header, timeline, padObservations, field.ArenaStandard)

	duration := header.MatchLengthSeconds
	if len(timeline) > 0 {
		duration = timeline[len(timeline)-1].TimestampS - timeline[0].TimestampS
	}

	analysis := analyze.Run(analyze.Input{
		Header:    header,
		Frames:    timeline,
		Events:    ev,
		PlayerIDs: playerIDs,
		TeamOf:    teamOf,
		DurationS: duration,
		Arena:     field.ArenaStandard,
	})

	rep := assembleReport(assembleInput{
		Path:          path,
		Record:        rec,
		Header:        header,
		Diagnostics:   diag,
		ParsedNetwork: parsedNetwork,
		Variant:       adapter.Variant(),
		MeasuredHz:    measuredHz,
		TotalFrames:   len(timeline),
		Analysis:      analysis,
		Events:        ev,
		PlayerIDs:     playerIDs,
		TeamOf:        teamOf,
	})

	if cfg != nil {
		meID, ok := cfg.ResolveMe(header)
		if ok {
			for i := range rep.Players {
				if rep.Players[i].PlayerID == meID {
					rep.Players[i].IsMe = true
				}
			}
		}
	}

	return rep, nil
}

// WriteReport validates and atomically writes rep to its deterministic
// path under reportsDir, using timezone (IANA name, may be empty) to
// compute the local play date.
func WriteReport(rep *rlreplay.Report, reportsDir, timezone string, pretty bool) (string, error) {
	playDate := time.Now().UTC()
	if rep.Metadata.StartedAtUTC != "" {
		if parsed, err := time.Parse(time.RFC3339, rep.Metadata.StartedAtUTC); err == nil {
			playDate = parsed
			if timezone != "" {
				if loc, err := time.LoadLocation(timezone); err == nil {
					playDate = parsed.In(loc)
				}
			}
		}
	}
	path := report.OutputPath(reportsDir, playDate, rep.ReplayID)
	if err := report.Write(rep, path, pretty); err != nil {
		return "", err
	}
	return path, nil
}
