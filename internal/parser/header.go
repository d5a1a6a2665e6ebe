package parser

import (
	"fmt"

	"github.com/rlcoach/rlcoach/internal/rlerrors"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// ParseHeader decodes only the header section and returns the replay's
// immutable Header, per spec.md §4.3.
func ParseHeader(data []byte) (*rlreplay.Header, error) {
	format, err := detectFormat(data)
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, "detecting replay format", err)
	}

	sr, err := newSectionReader(data, format)
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, "opening section stream", err)
	}
	defer sr.Close()

	headerBytes, err := sr.Next()
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, "reading header section", err)
	}

	props, err := decodePropertyList(headerBytes)
	if err != nil {
		return nil, rlerrors.Wrap(rlerrors.KindUnreadableReplayFile, "decoding header properties", err)
	}

	return headerFromProperties(props)
}

func headerFromProperties(props propertyList) (*rlreplay.Header, error) {
	h := &rlreplay.Header{}

	if v, ok := props.str("playlist_id"); ok {
		h.PlaylistID = v
	}
	if v, ok := props.str("map_name"); ok {
		h.MapName = v
	}
	if v, ok := props.intVal("team_size"); ok {
		h.TeamSize = int(v)
	}
	if v, ok := props.intVal("team0_score"); ok {
		h.Team0Score = int(v)
	}
	if v, ok := props.intVal("team1_score"); ok {
		h.Team1Score = int(v)
	}
	if v, ok := props.floatVal("match_length_s"); ok {
		h.MatchLengthSeconds = v
	}

	numPlayers, _ := props.intVal("num_players")
	for i := int64(0); i < numPlayers; i++ {
		p := rlreplay.PlayerInfo{PlatformIDs: map[string]string{}}
		prefix := fmt.Sprintf("p%d.", i)
		if v, ok := props.str(prefix + "canonical_id"); ok {
			p.CanonicalID = v
		}
		if v, ok := props.str(prefix + "display_name"); ok {
			p.DisplayName = v
		}
		if v, ok := props.intVal(prefix + "team"); ok {
			p.Team = byte(v)
		}
		if v, ok := props.str(prefix + "platform"); ok {
			if id, ok2 := props.str(prefix + "platform_id"); ok2 {
				p.PlatformIDs[v] = id
			}
		}
		if p.CanonicalID == "" {
			p.CanonicalID = canonicalIDFromName(p.DisplayName)
		}
		h.Players = append(h.Players, p)
	}

	numGoals, _ := props.intVal("num_goals")
	for i := int64(0); i < numGoals; i++ {
		prefix := fmt.Sprintf("g%d.", i)
		g := rlreplay.HeaderGoal{}
		if v, ok := props.intVal(prefix + "frame"); ok {
			g.Frame = int(v)
		}
		if v, ok := props.str(prefix + "scorer_id"); ok {
			g.ScorerID = v
		}
		if v, ok := props.intVal(prefix + "team"); ok {
			g.Team = byte(v)
		}
		h.Goals = append(h.Goals, g)
	}

	return h, nil
}

// canonicalIDFromName builds the "slug:<sanitized-name>" fallback id used
// when no platform id is available, per spec.md §3.
func canonicalIDFromName(name string) string {
	slug := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			slug = append(slug, r)
		case r == ' ', r == '-', r == '_':
			slug = append(slug, '-')
		}
	}
	if len(slug) == 0 {
		return "slug:unknown"
	}
	return "slug:" + string(slug)
}
