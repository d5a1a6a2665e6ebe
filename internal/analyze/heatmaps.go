package analyze

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

const (
	heatmapWidth  = 20
	heatmapHeight = 16
)

func heatmapsFor(in Input, playerID string) rlreplay.HeatmapsMetrics {
	occupancy := newGrid(heatmapWidth, heatmapHeight)
	touchDensity := newGrid(heatmapWidth, heatmapHeight)
	boostPickup := newGrid(heatmapWidth, heatmapHeight)

	for _, f := range in.Frames {
		pf := findPlayer(f, playerID)
		if pf == nil {
			continue
		}
		incrementCell(occupancy, pf.Position)
	}
	for _, t := range in.Events.Touches {
		if t.PlayerID == playerID {
			incrementCell(touchDensity, t.Location)
		}
	}
	for _, bp := range in.Events.BoostPickups {
		if bp.PlayerID != playerID {
			continue
		}
		pad, ok := field.PadByID(in.Arena, bp.PadID)
		if ok {
			incrementCell(boostPickup, pad.Position)
		}
	}

	return rlreplay.HeatmapsMetrics{
		PositionOccupancyGrid: occupancy,
		TouchDensityGrid:      touchDensity,
		BoostPickupGrid:       boostPickup,
		BoostUsageGrid:        nil,
	}
}

func newGrid(w, h int) *rlreplay.Grid {
	return &rlreplay.Grid{Width: w, Height: h, Cells: make([]float64, w*h)}
}

func incrementCell(g *rlreplay.Grid, pos field.Vec3) {
	col := int((float64(pos.X) + field.SideWallX) / (2 * field.SideWallX) * float64(g.Width))
	row := int((float64(pos.Y) + field.BackWallY) / (2 * field.BackWallY) * float64(g.Height))
	if col < 0 {
		col = 0
	}
	if col >= g.Width {
		col = g.Width - 1
	}
	if row < 0 {
		row = 0
	}
	if row >= g.Height {
		row = g.Height - 1
	}
	g.Cells[row*g.Width+col]++
}
