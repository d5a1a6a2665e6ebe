package events

import (
	"sort"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

func stableSortEntries(entries []rlreplay.TimelineEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TimestampS != entries[j].TimestampS {
			return entries[i].TimestampS < entries[j].TimestampS
		}
		return entries[i].TypeRank < entries[j].TypeRank
	})
}
