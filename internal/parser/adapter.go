package parser

import (
	"github.com/rlcoach/rlcoach/internal/field"
	"github.com/rlcoach/rlcoach/internal/quality"
	"github.com/rlcoach/rlcoach/internal/rlerrors"
	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// Variant names the two adapter variants (spec.md §4.3).
type Variant string

// Possible Variant values.
const (
	VariantFull               Variant = "full"
	VariantHeaderOnlyFallback Variant = "header_only_fallback"
)

// Adapter is C3's public contract: parse_header and parse_network.
type Adapter interface {
	Variant() Variant
	ParseHeader() (*rlreplay.Header, error)
	ParseNetwork() (*NetworkResult, error)
}

// NewAdapter selects a variant for the given replay bytes. headerOnly
// forces the header_only_fallback variant (the CLI's --header-only flag);
// otherwise the full variant is chosen unless the bytes don't support it,
// in which case NewAdapter returns the header_only_fallback variant itself.
func NewAdapter(data []byte, headerOnly bool) (Adapter, error) {
	if headerOnly {
		return &headerOnlyAdapter{data: data}, nil
	}
	if _, err := detectFormat(data); err != nil {
		// Bytes don't look like a supported full-decoder format at all;
		// still usable in header-only mode if a header section decodes.
		return &headerOnlyAdapter{data: data}, nil
	}
	return &fullAdapter{data: data}, nil
}

// fullAdapter decodes both header and network sections.
type fullAdapter struct {
	data   []byte
	header *rlreplay.Header
}

func (a *fullAdapter) Variant() Variant { return VariantFull }

func (a *fullAdapter) ParseHeader() (*rlreplay.Header, error) {
	if a.header != nil {
		return a.header, nil
	}
	h, err := ParseHeader(a.data)
	if err != nil {
		return nil, err
	}
	h.Warnings = append(h.Warnings, quality.WarnParsedWithFullDecoder)
	a.header = h
	return h, nil
}

func (a *fullAdapter) ParseNetwork() (*NetworkResult, error) {
	h, err := a.ParseHeader()
	if err != nil {
		return nil, err
	}
	res, err := ParseNetwork(a.data, field.ArenaStandard, carIndexFromHeader(h))
	if err != nil {
		// Recoverable failure: the pipeline logs it, keeps the header it
		// already parsed, and surfaces the quality warning.
		return nil, rlerrors.Wrap(rlerrors.KindNetworkDataUnavailable, "decoding network section", err)
	}
	return res, nil
}

// headerOnlyAdapter decodes only the header section; ParseNetwork always
// fails with KindNetworkDataUnavailable, per the header_only_fallback
// variant's contract.
type headerOnlyAdapter struct {
	data []byte
}

func (a *headerOnlyAdapter) Variant() Variant { return VariantHeaderOnlyFallback }

func (a *headerOnlyAdapter) ParseHeader() (*rlreplay.Header, error) {
	h, err := ParseHeader(a.data)
	if err != nil {
		return nil, err
	}
	h.Warnings = append(h.Warnings, quality.WarnParserFallbackHeaderOnly)
	return h, nil
}

func (a *headerOnlyAdapter) ParseNetwork() (*NetworkResult, error) {
	return nil, rlerrors.New(rlerrors.KindNetworkDataUnavailable,
		"header_only_fallback variant does not decode network frames")
}

// carIndexFromHeader builds the actorID->canonical player id resolver used
// while decoding the network section. The network stream only carries a
// small per-replay integer actor id; the header is the source of truth for
// which canonical player that corresponds to. Resolution keys off
// reservation order (the order players appear in the header), mirroring
// the teacher's PlayerID-by-slot-index resolution when a richer unique id
// isn't available (Open Question (b), DESIGN.md).
func carIndexFromHeader(h *rlreplay.Header) func(actorID int) string {
	return func(actorID int) string {
		if actorID < 0 || actorID >= len(h.Players) {
			return ""
		}
		return h.Players[actorID].CanonicalID
	}
}
