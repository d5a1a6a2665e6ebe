// This file contains the closed warning vocabulary surfaced in
// quality.warnings (spec.md §7, §4.8). Every degradation path contributes
// exactly one warning code; the assembler is responsible for deduping and
// sorting the final set.
package quality

import "fmt"

// Closed set of warning codes. Parameterized warnings are formatted with
// the With* helpers below rather than constructed ad-hoc, so the
// vocabulary stays closed.
const (
	WarnParsedWithFullDecoder               = "parsed_with_full_decoder"
	WarnParserFallbackHeaderOnly            = "parser_fallback_header_only"
	WarnNetworkDataUnparsedFallbackHeaderOnly = "network_data_unparsed_fallback_header_only"
	WarnPlayerRotationApproximated          = "player_rotation_approximated"
	WarnPadCoverageIncomplete               = "pad_coverage_incomplete"
	WarnCRCNotVerified                      = "crc_not_verified"
)

// WithDownsample returns the analysis_downsampled_n=<N> warning for the
// given sampling stride.
func WithDownsample(n int) string {
	return fmt.Sprintf("analysis_downsampled_n=%d", n)
}

// WithMissingInstigator returns the missing_instigator_count=<N> warning.
func WithMissingInstigator(n int) string {
	return fmt.Sprintf("missing_instigator_count=%d", n)
}
