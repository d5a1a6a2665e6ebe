// This file contains the closed error taxonomy used across the analysis
// pipeline, mirroring the teacher's sentinel-error style in
// repparser.ErrNotReplayFile / ErrParsing, generalized to the full
// taxonomy of spec.md §7.
package rlerrors

import "errors"

// Kind identifies one of the closed set of fatal error conditions the
// pipeline can report. The string value is exactly the "error" field
// written into the two-key error document (spec.md §6).
type Kind string

// Closed set of fatal error kinds.
const (
	KindUnreadableReplayFile  Kind = "unreadable_replay_file"
	KindCRCMismatch           Kind = "crc_mismatch"
	KindParserUnavailable     Kind = "parser_unavailable"
	KindNetworkDataUnavailable Kind = "network_data_unavailable"
	KindExcludedAccount       Kind = "excluded_account"
	KindReportSchemaViolation Kind = "report_schema_violation"
)

// Error is a fatal pipeline error carrying a Kind and a human-readable
// detail message. It is the Go-level counterpart of the two-key error
// document {error, details}.
type Error struct {
	Kind    Kind
	Details string

	// Wrapped is the underlying cause, if any, for %w unwrapping.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Details == "" {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + e.Details
}

// Unwrap allows errors.Is/As to see through to the underlying cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// New constructs an Error of the given kind with a detail message.
func New(kind Kind, details string) *Error {
	return &Error{Kind: kind, Details: details}
}

// Wrap constructs an Error of the given kind, wrapping cause.
func Wrap(kind Kind, details string, cause error) *Error {
	return &Error{Kind: kind, Details: details, Wrapped: cause}
}

// Sentinels naming two well-known conditions without a per-instance detail
// message. The pipeline's own failures are *Error values that do not wrap
// these, so errors.Is against them does not match; use KindOf instead.
var (
	// ErrUnreadable names the ingest-failure condition.
	ErrUnreadable = errors.New("unreadable replay file")

	// ErrSchemaViolation names the condition of an assembled report that
	// fails schema validation; such a report is never written.
	ErrSchemaViolation = errors.New("report failed schema validation")
)

// KindOf returns the Kind of err if it is (or wraps) an *Error, and ok=true.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}
