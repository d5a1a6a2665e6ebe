// Package report implements C7: assembling the root Report document,
// validating it against the embedded JSON Schema, and writing it to disk
// atomically at its deterministic path.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/rlcoach/rlcoach/internal/rlerrors"
)

// schemaJSON is the draft-07 JSON Schema for the Report document
// (spec.md §3, §6). It is intentionally permissive on the analysis/events
// sub-objects (validated structurally by the Go type system instead) and
// strict on the root shape and the fields every consumer depends on.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "$id": "https://rlcoach.dev/schema/report-1.0.json",
  "title": "RLCoach Report",
  "type": "object",
  "required": [
    "schema_version", "replay_id", "source_file", "generated_at_utc",
    "metadata", "quality", "teams", "players", "analysis", "events"
  ],
  "properties": {
    "schema_version": {"type": "string", "pattern": "^1\\.0\\.\\d+$"},
    "replay_id": {"type": "string", "minLength": 1},
    "source_file": {"type": "string", "minLength": 1},
    "generated_at_utc": {"type": "string", "minLength": 1},
    "metadata": {
      "type": "object",
      "required": ["playlist", "map", "team_size", "duration_seconds", "coordinate_reference"],
      "properties": {
        "team_size": {"type": "integer", "minimum": 1},
        "duration_seconds": {"type": "number", "minimum": 0}
      }
    },
    "quality": {
      "type": "object",
      "required": ["parser", "warnings"],
      "properties": {
        "parser": {
          "type": "object",
          "required": ["name", "version", "parsed_network_data", "parsed_header_data", "crc_checked"]
        },
        "warnings": {"type": "array", "items": {"type": "string"}}
      }
    },
    "teams": {
      "type": "object",
      "required": ["blue", "orange"]
    },
    "players": {"type": "array"},
    "analysis": {
      "type": "object",
      "required": ["per_player", "per_team", "coaching_insights"]
    },
    "events": {
      "type": "object",
      "required": ["timeline", "goals", "demos", "kickoffs", "boost_pickups", "touches", "challenges"]
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("report-1.0.json", bytes.NewReader([]byte(schemaJSON))); err != nil {
		panic(fmt.Sprintf("internal/report: invalid embedded schema: %v", err))
	}
	s, err := c.Compile("report-1.0.json")
	if err != nil {
		panic(fmt.Sprintf("internal/report: schema compile: %v", err))
	}
	compiledSchema = s
}

// Validate checks a marshaled report document against the embedded
// schema. On failure it returns an rlerrors.Error of kind
// KindReportSchemaViolation, per spec.md §4.7.
func Validate(reportJSON []byte) error {
	var v any
	if err := json.Unmarshal(reportJSON, &v); err != nil {
		return rlerrors.Wrap(rlerrors.KindReportSchemaViolation, "report is not valid JSON", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return rlerrors.Wrap(rlerrors.KindReportSchemaViolation, "report failed schema validation", err)
	}
	return nil
}
