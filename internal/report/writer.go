package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rlcoach/rlcoach/pkg/rlreplay"
)

// OutputPath computes the deterministic report path:
// <reportsDir>/<YYYY-MM-DD>/<replayID>.json. playDate is the local play
// date already resolved by the caller (started_at_utc + configured
// timezone, falling back to the ingest UTC date), per spec.md §6.
func OutputPath(reportsDir string, playDate time.Time, replayID string) string {
	return filepath.Join(reportsDir, playDate.Format("2006-01-02"), replayID+".json")
}

// Write marshals the report, validates it against the embedded schema, and
// writes it atomically: temp file in the same directory, fsync, rename
// into place. On schema validation failure it returns the validation
// error and writes nothing.
func Write(rep *rlreplay.Report, path string, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(rep, "", "  ")
	} else {
		data, err = json.Marshal(rep)
	}
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	if err := Validate(data); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory %q: %w", dir, err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".tmp-%d-%s", os.Getpid(), filepath.Base(path)))
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating temp file %q: %w", tmpPath, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file %q: %w", tmpPath, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("fsync %q: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file %q: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %q to %q: %w", tmpPath, path, err)
	}
	return nil
}
