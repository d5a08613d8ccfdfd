package ingest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/claudekit/ck-help/pkg/catalog"
)

// SnapshotFileName is the default name of the generated skills snapshot.
const SnapshotFileName = "skills-catalog.jsonl"

// legacyCommandsFileName is the old command-metadata path some callers still
// look for. It is regenerated as an explicit placeholder; nothing reads it.
const legacyCommandsFileName = "commands-catalog.sh"

const legacyPlaceholder = `# This file is retained for backward compatibility and is intentionally empty.
# Command metadata now ships with the ck-help binary; the generated skills
# snapshot lives in skills-catalog.jsonl next to this file.
`

// WriteSnapshot writes the skills snapshot as JSON Lines, one record per
// skill, atomically: the content lands in a temp file that is renamed over
// the target so a concurrent reader never sees a half-written snapshot.
func WriteSnapshot(path string, skills []catalog.Skill) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, skill := range skills {
		if err := enc.Encode(skill); err != nil {
			return errors.Wrapf(err, "failed to encode skill %s", skill.Name)
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create snapshot directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, ".skills-catalog-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp snapshot")
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to write snapshot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, "failed to close snapshot")
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "failed to move snapshot into place at %s", path)
	}
	return nil
}

// WriteLegacyPlaceholder regenerates the old command-metadata file as an
// empty payload with a pointer comment, next to the snapshot.
func WriteLegacyPlaceholder(snapshotPath string) error {
	path := filepath.Join(filepath.Dir(snapshotPath), legacyCommandsFileName)
	if err := os.WriteFile(path, []byte(legacyPlaceholder), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write legacy placeholder %s", path)
	}
	return nil
}
