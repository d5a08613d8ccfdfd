package catalog

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// maxRecordSize caps one snapshot record. Records are small in practice but
// the format sets no limit, so the cap is well above bufio's 64KB default.
const maxRecordSize = 1 << 20

// Load reads a skills snapshot in JSON Lines form (one skill record per
// line) and builds a catalog over it with the built-in command registry.
// A missing or unparseable snapshot is fatal: no partial catalog is served.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog unavailable: cannot open snapshot %s", path)
	}
	defer file.Close()

	var skills []Skill
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var skill Skill
		if err := json.Unmarshal([]byte(line), &skill); err != nil {
			return nil, errors.Wrapf(err, "catalog unavailable: malformed record at %s:%d", path, lineNo)
		}
		if skill.Name == "" {
			return nil, errors.Errorf("catalog unavailable: record at %s:%d has no name", path, lineNo)
		}
		skills = append(skills, skill)
	}
	if err := scanner.Err(); err != nil {
		if err == bufio.ErrTooLong {
			return nil, errors.Errorf("catalog unavailable: record at %s:%d exceeds %d bytes", path, lineNo+1, maxRecordSize)
		}
		return nil, errors.Wrapf(err, "catalog unavailable: cannot read snapshot %s", path)
	}

	return New(skills, DefaultCommands), nil
}
