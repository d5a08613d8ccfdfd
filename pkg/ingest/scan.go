// Package ingest implements the catalog ingestion batch job: it scans skill
// directories for SKILL.md metadata, infers categories, and writes the
// snapshot file the router loads. Ingestion runs separately from routing and
// never shares state with it beyond the snapshot on disk.
package ingest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/claudekit/ck-help/pkg/catalog"
	"github.com/claudekit/ck-help/pkg/logger"
)

const (
	skillFileName = "SKILL.md"
	scriptsDir    = "scripts"
	referencesDir = "references"
)

// Scanner discovers skill metadata under one or more root directories.
type Scanner struct {
	roots []string
}

// Option configures a Scanner.
type Option func(*Scanner) error

// WithRoots sets custom skill root directories.
func WithRoots(dirs ...string) Option {
	return func(s *Scanner) error {
		if len(dirs) == 0 {
			return errors.New("at least one skill root must be specified")
		}
		s.roots = dirs
		return nil
	}
}

// WithDefaultRoots initializes the repo-local and user-global skill roots.
func WithDefaultRoots() Option {
	return func(s *Scanner) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		s.roots = []string{
			"./.claudekit/skills", // Repo-local (highest precedence)
			filepath.Join(homeDir, ".claudekit", "skills"),
		}
		return nil
	}
}

// NewScanner creates a scanner, defaulting the roots when no options are
// given.
func NewScanner(opts ...Option) (*Scanner, error) {
	s := &Scanner{}
	if len(opts) == 0 {
		opts = []Option{WithDefaultRoots()}
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Scan walks every root for SKILL.md files and returns the skills sorted by
// name so repeated scans produce identical snapshots. Individual skills that
// fail to parse are collected into the returned error but never abort the
// scan; the skill slice is always usable.
func (s *Scanner) Scan(ctx context.Context) ([]catalog.Skill, error) {
	log := logger.G(ctx)

	var (
		skills []catalog.Skill
		seen   = make(map[string]bool)
		errs   *multierror.Error
	)

	for _, root := range s.roots {
		if _, err := os.Stat(root); err != nil {
			log.WithField("root", root).Debug("skill root does not exist, skipping")
			continue
		}

		matches, err := doublestar.FilepathGlob(filepath.Join(root, "**", skillFileName))
		if err != nil {
			log.WithError(err).WithField("root", root).Warn("failed to glob skill root")
			errs = multierror.Append(errs, errors.Wrapf(err, "failed to glob %s", root))
			continue
		}

		for _, match := range matches {
			skill, err := loadSkill(root, match)
			if err != nil {
				log.WithError(err).WithField("path", match).Warn("skipping skill")
				errs = multierror.Append(errs, errors.Wrapf(err, "skipping %s", match))
				continue
			}
			key := strings.ToLower(skill.Name)
			if seen[key] {
				log.WithField("name", skill.Name).Debug("duplicate skill name, keeping first occurrence")
				continue
			}
			seen[key] = true
			skills = append(skills, skill)
		}
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Name < skills[j].Name
	})
	log.WithField("count", len(skills)).Debug("skill scan complete")
	return skills, errs.ErrorOrNil()
}

// loadSkill parses one SKILL.md into a catalog entry. The required name and
// description come from the YAML frontmatter; path, capability flags, and
// nesting prefix come from the directory layout.
func loadSkill(root, path string) (catalog.Skill, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return catalog.Skill{}, errors.Wrap(err, "failed to read skill file")
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return catalog.Skill{}, errors.Wrap(err, "failed to parse markdown")
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return catalog.Skill{}, errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)
	rawCategory, _ := metaData["category"].(string)
	argumentHint, _ := metaData["argument-hint"].(string)

	if name == "" {
		return catalog.Skill{}, errors.New("skill name is required in frontmatter")
	}
	if description == "" {
		return catalog.Skill{}, errors.New("skill description is required in frontmatter")
	}

	skillDir := filepath.Dir(path)
	if prefix := nestingPrefix(root, skillDir); prefix != "" {
		name = prefix + "/" + name
	}

	category := catalog.ParseCategory(rawCategory)
	if rawCategory == "" {
		category = InferCategory(name + " " + description)
	}

	return catalog.Skill{
		Name:          name,
		Path:          skillDir,
		Description:   description,
		Category:      category,
		HasScripts:    dirExists(filepath.Join(skillDir, scriptsDir)),
		HasReferences: dirExists(filepath.Join(skillDir, referencesDir)),
		ArgumentHint:  argumentHint,
	}, nil
}

// nestingPrefix returns the parent path of a skill directory relative to its
// root, slash-separated, for nested parent/child skill names. Top-level
// skills have no prefix.
func nestingPrefix(root, skillDir string) string {
	rel, err := filepath.Rel(root, skillDir)
	if err != nil {
		return ""
	}
	parent := filepath.ToSlash(filepath.Dir(rel))
	if parent == "." || parent == "/" {
		return ""
	}
	return parent
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
