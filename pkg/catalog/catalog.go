// Package catalog provides the read-only skill and command index that query
// routing runs against. A catalog is built once per invocation from a
// generated snapshot file and is never mutated afterwards.
package catalog

import "strings"

// Category is the fixed grouping label attached to every skill.
type Category string

const (
	CategoryUtilities      Category = "utilities"
	CategoryDevTools       Category = "dev-tools"
	CategoryAIML           Category = "ai-ml"
	CategoryFrontend       Category = "frontend"
	CategoryBackend        Category = "backend"
	CategoryInfrastructure Category = "infrastructure"
	CategoryDatabase       Category = "database"
	CategoryMultimedia     Category = "multimedia"
	CategoryFrameworks     Category = "frameworks"
	CategoryOther          Category = "other"
)

// categoryOrder fixes the display order of categories in guide output.
var categoryOrder = []Category{
	CategoryUtilities,
	CategoryDevTools,
	CategoryAIML,
	CategoryFrontend,
	CategoryBackend,
	CategoryInfrastructure,
	CategoryDatabase,
	CategoryMultimedia,
	CategoryFrameworks,
	CategoryOther,
}

// ParseCategory normalizes a raw category string. Unrecognized values fall
// back to CategoryOther so a skill always lands in a valid group.
func ParseCategory(s string) Category {
	if c, ok := LookupCategory(s); ok {
		return c
	}
	return CategoryOther
}

// LookupCategory reports whether the given name is one of the fixed
// categories. Matching is case-insensitive.
func LookupCategory(name string) (Category, bool) {
	normalized := Category(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range categoryOrder {
		if c == normalized {
			return c, true
		}
	}
	return "", false
}

// Skill is one catalog entry describing a documented capability.
type Skill struct {
	Name          string   `json:"name"`
	Path          string   `json:"path,omitempty"`
	Description   string   `json:"description"`
	Category      Category `json:"category"`
	HasScripts    bool     `json:"has_scripts"`
	HasReferences bool     `json:"has_references"`
	ArgumentHint  string   `json:"argument_hint,omitempty"`
}

// Command is an invokable slash command with its known subcommands.
type Command struct {
	Name        string
	Subcommands []string
}

// Catalog is the immutable in-memory index. Skills keep their snapshot
// insertion order, which is the stable tie-break for ranked output.
type Catalog struct {
	skills   []Skill
	byName   map[string]int
	commands map[string]Command
}

// New builds a catalog from explicit skill and command collections. Skills
// with a duplicate name keep their first occurrence; categories are
// normalized on the way in.
func New(skills []Skill, commands map[string]Command) *Catalog {
	c := &Catalog{
		byName:   make(map[string]int),
		commands: make(map[string]Command, len(commands)),
	}
	for _, skill := range skills {
		key := strings.ToLower(skill.Name)
		if _, exists := c.byName[key]; exists {
			continue
		}
		skill.Category = ParseCategory(string(skill.Category))
		c.byName[key] = len(c.skills)
		c.skills = append(c.skills, skill)
	}
	for name, cmd := range commands {
		c.commands[strings.ToLower(name)] = cmd
	}
	return c
}

// Skills returns all skills in snapshot insertion order.
func (c *Catalog) Skills() []Skill {
	return c.skills
}

// FindSkill looks up a skill by exact name, case-insensitively.
func (c *Catalog) FindSkill(name string) (Skill, bool) {
	idx, ok := c.byName[strings.ToLower(name)]
	if !ok {
		return Skill{}, false
	}
	return c.skills[idx], true
}

// FindCategory returns the skills in a category, preserving insertion order.
// The boolean reports whether the category name is recognized at all, so an
// existing-but-empty category is distinguishable from an unknown one.
func (c *Catalog) FindCategory(name string) ([]Skill, bool) {
	category, ok := LookupCategory(name)
	if !ok {
		return nil, false
	}
	var skills []Skill
	for _, skill := range c.skills {
		if skill.Category == category {
			skills = append(skills, skill)
		}
	}
	return skills, true
}

// Categories returns the categories that contain at least one skill, in the
// fixed display order.
func (c *Catalog) Categories() []Category {
	present := make(map[Category]bool, len(c.skills))
	for _, skill := range c.skills {
		present[skill.Category] = true
	}
	var categories []Category
	for _, category := range categoryOrder {
		if present[category] {
			categories = append(categories, category)
		}
	}
	return categories
}

// FindCommand looks up a slash command by name, case-insensitively.
func (c *Catalog) FindCommand(name string) (Command, bool) {
	cmd, ok := c.commands[strings.ToLower(name)]
	return cmd, ok
}

// ResolveSubcommand reports whether token is a known subcommand of the named
// command.
func (c *Catalog) ResolveSubcommand(command, token string) bool {
	cmd, ok := c.FindCommand(command)
	if !ok {
		return false
	}
	token = strings.ToLower(token)
	for _, sub := range cmd.Subcommands {
		if strings.ToLower(sub) == token {
			return true
		}
	}
	return false
}
