package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSkills() []Skill {
	return []Skill{
		{Name: "code-review", Category: CategoryDevTools, Description: "Review code changes for quality and style"},
		{Name: "test-runner", Category: CategoryDevTools, Description: "Run and triage automated test suites"},
		{Name: "react-helper", Category: CategoryFrontend, Description: "Scaffold and refactor React components"},
		{Name: "postgres-tuning", Category: CategoryDatabase, Description: "Tune PostgreSQL queries and indexes"},
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input    string
		expected Category
	}{
		{"dev-tools", CategoryDevTools},
		{"Dev-Tools", CategoryDevTools},
		{" frontend ", CategoryFrontend},
		{"no-such-category", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCategory(tt.input))
		})
	}
}

func TestNewDeduplicatesByName(t *testing.T) {
	skills := []Skill{
		{Name: "code-review", Description: "first"},
		{Name: "Code-Review", Description: "second"},
	}
	cat := New(skills, nil)

	require.Len(t, cat.Skills(), 1)
	assert.Equal(t, "first", cat.Skills()[0].Description)
}

func TestNewNormalizesCategories(t *testing.T) {
	cat := New([]Skill{{Name: "mystery", Category: "weird"}}, nil)

	skill, ok := cat.FindSkill("mystery")
	require.True(t, ok)
	assert.Equal(t, CategoryOther, skill.Category)
}

func TestFindSkill(t *testing.T) {
	cat := New(testSkills(), nil)

	t.Run("exact match", func(t *testing.T) {
		skill, ok := cat.FindSkill("code-review")
		require.True(t, ok)
		assert.Equal(t, "code-review", skill.Name)
	})

	t.Run("case insensitive", func(t *testing.T) {
		skill, ok := cat.FindSkill("CODE-REVIEW")
		require.True(t, ok)
		assert.Equal(t, "code-review", skill.Name)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := cat.FindSkill("zzznotaskill")
		assert.False(t, ok)
	})
}

func TestFindCategory(t *testing.T) {
	cat := New(testSkills(), nil)

	t.Run("populated category", func(t *testing.T) {
		skills, ok := cat.FindCategory("dev-tools")
		require.True(t, ok)
		require.Len(t, skills, 2)
		assert.Equal(t, "code-review", skills[0].Name)
		assert.Equal(t, "test-runner", skills[1].Name)
	})

	t.Run("known but empty category", func(t *testing.T) {
		skills, ok := cat.FindCategory("multimedia")
		assert.True(t, ok)
		assert.Empty(t, skills)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, ok := cat.FindCategory("gardening")
		assert.False(t, ok)
	})
}

func TestCategoriesKeepsDisplayOrder(t *testing.T) {
	cat := New(testSkills(), nil)

	assert.Equal(t,
		[]Category{CategoryDevTools, CategoryFrontend, CategoryDatabase},
		cat.Categories())
}

func TestFindCommand(t *testing.T) {
	cat := New(nil, DefaultCommands)

	cmd, ok := cat.FindCommand("plan")
	require.True(t, ok)
	assert.Equal(t, "plan", cmd.Name)
	assert.Contains(t, cmd.Subcommands, "validate")

	_, ok = cat.FindCommand("teleport")
	assert.False(t, ok)
}

func TestResolveSubcommand(t *testing.T) {
	cat := New(nil, DefaultCommands)

	assert.True(t, cat.ResolveSubcommand("plan", "validate"))
	assert.True(t, cat.ResolveSubcommand("PLAN", "Archive"))
	assert.False(t, cat.ResolveSubcommand("plan", "destroy"))
	assert.False(t, cat.ResolveSubcommand("teleport", "validate"))
}
