package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudekit/ck-help/pkg/catalog"
)

func testCatalog() *catalog.Catalog {
	skills := []catalog.Skill{
		{Name: "code-review", Category: catalog.CategoryDevTools, Description: "Review code changes for quality and style", ArgumentHint: "<path>"},
		{Name: "test-runner", Category: catalog.CategoryDevTools, Description: "Run and triage automated test suites"},
		{Name: "react-helper", Category: catalog.CategoryFrontend, Description: "Scaffold and refactor React components"},
		{Name: "postgres-tuning", Category: catalog.CategoryDatabase, Description: "Tune PostgreSQL queries and indexes"},
	}
	return catalog.New(skills, catalog.DefaultCommands)
}

func TestRouteEmptyQuery(t *testing.T) {
	resp := Route(testCatalog(), nil)

	assert.Equal(t, TypeCategoryGuide, resp.Type)
	assert.Empty(t, resp.Scope)
	require.Len(t, resp.Categories, 3)
	assert.Equal(t, catalog.CategoryDevTools, resp.Categories[0].Category)
}

func TestRouteWhitespaceOnlyQueryIsEmpty(t *testing.T) {
	resp := Route(testCatalog(), []string{"  ", ""})

	assert.Equal(t, TypeCategoryGuide, resp.Type)
	assert.Empty(t, resp.Scope)
}

func TestRouteCategoryName(t *testing.T) {
	resp := Route(testCatalog(), []string{"dev-tools"})

	assert.Equal(t, TypeCategoryGuide, resp.Type)
	assert.Equal(t, catalog.CategoryDevTools, resp.Scope)
	require.Len(t, resp.Categories, 1)
	assert.Len(t, resp.Categories[0].Skills, 2)
}

func TestRouteCategoryBeatsSearch(t *testing.T) {
	// "frontend" is both a category name and a plausible search term; the
	// category rule has higher precedence.
	resp := Route(testCatalog(), []string{"Frontend"})
	assert.Equal(t, TypeCategoryGuide, resp.Type)
}

func TestRouteSkillName(t *testing.T) {
	resp := Route(testCatalog(), []string{"code-review"})

	assert.Equal(t, TypeCommandDetails, resp.Type)
	require.NotNil(t, resp.Skill)
	assert.Equal(t, "code-review", resp.Skill.Name)
	assert.Equal(t, "/code-review <path>", resp.Usage)
}

func TestRouteCommandSubcommand(t *testing.T) {
	resp := Route(testCatalog(), []string{"plan", "validate"})

	assert.Equal(t, TypeCommandDetails, resp.Type)
	assert.Nil(t, resp.Skill)
	assert.Equal(t, "/plan validate", resp.Usage)
}

func TestRouteColonAliasEquivalence(t *testing.T) {
	spaceForm := Route(testCatalog(), []string{"plan", "validate"})
	colonForm := Route(testCatalog(), []string{"plan:validate"})

	assert.Equal(t, spaceForm.Type, colonForm.Type)
	assert.Equal(t, spaceForm.Usage, colonForm.Usage)
	// Canonical usage is always the space form.
	assert.Equal(t, "/plan validate", colonForm.Usage)
}

func TestRouteColonAliasIsCaseInsensitive(t *testing.T) {
	resp := Route(testCatalog(), []string{"PLAN:VALIDATE"})

	assert.Equal(t, TypeCommandDetails, resp.Type)
	assert.Equal(t, "/plan validate", resp.Usage)
}

func TestRouteInvalidSubcommandFallsThrough(t *testing.T) {
	resp := Route(testCatalog(), []string{"plan", "destroy"})

	assert.Equal(t, TypeTaskRecommendations, resp.Type)
}

func TestRouteMalformedAliases(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"trailing colon", "plan:"},
		{"leading colon", ":validate"},
		{"double colon", "plan:validate:now"},
		{"bare colon", ":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Route(testCatalog(), []string{tt.token})
			assert.Equal(t, TypeSearchResults, resp.Type)
		})
	}
}

func TestRouteTaskRecommendations(t *testing.T) {
	resp := Route(testCatalog(), []string{"test", "my", "login"})

	assert.Equal(t, TypeTaskRecommendations, resp.Type)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "test-runner", resp.Results[0].Skill.Name)
	assert.Equal(t, "test my login", resp.Query)
}

func TestRouteTaskRecommendationsEmptyResult(t *testing.T) {
	resp := Route(testCatalog(), []string{"zzz", "qqq", "vvv"})

	// A matched rule never falls through to a different type.
	assert.Equal(t, TypeTaskRecommendations, resp.Type)
	assert.Empty(t, resp.Results)
}

func TestRouteTaskRecommendationsTruncated(t *testing.T) {
	var skills []catalog.Skill
	for _, name := range []string{"widget-a", "widget-b", "widget-c", "widget-d", "widget-e"} {
		skills = append(skills, catalog.Skill{Name: name, Description: "manages widgets"})
	}
	cat := catalog.New(skills, catalog.DefaultCommands)

	resp := Route(cat, []string{"manage", "widgets"})
	assert.Equal(t, TypeTaskRecommendations, resp.Type)
	assert.Len(t, resp.Results, maxRecommendations)
}

func TestRouteSearchResults(t *testing.T) {
	resp := Route(testCatalog(), []string{"react"})

	assert.Equal(t, TypeSearchResults, resp.Type)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "react-helper", resp.Results[0].Skill.Name)
}

func TestRouteSearchNoMatches(t *testing.T) {
	resp := Route(testCatalog(), []string{"zzznotaskill"})

	assert.Equal(t, TypeSearchResults, resp.Type)
	assert.Empty(t, resp.Results)
}

func TestRouteSearchCapped(t *testing.T) {
	var skills []catalog.Skill
	for i := 0; i < 15; i++ {
		skills = append(skills, catalog.Skill{
			Name:        "gadget-" + string(rune('a'+i)),
			Description: "a gadget",
		})
	}
	cat := catalog.New(skills, catalog.DefaultCommands)

	resp := Route(cat, []string{"gadget"})
	assert.Equal(t, TypeSearchResults, resp.Type)
	assert.Len(t, resp.Results, maxSearchResults)
}

func TestRouteIsDeterministic(t *testing.T) {
	queries := [][]string{
		nil,
		{"dev-tools"},
		{"code-review"},
		{"plan", "validate"},
		{"test", "my", "login"},
		{"react"},
	}

	for _, query := range queries {
		first := Route(testCatalog(), query)
		for i := 0; i < 3; i++ {
			again := Route(testCatalog(), query)
			assert.Equal(t, first, again)
		}
	}
}
