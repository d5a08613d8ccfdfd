// Package router classifies a free-text query against the catalog and
// renders one of four structured response types. Classification follows a
// strict precedence order and always succeeds: even a query that matches
// nothing resolves into a response with an explicit empty-result body.
package router

import (
	"strings"

	"github.com/claudekit/ck-help/pkg/catalog"
)

// OutputType identifies the response shape via the marker line the caller
// parses.
type OutputType string

const (
	TypeCategoryGuide       OutputType = "category-guide"
	TypeTaskRecommendations OutputType = "task-recommendations"
	TypeCommandDetails      OutputType = "command-details"
	TypeSearchResults       OutputType = "search-results"
)

const (
	maxRecommendations = 3
	maxSearchResults   = 10
)

// Response is the structured routing result. Exactly one of the detail
// fields is populated depending on Type; Render turns it into the final
// marker line plus body text.
type Response struct {
	Type OutputType

	// category-guide; Scope is set when the guide covers a single
	// requested category rather than the full overview.
	Categories []CategoryGroup
	Scope      catalog.Category

	// command-details
	Skill *catalog.Skill
	Usage string

	// task-recommendations and search-results
	Query   string
	Results []catalog.ScoredSkill
}

// CategoryGroup is one category heading with its skills for guide output.
type CategoryGroup struct {
	Category catalog.Category
	Skills   []catalog.Skill
}

// Route classifies the query words against the catalog. The first matching
// precedence rule wins; later rules never see a query an earlier rule
// claimed.
func Route(cat *catalog.Catalog, args []string) Response {
	tokens := normalize(args)

	// Rule 1: empty query renders the full overview.
	if len(tokens) == 0 {
		return Response{Type: TypeCategoryGuide, Categories: groupAll(cat)}
	}

	if len(tokens) == 1 {
		token := tokens[0]

		// Rule 2: a bare category name scopes the guide to it.
		if skills, ok := cat.FindCategory(token); ok {
			category := catalog.ParseCategory(token)
			return Response{
				Type:       TypeCategoryGuide,
				Scope:      category,
				Categories: []CategoryGroup{{Category: category, Skills: skills}},
			}
		}

		// Rule 3: a bare skill name shows its details.
		if skill, ok := cat.FindSkill(token); ok {
			return Response{
				Type:  TypeCommandDetails,
				Skill: &skill,
				Usage: skillUsage(skill),
			}
		}

		// Rule 6: fall back to text search over names and descriptions.
		results := cat.Search(tokens)
		if len(results) > maxSearchResults {
			results = results[:maxSearchResults]
		}
		return Response{
			Type:    TypeSearchResults,
			Query:   displayQuery(args),
			Results: results,
		}
	}

	// Rule 4: command plus valid subcommand resolves to canonical usage,
	// always in space form even when the query used colon form.
	if len(tokens) == 2 {
		if cmd, ok := cat.FindCommand(tokens[0]); ok && cat.ResolveSubcommand(tokens[0], tokens[1]) {
			return Response{
				Type:  TypeCommandDetails,
				Usage: "/" + cmd.Name + " " + strings.ToLower(tokens[1]),
			}
		}
	}

	// Rule 5: anything longer is a natural-language task description.
	results := cat.Search(tokens)
	if len(results) > maxRecommendations {
		results = results[:maxRecommendations]
	}
	return Response{
		Type:    TypeTaskRecommendations,
		Query:   displayQuery(args),
		Results: results,
	}
}

// displayQuery echoes the query for display in its original case, with the
// surrounding whitespace tidied up.
func displayQuery(args []string) string {
	return strings.Join(strings.Fields(strings.Join(args, " ")), " ")
}

// normalize trims the raw words, drops empties, and rewrites a lone
// command:subcommand token into its two-token space form. A colon token that
// does not split into exactly two non-empty parts stays a plain token and
// falls through to search.
func normalize(args []string) []string {
	var tokens []string
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		tokens = append(tokens, arg)
	}
	if len(tokens) == 1 {
		if command, sub, ok := splitAlias(tokens[0]); ok {
			tokens = []string{command, sub}
		}
	}
	return tokens
}

func splitAlias(token string) (command, sub string, ok bool) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// skillUsage builds the usage line for a skill, including its argument hint
// when one is declared.
func skillUsage(skill catalog.Skill) string {
	usage := "/" + skill.Name
	if skill.ArgumentHint != "" {
		usage += " " + skill.ArgumentHint
	}
	return usage
}

// groupAll builds the full category → skills grouping for the overview
// guide, in the fixed category display order.
func groupAll(cat *catalog.Catalog) []CategoryGroup {
	var groups []CategoryGroup
	for _, category := range cat.Categories() {
		skills, _ := cat.FindCategory(string(category))
		groups = append(groups, CategoryGroup{Category: category, Skills: skills})
	}
	return groups
}
