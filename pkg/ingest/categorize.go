package ingest

import (
	"strings"

	"github.com/gobwas/glob"

	"github.com/claudekit/ck-help/pkg/catalog"
)

// categoryRule maps a set of text patterns to a category. Rules are
// evaluated top-to-bottom and the first hit wins, so narrower domains must
// precede broad ones like dev-tools.
type categoryRule struct {
	category catalog.Category
	patterns []glob.Glob
}

func compile(patterns ...string) []glob.Glob {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, glob.MustCompile(pattern))
	}
	return compiled
}

var categoryRules = []categoryRule{
	{catalog.CategoryDatabase, compile(
		"*postgres*", "*mysql*", "*sqlite*", "*database*", "*sql*", "*redis*", "*mongo*")},
	{catalog.CategoryInfrastructure, compile(
		"*docker*", "*kubernetes*", "*k8s*", "*terraform*", "*deploy*", "*devops*", "*cloud*", "*ci/cd*")},
	{catalog.CategoryAIML, compile(
		"*llm*", "*prompt*", "*embedding*", "*anthropic*", "*openai*", "*machine learning*", "*machine-learning*")},
	{catalog.CategoryFrontend, compile(
		"*react*", "*vue*", "*svelte*", "*css*", "*tailwind*", "*frontend*", "*browser*")},
	{catalog.CategoryBackend, compile(
		"*graphql*", "*grpc*", "*backend*", "*endpoint*", "*api*", "*server*")},
	{catalog.CategoryMultimedia, compile(
		"*video*", "*audio*", "*image*", "*ffmpeg*", "*media*")},
	{catalog.CategoryFrameworks, compile(
		"*django*", "*rails*", "*laravel*", "*next.js*", "*nextjs*", "*framework*")},
	{catalog.CategoryDevTools, compile(
		"*git*", "*test*", "*lint*", "*debug*", "*refactor*", "*build*", "*code review*")},
	{catalog.CategoryUtilities, compile(
		"*convert*", "*format*", "*search*", "*file*", "*utility*", "*utilities*")},
}

// InferCategory classifies free text (typically "name description") into a
// category when the frontmatter does not declare one. Matching is
// case-insensitive; text that hits no rule falls back to CategoryOther.
func InferCategory(text string) catalog.Category {
	text = strings.ToLower(text)
	for _, rule := range categoryRules {
		for _, pattern := range rule.patterns {
			if pattern.Match(text) {
				return rule.category
			}
		}
	}
	return catalog.CategoryOther
}
