package router

import (
	"fmt"
	"strings"
)

// outputTypeMarker prefixes the single machine-readable line the calling
// agent keys on. It must appear exactly once per invocation.
const outputTypeMarker = "@CK_OUTPUT_TYPE:"

// Render turns a routed response into the final output text: the marker
// line, a blank line, then the body for that response type.
func Render(resp Response) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n\n", outputTypeMarker, resp.Type)

	switch resp.Type {
	case TypeCategoryGuide:
		renderGuide(&b, resp)
	case TypeCommandDetails:
		renderDetails(&b, resp)
	case TypeTaskRecommendations:
		renderRecommendations(&b, resp)
	case TypeSearchResults:
		renderSearchResults(&b, resp)
	}
	return b.String()
}

func renderGuide(b *strings.Builder, resp Response) {
	if resp.Scope != "" {
		fmt.Fprintf(b, "# %s skills\n\n", resp.Scope)
	} else {
		b.WriteString("# Skills guide\n\n")
	}

	for _, group := range resp.Categories {
		if resp.Scope == "" {
			fmt.Fprintf(b, "## %s\n", group.Category)
		}
		for _, skill := range group.Skills {
			fmt.Fprintf(b, "- /%s — %s\n", skill.Name, skill.Description)
		}
		b.WriteString("\n")
	}

	if resp.Scope != "" {
		if len(resp.Categories) > 0 && len(resp.Categories[0].Skills) > 0 {
			first := resp.Categories[0].Skills[0]
			fmt.Fprintf(b, "Usage: invoke a skill by name, e.g. \"%s\".\n", skillUsage(first))
		} else {
			fmt.Fprintf(b, "No skills are installed in the %s category yet.\n", resp.Scope)
		}
		return
	}

	b.WriteString("Quick start: run \"/plan validate\" to check the current plan,\n")
	b.WriteString("or describe a task in plain words to get recommendations.\n")
}

func renderDetails(b *strings.Builder, resp Response) {
	if resp.Skill != nil {
		fmt.Fprintf(b, "# /%s\n\n", resp.Skill.Name)
		fmt.Fprintf(b, "%s\n\n", resp.Skill.Description)
		fmt.Fprintf(b, "Category: %s\n", resp.Skill.Category)
		if resp.Skill.HasScripts {
			b.WriteString("Includes helper scripts.\n")
		}
		if resp.Skill.HasReferences {
			b.WriteString("Includes reference material.\n")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "Usage: %s\n", resp.Usage)
}

func renderRecommendations(b *strings.Builder, resp Response) {
	if len(resp.Results) == 0 {
		fmt.Fprintf(b, "No matching skills found for %q.\n", resp.Query)
		b.WriteString("Run with no arguments to browse all categories.\n")
		return
	}

	fmt.Fprintf(b, "Recommended for %q:\n\n", resp.Query)
	for i, result := range resp.Results {
		fmt.Fprintf(b, "%d. %s — %s\n", i+1, skillUsage(result.Skill), result.Skill.Description)
	}
}

func renderSearchResults(b *strings.Builder, resp Response) {
	if len(resp.Results) == 0 {
		fmt.Fprintf(b, "No skills found matching %q.\n", resp.Query)
		b.WriteString("Run with no arguments to browse all categories.\n")
		return
	}

	fmt.Fprintf(b, "Skills matching %q:\n\n", resp.Query)
	for _, result := range resp.Results {
		fmt.Fprintf(b, "- %s — %s\n", skillUsage(result.Skill), result.Skill.Description)
	}
}
