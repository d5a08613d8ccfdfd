package catalog

import (
	"sort"
	"strings"
)

// Relevance weights: a name hit beats a category hit beats a description
// hit. Each query token contributes its single best weight per skill.
const (
	weightName        = 3
	weightCategory    = 2
	weightDescription = 1
)

// ScoredSkill pairs a skill with its relevance score for a query.
type ScoredSkill struct {
	Skill Skill
	Score int
}

// Search ranks skills against the query tokens. A token scores a skill when
// it occurs as a case-insensitive substring of the skill's name, category,
// or description; only the highest-weighted occurrence counts per token.
// Zero-score skills are dropped. The result is sorted by descending score
// with catalog insertion order as the tie-break, so identical queries always
// rank identically.
func (c *Catalog) Search(tokens []string) []ScoredSkill {
	var ranked []ScoredSkill
	for _, skill := range c.skills {
		name := strings.ToLower(skill.Name)
		category := strings.ToLower(string(skill.Category))
		description := strings.ToLower(skill.Description)

		score := 0
		for _, token := range tokens {
			token = strings.ToLower(token)
			if token == "" {
				continue
			}
			switch {
			case strings.Contains(name, token):
				score += weightName
			case strings.Contains(category, token):
				score += weightCategory
			case strings.Contains(description, token):
				score += weightDescription
			}
		}
		if score > 0 {
			ranked = append(ranked, ScoredSkill{Skill: skill, Score: score})
		}
	}

	// SliceStable keeps insertion order between equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
