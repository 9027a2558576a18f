package paging

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/desertthunder/dlx/internal/models"
)

// Suggest returns the item whose caption is closest to query by edit distance, for "did you mean" hints
// when a filter matches nothing.
//
// Ties go to the earlier item. Nothing is suggested for a blank query or when the best candidate
// differs from the query in more than half of the longer string.
func Suggest(query string, items []models.Item) (models.Item, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.Item{}, false
	}

	var best models.Item
	bestDist := -1
	for _, item := range items {
		caption := strings.ToLower(item.Caption)
		dist := levenshtein.ComputeDistance(q, caption)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = item, dist
		}
	}
	if bestDist < 0 {
		return models.Item{}, false
	}

	longest := max(len([]rune(q)), len([]rune(best.Caption)))
	if bestDist*2 > longest {
		return models.Item{}, false
	}
	return best, true
}
